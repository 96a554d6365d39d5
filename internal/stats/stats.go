// Package stats aggregates stored session results into the dashboard
// views: lifetime summary, gap-filled daily series, and weak keys.
package stats

import (
	"context"
	"math"
	"time"

	"github.com/typerush/typerush/internal/store"
)

// Summary is the lifetime aggregate over a set of results.
type Summary struct {
	Sessions     int
	Completed    int
	AvgWPM       int
	BestWPM      int
	AvgAccuracy  float64
	TotalTimeSec int
	TotalChars   int
}

// DailyPoint is one day of the activity series. Days without sessions
// appear with zero values so charts show the gaps.
type DailyPoint struct {
	Date     time.Time // midnight UTC
	Sessions int
	AvgWPM   int
	BestWPM  int
}

// Summarize reduces results to their lifetime summary.
func Summarize(results []store.Result) Summary {
	s := Summary{Sessions: len(results)}
	if len(results) == 0 {
		return s
	}

	var wpmSum int
	var accSum float64
	for _, r := range results {
		wpmSum += r.WPM
		accSum += r.Accuracy
		if r.WPM > s.BestWPM {
			s.BestWPM = r.WPM
		}
		if r.Completed {
			s.Completed++
		}
		s.TotalTimeSec += r.DurationSec
		s.TotalChars += r.CharsTyped
	}
	s.AvgWPM = int(math.Round(float64(wpmSum) / float64(len(results))))
	s.AvgAccuracy = accSum / float64(len(results))
	return s
}

// DailySeries buckets results into the trailing days-day window ending
// at today, filling days with no sessions. Results outside the window
// are ignored.
func DailySeries(results []store.Result, days int, today time.Time) []DailyPoint {
	if days <= 0 {
		return nil
	}

	start := midnightUTC(today).AddDate(0, 0, -(days - 1))
	series := make([]DailyPoint, days)
	for i := range series {
		series[i].Date = start.AddDate(0, 0, i)
	}

	sums := make([]int, days)
	for _, r := range results {
		day := midnightUTC(r.CreatedAt)
		idx := int(day.Sub(start).Hours() / 24)
		if idx < 0 || idx >= days {
			continue
		}
		p := &series[idx]
		p.Sessions++
		sums[idx] += r.WPM
		if r.WPM > p.BestWPM {
			p.BestWPM = r.WPM
		}
	}
	for i := range series {
		if series[i].Sessions > 0 {
			series[i].AvgWPM = int(math.Round(float64(sums[i]) / float64(series[i].Sessions)))
		}
	}
	return series
}

func midnightUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Service reads results from the store and derives the dashboard data.
type Service struct {
	store *store.Store
}

// NewService creates a stats service over the local store.
func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// Dashboard holds everything the stats screen renders.
type Dashboard struct {
	Summary  Summary
	Daily    []DailyPoint
	WeakKeys []store.CharAggregate
}

// windowDays is the trailing window shown on the dashboard.
const windowDays = 30

// weakKeyWindow is how many recent sessions feed the weak key table.
const weakKeyWindow = 30

// Dashboard loads the full stats view as of now.
func (s *Service) Dashboard(ctx context.Context, now time.Time) (*Dashboard, error) {
	from := midnightUTC(now).AddDate(0, 0, -(windowDays - 1))
	recent, err := s.store.ResultsSince(ctx, from)
	if err != nil {
		return nil, err
	}
	all, err := s.store.ResultsSince(ctx, time.Time{})
	if err != nil {
		return nil, err
	}
	weak, err := s.store.WeakChars(ctx, weakKeyWindow)
	if err != nil {
		return nil, err
	}
	return &Dashboard{
		Summary:  Summarize(all),
		Daily:    DailySeries(recent, windowDays, now),
		WeakKeys: weak,
	}, nil
}

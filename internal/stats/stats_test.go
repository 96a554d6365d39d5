package stats

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/typerush/typerush/internal/store"
	"github.com/typerush/typerush/internal/typing"
)

func result(day time.Time, wpm int, accuracy float64, completed bool) store.Result {
	r := store.NewResult(store.ModeRandom, "", typing.SessionResult{WPM: wpm, Accuracy: accuracy, Completed: completed}, 60, 300)
	r.CreatedAt = day
	return r
}

func TestSummarize(t *testing.T) {
	if got := Summarize(nil); got.Sessions != 0 || got.AvgWPM != 0 {
		t.Errorf("empty summary = %+v", got)
	}

	day := time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)
	results := []store.Result{
		result(day, 60, 95, true),
		result(day, 80, 99, true),
		result(day, 70, 90, false),
	}

	s := Summarize(results)
	if s.Sessions != 3 || s.Completed != 2 {
		t.Errorf("sessions/completed = %d/%d, want 3/2", s.Sessions, s.Completed)
	}
	if s.AvgWPM != 70 || s.BestWPM != 80 {
		t.Errorf("avg/best WPM = %d/%d, want 70/80", s.AvgWPM, s.BestWPM)
	}
	want := (95.0 + 99.0 + 90.0) / 3
	if s.AvgAccuracy != want {
		t.Errorf("avg accuracy = %v, want %v", s.AvgAccuracy, want)
	}
	if s.TotalTimeSec != 180 || s.TotalChars != 900 {
		t.Errorf("totals = %d sec / %d chars", s.TotalTimeSec, s.TotalChars)
	}
}

func TestDailySeriesGapFill(t *testing.T) {
	today := time.Date(2026, 8, 30, 15, 30, 0, 0, time.UTC)
	results := []store.Result{
		result(time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC), 60, 95, true),
		result(time.Date(2026, 8, 30, 18, 0, 0, 0, time.UTC), 70, 95, true),
		result(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC), 50, 95, true),
		// Outside the 30-day window.
		result(time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC), 120, 95, true),
	}

	series := DailySeries(results, 30, today)
	if len(series) != 30 {
		t.Fatalf("series length = %d, want 30", len(series))
	}

	first := series[0]
	if !first.Date.Equal(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("window start = %v", first.Date)
	}
	if first.Sessions != 1 || first.AvgWPM != 50 {
		t.Errorf("first day = %+v", first)
	}

	last := series[29]
	if last.Sessions != 2 || last.AvgWPM != 65 || last.BestWPM != 70 {
		t.Errorf("last day = %+v", last)
	}

	gaps := 0
	for _, p := range series {
		if p.Sessions == 0 {
			if p.AvgWPM != 0 || p.BestWPM != 0 {
				t.Errorf("gap day carries values: %+v", p)
			}
			gaps++
		}
	}
	if gaps != 28 {
		t.Errorf("gap days = %d, want 28", gaps)
	}
}

func TestDashboard(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	ctx := context.Background()
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	r := result(now.AddDate(0, 0, -1), 75, 96.5, true)
	chars := []typing.CharStat{{Char: "q", Correct: 1, Incorrect: 4}}
	if err := st.InsertResult(ctx, r, chars); err != nil {
		t.Fatalf("InsertResult: %v", err)
	}

	svc := NewService(st)
	dash, err := svc.Dashboard(ctx, now)
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}

	if dash.Summary.Sessions != 1 || dash.Summary.BestWPM != 75 {
		t.Errorf("summary = %+v", dash.Summary)
	}
	if len(dash.Daily) != 30 {
		t.Errorf("daily series length = %d", len(dash.Daily))
	}
	if len(dash.WeakKeys) != 1 || dash.WeakKeys[0].Char != "q" {
		t.Errorf("weak keys = %+v", dash.WeakKeys)
	}
}

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/typerush/typerush/internal/typing"
)

// Session modes recorded with each result.
const (
	ModeRandom    = "random"
	ModeCustom    = "custom"
	ModeChallenge = "challenge"
	ModeGenerated = "generated"
)

// Result is one persisted typing session outcome.
type Result struct {
	ID          string
	CreatedAt   time.Time
	Mode        string
	ChallengeID string
	WPM         int
	Accuracy    float64
	Completed   bool
	DurationSec int
	CharsTyped  int
	Synced      bool
}

// NewResult builds a Result from a finished session.
func NewResult(mode, challengeID string, res typing.SessionResult, durationSec, charsTyped int) Result {
	return Result{
		ID:          uuid.NewString(),
		CreatedAt:   time.Now().UTC(),
		Mode:        mode,
		ChallengeID: challengeID,
		WPM:         res.WPM,
		Accuracy:    res.Accuracy,
		Completed:   res.Completed,
		DurationSec: durationSec,
		CharsTyped:  charsTyped,
	}
}

// InsertResult stores a session result together with its per-character
// stats in one transaction.
func (s *Store) InsertResult(ctx context.Context, r Result, chars []typing.CharStat) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO results (id, created_at, mode, challenge_id, wpm, accuracy, completed, duration_sec, chars_typed, synced)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID,
		r.CreatedAt.Format(time.RFC3339Nano),
		r.Mode,
		r.ChallengeID,
		r.WPM,
		r.Accuracy,
		boolToInt(r.Completed),
		r.DurationSec,
		r.CharsTyped,
		boolToInt(r.Synced),
	)
	if err != nil {
		return err
	}

	if len(chars) > 0 {
		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO char_stats (result_id, char, correct, incorrect) VALUES (?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for _, cs := range chars {
			if _, err := stmt.ExecContext(ctx, r.ID, cs.Char, cs.Correct, cs.Incorrect); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// RecentResults returns the most recent results, newest first.
func (s *Store) RecentResults(ctx context.Context, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, mode, challenge_id, wpm, accuracy, completed, duration_sec, chars_typed, synced
		 FROM results ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanResults(rows)
}

// ResultsSince returns all results created at or after from, oldest first.
func (s *Store) ResultsSince(ctx context.Context, from time.Time) ([]Result, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, mode, challenge_id, wpm, accuracy, completed, duration_sec, chars_typed, synced
		 FROM results WHERE created_at >= ? ORDER BY created_at ASC`,
		from.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanResults(rows)
}

// UnsyncedResults returns results not yet pushed to the account service.
func (s *Store) UnsyncedResults(ctx context.Context) ([]Result, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, mode, challenge_id, wpm, accuracy, completed, duration_sec, chars_typed, synced
		 FROM results WHERE synced = 0 ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanResults(rows)
}

// MarkSynced flags a result as pushed to the account service.
func (s *Store) MarkSynced(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE results SET synced = 1 WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("result %s not found", id)
	}
	return nil
}

// WeakChars aggregates character stats over the most recent sessions,
// worst hit rate first.
func (s *Store) WeakChars(ctx context.Context, window int) ([]CharAggregate, error) {
	if window <= 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx,
		`WITH recent AS (
			SELECT id FROM results ORDER BY created_at DESC LIMIT ?
		)
		SELECT cs.char, SUM(cs.correct), SUM(cs.incorrect)
		FROM char_stats cs
		JOIN recent r ON r.id = cs.result_id
		GROUP BY cs.char
		HAVING SUM(cs.correct) + SUM(cs.incorrect) > 0
		ORDER BY CAST(SUM(cs.incorrect) AS REAL) / (SUM(cs.correct) + SUM(cs.incorrect)) DESC, cs.char ASC`,
		window)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CharAggregate
	for rows.Next() {
		var a CharAggregate
		if err := rows.Scan(&a.Char, &a.Correct, &a.Incorrect); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// CharAggregate is the summed hit and miss count for one character
// across sessions.
type CharAggregate struct {
	Char      string
	Correct   int
	Incorrect int
}

// MissRate returns the fraction of keystrokes against this character
// that missed.
func (a CharAggregate) MissRate() float64 {
	total := a.Correct + a.Incorrect
	if total == 0 {
		return 0
	}
	return float64(a.Incorrect) / float64(total)
}

func scanResults(rows *sql.Rows) ([]Result, error) {
	var out []Result
	for rows.Next() {
		var (
			r         Result
			createdAt string
			completed int
			synced    int
		)
		if err := rows.Scan(&r.ID, &createdAt, &r.Mode, &r.ChallengeID, &r.WPM, &r.Accuracy, &completed, &r.DurationSec, &r.CharsTyped, &synced); err != nil {
			return nil, err
		}
		t, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at %q: %w", createdAt, err)
		}
		r.CreatedAt = t
		r.Completed = completed != 0
		r.Synced = synced != 0
		out = append(out, r)
	}
	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

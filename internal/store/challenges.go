package store

import (
	"context"
	"time"
)

// ChallengeCompletion records the first passing run of a challenge.
type ChallengeCompletion struct {
	ChallengeID string
	ResultID    string
	CompletedAt time.Time
}

// MarkChallengeCompleted records a passing run. A challenge stays
// completed; repeat passes keep the first record.
func (s *Store) MarkChallengeCompleted(ctx context.Context, challengeID, resultID string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO challenge_completions (challenge_id, result_id, completed_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(challenge_id) DO NOTHING`,
		challengeID, resultID, time.Now().UTC().Format(time.RFC3339Nano))
	return err
}

// CompletedChallenges returns the set of completed challenge IDs.
func (s *Store) CompletedChallenges(ctx context.Context) (map[string]ChallengeCompletion, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT challenge_id, result_id, completed_at FROM challenge_completions`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]ChallengeCompletion)
	for rows.Next() {
		var (
			c  ChallengeCompletion
			ts string
		)
		if err := rows.Scan(&c.ChallengeID, &c.ResultID, &ts); err != nil {
			return nil, err
		}
		if c.CompletedAt, err = time.Parse(time.RFC3339Nano, ts); err != nil {
			return nil, err
		}
		out[c.ChallengeID] = c
	}
	return out, rows.Err()
}

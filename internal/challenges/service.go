package challenges

import (
	"context"
	"fmt"
	"time"

	"github.com/typerush/typerush/internal/content"
	"github.com/typerush/typerush/internal/store"
	"github.com/typerush/typerush/internal/typing"
)

// Item is a challenge joined with its completion state.
type Item struct {
	typing.Challenge
	Completed   bool
	CompletedAt time.Time
}

// Service resolves challenge content and records passes.
type Service struct {
	store *store.Store
	src   *content.Source
}

// NewService creates a challenge service over the local store.
func NewService(st *store.Store, src *content.Source) *Service {
	return &Service{store: st, src: src}
}

// List returns the catalog joined with completion state.
func (s *Service) List(ctx context.Context) ([]Item, error) {
	done, err := s.store.CompletedChallenges(ctx)
	if err != nil {
		return nil, fmt.Errorf("load completions: %w", err)
	}

	items := make([]Item, 0, len(catalog))
	for _, c := range catalog {
		item := Item{Challenge: c}
		if rec, ok := done[c.ID]; ok {
			item.Completed = true
			item.CompletedAt = rec.CompletedAt
		}
		items = append(items, item)
	}
	return items, nil
}

// SessionText resolves the text a challenge run uses. Challenges without
// pinned content draw from the snippet catalog for their type.
func (s *Service) SessionText(c *typing.Challenge) string {
	difficulty := "medium"
	switch c.Type {
	case typing.ChallengeAccuracy, typing.ChallengeCode:
		difficulty = "hard"
	case typing.ChallengeEndurance, typing.ChallengePrecision:
		difficulty = "expert"
	}
	return s.src.ForChallenge(c, difficulty)
}

// RecordPass marks a challenge as completed by the given result.
func (s *Service) RecordPass(ctx context.Context, challengeID, resultID string) error {
	if _, ok := Lookup(challengeID); !ok {
		return fmt.Errorf("unknown challenge %q", challengeID)
	}
	return s.store.MarkChallengeCompleted(ctx, challengeID, resultID)
}

package content

import (
	"math/rand"

	"github.com/typerush/typerush/internal/typing"
)

// Source picks session text. It is seeded explicitly so tests can pin
// the selection.
type Source struct {
	rng *rand.Rand
}

// NewSource creates a Source with its own RNG.
func NewSource(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// RandomParagraph returns one paragraph from the built-in catalog.
func (s *Source) RandomParagraph() string {
	return builtinParagraphs[s.rng.Intn(len(builtinParagraphs))]
}

// Pick returns a random element of texts, falling back to the built-in
// catalog when texts is empty.
func (s *Source) Pick(texts []string) string {
	if len(texts) == 0 {
		return s.RandomParagraph()
	}
	return texts[s.rng.Intn(len(texts))]
}

// ForChallenge resolves the text a challenge session runs against. The
// challenge's pinned content wins. Otherwise a snippet of the matching
// type is picked, preferring the requested difficulty, and when no
// catalog exists for the type the built-in paragraphs serve as fallback.
func (s *Source) ForChallenge(c *typing.Challenge, difficulty string) string {
	if c != nil && c.Content != "" {
		return c.Content
	}
	if c == nil {
		return s.RandomParagraph()
	}

	pool := snippets[c.Type]
	if len(pool) == 0 {
		return s.RandomParagraph()
	}

	var matched []Snippet
	for _, sn := range pool {
		if sn.Difficulty == difficulty {
			matched = append(matched, sn)
		}
	}
	if len(matched) == 0 {
		matched = pool
	}
	return matched[s.rng.Intn(len(matched))].Text
}

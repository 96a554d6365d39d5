// Package textgen generates practice paragraphs with an LLM. Providers
// share one request shape and one output schema; the factory wraps the
// selected provider with retry middleware.
package textgen

import (
	"context"
	"fmt"
	"strings"
)

// Provider is the core abstraction for paragraph generation.
type Provider interface {
	// Paragraph generates one practice paragraph for the request. The
	// returned text has been validated against the paragraph schema.
	Paragraph(ctx context.Context, req Request) (*Paragraph, error)

	// ModelID returns the model identifier this provider is configured
	// to use.
	ModelID() string
}

// Request describes the paragraph to generate.
type Request struct {
	// Topic steers the subject matter. Empty means the model picks.
	Topic string

	// Difficulty is one of easy, medium, hard, expert. It controls
	// vocabulary and sentence complexity, not length.
	Difficulty string

	// Words is the approximate word count. Zero means the default.
	Words int
}

// Paragraph is the validated generation output.
type Paragraph struct {
	Topic string `json:"topic"`
	Text  string `json:"text"`
}

const (
	defaultWords = 80
	minWords     = 30
	maxWords     = 200

	// maxTokens comfortably covers maxWords plus JSON framing.
	maxTokens = 1024
)

const systemPrompt = "You write typing practice paragraphs. " +
	"Use plain ASCII characters only: no em dashes, curly quotes, or special symbols. " +
	"Write flowing prose without headings or lists. " +
	"Respond with JSON matching the requested schema."

// normalize fills request defaults and clamps the word count.
func (r Request) normalize() Request {
	if r.Difficulty == "" {
		r.Difficulty = "medium"
	}
	if r.Words == 0 {
		r.Words = defaultWords
	}
	if r.Words < minWords {
		r.Words = minWords
	}
	if r.Words > maxWords {
		r.Words = maxWords
	}
	return r
}

// userPrompt renders the generation instruction for a normalized request.
func (r Request) userPrompt() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write one %s-difficulty practice paragraph of about %d words.", r.Difficulty, r.Words)
	if r.Topic != "" {
		fmt.Fprintf(&b, " The topic is: %s.", r.Topic)
	}
	b.WriteString(" Set the topic field to a two or three word label for the paragraph.")
	return b.String()
}

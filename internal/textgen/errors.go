package textgen

import (
	"encoding/json"
	"fmt"
	"time"
)

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidParagraph indicates the model returned content that does not
// conform to the paragraph schema.
type ErrInvalidParagraph struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidParagraph) Error() string {
	return fmt.Sprintf("invalid paragraph response: %v", e.Err)
}

func (e *ErrInvalidParagraph) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("text generation provider unavailable: %v", e.Err)
	}
	return "text generation provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrTruncated indicates the response hit the token limit before the
// paragraph was complete.
type ErrTruncated struct {
	Content json.RawMessage
}

func (e *ErrTruncated) Error() string {
	return "paragraph response truncated: token limit reached"
}

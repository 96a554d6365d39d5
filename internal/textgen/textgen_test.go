package textgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestRequestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Request
		want Request
	}{
		{"defaults", Request{}, Request{Difficulty: "medium", Words: defaultWords}},
		{"clamp low", Request{Difficulty: "hard", Words: 5}, Request{Difficulty: "hard", Words: minWords}},
		{"clamp high", Request{Difficulty: "easy", Words: 900}, Request{Difficulty: "easy", Words: maxWords}},
		{"in range", Request{Topic: "space", Difficulty: "expert", Words: 120}, Request{Topic: "space", Difficulty: "expert", Words: 120}},
	}

	for _, tt := range tests {
		if got := tt.in.normalize(); got != tt.want {
			t.Errorf("%s: normalize() = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestUserPrompt(t *testing.T) {
	p := Request{Topic: "deep sea creatures", Difficulty: "hard", Words: 100}.userPrompt()
	for _, want := range []string{"hard", "100", "deep sea creatures"} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q: %s", want, p)
		}
	}

	p = Request{Difficulty: "medium", Words: 80}.userPrompt()
	if strings.Contains(p, "topic is") {
		t.Errorf("topicless prompt mentions a topic: %s", p)
	}
}

func TestParseParagraph(t *testing.T) {
	long := strings.Repeat("practice makes perfect ", 5)

	raw := json.RawMessage(`{"topic": "Practice", "text": "` + long + `"}`)
	p, err := parseParagraph(raw)
	if err != nil {
		t.Fatalf("parseParagraph: %v", err)
	}
	if p.Topic != "Practice" {
		t.Errorf("topic = %q", p.Topic)
	}
	if strings.Contains(p.Text, "  ") || strings.HasSuffix(p.Text, " ") {
		t.Errorf("whitespace not collapsed: %q", p.Text)
	}

	invalid := []string{
		`not json`,
		`{"topic": "x"}`,
		`{"text": "` + long + `"}`,
		`{"topic": "x", "text": "too short"}`,
	}
	for _, in := range invalid {
		_, err := parseParagraph(json.RawMessage(in))
		var invErr *ErrInvalidParagraph
		if !errors.As(err, &invErr) {
			t.Errorf("parseParagraph(%q) error = %v, want ErrInvalidParagraph", in, err)
		}
	}
}

func TestRetryTransientThenSuccess(t *testing.T) {
	good := &Paragraph{Topic: "t", Text: "some decent paragraph text"}
	mock := NewMockProvider(
		MockResult{Err: &ErrProviderUnavailable{}},
		MockResult{Paragraph: good},
	)
	p := WithRetry(mock, RetryConfig{MaxAttempts: 3, InitialWait: time.Millisecond, MaxWait: 2 * time.Millisecond, Multiplier: 2})

	got, err := p.Paragraph(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Paragraph: %v", err)
	}
	if got != good {
		t.Errorf("unexpected paragraph: %+v", got)
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want 2", mock.CallCount())
	}
}

func TestRetryGivesUpAfterMaxAttempts(t *testing.T) {
	mock := NewMockProvider()
	p := WithRetry(mock, RetryConfig{MaxAttempts: 3, InitialWait: time.Millisecond, MaxWait: 2 * time.Millisecond, Multiplier: 2})

	_, err := p.Paragraph(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("error = %v, want ErrProviderUnavailable", err)
	}
	if mock.CallCount() != 3 {
		t.Errorf("calls = %d, want 3", mock.CallCount())
	}
}

func TestRetryInvalidParagraphOnlyOnce(t *testing.T) {
	mock := NewMockProvider(
		MockResult{Err: &ErrInvalidParagraph{Err: errors.New("bad")}},
		MockResult{Err: &ErrInvalidParagraph{Err: errors.New("bad again")}},
		MockResult{Paragraph: &Paragraph{Topic: "t", Text: "never reached"}},
	)
	p := WithRetry(mock, RetryConfig{MaxAttempts: 5, InitialWait: time.Millisecond, MaxWait: 2 * time.Millisecond, Multiplier: 2})

	_, err := p.Paragraph(context.Background(), Request{})
	var inv *ErrInvalidParagraph
	if !errors.As(err, &inv) {
		t.Fatalf("error = %v, want ErrInvalidParagraph", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want 2 (invalid retried once)", mock.CallCount())
	}
}

func TestRetryDoesNotRetryTruncation(t *testing.T) {
	mock := NewMockProvider(MockResult{Err: &ErrTruncated{}})
	p := WithRetry(mock, RetryConfig{MaxAttempts: 3, InitialWait: time.Millisecond, MaxWait: 2 * time.Millisecond, Multiplier: 2})

	_, err := p.Paragraph(context.Background(), Request{})
	var trunc *ErrTruncated
	if !errors.As(err, &trunc) {
		t.Fatalf("error = %v, want ErrTruncated", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", mock.CallCount())
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("TYPERUSH_TEXTGEN_PROVIDER", "openai")
	t.Setenv("TYPERUSH_OPENAI_API_KEY", "sk-test")
	t.Setenv("TYPERUSH_OPENAI_MODEL", "gpt-4o")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" || cfg.OpenAI.APIKey != "sk-test" || cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("cfg = %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Error("anthropic without key accepted")
	}

	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Errorf("mock provider rejected: %v", err)
	}

	cfg.Provider = "telepathy"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown provider accepted")
	}
}

func TestNewProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"
	p, err := NewProvider(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Errorf("ModelID = %q", p.ModelID())
	}

	cfg.Provider = "nope"
	if _, err := NewProvider(context.Background(), cfg); err == nil {
		t.Error("unknown provider accepted")
	}
}

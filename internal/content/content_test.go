package content

import (
	"strings"
	"testing"

	"github.com/typerush/typerush/internal/typing"
)

func TestParagraphCatalog(t *testing.T) {
	paras := Paragraphs()
	if len(paras) == 0 {
		t.Fatal("empty paragraph catalog")
	}
	for i, p := range paras {
		if strings.TrimSpace(p) == "" {
			t.Errorf("paragraph %d is blank", i)
		}
	}
}

func TestSourceRandomParagraph(t *testing.T) {
	s := NewSource(1)
	got := s.RandomParagraph()

	found := false
	for _, p := range Paragraphs() {
		if p == got {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("RandomParagraph() returned text outside the catalog: %q", got)
	}
}

func TestSourcePickFallsBack(t *testing.T) {
	s := NewSource(1)
	if got := s.Pick(nil); got == "" {
		t.Error("Pick(nil) returned empty text")
	}
	if got := s.Pick([]string{"only option"}); got != "only option" {
		t.Errorf("Pick() = %q, want %q", got, "only option")
	}
}

func TestSourceForChallenge(t *testing.T) {
	s := NewSource(7)

	// Pinned content always wins.
	c := &typing.Challenge{Type: typing.ChallengeSpeed, Content: "pinned text"}
	if got := s.ForChallenge(c, "medium"); got != "pinned text" {
		t.Errorf("ForChallenge() ignored pinned content: %q", got)
	}

	// Without pinned content, the text comes from the type's catalog.
	c = &typing.Challenge{Type: typing.ChallengeAccuracy}
	got := s.ForChallenge(c, "hard")
	found := false
	for _, sn := range SnippetsFor(typing.ChallengeAccuracy) {
		if sn.Text == got {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("ForChallenge() returned text outside the accuracy catalog")
	}

	// Unknown type falls back to the paragraph catalog.
	c = &typing.Challenge{Type: typing.ChallengeType("unknown")}
	if got := s.ForChallenge(c, "medium"); got == "" {
		t.Error("ForChallenge() fallback returned empty text")
	}
}

func TestSnippetCatalogCoversAllTypes(t *testing.T) {
	types := []typing.ChallengeType{
		typing.ChallengeSpeed,
		typing.ChallengeAccuracy,
		typing.ChallengeEndurance,
		typing.ChallengePrecision,
		typing.ChallengeCode,
	}
	for _, ct := range types {
		if len(SnippetsFor(ct)) == 0 {
			t.Errorf("no snippets for challenge type %q", ct)
		}
	}
	for _, sn := range SnippetsFor(typing.ChallengeCode) {
		if sn.Language == "" {
			t.Errorf("code snippet %s has no language", sn.ID)
		}
	}
}

func TestImportCustomTexts(t *testing.T) {
	valid := `{"texts": [{"title": "My Essay", "content": "A passage long enough to practice on."}]}`
	texts, err := ImportCustomTexts([]byte(valid))
	if err != nil {
		t.Fatalf("ImportCustomTexts() error: %v", err)
	}
	if len(texts) != 1 || texts[0].Title != "My Essay" {
		t.Fatalf("unexpected result: %+v", texts)
	}

	invalid := []string{
		`not json`,
		`{}`,
		`{"texts": []}`,
		`{"texts": [{"title": "", "content": "long enough content here"}]}`,
		`{"texts": [{"title": "Too short", "content": "tiny"}]}`,
	}
	for _, in := range invalid {
		if _, err := ImportCustomTexts([]byte(in)); err == nil {
			t.Errorf("ImportCustomTexts(%q) accepted invalid input", in)
		}
	}
}

package challenges

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/typerush/typerush/internal/content"
	"github.com/typerush/typerush/internal/store"
	"github.com/typerush/typerush/internal/typing"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return NewService(st, content.NewSource(1))
}

func TestCatalogLookup(t *testing.T) {
	if len(Catalog()) == 0 {
		t.Fatal("empty catalog")
	}

	c, ok := Lookup("daily-1")
	if !ok {
		t.Fatal("daily-1 not found")
	}
	if c.Type != typing.ChallengeSpeed || c.Target != 80 {
		t.Errorf("daily-1 = %+v", c)
	}

	if _, ok := Lookup("nope"); ok {
		t.Error("Lookup found a challenge that does not exist")
	}
}

func TestListMergesCompletions(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	items, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	for _, it := range items {
		if it.Completed {
			t.Errorf("%s completed before any run", it.ID)
		}
	}

	res := store.NewResult(store.ModeChallenge, "daily-2", typing.SessionResult{WPM: 40, Accuracy: 99, Completed: true}, 60, 260)
	if err := s.store.InsertResult(ctx, res, nil); err != nil {
		t.Fatalf("InsertResult: %v", err)
	}
	if err := s.RecordPass(ctx, "daily-2", res.ID); err != nil {
		t.Fatalf("RecordPass: %v", err)
	}

	items, err = s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	for _, it := range items {
		if it.ID == "daily-2" && !it.Completed {
			t.Error("daily-2 not marked completed")
		}
		if it.ID != "daily-2" && it.Completed {
			t.Errorf("%s unexpectedly completed", it.ID)
		}
	}
}

func TestRecordPassUnknownChallenge(t *testing.T) {
	s := newTestService(t)
	if err := s.RecordPass(context.Background(), "bogus", "r1"); err == nil {
		t.Error("RecordPass accepted an unknown challenge")
	}
}

func TestSessionText(t *testing.T) {
	s := newTestService(t)

	c := typing.Challenge{ID: "x", Type: typing.ChallengeCode, Content: "pinned"}
	if got := s.SessionText(&c); got != "pinned" {
		t.Errorf("pinned content ignored: %q", got)
	}

	for _, c := range Catalog() {
		c := c
		if got := s.SessionText(&c); got == "" {
			t.Errorf("empty session text for %s", c.ID)
		}
	}
}

package typing

import (
	"strings"
	"testing"
)

func TestEngineAccuracy(t *testing.T) {
	e := NewEngine("the quick brown fox", NewCountdown(60), nil)

	// No typing yet: accuracy is vacuously perfect, WPM is zero.
	m := e.Metrics()
	if m.Accuracy != 100 {
		t.Errorf("initial accuracy = %v, want 100", m.Accuracy)
	}
	if m.WPM != 0 {
		t.Errorf("initial WPM = %v, want 0", m.WPM)
	}

	e.OnInput("the quick")
	if got := e.Metrics().Accuracy; got != 100 {
		t.Errorf("accuracy on perfect input = %v, want 100", got)
	}

	e.OnInput("the quack")
	m = e.Metrics()
	if m.CorrectChars != 8 || m.TotalTyped != 9 {
		t.Errorf("correct/typed = %d/%d, want 8/9", m.CorrectChars, m.TotalTyped)
	}
	want := 100 * 8.0 / 9.0
	if m.Accuracy != want {
		t.Errorf("accuracy = %v, want %v", m.Accuracy, want)
	}

	// Deleting the error restores full accuracy.
	e.OnInput("the qu")
	if got := e.Metrics().Accuracy; got != 100 {
		t.Errorf("accuracy after correction = %v, want 100", got)
	}
}

func TestEngineAccuracyBounds(t *testing.T) {
	e := NewEngine("abcdefgh", NewCountdown(60), nil)

	inputs := []string{"a", "zz", "zzz", "abcz", "", "abcdefgh"}
	for _, in := range inputs {
		r := e.OnInput(in)
		if r.Accuracy < 0 || r.Accuracy > 100 {
			t.Errorf("OnInput(%q) accuracy = %v, out of [0, 100]", in, r.Accuracy)
		}
		if r.WPM < 0 {
			t.Errorf("OnInput(%q) WPM = %v, negative", in, r.WPM)
		}
	}
}

func TestEngineWPM(t *testing.T) {
	e := NewEngine("alpha beta gamma delta", NewCountdown(60), nil)

	r := e.OnInput("alpha beta")
	if r.WPM != 0 {
		t.Errorf("WPM before any tick = %v, want 0", r.WPM)
	}

	// 30 seconds in, 2 complete words plus a partial third count as 3
	// whitespace-delimited tokens: 3 words / 0.5 min = 6 WPM.
	for i := 0; i < 30; i++ {
		e.Tick()
	}
	r = e.OnInput("alpha beta g")
	if r.WPM != 6 {
		t.Errorf("WPM = %v, want 6", r.WPM)
	}
}

func TestEngineClockStartsOnFirstKeystroke(t *testing.T) {
	clock := NewCountdown(60)
	e := NewEngine("hello world", clock, nil)

	e.OnInput("")
	if clock.State() != ClockIdle {
		t.Error("empty input started the clock")
	}
	e.OnInput("h")
	if clock.State() != ClockRunning {
		t.Error("first keystroke did not start the clock")
	}
}

func TestEngineRejectsOverflow(t *testing.T) {
	text := strings.Repeat("a", 250)
	e := NewEngine(text, NewCountdown(60), nil)
	e.OnInput("aaa")

	// 251 characters against a 250-character final window.
	r := e.OnInput(strings.Repeat("a", 251))
	if !r.Rejected {
		t.Fatal("overlong input was not rejected")
	}
	if got := e.Input(); got != "aaa" {
		t.Errorf("input state changed on rejection: %q", got)
	}
	if got := e.Metrics().TotalTyped; got != 3 {
		t.Errorf("metrics changed on rejection: TotalTyped = %d", got)
	}
}

func TestEnginePagination(t *testing.T) {
	text := strings.Repeat("a", 550)
	e := NewEngine(text, NewCountdown(600), nil)

	fill := strings.Repeat("a", 250)
	r := e.OnInput(fill)
	if !r.PageAdvanced {
		t.Fatal("filling page 1 did not advance")
	}
	if got := e.PageStart(); got != 250 {
		t.Fatalf("page start = %d, want 250", got)
	}
	if e.Input() != "" {
		t.Fatalf("input not reset on page advance: %q", e.Input())
	}

	r = e.OnInput(fill)
	if !r.PageAdvanced {
		t.Fatal("filling page 2 did not advance")
	}
	if got := e.PageStart(); got != 500 {
		t.Fatalf("page start = %d, want 500", got)
	}

	// Final page holds the remaining 50 characters; an exact match ends
	// the session.
	r = e.OnInput(strings.Repeat("a", 50))
	if r.PageAdvanced {
		t.Error("last page advanced")
	}
	if !r.SessionComplete {
		t.Fatal("exact match on last page did not complete the session")
	}

	res, ok := e.Result()
	if !ok {
		t.Fatal("no result after completion")
	}
	if !res.Completed {
		t.Error("result not marked completed")
	}
}

func TestEngineNoCompletionOnImperfectLastPage(t *testing.T) {
	e := NewEngine("abc", NewCountdown(60), nil)

	r := e.OnInput("abx")
	if r.SessionComplete {
		t.Error("session completed despite a wrong character")
	}
	r = e.OnInput("abc")
	if !r.SessionComplete {
		t.Error("session did not complete on exact match")
	}
}

func TestEngineCompletionIsIdempotent(t *testing.T) {
	clock := NewCountdown(60)
	challenge := &Challenge{ID: "c1", Type: ChallengeAccuracy, Target: 90}
	e := NewEngine("done", clock, challenge)

	e.OnInput("done")
	if !e.Complete() {
		t.Fatal("session not complete")
	}
	if clock.State() != ClockStopped {
		t.Error("clock not stopped on completion")
	}

	res1, _ := e.Result()
	if res1.ChallengePassed == nil || !*res1.ChallengePassed {
		t.Fatal("accuracy challenge should have passed")
	}

	// Late events must neither change metrics nor re-run evaluation.
	m := e.Metrics()
	r := e.OnInput("done but longer")
	if !r.SessionComplete {
		t.Error("late input not reported as complete")
	}
	e.Tick()
	if e.Metrics() != m {
		t.Errorf("metrics changed after completion: %+v -> %+v", m, e.Metrics())
	}
	res2, _ := e.Result()
	if res2.ChallengePassed == nil || *res2.ChallengePassed != *res1.ChallengePassed {
		t.Error("challenge verdict changed after completion")
	}
}

func TestEngineCharStats(t *testing.T) {
	e := NewEngine("abab", NewCountdown(60), nil)

	e.OnInput("a")
	e.OnInput("ax") // wrong, expected b
	e.OnInput("a")  // delete records nothing
	e.OnInput("ab") // retyped correctly

	stats := e.CharStats()
	if len(stats) != 2 {
		t.Fatalf("got %d char stats, want 2", len(stats))
	}
	if stats[0].Char != "a" || stats[0].Correct != 1 || stats[0].Incorrect != 0 {
		t.Errorf("stats for a = %+v", stats[0])
	}
	if stats[1].Char != "b" || stats[1].Correct != 1 || stats[1].Incorrect != 1 {
		t.Errorf("stats for b = %+v", stats[1])
	}
}

func TestEngineTimeUp(t *testing.T) {
	clock := NewCountdown(2)
	e := NewEngine("some long reference text", clock, nil)

	e.OnInput("some lo")
	if e.Tick() {
		t.Fatal("session ended a second early")
	}
	if !e.Tick() {
		t.Fatal("session did not end when the clock expired")
	}

	res, ok := e.Result()
	if !ok {
		t.Fatal("no result after time up")
	}
	if res.Accuracy != 100 {
		t.Errorf("final accuracy = %v, want 100", res.Accuracy)
	}
	if res.WPM != 60 {
		// 2 tokens in 2 seconds.
		t.Errorf("final WPM = %d, want 60", res.WPM)
	}

	r := e.OnInput("some long")
	if !r.SessionComplete {
		t.Error("input after time up not reported as complete")
	}
}

func TestEngineEnduranceSession(t *testing.T) {
	c := &Challenge{ID: "endure", Type: ChallengeEndurance, Target: 10}
	clock := ClockFor(c, 60)
	if clock.Limit() != 600 {
		t.Fatalf("endurance clock limit = %d, want 600", clock.Limit())
	}

	e := NewEngine(strings.Repeat("word ", 200), clock, c)
	e.OnInput("word")
	for i := 0; i < 600; i++ {
		if e.Tick() {
			if i != 599 {
				t.Fatalf("session ended at tick %d, want 599", i)
			}
		}
	}

	res, ok := e.Result()
	if !ok {
		t.Fatal("no result after the endurance run")
	}
	if res.ChallengePassed == nil || !*res.ChallengePassed {
		t.Error("endurance challenge should pass on reaching time")
	}
}

// Package typing implements the session measurement engine: pagination of
// the reference text, the session clock, per-keystroke accuracy and WPM
// measurement, completion detection, and challenge evaluation.
//
// One Engine owns exactly one session. It is driven by two event sources,
// text-input change events (OnInput) and a one-second timer (Tick), and is
// not safe for concurrent use; a session runs on a single goroutine.
package typing

import (
	"math"
	"sort"
	"strings"
)

// Metrics are the live session measurements. They are recomputed from
// scratch on every input event, so they stay consistent with the current
// input even after deletes and retypes.
type Metrics struct {
	CorrectChars int
	TotalTyped   int
	Accuracy     float64 // percentage in [0, 100]
	WPM          float64
}

// SessionResult is produced exactly once, when the session ends.
// ChallengePassed is nil when no challenge was active.
type SessionResult struct {
	WPM             int
	Accuracy        float64
	Completed       bool
	ChallengePassed *bool
}

// InputResult is what OnInput reports back to the presentation layer.
type InputResult struct {
	Accuracy        float64
	WPM             float64
	PageAdvanced    bool
	SessionComplete bool
	Rejected        bool
}

// Engine consumes input deltas against the paginated reference text and
// derives accuracy, WPM, completion state, and the challenge verdict.
type Engine struct {
	pager     *Paginator
	clock     *Clock
	challenge *Challenge

	input    []rune // typed text within the current page only
	chars    map[rune]*CharStat
	metrics  Metrics
	complete bool
	result   SessionResult
}

// CharStat counts hits and misses for one expected character. A
// corrected character counts twice, once wrong and once right, because
// the stat tracks keystrokes rather than final text.
type CharStat struct {
	Char      string
	Correct   int
	Incorrect int
}

// NewEngine creates an engine for one session over text. challenge may be
// nil for plain practice.
func NewEngine(text string, clock *Clock, challenge *Challenge) *Engine {
	return &Engine{
		pager:     NewPaginator(text, DefaultPageSize),
		clock:     clock,
		challenge: challenge,
		chars:     make(map[rune]*CharStat),
		metrics:   Metrics{Accuracy: 100}, // vacuous accuracy before any typing
	}
}

// OnInput processes the full typed text for the current page, in order:
// pagination check, bounds check, session start, accuracy, WPM, and
// completion check. The keystroke that fills a non-final page is
// transitional: it advances the page and is not scored; metrics catch up
// on the next event against the new window.
func (e *Engine) OnInput(typed string) InputResult {
	if e.complete {
		return e.report(InputResult{SessionComplete: true})
	}

	in := []rune(typed)
	window := e.pager.Window()

	if len(in) >= len(window) && !e.pager.IsLast() {
		e.pager.Advance()
		e.input = in[len(window):]
		return e.report(InputResult{PageAdvanced: true})
	}

	// The UI must never allow typing past the visible window.
	if len(in) > len(window) {
		return e.report(InputResult{Rejected: true})
	}

	// A stopped clock means the session is over; no further input counts.
	if e.clock.State() == ClockStopped {
		return e.report(InputResult{Rejected: true})
	}

	if e.clock.State() == ClockIdle && len(in) > 0 {
		e.clock.Start()
	}

	e.recordKeystrokes(in)
	e.input = in
	e.recompute()

	if e.pager.IsLast() && runesEqual(in, window) {
		e.finish(true)
		return e.report(InputResult{SessionComplete: true})
	}
	return e.report(InputResult{})
}

// Tick advances the session clock by one second. When the limit is
// reached the session ends with whatever has been typed; completion
// handling runs identically to the exact-match path, minus the exact-match
// requirement. Returns true when this tick ended the session.
func (e *Engine) Tick() bool {
	if e.complete {
		return false
	}
	if !e.clock.Tick() {
		return false
	}
	e.recompute()
	e.finish(false)
	return true
}

// recordKeystrokes updates per-character stats for input that grew past
// the previous state. Deletions carry no new keystrokes against expected
// text, so they record nothing.
func (e *Engine) recordKeystrokes(in []rune) {
	window := e.pager.Window()
	for i := len(e.input); i < len(in) && i < len(window); i++ {
		want := window[i]
		st, ok := e.chars[want]
		if !ok {
			st = &CharStat{Char: string(want)}
			e.chars[want] = st
		}
		if in[i] == want {
			st.Correct++
		} else {
			st.Incorrect++
		}
	}
}

// recompute rebuilds Metrics from the current input state.
func (e *Engine) recompute() {
	window := e.pager.Window()
	correct := 0
	for i, r := range e.input {
		if i < len(window) && window[i] == r {
			correct++
		}
	}

	m := Metrics{CorrectChars: correct, TotalTyped: len(e.input)}
	if m.TotalTyped > 0 {
		m.Accuracy = 100 * float64(correct) / float64(m.TotalTyped)
	} else {
		m.Accuracy = 100
	}

	// WPM averages over the elapsed session, not the instant: words typed
	// across all pages divided by elapsed minutes. Zero until the first
	// whole second has passed, which avoids divide-by-near-zero spikes.
	words := len(strings.Fields(string(e.pager.Typed(e.input))))
	if mins := float64(e.clock.Elapsed()) / 60; mins > 0 {
		m.WPM = float64(words) / mins
	}
	e.metrics = m
}

// finish stops the clock, freezes the metrics, and evaluates the active
// challenge. It runs at most once per session. fullText reports whether
// the whole reference text was typed; a timeout ends the session with
// fullText false.
func (e *Engine) finish(fullText bool) {
	e.clock.Stop()
	e.complete = true
	res := SessionResult{
		WPM:       int(math.Round(e.metrics.WPM)),
		Accuracy:  e.metrics.Accuracy,
		Completed: fullText,
	}
	if e.challenge != nil {
		passed := Evaluate(*e.challenge, res)
		res.ChallengePassed = &passed
	}
	e.result = res
}

func (e *Engine) report(r InputResult) InputResult {
	r.Accuracy = e.metrics.Accuracy
	r.WPM = e.metrics.WPM
	return r
}

// CharStats returns per-character hit and miss counts for the session,
// ordered by character.
func (e *Engine) CharStats() []CharStat {
	out := make([]CharStat, 0, len(e.chars))
	for _, st := range e.chars {
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Char < out[j].Char })
	return out
}

// Window returns the visible reference text for the current page.
func (e *Engine) Window() string {
	return string(e.pager.Window())
}

// Input returns the text typed so far within the current page.
func (e *Engine) Input() string {
	return string(e.input)
}

// Metrics returns the live metrics.
func (e *Engine) Metrics() Metrics {
	return e.metrics
}

// Result returns the final session result. ok is false until the session
// has ended.
func (e *Engine) Result() (SessionResult, bool) {
	return e.result, e.complete
}

// Complete reports whether the session has ended.
func (e *Engine) Complete() bool {
	return e.complete
}

// Progress returns overall completion through the full text in [0, 1].
func (e *Engine) Progress() float64 {
	return e.pager.Progress(len(e.input))
}

// Clock exposes the session clock for display.
func (e *Engine) Clock() *Clock {
	return e.clock
}

// Challenge returns the active challenge, or nil.
func (e *Engine) Challenge() *Challenge {
	return e.challenge
}

// PageStart returns the character offset of the current page.
func (e *Engine) PageStart() int {
	return e.pager.Start()
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

package session

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/typerush/typerush/internal/challenges"
	"github.com/typerush/typerush/internal/config"
	"github.com/typerush/typerush/internal/content"
	"github.com/typerush/typerush/internal/router"
	"github.com/typerush/typerush/internal/screen"
	"github.com/typerush/typerush/internal/screens/summary"
	"github.com/typerush/typerush/internal/store"
	"github.com/typerush/typerush/internal/themes"
	"github.com/typerush/typerush/internal/typing"
	"github.com/typerush/typerush/internal/ui/components"
	"github.com/typerush/typerush/internal/ui/layout"
)

// Deps are the services a typing session needs.
type Deps struct {
	Store      *store.Store
	Source     *content.Source
	Challenges *challenges.Service
	Theme      *themes.Active
	Settings   config.Settings
}

// Params describe one session to run.
type Params struct {
	Text        string
	Mode        string
	Challenge   *typing.Challenge
	DurationSec int
}

type phase int

const (
	phaseSetup phase = iota
	phaseTyping
	phaseSaving
)

// SessionScreen runs a typing session from duration pick to saved result.
type SessionScreen struct {
	deps   Deps
	params Params

	phase       phase
	picker      components.Picker
	engine      *typing.Engine
	gen         uint64
	quitConfirm bool
	saveErr     error
}

// tickGen numbers typing runs across all session screens so a tick
// scheduled by one run can never drive another.
var tickGen atomic.Uint64

// bellWriter receives the completion bell. The BEL byte is invisible
// to the renderer so writing it straight to the terminal is safe.
var bellWriter io.Writer = os.Stdout

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.EscOwner = (*SessionScreen)(nil)

// NewSetup creates a quick play session that starts with a duration pick.
func NewSetup(deps Deps, defaultDuration int) *SessionScreen {
	options := make([]string, len(config.DurationOptions))
	initial := 0
	for i, d := range config.DurationOptions {
		options[i] = strconv.Itoa(d)
		if d == defaultDuration {
			initial = i
		}
	}

	return &SessionScreen{
		deps:   deps,
		phase:  phaseSetup,
		picker: components.NewPicker("Duration (seconds)", options, initial),
	}
}

// New creates a session over prepared content, skipping setup. Used by
// the challenge and custom text screens.
func New(deps Deps, params Params) *SessionScreen {
	s := &SessionScreen{deps: deps, params: params}
	s.start()
	return s
}

// start builds the engine and enters the typing phase.
func (s *SessionScreen) start() {
	if s.params.DurationSec == 0 {
		s.params.DurationSec = s.deps.Settings.Duration
	}
	if s.params.Text == "" && s.deps.Source != nil {
		s.params.Text = s.deps.Source.RandomParagraph()
	}
	if s.params.Mode == "" {
		s.params.Mode = store.ModeRandom
	}

	clock := typing.ClockFor(s.params.Challenge, s.params.DurationSec)
	s.engine = typing.NewEngine(s.params.Text, clock, s.params.Challenge)
	s.gen = tickGen.Add(1)
	s.phase = phaseTyping
}

func (s *SessionScreen) Init() tea.Cmd {
	if s.phase == phaseTyping {
		return s.tick()
	}
	return nil
}

// tick schedules the next clock advance, stamped with the current run.
func (s *SessionScreen) tick() tea.Cmd {
	gen := s.gen
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return clockTickMsg{gen: gen}
	})
}

func (s *SessionScreen) Title() string {
	if s.params.Challenge != nil {
		return s.params.Challenge.Title
	}
	return "Session"
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.quitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "Abandon session"},
			{Key: "N", Description: "Keep typing"},
		}
	case s.phase == phaseSetup:
		return []layout.KeyHint{
			{Key: "←→", Description: "Duration"},
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Quit session"},
		}
	}
}

// OwnsEsc keeps Esc inside the screen while a run is in progress so it
// can ask for confirmation instead of abandoning the session outright.
func (s *SessionScreen) OwnsEsc() bool {
	return s.phase == phaseTyping || s.quitConfirm
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case clockTickMsg:
		return s.handleTick(msg)

	case resultSavedMsg:
		return s.handleSaved(msg)

	case tea.PasteMsg:
		// Pasting the target text would defeat the measurement.
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *SessionScreen) handleTick(msg clockTickMsg) (screen.Screen, tea.Cmd) {
	if msg.gen != s.gen || s.phase != phaseTyping {
		return s, nil
	}
	if s.engine.Tick() {
		return s.finish()
	}
	return s, s.tick()
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	if s.phase == phaseSetup {
		switch key {
		case "enter":
			d, _ := strconv.Atoi(s.picker.Value())
			s.params.DurationSec = d
			s.start()
			return s, s.tick()
		default:
			var cmd tea.Cmd
			s.picker, cmd = s.picker.Update(msg)
			return s, cmd
		}
	}

	if s.phase != phaseTyping {
		return s, nil
	}

	switch key {
	case "esc":
		s.quitConfirm = true
		return s, nil
	case "backspace":
		in := []rune(s.engine.Input())
		if len(in) == 0 {
			return s, nil
		}
		s.engine.OnInput(string(in[:len(in)-1]))
		return s, nil
	}

	text := msg.Key().Text
	if text == "" {
		return s, nil
	}

	res := s.engine.OnInput(s.engine.Input() + text)
	if res.SessionComplete {
		return s.finish()
	}
	return s, nil
}

// finish transitions to saving and persists the result.
func (s *SessionScreen) finish() (screen.Screen, tea.Cmd) {
	s.phase = phaseSaving
	return s, s.saveCmd()
}

func (s *SessionScreen) saveCmd() tea.Cmd {
	engine := s.engine
	deps := s.deps
	params := s.params

	return func() tea.Msg {
		if deps.Settings.Sound {
			fmt.Fprint(bellWriter, "\a")
		}

		result, ok := engine.Result()
		if !ok {
			return resultSavedMsg{Err: fmt.Errorf("session not finished")}
		}

		challengeID := ""
		if params.Challenge != nil {
			challengeID = params.Challenge.ID
		}
		rec := store.NewResult(params.Mode, challengeID, result,
			engine.Clock().Elapsed(), len(engine.Input())+engine.PageStart())

		if deps.Store == nil {
			return resultSavedMsg{Result: rec}
		}

		ctx := context.Background()
		if err := deps.Store.InsertResult(ctx, rec, engine.CharStats()); err != nil {
			return resultSavedMsg{Result: rec, Err: err}
		}

		if challengeID != "" && result.ChallengePassed != nil && *result.ChallengePassed && deps.Challenges != nil {
			if err := deps.Challenges.RecordPass(ctx, challengeID, rec.ID); err != nil {
				return resultSavedMsg{Result: rec, Err: err}
			}
		}

		return resultSavedMsg{Result: rec}
	}
}

func (s *SessionScreen) handleSaved(msg resultSavedMsg) (screen.Screen, tea.Cmd) {
	s.saveErr = msg.Err

	result, _ := s.engine.Result()
	data := summary.Data{
		Result:    msg.Result,
		Challenge: s.params.Challenge,
		Passed:    result.ChallengePassed,
		CharStats: s.engine.CharStats(),
		SaveErr:   msg.Err,
	}

	deps := s.deps
	params := s.params
	retry := func() screen.Screen {
		again := params
		if again.Mode == store.ModeRandom {
			again.Text = "" // roll a fresh paragraph
		}
		return New(deps, again)
	}

	next := summary.New(data, retry)
	return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

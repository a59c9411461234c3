// Package lesson renders one lesson run: step-by-step content with
// gated interactions, driven by the sequencer.
package lesson

import (
	"errors"
	"math/rand/v2"

	tea "charm.land/bubbletea/v2"

	"github.com/jsalter/cmi5quest/internal/catalog"
	"github.com/jsalter/cmi5quest/internal/game"
	"github.com/jsalter/cmi5quest/internal/router"
	"github.com/jsalter/cmi5quest/internal/screen"
	"github.com/jsalter/cmi5quest/internal/sequencer"
	"github.com/jsalter/cmi5quest/internal/ui/components"
	"github.com/jsalter/cmi5quest/internal/ui/layout"
)

// column identifies which side of a matching board has the cursor.
type column int

const (
	colLeft column = iota
	colRight
)

// LessonScreen walks the player through one lesson.
type LessonScreen struct {
	ctx *game.Ctx
	seq *sequencer.Sequencer
	rng *rand.Rand

	// Practice state, reset per step.
	mc       components.MultiChoice
	practice *sequencer.PracticeResult

	// Sequence state, reset per step.
	arrangement []int
	cursor      int
	grabbed     bool
	solved      bool
	wrongOrder  bool

	// Matching state, reset per step.
	rightOrder  []int
	col         column
	pendingLeft int
	wrongMatch  bool

	gateHint bool
	outcome  *sequencer.Outcome
	bonusXP  int
}

var _ screen.Screen = (*LessonScreen)(nil)

// New starts the lesson at ref. Returns the sequencer's error when the
// lesson is still locked.
func New(ctx *game.Ctx, ref catalog.LessonRef) (*LessonScreen, error) {
	seq, err := sequencer.New(ctx.Catalog, ref, ctx.State, ctx.Reporter)
	if err != nil {
		return nil, err
	}
	rng := ctx.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	s := &LessonScreen{ctx: ctx, seq: seq, rng: rng}
	s.syncStep()
	return s, nil
}

// syncStep resets per-step interaction state for the current step.
func (s *LessonScreen) syncStep() {
	step := s.seq.Step()
	s.practice = nil
	s.arrangement = nil
	s.rightOrder = nil
	s.cursor = 0
	s.grabbed = false
	s.solved = false
	s.wrongOrder = false
	s.wrongMatch = false
	s.col = colLeft
	s.pendingLeft = -1
	s.gateHint = false
	s.bonusXP = 0

	switch step.Kind {
	case catalog.StepPractice:
		opts := make([]string, len(step.Choices))
		correct := -1
		for i, c := range step.Choices {
			opts[i] = c.Text
			if c.Correct {
				correct = i
			}
		}
		s.mc = components.NewMultiChoice(step.Question, opts, correct)

	case catalog.StepInteractive:
		switch step.Interactive {
		case catalog.InteractiveSequence:
			s.arrangement = s.rng.Perm(len(step.Items))
			s.ensureScrambled()
		case catalog.InteractiveMatching:
			s.rightOrder = s.rng.Perm(len(step.Pairs))
		}
	}
}

// ensureScrambled nudges an accidentally-ordered deal so the player
// always has something to do.
func (s *LessonScreen) ensureScrambled() {
	if len(s.arrangement) < 2 {
		return
	}
	sorted := true
	for i, v := range s.arrangement {
		if v != i {
			sorted = false
			break
		}
	}
	if sorted {
		s.arrangement[0], s.arrangement[1] = s.arrangement[1], s.arrangement[0]
	}
}

func (s *LessonScreen) Title() string {
	return s.seq.Lesson().Name
}

func (s *LessonScreen) Init() tea.Cmd {
	return nil
}

func (s *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.outcome != nil {
		if kmsg.String() == "enter" {
			s.ctx.Autosave()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	switch kmsg.String() {
	case "right", "n", "enter":
		if s.interactionWants(kmsg.String()) {
			return s.updateInteraction(msg)
		}
		return s, s.advance()
	case "left", "b":
		if s.seq.Index() > 0 {
			s.seq.Back()
			s.syncStep()
		}
		return s, nil
	}

	return s.updateInteraction(msg)
}

// interactionWants reports whether the active step's interaction should
// consume the given advance-ish key instead of the navigator.
func (s *LessonScreen) interactionWants(key string) bool {
	if key != "enter" {
		return false
	}
	step := s.seq.Step()
	switch step.Kind {
	case catalog.StepPractice:
		return s.practice == nil
	case catalog.StepInteractive:
		return !s.solved
	}
	return false
}

func (s *LessonScreen) advance() tea.Cmd {
	out, err := s.seq.Advance()
	if err != nil {
		var gate *sequencer.GateError
		if errors.As(err, &gate) {
			s.gateHint = true
		}
		return nil
	}
	if out != nil {
		s.outcome = out
		return nil
	}
	s.syncStep()
	return nil
}

func (s *LessonScreen) updateInteraction(msg tea.Msg) (screen.Screen, tea.Cmd) {
	step := s.seq.Step()
	switch step.Kind {
	case catalog.StepPractice:
		return s.updatePractice(msg)
	case catalog.StepInteractive:
		switch step.Interactive {
		case catalog.InteractiveSequence:
			return s.updateSequence(msg)
		case catalog.InteractiveMatching:
			return s.updateMatching(msg)
		}
	}
	return s, nil
}

func (s *LessonScreen) updatePractice(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.practice != nil {
		return s, nil
	}
	var cmd tea.Cmd
	s.mc, cmd = s.mc.Update(msg)
	if s.mc.Submitted {
		res, err := s.seq.AnswerPractice(s.mc.ChosenIndex)
		if err == nil {
			s.practice = &res
			s.bonusXP = res.XPEarned
		}
	}
	return s, cmd
}

func (s *LessonScreen) updateSequence(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || s.solved {
		return s, nil
	}

	n := len(s.arrangement)
	switch kmsg.String() {
	case "up", "k":
		if s.grabbed && s.cursor > 0 {
			s.arrangement[s.cursor], s.arrangement[s.cursor-1] = s.arrangement[s.cursor-1], s.arrangement[s.cursor]
			s.cursor--
		} else if !s.grabbed && s.cursor > 0 {
			s.cursor--
		}
		s.wrongOrder = false
	case "down", "j":
		if s.grabbed && s.cursor < n-1 {
			s.arrangement[s.cursor], s.arrangement[s.cursor+1] = s.arrangement[s.cursor+1], s.arrangement[s.cursor]
			s.cursor++
		} else if !s.grabbed && s.cursor < n-1 {
			s.cursor++
		}
		s.wrongOrder = false
	case "space", " ":
		s.grabbed = !s.grabbed
	case "enter":
		ok, xp, err := s.seq.CheckSequence(s.arrangement)
		if err != nil {
			return s, nil
		}
		if ok {
			s.solved = true
			s.bonusXP = xp
		} else {
			s.wrongOrder = true
		}
	}
	return s, nil
}

func (s *LessonScreen) updateMatching(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || s.solved {
		return s, nil
	}

	n := len(s.seq.Step().Pairs)
	switch kmsg.String() {
	case "up", "k":
		s.cursor = s.prevUnmatched(s.cursor, n)
	case "down", "j":
		s.cursor = s.nextUnmatched(s.cursor, n)
	case "enter":
		if s.col == colLeft {
			s.pendingLeft = s.cursor
			s.col = colRight
			s.cursor = s.firstUnmatchedRight(n)
			return s, nil
		}
		right := s.rightOrder[s.cursor]
		res, err := s.seq.SelectMatch(s.pendingLeft, right)
		if err != nil {
			return s, nil
		}
		s.wrongMatch = !res.Correct
		if res.Correct {
			s.col = colLeft
			s.pendingLeft = -1
			s.cursor = s.firstUnmatchedLeft(n)
		}
		if res.Done {
			s.solved = true
			s.bonusXP = res.XPEarned
		}
	case "backspace":
		if s.col == colRight {
			s.col = colLeft
			s.cursor = s.pendingLeft
			s.pendingLeft = -1
		}
	}
	return s, nil
}

// matchedAt reports whether the row at display position i in the given
// column is already matched.
func (s *LessonScreen) matchedAt(i int) bool {
	if s.col == colRight {
		return s.seq.Matched(s.rightOrder[i])
	}
	return s.seq.Matched(i)
}

func (s *LessonScreen) prevUnmatched(from, n int) int {
	for i := from - 1; i >= 0; i-- {
		if !s.matchedAt(i) {
			return i
		}
	}
	return from
}

func (s *LessonScreen) nextUnmatched(from, n int) int {
	for i := from + 1; i < n; i++ {
		if !s.matchedAt(i) {
			return i
		}
	}
	return from
}

func (s *LessonScreen) firstUnmatchedLeft(n int) int {
	for i := 0; i < n; i++ {
		if !s.seq.Matched(i) {
			return i
		}
	}
	return 0
}

func (s *LessonScreen) firstUnmatchedRight(n int) int {
	for i := 0; i < n; i++ {
		if !s.seq.Matched(s.rightOrder[i]) {
			return i
		}
	}
	return 0
}

// KeyHints returns the footer hints for the current step state.
func (s *LessonScreen) KeyHints() []layout.KeyHint {
	if s.outcome != nil {
		return []layout.KeyHint{{Key: "Enter", Description: "Continue"}}
	}
	step := s.seq.Step()
	if step.Kind == catalog.StepInteractive && !s.solved {
		if step.Interactive == catalog.InteractiveSequence {
			return []layout.KeyHint{
				{Key: "↑↓", Description: "Move"},
				{Key: "Space", Description: "Grab"},
				{Key: "Enter", Description: "Check"},
				{Key: "←", Description: "Back"},
			}
		}
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Pair"},
			{Key: "←", Description: "Back"},
		}
	}
	if step.Kind == catalog.StepPractice && s.practice == nil {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Answer"},
			{Key: "←", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "→/Enter", Description: "Next"},
		{Key: "←", Description: "Back"},
		{Key: "Esc", Description: "Leave Lesson"},
	}
}

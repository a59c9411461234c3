// Package sequencer drives a single lesson: an ordered walk through the
// lesson's steps with gated advancement, per-step interaction scoring,
// and completion rewards. It owns the rules for what a step is worth
// and when the player may move on; presentation lives elsewhere.
package sequencer

import (
	"github.com/jsalter/cmi5quest/internal/catalog"
	"github.com/jsalter/cmi5quest/internal/player"
)

const (
	practiceBonusXP    = 10
	interactiveBonusXP = 15

	// Replaying a finished lesson pays a quarter of its XP, no stars.
	replayDivisor = 4
)

// Reporter receives lesson milestones as they happen. Implementations
// must not block; *cmi5.Bridge satisfies this.
type Reporter interface {
	LessonStarted(worldID int, lessonID, name string)
	StepProgressed(worldID int, lessonID string, stepIndex int, phase, kind string)
	LessonCompleted(worldID int, lessonID, name string)
	LessonReviewed(worldID int, lessonID, name string)
	LevelAchieved(level, totalXP int)
	ProgressReported(percent int)
}

type nopReporter struct{}

func (nopReporter) LessonStarted(int, string, string)               {}
func (nopReporter) StepProgressed(int, string, int, string, string) {}
func (nopReporter) LessonCompleted(int, string, string)             {}
func (nopReporter) LessonReviewed(int, string, string)              {}
func (nopReporter) LevelAchieved(int, int)                          {}
func (nopReporter) ProgressReported(int)                            {}

// Sequencer walks one player through one lesson.
type Sequencer struct {
	cat   *catalog.Catalog
	ref   catalog.LessonRef
	state *player.State
	rep   Reporter

	idx       int
	satisfied []bool // gated interaction done, per step
	awarded   []bool // step bonus XP paid, per step
	reported  []bool // step statement emitted, per step
	replay    bool   // lesson was already completed when the run began
	matched   []bool // matching-step pair state, reset per step
	done      bool
}

// Outcome is the result of finishing a lesson run.
type Outcome struct {
	FirstCompletion bool
	XPAwarded       int
	StarsAwarded    int
	LevelUps        []player.LevelUp
}

// New starts a lesson run. It enforces the unlock order: the caller
// gets a *LockedError when the lesson is not reachable yet.
func New(cat *catalog.Catalog, ref catalog.LessonRef, st *player.State, rep Reporter) (*Sequencer, error) {
	if err := CanStartLesson(st, ref); err != nil {
		return nil, err
	}
	if rep == nil {
		rep = nopReporter{}
	}
	n := len(ref.Lesson.Steps)
	s := &Sequencer{
		cat:       cat,
		ref:       ref,
		state:     st,
		rep:       rep,
		satisfied: make([]bool, n),
		awarded:   make([]bool, n),
		reported:  make([]bool, n),
		replay:    st.LessonCompleted(ref.Lesson.ID),
	}
	rep.LessonStarted(ref.World.ID, ref.Lesson.ID, ref.Lesson.Name)
	s.reportStep()
	return s, nil
}

// Step returns the current step.
func (s *Sequencer) Step() catalog.Step {
	return s.ref.Lesson.Steps[s.idx]
}

// Index returns the zero-based position of the current step.
func (s *Sequencer) Index() int { return s.idx }

// Len returns the number of steps in the lesson.
func (s *Sequencer) Len() int { return len(s.ref.Lesson.Steps) }

// Lesson returns the lesson being run.
func (s *Sequencer) Lesson() catalog.Lesson { return s.ref.Lesson }

// Replay reports whether the lesson was already completed when the run
// began.
func (s *Sequencer) Replay() bool { return s.replay }

// Done reports whether the run has finished.
func (s *Sequencer) Done() bool { return s.done }

// Satisfied reports whether the current step's interaction, if any, has
// been completed.
func (s *Sequencer) Satisfied() bool {
	return !s.Step().RequiresCompletion || s.satisfied[s.idx]
}

// Advance moves to the next step. A step that requires completion
// blocks advancement with a *GateError until its interaction succeeds.
// Advancing past the last step finishes the lesson: rewards are
// applied to the player and the non-nil Outcome describes them.
func (s *Sequencer) Advance() (*Outcome, error) {
	if s.done {
		return nil, &StateError{Op: "advance", Reason: "lesson already finished"}
	}
	step := s.Step()
	if step.RequiresCompletion && !s.satisfied[s.idx] {
		return nil, &GateError{StepIndex: s.idx, Title: step.Title}
	}
	if s.idx == len(s.ref.Lesson.Steps)-1 {
		return s.finish(), nil
	}
	s.idx++
	s.matched = nil
	s.reportStep()
	return nil, nil
}

// Back moves to the previous step. Revisiting never re-emits the step
// statement and never re-pays its bonus.
func (s *Sequencer) Back() {
	if s.idx > 0 {
		s.idx--
		s.matched = nil
	}
}

func (s *Sequencer) reportStep() {
	if s.reported[s.idx] {
		return
	}
	s.reported[s.idx] = true
	step := s.Step()
	s.rep.StepProgressed(s.ref.World.ID, s.ref.Lesson.ID, s.idx, string(step.Phase), string(step.Kind))
}

func (s *Sequencer) finish() *Outcome {
	s.done = true
	l := s.ref.Lesson
	out := &Outcome{}
	if s.replay {
		out.XPAwarded = l.XPReward / replayDivisor
		out.LevelUps = s.applyXP(out.XPAwarded)
		s.rep.LessonReviewed(s.ref.World.ID, l.ID, l.Name)
		return out
	}
	out.FirstCompletion = true
	out.XPAwarded = player.ComputeAward(l.XPReward, l.Category, s.state.Class)
	out.StarsAwarded = l.StarReward
	out.LevelUps = s.applyXP(out.XPAwarded)
	s.state.AddStars(l.StarReward)
	s.state.RecordLesson(l.ID)
	s.rep.LessonCompleted(s.ref.World.ID, l.ID, l.Name)
	s.rep.ProgressReported(s.progressPercent())
	return out
}

func (s *Sequencer) applyXP(amount int) []player.LevelUp {
	ups := s.state.AddXP(amount)
	for _, up := range ups {
		s.rep.LevelAchieved(up.Level, s.state.TotalXP)
	}
	return ups
}

func (s *Sequencer) progressPercent() int {
	total := s.cat.LessonCount()
	if total == 0 {
		return 0
	}
	return len(s.state.Progress.LessonsCompleted) * 100 / total
}

// PracticeResult is the outcome of one practice-question attempt.
type PracticeResult struct {
	Correct  bool
	Feedback string
	XPEarned int
	LevelUps []player.LevelUp
}

// AnswerPractice scores choice against the current practice step.
// Either answer satisfies the gate; the learner reads the feedback and
// moves on. Only a correct answer pays the bonus, and only once.
func (s *Sequencer) AnswerPractice(choice int) (PracticeResult, error) {
	step := s.Step()
	if step.Kind != catalog.StepPractice {
		return PracticeResult{}, &StepTypeError{StepIndex: s.idx, Want: string(catalog.StepPractice), Got: string(step.Kind)}
	}
	if choice < 0 || choice >= len(step.Choices) {
		return PracticeResult{}, &StepTypeError{StepIndex: s.idx, Want: "valid choice index", Got: "out of range"}
	}
	c := step.Choices[choice]
	res := PracticeResult{Correct: c.Correct, Feedback: c.Feedback}
	s.satisfied[s.idx] = true
	if c.Correct && !s.awarded[s.idx] {
		s.awarded[s.idx] = true
		res.XPEarned = practiceBonusXP
		res.LevelUps = s.applyXP(practiceBonusXP)
	}
	return res, nil
}

// CheckSequence verifies a sequence-ordering attempt. order holds item
// indices in the player's arrangement; it is correct when it restores
// the catalog order. A correct arrangement satisfies the step and pays
// its bonus once.
func (s *Sequencer) CheckSequence(order []int) (bool, int, error) {
	step := s.Step()
	if step.Kind != catalog.StepInteractive || step.Interactive != catalog.InteractiveSequence {
		return false, 0, &StepTypeError{StepIndex: s.idx, Want: "interactive/sequence", Got: string(step.Kind)}
	}
	if len(order) != len(step.Items) {
		return false, 0, nil
	}
	for i, v := range order {
		if v != i {
			return false, 0, nil
		}
	}
	s.satisfied[s.idx] = true
	if s.awarded[s.idx] {
		return true, 0, nil
	}
	s.awarded[s.idx] = true
	s.applyXP(interactiveBonusXP)
	return true, interactiveBonusXP, nil
}

// MatchResult is the outcome of one matching-pair attempt.
type MatchResult struct {
	Correct  bool
	Done     bool // all pairs matched
	XPEarned int
}

// SelectMatch attempts to pair the left-column item at left with the
// right-column item at right. Matching every pair satisfies the step
// and pays its bonus once.
func (s *Sequencer) SelectMatch(left, right int) (MatchResult, error) {
	step := s.Step()
	if step.Kind != catalog.StepInteractive || step.Interactive != catalog.InteractiveMatching {
		return MatchResult{}, &StepTypeError{StepIndex: s.idx, Want: "interactive/matching", Got: string(step.Kind)}
	}
	if left < 0 || left >= len(step.Pairs) || right < 0 || right >= len(step.Pairs) {
		return MatchResult{}, &StepTypeError{StepIndex: s.idx, Want: "valid pair index", Got: "out of range"}
	}
	if s.matched == nil {
		s.matched = make([]bool, len(step.Pairs))
	}
	if left != right {
		return MatchResult{}, nil
	}
	res := MatchResult{Correct: true}
	s.matched[left] = true
	for _, m := range s.matched {
		if !m {
			return res, nil
		}
	}
	res.Done = true
	s.satisfied[s.idx] = true
	if !s.awarded[s.idx] {
		s.awarded[s.idx] = true
		res.XPEarned = interactiveBonusXP
		s.applyXP(interactiveBonusXP)
	}
	return res, nil
}

// Matched reports whether pair i on the current matching step has been
// matched this visit.
func (s *Sequencer) Matched(i int) bool {
	return i >= 0 && i < len(s.matched) && s.matched[i]
}

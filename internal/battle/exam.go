package battle

import (
	"math/rand/v2"

	"github.com/jsalter/cmi5quest/internal/catalog"
	"github.com/jsalter/cmi5quest/internal/player"
	"github.com/jsalter/cmi5quest/internal/sequencer"
)

const (
	examBossDamage   = 100
	examPlayerDamage = 25
)

// ExamReporter receives certification-exam milestones. *cmi5.Bridge
// satisfies this.
type ExamReporter interface {
	QuestionAnswered(worldID, questionIndex int, correct bool, text string)
	ExamAssessed(score, maxScore int, passed bool)
	CourseAssessed(scaled float64, passed bool)
	WorldCompleted(worldID int, name string)
	LevelAchieved(level, totalXP int)
}

type nopExamReporter struct{}

func (nopExamReporter) QuestionAnswered(int, int, bool, string) {}
func (nopExamReporter) ExamAssessed(int, int, bool)             {}
func (nopExamReporter) CourseAssessed(float64, bool)            {}
func (nopExamReporter) WorldCompleted(int, string)              {}
func (nopExamReporter) LevelAchieved(int, int)                  {}

// Exam is one attempt at the final certification. Each attempt samples
// a fresh question set from the boss pool. Unlike a world boss fight,
// the exam can be failed; a failed attempt pays nothing and Retry
// starts over at full health.
type Exam struct {
	world   catalog.World
	st      *player.State
	rep     ExamReporter
	rng     *rand.Rand
	mastery float64

	questions []catalog.Question
	bossHP    int
	idx       int
	order     []int
	correct   int
	done      bool
}

// ExamOutcome is the result of a finished attempt.
type ExamOutcome struct {
	Score        int
	MaxScore     int
	Accuracy     float64
	Passed       bool
	XPAwarded    int
	StarsAwarded int
	LevelUps     []player.LevelUp
	FirstPass    bool
}

// NewExam starts a certification attempt against the final world's
// boss pool. rng may be nil; mastery <= 0 falls back to DefaultMastery.
func NewExam(w catalog.World, st *player.State, rep ExamReporter, rng *rand.Rand, mastery float64) (*Exam, error) {
	if err := sequencer.CanChallengeBoss(st, w); err != nil {
		return nil, err
	}
	if len(w.Boss.Questions) < catalog.FinalExamSize {
		return nil, &ConfigurationError{Reason: "question pool smaller than the exam"}
	}
	if rep == nil {
		rep = nopExamReporter{}
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if mastery <= 0 {
		mastery = DefaultMastery
	}
	e := &Exam{
		world:   w,
		st:      st,
		rep:     rep,
		rng:     rng,
		mastery: mastery,
	}
	e.deal()
	return e, nil
}

// deal samples a fresh question set and resets the attempt state.
func (e *Exam) deal() {
	pool := e.world.Boss.Questions
	e.questions = make([]catalog.Question, 0, catalog.FinalExamSize)
	for _, i := range e.rng.Perm(len(pool))[:catalog.FinalExamSize] {
		e.questions = append(e.questions, pool[i])
	}
	e.bossHP = e.world.Boss.HP
	e.idx = 0
	e.correct = 0
	e.done = false
	e.shuffle()
}

func (e *Exam) shuffle() {
	e.order = e.rng.Perm(len(e.Question().Choices))
}

// Question returns the current question.
func (e *Exam) Question() catalog.Question { return e.questions[e.idx] }

// ChoiceOrder returns the shuffled display order of the current
// question's choices.
func (e *Exam) ChoiceOrder() []int { return e.order }

// QuestionIndex returns the zero-based index of the current question.
func (e *Exam) QuestionIndex() int { return e.idx }

// NumQuestions returns the attempt's question count.
func (e *Exam) NumQuestions() int { return len(e.questions) }

// BossHP returns the guardian's remaining hit points.
func (e *Exam) BossHP() int { return e.bossHP }

// BossMaxHP returns the guardian's starting hit points.
func (e *Exam) BossMaxHP() int { return e.world.Boss.HP }

// Boss returns the final boss.
func (e *Exam) Boss() catalog.Boss { return e.world.Boss }

// Done reports whether the attempt has finished.
func (e *Exam) Done() bool { return e.done }

// Accuracy returns the attempt's running accuracy: answers scored
// correct over answers given so far. Zero before the first answer.
func (e *Exam) Accuracy() float64 {
	if e.idx == 0 {
		return 0
	}
	return float64(e.correct) / float64(e.idx)
}

// Mastery returns the pass threshold in effect.
func (e *Exam) Mastery() float64 { return e.mastery }

// Answer scores choice against the current question. There is no rally
// during the exam; wounds stand until the attempt ends. The last answer
// finishes the attempt and attaches the ExamOutcome.
func (e *Exam) Answer(choice int) (Turn, error) {
	if e.done {
		return Turn{}, &StateError{Op: "answer", Reason: "exam already finished"}
	}
	q := e.Question()
	if choice < 0 || choice >= len(q.Choices) {
		return Turn{}, &StateError{Op: "answer", Reason: "choice index out of range"}
	}
	c := q.Choices[choice]
	turn := Turn{Correct: c.Correct, Feedback: c.Feedback}
	if c.Correct {
		e.correct++
		turn.DamageDealt = examBossDamage
		e.bossHP = max(0, e.bossHP-examBossDamage)
	} else {
		turn.DamageTaken = examPlayerDamage
		e.st.TakeDamage(examPlayerDamage)
	}
	e.rep.QuestionAnswered(e.world.ID, e.idx, c.Correct, q.Text)

	e.idx++
	if e.idx == len(e.questions) {
		e.finishAttempt(&turn)
	} else {
		e.shuffle()
	}
	return turn, nil
}

func (e *Exam) finishAttempt(turn *Turn) {
	e.done = true
	out := &ExamOutcome{
		Score:    e.correct,
		MaxScore: len(e.questions),
	}
	out.Accuracy = float64(out.Score) / float64(out.MaxScore)
	out.Passed = out.Accuracy >= e.mastery

	if out.Passed {
		out.FirstPass = e.st.RecordBossDefeat(e.world.ID, catalog.NumWorlds)
		out.XPAwarded = player.ComputeAward(e.world.Boss.XPReward, catalog.CategoryFinalBoss, e.st.Class)
		out.StarsAwarded = e.world.Boss.StarReward
		out.LevelUps = e.st.AddXP(out.XPAwarded)
		e.st.AddStars(out.StarsAwarded)
		for _, up := range out.LevelUps {
			e.rep.LevelAchieved(up.Level, e.st.TotalXP)
		}
		if out.FirstPass {
			e.rep.WorldCompleted(e.world.ID, e.world.Name)
		}
	}
	e.rep.ExamAssessed(out.Score, out.MaxScore, out.Passed)
	e.rep.CourseAssessed(out.Accuracy, out.Passed)

	turn.Exam = out
}

// Retry restores the player to full health and deals a fresh attempt.
func (e *Exam) Retry() {
	e.st.FullHeal()
	e.deal()
}

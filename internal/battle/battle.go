// Package battle runs the scored encounters: per-world boss fights and
// the final certification exam. Both engines mutate player state
// directly and report milestones through the Reporter; rendering and
// pacing belong to the caller.
package battle

import (
	"math/rand/v2"

	"github.com/jsalter/cmi5quest/internal/catalog"
	"github.com/jsalter/cmi5quest/internal/player"
	"github.com/jsalter/cmi5quest/internal/sequencer"
)

// A wrong answer with no damage value on the choice costs this much.
const defaultPlayerDamage = 20

// DefaultMastery is the pass threshold when the LMS does not supply one.
const DefaultMastery = 0.8

// Reporter receives battle milestones. Implementations must not block;
// *cmi5.Bridge satisfies this.
type Reporter interface {
	QuestionAnswered(worldID, questionIndex int, correct bool, text string)
	BossAssessed(worldID int, name string, score, maxScore int, mastery float64)
	WorldCompleted(worldID int, name string)
	LevelAchieved(level, totalXP int)
}

type nopReporter struct{}

func (nopReporter) QuestionAnswered(int, int, bool, string)     {}
func (nopReporter) BossAssessed(int, string, int, int, float64) {}
func (nopReporter) WorldCompleted(int, string)                  {}
func (nopReporter) LevelAchieved(int, int)                      {}

// Fight is one run against a world boss. Every question is asked in
// order; the fight cannot be lost, only scored. Falling to zero HP
// rallies the player back to half health and the fight goes on.
type Fight struct {
	world   catalog.World
	st      *player.State
	rep     Reporter
	rng     *rand.Rand
	mastery float64

	bossHP  int
	perHit  int
	idx     int
	order   []int // display order of the current question's choices
	correct int
	done    bool
}

// Turn is the result of answering one boss question.
type Turn struct {
	Correct     bool
	Feedback    string
	DamageDealt int
	DamageTaken int
	Rallied     bool

	// Exactly one of these is non-nil on the final turn, depending on
	// the encounter kind.
	Outcome *Outcome
	Exam    *ExamOutcome
}

// Outcome is the result of a finished fight.
type Outcome struct {
	Score        int
	MaxScore     int
	Passed       bool
	XPAwarded    int
	StarsAwarded int
	LevelUps     []player.LevelUp
	FirstDefeat  bool
	Unlocked     int // next world id, 0 when nothing new unlocked
}

// NewFight starts the boss fight for w. The boss is locked behind the
// world's lessons. rng drives choice shuffling and may be nil; mastery
// <= 0 falls back to DefaultMastery.
func NewFight(w catalog.World, st *player.State, rep Reporter, rng *rand.Rand, mastery float64) (*Fight, error) {
	if err := sequencer.CanChallengeBoss(st, w); err != nil {
		return nil, err
	}
	if rep == nil {
		rep = nopReporter{}
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if mastery <= 0 {
		mastery = DefaultMastery
	}
	f := &Fight{
		world:   w,
		st:      st,
		rep:     rep,
		rng:     rng,
		mastery: mastery,
		bossHP:  w.Boss.HP,
		perHit:  w.Boss.HP / len(w.Boss.Questions),
	}
	f.shuffle()
	return f, nil
}

// shuffle deals the current question's choices into a fresh display
// order.
func (f *Fight) shuffle() {
	f.order = f.rng.Perm(len(f.Question().Choices))
}

// Question returns the current question.
func (f *Fight) Question() catalog.Question {
	return f.world.Boss.Questions[f.idx]
}

// ChoiceOrder returns the shuffled display order of the current
// question's choices: position i on screen shows choice ChoiceOrder[i].
// Answer still takes the choice's catalog index.
func (f *Fight) ChoiceOrder() []int { return f.order }

// QuestionIndex returns the zero-based index of the current question.
func (f *Fight) QuestionIndex() int { return f.idx }

// NumQuestions returns the total question count.
func (f *Fight) NumQuestions() int { return len(f.world.Boss.Questions) }

// BossHP returns the boss's remaining hit points.
func (f *Fight) BossHP() int { return f.bossHP }

// BossMaxHP returns the boss's starting hit points.
func (f *Fight) BossMaxHP() int { return f.world.Boss.HP }

// Boss returns the boss being fought.
func (f *Fight) Boss() catalog.Boss { return f.world.Boss }

// Done reports whether every question has been answered.
func (f *Fight) Done() bool { return f.done }

// Answer scores choice against the current question and advances to the
// next. A correct answer damages the boss; a wrong one damages the
// player, who rallies at half health rather than losing. The last
// answer finishes the fight and attaches the Outcome.
func (f *Fight) Answer(choice int) (Turn, error) {
	if f.done {
		return Turn{}, &StateError{Op: "answer", Reason: "fight already finished"}
	}
	q := f.Question()
	if choice < 0 || choice >= len(q.Choices) {
		return Turn{}, &StateError{Op: "answer", Reason: "choice index out of range"}
	}
	c := q.Choices[choice]
	turn := Turn{Correct: c.Correct, Feedback: c.Feedback}
	if c.Correct {
		f.correct++
		turn.DamageDealt = f.perHit
		f.bossHP = max(0, f.bossHP-f.perHit)
	} else {
		dmg := c.Damage
		if dmg == 0 {
			dmg = defaultPlayerDamage
		}
		turn.DamageTaken = dmg
		f.st.TakeDamage(dmg)
		if f.st.HP == 0 {
			f.st.Rally()
			turn.Rallied = true
		}
	}
	f.rep.QuestionAnswered(f.world.ID, f.idx, c.Correct, q.Text)

	f.idx++
	if f.idx == len(f.world.Boss.Questions) {
		turn.Outcome = f.finish()
	} else {
		f.shuffle()
	}
	return turn, nil
}

func (f *Fight) finish() *Outcome {
	f.done = true
	boss := f.world.Boss
	out := &Outcome{
		Score:    f.correct,
		MaxScore: len(boss.Questions),
		Passed:   float64(f.correct)/float64(len(boss.Questions)) >= f.mastery,
	}

	// Rewards repeat on refights; progression advances only once.
	out.FirstDefeat = f.st.RecordBossDefeat(f.world.ID, catalog.NumWorlds)
	if out.FirstDefeat && !f.world.IsFinal() {
		out.Unlocked = f.world.ID + 1
	}
	out.XPAwarded = player.ComputeAward(boss.XPReward, catalog.CategoryBoss, f.st.Class)
	out.StarsAwarded = boss.StarReward
	out.LevelUps = f.st.AddXP(out.XPAwarded)
	f.st.AddStars(boss.StarReward)
	f.st.FullHeal()

	for _, up := range out.LevelUps {
		f.rep.LevelAchieved(up.Level, f.st.TotalXP)
	}
	f.rep.BossAssessed(f.world.ID, boss.Name, out.Score, out.MaxScore, f.mastery)
	if out.FirstDefeat {
		f.rep.WorldCompleted(f.world.ID, f.world.Name)
	}
	return out
}

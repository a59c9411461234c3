// Package game carries the shared run state the screens operate on: the
// loaded course catalog, the active player, persistence, and the
// milestone reporter. Screens receive a single *Ctx instead of wiring
// each dependency individually.
package game

import (
	"context"
	"math/rand/v2"

	"github.com/jsalter/cmi5quest/internal/catalog"
	"github.com/jsalter/cmi5quest/internal/player"
)

// Reporter is the union of every milestone the screens emit.
// *cmi5.Bridge satisfies it; it also satisfies the narrower reporter
// interfaces the sequencer and battle engine consume.
type Reporter interface {
	WorldEntered(worldID int, name string)
	LessonStarted(worldID int, lessonID, name string)
	StepProgressed(worldID int, lessonID string, stepIndex int, phase, kind string)
	LessonCompleted(worldID int, lessonID, name string)
	LessonReviewed(worldID int, lessonID, name string)
	QuestionAnswered(worldID, questionIndex int, correct bool, text string)
	BossAssessed(worldID int, name string, score, maxScore int, mastery float64)
	ExamAssessed(score, maxScore int, passed bool)
	LevelAchieved(level, totalXP int)
	WorldCompleted(worldID int, name string)
	CourseAssessed(scaled float64, passed bool)
	ProgressReported(percent int)
}

// NopReporter discards every milestone. Used when no launch session is
// active and in tests.
type NopReporter struct{}

func (NopReporter) WorldEntered(int, string)                        {}
func (NopReporter) LessonStarted(int, string, string)               {}
func (NopReporter) StepProgressed(int, string, int, string, string) {}
func (NopReporter) LessonCompleted(int, string, string)             {}
func (NopReporter) LessonReviewed(int, string, string)              {}
func (NopReporter) QuestionAnswered(int, int, bool, string)         {}
func (NopReporter) BossAssessed(int, string, int, int, float64)     {}
func (NopReporter) ExamAssessed(int, int, bool)                     {}
func (NopReporter) LevelAchieved(int, int)                          {}
func (NopReporter) WorldCompleted(int, string)                      {}
func (NopReporter) CourseAssessed(float64, bool)                    {}
func (NopReporter) ProgressReported(int)                            {}

// Ctx is the shared state threaded through every screen.
type Ctx struct {
	Catalog  *catalog.Catalog
	State    *player.State // nil until a game is started or loaded
	Save     player.Saver  // nil disables persistence
	Load     player.Loader // nil disables continue
	Reporter Reporter
	Rand     *rand.Rand // nil lets engines self-seed
	Mastery  float64    // pass threshold; <= 0 uses the engine default
}

// New builds a Ctx with the default catalog and a no-op reporter.
func New() *Ctx {
	return &Ctx{
		Catalog:  catalog.Default(),
		Reporter: NopReporter{},
	}
}

// Autosave persists the current player, if any. Failures are logged,
// never fatal.
func (c *Ctx) Autosave() {
	if c.State == nil {
		return
	}
	player.Autosave(context.Background(), c.Save, c.State)
}

// HasSave reports whether a continuable save exists. The probe loads
// the snapshot and discards it.
func (c *Ctx) HasSave() bool {
	_, ok := player.Load(context.Background(), c.Load)
	return ok
}

// Continue loads the saved character into the context. Returns false
// when there is nothing to continue.
func (c *Ctx) Continue() bool {
	s, ok := player.Load(context.Background(), c.Load)
	if !ok {
		return false
	}
	c.State = s
	return true
}

package player

import "slices"

// Class is the character class picked at new-game. Each class earns
// bonus XP in one lesson category.
type Class string

const (
	ClassDeveloper Class = "developer"
	ClassDesigner  Class = "designer"
	ClassAdmin     Class = "admin"
)

// AllClasses returns the classes in menu order.
func AllClasses() []Class {
	return []Class{ClassDeveloper, ClassDesigner, ClassAdmin}
}

// Valid reports whether c is a known class.
func (c Class) Valid() bool {
	switch c {
	case ClassDeveloper, ClassDesigner, ClassAdmin:
		return true
	}
	return false
}

// Skill is a named ability unlocked at a level threshold.
type Skill struct {
	Name string `json:"name"`
	Desc string `json:"desc"`
}

// Progress tracks what the player has unlocked and completed.
type Progress struct {
	CurrentWorld     int      `json:"currentWorld"`
	WorldsUnlocked   []int    `json:"worldsUnlocked"`
	WorldsCompleted  []int    `json:"worldsCompleted"`
	LessonsCompleted []string `json:"lessonsCompleted"`
	BossesDefeated   []int    `json:"bossesDefeated"`
}

// State is the full player save state. All mutation goes through the
// named methods so persistence sees consistent snapshots.
type State struct {
	Name     string   `json:"name"`
	Class    Class    `json:"class"`
	Level    int      `json:"level"`
	XP       int      `json:"xp"`
	XPToNext int      `json:"xpToNext"`
	TotalXP  int      `json:"totalXp"`
	HP       int      `json:"hp"`
	MaxHP    int      `json:"maxHp"`
	Stars    int      `json:"stars"`
	Skills   []Skill  `json:"skills"`
	Progress Progress `json:"progress"`
}

// New creates a fresh level-1 character with the first world unlocked.
func New(name string, class Class) *State {
	return &State{
		Name:     name,
		Class:    class,
		Level:    1,
		XP:       0,
		XPToNext: xpTable[1] - xpTable[0],
		HP:       100,
		MaxHP:    100,
		Skills:   []Skill{},
		Progress: Progress{
			CurrentWorld:     1,
			WorldsUnlocked:   []int{1},
			WorldsCompleted:  []int{},
			LessonsCompleted: []string{},
			BossesDefeated:   []int{},
		},
	}
}

// LessonCompleted reports whether the lesson has been completed before.
func (s *State) LessonCompleted(id string) bool {
	return slices.Contains(s.Progress.LessonsCompleted, id)
}

// WorldUnlocked reports whether the world is accessible.
func (s *State) WorldUnlocked(id int) bool {
	return slices.Contains(s.Progress.WorldsUnlocked, id)
}

// BossDefeated reports whether the world's boss has been beaten.
func (s *State) BossDefeated(world int) bool {
	return slices.Contains(s.Progress.BossesDefeated, world)
}

// RecordLesson marks a lesson complete. Returns false if it was already
// recorded, which callers use to switch to replay rewards.
func (s *State) RecordLesson(id string) bool {
	if s.LessonCompleted(id) {
		return false
	}
	s.Progress.LessonsCompleted = append(s.Progress.LessonsCompleted, id)
	return true
}

// RecordBossDefeat marks a world's boss defeated, marks the world
// completed, and unlocks the next world. Returns false on a repeat
// victory.
func (s *State) RecordBossDefeat(world, numWorlds int) bool {
	if s.BossDefeated(world) {
		return false
	}
	s.Progress.BossesDefeated = append(s.Progress.BossesDefeated, world)
	s.Progress.WorldsCompleted = append(s.Progress.WorldsCompleted, world)
	if world < numWorlds && !s.WorldUnlocked(world+1) {
		s.Progress.WorldsUnlocked = append(s.Progress.WorldsUnlocked, world+1)
	}
	return true
}

// AddStars grants stars.
func (s *State) AddStars(n int) {
	s.Stars += n
}

// TakeDamage reduces HP, clamping at zero.
func (s *State) TakeDamage(n int) {
	s.HP = max(0, s.HP-n)
}

// FullHeal restores HP to maximum.
func (s *State) FullHeal() {
	s.HP = s.MaxHP
}

// Rally restores a downed player to half of maximum HP. Battles are a
// learning exercise, not a punishment; running out of HP never ends a
// world boss fight.
func (s *State) Rally() {
	s.HP = s.MaxHP / 2
}

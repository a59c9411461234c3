package catalog

import (
	"slices"
	"strconv"
)

const (
	// NumWorlds is the fixed number of worlds; unlock order is strictly
	// sequential 1..NumWorlds.
	NumWorlds = 5

	// FinalExamSize is the number of questions the final exam samples
	// (without replacement) from the final world's pool.
	FinalExamSize = 10
)

// lessonRef locates a lesson inside the catalog.
type lessonRef struct {
	world  int // index into worlds
	lesson int // index into world.Lessons
}

// Catalog is the immutable course definition. Build one with New or Load,
// or use the built-in course via Default.
type Catalog struct {
	worlds   []World
	byLesson map[string]lessonRef
}

// def is the built-in course, validated at init.
var def *Catalog

func init() {
	c, err := New(builtinWorlds())
	if err != nil {
		panic("catalog: built-in course invalid: " + err.Error())
	}
	def = c
}

// Default returns the built-in course catalog.
func Default() *Catalog {
	return def
}

// New builds a catalog from worlds, validating every structural invariant.
func New(worlds []World) (*Catalog, error) {
	if err := validateWorlds(worlds); err != nil {
		return nil, err
	}

	c := &Catalog{
		worlds:   worlds,
		byLesson: make(map[string]lessonRef),
	}
	for wi := range worlds {
		for li := range worlds[wi].Lessons {
			c.byLesson[worlds[wi].Lessons[li].ID] = lessonRef{world: wi, lesson: li}
		}
	}
	return c, nil
}

// Worlds returns all worlds in unlock order.
func (c *Catalog) Worlds() []World {
	return slices.Clone(c.worlds)
}

// World returns the world with the given id.
func (c *Catalog) World(id int) (World, error) {
	for _, w := range c.worlds {
		if w.ID == id {
			return w, nil
		}
	}
	return World{}, &NotFoundError{Kind: "world", ID: strconv.Itoa(id)}
}

// LessonRef is a resolved lesson lookup: the lesson, the world that holds
// it, and the lesson's position within that world.
type LessonRef struct {
	World  World
	Lesson Lesson
	Index  int
}

// FindLesson resolves a lesson id anywhere in the catalog.
func (c *Catalog) FindLesson(id string) (LessonRef, error) {
	ref, ok := c.byLesson[id]
	if !ok {
		return LessonRef{}, &NotFoundError{Kind: "lesson", ID: id}
	}
	w := c.worlds[ref.world]
	return LessonRef{World: w, Lesson: w.Lessons[ref.lesson], Index: ref.lesson}, nil
}

// FinalWorld returns the certification world.
func (c *Catalog) FinalWorld() World {
	w, _ := c.World(NumWorlds)
	return w
}

// LessonCount returns the total number of lessons across all worlds.
func (c *Catalog) LessonCount() int {
	return len(c.byLesson)
}

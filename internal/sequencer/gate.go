package sequencer

import (
	"strconv"

	"github.com/jsalter/cmi5quest/internal/catalog"
	"github.com/jsalter/cmi5quest/internal/player"
)

// CanEnterWorld reports whether the player may travel to w.
func CanEnterWorld(st *player.State, w catalog.World) error {
	if !st.WorldUnlocked(w.ID) {
		return &LockedError{
			Kind:   "world",
			ID:     strconv.Itoa(w.ID),
			Reason: "defeat the previous world's boss first",
		}
	}
	return nil
}

// CanStartLesson reports whether the player may start the lesson at
// ref. Lessons within a world unlock in order: the first is always
// available, each later one once its predecessor is completed.
func CanStartLesson(st *player.State, ref catalog.LessonRef) error {
	if err := CanEnterWorld(st, ref.World); err != nil {
		return err
	}
	if ref.Index == 0 {
		return nil
	}
	prev := ref.World.Lessons[ref.Index-1]
	if !st.LessonCompleted(prev.ID) {
		return &LockedError{
			Kind:   "lesson",
			ID:     ref.Lesson.ID,
			Reason: "complete " + prev.Name + " first",
		}
	}
	return nil
}

// CanChallengeBoss reports whether the player may fight w's boss. The
// boss unlocks once every lesson in the world is completed; the final
// world has no lessons, so its boss is available as soon as the world
// itself is.
func CanChallengeBoss(st *player.State, w catalog.World) error {
	if err := CanEnterWorld(st, w); err != nil {
		return err
	}
	for _, l := range w.Lessons {
		if !st.LessonCompleted(l.ID) {
			return &LockedError{
				Kind:   "boss",
				ID:     strconv.Itoa(w.ID),
				Reason: "complete all lessons in this world first",
			}
		}
	}
	return nil
}

package sequencer

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jsalter/cmi5quest/internal/catalog"
	"github.com/jsalter/cmi5quest/internal/player"
)

// recorder captures milestone calls in order for assertions.
type recorder struct {
	events []string
}

func (r *recorder) LessonStarted(w int, id, _ string) {
	r.events = append(r.events, fmt.Sprintf("started %s", id))
}

func (r *recorder) StepProgressed(w int, id string, i int, _, _ string) {
	r.events = append(r.events, fmt.Sprintf("step %s/%d", id, i))
}

func (r *recorder) LessonCompleted(w int, id, _ string) {
	r.events = append(r.events, fmt.Sprintf("completed %s", id))
}

func (r *recorder) LessonReviewed(w int, id, _ string) {
	r.events = append(r.events, fmt.Sprintf("reviewed %s", id))
}

func (r *recorder) LevelAchieved(level, _ int) {
	r.events = append(r.events, fmt.Sprintf("level %d", level))
}

func (r *recorder) ProgressReported(pct int) {
	r.events = append(r.events, fmt.Sprintf("progress %d", pct))
}

func (r *recorder) count(ev string) int {
	n := 0
	for _, e := range r.events {
		if e == ev {
			n++
		}
	}
	return n
}

func startLesson(t *testing.T, st *player.State, id string) (*Sequencer, *recorder) {
	t.Helper()
	cat := catalog.Default()
	ref, err := cat.FindLesson(id)
	if err != nil {
		t.Fatalf("FindLesson(%s): %v", id, err)
	}
	rec := &recorder{}
	seq, err := New(cat, ref, st, rec)
	if err != nil {
		t.Fatalf("New(%s): %v", id, err)
	}
	return seq, rec
}

// advanceTo walks forward until the step at index i is current.
func advanceTo(t *testing.T, seq *Sequencer, i int) {
	t.Helper()
	for seq.Index() < i {
		if _, err := seq.Advance(); err != nil {
			t.Fatalf("Advance at step %d: %v", seq.Index(), err)
		}
	}
}

func TestNew_ReportsStartAndFirstStep(t *testing.T) {
	st := player.New("Tess", player.ClassDesigner)
	_, rec := startLesson(t, st, "w1_lesson1")

	want := []string{"started w1_lesson1", "step w1_lesson1/0"}
	if len(rec.events) != len(want) {
		t.Fatalf("events = %v, want %v", rec.events, want)
	}
	for i := range want {
		if rec.events[i] != want[i] {
			t.Errorf("events[%d] = %q, want %q", i, rec.events[i], want[i])
		}
	}
}

func TestNew_LockedLesson(t *testing.T) {
	st := player.New("Tess", player.ClassDesigner)
	cat := catalog.Default()
	ref, err := cat.FindLesson("w1_lesson2")
	if err != nil {
		t.Fatal(err)
	}
	_, err = New(cat, ref, st, nil)
	var locked *LockedError
	if !errors.As(err, &locked) {
		t.Fatalf("New = %v, want *LockedError", err)
	}
	if locked.Kind != "lesson" {
		t.Errorf("Kind = %q, want lesson", locked.Kind)
	}
}

func TestNew_LockedWorld(t *testing.T) {
	st := player.New("Tess", player.ClassDesigner)
	cat := catalog.Default()
	ref, err := cat.FindLesson("w2_lesson1")
	if err != nil {
		t.Fatal(err)
	}
	_, err = New(cat, ref, st, nil)
	var locked *LockedError
	if !errors.As(err, &locked) {
		t.Fatalf("New = %v, want *LockedError", err)
	}
	if locked.Kind != "world" {
		t.Errorf("Kind = %q, want world", locked.Kind)
	}
}

func TestAdvance_GatedByPracticeStep(t *testing.T) {
	st := player.New("Tess", player.ClassDesigner)
	seq, _ := startLesson(t, st, "w1_lesson1")
	advanceTo(t, seq, 3)

	if seq.Step().Kind != catalog.StepPractice {
		t.Fatalf("step 3 kind = %s, want practice", seq.Step().Kind)
	}
	_, err := seq.Advance()
	var gate *GateError
	if !errors.As(err, &gate) {
		t.Fatalf("Advance = %v, want *GateError", err)
	}
	if gate.StepIndex != 3 {
		t.Errorf("StepIndex = %d, want 3", gate.StepIndex)
	}
}

func TestAnswerPractice(t *testing.T) {
	st := player.New("Tess", player.ClassDesigner)
	seq, _ := startLesson(t, st, "w1_lesson1")
	advanceTo(t, seq, 3)

	res, err := seq.AnswerPractice(0)
	if err != nil {
		t.Fatal(err)
	}
	if res.Correct {
		t.Error("choice 0 scored correct")
	}
	if res.Feedback == "" {
		t.Error("wrong answer returned no feedback")
	}
	if res.XPEarned != 0 {
		t.Errorf("wrong answer paid %d XP", res.XPEarned)
	}
	// Any selection satisfies the gate; only a correct one pays.
	if !seq.Satisfied() {
		t.Error("step not satisfied after wrong answer")
	}

	res, err = seq.AnswerPractice(1)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Correct {
		t.Error("choice 1 scored incorrect")
	}
	if res.XPEarned != 10 {
		t.Errorf("XPEarned = %d, want 10", res.XPEarned)
	}
	if !seq.Satisfied() {
		t.Error("step not satisfied after correct answer")
	}

	// Re-answering never pays twice.
	res, err = seq.AnswerPractice(1)
	if err != nil {
		t.Fatal(err)
	}
	if res.XPEarned != 0 {
		t.Errorf("repeat XPEarned = %d, want 0", res.XPEarned)
	}
	if st.TotalXP != 10 {
		t.Errorf("TotalXP = %d, want 10", st.TotalXP)
	}
}

func TestAnswerPractice_WrongStepKind(t *testing.T) {
	st := player.New("Tess", player.ClassDesigner)
	seq, _ := startLesson(t, st, "w1_lesson1")

	_, err := seq.AnswerPractice(0)
	var kind *StepTypeError
	if !errors.As(err, &kind) {
		t.Fatalf("AnswerPractice on video step = %v, want *StepTypeError", err)
	}
}

func TestAdvance_CompletesLesson(t *testing.T) {
	st := player.New("Tess", player.ClassDesigner)
	seq, rec := startLesson(t, st, "w1_lesson1")
	advanceTo(t, seq, 3)
	if _, err := seq.AnswerPractice(1); err != nil {
		t.Fatal(err)
	}

	out, err := seq.Advance()
	if err != nil {
		t.Fatal(err)
	}
	if out == nil {
		t.Fatal("Advance past last step returned nil Outcome")
	}
	if !out.FirstCompletion {
		t.Error("FirstCompletion = false")
	}
	// Content lesson, designer class: 50 base with the 1.5x bonus.
	if out.XPAwarded != 75 {
		t.Errorf("XPAwarded = %d, want 75", out.XPAwarded)
	}
	if out.StarsAwarded != 1 {
		t.Errorf("StarsAwarded = %d, want 1", out.StarsAwarded)
	}
	if !st.LessonCompleted("w1_lesson1") {
		t.Error("lesson not recorded")
	}
	if st.Stars != 1 {
		t.Errorf("Stars = %d, want 1", st.Stars)
	}
	if st.TotalXP != 85 {
		t.Errorf("TotalXP = %d, want 85 (10 practice + 75 completion)", st.TotalXP)
	}
	if !seq.Done() {
		t.Error("Done = false after finish")
	}
	if rec.count("completed w1_lesson1") != 1 {
		t.Errorf("events = %v, want one completion", rec.events)
	}
	// 1 of 13 lessons.
	if rec.count("progress 7") != 1 {
		t.Errorf("events = %v, want progress 7", rec.events)
	}
}

func TestAdvance_AfterFinishIsRejected(t *testing.T) {
	st := player.New("Tess", player.ClassDesigner)
	seq, rec := startLesson(t, st, "w1_lesson1")
	advanceTo(t, seq, 3)
	if _, err := seq.AnswerPractice(1); err != nil {
		t.Fatal(err)
	}
	if _, err := seq.Advance(); err != nil {
		t.Fatal(err)
	}

	xp, stars := st.TotalXP, st.Stars
	out, err := seq.Advance()
	var state *StateError
	if !errors.As(err, &state) {
		t.Fatalf("Advance on finished lesson = %v, want *StateError", err)
	}
	if out != nil {
		t.Errorf("Outcome = %+v, want nil", out)
	}
	if st.TotalXP != xp || st.Stars != stars {
		t.Errorf("rewards paid again: XP %d -> %d, stars %d -> %d", xp, st.TotalXP, stars, st.Stars)
	}
	if rec.count("completed w1_lesson1") != 1 {
		t.Errorf("events = %v, want exactly one completion", rec.events)
	}
}

func TestAdvance_ReplayPaysQuarterXP(t *testing.T) {
	st := player.New("Tess", player.ClassDesigner)
	st.RecordLesson("w1_lesson1")
	seq, rec := startLesson(t, st, "w1_lesson1")
	if !seq.Replay() {
		t.Fatal("Replay = false for completed lesson")
	}
	advanceTo(t, seq, 3)
	if _, err := seq.AnswerPractice(1); err != nil {
		t.Fatal(err)
	}

	out, err := seq.Advance()
	if err != nil {
		t.Fatal(err)
	}
	if out.FirstCompletion {
		t.Error("FirstCompletion = true on replay")
	}
	if out.XPAwarded != 12 {
		t.Errorf("XPAwarded = %d, want 12 (50/4)", out.XPAwarded)
	}
	if out.StarsAwarded != 0 {
		t.Errorf("StarsAwarded = %d, want 0", out.StarsAwarded)
	}
	if st.Stars != 0 {
		t.Errorf("Stars = %d, want 0", st.Stars)
	}
	if rec.count("reviewed w1_lesson1") != 1 {
		t.Errorf("events = %v, want one review", rec.events)
	}
	if rec.count("completed w1_lesson1") != 0 {
		t.Errorf("events = %v, replay emitted a completion", rec.events)
	}
}

func TestBack_DoesNotRepeatStepStatement(t *testing.T) {
	st := player.New("Tess", player.ClassDesigner)
	seq, rec := startLesson(t, st, "w1_lesson1")
	if _, err := seq.Advance(); err != nil {
		t.Fatal(err)
	}
	seq.Back()
	if seq.Index() != 0 {
		t.Fatalf("Index = %d after Back, want 0", seq.Index())
	}
	if _, err := seq.Advance(); err != nil {
		t.Fatal(err)
	}
	if got := rec.count("step w1_lesson1/1"); got != 1 {
		t.Errorf("step 1 reported %d times, want 1", got)
	}
}

func TestCheckSequence(t *testing.T) {
	st := player.New("Tess", player.ClassAdmin)
	st.RecordLesson("w1_lesson1")
	st.RecordLesson("w1_lesson2")
	seq, _ := startLesson(t, st, "w1_lesson3")
	advanceTo(t, seq, 3)

	step := seq.Step()
	if step.Interactive != catalog.InteractiveSequence {
		t.Fatalf("step 3 interactive = %s, want sequence", step.Interactive)
	}

	wrong := []int{1, 0, 2, 3, 4, 5}
	ok, xp, err := seq.CheckSequence(wrong)
	if err != nil {
		t.Fatal(err)
	}
	if ok || xp != 0 {
		t.Errorf("wrong order = (%v, %d), want (false, 0)", ok, xp)
	}
	if seq.Satisfied() {
		t.Error("step satisfied after wrong order")
	}

	right := []int{0, 1, 2, 3, 4, 5}
	ok, xp, err = seq.CheckSequence(right)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || xp != 15 {
		t.Errorf("correct order = (%v, %d), want (true, 15)", ok, xp)
	}

	ok, xp, err = seq.CheckSequence(right)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || xp != 0 {
		t.Errorf("repeat = (%v, %d), want (true, 0)", ok, xp)
	}

	out, err := seq.Advance()
	if err != nil {
		t.Fatal(err)
	}
	// Config lesson, admin class: 70 base with the 1.5x bonus.
	if out.XPAwarded != 105 {
		t.Errorf("XPAwarded = %d, want 105", out.XPAwarded)
	}
}

func TestSelectMatch(t *testing.T) {
	st := player.New("Tess", player.ClassDeveloper)
	for _, id := range []string{"w1_lesson1", "w1_lesson2", "w1_lesson3"} {
		st.RecordLesson(id)
	}
	st.RecordBossDefeat(1, catalog.NumWorlds)
	st.RecordLesson("w2_lesson1")
	st.RecordLesson("w2_lesson2")

	seq, _ := startLesson(t, st, "w2_lesson3")
	advanceTo(t, seq, 3)
	step := seq.Step()
	if step.Interactive != catalog.InteractiveMatching {
		t.Fatalf("step 3 interactive = %s, want matching", step.Interactive)
	}

	res, err := seq.SelectMatch(0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if res.Correct {
		t.Error("mismatched pair scored correct")
	}

	n := len(step.Pairs)
	for i := 0; i < n; i++ {
		res, err = seq.SelectMatch(i, i)
		if err != nil {
			t.Fatal(err)
		}
		if !res.Correct {
			t.Fatalf("pair %d scored incorrect", i)
		}
		if !seq.Matched(i) {
			t.Fatalf("pair %d not tracked as matched", i)
		}
	}
	if !res.Done {
		t.Error("Done = false after matching every pair")
	}
	if res.XPEarned != 15 {
		t.Errorf("XPEarned = %d, want 15", res.XPEarned)
	}
	if !seq.Satisfied() {
		t.Error("step not satisfied after matching every pair")
	}
}

func TestCanChallengeBoss(t *testing.T) {
	cat := catalog.Default()
	st := player.New("Tess", player.ClassDeveloper)
	w1, err := cat.World(1)
	if err != nil {
		t.Fatal(err)
	}

	if err := CanChallengeBoss(st, w1); err == nil {
		t.Error("boss available before any lessons")
	}
	for _, l := range w1.Lessons {
		st.RecordLesson(l.ID)
	}
	if err := CanChallengeBoss(st, w1); err != nil {
		t.Errorf("boss locked after all lessons: %v", err)
	}
}

func TestCanChallengeBoss_FinalWorldNeedsNoLessons(t *testing.T) {
	cat := catalog.Default()
	st := player.New("Tess", player.ClassDeveloper)
	final := cat.FinalWorld()

	if err := CanChallengeBoss(st, final); err == nil {
		t.Error("final boss available before world unlock")
	}
	st.Progress.WorldsUnlocked = append(st.Progress.WorldsUnlocked, final.ID)
	if err := CanChallengeBoss(st, final); err != nil {
		t.Errorf("final boss locked after world unlock: %v", err)
	}
}

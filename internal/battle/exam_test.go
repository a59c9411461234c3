package battle

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/jsalter/cmi5quest/internal/catalog"
	"github.com/jsalter/cmi5quest/internal/player"
	"github.com/jsalter/cmi5quest/internal/sequencer"
)

func finalWorld(t *testing.T) catalog.World {
	t.Helper()
	return catalog.Default().FinalWorld()
}

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

// answerAll drives the attempt to completion with n correct answers
// and the rest wrong, returning the final turn.
func answerAll(t *testing.T, e *Exam, n int) Turn {
	t.Helper()
	var turn Turn
	var err error
	for !e.Done() {
		q := e.Question()
		choice := q.CorrectIndex()
		if e.QuestionIndex() >= n {
			choice = (choice + 1) % len(q.Choices)
		}
		turn, err = e.Answer(choice)
		if err != nil {
			t.Fatalf("Answer at question %d: %v", e.QuestionIndex(), err)
		}
	}
	return turn
}

func TestNewExam_LockedUntilWorldUnlocked(t *testing.T) {
	st := player.New("Rook", player.ClassDeveloper)
	_, err := NewExam(finalWorld(t), st, nil, testRand(), 0)
	var locked *sequencer.LockedError
	if !errors.As(err, &locked) {
		t.Fatalf("NewExam = %v, want *LockedError", err)
	}
}

func TestNewExam_SamplesFromPool(t *testing.T) {
	w := finalWorld(t)
	st := readyForBoss(t, w)
	e, err := NewExam(w, st, nil, testRand(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if e.NumQuestions() != catalog.FinalExamSize {
		t.Fatalf("NumQuestions = %d, want %d", e.NumQuestions(), catalog.FinalExamSize)
	}
	seen := map[string]bool{}
	for range e.questions {
		q := e.Question()
		if seen[q.Text] {
			t.Errorf("question repeated in one attempt: %q", q.Text)
		}
		seen[q.Text] = true
		if _, err := e.Answer(q.CorrectIndex()); err != nil {
			t.Fatal(err)
		}
	}
}

func TestNewExam_PoolSmallerThanExam(t *testing.T) {
	w := finalWorld(t)
	st := readyForBoss(t, w)
	w.Boss.Questions = w.Boss.Questions[:catalog.FinalExamSize-1]

	_, err := NewExam(w, st, nil, testRand(), 0)
	var conf *ConfigurationError
	if !errors.As(err, &conf) {
		t.Fatalf("NewExam = %v, want *ConfigurationError", err)
	}
}

func TestExam_RunningAccuracy(t *testing.T) {
	w := finalWorld(t)
	st := readyForBoss(t, w)
	e, err := NewExam(w, st, nil, testRand(), 0)
	if err != nil {
		t.Fatal(err)
	}

	if got := e.Accuracy(); got != 0 {
		t.Errorf("Accuracy = %v before any answer, want 0", got)
	}
	if _, err := e.Answer(e.Question().CorrectIndex()); err != nil {
		t.Fatal(err)
	}
	if got := e.Accuracy(); got != 1.0 {
		t.Errorf("Accuracy = %v after one correct, want 1.0", got)
	}
	q := e.Question()
	if _, err := e.Answer((q.CorrectIndex() + 1) % len(q.Choices)); err != nil {
		t.Fatal(err)
	}
	if got := e.Accuracy(); got != 0.5 {
		t.Errorf("Accuracy = %v after one correct and one wrong, want 0.5", got)
	}
}

func TestExam_PerfectRunPasses(t *testing.T) {
	w := finalWorld(t)
	st := readyForBoss(t, w)
	rec := &recorder{}
	e, err := NewExam(w, st, rec, testRand(), 0)
	if err != nil {
		t.Fatal(err)
	}

	turn := answerAll(t, e, catalog.FinalExamSize)
	out := turn.Exam
	if out == nil {
		t.Fatal("final turn carried no ExamOutcome")
	}
	if !out.Passed {
		t.Error("Passed = false on a perfect run")
	}
	if out.Accuracy != 1.0 {
		t.Errorf("Accuracy = %v, want 1.0", out.Accuracy)
	}
	if out.XPAwarded != 500 {
		t.Errorf("XPAwarded = %d, want 500", out.XPAwarded)
	}
	if out.StarsAwarded != 10 {
		t.Errorf("StarsAwarded = %d, want 10", out.StarsAwarded)
	}
	if !out.FirstPass {
		t.Error("FirstPass = false")
	}
	if !st.BossDefeated(w.ID) {
		t.Error("final boss defeat not recorded")
	}
	if e.BossHP() != 0 {
		t.Errorf("BossHP = %d after ten correct answers, want 0", e.BossHP())
	}
	if rec.count("exam 10/10 passed=true") != 1 {
		t.Errorf("events = %v, want a passing exam assessment", rec.events)
	}
	if rec.count("course 1.00 passed=true") != 1 {
		t.Errorf("events = %v, want a passing course assessment", rec.events)
	}
	if rec.count("world 5") != 1 {
		t.Errorf("events = %v, want one world completion", rec.events)
	}
}

func TestExam_FailsBelowMastery(t *testing.T) {
	w := finalWorld(t)
	st := readyForBoss(t, w)
	rec := &recorder{}
	e, err := NewExam(w, st, rec, testRand(), 0)
	if err != nil {
		t.Fatal(err)
	}

	// 7 of 10 misses the default 0.8 mastery.
	turn := answerAll(t, e, 7)
	out := turn.Exam
	if out.Passed {
		t.Error("Passed = true at 70%")
	}
	if out.XPAwarded != 0 || out.StarsAwarded != 0 {
		t.Errorf("failed attempt paid %d XP %d stars", out.XPAwarded, out.StarsAwarded)
	}
	if st.BossDefeated(w.ID) {
		t.Error("failed attempt recorded a boss defeat")
	}
	if st.HP != st.MaxHP-3*examPlayerDamage {
		t.Errorf("HP = %d, want %d", st.HP, st.MaxHP-3*examPlayerDamage)
	}
	if rec.count("course 0.70 passed=false") != 1 {
		t.Errorf("events = %v, want a failing course assessment", rec.events)
	}
	if rec.count("world 5") != 0 {
		t.Errorf("events = %v, failed attempt completed the world", rec.events)
	}
}

func TestExam_EightOfTenPasses(t *testing.T) {
	w := finalWorld(t)
	st := readyForBoss(t, w)
	e, err := NewExam(w, st, nil, testRand(), 0)
	if err != nil {
		t.Fatal(err)
	}
	turn := answerAll(t, e, 8)
	if !turn.Exam.Passed {
		t.Error("Passed = false at exactly 80%")
	}
}

func TestExam_NoRally(t *testing.T) {
	w := finalWorld(t)
	st := readyForBoss(t, w)
	st.HP = examPlayerDamage
	e, err := NewExam(w, st, nil, testRand(), 0)
	if err != nil {
		t.Fatal(err)
	}
	q := e.Question()
	turn, err := e.Answer((q.CorrectIndex() + 1) % len(q.Choices))
	if err != nil {
		t.Fatal(err)
	}
	if turn.Rallied {
		t.Error("Rallied = true during the exam")
	}
	if st.HP != 0 {
		t.Errorf("HP = %d, want 0 with no rally", st.HP)
	}
}

func TestExam_RetryHealsAndResamples(t *testing.T) {
	w := finalWorld(t)
	st := readyForBoss(t, w)
	e, err := NewExam(w, st, nil, testRand(), 0)
	if err != nil {
		t.Fatal(err)
	}
	answerAll(t, e, 0)
	if st.HP == st.MaxHP {
		t.Fatal("all-wrong attempt left HP untouched")
	}

	e.Retry()
	if e.Done() {
		t.Error("Done = true after Retry")
	}
	if st.HP != st.MaxHP {
		t.Errorf("HP = %d after Retry, want %d", st.HP, st.MaxHP)
	}
	if e.QuestionIndex() != 0 {
		t.Errorf("QuestionIndex = %d after Retry, want 0", e.QuestionIndex())
	}
	if e.BossHP() != e.BossMaxHP() {
		t.Errorf("BossHP = %d after Retry, want %d", e.BossHP(), e.BossMaxHP())
	}
}

func TestExam_CustomMastery(t *testing.T) {
	w := finalWorld(t)
	st := readyForBoss(t, w)
	e, err := NewExam(w, st, nil, testRand(), 0.5)
	if err != nil {
		t.Fatal(err)
	}
	turn := answerAll(t, e, 5)
	if !turn.Exam.Passed {
		t.Error("Passed = false at 50% with mastery 0.5")
	}
}

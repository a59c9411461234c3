package lesson

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/jsalter/cmi5quest/internal/catalog"
	"github.com/jsalter/cmi5quest/internal/game"
	"github.com/jsalter/cmi5quest/internal/player"
	"github.com/jsalter/cmi5quest/internal/router"
	"github.com/jsalter/cmi5quest/internal/sequencer"
)

func newCtx() *game.Ctx {
	ctx := game.New()
	ctx.State = player.New("Tester", player.ClassDeveloper)
	return ctx
}

func mustRef(t *testing.T, ctx *game.Ctx, id string) catalog.LessonRef {
	t.Helper()
	ref, err := ctx.Catalog.FindLesson(id)
	if err != nil {
		t.Fatal(err)
	}
	return ref
}

func TestLockedLessonRefused(t *testing.T) {
	ctx := newCtx()

	_, err := New(ctx, mustRef(t, ctx, "w1_lesson2"))
	var locked *sequencer.LockedError
	if !errors.As(err, &locked) {
		t.Fatalf("err = %v, want *sequencer.LockedError", err)
	}
}

func TestGateBlocksSkippingPractice(t *testing.T) {
	ctx := newCtx()
	s, err := New(ctx, mustRef(t, ctx, "w1_lesson1"))
	if err != nil {
		t.Fatal(err)
	}

	// Three content steps, then the gated practice question.
	for i := 0; i < 3; i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	}
	if s.seq.Index() != 3 {
		t.Fatalf("Index = %d, want 3", s.seq.Index())
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if !s.gateHint {
		t.Error("advancing past an unanswered practice should raise the gate hint")
	}
	if s.seq.Index() != 3 {
		t.Errorf("Index = %d after gated advance, want 3", s.seq.Index())
	}
}

func TestAnswerPracticeThenComplete(t *testing.T) {
	ctx := newCtx()
	s, err := New(ctx, mustRef(t, ctx, "w1_lesson1"))
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	}

	// Enter submits the highlighted choice; any answer opens the gate.
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if s.practice == nil {
		t.Fatal("submitting an answer should record the practice result")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if s.outcome == nil {
		t.Fatal("advancing past the final step should finish the lesson")
	}
	if !s.outcome.FirstCompletion {
		t.Error("first run should report a first completion")
	}
	if !ctx.State.LessonCompleted("w1_lesson1") {
		t.Error("completion not recorded on the player")
	}
	if !strings.Contains(s.View(100, 30), "LESSON COMPLETE") {
		t.Error("outcome banner missing from view")
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("dismissing the outcome returned no command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("got %T, want router.PopScreenMsg", cmd())
	}
}

func TestBackFromFirstStepStays(t *testing.T) {
	ctx := newCtx()
	s, err := New(ctx, mustRef(t, ctx, "w1_lesson1"))
	if err != nil {
		t.Fatal(err)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if s.seq.Index() != 0 {
		t.Errorf("Index = %d, want 0", s.seq.Index())
	}
}

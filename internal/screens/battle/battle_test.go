package battle

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/jsalter/cmi5quest/internal/catalog"
	"github.com/jsalter/cmi5quest/internal/game"
	"github.com/jsalter/cmi5quest/internal/player"
	"github.com/jsalter/cmi5quest/internal/router"
	"github.com/jsalter/cmi5quest/internal/sequencer"
)

// readyCtx returns a context whose player has cleared every lesson of
// world 1, so its boss is challengeable.
func readyCtx(t *testing.T) *game.Ctx {
	t.Helper()
	ctx := game.New()
	ctx.State = player.New("Rook", player.ClassDeveloper)
	ctx.Rand = rand.New(rand.NewPCG(7, 7))

	w, err := ctx.Catalog.World(1)
	if err != nil {
		t.Fatal(err)
	}
	for _, l := range w.Lessons {
		ctx.State.RecordLesson(l.ID)
	}
	return ctx
}

func world1(t *testing.T, ctx *game.Ctx) catalog.World {
	t.Helper()
	w, err := ctx.Catalog.World(1)
	if err != nil {
		t.Fatal(err)
	}
	return w
}

func TestNew_LockedBeforeLessons(t *testing.T) {
	ctx := game.New()
	ctx.State = player.New("Rook", player.ClassDeveloper)

	w, err := ctx.Catalog.World(1)
	if err != nil {
		t.Fatal(err)
	}
	_, err = New(ctx, w)
	var locked *sequencer.LockedError
	if !errors.As(err, &locked) {
		t.Fatalf("err = %v, want *sequencer.LockedError", err)
	}
}

func TestFightRunsToVictory(t *testing.T) {
	ctx := readyCtx(t)
	s, err := New(ctx, world1(t, ctx))
	if err != nil {
		t.Fatal(err)
	}

	// Enter drives every phase: leave the intro, submit the highlighted
	// choice, dismiss the feedback. Boss fights cannot be lost, so this
	// always reaches the outcome.
	for i := 0; i < 100 && s.outcome == nil; i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	}
	if s.outcome == nil {
		t.Fatal("fight never reached an outcome")
	}

	if !ctx.State.BossDefeated(1) {
		t.Error("boss defeat not recorded")
	}
	if !ctx.State.WorldUnlocked(2) {
		t.Error("world 2 should unlock after the first boss")
	}
	if !strings.Contains(s.View(100, 30), "VICTORY") {
		t.Error("victory banner missing from view")
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("dismissing the outcome returned no command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("got %T, want router.PopScreenMsg", cmd())
	}
}

package area

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/jsalter/cmi5quest/internal/catalog"
	"github.com/jsalter/cmi5quest/internal/game"
	"github.com/jsalter/cmi5quest/internal/player"
	"github.com/jsalter/cmi5quest/internal/router"
	"github.com/jsalter/cmi5quest/internal/screens/lesson"
)

func world1(t *testing.T, ctx *game.Ctx) catalog.World {
	t.Helper()
	w, err := ctx.Catalog.World(1)
	if err != nil {
		t.Fatal(err)
	}
	return w
}

func TestOnlyFirstLessonOpen(t *testing.T) {
	ctx := game.New()
	ctx.State = player.New("Tester", player.ClassDesigner)
	s := New(ctx, world1(t, ctx))

	if s.menu.Items[0].Disabled {
		t.Error("lesson 1 should start unlocked")
	}
	for i := 1; i < len(s.menu.Items); i++ {
		if !s.menu.Items[i].Disabled {
			t.Errorf("entry %d should start locked", i)
		}
	}
}

func TestEnterLessonPushesLessonScreen(t *testing.T) {
	ctx := game.New()
	ctx.State = player.New("Tester", player.ClassDesigner)
	s := New(ctx, world1(t, ctx))

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("entering a lesson returned no command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("got %T, want router.PushScreenMsg", cmd())
	}
	if _, ok := msg.Screen.(*lesson.LessonScreen); !ok {
		t.Errorf("pushed %T, want *lesson.LessonScreen", msg.Screen)
	}
}

func TestRefreshUnlocksNextLesson(t *testing.T) {
	ctx := game.New()
	ctx.State = player.New("Tester", player.ClassDesigner)
	w := world1(t, ctx)
	s := New(ctx, w)

	ctx.State.RecordLesson(w.Lessons[0].ID)
	s.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})

	if s.menu.Items[1].Disabled {
		t.Error("lesson 2 should unlock after lesson 1 completes")
	}
	if s.menu.Items[0].Note != "✓" {
		t.Errorf("Note = %q, want completion mark on lesson 1", s.menu.Items[0].Note)
	}
}

func TestBossUnlocksAfterAllLessons(t *testing.T) {
	ctx := game.New()
	ctx.State = player.New("Tester", player.ClassDesigner)
	w := world1(t, ctx)
	s := New(ctx, w)

	boss := len(s.menu.Items) - 1
	if !s.menu.Items[boss].Disabled {
		t.Fatal("boss should start locked")
	}

	for _, l := range w.Lessons {
		ctx.State.RecordLesson(l.ID)
	}
	s.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})

	if s.menu.Items[boss].Disabled {
		t.Error("boss should unlock once every lesson is complete")
	}
}

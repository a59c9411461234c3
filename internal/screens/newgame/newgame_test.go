package newgame

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/jsalter/cmi5quest/internal/game"
	"github.com/jsalter/cmi5quest/internal/player"
	"github.com/jsalter/cmi5quest/internal/router"
	"github.com/jsalter/cmi5quest/internal/screens/worldmap"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func typeName(s *NewGameScreen, name string) {
	for _, r := range name {
		s.Update(keyPress(r))
	}
}

func TestEmptyNameRejected(t *testing.T) {
	s := New(game.New())

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if s.stage != stageName {
		t.Error("empty name should not advance to class selection")
	}
}

func TestNameThenClass(t *testing.T) {
	s := New(game.New())

	typeName(s, "Ada")
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if s.stage != stageClass {
		t.Fatal("expected class stage after confirming the name")
	}
	if s.hero != "Ada" {
		t.Errorf("hero = %q, want %q", s.hero, "Ada")
	}
	if !strings.Contains(s.View(100, 30), "CHOOSE YOUR CLASS") {
		t.Error("class prompt missing from view")
	}
}

func TestClassSelectionCreatesCharacter(t *testing.T) {
	ctx := game.New()
	s := New(ctx)

	typeName(s, "Ada")
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	// Second class in menu order.
	s.Update(keyPress('j'))
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if ctx.State == nil {
		t.Fatal("selecting a class should create the character")
	}
	if ctx.State.Name != "Ada" {
		t.Errorf("Name = %q, want %q", ctx.State.Name, "Ada")
	}
	if got, want := ctx.State.Class, player.AllClasses()[1]; got != want {
		t.Errorf("Class = %q, want %q", got, want)
	}

	if cmd == nil {
		t.Fatal("class selection returned no command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("got %T, want router.ReplaceScreenMsg", cmd())
	}
	if _, ok := msg.Screen.(*worldmap.WorldMapScreen); !ok {
		t.Errorf("replaced with %T, want *worldmap.WorldMapScreen", msg.Screen)
	}
}

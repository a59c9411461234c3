// Package area is the inside of one world: its NPC intro, the lesson
// list in unlock order, and the boss gate at the bottom.
package area

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jsalter/cmi5quest/internal/catalog"
	"github.com/jsalter/cmi5quest/internal/game"
	"github.com/jsalter/cmi5quest/internal/router"
	"github.com/jsalter/cmi5quest/internal/screen"
	"github.com/jsalter/cmi5quest/internal/screens/battle"
	"github.com/jsalter/cmi5quest/internal/screens/exam"
	"github.com/jsalter/cmi5quest/internal/screens/lesson"
	"github.com/jsalter/cmi5quest/internal/sequencer"
	"github.com/jsalter/cmi5quest/internal/ui/components"
	"github.com/jsalter/cmi5quest/internal/ui/layout"
	"github.com/jsalter/cmi5quest/internal/ui/theme"
)

// AreaScreen shows one world's lessons and boss.
type AreaScreen struct {
	ctx   *game.Ctx
	world catalog.World
	menu  components.Menu
}

var _ screen.Screen = (*AreaScreen)(nil)

// New creates the area screen for w.
func New(ctx *game.Ctx, w catalog.World) *AreaScreen {
	s := &AreaScreen{ctx: ctx, world: w}
	s.refresh()
	return s
}

// refresh rebuilds the menu from player progress so completing a
// lesson below this screen unlocks the next entry on return.
func (s *AreaScreen) refresh() {
	selected := s.menu.Selected
	st := s.ctx.State

	items := make([]components.MenuItem, 0, len(s.world.Lessons)+1)
	for i, l := range s.world.Lessons {
		ref := catalog.LessonRef{World: s.world, Lesson: l, Index: i}
		locked := sequencer.CanStartLesson(st, ref) != nil
		note := ""
		switch {
		case locked:
			note = "[LOCKED]"
		case st.LessonCompleted(l.ID):
			note = "✓"
		}
		items = append(items, components.MenuItem{
			Label:    fmt.Sprintf("%d. %s", i+1, l.Name),
			Note:     note,
			Disabled: locked,
			Action: func() tea.Cmd {
				return s.enterLesson(ref)
			},
		})
	}

	bossLocked := sequencer.CanChallengeBoss(st, s.world) != nil
	bossNote := ""
	switch {
	case bossLocked:
		bossNote = "[LOCKED]"
	case st.BossDefeated(s.world.ID):
		bossNote = "✓ DEFEATED"
	}
	bossLabel := "⚔ BOSS: " + s.world.Boss.Name
	if s.world.IsFinal() {
		bossLabel = "⚔ FINAL EXAM: " + s.world.Boss.Name
	}
	items = append(items, components.MenuItem{
		Label:    bossLabel,
		Note:     bossNote,
		Disabled: bossLocked,
		Action: func() tea.Cmd {
			return s.enterBoss()
		},
	})

	s.menu = components.NewMenu(items)
	if selected < len(items) && !items[selected].Disabled {
		s.menu.Selected = selected
	}
}

func (s *AreaScreen) enterLesson(ref catalog.LessonRef) tea.Cmd {
	ls, err := lesson.New(s.ctx, ref)
	if err != nil {
		return nil
	}
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: ls}
	}
}

func (s *AreaScreen) enterBoss() tea.Cmd {
	if s.world.IsFinal() {
		es, err := exam.New(s.ctx, s.world)
		if err != nil {
			return nil
		}
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: es}
		}
	}
	bs, err := battle.New(s.ctx, s.world)
	if err != nil {
		return nil
	}
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: bs}
	}
}

func (s *AreaScreen) Title() string {
	return fmt.Sprintf("World %d", s.world.ID)
}

func (s *AreaScreen) Init() tea.Cmd {
	return nil
}

func (s *AreaScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		s.refresh()
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *AreaScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render(strings.ToUpper(s.world.Name)) + "\n")
	if s.world.NPC != "" {
		b.WriteString(theme.Subtitle.Render("Guide: "+s.world.NPC) + "\n")
	}
	b.WriteString("\n")
	if s.world.IntroText != "" {
		intro := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(56).
			Render(s.world.IntroText)
		b.WriteString(intro + "\n\n")
	}
	b.WriteString(s.menu.View())

	card := theme.Card.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

// KeyHints returns the footer hints.
func (s *AreaScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "World Map"},
	}
}

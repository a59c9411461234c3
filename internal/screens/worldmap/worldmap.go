// Package worldmap is the course map: one entry per world, locked
// until the previous world's boss falls.
package worldmap

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jsalter/cmi5quest/internal/game"
	"github.com/jsalter/cmi5quest/internal/router"
	"github.com/jsalter/cmi5quest/internal/screen"
	"github.com/jsalter/cmi5quest/internal/screens/area"
	"github.com/jsalter/cmi5quest/internal/ui/components"
	"github.com/jsalter/cmi5quest/internal/ui/layout"
	"github.com/jsalter/cmi5quest/internal/ui/theme"
)

// WorldMapScreen lists the worlds with their lock and clear status.
type WorldMapScreen struct {
	ctx  *game.Ctx
	menu components.Menu
}

var _ screen.Screen = (*WorldMapScreen)(nil)

// New creates the world map for the current player.
func New(ctx *game.Ctx) *WorldMapScreen {
	s := &WorldMapScreen{ctx: ctx}
	s.refresh()
	return s
}

// refresh rebuilds the menu from player progress. Called on every key
// so a boss victory below this screen re-renders with the new unlocks.
func (s *WorldMapScreen) refresh() {
	selected := s.menu.Selected
	worlds := s.ctx.Catalog.Worlds()

	items := make([]components.MenuItem, 0, len(worlds))
	for _, w := range worlds {
		world := w
		note := ""
		locked := !s.ctx.State.WorldUnlocked(world.ID)
		switch {
		case locked:
			note = "[LOCKED]"
		case s.ctx.State.BossDefeated(world.ID):
			note = "✓ CLEAR"
		}
		items = append(items, components.MenuItem{
			Label:    fmt.Sprintf("World %d: %s", world.ID, world.Name),
			Note:     note,
			Disabled: locked,
			Action: func() tea.Cmd {
				s.ctx.Reporter.WorldEntered(world.ID, world.Name)
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: area.New(s.ctx, world)}
				}
			},
		})
	}

	s.menu = components.NewMenu(items)
	if selected < len(items) && !items[selected].Disabled {
		s.menu.Selected = selected
	}
}

func (s *WorldMapScreen) Title() string {
	return "World Map"
}

func (s *WorldMapScreen) Init() tea.Cmd {
	return nil
}

func (s *WorldMapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		s.refresh()
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *WorldMapScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("COURSE MAP") + "\n\n")
	b.WriteString(s.menu.View() + "\n")

	total := s.ctx.Catalog.LessonCount()
	done := len(s.ctx.State.Progress.LessonsCompleted)
	pct := 0.0
	if total > 0 {
		pct = float64(done) / float64(total)
	}
	bar := components.NewProgressBar("Lessons", pct, true, 44)
	b.WriteString(bar.View())

	card := theme.Card.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

// KeyHints returns the footer hints.
func (s *WorldMapScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Travel"},
		{Key: "Esc", Description: "Back"},
	}
}

// Package title is the opening screen: a short splash animation over
// the game banner, then the new-game / continue menu.
package title

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jsalter/cmi5quest/internal/game"
	"github.com/jsalter/cmi5quest/internal/router"
	"github.com/jsalter/cmi5quest/internal/screen"
	"github.com/jsalter/cmi5quest/internal/screens/newgame"
	"github.com/jsalter/cmi5quest/internal/screens/worldmap"
	"github.com/jsalter/cmi5quest/internal/ui/components"
	"github.com/jsalter/cmi5quest/internal/ui/layout"
	"github.com/jsalter/cmi5quest/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	bannerEnd    = 400 * time.Millisecond
	menuEnd      = 1200 * time.Millisecond
)

// sparkle frames cycle beside the tagline
var sparkleFrames = []string{"★", "✦"}

type tickMsg time.Time

// TitleScreen shows the splash and the entry menu.
type TitleScreen struct {
	ctx       *game.Ctx
	menu      components.Menu
	elapsed   time.Duration
	tickCount int
}

var _ screen.Screen = (*TitleScreen)(nil)

// New creates the title screen. The continue entry is present only
// when a save exists.
func New(ctx *game.Ctx) *TitleScreen {
	items := []components.MenuItem{
		{Label: "NEW GAME", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: newgame.New(ctx)}
			}
		}},
		{Label: "CONTINUE", Disabled: !ctx.HasSave(), Action: func() tea.Cmd {
			if !ctx.Continue() {
				return nil
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: worldmap.New(ctx)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &TitleScreen{
		ctx:  ctx,
		menu: components.NewMenu(items),
	}
}

func (t *TitleScreen) Title() string {
	return ""
}

func (t *TitleScreen) Init() tea.Cmd {
	return tea.Tick(tickInterval, func(tm time.Time) tea.Msg {
		return tickMsg(tm)
	})
}

func (t *TitleScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		t.elapsed += tickInterval
		t.tickCount++
		// Keep ticking after the menu lands; the sparkle stays animated.
		return t, tea.Tick(tickInterval, func(tm time.Time) tea.Msg {
			return tickMsg(tm)
		})

	case tea.KeyPressMsg:
		// Keys skip straight to the menu.
		if t.elapsed < menuEnd {
			t.elapsed = menuEnd
			return t, nil
		}
		var cmd tea.Cmd
		t.menu, cmd = t.menu.Update(msg)
		return t, cmd
	}

	return t, nil
}

func (t *TitleScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderBanner(width))

	if t.elapsed >= bannerEnd {
		frame := t.tickCount % len(sparkleFrames)
		sparkle := lipgloss.NewStyle().Foreground(theme.Accent).Render(sparkleFrames[frame])
		tagline := sparkle + "  " +
			theme.Subtitle.Render("A hero's guide to packaging cmi5 courses") +
			"  " + sparkle
		sections = append(sections, "", tagline)
	}

	if t.elapsed >= menuEnd {
		sections = append(sections, "", t.menu.View())
	} else {
		sections = append(sections, "", theme.Hint.Render("press any key"))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// KeyHints returns the footer hints for the title menu.
func (t *TitleScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

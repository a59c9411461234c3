// Package newgame collects the hero name and class, creates the
// character, and hands off to the world map.
package newgame

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jsalter/cmi5quest/internal/game"
	"github.com/jsalter/cmi5quest/internal/player"
	"github.com/jsalter/cmi5quest/internal/router"
	"github.com/jsalter/cmi5quest/internal/screen"
	"github.com/jsalter/cmi5quest/internal/screens/worldmap"
	"github.com/jsalter/cmi5quest/internal/ui/components"
	"github.com/jsalter/cmi5quest/internal/ui/layout"
	"github.com/jsalter/cmi5quest/internal/ui/theme"
)

const maxNameLen = 16

type stage int

const (
	stageName stage = iota
	stageClass
)

// classBlurbs describe each class's bonus in menu order.
var classBlurbs = map[player.Class]string{
	player.ClassDeveloper: "Bonus XP on code lessons. Lives in the terminal.",
	player.ClassDesigner:  "Bonus XP on content lessons. Makes learning stick.",
	player.ClassAdmin:     "Bonus XP on config lessons. Keeper of the LMS.",
}

// NewGameScreen walks name entry then class selection.
type NewGameScreen struct {
	ctx   *game.Ctx
	stage stage
	name  components.TextInput
	class components.Menu
	hero  string
}

var _ screen.Screen = (*NewGameScreen)(nil)

// New creates a new-game screen.
func New(ctx *game.Ctx) *NewGameScreen {
	s := &NewGameScreen{
		ctx:  ctx,
		name: components.NewTextInput("Sir Packalot", maxNameLen),
	}

	items := make([]components.MenuItem, 0, len(player.AllClasses()))
	for _, c := range player.AllClasses() {
		class := c
		items = append(items, components.MenuItem{
			Label: strings.ToUpper(string(class)),
			Note:  classBlurbs[class],
			Action: func() tea.Cmd {
				return s.start(class)
			},
		})
	}
	s.class = components.NewMenu(items)

	return s
}

// start creates the character and replaces this screen with the world
// map so esc from the map returns to the title, not here.
func (s *NewGameScreen) start(class player.Class) tea.Cmd {
	s.ctx.State = player.New(s.hero, class)
	s.ctx.Autosave()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: worldmap.New(s.ctx)}
	}
}

func (s *NewGameScreen) Title() string {
	return "New Game"
}

func (s *NewGameScreen) Init() tea.Cmd {
	return s.name.Init()
}

func (s *NewGameScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch s.stage {
	case stageName:
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
			hero := s.name.Value()
			if hero == "" {
				s.name.Submit(false)
				return s, nil
			}
			s.hero = hero
			s.stage = stageClass
			return s, nil
		}
		var cmd tea.Cmd
		s.name, cmd = s.name.Update(msg)
		return s, cmd

	case stageClass:
		var cmd tea.Cmd
		s.class, cmd = s.class.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *NewGameScreen) View(width, height int) string {
	var b strings.Builder

	switch s.stage {
	case stageName:
		b.WriteString(theme.Title.Render("NAME YOUR HERO") + "\n\n")
		b.WriteString(s.name.View() + "\n\n")
		b.WriteString(theme.Hint.Render("Enter to confirm"))

	case stageClass:
		b.WriteString(theme.Title.Render("CHOOSE YOUR CLASS") + "\n\n")
		b.WriteString(theme.Body.Render("Well met, "+s.hero+"!") + "\n\n")
		b.WriteString(s.class.View())
	}

	card := theme.Card.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

// KeyHints returns the footer hints for the current stage.
func (s *NewGameScreen) KeyHints() []layout.KeyHint {
	if s.stage == stageName {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Confirm"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

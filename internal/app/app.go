// Package app owns the root Bubble Tea model: the screen router, the
// shared frame with the player HUD, and program startup.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jsalter/cmi5quest/internal/game"
	"github.com/jsalter/cmi5quest/internal/router"
	"github.com/jsalter/cmi5quest/internal/screen"
	"github.com/jsalter/cmi5quest/internal/screens/title"
	"github.com/jsalter/cmi5quest/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	ctx    *game.Ctx
	router *router.Router
	width  int
	height int
}

// newAppModel creates the model, opening on the title screen.
func newAppModel(ctx *game.Ctx) AppModel {
	return AppModel{
		ctx:    ctx,
		router: router.New(title.New(ctx)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	screenTitle := ""
	if active != nil {
		screenTitle = active.Title()
	}

	var hud layout.HUD
	if st := m.ctx.State; st != nil {
		hud = layout.HUD{
			Name:  st.Name,
			Level: st.Level,
			HP:    st.HP,
			MaxHP: st.MaxHP,
			Stars: st.Stars,
		}
	}

	header := layout.RenderHeader(screenTitle, hud, m.width)
	footer := layout.RenderFooter(m.hints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// hints asks the active screen for footer hints, falling back to the
// stock navigation set.
func (m AppModel) hints(active screen.Screen) []layout.KeyHint {
	if hp, ok := active.(screen.KeyHintProvider); ok {
		return hp.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program over the given game context.
func Run(ctx *game.Ctx) error {
	p := tea.NewProgram(newAppModel(ctx))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

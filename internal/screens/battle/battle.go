// Package battle renders a world boss fight: the intro, the question
// loop with both HP bars, and the victory summary.
package battle

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jsalter/cmi5quest/internal/battle"
	"github.com/jsalter/cmi5quest/internal/catalog"
	"github.com/jsalter/cmi5quest/internal/game"
	"github.com/jsalter/cmi5quest/internal/router"
	"github.com/jsalter/cmi5quest/internal/screen"
	"github.com/jsalter/cmi5quest/internal/ui/components"
	"github.com/jsalter/cmi5quest/internal/ui/layout"
	"github.com/jsalter/cmi5quest/internal/ui/theme"
)

const contentWidth = 64

type phase int

const (
	phaseIntro phase = iota
	phaseQuestion
	phaseFeedback
	phaseOutcome
)

// BattleScreen runs one boss fight.
type BattleScreen struct {
	ctx   *game.Ctx
	fight *battle.Fight
	phase phase

	mc      components.MultiChoice
	turn    battle.Turn
	outcome *battle.Outcome
}

var _ screen.Screen = (*BattleScreen)(nil)

// New starts the boss fight for w. Returns the engine's error when the
// boss is still locked.
func New(ctx *game.Ctx, w catalog.World) (*BattleScreen, error) {
	f, err := battle.NewFight(w, ctx.State, ctx.Reporter, ctx.Rand, ctx.Mastery)
	if err != nil {
		return nil, err
	}
	return &BattleScreen{ctx: ctx, fight: f}, nil
}

// syncQuestion builds the choice selector for the current question in
// its shuffled display order.
func (s *BattleScreen) syncQuestion() {
	q := s.fight.Question()
	order := s.fight.ChoiceOrder()

	opts := make([]string, len(order))
	correct := -1
	for pos, idx := range order {
		opts[pos] = q.Choices[idx].Text
		if q.Choices[idx].Correct {
			correct = pos
		}
	}

	prompt := q.Text
	if q.Context != "" {
		prompt = q.Context + "\n\n" + q.Text
	}
	s.mc = components.NewMultiChoice(prompt, opts, correct)
}

func (s *BattleScreen) Title() string {
	return s.fight.Boss().Name
}

func (s *BattleScreen) Init() tea.Cmd {
	return nil
}

func (s *BattleScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch s.phase {
	case phaseIntro:
		if kmsg.String() == "enter" {
			s.phase = phaseQuestion
			s.syncQuestion()
		}
		return s, nil

	case phaseQuestion:
		order := s.fight.ChoiceOrder()
		var cmd tea.Cmd
		s.mc, cmd = s.mc.Update(msg)
		if s.mc.Submitted {
			turn, err := s.fight.Answer(order[s.mc.ChosenIndex])
			if err != nil {
				return s, cmd
			}
			s.turn = turn
			s.phase = phaseFeedback
		}
		return s, cmd

	case phaseFeedback:
		if kmsg.String() == "enter" {
			if s.turn.Outcome != nil {
				s.outcome = s.turn.Outcome
				s.phase = phaseOutcome
				return s, nil
			}
			s.phase = phaseQuestion
			s.syncQuestion()
		}
		return s, nil

	case phaseOutcome:
		if kmsg.String() == "enter" {
			s.ctx.Autosave()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	return s, nil
}

func (s *BattleScreen) View(width, height int) string {
	var content string
	switch s.phase {
	case phaseIntro:
		content = s.viewIntro()
	case phaseOutcome:
		content = s.viewOutcome()
	default:
		content = s.viewBattle()
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *BattleScreen) viewIntro() string {
	var b strings.Builder
	boss := s.fight.Boss()

	b.WriteString(theme.Title.Render("⚔  "+strings.ToUpper(boss.Name)+"  ⚔") + "\n\n")
	if boss.Intro != "" {
		b.WriteString(wrap(boss.Intro) + "\n\n")
	}
	if boss.ScenarioContext != "" {
		b.WriteString(theme.Hint.Render(wrap(boss.ScenarioContext)) + "\n\n")
	}
	b.WriteString(theme.Body.Render(fmt.Sprintf("%d questions stand between you and victory.",
		s.fight.NumQuestions())) + "\n\n")
	b.WriteString(theme.Hint.Render("Enter to fight"))

	return theme.Dialog.Render(b.String())
}

func (s *BattleScreen) viewBattle() string {
	var b strings.Builder
	boss := s.fight.Boss()

	bossBar := components.NewHPBar(boss.Name, s.fight.BossHP(), s.fight.BossMaxHP(), contentWidth)
	heroBar := components.NewHPBar(s.ctx.State.Name, s.ctx.State.HP, s.ctx.State.MaxHP, contentWidth)
	b.WriteString(bossBar.View() + "\n")
	b.WriteString(heroBar.View() + "\n\n")

	b.WriteString(theme.Hint.Render(fmt.Sprintf("Question %d of %d",
		s.fight.QuestionIndex()+1, s.fight.NumQuestions())) + "\n\n")

	b.WriteString(s.mc.View())

	if s.phase == phaseFeedback {
		b.WriteString("\n" + s.viewTurn())
	}

	return theme.Card.Width(contentWidth + 4).Render(b.String())
}

func (s *BattleScreen) viewTurn() string {
	var b strings.Builder
	if s.turn.Correct {
		b.WriteString(theme.Correct.Render(fmt.Sprintf("Direct hit! %d damage!", s.turn.DamageDealt)) + "\n")
	} else {
		b.WriteString(theme.Incorrect.Render(fmt.Sprintf("You take %d damage!", s.turn.DamageTaken)) + "\n")
		if s.turn.Rallied {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render(
				"You steady yourself and rally!") + "\n")
		}
	}
	if s.turn.Feedback != "" {
		b.WriteString(wrap(s.turn.Feedback) + "\n")
	}
	b.WriteString(theme.Hint.Render("Enter to continue"))
	return b.String()
}

func (s *BattleScreen) viewOutcome() string {
	var b strings.Builder
	out := s.outcome

	b.WriteString(theme.Title.Render("VICTORY!") + "\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Score: %d / %d", out.Score, out.MaxScore)) + "\n\n")
	b.WriteString(theme.Correct.Render(fmt.Sprintf("+%d XP", out.XPAwarded)) + "\n")
	if out.StarsAwarded > 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Render(
			fmt.Sprintf("+%d ★", out.StarsAwarded)) + "\n")
	}
	for _, up := range out.LevelUps {
		b.WriteString("\n" + theme.Selected.Render(fmt.Sprintf("LEVEL UP! You are now level %d", up.Level)))
		if up.Skill != nil {
			b.WriteString("\n" + theme.Body.Render("  New skill: "+up.Skill.Name))
		}
	}
	if out.Unlocked > 0 {
		b.WriteString("\n\n" + lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(
			fmt.Sprintf("World %d unlocked!", out.Unlocked)))
	}
	b.WriteString("\n\n" + theme.Hint.Render("Enter to continue"))

	return theme.Dialog.Render(b.String())
}

func wrap(s string) string {
	return lipgloss.NewStyle().Width(contentWidth).Foreground(theme.Text).Render(s)
}

// KeyHints returns the footer hints for the current phase.
func (s *BattleScreen) KeyHints() []layout.KeyHint {
	if s.phase == phaseQuestion {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Answer"},
		}
	}
	return []layout.KeyHint{{Key: "Enter", Description: "Continue"}}
}

// Package exam renders the final certification attempt: a sampled
// question run that, unlike a boss fight, can be failed and retried.
package exam

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

// ExamScreen runs final certification attempts.
type ExamScreen struct {
	ctx   *game.Ctx
	exam  *battle.Exam
	phase phase

	mc      components.MultiChoice
	turn    battle.Turn
	outcome *battle.ExamOutcome
	retry   components.Menu
}

var _ screen.Screen = (*ExamScreen)(nil)

// New starts the certification exam for the final world. Returns the
// engine's error when the exam is still locked.
func New(ctx *game.Ctx, w catalog.World) (*ExamScreen, error) {
	e, err := battle.NewExam(w, ctx.State, ctx.Reporter, ctx.Rand, ctx.Mastery)
	if err != nil {
		return nil, err
	}
	return &ExamScreen{ctx: ctx, exam: e}, nil
}

func (s *ExamScreen) syncQuestion() {
	q := s.exam.Question()
	order := s.exam.ChoiceOrder()

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

// buildRetryMenu is rebuilt per failure so the closures see the fresh
// attempt state.
func (s *ExamScreen) buildRetryMenu() {
	s.retry = components.NewMenu([]components.MenuItem{
		{Label: "RETRY EXAM", Action: func() tea.Cmd {
			s.exam.Retry()
			s.outcome = nil
			s.phase = phaseQuestion
			s.syncQuestion()
			return nil
		}},
		{Label: "RETREAT AND STUDY", Action: func() tea.Cmd {
			s.ctx.Autosave()
			return func() tea.Msg { return router.PopScreenMsg{} }
		}},
	})
}

func (s *ExamScreen) Title() string {
	return "Final Certification"
}

func (s *ExamScreen) Init() tea.Cmd {
	return nil
}

func (s *ExamScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
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
		order := s.exam.ChoiceOrder()
		var cmd tea.Cmd
		s.mc, cmd = s.mc.Update(msg)
		if s.mc.Submitted {
			turn, err := s.exam.Answer(order[s.mc.ChosenIndex])
			if err != nil {
				return s, cmd
			}
			s.turn = turn
			s.phase = phaseFeedback
		}
		return s, cmd

	case phaseFeedback:
		if kmsg.String() == "enter" {
			if s.turn.Exam != nil {
				s.outcome = s.turn.Exam
				s.phase = phaseOutcome
				if !s.outcome.Passed {
					s.buildRetryMenu()
				}
				return s, nil
			}
			s.phase = phaseQuestion
			s.syncQuestion()
		}
		return s, nil

	case phaseOutcome:
		if !s.outcome.Passed {
			var cmd tea.Cmd
			s.retry, cmd = s.retry.Update(msg)
			return s, cmd
		}
		if kmsg.String() == "enter" {
			s.ctx.Autosave()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	return s, nil
}

func (s *ExamScreen) View(width, height int) string {
	var content string
	switch s.phase {
	case phaseIntro:
		content = s.viewIntro()
	case phaseOutcome:
		content = s.viewOutcome()
	default:
		content = s.viewExam()
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *ExamScreen) viewIntro() string {
	var b strings.Builder
	boss := s.exam.Boss()

	b.WriteString(theme.Title.Render("FINAL CERTIFICATION") + "\n\n")
	b.WriteString(theme.Body.Render(boss.Name) + "\n\n")
	if boss.Intro != "" {
		b.WriteString(wrap(boss.Intro) + "\n\n")
	}
	b.WriteString(wrap(fmt.Sprintf(
		"%d questions, drawn fresh from the master pool. Score %.0f%% or better to earn your certification.",
		s.exam.NumQuestions(), s.exam.Mastery()*100)) + "\n\n")
	b.WriteString(theme.Incorrect.Render("There is no rally here. Wrong answers cost you.") + "\n\n")
	b.WriteString(theme.Hint.Render("Enter to begin"))

	return theme.Dialog.Render(b.String())
}

func (s *ExamScreen) viewExam() string {
	var b strings.Builder
	boss := s.exam.Boss()

	bossBar := components.NewHPBar(boss.Name, s.exam.BossHP(), s.exam.BossMaxHP(), contentWidth)
	heroBar := components.NewHPBar(s.ctx.State.Name, s.ctx.State.HP, s.ctx.State.MaxHP, contentWidth)
	b.WriteString(bossBar.View() + "\n")
	b.WriteString(heroBar.View() + "\n\n")

	line := fmt.Sprintf("Question %d of %d", min(s.exam.QuestionIndex()+1, s.exam.NumQuestions()), s.exam.NumQuestions())
	if s.exam.QuestionIndex() > 0 {
		line += fmt.Sprintf("   Accuracy: %.0f%%", s.exam.Accuracy()*100)
	}
	b.WriteString(theme.Hint.Render(line) + "\n\n")

	b.WriteString(s.mc.View())

	if s.phase == phaseFeedback {
		b.WriteString("\n" + s.viewTurn())
	}

	return theme.Card.Width(contentWidth + 4).Render(b.String())
}

func (s *ExamScreen) viewTurn() string {
	var b strings.Builder
	if s.turn.Correct {
		b.WriteString(theme.Correct.Render(fmt.Sprintf("Correct! %d damage!", s.turn.DamageDealt)) + "\n")
	} else {
		b.WriteString(theme.Incorrect.Render(fmt.Sprintf("Wrong. You take %d damage.", s.turn.DamageTaken)) + "\n")
	}
	b.WriteString(theme.Hint.Render("Enter to continue"))
	return b.String()
}

func (s *ExamScreen) viewOutcome() string {
	var b strings.Builder
	out := s.outcome

	if out.Passed {
		b.WriteString(theme.Title.Render("CERTIFIED!") + "\n\n")
	} else {
		b.WriteString(theme.Incorrect.Render("NOT THIS TIME") + "\n\n")
	}

	b.WriteString(theme.Body.Render(fmt.Sprintf("Score: %d / %d  (%.0f%%)",
		out.Score, out.MaxScore, out.Accuracy*100)) + "\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("Pass mark: %.0f%%", s.exam.Mastery()*100)) + "\n")

	if out.Passed {
		b.WriteString("\n" + theme.Correct.Render(fmt.Sprintf("+%d XP", out.XPAwarded)) + "\n")
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
		b.WriteString("\n\n" + theme.Hint.Render("Enter to continue"))
	} else {
		b.WriteString("\n" + wrap("The certification is still out of reach. A fresh set of questions awaits when you are ready.") + "\n\n")
		b.WriteString(s.retry.View())
	}

	return theme.Dialog.Render(b.String())
}

func wrap(s string) string {
	return lipgloss.NewStyle().Width(contentWidth).Foreground(theme.Text).Render(s)
}

// KeyHints returns the footer hints for the current phase.
func (s *ExamScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseQuestion:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Answer"},
		}
	case phaseOutcome:
		if s.outcome != nil && !s.outcome.Passed {
			return []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
			}
		}
	}
	return []layout.KeyHint{{Key: "Enter", Description: "Continue"}}
}

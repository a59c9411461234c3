package lesson

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/jsalter/cmi5quest/internal/catalog"
	"github.com/jsalter/cmi5quest/internal/ui/components"
	"github.com/jsalter/cmi5quest/internal/ui/theme"
)

const contentWidth = 64

func (s *LessonScreen) View(width, height int) string {
	if s.outcome != nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, s.viewOutcome())
	}

	step := s.seq.Step()

	var b strings.Builder
	b.WriteString(s.viewStepHeader(step) + "\n\n")

	switch step.Kind {
	case catalog.StepVideo:
		b.WriteString(s.viewMedia(step, "▶ VIDEO"))
	case catalog.StepImage:
		b.WriteString(s.viewMedia(step, "▦ DIAGRAM"))
	case catalog.StepText:
		b.WriteString(s.viewText(step))
	case catalog.StepReflection:
		b.WriteString(s.viewReflection(step))
	case catalog.StepInteractive:
		switch step.Interactive {
		case catalog.InteractiveSequence:
			b.WriteString(s.viewSequence(step))
		case catalog.InteractiveMatching:
			b.WriteString(s.viewMatching(step))
		}
	case catalog.StepPractice:
		b.WriteString(s.viewPractice(step))
	}

	if s.gateHint {
		b.WriteString("\n" + theme.Incorrect.Render("Complete this activity before moving on."))
	}

	card := theme.Card.Width(contentWidth + 4).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *LessonScreen) viewStepHeader(step catalog.Step) string {
	phase := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(step.Phase.Label())
	pos := theme.Hint.Render(fmt.Sprintf("Step %d of %d", s.seq.Index()+1, s.seq.Len()))
	title := theme.Body.Bold(true).Render(step.Title)

	bar := components.NewProgressBar("", float64(s.seq.Index()+1)/float64(s.seq.Len()), false, contentWidth)
	return phase + "  " + title + "  " + pos + "\n" + bar.View()
}

func (s *LessonScreen) viewMedia(step catalog.Step, tag string) string {
	var b strings.Builder
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Secondary).
		Width(contentWidth - 2).
		Align(lipgloss.Center).
		Padding(1, 0)

	b.WriteString(frame.Render(
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(tag)+
			"\n\n"+wrap(step.MediaDescription)) + "\n")

	if step.WatchPrompt != "" {
		b.WriteString("\n" + theme.Hint.Render("Look for: "+step.WatchPrompt) + "\n")
	}
	if step.Content != "" {
		b.WriteString("\n" + wrap(step.Content) + "\n")
	}
	return b.String()
}

func (s *LessonScreen) viewText(step catalog.Step) string {
	var b strings.Builder
	if step.Content != "" {
		b.WriteString(wrap(step.Content) + "\n")
	}
	if len(step.KeyPoints) > 0 {
		b.WriteString("\n")
		for _, kp := range step.KeyPoints {
			b.WriteString(theme.Body.Render("  • ") + wrapIndent(kp, 4) + "\n")
		}
	}
	if step.CodeExample != "" {
		code := lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(theme.Border).
			Foreground(theme.Success).
			Padding(0, 1).
			Render(step.CodeExample)
		b.WriteString("\n" + code + "\n")
	}
	for _, c := range step.Callouts {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Accent).Render("! ") + wrapIndent(c, 2))
	}
	if step.Summary != "" {
		b.WriteString("\n\n" + theme.Hint.Render(wrap(step.Summary)))
	}
	return b.String()
}

func (s *LessonScreen) viewReflection(step catalog.Step) string {
	var b strings.Builder
	if step.Content != "" {
		b.WriteString(wrap(step.Content) + "\n")
	}
	if len(step.Prompts) > 0 {
		b.WriteString("\n" + theme.Body.Bold(true).Render("Think about:") + "\n")
		for _, p := range step.Prompts {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render("  ? ") + wrapIndent(p, 4) + "\n")
		}
	}
	if step.Summary != "" {
		b.WriteString("\n" + theme.Hint.Render(wrap(step.Summary)))
	}
	return b.String()
}

func (s *LessonScreen) viewSequence(step catalog.Step) string {
	var b strings.Builder
	b.WriteString(wrap(step.Instructions) + "\n\n")

	for pos, item := range s.arrangement {
		line := fmt.Sprintf("%d. %s", pos+1, step.Items[item])
		switch {
		case s.solved:
			b.WriteString(theme.Correct.Render("  "+line) + "\n")
		case pos == s.cursor && s.grabbed:
			b.WriteString(theme.Selected.Render("◆ "+line) + "\n")
		case pos == s.cursor:
			b.WriteString(theme.Selected.Render("▸ "+line) + "\n")
		default:
			b.WriteString(theme.Unselected.Render("  "+line) + "\n")
		}
	}

	switch {
	case s.solved:
		b.WriteString("\n" + theme.Correct.Render("Correct!"+bonusTag(s.bonusXP)))
	case s.wrongOrder:
		b.WriteString("\n" + theme.Incorrect.Render("Not quite. Rearrange and check again."))
	}
	return b.String()
}

func (s *LessonScreen) viewMatching(step catalog.Step) string {
	var b strings.Builder
	b.WriteString(wrap(step.Instructions) + "\n\n")

	colWidth := contentWidth/2 - 2
	var left, right strings.Builder
	for i, p := range step.Pairs {
		line := truncate(p.Left, colWidth-2)
		switch {
		case s.seq.Matched(i):
			left.WriteString(theme.Correct.Render("✓ "+line) + "\n")
		case i == s.pendingLeft:
			left.WriteString(theme.Selected.Render("◆ "+line) + "\n")
		case s.col == colLeft && i == s.cursor && !s.solved:
			left.WriteString(theme.Selected.Render("▸ "+line) + "\n")
		default:
			left.WriteString(theme.Unselected.Render("  "+line) + "\n")
		}
	}
	for pos, idx := range s.rightOrder {
		line := truncate(step.Pairs[idx].Right, colWidth-2)
		switch {
		case s.seq.Matched(idx):
			right.WriteString(theme.Correct.Render("✓ "+line) + "\n")
		case s.col == colRight && pos == s.cursor && !s.solved:
			right.WriteString(theme.Selected.Render("▸ "+line) + "\n")
		default:
			right.WriteString(theme.Unselected.Render("  "+line) + "\n")
		}
	}

	cols := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(colWidth).Render(left.String()),
		"    ",
		lipgloss.NewStyle().Width(colWidth).Render(right.String()),
	)
	b.WriteString(cols)

	switch {
	case s.solved:
		b.WriteString("\n" + theme.Correct.Render("All matched!"+bonusTag(s.bonusXP)))
	case s.wrongMatch:
		b.WriteString("\n" + theme.Incorrect.Render("Those don't go together. Try another pair."))
	}
	return b.String()
}

func (s *LessonScreen) viewPractice(step catalog.Step) string {
	var b strings.Builder
	if step.Scenario != "" {
		b.WriteString(theme.Hint.Render(wrap(step.Scenario)) + "\n\n")
	}
	b.WriteString(s.mc.View())

	if s.practice != nil {
		b.WriteString("\n")
		if s.practice.Correct {
			b.WriteString(theme.Correct.Render("Correct!"+bonusTag(s.bonusXP)) + "\n")
		} else {
			b.WriteString(theme.Incorrect.Render("Not quite.") + "\n")
		}
		if s.practice.Feedback != "" {
			b.WriteString(wrap(s.practice.Feedback) + "\n")
		}
	}
	return b.String()
}

func (s *LessonScreen) viewOutcome() string {
	var b strings.Builder
	l := s.seq.Lesson()

	if s.outcome.FirstCompletion {
		b.WriteString(theme.Title.Render("LESSON COMPLETE!") + "\n\n")
	} else {
		b.WriteString(theme.Title.Render("LESSON REVIEWED") + "\n\n")
	}
	b.WriteString(theme.Body.Render(l.Name) + "\n\n")
	b.WriteString(theme.Correct.Render(fmt.Sprintf("+%d XP", s.outcome.XPAwarded)) + "\n")
	if s.outcome.StarsAwarded > 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Render(
			fmt.Sprintf("+%d ★", s.outcome.StarsAwarded)) + "\n")
	}
	for _, up := range s.outcome.LevelUps {
		line := fmt.Sprintf("LEVEL UP! You are now level %d", up.Level)
		b.WriteString("\n" + theme.Selected.Render(line))
		if up.Skill != nil {
			b.WriteString("\n" + theme.Body.Render("  New skill: "+up.Skill.Name))
		}
	}
	b.WriteString("\n\n" + theme.Hint.Render("Enter to continue"))

	return theme.Dialog.Render(b.String())
}

func bonusTag(xp int) string {
	if xp > 0 {
		return fmt.Sprintf("  +%d XP", xp)
	}
	return ""
}

func wrap(s string) string {
	return lipgloss.NewStyle().Width(contentWidth).Foreground(theme.Text).Render(s)
}

func wrapIndent(s string, indent int) string {
	return lipgloss.NewStyle().Width(contentWidth - indent).Foreground(theme.Text).Render(s)
}

func truncate(s string, w int) string {
	if w > 1 && lipgloss.Width(s) > w {
		return s[:w-1] + "…"
	}
	return s
}

package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/todoscontam/finlab/internal/ui/components"
	"github.com/todoscontam/finlab/internal/ui/layout"
	"github.com/todoscontam/finlab/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nCould not run quiz: %s\n\nPress any key to go back.", s.errMsg))
	}
	if s.quitConfirm {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Card.Render("Leave this quiz?\n\nYour answers so far will not be saved.\n\n[Y] Leave   [N] Keep going"))
	}
	if s.finishing {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Scoring..."))
	}

	cardWidth := min(width-4, 76)
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(layout.Center(components.StepProgress(s.session.Index(), s.session.Total(), cardWidth).View(), width))
	b.WriteString("\n\n")

	if s.last != nil {
		b.WriteString(layout.Center(s.renderFeedback(cardWidth), width))
		return b.String()
	}

	if item, ok := s.session.Current(); ok {
		b.WriteString(layout.Center(theme.Hint.Render(item.Category), width))
		b.WriteString("\n\n")
	}
	body := lipgloss.NewStyle().Width(cardWidth).Render(s.choice.View())
	b.WriteString(layout.Center(theme.Card.Render(body), width))
	return b.String()
}

func (s *QuizScreen) renderFeedback(width int) string {
	fb := s.last
	var b strings.Builder

	switch {
	case fb.Item.Weighted():
		b.WriteString(theme.Tier.Render(fmt.Sprintf("%s: +%d of %d", fb.Answer, fb.Points, fb.Item.MaxWeight())))
	case fb.Correct:
		b.WriteString(theme.Correct.Render("Correct!"))
	default:
		b.WriteString(theme.Incorrect.Render("Not quite."))
		b.WriteString("\n")
		b.WriteString(theme.Body.Render("The answer is: " + fb.Item.Answer))
	}

	if fb.Item.Explanation != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Body.Render(fb.Item.Explanation))
	}

	return theme.Card.Render(lipgloss.NewStyle().Width(width).Render(b.String()))
}

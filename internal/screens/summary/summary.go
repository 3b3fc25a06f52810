package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/todoscontam/finlab/internal/assessment"
	"github.com/todoscontam/finlab/internal/catalog"
	"github.com/todoscontam/finlab/internal/router"
	"github.com/todoscontam/finlab/internal/screen"
	"github.com/todoscontam/finlab/internal/store"
	"github.com/todoscontam/finlab/internal/ui/layout"
	"github.com/todoscontam/finlab/internal/ui/theme"
)

// SummaryScreen shows the outcome of a finished quiz.
type SummaryScreen struct {
	quiz    catalog.Quiz
	result  assessment.Result
	tier    assessment.Tier
	saved   *store.Result
	saveErr error
	review  bool

	finished assessment.Session
	retry    func(assessment.Session) screen.Screen
	retryErr string
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen. saved is nil when the result was not stored;
// err explains why if storing failed.
func New(q catalog.Quiz, result assessment.Result, tier assessment.Tier, saved *store.Result, err error) *SummaryScreen {
	return &SummaryScreen{quiz: q, result: result, tier: tier, saved: saved, saveErr: err}
}

// WithRetry enables the try-again key. open builds the screen for the
// session that Reset draws from finished.
func (s *SummaryScreen) WithRetry(finished assessment.Session, open func(assessment.Session) screen.Screen) *SummaryScreen {
	s.finished = finished
	s.retry = open
	return s
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return s.quiz.Title + " · Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	review := "Review answers"
	if s.review {
		review = "Hide answers"
	}
	hints := []layout.KeyHint{{Key: "R", Description: review}}
	if s.retry != nil {
		hints = append(hints, layout.KeyHint{Key: "T", Description: "Try again"})
	}
	return append(hints, layout.KeyHint{Key: "Enter", Description: "Home"})
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "r", "R":
			s.review = !s.review
			return s, nil
		case "t", "T":
			return s, s.tryAgain()
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) tryAgain() tea.Cmd {
	if s.retry == nil {
		return nil
	}
	next, err := s.finished.Reset()
	if err != nil {
		s.retryErr = err.Error()
		return nil
	}
	return router.Replace(s.retry(next))
}

func (s *SummaryScreen) View(width, height int) string {
	r := s.result
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Quiz complete!"))
	b.WriteString("\n\n")

	b.WriteString(layout.Center(theme.Body.Render(ScoreLine(r)), width))
	b.WriteString("\n\n")

	if s.tier.Label != "" {
		b.WriteString(layout.Center(theme.Tier.Render(s.tier.Label), width))
		b.WriteString("\n")
		if s.tier.Message != "" {
			msg := lipgloss.NewStyle().Width(min(width-8, 70)).Align(lipgloss.Center).
				Foreground(theme.Text).Render(s.tier.Message)
			b.WriteString(layout.Center(msg, width))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	cats := r.ByCategory()
	if len(cats) > 1 {
		b.WriteString(layout.Divider("By theme", width))
		b.WriteString("\n\n")
		for _, c := range cats {
			line := fmt.Sprintf("%-28s %3.0f%%", c.Category, c.Percentage)
			style := theme.Body
			if c.Percentage >= 50 {
				style = theme.Gain
			}
			b.WriteString(layout.Center(style.Render(line), width))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if s.review {
		b.WriteString(layout.Divider("Answers", width))
		b.WriteString("\n\n")
		for i, a := range r.Answers {
			b.WriteString(layout.Center(renderAnswer(i+1, a, min(width-8, 76)), width))
			b.WriteString("\n")
		}
	}

	if s.retryErr != "" {
		b.WriteString(layout.Center(theme.Incorrect.Render("Cannot restart: "+s.retryErr), width))
		b.WriteString("\n")
	}

	switch {
	case s.saveErr != nil:
		b.WriteString(layout.Center(theme.Incorrect.Render("Result not saved: "+s.saveErr.Error()), width))
	case s.saved != nil:
		b.WriteString(layout.Center(theme.Hint.Render("Saved to history · seed "+fmt.Sprint(s.saved.Seed)), width))
	}

	return b.String()
}

// ScoreLine formats the headline score of a result.
func ScoreLine(r assessment.Result) string {
	if r.Weighted {
		return fmt.Sprintf("Points: %d / %d        Score: %.0f%%", r.Points, r.MaxPoints, r.Percentage)
	}
	return fmt.Sprintf("Correct: %d / %d        Score: %.0f%%", r.Correct, r.Total, r.Percentage)
}

func renderAnswer(n int, a assessment.Answered, width int) string {
	var mark string
	switch {
	case a.Item.Weighted():
		mark = theme.Tier.Render(fmt.Sprintf("+%d", a.Points))
	case a.Correct:
		mark = theme.Correct.Render("✓")
	default:
		mark = theme.Incorrect.Render("✗")
	}
	line := fmt.Sprintf("%d. %s\n   %s %s", n, a.Item.Prompt, mark, a.Answer)
	if !a.Correct && !a.Item.Weighted() {
		line += theme.Hint.Render("  (answer: " + a.Item.Answer + ")")
	}
	return lipgloss.NewStyle().Width(width).Render(line)
}

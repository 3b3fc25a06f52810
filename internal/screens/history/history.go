package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/todoscontam/finlab/internal/router"
	"github.com/todoscontam/finlab/internal/screen"
	"github.com/todoscontam/finlab/internal/store"
	"github.com/todoscontam/finlab/internal/ui/layout"
	"github.com/todoscontam/finlab/internal/ui/theme"
)

const pageSize = 50

type historyLoadedMsg struct {
	Results []store.Result
	Err     error
}

type detailLoadedMsg struct {
	Index  int
	Result *store.Result
	Err    error
}

// HistoryScreen lists past quiz results, newest first.
type HistoryScreen struct {
	repo     store.ResultRepo
	titles   map[string]string
	results  []store.Result
	details  map[int]*store.Result
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen. titles maps quiz IDs to display names.
func New(repo store.ResultRepo, titles map[string]string) *HistoryScreen {
	return &HistoryScreen{
		repo:     repo,
		titles:   titles,
		details:  make(map[int]*store.Result),
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		results, err := s.repo.List(context.Background(), store.ResultFilter{Limit: pageSize})
		return historyLoadedMsg{Results: results, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Answers"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.results = msg.Results
		}
		s.loaded = true
		return s, nil

	case detailLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.details[msg.Index] = msg.Result
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, router.Pop
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.results)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			if len(s.results) == 0 {
				return s, nil
			}
			i := s.selected
			s.expanded[i] = !s.expanded[i]
			if s.expanded[i] && s.details[i] == nil {
				return s, s.loadDetail(i)
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) loadDetail(i int) tea.Cmd {
	id := s.results[i].ID
	return func() tea.Msg {
		r, err := s.repo.Get(context.Background(), id)
		return detailLoadedMsg{Index: i, Result: r, Err: err}
	}
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.results) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No quizzes taken yet.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, r := range s.results {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		title := s.titles[r.QuizID]
		if title == "" {
			title = r.QuizID
		}

		line := fmt.Sprintf("%s%s  %-28s %4.0f%%  %s",
			prefix, r.CreatedAt.Format("Jan 02, 2006 15:04"), title, r.Percentage, r.Tier)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(layout.Center(style.Render(line), width))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(s.renderDetail(i, width))
		}
	}

	return b.String()
}

func (s *HistoryScreen) renderDetail(i, width int) string {
	d := s.details[i]
	if d == nil {
		return layout.Center(theme.Hint.Render("    Loading answers..."), width) + "\n"
	}
	if len(d.Answers) == 0 {
		return layout.Center(theme.Hint.Render("    No answers recorded"), width) + "\n"
	}

	var b strings.Builder
	for _, a := range d.Answers {
		mark := theme.Correct.Render("✓")
		if d.Weighted {
			mark = theme.Tier.Render(fmt.Sprintf("+%d", a.Points))
		} else if !a.Correct {
			mark = theme.Incorrect.Render("✗")
		}
		line := fmt.Sprintf("    %s %s → %s", mark, truncate(a.Prompt, 50), a.Answer)
		b.WriteString(layout.Center(theme.Body.Render(line), width))
		b.WriteString("\n")
	}
	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

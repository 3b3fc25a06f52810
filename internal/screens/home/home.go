package home

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/todoscontam/finlab/internal/catalog"
	"github.com/todoscontam/finlab/internal/registry"
	"github.com/todoscontam/finlab/internal/router"
	"github.com/todoscontam/finlab/internal/screen"
	"github.com/todoscontam/finlab/internal/screens/guide"
	"github.com/todoscontam/finlab/internal/screens/history"
	"github.com/todoscontam/finlab/internal/screens/quiz"
	"github.com/todoscontam/finlab/internal/screens/simulate"
	"github.com/todoscontam/finlab/internal/store"
	"github.com/todoscontam/finlab/internal/ui/components"
	"github.com/todoscontam/finlab/internal/ui/layout"
	"github.com/todoscontam/finlab/internal/ui/theme"
)

type statsLoadedMsg struct {
	Stats []store.QuizStats
	Err   error
}

// Deps are the services the home screen hands to the screens it opens.
type Deps struct {
	Catalog  *catalog.Catalog
	Results  store.ResultRepo // nil runs without history
	Seed     *uint64          // non-nil makes every quiz draw reproducible
	Currency string
}

// HomeScreen lists the course chapters and starts quizzes and simulators.
type HomeScreen struct {
	catalog  *catalog.Catalog
	results  store.ResultRepo
	seed     *uint64
	currency string

	menu   components.Menu
	best   map[string]float64
	errMsg string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen.
func New(deps Deps) *HomeScreen {
	h := &HomeScreen{
		catalog:  deps.Catalog,
		results:  deps.Results,
		seed:     deps.Seed,
		currency: deps.Currency,
		best:     make(map[string]float64),
	}
	h.menu = components.NewMenu(h.menuItems())
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	if h.results == nil {
		return nil
	}
	repo := h.results
	return func() tea.Msg {
		stats, err := repo.Stats(context.Background())
		return statsLoadedMsg{Stats: stats, Err: err}
	}
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(statsLoadedMsg); ok {
		if msg.Err != nil {
			h.errMsg = msg.Err.Error()
			return h, nil
		}
		for _, s := range msg.Stats {
			h.best[s.QuizID] = s.Best
		}
		selected := h.menu.Selected
		h.menu = components.NewMenu(h.menuItems())
		h.menu.Selected = selected
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// StartQuiz returns a command that opens quiz id, or nil if it is unknown.
func (h *HomeScreen) StartQuiz(id string) tea.Cmd {
	seed := rand.Uint64()
	if h.seed != nil {
		seed = *h.seed
	}
	q, err := h.catalog.Get(id, seed)
	if err != nil {
		h.errMsg = err.Error()
		return nil
	}
	return router.Push(quiz.New(q, &seed, h.results))
}

func (h *HomeScreen) menuItems() []components.MenuItem {
	var items []components.MenuItem
	for _, ch := range registry.Chapters() {
		items = append(items, components.MenuItem{Label: ch.Title, Heading: true})
		for _, m := range ch.Modules {
			if m.Kind != registry.Quiz {
				items = append(items, h.toolItem(ch, m))
				continue
			}
			id := m.QuizID
			item := components.MenuItem{
				Label:  m.Title,
				Action: func() tea.Cmd { return h.StartQuiz(id) },
			}
			if best, ok := h.best[id]; ok {
				item.Hint = fmt.Sprintf("best %.0f%%", best)
			}
			items = append(items, item)
		}
	}

	items = append(items, components.MenuItem{Label: "More", Heading: true})
	if h.results != nil {
		items = append(items, components.MenuItem{Label: "History", Action: func() tea.Cmd {
			return router.Push(history.New(h.results, h.titles()))
		}})
	}
	items = append(items, components.MenuItem{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }})
	return items
}

// toolItem opens the interactive screen of a simulator, or a guide to its
// CLI command when it only exists there.
func (h *HomeScreen) toolItem(ch registry.Chapter, m registry.Module) components.MenuItem {
	if m.ID == "compound" {
		return components.MenuItem{Label: m.Title, Action: func() tea.Cmd {
			return router.Push(simulate.New(h.currency))
		}}
	}
	return components.MenuItem{Label: m.Title, Hint: m.Command, Action: func() tea.Cmd {
		return router.Push(guide.New(ch.Title, m))
	}}
}

func (h *HomeScreen) titles() map[string]string {
	titles := make(map[string]string)
	for _, s := range h.catalog.List() {
		titles[s.ID] = s.Title
	}
	return titles
}

func (h *HomeScreen) View(width, height int) string {
	compact := height < 24 || layout.IsCompactWidth(width)

	var sections []string
	sections = append(sections, layout.Center(renderBanner(width, compact), width))
	sections = append(sections, layout.Center(theme.Hint.Render("Learn to manage money, one chapter at a time."), width))
	if h.errMsg != "" {
		sections = append(sections, layout.Center(theme.Incorrect.Render(h.errMsg), width))
	}

	used := 0
	for _, s := range sections {
		used += lipgloss.Height(s) + 1
	}
	menuHeight := max(height-used-4, 5) // card border and padding

	card := theme.Card.Width(min(width-4, 64)).Render(h.menu.ViewWindow(menuHeight))
	sections = append(sections, layout.Center(card, width))

	return strings.Join(sections, "\n")
}

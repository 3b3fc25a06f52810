// Package guide shows how to run a module that lives on the command line.
package guide

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/todoscontam/finlab/internal/registry"
	"github.com/todoscontam/finlab/internal/router"
	"github.com/todoscontam/finlab/internal/screen"
	"github.com/todoscontam/finlab/internal/ui/layout"
	"github.com/todoscontam/finlab/internal/ui/theme"
)

// GuideScreen points at the CLI command of a simulator or planner.
type GuideScreen struct {
	chapter string
	module  registry.Module
}

var _ screen.Screen = (*GuideScreen)(nil)

// New creates a GuideScreen for module m of the given chapter.
func New(chapter string, m registry.Module) *GuideScreen {
	return &GuideScreen{chapter: chapter, module: m}
}

func (g *GuideScreen) Init() tea.Cmd {
	return nil
}

func (g *GuideScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc", "enter", "q":
			return g, router.Pop
		}
	}
	return g, nil
}

func (g *GuideScreen) View(width, height int) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		theme.Subtitle.Render(g.chapter),
		"",
		theme.Title.Render(g.module.Title),
		"",
		theme.Body.Render("This "+string(g.module.Kind)+" runs from the command line:"),
		"",
		theme.Card.Render(theme.Selected.Render(g.module.Command)),
		"",
		theme.Hint.Render("Add --help to see every option."),
	)
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}

func (g *GuideScreen) Title() string {
	return g.module.Title
}

func (g *GuideScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}

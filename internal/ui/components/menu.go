package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/todoscontam/finlab/internal/ui/theme"
)

// MenuItem represents a single item in a navigation menu. An item with
// Heading set is a non-selectable section title.
type MenuItem struct {
	Label    string
	Hint     string
	Action   func() tea.Cmd
	Disabled bool
	Heading  bool
}

func (it MenuItem) selectable() bool {
	return !it.Disabled && !it.Heading
}

// Menu is a vertical navigation menu.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a new menu with the first selectable item highlighted.
func NewMenu(items []MenuItem) Menu {
	selected := 0
	for i, item := range items {
		if item.selectable() {
			selected = i
			break
		}
	}
	return Menu{
		Items:    items,
		Selected: selected,
	}
}

// Init returns nil (no initial command).
func (m Menu) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		for i := m.Selected - 1; i >= 0; i-- {
			if m.Items[i].selectable() {
				m.Selected = i
				break
			}
		}
	case "down", "j":
		for i := m.Selected + 1; i < len(m.Items); i++ {
			if m.Items[i].selectable() {
				m.Selected = i
				break
			}
		}
	case "enter":
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			item := m.Items[m.Selected]
			if item.Action != nil && item.selectable() {
				return m, item.Action()
			}
		}
	}

	return m, nil
}

// View renders the menu.
func (m Menu) View() string {
	var s string
	for i, item := range m.Items {
		var line string
		switch {
		case item.Heading:
			line = theme.Tier.Render(item.Label)
		case i == m.Selected:
			line = theme.Selected.Render("  ▸ " + item.Label)
		case item.Disabled:
			line = theme.Disabled.Render("    " + item.Label)
		default:
			line = theme.Unselected.Render("    " + item.Label)
		}
		if item.Hint != "" && !item.Heading {
			line += "  " + lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(item.Hint)
		}
		s += line + "\n"
	}
	return s
}

// ViewWindow renders at most height lines of the menu, scrolled so the
// selected item stays visible.
func (m Menu) ViewWindow(height int) string {
	lines := strings.Split(strings.TrimSuffix(m.View(), "\n"), "\n")
	if height <= 0 || len(lines) <= height {
		return strings.Join(lines, "\n")
	}
	start := min(max(m.Selected-height/2, 0), len(lines)-height)
	// Show the heading right above the selection when it fits.
	if start > 0 && m.Selected-start < height-1 && m.Items[start-1].Heading {
		start--
	}
	return strings.Join(lines[start:start+height], "\n")
}

package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenu_SkipsHeadingsAndDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "Chapter", Heading: true},
		{Label: "Simulator", Disabled: true},
		{Label: "Quiz A"},
		{Label: "Chapter 2", Heading: true},
		{Label: "Quiz B"},
	})
	assert.Equal(t, 2, m.Selected)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 4, m.Selected)
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 4, m.Selected)
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 2, m.Selected)
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 2, m.Selected)
}

func TestMenu_EnterRunsAction(t *testing.T) {
	ran := false
	m := NewMenu([]MenuItem{{Label: "Go", Action: func() tea.Cmd {
		ran = true
		return nil
	}}})
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.True(t, ran)
}

func TestMenu_ViewWindowKeepsSelectionVisible(t *testing.T) {
	var items []MenuItem
	for i := range 30 {
		items = append(items, MenuItem{Label: strings.Repeat("x", i%5+1) + "-item"})
	}
	m := NewMenu(items)
	m.Selected = 25

	window := m.ViewWindow(6)
	lines := strings.Split(window, "\n")
	assert.Len(t, lines, 6)
	assert.Contains(t, window, "▸")

	assert.Len(t, strings.Split(m.ViewWindow(0), "\n"), 30)
}

func TestMultiChoice_NumberShortcut(t *testing.T) {
	mc := NewMultiChoice("Need or want?", []string{"Need", "Want"}, 0)

	mc, _ = mc.Update(tea.KeyPressMsg{Code: '3', Text: "3"})
	assert.False(t, mc.Submitted, "out of range shortcut is ignored")

	mc, _ = mc.Update(tea.KeyPressMsg{Code: '2', Text: "2"})
	require.True(t, mc.Submitted)
	got, ok := mc.Chosen()
	assert.True(t, ok)
	assert.Equal(t, "Want", got)
	assert.False(t, mc.IsCorrect())

	mc, _ = mc.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 1, mc.ChosenIndex, "submitted choice is frozen")
}

func TestMultiChoice_NoCorrectIndex(t *testing.T) {
	mc := NewMultiChoice("Mindset", []string{"Agree", "Disagree"}, -1)
	mc, _ = mc.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.False(t, mc.IsCorrect())
	assert.Contains(t, mc.View(), "A)  Agree")
}

func TestStepProgress(t *testing.T) {
	p := StepProgress(2, 5, 40)
	assert.Equal(t, "Question 3 of 5", p.Label)
	assert.InDelta(t, 0.4, p.Percent, 1e-9)

	done := StepProgress(5, 5, 40)
	assert.Equal(t, "Question 5 of 5", done.Label)
}

func TestOptionLabel(t *testing.T) {
	assert.Equal(t, "A", optionLabel(0))
	assert.Equal(t, "Z", optionLabel(25))
	assert.Equal(t, "27", optionLabel(26))
}

func TestTextInput_NumericFiltersKeys(t *testing.T) {
	ti := NewTextInput("amount", true, 12)
	for _, r := range "1a2.5.0" {
		ti, _ = ti.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	assert.Equal(t, "12.50", ti.Value())

	v, err := ti.FloatValue()
	require.NoError(t, err)
	assert.InDelta(t, 12.5, v, 1e-9)
}

func TestTextInput_EmptyIsZero(t *testing.T) {
	ti := NewTextInput("amount", true, 12)
	v, err := ti.FloatValue()
	require.NoError(t, err)
	assert.Zero(t, v)

	ti.SetValue("monthly")
	_, err = ti.FloatValue()
	assert.Error(t, err)
}

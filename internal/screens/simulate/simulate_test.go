package simulate

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/todoscontam/finlab/internal/growth"
	"github.com/todoscontam/finlab/internal/router"
)

func enter(s *SimulateScreen) {
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
}

func TestSimulate_Defaults(t *testing.T) {
	s := New("EUR")
	enter(s)

	require.Empty(t, s.errMsg)
	require.NotNil(t, s.result)
	assert.Equal(t, growth.Monthly, s.result.Params.PeriodsPerYear)
	assert.InDelta(t, 1000+100*120, s.result.Paid, 1e-9)
	assert.Greater(t, s.result.Final.Nominal, s.result.Paid)
	assert.Less(t, s.result.Final.Real, s.result.Final.Nominal)
	assert.Len(t, s.result.Years, 10)

	view := s.View(100, 50)
	assert.Contains(t, view, "Final balance")
	assert.Contains(t, view, "In today's money")
}

func TestSimulate_InvalidYearsMarksField(t *testing.T) {
	s := New("EUR")
	s.inputs[fieldYears].SetValue("0")
	enter(s)

	assert.Nil(t, s.result)
	assert.Contains(t, s.errMsg, "horizonYears")
	assert.Equal(t, fieldYears, s.errFrom)
}

func TestSimulate_UnknownFrequency(t *testing.T) {
	s := New("USD")
	s.inputs[fieldFrequency].SetValue("fortnightly")
	enter(s)

	assert.Nil(t, s.result)
	assert.Equal(t, fieldFrequency, s.errFrom)
}

func TestSimulate_FocusCycles(t *testing.T) {
	s := New("EUR")
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	assert.Equal(t, fieldContribution, s.focus)
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, fieldFrequency, s.focus)
}

func TestSimulate_TypingGoesToFocusedField(t *testing.T) {
	s := New("EUR")
	s.inputs[fieldInitial].SetValue("")
	for _, r := range "250" {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	assert.Equal(t, "250", s.inputs[fieldInitial].Value())
}

func TestSimulate_EscPops(t *testing.T) {
	s := New("EUR")
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}

// Package simulate is the interactive growth simulator screen.
package simulate

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/todoscontam/finlab/internal/currency"
	"github.com/todoscontam/finlab/internal/growth"
	"github.com/todoscontam/finlab/internal/router"
	"github.com/todoscontam/finlab/internal/screen"
	"github.com/todoscontam/finlab/internal/ui/components"
	"github.com/todoscontam/finlab/internal/ui/layout"
	"github.com/todoscontam/finlab/internal/ui/theme"
)

const (
	fieldInitial = iota
	fieldContribution
	fieldRate
	fieldYears
	fieldInflation
	fieldFrequency
	fieldCount
)

var labels = [fieldCount]string{
	"Initial capital",
	"Contribution per period",
	"Annual return %",
	"Years",
	"Annual inflation %",
	"Frequency",
}

// outcome is a completed projection.
type outcome struct {
	Params growth.Params
	Final  growth.Point
	Paid   float64
	Years  []growth.YearInterest
}

// SimulateScreen collects growth parameters and shows the projection.
type SimulateScreen struct {
	code    string
	inputs  [fieldCount]components.TextInput
	focus   int
	result  *outcome
	errMsg  string
	errFrom int
}

var _ screen.Screen = (*SimulateScreen)(nil)
var _ screen.KeyHintProvider = (*SimulateScreen)(nil)

// New creates the simulator with sensible defaults, amounts shown in code.
func New(code string) *SimulateScreen {
	s := &SimulateScreen{code: code, errFrom: -1}
	defaults := [fieldCount]string{"1000", "100", "5", "10", "2", "monthly"}
	for i := range s.inputs {
		s.inputs[i] = components.NewTextInput(labels[i], i != fieldFrequency, 12)
		s.inputs[i].SetValue(defaults[i])
		if i != 0 {
			s.inputs[i].Blur()
		}
	}
	return s
}

func (s *SimulateScreen) Init() tea.Cmd {
	return s.inputs[s.focus].Init()
}

func (s *SimulateScreen) Title() string {
	return "Growth simulator"
}

func (s *SimulateScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab/↑↓", Description: "Field"},
		{Key: "Enter", Description: "Simulate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SimulateScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return s, router.Pop
		case "tab", "down":
			return s, s.move(1)
		case "shift+tab", "up":
			return s, s.move(-1)
		case "enter":
			s.run()
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return s, cmd
}

func (s *SimulateScreen) move(delta int) tea.Cmd {
	s.inputs[s.focus].Blur()
	s.focus = (s.focus + delta + fieldCount) % fieldCount
	return s.inputs[s.focus].Focus()
}

// Params parses the form into growth parameters.
func (s *SimulateScreen) Params() (growth.Params, error) {
	var nums [fieldFrequency]float64
	for i := range nums {
		v, err := s.inputs[i].FloatValue()
		if err != nil {
			s.errFrom = i
			return growth.Params{}, fmt.Errorf("%s: %q is not a number", labels[i], s.inputs[i].Value())
		}
		nums[i] = v
	}
	ppy, err := growth.ParseFrequency(s.inputs[fieldFrequency].Value())
	if err != nil {
		s.errFrom = fieldFrequency
		return growth.Params{}, err
	}
	p := growth.Params{
		InitialCapital:       nums[fieldInitial],
		PeriodicContribution: nums[fieldContribution],
		AnnualRate:           nums[fieldRate] / 100,
		HorizonYears:         nums[fieldYears],
		AnnualInflation:      nums[fieldInflation] / 100,
		PeriodsPerYear:       ppy,
	}
	if err := p.Validate(); err != nil {
		var pe *growth.ParamError
		if errors.As(err, &pe) {
			s.errFrom = fieldFor(pe.Field)
		}
		return growth.Params{}, err
	}
	return p, nil
}

func (s *SimulateScreen) run() {
	s.errMsg, s.errFrom, s.result = "", -1, nil
	for i := range s.inputs {
		s.inputs[i].Submit(true)
	}

	p, err := s.Params()
	if err == nil {
		var series growth.Series
		series, err = growth.Simulate(p)
		if err == nil {
			s.result = &outcome{
				Params: p,
				Final:  series.Last(),
				Paid:   p.InitialCapital + p.PeriodicContribution*float64(series.Len()),
				Years:  growth.InterestByYear(p, series),
			}
		}
	}
	if err != nil {
		s.errMsg = err.Error()
		if s.errFrom >= 0 {
			s.inputs[s.errFrom].Submit(false)
		}
	}
}

func fieldFor(name string) int {
	switch name {
	case "initialCapital":
		return fieldInitial
	case "periodicContribution":
		return fieldContribution
	case "annualRate":
		return fieldRate
	case "horizonYears":
		return fieldYears
	case "annualInflation":
		return fieldInflation
	case "periodsPerYear":
		return fieldFrequency
	}
	return -1
}

func (s *SimulateScreen) View(width, height int) string {
	var form strings.Builder
	for i, in := range s.inputs {
		label := fmt.Sprintf("%-24s", labels[i])
		if i == s.focus {
			label = theme.Selected.Render(label)
		} else {
			label = theme.Body.Render(label)
		}
		form.WriteString(label + " " + in.View() + "\n")
	}
	if s.errMsg != "" {
		form.WriteString("\n" + theme.Incorrect.Render(s.errMsg))
	}

	sections := []string{"", layout.Center(theme.Card.Render(strings.TrimSuffix(form.String(), "\n")), width)}
	if s.result != nil {
		used := lipgloss.Height(sections[1]) + 8
		sections = append(sections, layout.Center(s.renderResult(max(height-used, 3)), width))
	}
	return strings.Join(sections, "\n")
}

func (s *SimulateScreen) renderResult(rows int) string {
	r := s.result
	money := func(v float64) string { return currency.Format(v, s.code) }

	var b strings.Builder
	fmt.Fprintf(&b, "Final balance      %s\n", theme.Gain.Render(money(r.Final.Nominal)))
	if r.Params.AnnualInflation > 0 {
		fmt.Fprintf(&b, "In today's money   %s\n", money(r.Final.Real))
	}
	fmt.Fprintf(&b, "You paid in        %s\n", money(r.Paid))
	interest := r.Final.Nominal - r.Paid
	fmt.Fprintf(&b, "Interest earned    %s\n", theme.Signed(interest).Render(money(interest)))

	b.WriteString("\n" + theme.Hint.Render("Year   Interest        Balance") + "\n")
	shown := r.Years
	if len(shown) > rows {
		shown = shown[len(shown)-rows:]
	}
	for _, y := range shown {
		fmt.Fprintf(&b, "%4d   %-14s  %s\n", y.Year, money(y.Interest), money(y.EndBalance))
	}
	return theme.Card.Render(strings.TrimSuffix(b.String(), "\n"))
}

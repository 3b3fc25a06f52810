package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/todoscontam/finlab/internal/currency"
	"github.com/todoscontam/finlab/internal/ui/theme"
)

// divider draws the horizontal line under a table header.
func divider(w io.Writer, width int) {
	fmt.Fprintln(w, strings.Repeat("─", width))
}

func heading(w io.Writer, title string) {
	fmt.Fprintln(w, theme.Title.Render(title))
}

// field prints an aligned "label: value" line.
func field(w io.Writer, label, value string) {
	fmt.Fprintf(w, "%-22s %s\n", label+":", value)
}

func money(v float64) string {
	return currency.Format(v, displayCurrency())
}

// signedMoney colours an amount by its sign.
func signedMoney(v float64) string {
	s := money(v)
	if v > 0 {
		s = "+" + s
	}
	return theme.Signed(v).Render(s)
}

func percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

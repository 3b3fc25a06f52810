package growth

import (
	"strconv"
	"strings"
)

var frequencies = map[string]int{
	"yearly":  Yearly,
	"annual":  Yearly,
	"monthly": Monthly,
	"weekly":  Weekly,
}

// ParseFrequency accepts a name (yearly, monthly, weekly) or a positive
// number of periods per year.
func ParseFrequency(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, ok := frequencies[s]; ok {
		return n, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, invalid("periodsPerYear", "unknown frequency %q", s)
	}
	return n, nil
}

// FrequencyName is the inverse of ParseFrequency for the named frequencies.
func FrequencyName(periodsPerYear int) string {
	switch periodsPerYear {
	case Yearly:
		return "yearly"
	case Monthly:
		return "monthly"
	case Weekly:
		return "weekly"
	}
	return strconv.Itoa(periodsPerYear) + "/yr"
}

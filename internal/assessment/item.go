package assessment

// Item is one question. Exactly one scoring mode applies: Answer names the
// correct option, or Weights maps every option to the points it earns.
type Item struct {
	ID          string
	Category    string
	Prompt      string
	Options     []string
	Answer      string
	Weights     map[string]int
	Explanation string
}

// Weighted reports whether the item is scored by option weights.
func (it Item) Weighted() bool {
	return len(it.Weights) > 0
}

// HasOption reports whether answer is one of the item's options.
func (it Item) HasOption(answer string) bool {
	for _, o := range it.Options {
		if o == answer {
			return true
		}
	}
	return false
}

// IsCorrect reports whether answer is the correct option. Weighted items have
// no single correct option; the highest-weighted one counts as correct.
func (it Item) IsCorrect(answer string) bool {
	if it.Weighted() {
		return it.HasOption(answer) && it.Weights[answer] == it.MaxWeight()
	}
	return answer == it.Answer
}

// Points returns the points earned by answer: its weight for weighted items,
// 1 or 0 otherwise.
func (it Item) Points(answer string) int {
	if it.Weighted() {
		return it.Weights[answer]
	}
	if it.IsCorrect(answer) {
		return 1
	}
	return 0
}

// MaxWeight returns the highest points any option earns.
func (it Item) MaxWeight() int {
	if !it.Weighted() {
		return 1
	}
	best := 0
	for _, o := range it.Options {
		if w := it.Weights[o]; w > best {
			best = w
		}
	}
	return best
}

// Validate checks the item's structural invariants.
func (it Item) Validate() error {
	if it.Prompt == "" {
		return invalid("item %q: empty prompt", it.ID)
	}
	if len(it.Options) < 2 {
		return invalid("item %q: needs at least 2 options, got %d", it.ID, len(it.Options))
	}

	seen := make(map[string]bool, len(it.Options))
	for _, o := range it.Options {
		if o == "" {
			return invalid("item %q: empty option", it.ID)
		}
		if seen[o] {
			return invalid("item %q: duplicate option %q", it.ID, o)
		}
		seen[o] = true
	}

	if it.Weighted() {
		if it.Answer != "" {
			return invalid("item %q: has both an answer and weights", it.ID)
		}
		for o, w := range it.Weights {
			if !seen[o] {
				return invalid("item %q: weight for unknown option %q", it.ID, o)
			}
			if w < 0 {
				return invalid("item %q: negative weight %d for %q", it.ID, w, o)
			}
		}
		if it.MaxWeight() == 0 {
			return invalid("item %q: all weights are zero", it.ID)
		}
		return nil
	}

	if !seen[it.Answer] {
		return invalid("item %q: answer %q is not an option", it.ID, it.Answer)
	}
	return nil
}

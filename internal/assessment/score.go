package assessment

import "sort"

// Answered pairs an item with the answer it received.
type Answered struct {
	Item    Item
	Answer  string
	Correct bool
	Points  int
}

// Result is the outcome of a completed session.
type Result struct {
	Weighted   bool
	Correct    int // answers matching the keyed (or highest-weighted) option
	Total      int
	Points     int // weighted sessions only
	MaxPoints  int // weighted sessions only
	Percentage float64
	Answers    []Answered
}

// Score computes the result of a completed session. For answer-keyed items
// the percentage is correct/total; for weighted items it is points earned
// over the maximum attainable points.
func Score(s Session) (Result, error) {
	if s.State() != Completed {
		return Result{}, ErrNotCompleted
	}

	r := Result{Weighted: s.pool.weighted, Total: len(s.selected)}
	for i, item := range s.selected {
		ans := s.answers[i]
		a := Answered{
			Item:    item,
			Answer:  ans,
			Correct: item.IsCorrect(ans),
			Points:  item.Points(ans),
		}
		if a.Correct {
			r.Correct++
		}
		r.Points += a.Points
		r.MaxPoints += item.MaxWeight()
		r.Answers = append(r.Answers, a)
	}

	if r.Weighted {
		r.Percentage = percent(r.Points, r.MaxPoints)
	} else {
		r.Percentage = percent(r.Correct, r.Total)
	}
	return r, nil
}

func percent(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

// Tier is a labelled feedback bracket covering percentages from Min up to the
// next tier's Min.
type Tier struct {
	Min     float64
	Label   string
	Message string
}

// Tiers is an ascending set of brackets starting at 0.
type Tiers []Tier

// NewTiers sorts and validates tiers. The lowest tier must start at 0,
// thresholds must lie within [0, 100] and be distinct.
func NewTiers(tiers ...Tier) (Tiers, error) {
	if len(tiers) == 0 {
		return nil, invalid("at least one tier is required")
	}
	out := append(Tiers(nil), tiers...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Min < out[j].Min })

	if out[0].Min != 0 {
		return nil, invalid("lowest tier must start at 0, got %v", out[0].Min)
	}
	for i, t := range out {
		if t.Min < 0 || t.Min > 100 {
			return nil, invalid("tier %q threshold %v outside [0, 100]", t.Label, t.Min)
		}
		if t.Label == "" {
			return nil, invalid("tier at %v has no label", t.Min)
		}
		if i > 0 && t.Min == out[i-1].Min {
			return nil, invalid("tiers %q and %q share threshold %v", out[i-1].Label, t.Label, t.Min)
		}
	}
	return out, nil
}

// Classify returns the highest tier whose Min does not exceed percentage.
func (t Tiers) Classify(percentage float64) Tier {
	var found Tier
	for _, tier := range t {
		if tier.Min <= percentage {
			found = tier
		}
	}
	return found
}

// CategoryScore totals the answers given within one category.
type CategoryScore struct {
	Category   string
	Correct    int
	Total      int
	Points     int
	MaxPoints  int
	Percentage float64
}

// ByCategory splits the result per category, in order of first appearance.
func (r Result) ByCategory() []CategoryScore {
	index := make(map[string]int)
	var out []CategoryScore
	for _, a := range r.Answers {
		i, ok := index[a.Item.Category]
		if !ok {
			i = len(out)
			index[a.Item.Category] = i
			out = append(out, CategoryScore{Category: a.Item.Category})
		}
		cs := &out[i]
		cs.Total++
		if a.Correct {
			cs.Correct++
		}
		cs.Points += a.Points
		cs.MaxPoints += a.Item.MaxWeight()
	}
	for i := range out {
		if r.Weighted {
			out[i].Percentage = percent(out[i].Points, out[i].MaxPoints)
		} else {
			out[i].Percentage = percent(out[i].Correct, out[i].Total)
		}
	}
	return out
}

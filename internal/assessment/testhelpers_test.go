package assessment

import "fmt"

// keyedPool builds categories×perCategory answer-keyed items whose correct
// option is always "right".
func keyedPool(categories, perCategory int) Pool {
	var items []Item
	for c := 0; c < categories; c++ {
		for i := 0; i < perCategory; i++ {
			items = append(items, Item{
				ID:       fmt.Sprintf("c%d-q%d", c, i),
				Category: fmt.Sprintf("theme-%d", c),
				Prompt:   fmt.Sprintf("question %d of theme %d", i, c),
				Options:  []string{"right", "wrong", "maybe"},
				Answer:   "right",
			})
		}
	}
	p, err := NewPool(items...)
	if err != nil {
		panic(err)
	}
	return p
}

func weightedPool() Pool {
	p, err := NewPool(
		Item{ID: "w1", Category: "habits", Prompt: "You have 100 extra at the end of the month.",
			Options: []string{"save", "spend", "ignore"}, Weights: map[string]int{"save": 2, "spend": 1, "ignore": 0}},
		Item{ID: "w2", Category: "beliefs", Prompt: "Money is...",
			Options: []string{"a tool", "dangerous", "evil"}, Weights: map[string]int{"a tool": 2, "dangerous": 1, "evil": 0}},
	)
	if err != nil {
		panic(err)
	}
	return p
}

// answerAll answers every remaining item with pick(item).
func answerAll(s Session, pick func(Item) string) Session {
	for {
		it, ok := s.Current()
		if !ok {
			return s
		}
		next, err := s.Submit(pick(it))
		if err != nil {
			panic(err)
		}
		s = next
	}
}

// Package assessment drives a strictly sequential quiz over a sampled,
// shuffled subset of a question pool and scores the result into tiers.
//
// A Session is a value. Submit and Reset return a new Session and leave the
// receiver untouched, so callers always hold the latest state explicitly.
package assessment

import (
	"math/rand/v2"
)

// State is the lifecycle position of a session.
type State int

const (
	NotStarted State = iota // drawn from an empty pool
	InProgress              // Index < Total
	Completed               // Index == Total
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case InProgress:
		return "in progress"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// Session is one run through a sampled set of items.
type Session struct {
	pool        Pool
	perCategory int // 0 draws every item
	seed        uint64
	seeded      bool

	selected []Item
	index    int
	answers  []string
}

// Seed is a convenience for passing a literal seed to Start.
func Seed(v uint64) *uint64 { return &v }

// Start draws perCategory items from every category without replacement,
// concatenates them in category order and shuffles the result. A nil seed
// uses process entropy; the same seed always yields the same selection and
// order.
func Start(pool Pool, perCategory int, seed *uint64) (Session, error) {
	if perCategory <= 0 {
		return Session{}, invalid("sample size per category must be positive, got %d", perCategory)
	}
	return start(pool, perCategory, seed)
}

// StartAll is Start drawing every item of the pool, shuffled.
func StartAll(pool Pool, seed *uint64) (Session, error) {
	return start(pool, 0, seed)
}

func start(pool Pool, perCategory int, seed *uint64) (Session, error) {
	s := Session{pool: pool, perCategory: perCategory}
	if seed != nil {
		s.seed, s.seeded = *seed, true
	} else {
		s.seed = rand.Uint64()
	}

	selected, err := draw(pool, perCategory, s.seed)
	if err != nil {
		return Session{}, err
	}
	s.selected = selected
	return s, nil
}

func draw(pool Pool, perCategory int, seed uint64) ([]Item, error) {
	rng := newRand(seed)

	var selected []Item
	for _, c := range pool.categories {
		items := pool.Items(c)
		want := perCategory
		if want == 0 {
			want = len(items)
		}
		if len(items) < want {
			return nil, &PoolError{Category: c, Have: len(items), Want: want}
		}
		rng.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
		selected = append(selected, items[:want]...)
	}
	rng.Shuffle(len(selected), func(i, j int) { selected[i], selected[j] = selected[j], selected[i] })
	return selected, nil
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// State returns the lifecycle state.
func (s Session) State() State {
	switch {
	case len(s.selected) == 0:
		return NotStarted
	case s.index < len(s.selected):
		return InProgress
	default:
		return Completed
	}
}

// Current returns the item awaiting an answer.
func (s Session) Current() (Item, bool) {
	if s.State() != InProgress {
		return Item{}, false
	}
	return s.selected[s.index], true
}

// Index is the number of answered items.
func (s Session) Index() int { return s.index }

// Total is the number of selected items.
func (s Session) Total() int { return len(s.selected) }

// Seed returns the seed the selection was drawn with.
func (s Session) Seed() uint64 { return s.seed }

// Selected returns a copy of the drawn items in presentation order.
func (s Session) Selected() []Item {
	return append([]Item(nil), s.selected...)
}

// Answers returns a copy of the answers given so far.
func (s Session) Answers() []string {
	return append([]string(nil), s.answers...)
}

// Progress returns the fraction of items answered, in [0, 1].
func (s Session) Progress() float64 {
	if len(s.selected) == 0 {
		return 0
	}
	return float64(s.index) / float64(len(s.selected))
}

// Submit records answer for the current item and advances to the next one.
// The receiver is not modified.
func (s Session) Submit(answer string) (Session, error) {
	switch s.State() {
	case NotStarted:
		return s, ErrNotStarted
	case Completed:
		return s, ErrSessionCompleted
	}

	item := s.selected[s.index]
	if !item.HasOption(answer) {
		return s, &OptionError{ItemID: item.ID, Answer: answer}
	}

	next := s
	next.answers = make([]string, len(s.answers), len(s.answers)+1)
	copy(next.answers, s.answers)
	next.answers = append(next.answers, answer)
	next.index++
	return next, nil
}

// Reset discards all answers and draws a fresh selection from the same pool.
// Sessions started with an explicit seed reset deterministically.
func (s Session) Reset() (Session, error) {
	if !s.seeded {
		return start(s.pool, s.perCategory, nil)
	}
	next := nextSeed(s.seed)
	return start(s.pool, s.perCategory, &next)
}

// nextSeed is one splitmix64 step.
func nextSeed(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

package assessment

// Pool groups items by category. Categories keep the order in which they
// first appear.
type Pool struct {
	categories []string
	items      map[string][]Item
	weighted   bool
}

// NewPool validates items and groups them by category. All items in a pool
// share one scoring mode.
func NewPool(items ...Item) (Pool, error) {
	p := Pool{items: make(map[string][]Item)}
	for i, it := range items {
		if err := it.Validate(); err != nil {
			return Pool{}, err
		}
		if i == 0 {
			p.weighted = it.Weighted()
		} else if it.Weighted() != p.weighted {
			return Pool{}, invalid("item %q: pool mixes weighted and answer-keyed items", it.ID)
		}
		if _, ok := p.items[it.Category]; !ok {
			p.categories = append(p.categories, it.Category)
		}
		p.items[it.Category] = append(p.items[it.Category], it)
	}
	return p, nil
}

// Categories returns the category names in order.
func (p Pool) Categories() []string {
	return append([]string(nil), p.categories...)
}

// Items returns a copy of the items in category.
func (p Pool) Items(category string) []Item {
	return append([]Item(nil), p.items[category]...)
}

// Len returns the total number of items.
func (p Pool) Len() int {
	n := 0
	for _, items := range p.items {
		n += len(items)
	}
	return n
}

// Empty reports whether the pool has no items.
func (p Pool) Empty() bool { return p.Len() == 0 }

// Weighted reports whether the pool's items are scored by weights.
func (p Pool) Weighted() bool { return p.weighted }

// MinCategorySize returns the size of the smallest category, 0 for an empty pool.
func (p Pool) MinCategorySize() int {
	smallest := 0
	for i, c := range p.categories {
		if n := len(p.items[c]); i == 0 || n < smallest {
			smallest = n
		}
	}
	return smallest
}

// Package registry lists the course chapters and the modules in each.
package registry

// Kind tells how a module is run.
type Kind string

const (
	Simulator Kind = "simulator"
	Quiz      Kind = "quiz"
	Planner   Kind = "planner"
)

// Module is one runnable activity.
type Module struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Kind    Kind   `json:"kind"`
	Command string `json:"command"`
	QuizID  string `json:"quiz_id,omitempty"`
}

// Chapter groups modules under a theme.
type Chapter struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Modules []Module `json:"modules"`
}

func quiz(id, title string) Module {
	return Module{ID: id, Title: title, Kind: Quiz, Command: "finlab quiz " + id, QuizID: id}
}

var chapters = []Chapter{
	{
		ID:    "money",
		Title: "What money is for",
		Modules: []Module{
			{ID: "money-functions", Title: "What is money for?", Kind: Planner, Command: "finlab money"},
			{ID: "currencies", Title: "Many currencies", Kind: Planner, Command: "finlab convert"},
			{ID: "price-value", Title: "Price vs value", Kind: Planner, Command: "finlab value"},
		},
	},
	{
		ID:    "mindset",
		Title: "Consumption and mindset",
		Modules: []Module{
			quiz("influence", "Are you influenced?"),
			quiz("needs-wants", "Need or want?"),
			quiz("mindset", "Money mindset"),
		},
	},
	{
		ID:    "saving",
		Title: "Saving",
		Modules: []Module{
			{ID: "savings-goal", Title: "Savings challenge", Kind: Simulator, Command: "finlab target"},
			{ID: "required-saving", Title: "How much do I need to save?", Kind: Simulator, Command: "finlab contribution"},
			{ID: "inflation", Title: "Is inflation eating your savings?", Kind: Simulator, Command: "finlab inflation"},
		},
	},
	{
		ID:    "investing",
		Title: "Investing",
		Modules: []Module{
			{ID: "keep-or-invest", Title: "Investing against inflation", Kind: Simulator, Command: "finlab compare invest"},
			{ID: "diversify", Title: "Diversification", Kind: Simulator, Command: "finlab diversify"},
			{ID: "invest-future", Title: "Invest today, harvest tomorrow", Kind: Simulator, Command: "finlab simulate --asset shares"},
			{ID: "start-earlier", Title: "Time is money", Kind: Simulator, Command: "finlab compare earlier"},
			{ID: "compound", Title: "Compound interest", Kind: Simulator, Command: "finlab simulate"},
		},
	},
	{
		ID:    "budgeting",
		Title: "Budgeting",
		Modules: []Module{
			quiz("budget-basics", "What is a budget?"),
			quiz("budget-need", "Do I need a budget?"),
			{ID: "rule-50-30-20", Title: "The 50/30/20 rule", Kind: Planner, Command: "finlab budget split"},
			{ID: "budget-challenge", Title: "Managing a real budget", Kind: Planner, Command: "finlab budget breakdown"},
		},
	},
	{
		ID:    "review",
		Title: "Course review",
		Modules: []Module{
			quiz("final", "Final quiz"),
		},
	},
	{
		ID:    "extras",
		Title: "Extra lessons",
		Modules: []Module{
			{ID: "being-rich", Title: "What does it mean to be rich?", Kind: Planner, Command: "finlab budget rate"},
			{ID: "spending-review", Title: "Is it worth it?", Kind: Planner, Command: "finlab budget review"},
			quiz("spending-priorities", "Essential or extra?"),
		},
	},
}

// Chapters returns every chapter in course order.
func Chapters() []Chapter {
	out := make([]Chapter, len(chapters))
	for i, c := range chapters {
		c.Modules = append([]Module(nil), c.Modules...)
		out[i] = c
	}
	return out
}

// Modules returns every module in course order.
func Modules() []Module {
	var out []Module
	for _, c := range chapters {
		out = append(out, c.Modules...)
	}
	return out
}

// Lookup finds a module by ID along with its chapter.
func Lookup(id string) (Chapter, Module, bool) {
	for _, c := range Chapters() {
		for _, m := range c.Modules {
			if m.ID == id {
				return c, m, true
			}
		}
	}
	return Chapter{}, Module{}, false
}

// QuizIDs returns the quiz IDs referenced by quiz modules.
func QuizIDs() []string {
	var ids []string
	for _, m := range Modules() {
		if m.Kind == Quiz {
			ids = append(ids, m.QuizID)
		}
	}
	return ids
}

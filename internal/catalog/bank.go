package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/todoscontam/finlab/internal/assessment"
)

// bankFile mirrors the YAML layout of a quiz bank.
type bankFile struct {
	ID          string         `yaml:"id"`
	Title       string         `yaml:"title"`
	Description string         `yaml:"description"`
	Chapter     string         `yaml:"chapter"`
	PerCategory int            `yaml:"per_category"`
	DrawAll     bool           `yaml:"draw_all"`
	Options     []optionSpec   `yaml:"options"`
	Tiers       []tierSpec     `yaml:"tiers"`
	Categories  []categorySpec `yaml:"categories"`
}

type tierSpec struct {
	Min     float64 `yaml:"min"`
	Label   string  `yaml:"label"`
	Message string  `yaml:"message"`
}

type categorySpec struct {
	Name  string     `yaml:"name"`
	Items []itemSpec `yaml:"items"`
}

type itemSpec struct {
	Prompt      string       `yaml:"prompt"`
	Options     []optionSpec `yaml:"options"`
	Answer      string       `yaml:"answer"`
	Explanation string       `yaml:"explanation"`
}

// optionSpec is either a bare string or a {text, weight} mapping.
type optionSpec struct {
	Text   string `yaml:"text"`
	Weight *int   `yaml:"weight"`
}

func (o *optionSpec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		return value.Decode(&o.Text)
	}
	type plain optionSpec
	return value.Decode((*plain)(o))
}

// parseBank validates raw against the bank schema and converts it to a Quiz.
func parseBank(raw []byte) (Quiz, error) {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Quiz{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := validateBank(doc); err != nil {
		return Quiz{}, err
	}

	var b bankFile
	if err := yaml.Unmarshal(raw, &b); err != nil {
		return Quiz{}, fmt.Errorf("decode bank: %w", err)
	}
	return b.quiz()
}

func (b bankFile) quiz() (Quiz, error) {
	var items []assessment.Item
	n := 0
	for _, c := range b.Categories {
		for _, spec := range c.Items {
			n++
			opts := spec.Options
			if len(opts) == 0 {
				opts = b.Options
			}
			it, err := buildItem(fmt.Sprintf("%s-%d", b.ID, n), c.Name, spec, opts)
			if err != nil {
				return Quiz{}, err
			}
			items = append(items, it)
		}
	}

	pool, err := assessment.NewPool(items...)
	if err != nil {
		return Quiz{}, err
	}
	if !b.DrawAll && pool.MinCategorySize() < b.PerCategory {
		return Quiz{}, fmt.Errorf("per_category %d exceeds the smallest category (%d items)",
			b.PerCategory, pool.MinCategorySize())
	}

	tiers := make([]assessment.Tier, 0, len(b.Tiers))
	for _, t := range b.Tiers {
		tiers = append(tiers, assessment.Tier{Min: t.Min, Label: t.Label, Message: t.Message})
	}
	graded, err := assessment.NewTiers(tiers...)
	if err != nil {
		return Quiz{}, err
	}

	return Quiz{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		Chapter:     b.Chapter,
		PerCategory: b.PerCategory,
		DrawAll:     b.DrawAll,
		Tiers:       graded,
		Pool:        pool,
	}, nil
}

func buildItem(id, category string, spec itemSpec, opts []optionSpec) (assessment.Item, error) {
	it := assessment.Item{
		ID:          id,
		Category:    category,
		Prompt:      spec.Prompt,
		Answer:      spec.Answer,
		Explanation: spec.Explanation,
	}

	weighted := 0
	for _, o := range opts {
		it.Options = append(it.Options, o.Text)
		if o.Weight != nil {
			weighted++
		}
	}
	switch {
	case weighted == 0 && spec.Answer == "":
		return assessment.Item{}, fmt.Errorf("item %q: needs an answer or weighted options", id)
	case weighted > 0 && weighted < len(opts):
		return assessment.Item{}, fmt.Errorf("item %q: either every option has a weight or none does", id)
	case weighted > 0:
		it.Weights = make(map[string]int, len(opts))
		for _, o := range opts {
			it.Weights[o.Text] = *o.Weight
		}
	}
	return it, it.Validate()
}

// Package catalog holds the built-in quiz banks and the generated final quiz.
//
// Banks are YAML documents embedded in the binary. Each one is checked
// against schema.json before it is turned into an assessment pool, so a
// malformed bank fails at load time rather than mid-session.
package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/todoscontam/finlab/internal/assessment"
)

//go:embed quizzes/*.yaml
var banks embed.FS

// ErrUnknownQuiz is returned by Get for an ID the catalog does not know.
var ErrUnknownQuiz = errors.New("unknown quiz")

// Quiz is a ready-to-run quiz: its pool, how to sample it and how to grade it.
type Quiz struct {
	ID          string
	Title       string
	Description string
	Chapter     string
	PerCategory int
	DrawAll     bool
	Generated   bool
	Tiers       assessment.Tiers
	Pool        assessment.Pool
}

// Start opens a new session over the quiz. A nil seed uses process entropy.
func (q Quiz) Start(seed *uint64) (assessment.Session, error) {
	if q.DrawAll {
		return assessment.StartAll(q.Pool, seed)
	}
	return assessment.Start(q.Pool, q.PerCategory, seed)
}

// Size returns the number of questions in one session.
func (q Quiz) Size() int {
	if q.DrawAll {
		return q.Pool.Len()
	}
	return q.PerCategory * len(q.Pool.Categories())
}

// Summary describes a quiz for listings.
type Summary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Chapter     string `json:"chapter"`
	Questions   int    `json:"questions"`
	Weighted    bool   `json:"weighted"`
	Generated   bool   `json:"generated"`
}

func (q Quiz) summary() Summary {
	return Summary{
		ID:          q.ID,
		Title:       q.Title,
		Description: q.Description,
		Chapter:     q.Chapter,
		Questions:   q.Size(),
		Weighted:    q.Pool.Weighted(),
		Generated:   q.Generated,
	}
}

// Generator builds a quiz whose content depends on a seed.
type Generator func(seed uint64) (Quiz, error)

// Catalog is the set of available quizzes.
type Catalog struct {
	quizzes    map[string]Quiz
	generators map[string]Generator
}

// Load reads the embedded banks and registers the generated final quiz.
func Load() (*Catalog, error) {
	sub, err := fs.Sub(banks, "quizzes")
	if err != nil {
		return nil, err
	}
	c, err := LoadFS(sub)
	if err != nil {
		return nil, err
	}
	if err := c.Register(FinalQuizID, FinalQuiz); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFS reads every *.yaml bank at the root of fsys. A bank's ID must match
// its file name.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	names, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, err
	}

	c := &Catalog{
		quizzes:    make(map[string]Quiz, len(names)),
		generators: make(map[string]Generator),
	}
	for _, name := range names {
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, &BankError{File: name, Err: err}
		}
		q, err := parseBank(raw)
		if err != nil {
			return nil, &BankError{File: name, Err: err}
		}
		if want := strings.TrimSuffix(path.Base(name), ".yaml"); q.ID != want {
			return nil, &BankError{File: name, Err: fmt.Errorf("id %q does not match file name", q.ID)}
		}
		if _, dup := c.quizzes[q.ID]; dup {
			return nil, &BankError{File: name, Err: fmt.Errorf("duplicate quiz id %q", q.ID)}
		}
		c.quizzes[q.ID] = q
	}
	return c, nil
}

// Register adds a generated quiz under id.
func (c *Catalog) Register(id string, gen Generator) error {
	if _, ok := c.quizzes[id]; ok {
		return fmt.Errorf("quiz %q already defined", id)
	}
	if _, ok := c.generators[id]; ok {
		return fmt.Errorf("quiz %q already defined", id)
	}
	if _, err := gen(0); err != nil {
		return fmt.Errorf("generator %q: %w", id, err)
	}
	c.generators[id] = gen
	return nil
}

// Get returns the quiz with the given ID. The seed is only used by generated
// quizzes.
func (c *Catalog) Get(id string, seed uint64) (Quiz, error) {
	if q, ok := c.quizzes[id]; ok {
		return q, nil
	}
	if gen, ok := c.generators[id]; ok {
		return gen(seed)
	}
	return Quiz{}, fmt.Errorf("%w: %q", ErrUnknownQuiz, id)
}

// List returns a summary of every quiz, sorted by ID.
func (c *Catalog) List() []Summary {
	out := make([]Summary, 0, len(c.quizzes)+len(c.generators))
	for _, q := range c.quizzes {
		out = append(out, q.summary())
	}
	for id, gen := range c.generators {
		q, err := gen(0)
		if err != nil {
			// Register already ran the generator once.
			continue
		}
		s := q.summary()
		s.ID = id
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// IDs returns every quiz ID, sorted.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.quizzes)+len(c.generators))
	for id := range c.quizzes {
		ids = append(ids, id)
	}
	for id := range c.generators {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

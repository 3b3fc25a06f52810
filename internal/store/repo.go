package store

import (
	"context"
	"errors"
	"time"

	"github.com/todoscontam/finlab/internal/assessment"
)

// ErrNotFound is returned when a result ID does not exist.
var ErrNotFound = errors.New("result not found")

// Result is a completed quiz attempt.
type Result struct {
	ID         string    `json:"id"`
	QuizID     string    `json:"quiz_id"`
	Seed       uint64    `json:"seed,string"`
	Weighted   bool      `json:"weighted"`
	Correct    int       `json:"correct"`
	Total      int       `json:"total"`
	Points     int       `json:"points"`
	MaxPoints  int       `json:"max_points"`
	Percentage float64   `json:"percentage"`
	Tier       string    `json:"tier"`
	CreatedAt  time.Time `json:"created_at"`
	Answers    []Answer  `json:"answers,omitempty"`
}

// Answer is one graded response within a Result.
type Answer struct {
	Position int    `json:"position"`
	ItemID   string `json:"item_id"`
	Category string `json:"category"`
	Prompt   string `json:"prompt"`
	Answer   string `json:"answer"`
	Correct  bool   `json:"correct"`
	Points   int    `json:"points"`
}

// NewResult converts a scored session into a storable Result.
func NewResult(quizID string, seed uint64, tier string, r assessment.Result) *Result {
	out := &Result{
		QuizID:     quizID,
		Seed:       seed,
		Weighted:   r.Weighted,
		Correct:    r.Correct,
		Total:      r.Total,
		Points:     r.Points,
		MaxPoints:  r.MaxPoints,
		Percentage: r.Percentage,
		Tier:       tier,
	}
	for i, a := range r.Answers {
		out.Answers = append(out.Answers, Answer{
			Position: i + 1,
			ItemID:   a.Item.ID,
			Category: a.Item.Category,
			Prompt:   a.Item.Prompt,
			Answer:   a.Answer,
			Correct:  a.Correct,
			Points:   a.Points,
		})
	}
	return out
}

// ResultFilter narrows List. Zero values mean no constraint.
type ResultFilter struct {
	QuizID string
	Since  time.Time
	Limit  int // default 20
	Offset int
}

// QuizStats aggregates the attempts at one quiz.
type QuizStats struct {
	QuizID   string    `json:"quiz_id"`
	Attempts int       `json:"attempts"`
	Best     float64   `json:"best"`
	Average  float64   `json:"average"`
	Last     time.Time `json:"last"`
}

// ResultRepo stores and queries quiz results.
type ResultRepo interface {
	// Save stores r and its answers, assigning an ID and timestamp when unset.
	Save(ctx context.Context, r *Result) error

	// Get returns the result with its answers, or ErrNotFound.
	Get(ctx context.Context, id string) (*Result, error)

	// List returns results newest first, without answers.
	List(ctx context.Context, filter ResultFilter) ([]Result, error)

	// Stats aggregates results per quiz, ordered by quiz ID.
	Stats(ctx context.Context) ([]QuizStats, error)

	// Reset deletes the results of quizID, or every result when quizID is
	// empty, and returns how many were removed.
	Reset(ctx context.Context, quizID string) (int64, error)
}

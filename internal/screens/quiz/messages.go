package quiz

import (
	"github.com/todoscontam/finlab/internal/assessment"
	"github.com/todoscontam/finlab/internal/store"
)

// quizDoneMsg is sent once the completed session has been scored and,
// when a repository is configured, persisted.
type quizDoneMsg struct {
	Result assessment.Result
	Tier   assessment.Tier
	Saved  *store.Result
	Err    error
}

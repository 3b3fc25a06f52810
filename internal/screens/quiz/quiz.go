// Package quiz is the screen that runs one quiz session.
package quiz

import (
	"context"
	"fmt"
	"slices"

	tea "charm.land/bubbletea/v2"

	"github.com/todoscontam/finlab/internal/assessment"
	"github.com/todoscontam/finlab/internal/catalog"
	"github.com/todoscontam/finlab/internal/logger"
	"github.com/todoscontam/finlab/internal/router"
	"github.com/todoscontam/finlab/internal/screen"
	"github.com/todoscontam/finlab/internal/screens/summary"
	"github.com/todoscontam/finlab/internal/store"
	"github.com/todoscontam/finlab/internal/ui/components"
	"github.com/todoscontam/finlab/internal/ui/layout"
)

// feedback describes the answer just given.
type feedback struct {
	Item    assessment.Item
	Answer  string
	Correct bool
	Points  int
}

// QuizScreen implements screen.Screen for an active quiz.
type QuizScreen struct {
	quiz    catalog.Quiz
	results store.ResultRepo
	session assessment.Session
	choice  components.MultiChoice

	last        *feedback
	quitConfirm bool
	finishing   bool
	errMsg      string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New starts a session over q. results may be nil, in which case the
// outcome is shown but not stored.
func New(q catalog.Quiz, seed *uint64, results store.ResultRepo) *QuizScreen {
	s := &QuizScreen{quiz: q, results: results}
	session, err := q.Start(seed)
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	if session.State() == assessment.NotStarted {
		s.errMsg = "quiz has no questions"
		return s
	}
	return resume(q, session, results)
}

// resume runs an already drawn session, as produced by Session.Reset.
func resume(q catalog.Quiz, session assessment.Session, results store.ResultRepo) *QuizScreen {
	s := &QuizScreen{quiz: q, results: results, session: session}
	s.nextChoice()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return s.quiz.Title
}

func (s *QuizScreen) Status() string {
	if s.errMsg != "" {
		return ""
	}
	return fmt.Sprintf("%d/%d", min(s.session.Index()+1, s.session.Total()), s.session.Total())
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.errMsg != "":
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	case s.quitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave quiz"},
			{Key: "N", Description: "Keep going"},
		}
	case s.last != nil:
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
		{Key: "1-9", Description: "Quick answer"},
		{Key: "Esc", Description: "Quit"},
	}
}

// Session exposes the underlying session state.
func (s *QuizScreen) Session() assessment.Session {
	return s.session
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizDoneMsg:
		q, results := s.quiz, s.results
		done := summary.New(q, msg.Result, msg.Tier, msg.Saved, msg.Err).
			WithRetry(s.session, func(next assessment.Session) screen.Screen {
				return resume(q, next, results)
			})
		return s, router.Replace(done)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, router.Pop
	}
	if s.finishing {
		return s, nil
	}

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			return s, router.Pop
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	if s.last != nil {
		s.last = nil
		if s.session.State() == assessment.Completed {
			s.finishing = true
			return s, s.finish()
		}
		s.nextChoice()
		return s, nil
	}

	if key == "esc" {
		s.quitConfirm = true
		return s, nil
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	if answer, ok := s.choice.Chosen(); ok {
		return s, s.submit(answer)
	}
	return s, cmd
}

func (s *QuizScreen) submit(answer string) tea.Cmd {
	item, ok := s.session.Current()
	if !ok {
		return nil
	}
	next, err := s.session.Submit(answer)
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.session = next
	s.last = &feedback{
		Item:    item,
		Answer:  answer,
		Correct: item.IsCorrect(answer),
		Points:  item.Points(answer),
	}
	return nil
}

func (s *QuizScreen) nextChoice() {
	item, ok := s.session.Current()
	if !ok {
		return
	}
	correct := -1
	if !item.Weighted() {
		correct = slices.Index(item.Options, item.Answer)
	}
	s.choice = components.NewMultiChoice(item.Prompt, item.Options, correct)
}

// finish scores the session and stores it.
func (s *QuizScreen) finish() tea.Cmd {
	session := s.session
	q := s.quiz
	repo := s.results
	return func() tea.Msg {
		result, err := assessment.Score(session)
		if err != nil {
			return quizDoneMsg{Err: err}
		}
		tier := q.Tiers.Classify(result.Percentage)

		if repo == nil {
			return quizDoneMsg{Result: result, Tier: tier}
		}

		ctx := context.Background()
		rec := store.NewResult(q.ID, session.Seed(), tier.Label, result)
		if err := repo.Save(ctx, rec); err != nil {
			logger.FromContext(ctx).WithPrefix("quiz").Error("failed to save result: %v", err)
			return quizDoneMsg{Result: result, Tier: tier, Err: err}
		}
		return quizDoneMsg{Result: result, Tier: tier, Saved: rec}
	}
}

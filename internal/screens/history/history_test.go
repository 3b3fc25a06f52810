package history

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/todoscontam/finlab/internal/router"
	"github.com/todoscontam/finlab/internal/store"
)

type fakeRepo struct {
	results []store.Result
	detail  *store.Result
}

func (f *fakeRepo) Save(context.Context, *store.Result) error { return nil }
func (f *fakeRepo) Get(_ context.Context, id string) (*store.Result, error) {
	if f.detail == nil || f.detail.ID != id {
		return nil, store.ErrNotFound
	}
	return f.detail, nil
}
func (f *fakeRepo) List(context.Context, store.ResultFilter) ([]store.Result, error) {
	return f.results, nil
}
func (f *fakeRepo) Stats(context.Context) ([]store.QuizStats, error) { return nil, nil }
func (f *fakeRepo) Reset(context.Context, string) (int64, error)     { return 0, nil }

func loaded(t *testing.T, repo *fakeRepo) *HistoryScreen {
	t.Helper()
	s := New(repo, map[string]string{"mindset": "Money mindset"})
	msg := s.Init()()
	s.Update(msg)
	require.True(t, s.loaded)
	return s
}

func TestHistory_Empty(t *testing.T) {
	s := loaded(t, &fakeRepo{})
	assert.Contains(t, s.View(100, 30), "No quizzes taken yet.")
}

func TestHistory_ListAndExpand(t *testing.T) {
	at := time.Date(2026, 4, 2, 9, 30, 0, 0, time.UTC)
	repo := &fakeRepo{
		results: []store.Result{
			{ID: "a", QuizID: "mindset", Percentage: 75, Tier: "Growth mindset", CreatedAt: at},
			{ID: "b", QuizID: "final", Percentage: 50, CreatedAt: at.Add(-time.Hour)},
		},
		detail: &store.Result{ID: "a", Weighted: true, Answers: []store.Answer{
			{Position: 1, Prompt: "Money is a tool", Answer: "Agree", Points: 2},
		}},
	}
	s := loaded(t, repo)

	view := s.View(120, 30)
	assert.Contains(t, view, "Money mindset")
	assert.Contains(t, view, "final")
	assert.Contains(t, view, "Growth mindset")

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Contains(t, s.View(120, 30), "Loading answers...")

	s.Update(cmd())
	view = s.View(120, 30)
	assert.Contains(t, view, "Money is a tool")
	assert.Contains(t, view, "+2")

	// Collapsing keeps the cached detail.
	_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, cmd)
	_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestHistory_Navigation(t *testing.T) {
	s := loaded(t, &fakeRepo{results: []store.Result{{ID: "a"}, {ID: "b"}}})

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 1, s.selected)
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 1, s.selected)
	s.Update(tea.KeyPressMsg{Code: 'k', Text: "k"})
	assert.Equal(t, 0, s.selected)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
}

package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStart_StratifiedSample(t *testing.T) {
	pool := keyedPool(5, 2)
	s, err := Start(pool, 2, Seed(1))
	require.NoError(t, err)

	assert.Equal(t, InProgress, s.State())
	assert.Equal(t, 10, s.Total())
	assert.Equal(t, 0, s.Index())
	assert.Empty(t, s.Answers())

	perCategory := map[string]int{}
	ids := map[string]bool{}
	for _, it := range s.Selected() {
		perCategory[it.Category]++
		assert.False(t, ids[it.ID], "item %s drawn twice", it.ID)
		ids[it.ID] = true
	}
	for _, c := range pool.Categories() {
		assert.Equal(t, 2, perCategory[c], c)
	}
}

func TestStart_LengthInvariant(t *testing.T) {
	for categories := 1; categories <= 4; categories++ {
		for size := 1; size <= 3; size++ {
			s, err := Start(keyedPool(categories, 5), size, nil)
			require.NoError(t, err)
			assert.Equal(t, categories*size, s.Total())
		}
	}
}

func TestStart_InsufficientPool(t *testing.T) {
	_, err := Start(keyedPool(5, 2), 3, Seed(1))
	require.ErrorIs(t, err, ErrInsufficientPool)

	var pe *PoolError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "theme-0", pe.Category)
	assert.Equal(t, 2, pe.Have)
	assert.Equal(t, 3, pe.Want)
}

func TestStart_InvalidSampleSize(t *testing.T) {
	_, err := Start(keyedPool(1, 1), 0, nil)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestStart_EmptyPool(t *testing.T) {
	pool, err := NewPool()
	require.NoError(t, err)

	s, err := Start(pool, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, NotStarted, s.State())

	_, err = s.Submit("anything")
	assert.ErrorIs(t, err, ErrNotStarted)

	_, err = Score(s)
	assert.ErrorIs(t, err, ErrNotCompleted)

	s, err = s.Reset()
	require.NoError(t, err)
	assert.Equal(t, NotStarted, s.State())
}

func TestStart_SeedIsDeterministic(t *testing.T) {
	pool := keyedPool(4, 6)
	a, err := Start(pool, 3, Seed(42))
	require.NoError(t, err)
	b, err := Start(pool, 3, Seed(42))
	require.NoError(t, err)
	assert.Equal(t, a.Selected(), b.Selected())
	assert.Equal(t, uint64(42), a.Seed())

	c, err := Start(pool, 3, Seed(43))
	require.NoError(t, err)
	assert.NotEqual(t, a.Selected(), c.Selected())
}

func TestStartAll(t *testing.T) {
	s, err := StartAll(keyedPool(3, 4), Seed(9))
	require.NoError(t, err)
	assert.Equal(t, 12, s.Total())
}

func TestSubmit_AdvancesImmutably(t *testing.T) {
	s0, err := Start(keyedPool(2, 1), 1, Seed(7))
	require.NoError(t, err)

	s1, err := s0.Submit("wrong")
	require.NoError(t, err)
	assert.Equal(t, 0, s0.Index())
	assert.Empty(t, s0.Answers())
	assert.Equal(t, 1, s1.Index())
	assert.Equal(t, []string{"wrong"}, s1.Answers())

	// Branching from the same value never leaks answers across branches.
	s2a, err := s1.Submit("right")
	require.NoError(t, err)
	s2b, err := s1.Submit("maybe")
	require.NoError(t, err)
	assert.Equal(t, []string{"wrong", "right"}, s2a.Answers())
	assert.Equal(t, []string{"wrong", "maybe"}, s2b.Answers())
	assert.Equal(t, Completed, s2a.State())
}

func TestSubmit_InvalidOption(t *testing.T) {
	s, err := Start(keyedPool(1, 1), 1, Seed(1))
	require.NoError(t, err)

	_, err = s.Submit("nope")
	require.ErrorIs(t, err, ErrInvalidOption)

	var oe *OptionError
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, "nope", oe.Answer)
	assert.Equal(t, 0, s.Index())
}

func TestSubmit_AfterCompletion(t *testing.T) {
	s := answerAll(mustStart(t, keyedPool(2, 2), 2), func(Item) string { return "right" })
	require.Equal(t, Completed, s.State())

	for _, ans := range []string{"right", "wrong", "nope"} {
		_, err := s.Submit(ans)
		assert.ErrorIs(t, err, ErrSessionCompleted)
	}
	_, ok := s.Current()
	assert.False(t, ok)
	assert.Equal(t, 1.0, s.Progress())
}

func TestReset(t *testing.T) {
	s := answerAll(mustStart(t, keyedPool(3, 3), 2), func(Item) string { return "wrong" })
	require.Equal(t, Completed, s.State())

	r, err := s.Reset()
	require.NoError(t, err)
	assert.Equal(t, InProgress, r.State())
	assert.Equal(t, 0, r.Index())
	assert.Empty(t, r.Answers())
	assert.Equal(t, 6, r.Total())

	// Seeded sessions reset to the same follow-up selection.
	r2, err := s.Reset()
	require.NoError(t, err)
	assert.Equal(t, r.Selected(), r2.Selected())
	assert.NotEqual(t, s.Seed(), r.Seed())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "not started", NotStarted.String())
	assert.Equal(t, "in progress", InProgress.String())
	assert.Equal(t, "completed", Completed.String())
	assert.Equal(t, "unknown", State(9).String())
}

func mustStart(t *testing.T, pool Pool, perCategory int) Session {
	t.Helper()
	s, err := Start(pool, perCategory, Seed(3))
	require.NoError(t, err)
	return s
}

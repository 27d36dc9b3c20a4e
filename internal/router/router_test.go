package router

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialViewIsAuth(t *testing.T) {
	assert.Equal(t, ViewAuth, New().Current())
}

func TestMostRecentSelectionWins(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for run := 0; run < 50; run++ {
		r := New()
		want := ViewAuth
		n := rng.Intn(10)
		for i := 0; i < n; i++ {
			if rng.Intn(2) == 0 {
				_, err := r.SelectTodos()
				require.NoError(t, err)
				want = ViewTodo
			} else {
				r.SelectAuth()
				want = ViewAuth
			}
		}
		assert.Equal(t, want, r.Current())
	}
}

func TestSelectReportsChange(t *testing.T) {
	r := New()
	assert.False(t, r.SelectAuth())

	changed, err := r.SelectTodos()
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = r.SelectTodos()
	require.NoError(t, err)
	assert.False(t, changed)

	assert.True(t, r.SelectAuth())
}

func TestGuardRefusesTodos(t *testing.T) {
	allowed := false
	r := New(WithGuard(func() bool { return allowed }))

	changed, err := r.SelectTodos()
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.False(t, changed)
	assert.Equal(t, ViewAuth, r.Current())

	allowed = true
	changed, err = r.SelectTodos()
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, ViewTodo, r.Current())
}

func TestViewString(t *testing.T) {
	assert.Equal(t, "auth", ViewAuth.String())
	assert.Equal(t, "todo", ViewTodo.String())
}

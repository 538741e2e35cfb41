package router

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	screenA Screen = iota
	screenB
)

func TestRun_NoTransition(t *testing.T) {
	err := New().Register(screenA, func(any) (any, error) { return nil, nil }).Run(screenA, nil)
	assert.Error(t, err)
}

func TestRun_UnregisteredScreen(t *testing.T) {
	r := New().Name(screenB, "product")
	r.Register(screenA, func(any) (any, error) { return nil, nil })
	r.OnTransition(func(Screen, any, *Stack) (Screen, any) { return screenB, nil })

	err := r.Run(screenA, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "product")
}

func TestRun_ScreenErrorIsWrapped(t *testing.T) {
	boom := errors.New("boom")
	r := New()
	r.Register(screenA, func(any) (any, error) { return nil, boom })
	r.OnTransition(func(Screen, any, *Stack) (Screen, any) { return ScreenExit, nil })

	assert.ErrorIs(t, r.Run(screenA, nil), boom)
}

func TestRun_PassesInputAndResult(t *testing.T) {
	var seen []any
	r := New()
	r.Register(screenA, func(in any) (any, error) {
		seen = append(seen, in)
		return in.(int) + 1, nil
	})
	r.OnTransition(func(from Screen, res any, _ *Stack) (Screen, any) {
		if res.(int) >= 3 {
			return ScreenExit, nil
		}
		return screenA, res
	})

	require.NoError(t, r.Run(screenA, 0))
	assert.Equal(t, []any{0, 1, 2}, seen)
}

func TestStack_PopTo(t *testing.T) {
	s := NewStack()
	s.Push(screenA, "home", 1)
	s.Push(screenB, "first", nil)
	s.Push(screenB, "second", nil)

	entry := s.PopTo(screenA)
	require.NotNil(t, entry)
	assert.Equal(t, "home", entry.Input)
	assert.Equal(t, 1, entry.Resume)
	assert.True(t, s.IsEmpty())

	s.Push(screenB, "only", nil)
	assert.Nil(t, s.PopTo(screenA))
	assert.Equal(t, 1, s.Len())
}

func TestStack_PushPopPeek(t *testing.T) {
	s := NewStack()
	assert.Nil(t, s.Pop())
	assert.Nil(t, s.Peek())

	s.Push(screenA, nil, nil)
	s.Push(screenB, nil, nil)
	assert.Equal(t, screenB, s.Peek().Screen)
	assert.Equal(t, screenB, s.Pop().Screen)
	assert.Equal(t, 1, s.Len())

	s.Clear()
	assert.True(t, s.IsEmpty())
}

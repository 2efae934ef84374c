package memo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLazy_Get(t *testing.T) {
	called := 0
	l := NewLazy(func() (int, error) {
		called++
		return called, nil
	})

	for i := 0; i < 5; i++ {
		v, err := l.Get()
		require.NoError(t, err)
		require.Equal(t, 1, v)
	}

	require.Equal(t, 1, called)
}

func TestLazy_Get_ErrorLeavesUnresolved(t *testing.T) {
	errBoom := errors.New("boom")

	called := 0
	l := NewLazy(func() (int, error) {
		called++
		if called == 1 {
			return 0, errBoom
		}
		return 42, nil
	})

	_, err := l.Get()
	require.ErrorIs(t, err, errBoom)

	v, err := l.Get()
	require.NoError(t, err)
	require.Equal(t, 42, v)

	v, err = l.Get()
	require.NoError(t, err)
	require.Equal(t, 42, v)
	require.Equal(t, 2, called)
}

func TestLazyIn_Get(t *testing.T) {
	called := 0
	l := NewLazyIn(func(x int) (int, error) {
		called++
		return x + 1, nil
	})

	v, err := l.Get(0)
	require.NoError(t, err)
	require.Equal(t, 1, v)

	// resolved, the new input is discarded
	v, err = l.Get(10)
	require.NoError(t, err)
	require.Equal(t, 1, v)

	require.Equal(t, 1, called)
}

func TestLazyIn_Get_ErrorLeavesUnresolved(t *testing.T) {
	errBoom := errors.New("boom")

	called := 0
	l := NewLazyIn(func(x int) (string, error) {
		called++
		if called == 1 {
			return "", errBoom
		}
		return "ok", nil
	})

	_, err := l.Get(1)
	require.ErrorIs(t, err, errBoom)

	v, err := l.Get(2)
	require.NoError(t, err)
	require.Equal(t, "ok", v)
	require.Equal(t, 2, called)
}

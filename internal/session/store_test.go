package session

import (
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreDefaults(t *testing.T) {
	s := NewStore(func() []string { return []string{"greeting"} })
	assert.Equal(t, []string{"greeting"}, s.Get("u1"))

	_, err := s.Modify("u1", func([]string) ([]string, error) { return []string{"a"}, nil })
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, s.Get("u1"))

	s.Clear("u1")
	assert.Equal(t, []string{"greeting"}, s.Get("u1"))

	zero := NewStore[int](nil)
	assert.Equal(t, 0, zero.Get("nobody"))
}

func TestStoreModify(t *testing.T) {
	s := NewStore[int](nil)

	got, err := s.Modify("u1", func(n int) (int, error) { return n + 2, nil })
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	boom := errors.New("boom")
	got, err = s.Modify("u1", func(n int) (int, error) { return 100, boom })
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, got)
	assert.Equal(t, 2, s.Get("u1"))
}

func TestStoreConcurrentModify(t *testing.T) {
	s := NewStore[int](nil)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = s.Modify("shared", func(n int) (int, error) { return n + 1, nil })
			_, _ = s.Modify("user-"+strconv.Itoa(i), func(int) (int, error) { return i, nil })
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 50, s.Get("shared"))
	assert.Equal(t, 7, s.Get("user-7"))
}

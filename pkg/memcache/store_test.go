package mem

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTTLStore_SetGet(t *testing.T) {
	s := NewTTLStore[string]()
	s.Set("a", "alpha", time.Minute)

	v, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, "alpha", v)

	_, ok = s.Get("missing")
	assert.False(t, ok)
}

func TestTTLStore_Expiry(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	s := NewTTLStore[int]()
	s.now = func() time.Time { return now }

	s.Set("k", 1, time.Minute)
	now = now.Add(2 * time.Minute)

	_, ok := s.Get("k")
	assert.False(t, ok)

	_, err := s.Update("k", func(v int) (int, error) { return v + 1, nil })
	assert.ErrorIs(t, err, ErrMissing)
	assert.Equal(t, 0, s.Len())
}

func TestTTLStore_Update(t *testing.T) {
	s := NewTTLStore[int]()
	s.Set("k", 1, time.Minute)

	got, err := s.Update("k", func(v int) (int, error) { return v + 41, nil })
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	boom := errors.New("boom")
	_, err = s.Update("k", func(v int) (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)

	v, _ := s.Get("k")
	assert.Equal(t, 42, v)
}

func TestTTLStore_Sweep(t *testing.T) {
	now := time.Now()
	s := NewTTLStore[int]()
	s.now = func() time.Time { return now }

	s.Set("short", 1, time.Second)
	s.Set("long", 2, time.Hour)
	now = now.Add(time.Minute)

	assert.Equal(t, 1, s.Sweep())
	assert.Equal(t, 1, s.Len())
}

func TestBoundedTTLStore_EvictsClosestToExpiry(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	s := NewBoundedTTLStore[int](2)
	s.now = func() time.Time { return now }

	s.Set("first", 1, time.Hour)
	now = now.Add(time.Minute)
	s.Set("second", 2, time.Hour)
	now = now.Add(time.Minute)
	s.Set("third", 3, time.Hour)

	assert.Equal(t, 2, s.Len())
	_, ok := s.Get("first")
	assert.False(t, ok)
	_, ok = s.Get("third")
	assert.True(t, ok)

	s.Set("third", 33, time.Hour)
	assert.Equal(t, 2, s.Len())
	_, ok = s.Get("second")
	assert.True(t, ok)
}

func TestBoundedTTLStore_PrefersExpired(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	s := NewBoundedTTLStore[int](2)
	s.now = func() time.Time { return now }

	s.Set("keep", 1, time.Hour)
	s.Set("stale", 2, time.Second)
	now = now.Add(time.Minute)
	s.Set("new", 3, time.Hour)

	assert.Equal(t, 2, s.Len())
	_, ok := s.Get("keep")
	assert.True(t, ok)
	_, ok = s.Get("new")
	assert.True(t, ok)
}

func TestTTLStore_ConcurrentUpdates(t *testing.T) {
	s := NewTTLStore[int]()
	s.Set("counter", 0, time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Update("counter", func(v int) (int, error) { return v + 1, nil })
		}()
	}
	wg.Wait()

	v, _ := s.Get("counter")
	assert.Equal(t, 50, v)
}

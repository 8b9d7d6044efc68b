// Package mem keeps short-lived values in process memory.
package mem

import (
	"errors"
	"sync"
	"time"
)

var ErrMissing = errors.New("entry missing or expired")

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// TTLStore is a mutex-guarded map whose entries expire after their TTL.
// Expired entries are dropped lazily on access and in bulk by Sweep.
type TTLStore[V any] struct {
	mu   sync.RWMutex
	data map[string]entry[V]
	now  func() time.Time

	maxEntries int
}

func NewTTLStore[V any]() *TTLStore[V] {
	return &TTLStore[V]{
		data: make(map[string]entry[V]),
		now:  time.Now,
	}
}

// NewBoundedTTLStore holds at most maxEntries values. Adding a key to a full
// store drops expired entries first and then the entry closest to expiry.
func NewBoundedTTLStore[V any](maxEntries int) *TTLStore[V] {
	s := NewTTLStore[V]()
	s.maxEntries = maxEntries
	return s
}

func (s *TTLStore[V]) Set(key string, value V, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[key]; !exists && s.maxEntries > 0 && len(s.data) >= s.maxEntries {
		s.makeRoomLocked()
	}
	s.data[key] = entry[V]{
		value:     value,
		expiresAt: s.now().Add(ttl),
	}
}

func (s *TTLStore[V]) Get(key string) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[key]
	if !ok || s.now().After(e.expiresAt) {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Update applies fn to the stored value under the write lock. The TTL is kept.
// If fn returns an error the stored value is left untouched.
func (s *TTLStore[V]) Update(key string, fn func(V) (V, error)) (V, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero V
	e, ok := s.data[key]
	if !ok {
		return zero, ErrMissing
	}
	if s.now().After(e.expiresAt) {
		delete(s.data, key)
		return zero, ErrMissing
	}

	updated, err := fn(e.value)
	if err != nil {
		return zero, err
	}
	e.value = updated
	s.data[key] = e
	return updated, nil
}

func (s *TTLStore[V]) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}

// Sweep removes expired entries and reports how many were dropped.
func (s *TTLStore[V]) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweepLocked()
}

func (s *TTLStore[V]) makeRoomLocked() {
	if s.sweepLocked() > 0 && len(s.data) < s.maxEntries {
		return
	}

	var (
		oldest   string
		earliest time.Time
		found    bool
	)
	for k, e := range s.data {
		if !found || e.expiresAt.Before(earliest) {
			oldest, earliest, found = k, e.expiresAt, true
		}
	}
	if found {
		delete(s.data, oldest)
	}
}

func (s *TTLStore[V]) sweepLocked() int {
	now := s.now()
	removed := 0
	for k, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, k)
			removed++
		}
	}
	return removed
}

func (s *TTLStore[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

package tracked

import (
	"sort"
	"sync"

	"versiontag/pkg/version"
)

// Entry is a stored value with the tag minted when it was written.
type Entry[V any] struct {
	Value   V
	Version version.Tag
	Deleted bool // True if this is a tombstone
}

// Store is a set of keyed producers. Every Put and Delete mints a fresh tag
// for the key it touches. It is safe for concurrent use.
type Store[V any] struct {
	mu    sync.RWMutex
	data  map[string]Entry[V]
	clone func(V) V
}

// NewStore creates an empty store. If clone is non-nil it is used to copy
// values on the way in and out, so callers cannot mutate stored values.
func NewStore[V any](clone func(V) V) *Store[V] {
	return &Store[V]{
		data:  make(map[string]Entry[V]),
		clone: clone,
	}
}

// Get returns the entry for key. ok is false for missing keys and for
// tombstones; a tombstone's entry still carries its tag.
func (s *Store[V]) Get(key string) (Entry[V], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, exists := s.data[key]
	if !exists {
		return Entry[V]{}, false
	}
	if e.Deleted {
		return e, false
	}
	e.Value = s.copy(e.Value)
	return e, true
}

// Put stores value under key and returns the tag minted for it.
func (s *Store[V]) Put(key string, value V) version.Tag {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := Entry[V]{
		Value:   s.copy(value),
		Version: version.Fresh(),
	}
	s.data[key] = e
	return e.Version
}

// Delete replaces key with a tombstone and returns the tag minted for it.
// The tombstone is kept so that anything that depended on the key sees a
// new version instead of falling back to the unset tag.
func (s *Store[V]) Delete(key string) version.Tag {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := Entry[V]{
		Version: version.Fresh(),
		Deleted: true,
	}
	s.data[key] = e
	return e.Version
}

// Version returns the combined tag of keys. A key that was never written
// contributes the unset tag.
func (s *Store[V]) Version(keys ...string) (version.Tag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tags := make([]version.Tag, len(keys))
	for i, k := range keys {
		tags[i] = s.data[k].Version
	}
	return version.Combine(tags...)
}

// Key returns a Source tracking the tag of key.
func (s *Store[V]) Key(key string) Source {
	return SourceFunc(func() version.Tag {
		s.mu.RLock()
		defer s.mu.RUnlock()
		return s.data[key].Version
	})
}

// Len returns the number of live (non-tombstone) keys.
func (s *Store[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, e := range s.data {
		if !e.Deleted {
			n++
		}
	}
	return n
}

// Keys returns the live keys in sorted order.
func (s *Store[V]) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.data))
	for k, e := range s.data {
		if !e.Deleted {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func (s *Store[V]) copy(v V) V {
	if s.clone == nil {
		return v
	}
	return s.clone(v)
}

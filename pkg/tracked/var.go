package tracked

import (
	"sync"

	"versiontag/pkg/version"
)

// Var is a single value that mints a fresh tag each time it is set.
// The zero value holds the zero T with an unset tag.
type Var[T any] struct {
	mu  sync.RWMutex
	val T
	tag version.Tag
}

// NewVar returns a Var holding v with a fresh tag.
func NewVar[T any](v T) *Var[T] {
	return &Var[T]{val: v, tag: version.Fresh()}
}

// Set stores v and returns the tag minted for it.
func (x *Var[T]) Set(v T) version.Tag {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.val = v
	x.tag.Notify()
	return x.tag
}

// Update applies fn to the current value under the lock and stores the result.
func (x *Var[T]) Update(fn func(T) T) version.Tag {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.val = fn(x.val)
	x.tag.Notify()
	return x.tag
}

// Get returns the current value and its tag.
func (x *Var[T]) Get() (T, version.Tag) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.val, x.tag
}

// Version returns the tag of the current value.
func (x *Var[T]) Version() version.Tag {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.tag
}

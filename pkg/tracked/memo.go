package tracked

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"versiontag/pkg/version"
)

// ComputeFunc produces a derived value. It typically reads the Memo's
// dependencies, calling Get on any that are themselves memos.
type ComputeFunc[T any] func(ctx context.Context) (T, error)

// Memo holds one value derived from a fixed set of sources and the tag it
// was computed against. It is safe for concurrent use; concurrent Gets that
// need a recompute wait for a single computation.
type Memo[T any] struct {
	compute ComputeFunc[T]
	deps    []Source
	opts    options

	mu    sync.Mutex
	value T
	tag   version.Tag
}

// NewMemo creates a memo over deps. The first Get always computes.
func NewMemo[T any](compute ComputeFunc[T], deps []Source, opts ...Option) *Memo[T] {
	return &Memo[T]{
		compute: compute,
		deps:    append([]Source(nil), deps...),
		opts:    buildOptions(opts),
	}
}

// Get returns the derived value and the tag it is valid for, recomputing
// first if any dependency changed since the last computation. A failed
// computation keeps the previous value and tag so the next Get retries.
// A memo with no dependencies fails with version.ErrEmptyCombineInput.
// While every dependency still carries the unset tag there is nothing to
// compare against, and every Get recomputes.
func (m *Memo[T]) Get(ctx context.Context) (T, version.Tag, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// required is read before computing so a mutation racing the
	// computation is picked up by the next Get.
	required, err := Combine(m.deps...)
	if err != nil {
		var zero T
		return zero, version.Unset(), err
	}

	if !m.tag.IsUnset() && required.Equal(m.tag) {
		m.opts.metrics.hit(m.opts.name)
		return m.value, m.tag, nil
	}

	if err := ctx.Err(); err != nil {
		var zero T
		return zero, m.tag, err
	}

	v, err := m.compute(ctx)
	if err != nil {
		m.opts.metrics.failed(m.opts.name)
		m.opts.log.Debug("memo recompute failed",
			zap.String("memo", m.opts.name),
			zap.Stringer("required", required),
			zap.Error(err))
		var zero T
		return zero, m.tag, err
	}

	m.opts.log.Debug("memo recomputed",
		zap.String("memo", m.opts.name),
		zap.Stringer("from", m.tag),
		zap.Stringer("to", required))
	m.opts.metrics.recomputed(m.opts.name)

	m.value = v
	m.tag = required
	return v, required, nil
}

// Version returns the combined tag of the memo's dependencies: the tag its
// value is valid for once it is up to date. Returning the dependencies' tag
// rather than the adopted one lets a memo built on this memo see a change
// underneath it before this memo has been refreshed. It returns the unset
// tag when the memo has no dependencies.
func (m *Memo[T]) Version() version.Tag {
	tag, err := Combine(m.deps...)
	if err != nil {
		return version.Unset()
	}
	return tag
}

// Adopted returns the tag the cached value was computed against, or the
// unset tag if nothing has been computed.
func (m *Memo[T]) Adopted() version.Tag {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tag
}

// Stale reports whether the next Get will recompute.
func (m *Memo[T]) Stale() bool {
	adopted := m.Adopted()
	return adopted.IsUnset() || !m.Version().Equal(adopted)
}

// Invalidate forgets the adopted tag so the next Get recomputes.
func (m *Memo[T]) Invalidate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tag = version.Unset()
}

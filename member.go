package liveset

import "sync/atomic"

// Member is the sole owner of one value's membership in a [Set].
//
// Exactly one Member exists per value added with [Set.Add]. It may be handed
// off between goroutines, but an individual Member is not safe for
// concurrent use. Closing the Member removes the value from the set.
type Member[T any] struct {
	set    *Set[T]
	id     ID
	entry  *entry[T]
	closed atomic.Bool
}

// ID returns the identity of the member within its set.
//
// It panics if the member has been closed or consumed by [Member.Take].
func (m *Member[T]) ID() ID {
	if m.closed.Load() {
		panic("member is closed")
	}
	return m.id
}

// Value returns the member's value.
//
// The set retains ownership of the value's storage for the lifetime of the
// membership; Value returns a copy of it.
//
// It panics if the member has been closed or consumed by [Member.Take].
func (m *Member[T]) Value() T {
	if m.closed.Load() {
		panic("member is closed")
	}
	return m.entry.value
}

// Take removes the value from the set and returns it, consuming the member.
//
// After Take returns, the handle is inert; any further use other than
// [Member.Close] panics.
func (m *Member[T]) Take() T {
	if !m.closed.CompareAndSwap(false, true) {
		panic("member is closed")
	}

	m.set.discard(m.id, m.entry)

	return m.entry.value
}

// Close removes the value from the set.
//
// It always returns nil; the error return exists to satisfy [io.Closer].
// Closing a member that has already been closed or consumed has no effect,
// so it is safe to unconditionally defer a call to Close.
func (m *Member[T]) Close() error {
	if m.closed.CompareAndSwap(false, true) {
		m.set.release(m.id, m.entry)
	}
	return nil
}

package liveset

import "sync/atomic"

// SharedMember is one of possibly many owners of a value's membership in a
// [Set].
//
// Additional owners are created with [SharedMember.Clone]. The value remains
// a member of the set until every clone has been closed; the final close
// removes it.
//
// Each clone may be used by a different goroutine, but an individual clone
// is not safe for concurrent use.
type SharedMember[T any] struct {
	set    *Set[T]
	id     ID
	entry  *entry[T]
	closed atomic.Bool
}

// ID returns the identity of the member within its set.
//
// All clones that reference the same value report the same ID. It panics if
// this clone has been closed.
func (m *SharedMember[T]) ID() ID {
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
// It panics if this clone has been closed.
func (m *SharedMember[T]) Value() T {
	if m.closed.Load() {
		panic("member is closed")
	}
	return m.entry.value
}

// Clone returns a new handle that shares ownership of the same membership.
//
// A live clone always holds a positive reference to the entry, so a clone
// can never be taken of a member that has already been removed from the set.
// It panics if this clone has been closed.
func (m *SharedMember[T]) Clone() *SharedMember[T] {
	if m.closed.Load() {
		panic("member is closed")
	}

	m.entry.refs.Add(1)

	return &SharedMember[T]{
		set:   m.set,
		id:    m.id,
		entry: m.entry,
	}
}

// Close releases this clone's share of the membership. If it is the last
// live clone the value is removed from the set.
//
// It always returns nil; the error return exists to satisfy [io.Closer].
// Closing a clone that has already been closed has no effect, so it is safe
// to unconditionally defer a call to Close.
func (m *SharedMember[T]) Close() error {
	if m.closed.CompareAndSwap(false, true) {
		m.set.release(m.id, m.entry)
	}
	return nil
}

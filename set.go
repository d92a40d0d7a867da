// Package liveset provides a thread-safe set whose membership is controlled
// by the lifetime of handles rather than by explicit removal.
//
// Adding a value returns an owning [Member] (or clonable [SharedMember])
// handle. The value remains in the [Set] for exactly as long as at least one
// handle referencing it is alive; closing the last handle removes the value
// automatically. It is intended for tracking ephemeral participants, such as
// subscribers or connected clients, where membership should follow liveness.
package liveset

import (
	"sync/atomic"
	"time"

	"github.com/puzpuzpuz/xsync/v4"
)

// Set is a set of values of type T, keyed by an [ID] assigned when each
// value is added.
//
// A value is a member of the set if and only if at least one live handle
// referencing its ID exists. Membership is relinquished by closing the
// handle, never by operating on the set directly.
//
// A Set must be created with [New]. It is safe for concurrent use by
// multiple goroutines.
type Set[T any] struct {
	name        string
	entries     *xsync.Map[ID, *entry[T]]
	lastID      atomic.Uint64
	interceptor *Interceptor
	telemetry   *instrumentation
}

// entry is the stored form of a single member.
//
// refs counts the outstanding handles that reference the entry. It is
// decoupled from the map so that cloning and releasing handles never
// contends with set-wide operations.
type entry[T any] struct {
	value   T
	refs    atomic.Int64
	addedAt time.Time
}

// New returns an empty [Set].
func New[T any](options ...Option) *Set[T] {
	var cfg config
	for _, opt := range options {
		opt(&cfg)
	}

	s := &Set[T]{
		name:        cfg.name,
		entries:     xsync.NewMap[ID, *entry[T]](),
		interceptor: cfg.interceptor,
	}

	if cfg.telemetry != nil {
		s.telemetry = newInstrumentation[T](cfg.name, *cfg.telemetry)
	}

	return s
}

// Name returns the name of the set, as configured by [WithName].
func (s *Set[T]) Name() string {
	return s.name
}

// Add adds v to the set and returns a [Member] that owns its membership.
//
// The value remains a member of the set until the returned handle is closed
// or consumed by [Member.Take]. Add never fails.
func (s *Set[T]) Add(v T) *Member[T] {
	id, e := s.add(v)
	return &Member[T]{set: s, id: id, entry: e}
}

// AddShared adds v to the set and returns a [SharedMember] that owns its
// membership.
//
// Unlike [Set.Add], the returned handle may be cloned. The value remains a
// member of the set until every clone has been closed.
func (s *Set[T]) AddShared(v T) *SharedMember[T] {
	id, e := s.add(v)
	return &SharedMember[T]{set: s, id: id, entry: e}
}

// Len returns the number of members in the set.
//
// The count is approximate at the moment of the call; it may be stale by the
// time it is observed if handles are concurrently added or closed.
func (s *Set[T]) Len() int {
	return s.entries.Size()
}

// IsEmpty returns true if the set has no members.
//
// It is subject to the same caveat as [Set.Len].
func (s *Set[T]) IsEmpty() bool {
	return s.Len() == 0
}

// add stores v under a freshly generated ID.
//
// IDs are generated from a 64-bit monotonic counter and are never reused
// within the lifetime of the process, so a dangling handle can never address
// a different member's entry.
func (s *Set[T]) add(v T) (ID, *entry[T]) {
	id := ID(s.lastID.Add(1))

	e := &entry[T]{
		value:   v,
		addedAt: time.Now(),
	}
	e.refs.Store(1)

	s.entries.Store(id, e)

	if t := s.telemetry; t != nil {
		t.memberAdded(id)
	}
	if i := s.interceptor; i != nil {
		i.invokeAfterAdd(id)
	}

	return id, e
}

// release records that one handle referencing the entry has been closed,
// and discards the entry if it was the last.
//
// The decrement and the zero check are a single atomic operation, so exactly
// one releaser observes the transition to zero regardless of which goroutine
// closes last.
func (s *Set[T]) release(id ID, e *entry[T]) {
	if e.refs.Add(-1) == 0 {
		s.discard(id, e)
	}
}

// discard removes the entry for id if it is present. It returns true if the
// entry was removed, or false if it was already absent.
//
// It is idempotent; concurrent duplicate calls remove the entry exactly
// once.
func (s *Set[T]) discard(id ID, e *entry[T]) bool {
	if i := s.interceptor; i != nil {
		i.invokeBeforeRemove(id)
	}

	if _, ok := s.entries.LoadAndDelete(id); !ok {
		return false
	}

	if t := s.telemetry; t != nil {
		t.memberRemoved(id, time.Since(e.addedAt))
	}
	if i := s.interceptor; i != nil {
		i.invokeAfterRemove(id)
	}

	return true
}

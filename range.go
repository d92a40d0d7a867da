package liveset

// A RangeFunc is a function used to range over the members of a [Set].
//
// If ok is false, ranging stops.
type RangeFunc[T any] func(id ID, v T) (ok bool)

// Range invokes fn for each member of the set in an undefined order.
//
// Members may be added and removed concurrently with the traversal. Every
// member that is present for the entire traversal is visited exactly once; a
// member removed mid-traversal is either visited or skipped, never visited
// in a partially-removed state. A member removed before the traversal began
// is never visited.
func (s *Set[T]) Range(fn RangeFunc[T]) {
	s.entries.Range(func(id ID, e *entry[T]) bool {
		return fn(id, e.value)
	})
}

// RangeOthers invokes fn for each member of the set except the one with the
// given ID, in an undefined order.
//
// It is intended for broadcast-style traversals in which a participant
// addresses every current member other than itself. If no member has the
// given ID, all members are visited.
func (s *Set[T]) RangeOthers(except ID, fn RangeFunc[T]) {
	s.Range(func(id ID, v T) bool {
		if id == except {
			return true
		}
		return fn(id, v)
	})
}

// Values returns the values of the current members of the set, in an
// undefined order.
//
// The returned slice is a point-in-time snapshot; it is not updated as
// membership changes.
func (s *Set[T]) Values() []T {
	values := make([]T, 0, s.Len())

	s.Range(func(_ ID, v T) bool {
		values = append(values, v)
		return true
	})

	return values
}

package liveset

import "strconv"

// ID is an opaque identity that addresses a single member of a [Set].
//
// IDs are unique within a set for the lifetime of the process; the ID of a
// removed member is never assigned to a later member. An ID is never zero.
type ID uint64

func (id ID) String() string {
	return "#" + strconv.FormatUint(uint64(id), 10)
}

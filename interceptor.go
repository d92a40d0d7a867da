package liveset

import "sync/atomic"

// Interceptor defines functions that are invoked around set operations.
//
// The functions may be replaced at any time, including while the set is in
// use. They are invoked on whichever goroutine performs the operation, which
// for removals is the goroutine that closes the last handle, so they must be
// safe for concurrent use.
type Interceptor struct {
	afterAdd     atomic.Pointer[func(ID)]
	beforeRemove atomic.Pointer[func(ID)]
	afterRemove  atomic.Pointer[func(ID)]
}

// AfterAdd sets the function that is invoked after a member is added to the
// [Set].
func (i *Interceptor) AfterAdd(fn func(id ID)) {
	setFn(&i.afterAdd, fn)
}

// BeforeRemove sets the function that is invoked before a member is removed
// from the [Set].
//
// It is invoked on every removal attempt, including the redundant attempts
// that lose a release race.
func (i *Interceptor) BeforeRemove(fn func(id ID)) {
	setFn(&i.beforeRemove, fn)
}

// AfterRemove sets the function that is invoked after a member is removed
// from the [Set].
//
// It is invoked exactly once per member, by the releaser that performed the
// removal.
func (i *Interceptor) AfterRemove(fn func(id ID)) {
	setFn(&i.afterRemove, fn)
}

func (i *Interceptor) invokeAfterAdd(id ID)     { invoke(&i.afterAdd, id) }
func (i *Interceptor) invokeBeforeRemove(id ID) { invoke(&i.beforeRemove, id) }
func (i *Interceptor) invokeAfterRemove(id ID)  { invoke(&i.afterRemove, id) }

func setFn(dst *atomic.Pointer[func(ID)], fn func(ID)) {
	if fn == nil {
		dst.Store(nil)
		return
	}

	dst.Store(&fn)
}

func invoke(src *atomic.Pointer[func(ID)], id ID) {
	if fn := src.Load(); fn != nil {
		(*fn)(id)
	}
}

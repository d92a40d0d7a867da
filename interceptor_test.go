package liveset_test

import (
	"sync"
	"sync/atomic"
	"testing"

	. "github.com/dogmatiq/liveset"
)

func TestWithInterceptor(t *testing.T) {
	t.Parallel()

	t.Run("it invokes the AfterAdd function", func(t *testing.T) {
		t.Parallel()

		var in Interceptor

		var got atomic.Value
		in.AfterAdd(func(id ID) {
			got.Store(id)
		})

		set := New[string](WithInterceptor(&in))

		m := set.Add("<value>")
		defer m.Close()

		if got.Load() != m.ID() {
			t.Fatalf("unexpected ID: got %v, want %s", got.Load(), m.ID())
		}
	})

	t.Run("it invokes the AfterRemove function when the member is closed", func(t *testing.T) {
		t.Parallel()

		var in Interceptor

		var got atomic.Value
		in.AfterRemove(func(id ID) {
			got.Store(id)
		})

		set := New[string](WithInterceptor(&in))

		m := set.Add("<value>")
		id := m.ID()

		if got.Load() != nil {
			t.Fatal("did not expect AfterRemove to be invoked yet")
		}

		if err := m.Close(); err != nil {
			t.Fatal(err)
		}

		if got.Load() != id {
			t.Fatalf("unexpected ID: got %v, want %s", got.Load(), id)
		}
	})

	t.Run("it invokes the BeforeRemove function before the member is removed", func(t *testing.T) {
		t.Parallel()

		var in Interceptor

		set := New[string](WithInterceptor(&in))

		var lenBefore atomic.Int64
		in.BeforeRemove(func(ID) {
			lenBefore.Store(int64(set.Len()))
		})

		m := set.Add("<value>")

		if err := m.Close(); err != nil {
			t.Fatal(err)
		}

		if lenBefore.Load() != 1 {
			t.Fatalf("unexpected length before removal: got %d, want 1", lenBefore.Load())
		}
	})

	t.Run("it invokes the AfterRemove function exactly once when clones race to close", func(t *testing.T) {
		t.Parallel()

		var in Interceptor

		var removals atomic.Int64
		in.AfterRemove(func(ID) {
			removals.Add(1)
		})

		set := New[string](WithInterceptor(&in))

		const n = 64

		clones := []*SharedMember[string]{
			set.AddShared("<value>"),
		}
		for len(clones) < n {
			clones = append(clones, clones[0].Clone())
		}

		var g sync.WaitGroup
		for _, c := range clones {
			g.Add(1)
			go func() {
				defer g.Done()
				if err := c.Close(); err != nil {
					t.Error(err)
				}
			}()
		}
		g.Wait()

		if removals.Load() != 1 {
			t.Fatalf("unexpected number of removals: got %d, want 1", removals.Load())
		}
	})

	t.Run("it stops invoking a function that is replaced with nil", func(t *testing.T) {
		t.Parallel()

		var in Interceptor

		var adds atomic.Int64
		in.AfterAdd(func(ID) {
			adds.Add(1)
		})

		set := New[string](WithInterceptor(&in))

		m1 := set.Add("<value-1>")
		defer m1.Close()

		in.AfterAdd(nil)

		m2 := set.Add("<value-2>")
		defer m2.Close()

		if adds.Load() != 1 {
			t.Fatalf("unexpected number of adds observed: got %d, want 1", adds.Load())
		}
	})
}

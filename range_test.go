package liveset_test

import (
	"testing"

	. "github.com/dogmatiq/liveset"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestRange(t *testing.T) {
	t.Parallel()

	t.Run("it visits each member exactly once", func(t *testing.T) {
		t.Parallel()

		set := New[string]()

		want := map[ID]string{}
		for _, v := range []string{"<value-1>", "<value-2>", "<value-3>"} {
			m := set.Add(v)
			defer m.Close()

			want[m.ID()] = v
		}

		got := map[ID]string{}
		set.Range(func(id ID, v string) bool {
			if _, ok := got[id]; ok {
				t.Fatalf("member %s visited twice", id)
			}
			got[id] = v
			return true
		})

		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("unexpected members (-want +got):\n%s", diff)
		}
	})

	t.Run("it stops when fn returns false", func(t *testing.T) {
		t.Parallel()

		set := New[string]()

		for _, v := range []string{"<value-1>", "<value-2>", "<value-3>"} {
			defer set.Add(v).Close()
		}

		visits := 0
		set.Range(func(ID, string) bool {
			visits++
			return false
		})

		if visits != 1 {
			t.Fatalf("unexpected number of visits: got %d, want 1", visits)
		}
	})

	t.Run("it does not visit a member that was removed before the traversal began", func(t *testing.T) {
		t.Parallel()

		set := New[string]()

		m := set.Add("<value-1>")
		other := set.Add("<value-2>")
		defer other.Close()

		id := m.ID()
		if err := m.Close(); err != nil {
			t.Fatal(err)
		}

		set.Range(func(got ID, _ string) bool {
			if got == id {
				t.Fatalf("did not expect member %s to be visited", id)
			}
			return true
		})
	})
}

func TestRangeOthers(t *testing.T) {
	t.Parallel()

	t.Run("it visits every member except the given one", func(t *testing.T) {
		t.Parallel()

		set := New[string]()

		self := set.Add("<self>")
		defer self.Close()

		other := set.Add("<other>")
		defer other.Close()

		var got []string
		set.RangeOthers(self.ID(), func(_ ID, v string) bool {
			got = append(got, v)
			return true
		})

		want := []string{"<other>"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("unexpected members (-want +got):\n%s", diff)
		}
	})

	t.Run("it visits all members if no member has the given ID", func(t *testing.T) {
		t.Parallel()

		set := New[string]()

		for _, v := range []string{"<value-1>", "<value-2>"} {
			defer set.Add(v).Close()
		}

		visits := 0
		set.RangeOthers(ID(0), func(ID, string) bool {
			visits++
			return true
		})

		if visits != 2 {
			t.Fatalf("unexpected number of visits: got %d, want 2", visits)
		}
	})
}

func TestValues(t *testing.T) {
	t.Parallel()

	t.Run("it returns a snapshot of the current member values", func(t *testing.T) {
		t.Parallel()

		set := New[string]()

		want := []string{"<value-1>", "<value-2>", "<value-3>"}
		for _, v := range want {
			defer set.Add(v).Close()
		}

		got := set.Values()

		if diff := cmp.Diff(
			want,
			got,
			cmpopts.SortSlices(func(a, b string) bool { return a < b }),
		); diff != "" {
			t.Fatalf("unexpected values (-want +got):\n%s", diff)
		}
	})

	t.Run("it returns an empty slice for an empty set", func(t *testing.T) {
		t.Parallel()

		set := New[string]()

		if got := set.Values(); len(got) != 0 {
			t.Fatalf("unexpected values: got %v, want none", got)
		}
	})
}

package retainmut_test

import (
	"fmt"

	"github.com/dogmatiq/retainmut/internal/test"
)

// tracker records how many times each resource has been dropped.
type tracker struct {
	drops       map[int]int
	panicOnDrop map[int]bool
}

func newTracker() *tracker {
	return &tracker{
		drops:       map[int]int{},
		panicOnDrop: map[int]bool{},
	}
}

// resources returns n resources with IDs 0 to n-1.
func (tr *tracker) resources(n int) []resource {
	s := make([]resource, n)
	for i := range s {
		s[i] = resource{ID: i, Value: i, tracker: tr}
	}
	return s
}

func (tr *tracker) expectDrops(t test.FailerT, n int, dropped func(id int) bool) {
	t.Helper()

	for id := 0; id < n; id++ {
		want := 0
		if dropped(id) {
			want = 1
		}

		if got := tr.drops[id]; got != want {
			t.Fatalf("resource %d was dropped %d time(s), want %d", id, got, want)
		}
	}
}

// resource is an element type that implements retainmut.Dropper.
type resource struct {
	ID      int
	Value   int
	tracker *tracker
}

func (r *resource) Drop() {
	if r.tracker == nil {
		panic(fmt.Sprintf("resource %d has already been destroyed", r.ID))
	}

	r.tracker.drops[r.ID]++

	if r.tracker.panicOnDrop[r.ID] {
		panic(test.ErrBoom)
	}
}

func ids(s []resource) []int {
	var result []int
	for _, r := range s {
		result = append(result, r.ID)
	}
	return result
}

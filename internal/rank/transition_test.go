package rank

import (
	"errors"
	"math"
	"testing"

	"github.com/papapumpkin/surfer/internal/graph"
)

const sumTolerance = 1e-9

// corpus3 is the canonical three-page chain used throughout the tests:
// page 1 links to 2 and 3, pages 2 and 3 link to each other.
func corpus3() *graph.Graph {
	return graph.Build(map[string][]string{
		"1.html": {"2.html", "3.html"},
		"2.html": {"3.html"},
		"3.html": {"2.html"},
	})
}

func TestTransition(t *testing.T) {
	t.Parallel()

	t.Run("known values", func(t *testing.T) {
		t.Parallel()
		dist, err := Transition(corpus3(), "1.html", 0.85)
		if err != nil {
			t.Fatalf("Transition: %v", err)
		}
		want := map[string]float64{
			"1.html": 0.05,
			"2.html": 0.475,
			"3.html": 0.475,
		}
		for id, w := range want {
			if math.Abs(dist[id]-w) > sumTolerance {
				t.Errorf("dist[%s] = %v, want %v", id, dist[id], w)
			}
		}
	})

	t.Run("sink falls back to all nodes", func(t *testing.T) {
		t.Parallel()
		g := graph.Build(map[string][]string{
			"a.html": {"b.html"},
			"b.html": {},
		})
		dist, err := Transition(g, "b.html", 0.85)
		if err != nil {
			t.Fatalf("Transition: %v", err)
		}
		// Linking to everything makes the distribution uniform.
		for id, p := range dist {
			if math.Abs(p-0.5) > sumTolerance {
				t.Errorf("dist[%s] = %v, want 0.5", id, p)
			}
		}
	})

	t.Run("unknown current behaves like a sink", func(t *testing.T) {
		t.Parallel()
		dist, err := Transition(corpus3(), "nope.html", 0.85)
		if err != nil {
			t.Fatalf("Transition: %v", err)
		}
		for id, p := range dist {
			if math.Abs(p-1.0/3) > sumTolerance {
				t.Errorf("dist[%s] = %v, want 1/3", id, p)
			}
		}
	})

	t.Run("damping zero is a pure random jump", func(t *testing.T) {
		t.Parallel()
		dist, err := Transition(corpus3(), "1.html", 0)
		if err != nil {
			t.Fatalf("Transition: %v", err)
		}
		for id, p := range dist {
			if math.Abs(p-1.0/3) > sumTolerance {
				t.Errorf("dist[%s] = %v, want 1/3", id, p)
			}
		}
	})

	t.Run("damping one only follows links", func(t *testing.T) {
		t.Parallel()
		dist, err := Transition(corpus3(), "2.html", 1)
		if err != nil {
			t.Fatalf("Transition: %v", err)
		}
		if math.Abs(dist["3.html"]-1) > sumTolerance {
			t.Errorf("dist[3.html] = %v, want 1", dist["3.html"])
		}
		if dist["1.html"] != 0 || dist["2.html"] != 0 {
			t.Errorf("unlinked pages carry mass: %v", dist)
		}
	})

	t.Run("empty graph", func(t *testing.T) {
		t.Parallel()
		_, err := Transition(graph.Build(nil), "a.html", 0.85)
		if !errors.Is(err, ErrEmptyGraph) {
			t.Errorf("got %v, want ErrEmptyGraph", err)
		}
	})

	t.Run("damping out of range", func(t *testing.T) {
		t.Parallel()
		for _, d := range []float64{-0.1, 1.1} {
			if _, err := Transition(corpus3(), "1.html", d); !errors.Is(err, ErrBadDamping) {
				t.Errorf("damping %v: got %v, want ErrBadDamping", d, err)
			}
		}
	})
}

func TestTransitionSumsToOne(t *testing.T) {
	t.Parallel()

	graphs := map[string]*graph.Graph{
		"chain": corpus3(),
		"sinks": graph.Build(map[string][]string{
			"a.html": {"b.html", "c.html"},
			"b.html": {},
			"c.html": {},
		}),
		"single": graph.Build(map[string][]string{"a.html": {}}),
		"dense": graph.Build(map[string][]string{
			"a.html": {"b.html", "c.html", "d.html"},
			"b.html": {"a.html", "c.html"},
			"c.html": {"d.html"},
			"d.html": {"a.html"},
		}),
	}
	dampings := []float64{0, 0.15, 0.5, 0.85, 1}

	for name, g := range graphs {
		for _, d := range dampings {
			for _, current := range g.Nodes() {
				dist, err := Transition(g, current, d)
				if err != nil {
					t.Fatalf("%s d=%v current=%s: %v", name, d, current, err)
				}
				var sum float64
				for _, p := range dist {
					if p < 0 {
						t.Errorf("%s d=%v current=%s: negative probability %v", name, d, current, p)
					}
					sum += p
				}
				if math.Abs(sum-1) > sumTolerance {
					t.Errorf("%s d=%v current=%s: sum = %v, want 1", name, d, current, sum)
				}
			}
		}
	}
}

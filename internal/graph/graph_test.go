package graph

import (
	"reflect"
	"testing"
)

func TestBuild(t *testing.T) {
	t.Parallel()

	t.Run("basic corpus", func(t *testing.T) {
		t.Parallel()
		g := Build(map[string][]string{
			"a.html": {"b.html", "c.html"},
			"b.html": {"a.html"},
			"c.html": {},
		})
		if g.Len() != 3 {
			t.Fatalf("Len() = %d, want 3", g.Len())
		}
		if got := g.OutLinks("a.html"); !reflect.DeepEqual(got, []string{"b.html", "c.html"}) {
			t.Errorf("OutLinks(a.html) = %v, want [b.html c.html]", got)
		}
		if got := g.OutDegree("b.html"); got != 1 {
			t.Errorf("OutDegree(b.html) = %d, want 1", got)
		}
	})

	t.Run("drops links outside the corpus", func(t *testing.T) {
		t.Parallel()
		g := Build(map[string][]string{
			"a.html": {"b.html", "https://example.com", "missing.html"},
			"b.html": {"a.html"},
		})
		if got := g.OutLinks("a.html"); !reflect.DeepEqual(got, []string{"b.html"}) {
			t.Errorf("OutLinks(a.html) = %v, want [b.html]", got)
		}
	})

	t.Run("drops self links", func(t *testing.T) {
		t.Parallel()
		g := Build(map[string][]string{
			"a.html": {"a.html", "b.html"},
			"b.html": {"b.html"},
		})
		if got := g.OutLinks("a.html"); !reflect.DeepEqual(got, []string{"b.html"}) {
			t.Errorf("OutLinks(a.html) = %v, want [b.html]", got)
		}
		if got := g.OutDegree("b.html"); got != 0 {
			t.Errorf("OutDegree(b.html) = %d, want 0", got)
		}
	})

	t.Run("duplicate links collapse", func(t *testing.T) {
		t.Parallel()
		g := Build(map[string][]string{
			"a.html": {"b.html", "b.html", "b.html"},
			"b.html": {},
		})
		if got := g.OutDegree("a.html"); got != 1 {
			t.Errorf("OutDegree(a.html) = %d, want 1", got)
		}
		if got := g.Edges(); got != 1 {
			t.Errorf("Edges() = %d, want 1", got)
		}
	})

	t.Run("node with only dropped links becomes a sink", func(t *testing.T) {
		t.Parallel()
		g := Build(map[string][]string{
			"a.html": {"gone.html"},
			"b.html": {"a.html"},
		})
		if got := g.Sinks(); !reflect.DeepEqual(got, []string{"a.html"}) {
			t.Errorf("Sinks() = %v, want [a.html]", got)
		}
	})

	t.Run("empty corpus", func(t *testing.T) {
		t.Parallel()
		g := Build(nil)
		if g.Len() != 0 {
			t.Errorf("Len() = %d, want 0", g.Len())
		}
		if nodes := g.Nodes(); len(nodes) != 0 {
			t.Errorf("Nodes() = %v, want empty", nodes)
		}
	})
}

func TestNodes(t *testing.T) {
	t.Parallel()
	g := Build(map[string][]string{
		"c.html": nil,
		"a.html": nil,
		"b.html": nil,
	})
	want := []string{"a.html", "b.html", "c.html"}
	if got := g.Nodes(); !reflect.DeepEqual(got, want) {
		t.Errorf("Nodes() = %v, want %v", got, want)
	}
}

func TestLinking(t *testing.T) {
	t.Parallel()
	g := Build(map[string][]string{
		"a.html": {"c.html"},
		"b.html": {"c.html"},
		"c.html": {"a.html"},
	})
	if got, want := g.Linking("c.html"), []string{"a.html", "b.html"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Linking(c.html) = %v, want %v", got, want)
	}
	if got := g.Linking("b.html"); got != nil {
		t.Errorf("Linking(b.html) = %v, want nil", got)
	}
}

func TestHas(t *testing.T) {
	t.Parallel()
	g := Build(map[string][]string{"a.html": nil})
	if !g.Has("a.html") {
		t.Error("Has(a.html) = false, want true")
	}
	if g.Has("b.html") {
		t.Error("Has(b.html) = true, want false")
	}
}

func TestOutLinksUnknownNode(t *testing.T) {
	t.Parallel()
	g := Build(map[string][]string{"a.html": nil})
	if got := g.OutLinks("nope.html"); got != nil {
		t.Errorf("OutLinks(nope.html) = %v, want nil", got)
	}
}

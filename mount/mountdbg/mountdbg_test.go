package mountdbg

import (
	"strings"
	"testing"

	"github.com/npillmayer/comptest/element"
	"github.com/npillmayer/comptest/mount"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestToGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "comptest.mount")
	defer teardown()
	//
	card := element.NewComponent("Card", func(p element.Props, ch []*element.Element) *element.Element {
		return element.H("section", element.Props{"title": p["title"]}, ch...)
	})
	root, err := mount.Mount(element.New(card, element.Props{"title": "hi"},
		element.H("p", nil, element.Text("some longer text")),
	))
	if err != nil {
		t.Fatal(err)
	}
	var b strings.Builder
	if err := ToGraphViz(root, &b, true); err != nil {
		t.Fatal(err)
	}
	dot := b.String()
	t.Logf("\n%s", dot)
	if !strings.HasPrefix(dot, "digraph g {") || !strings.HasSuffix(dot, "}\n") {
		t.Error("expected output to be a digraph")
	}
	for _, s := range []string{
		`label="Card\ntitle=hi" shape=box`,
		`label="section\ntitle=hi" shape=ellipse`,
		"shape=ellipse",
		"some␣longe...",
	} {
		if !strings.Contains(dot, s) {
			t.Errorf("expected DOT output to contain %q", s)
		}
	}
	if n := strings.Count(dot, "->"); n != 3 {
		t.Errorf("expected 3 edges, have %d", n)
	}
}

func TestToGraphVizEmpty(t *testing.T) {
	var b strings.Builder
	if err := ToGraphViz(&mount.Root{}, &b, false); err == nil {
		t.Error("expected error for empty root")
	}
}

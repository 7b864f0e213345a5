package traverse

import (
	"fmt"
	"testing"

	"github.com/npillmayer/comptest/adapter"
	"github.com/npillmayer/comptest/element"
	"github.com/npillmayer/comptest/mount"
	"golang.org/x/net/html"
)

var (
	itemType = element.NewStateless("Item", func(p element.Props, _ []*element.Element) *element.Element {
		return element.H("li", element.Props{
			"className":  fmt.Sprintf("item %v", p["kind"]),
			"data-count": p["count"],
			"disabled":   p["disabled"],
		}, element.Text(fmt.Sprint(p["kind"])))
	})
	listType = element.NewComponent("List", func(p element.Props, ch []*element.Element) *element.Element {
		return element.H("ul", element.Props{"id": p["id"], "className": "list"}, ch...)
	})
	emptyType = element.NewComponent("Empty", func(element.Props, []*element.Element) *element.Element {
		return nil
	})
	appType = element.NewComponent("App", func(p element.Props, _ []*element.Element) *element.Element {
		return element.H("div", element.Props{"className": "app", "id": "main"},
			element.New(listType, element.Props{"id": "list"},
				element.New(itemType, element.Props{"kind": "first", "count": 1}),
				element.New(itemType, element.Props{"kind": "second", "count": 2, "disabled": true}),
			),
			element.New(emptyType, nil),
			element.H("span", element.Props{"id": "x", "title": "ok"}, element.Text("hello")),
		)
	})
)

// mountApp mounts the test application. In document order, the instances are
//
//    App, div, List, ul, Item, li, "first", Item, li, "second", Empty, span, "hello"
func mountApp(t *testing.T) (*Engine, *mount.Root) {
	root, err := mount.Mount(element.New(appType, element.Props{"title": "demo"}))
	if err != nil {
		t.Fatalf("cannot mount test application: %v", err)
	}
	return New(mount.Adapter{}), root
}

func mustMount(t *testing.T, el *element.Element) *mount.Root {
	root, err := mount.Mount(el)
	if err != nil {
		t.Fatalf("cannot mount %v: %v", el, err)
	}
	return root
}

func allNodes(t *testing.T, e *Engine, root adapter.Handle) []adapter.Node {
	nodes, err := e.FindAll(root, func(adapter.Node) bool { return true })
	if err != nil {
		t.Fatalf("cannot enumerate nodes: %v", err)
	}
	return nodes
}

func names(nodes []adapter.Node) []string {
	r := make([]string, len(nodes))
	for i, n := range nodes {
		r[i] = adapter.TypeName(n)
	}
	return r
}

// --- A minimal adapter, independent of package mount -----------------------

type fakeNode struct {
	el       *element.Element
	children []*fakeNode
}

func (f *fakeNode) Element() *element.Element { return f.el }
func (f *fakeNode) IsHost() bool              { return f.el.IsHost() }

func fake(tag string, children ...*fakeNode) *fakeNode {
	return &fakeNode{el: element.H(tag, nil), children: children}
}

type fakeAdapter struct{}

func (fakeAdapter) Normalize(h adapter.Handle) (adapter.Node, error) {
	if n, ok := h.(*fakeNode); ok && n != nil {
		return n, nil
	}
	return nil, fmt.Errorf("%w: %T", adapter.ErrUnsupportedShape, h)
}

func (fakeAdapter) ChildrenOf(n adapter.Node) []adapter.Node {
	var r []adapter.Node
	for _, ch := range n.(*fakeNode).children {
		r = append(r, ch)
	}
	return r
}

func (a fakeAdapter) FindAll(root adapter.Node, test adapter.Test) []adapter.Node {
	var r []adapter.Node
	if test(root) {
		r = append(r, root)
	}
	for _, ch := range a.ChildrenOf(root) {
		r = append(r, a.FindAll(ch, test)...)
	}
	return r
}

func (fakeAdapter) RenderedElementOf(adapter.Node) *html.Node {
	return nil
}

// sameNodes compares node lists by identity.
func sameNodes(a, b []adapter.Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

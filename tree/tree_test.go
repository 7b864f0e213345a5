package tree

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// buildTree creates
//
//    1 ─┬─ 2 ─┬─ 4
//       │     └─ 5
//       └─ 3 ─── 6
func buildTree() (*Node[int], []*Node[int]) {
	nodes := make([]*Node[int], 7)
	for i := 1; i <= 6; i++ {
		nodes[i] = NewNode(i)
	}
	nodes[1].AddChild(nodes[2]).AddChild(nodes[3])
	nodes[2].AddChild(nodes[4]).AddChild(nodes[5])
	nodes[3].AddChild(nodes[6])
	return nodes[1], nodes
}

func payloads(nodes []*Node[int]) []int {
	r := make([]int, len(nodes))
	for i, n := range nodes {
		r[i] = n.Payload
	}
	return r
}

func sameInts(a, b []int) bool {
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

func TestNodeChildren(t *testing.T) {
	root, nodes := buildTree()
	if root.ChildCount() != 2 {
		t.Errorf("expected root to have 2 children, has %d", root.ChildCount())
	}
	if ch, ok := root.Child(1); !ok || ch != nodes[3] {
		t.Errorf("expected 2nd child of root to be node 3, is %v", ch)
	}
	if _, ok := root.Child(2); ok {
		t.Error("expected no 3rd child of root")
	}
	if nodes[5].Parent() != nodes[2] || root.Parent() != nil {
		t.Error("expected children to link back to their parent")
	}
	if nodes[5].Depth() != 2 || root.Depth() != 0 {
		t.Errorf("expected depth of node 5 to be 2, is %d", nodes[5].Depth())
	}
	if nodes[2].IndexOfChild(nodes[5]) != 1 || nodes[2].IndexOfChild(nodes[6]) != -1 {
		t.Error("IndexOfChild is off")
	}
	children := root.Children()
	children[0] = nil
	if ch, _ := root.Child(0); ch != nodes[2] {
		t.Error("expected Children to return a copy")
	}
}

func TestNodeInsertAndIsolate(t *testing.T) {
	root, nodes := buildTree()
	x := NewNode(7)
	root.InsertChildAt(1, x)
	if got := payloads(root.Children()); !sameInts(got, []int{2, 7, 3}) {
		t.Errorf("expected children 2 7 3, are %v", got)
	}
	root.InsertChildAt(99, NewNode(8))
	if got := payloads(root.Children()); !sameInts(got, []int{2, 7, 3, 8}) {
		t.Errorf("expected children 2 7 3 8, are %v", got)
	}
	nodes[3].AddChild(nodes[4]) // moves node 4
	if nodes[4].Parent() != nodes[3] || nodes[2].ChildCount() != 1 {
		t.Error("expected AddChild to move a node from its old parent")
	}
	x.Isolate()
	if x.Parent() != nil || root.IndexOfChild(x) != -1 {
		t.Error("expected isolated node to be detached")
	}
}

func TestWalkerDescendents(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "comptest.tree")
	defer teardown()
	//
	root, _ := buildTree()
	nodes, err := NewWalker(root).AllDescendents().Nodes()
	if err != nil {
		t.Fatal(err)
	}
	if got := payloads(nodes); !sameInts(got, []int{2, 4, 5, 3, 6}) {
		t.Errorf("expected descendents in document order 2 4 5 3 6, are %v", got)
	}
	nodes, _ = NewWalker(root).SubtreeWith(NodeIsLeaf[int]()).Nodes()
	if got := payloads(nodes); !sameInts(got, []int{4, 5, 6}) {
		t.Errorf("expected leafs 4 5 6, are %v", got)
	}
	nodes, _ = NewWalker(root).SubtreeWith(Whatever[int]()).Nodes()
	if len(nodes) != 6 || nodes[0] != root {
		t.Errorf("expected subtree to include the start node, is %v", payloads(nodes))
	}
}

func TestWalkerUpwards(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "comptest.tree")
	defer teardown()
	//
	_, n := buildTree()
	odd := func(node *Node[int]) bool { return node.Payload%2 == 1 }
	nodes, err := NewWalker(n[5]).AncestorWith(odd).Nodes()
	if err != nil || len(nodes) != 1 || nodes[0] != n[1] {
		t.Errorf("expected odd ancestor of 5 to be 1, is %v", payloads(nodes))
	}
	nodes, _ = NewWalker(n[6]).Parent().Parent().Parent().Nodes()
	if len(nodes) != 0 {
		t.Errorf("expected no parent of root, is %v", payloads(nodes))
	}
	nodes, _ = NewWalker(n[1]).AllDescendents().Filter(NodeIsLeaf[int]()).Parent().Nodes()
	if got := payloads(nodes); !sameInts(got, []int{2, 2, 3}) {
		t.Errorf("expected parents of leafs to be 2 2 3, are %v", got)
	}
}

func TestWalkerErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "comptest.tree")
	defer teardown()
	//
	if _, err := NewWalker[int](nil).AllDescendents().Nodes(); !errors.Is(err, ErrEmptyTree) {
		t.Errorf("expected empty tree error, is %v", err)
	}
	root, _ := buildTree()
	_, err := NewWalker(root).DescendentsWith(nil).Parent().Nodes()
	if !errors.Is(err, ErrInvalidFilter) {
		t.Errorf("expected invalid filter error, is %v", err)
	}
}

package mount

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/comptest/adapter"
	"github.com/npillmayer/comptest/tree"
	"golang.org/x/net/html"
)

// Adapter gives traversal access to mounted instance trees.
type Adapter struct{}

var _ adapter.Adapter = Adapter{}

// Normalize accepts instances, public handles and roots.
func (Adapter) Normalize(h adapter.Handle) (adapter.Node, error) {
	var inst *Instance
	switch x := h.(type) {
	case *Instance:
		inst = x
	case *Public:
		inst = x.Instance()
	case *Root:
		inst = x.Instance()
	}
	if inst == nil {
		tracer().Debugf("cannot normalize handle of type %T", h)
		return nil, fmt.Errorf("%w: %T", adapter.ErrUnsupportedShape, h)
	}
	return inst, nil
}

// ChildrenOf returns the child instances of n. Nodes not produced by this
// adapter have no children.
func (Adapter) ChildrenOf(n adapter.Node) []adapter.Node {
	inst, ok := n.(*Instance)
	if !ok || inst == nil {
		return nil
	}
	children := inst.ChildInstances()
	r := make([]adapter.Node, len(children))
	for i, ch := range children {
		r[i] = ch
	}
	return r
}

// FindAll walks the instance tree below root, including root.
func (Adapter) FindAll(root adapter.Node, test adapter.Test) []adapter.Node {
	inst, ok := root.(*Instance)
	if !ok || inst == nil || test == nil {
		return nil
	}
	nodes, err := tree.NewWalker(&inst.Node).SubtreeWith(func(n *tree.Node[*Instance]) bool {
		return test(instanceOf(n))
	}).Nodes()
	if err != nil {
		tracer().Errorf("walking instance tree: %v", err)
		return nil
	}
	r := make([]adapter.Node, len(nodes))
	for i, n := range nodes {
		r[i] = instanceOf(n)
	}
	return r
}

// RenderedElementOf returns the document node n renders to.
func (Adapter) RenderedElementOf(n adapter.Node) *html.Node {
	inst, ok := n.(*Instance)
	if !ok {
		return nil
	}
	return inst.Rendered()
}

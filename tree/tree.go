package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
)

// ErrInvalidFilter is flagged if a walker step is called with a nil predicate.
var ErrInvalidFilter = errors.New("filter stage is invalid")

// ErrEmptyTree is flagged if a Walker is called with an empty tree. Refer to
// the documentation of NewWalker() for details about this scenario.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// Walker holds information for operating on trees: finding nodes and
// doing work on them. Clients usually create a Walker for a (sub-)tree
// to search for a selection of nodes matching certain criteria.
//
// A Walker will eventually return two client-level values:
// A slice of tree nodes and the first error occured. After an error,
// all subsequent steps are no-ops.
//
//    w := NewWalker(node)
//    nodes, err := w.DescendentsWith(p).Filter(q).Nodes()
type Walker[T comparable] struct {
	selection []*Node[T]
	err       error
}

// NewWalker creates a Walker for the initial node of a (sub-)tree.
// The first subsequent call to a node filter function will have this
// initial node as input.
//
// If initial is nil, NewWalker will return a nil-Walker, resulting
// in a NOP-chain of operations, resulting in an empty set of nodes
// and an error (ErrEmptyTree).
func NewWalker[T comparable](initial *Node[T]) *Walker[T] {
	if initial == nil {
		return nil
	}
	tracer().Debugf("new tree-walker, initial node = %v", initial)
	return &Walker[T]{selection: []*Node[T]{initial}}
}

// Nodes returns the current selection and the first error, if any.
func (w *Walker[T]) Nodes() ([]*Node[T], error) {
	if w == nil {
		return nil, ErrEmptyTree
	}
	return w.selection, w.err
}

func (w *Walker[T]) step(predicate Predicate[T], f func(*Node[T], Predicate[T]) []*Node[T]) *Walker[T] {
	if w == nil || w.err != nil {
		return w
	}
	if predicate == nil {
		return &Walker[T]{err: ErrInvalidFilter}
	}
	var selection []*Node[T]
	for _, n := range w.selection {
		selection = append(selection, f(n, predicate)...)
	}
	return &Walker[T]{selection: selection}
}

// ----------------------------------------------------------------------

// Predicate is a function type to match against nodes of a tree.
// Is is used as an argument for various Walker functions to
// collect a selection of nodes.
type Predicate[T comparable] func(test *Node[T]) bool

// Whatever is a predicate to match anything (see type Predicate).
// It is useful to match the first node in a given direction.
func Whatever[T comparable]() Predicate[T] {
	return func(*Node[T]) bool {
		return true
	}
}

// NodeIsLeaf is a predicate to match leafs of a tree.
func NodeIsLeaf[T comparable]() Predicate[T] {
	return func(test *Node[T]) bool {
		return test.ChildCount() == 0
	}
}

// ----------------------------------------------------------------------

// Parent selects the parents of all selected nodes. Root nodes do not
// contribute to the new selection.
//
// If w is nil, Parent will return nil.
func (w *Walker[T]) Parent() *Walker[T] {
	return w.step(Whatever[T](), func(n *Node[T], _ Predicate[T]) []*Node[T] {
		if p := n.Parent(); p != nil {
			return []*Node[T]{p}
		}
		return nil
	})
}

// AncestorWith finds the nearest ancestor matching the given predicate,
// for every selected node. The search does not include the start node.
//
// If w is nil, AncestorWith will return nil.
func (w *Walker[T]) AncestorWith(predicate Predicate[T]) *Walker[T] {
	return w.step(predicate, ancestorWith[T])
}

func ancestorWith[T comparable](node *Node[T], predicate Predicate[T]) []*Node[T] {
	for anc := node.Parent(); anc != nil; anc = anc.Parent() {
		if predicate(anc) {
			return []*Node[T]{anc}
		}
	}
	return nil // no matching ancestor found, not an error
}

// DescendentsWith finds descendents matching a predicate, in document order.
// The search does not include the start node.
//
// If w is nil, DescendentsWith will return nil.
func (w *Walker[T]) DescendentsWith(predicate Predicate[T]) *Walker[T] {
	return w.step(predicate, func(n *Node[T], p Predicate[T]) []*Node[T] {
		return preOrder(n, p, false)
	})
}

// SubtreeWith finds nodes of the subtree matching a predicate, in document
// order. The search includes the start node.
//
// If w is nil, SubtreeWith will return nil.
func (w *Walker[T]) SubtreeWith(predicate Predicate[T]) *Walker[T] {
	return w.step(predicate, func(n *Node[T], p Predicate[T]) []*Node[T] {
		return preOrder(n, p, true)
	})
}

// AllDescendents traverses all descendents.
// This is just a wrapper around `w.DescendentsWith(Whatever)`.
//
// If w is nil, AllDescendents will return nil.
func (w *Walker[T]) AllDescendents() *Walker[T] {
	return w.DescendentsWith(Whatever[T]())
}

// Filter keeps the selected nodes matching a predicate.
//
// If w is nil, Filter will return nil.
func (w *Walker[T]) Filter(predicate Predicate[T]) *Walker[T] {
	return w.step(predicate, func(n *Node[T], p Predicate[T]) []*Node[T] {
		if p(n) {
			return []*Node[T]{n}
		}
		return nil
	})
}

// preOrder walks a subtree with an explicit stack. Children are pushed in
// reverse, so they are popped in child order.
func preOrder[T comparable](start *Node[T], predicate Predicate[T], inclusive bool) []*Node[T] {
	var result []*Node[T]
	stack := []*Node[T]{start}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if (n != start || inclusive) && predicate(n) {
			result = append(result, n)
		}
		for i := n.ChildCount() - 1; i >= 0; i-- {
			stack = append(stack, n.children[i])
		}
	}
	return result
}

package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
)

/*
We manage a tree of mutable nodes. Each node carries a payload of type parameter T.
Nodes maintain a slice of children, and every child knows its parent.

Trees are built once and then read; there is no locking. Clients which modify
a tree while walking it are on their own.
*/

// Node is the base type our tree is built of.
type Node[T comparable] struct {
	parent   *Node[T]   // parent node of this node
	children []*Node[T] // children in order, never containing nil
	Payload  T          // nodes may carry a payload of arbitrary type
}

// NewNode creates a new tree node with a given payload.
func NewNode[T comparable](payload T) *Node[T] {
	return &Node[T]{Payload: payload}
}

func (node *Node[T]) String() string {
	return fmt.Sprintf("(Node #ch=%d %v)", node.ChildCount(), node.Payload)
}

// AddChild appends a new child node.
// The newly inserted node is connected to this node as its parent.
// It returns the parent node to allow for chaining.
func (node *Node[T]) AddChild(ch *Node[T]) *Node[T] {
	if ch != nil {
		ch.Isolate()
		node.children = append(node.children, ch)
		ch.parent = node
	}
	return node
}

// InsertChildAt inserts a new child node at position i, shifting children
// at later positions. If i is beyond the last child, ch is appended.
// It returns the parent node to allow for chaining.
func (node *Node[T]) InsertChildAt(i int, ch *Node[T]) *Node[T] {
	if ch == nil {
		return node
	}
	if i < 0 || i >= len(node.children) {
		return node.AddChild(ch)
	}
	ch.Isolate()
	node.children = append(node.children, nil)   // make room for one child
	copy(node.children[i+1:], node.children[i:]) // shift i+1..n
	node.children[i] = ch
	ch.parent = node
	return node
}

// Parent returns the parent node or nil (for the root of the tree).
func (node *Node[T]) Parent() *Node[T] {
	if node == nil {
		return nil
	}
	return node.parent
}

// Isolate removes a node from its parent.
// Isolate returns the isolated node.
func (node *Node[T]) Isolate() *Node[T] {
	if node == nil || node.parent == nil {
		return node
	}
	p := node.parent
	if i := p.IndexOfChild(node); i >= 0 {
		p.children = append(p.children[:i], p.children[i+1:]...)
	}
	node.parent = nil
	return node
}

// ChildCount returns the number of children-nodes for a node.
func (node *Node[T]) ChildCount() int {
	if node == nil {
		return 0
	}
	return len(node.children)
}

// Child returns the child at position n.
func (node *Node[T]) Child(n int) (*Node[T], bool) {
	if n < 0 || node.ChildCount() <= n {
		return nil, false
	}
	return node.children[n], true
}

// Children returns a copy of the slice of children of a node.
func (node *Node[T]) Children() []*Node[T] {
	if node.ChildCount() == 0 {
		return nil
	}
	children := make([]*Node[T], len(node.children))
	copy(children, node.children)
	return children
}

// IndexOfChild returns the index of a child within the list of children
// of its parent, or -1.
func (node *Node[T]) IndexOfChild(ch *Node[T]) int {
	for i, child := range node.children {
		if ch == child {
			return i
		}
	}
	return -1
}

// Depth is the number of ancestors of a node.
func (node *Node[T]) Depth() int {
	d := 0
	for p := node.Parent(); p != nil; p = p.Parent() {
		d++
	}
	return d
}

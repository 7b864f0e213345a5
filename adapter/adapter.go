/*
Package adapter defines the contract between tree traversal and a rendering
framework.

Overview

Traversal never looks into the representation a framework uses for its
rendered trees. It consumes four operations only:

   Normalize(handle)        // public or internal handle → Node
   ChildrenOf(node)         // ordered children of a node
   FindAll(root, test)      // all nodes of a subtree passing a test, in document order
   RenderedElementOf(node)  // concrete document element, or nil if nothing rendered

Handles come in two flavors: public handles, which clients hold, and the
internal representation, which traversal works on. An Adapter normalizes
either flavor to a Node. Handles which cannot be normalized are rejected
with ErrUnsupportedShape at the boundary, never deep inside a traversal.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package adapter

import (
	"errors"

	"github.com/npillmayer/comptest/element"
	"golang.org/x/net/html"
)

// ErrUnsupportedShape is returned if a handle cannot be normalized to a Node.
var ErrUnsupportedShape = errors.New("unsupported instance shape")

// Handle is an opaque reference into a rendered tree, owned by the
// rendering framework.
type Handle interface{}

// Node is a normalized handle. Implementations must be comparable with ==,
// as traversal identifies nodes by equality.
type Node interface {
	Element() *element.Element // the element this node was rendered from
	IsHost() bool              // does the node correspond to a document element?
}

// Test is a raw boolean test on nodes.
type Test func(Node) bool

// Adapter gives traversal read access to a rendered tree.
type Adapter interface {
	// Normalize maps a public or internal handle to a Node. It returns an error
	// wrapping ErrUnsupportedShape if h cannot be normalized.
	Normalize(h Handle) (Node, error)
	// ChildrenOf returns the children of n in order.
	ChildrenOf(n Node) []Node
	// FindAll returns all nodes of the subtree rooted at root (including root)
	// which pass test, in document order.
	FindAll(root Node, test Test) []Node
	// RenderedElementOf returns the document element n renders to, or nil if n
	// renders nothing.
	RenderedElementOf(n Node) *html.Node
}

// ElementOf returns the element of n; nil for a nil node.
func ElementOf(n Node) *element.Element {
	if n == nil {
		return nil
	}
	return n.Element()
}

// TypeName returns the tag name of a host node or the display name of a
// composite node.
func TypeName(n Node) string {
	return ElementOf(n).TypeName()
}

// PropsOf returns the properties of n. It returns an empty mapping for a nil
// node.
func PropsOf(n Node) element.Props {
	return ElementOf(n).Properties()
}

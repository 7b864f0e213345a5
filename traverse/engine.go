package traverse

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"

	"github.com/npillmayer/comptest/adapter"
	"github.com/npillmayer/comptest/element"
)

// ErrNilPredicate is returned if a search is started without a predicate.
var ErrNilPredicate = errors.New("predicate is nil")

// Engine performs traversals on trees exposed through an adapter.
// Engines hold no state besides the adapter and may be shared, as long as
// the underlying trees are not modified during a traversal.
type Engine struct {
	adapter adapter.Adapter
}

// New creates an engine for an adapter. a must not be nil.
func New(a adapter.Adapter) *Engine {
	if a == nil {
		panic("traverse.New called with nil adapter")
	}
	return &Engine{adapter: a}
}

// Adapter returns the adapter of an engine.
func (e *Engine) Adapter() adapter.Adapter {
	return e.adapter
}

// InstEqual is true if the elements of two nodes are equal, comparing
// property values with eq (element.DeepEqual if eq is nil).
func InstEqual(a, b adapter.Node, eq element.Comparator) bool {
	return element.Equal(adapter.ElementOf(a), adapter.ElementOf(b), eq)
}

// InstMatches is true if the element of a leniently matches the element of b,
// see element.Match.
func InstMatches(a, b adapter.Node, eq element.Comparator) bool {
	return element.Match(adapter.ElementOf(a), adapter.ElementOf(b), eq)
}

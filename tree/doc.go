/*
Package tree implements an all-purpose tree type.

Trees are made of nodes, each carrying a payload and a list of children.
Children link back to their parent, so walking upwards is as cheap as
walking downwards.

Walkers

Clients search trees with a Walker. A Walker holds a selection of nodes,
initially a single start node, and supports a small set of chained
operations on the selection, similar in concept to JQuery:

   Parent()                     // parents of all selected nodes
   AncestorWith(predicate)      // nearest ancestor with a given predicate
   DescendentsWith(predicate)   // descendents with a given predicate
   SubtreeWith(predicate)       // like DescendentsWith, but including the start node
   Filter(predicate)            // filter the selection

Walkers operate synchronously. Descendents are always selected in document
order (pre-order: parents before children, siblings in child order).

   nodes, err := tree.NewWalker(root).DescendentsWith(isLeaf).Nodes()

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'comptest.tree'.
func tracer() tracing.Trace {
	return tracing.Select("comptest.tree")
}

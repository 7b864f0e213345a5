/*
Package traverse finds nodes of rendered component trees by selector.

Overview

Traversal works on any tree exposed through an adapter.Adapter. An Engine
is created for an adapter and offers three groups of operations:

Predicates test single nodes: HasType, HasClassName, HasID, HasProperty and
MatchesProps. Predicates return false for nil nodes.

Compile turns a selector into a Predicate. Selectors are strings, property
mappings or component types:

   "div"            // tag name or display name
   MyComponent      // a *element.Component, matched by identity
   ".active"        // class name of a host node
   "#main"          // id of a host node
   "[disabled]"     // property present
   "[role=button]"  // property value, see HasProperty for coercion
   "[title='ok']"   // quoted values match string properties only
   "div.item#x"     // compound selector: all clauses have to match
   element.Props{"title": "ok"}  // host nodes having all of these properties

Clauses of a compound selector may as well be separated by blanks or commas;
all clauses apply to the same node. Combinators (">", "+", "~") and pseudo
classes are not supported and make a selector invalid.

FindAll and Find search a subtree in document order. PathTo and ParentsOf
compute the chain of ancestors between a root and a node, Closest the
nearest ancestor-or-self matching a selector.

Errors

Compile rejects unsupported selectors with ErrUnsupportedSelector and
malformed selector strings with ErrInvalidSelector. Handles which the
adapter cannot normalize result in adapter.ErrUnsupportedShape. Not finding
anything is never an error.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package traverse

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'comptest.traverse'.
func tracer() tracing.Trace {
	return tracing.Select("comptest.traverse")
}

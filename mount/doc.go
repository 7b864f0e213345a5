/*
Package mount is a reference implementation of adapter.Adapter.

Overview

Mount expands an element into a tree of instances: host elements become
host instances with a concrete document element (an *html.Node), text
elements become text instances, and components are rendered recursively
into their output. A component rendering nil has no children and no
document element.

Instances of components with state and of host elements carry a public
handle. Public handles, instances and roots are all accepted by the
adapter, which normalizes them to the instance they refer to.

The rendered document may be inspected as HTML or queried with CSS
selectors; the instance tree may be dumped for debugging.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package mount

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'comptest.mount'.
func tracer() tracing.Trace {
	return tracing.Select("comptest.mount")
}

/*
Package element describes the nodes of a component tree.

Overview

An Element is a declarative description of a node: its type, its properties
and its children. A type is either a host tag (e.g. "div"), which renders to
a concrete document element, or a Component, which renders to another
element. Components are identified by pointer, i.e. two components with the
same display name are distinct types.

Elements are values for the purpose of comparison: Equal and Match compare
two elements structurally, recursing into children. Leaf property values are
compared with a Comparator; DeepEqual is the default and compares functions
by reference.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package element

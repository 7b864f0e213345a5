package mount

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/comptest/element"
	"github.com/npillmayer/comptest/tree"
	"golang.org/x/net/html"
)

// Instance is a mounted node, the building block of the instance tree.
type Instance struct {
	tree.Node[*Instance] // we build on top of general purpose tree
	element              *element.Element
	dom                  *html.Node // document element for host and text instances
	public               *Public
}

func newInstance(el *element.Element) *Instance {
	inst := &Instance{element: el}
	inst.Payload = inst // Payload will always reference the instance itself
	return inst
}

// instanceOf gets the instance from a generic tree node.
func instanceOf(n *tree.Node[*Instance]) *Instance {
	if n == nil {
		return nil
	}
	return n.Payload
}

// Element returns the element an instance has been mounted from.
func (inst *Instance) Element() *element.Element {
	if inst == nil {
		return nil
	}
	return inst.element
}

// IsHost is true for instances of host elements.
func (inst *Instance) IsHost() bool {
	return inst.Element().IsHost()
}

// Public returns the public handle of an instance. Text instances and
// instances of stateless components do not have one.
func (inst *Instance) Public() *Public {
	if inst == nil {
		return nil
	}
	return inst.public
}

// DOM returns the document node of a host or text instance, nil otherwise.
func (inst *Instance) DOM() *html.Node {
	if inst == nil {
		return nil
	}
	return inst.dom
}

// Rendered returns the document node an instance renders to. For
// composite instances this is the document node of the rendered output.
// Rendered is nil if the instance renders nothing.
func (inst *Instance) Rendered() *html.Node {
	for inst != nil {
		if inst.dom != nil {
			return inst.dom
		}
		inst = instanceOf(firstChild(inst))
	}
	return nil
}

func firstChild(inst *Instance) *tree.Node[*Instance] {
	ch, _ := inst.Child(0)
	return ch
}

// ParentInstance returns the parent of an instance, or nil for the top
// instance.
func (inst *Instance) ParentInstance() *Instance {
	if inst == nil {
		return nil
	}
	return instanceOf(inst.Node.Parent())
}

// ChildInstances returns the children of an instance in order.
func (inst *Instance) ChildInstances() []*Instance {
	if inst == nil {
		return nil
	}
	children := inst.Node.Children()
	r := make([]*Instance, 0, len(children))
	for _, ch := range children {
		r = append(r, instanceOf(ch))
	}
	return r
}

func (inst *Instance) String() string {
	if inst == nil {
		return "<nil instance>"
	}
	return fmt.Sprintf("instance%s", inst.element)
}

// --- Public handles --------------------------------------------------------

// Public is the handle clients hold for a mounted host element or
// component. A Public without a back-reference to its instance cannot be
// used for traversal.
type Public struct {
	internal *Instance
}

// Instance returns the instance a public handle refers to, if any.
func (p *Public) Instance() *Instance {
	if p == nil {
		return nil
	}
	return p.internal
}

func (p *Public) String() string {
	if p.Instance() == nil {
		return "public<detached>"
	}
	return fmt.Sprintf("public%s", p.internal.element)
}

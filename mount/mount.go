package mount

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"

	"github.com/npillmayer/comptest/element"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNilElement is returned if Mount is called without an element.
var ErrNilElement = errors.New("cannot mount nil element")

// ErrRenderDepth is returned if components nest deeper than the configured
// limit, usually because a component renders itself.
var ErrRenderDepth = errors.New("maximum render depth exceeded")

// DefaultMaxDepth is the default limit for the depth of an instance tree.
const DefaultMaxDepth = 512

// Option configures mounting.
type Option func(*options)

type options struct {
	maxDepth  int
	container *html.Node
}

// WithMaxDepth sets the limit for the depth of the instance tree.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		if depth > 0 {
			o.maxDepth = depth
		}
	}
}

// WithContainer attaches the rendered document to an existing node, instead
// of to a fresh document node.
func WithContainer(n *html.Node) Option {
	return func(o *options) {
		if n != nil {
			o.container = n
		}
	}
}

// Mount expands el into an instance tree and renders its document.
func Mount(el *element.Element, opts ...Option) (*Root, error) {
	if el == nil {
		return nil, ErrNilElement
	}
	o := options{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&o)
	}
	if o.container == nil {
		o.container = &html.Node{Type: html.DocumentNode}
	}
	m := mounter{maxDepth: o.maxDepth}
	top, err := m.mount(el, 0)
	if err != nil {
		tracer().Errorf("mounting %v failed: %v", el, err)
		return nil, err
	}
	if dom := top.Rendered(); dom != nil {
		o.container.AppendChild(dom)
	}
	tracer().Debugf("mounted %v", el)
	return &Root{top: top, container: o.container}, nil
}

type mounter struct {
	maxDepth int
}

func (m mounter) mount(el *element.Element, depth int) (*Instance, error) {
	if depth > m.maxDepth {
		return nil, fmt.Errorf("%w: %d levels at %v", ErrRenderDepth, m.maxDepth, el)
	}
	inst := newInstance(el)
	switch {
	case el.IsText():
		inst.dom = &html.Node{Type: html.TextNode, Data: el.TextContent()}
		return inst, nil
	case el.IsHost():
		return m.mountHost(inst, depth)
	}
	c, ok := el.Component()
	if !ok {
		return nil, fmt.Errorf("cannot mount element of type %T", el.Type)
	}
	if !c.Stateless {
		inst.public = &Public{internal: inst}
	}
	if c.Render == nil {
		return inst, nil
	}
	out := c.Render(el.Properties(), el.Children)
	if out == nil { // component renders nothing
		return inst, nil
	}
	child, err := m.mount(out, depth+1)
	if err != nil {
		return nil, err
	}
	inst.AddChild(&child.Node)
	return inst, nil
}

func (m mounter) mountHost(inst *Instance, depth int) (*Instance, error) {
	el := inst.element
	tag := el.TypeName()
	inst.dom = &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attributes(el.Props),
	}
	inst.public = &Public{internal: inst}
	for _, ch := range el.Children {
		if ch == nil {
			continue
		}
		child, err := m.mount(ch, depth+1)
		if err != nil {
			return nil, err
		}
		inst.AddChild(&child.Node)
		if dom := child.Rendered(); dom != nil {
			inst.dom.AppendChild(dom)
		}
	}
	return inst, nil
}

package element

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"
	"strings"
)

// Type identifies what an element is. It is either a Tag or a *Component.
type Type interface {
	Name() string // tag name or display name
}

// Tag is the type of host elements, e.g. "div" or "span".
type Tag string

// Name returns the tag name.
func (t Tag) Name() string {
	return string(t)
}

// TextTag is the type of text elements.
const TextTag Tag = "#text"

// textKey is the property holding the content of a text element.
const textKey = "#text"

// RenderFunc renders a component, given its properties and children.
// Returning nil means: render nothing.
type RenderFunc func(props Props, children []*Element) *Element

// Component is a composite type. Instances of a component do not render to
// a document element themselves, but render to another element.
//
// Components are compared by identity. Stateless components correspond to
// plain render functions; others have a public instance when mounted.
type Component struct {
	DisplayName string
	Stateless   bool
	Render      RenderFunc
}

// NewComponent creates a component type with a public instance.
func NewComponent(displayName string, render RenderFunc) *Component {
	return &Component{DisplayName: displayName, Render: render}
}

// NewStateless creates a stateless component type.
func NewStateless(displayName string, render RenderFunc) *Component {
	return &Component{DisplayName: displayName, Stateless: true, Render: render}
}

// Name returns the display name of a component.
func (c *Component) Name() string {
	if c == nil {
		return ""
	}
	return c.DisplayName
}

func (c *Component) String() string {
	return fmt.Sprintf("<%s/>", c.Name())
}

// --- Props -----------------------------------------------------------------

// Props is the mapping of property keys to values for an element.
type Props map[string]interface{}

// Get returns the value for key and whether the key is present.
func (p Props) Get(key string) (interface{}, bool) {
	if p == nil {
		return nil, false
	}
	v, ok := p[key]
	return v, ok
}

// Keys returns the property keys in sorted order.
func (p Props) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// --- Elements --------------------------------------------------------------

// Element is the description of a node of a component tree.
type Element struct {
	Type     Type
	Key      string
	Props    Props
	Children []*Element
}

// New creates an element of type t. nil children are dropped.
func New(t Type, props Props, children ...*Element) *Element {
	el := &Element{Type: t, Props: props}
	for _, ch := range children {
		if ch != nil {
			el.Children = append(el.Children, ch)
		}
	}
	return el
}

// H creates a host element for a tag.
func H(tag string, props Props, children ...*Element) *Element {
	return New(Tag(tag), props, children...)
}

// Text creates a text element.
func Text(s string) *Element {
	return &Element{Type: TextTag, Props: Props{textKey: s}}
}

// WithKey sets the key of an element and returns the element.
func (el *Element) WithKey(key string) *Element {
	el.Key = key
	return el
}

// TypeName returns the tag name of a host element or the display name
// of a component. A nil element has an empty type name.
func (el *Element) TypeName() string {
	if el == nil || el.Type == nil {
		return ""
	}
	return el.Type.Name()
}

// Properties returns the properties of an element. It never returns nil,
// not even for a nil element.
func (el *Element) Properties() Props {
	if el == nil || el.Props == nil {
		return Props{}
	}
	return el.Props
}

// Component returns the component type of el, if el is a composite element.
func (el *Element) Component() (*Component, bool) {
	if el == nil {
		return nil, false
	}
	c, ok := el.Type.(*Component)
	return c, ok && c != nil
}

// IsHost is true for elements of a tag type other than text.
func (el *Element) IsHost() bool {
	if el == nil {
		return false
	}
	tag, ok := el.Type.(Tag)
	return ok && tag != TextTag
}

// IsText is true for text elements.
func (el *Element) IsText() bool {
	return el != nil && el.Type == TextTag
}

// TextContent returns the text of a text element, and "" for other elements.
func (el *Element) TextContent() string {
	if !el.IsText() {
		return ""
	}
	s, _ := el.Props[textKey].(string)
	return s
}

func (el *Element) String() string {
	if el == nil {
		return "<nil>"
	}
	if el.IsText() {
		return fmt.Sprintf("%q", el.TextContent())
	}
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(el.TypeName())
	for _, k := range el.Props.Keys() {
		fmt.Fprintf(&b, " %s=%s", k, formatValue(el.Props[k]))
	}
	b.WriteString("/>")
	return b.String()
}

func formatValue(v interface{}) string {
	switch x := v.(type) {
	case string:
		return fmt.Sprintf("%q", x)
	case nil:
		return "{nil}"
	default:
		if isFunc(v) {
			return "{func}"
		}
		return fmt.Sprintf("{%v}", x)
	}
}

// AnimatedString is an object-valued attribute, as SVG elements use for
// their class. The base value is what gets rendered.
type AnimatedString struct {
	BaseVal string
	AnimVal string
}

func (s AnimatedString) String() string {
	return s.BaseVal
}

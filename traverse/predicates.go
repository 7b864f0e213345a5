package traverse

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/comptest/adapter"
	"github.com/npillmayer/comptest/element"
	"golang.org/x/net/html"
)

// Predicate is a boolean test on nodes.
type Predicate func(adapter.Node) bool

// And combines predicates. The result matches if all of them match;
// evaluation stops at the first one failing. And() matches everything.
func And(predicates ...Predicate) Predicate {
	return func(n adapter.Node) bool {
		for _, p := range predicates {
			if !p(n) {
				return false
			}
		}
		return true
	}
}

// HasClassName is true if the document element n renders to lists className
// in its class attribute. Composite nodes are resolved to their rendered
// element; nodes rendering nothing never match.
func (e *Engine) HasClassName(n adapter.Node, className string) bool {
	if n == nil || className == "" {
		return false
	}
	dom := e.adapter.RenderedElementOf(n)
	if dom == nil {
		return false
	}
	for _, c := range strings.Fields(attribute(dom, "class")) {
		if c == className {
			return true
		}
	}
	return false
}

// HasID is true for host nodes rendering an element with the given id.
func (e *Engine) HasID(n adapter.Node, id string) bool {
	if n == nil || !n.IsHost() {
		return false
	}
	dom := e.adapter.RenderedElementOf(n)
	if dom == nil {
		return false
	}
	return attribute(dom, "id") == id
}

func attribute(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

// HasType tests the type of a node. t is either a name (string or
// element.Tag), which is compared to the tag name or display name of n, or
// a component, which has to be the type of n. Any other t never matches.
func HasType(n adapter.Node, t interface{}) bool {
	if n == nil {
		return false
	}
	switch x := t.(type) {
	case string:
		return x != "" && adapter.TypeName(n) == x
	case element.Tag:
		return x != "" && adapter.TypeName(n) == string(x)
	case *element.Component:
		if x == nil {
			return false
		}
		return isCompositeWithType(n, x) || isStatelessWithType(n, x)
	}
	return false
}

func isCompositeWithType(n adapter.Node, c *element.Component) bool {
	got, ok := adapter.ElementOf(n).Component()
	return ok && !got.Stateless && got == c
}

func isStatelessWithType(n adapter.Node, c *element.Component) bool {
	got, ok := adapter.ElementOf(n).Component()
	return ok && got.Stateless && got == c
}

// HasPropertyKey is true if n has a non-nil property key.
func HasPropertyKey(n adapter.Node, key string) bool {
	if n == nil {
		return false
	}
	v, ok := adapter.PropsOf(n).Get(key)
	return ok && v != nil
}

// HasProperty is true if n has a property key with a value equal to value.
// A quoted value ("x" or 'x') matches string properties only. Otherwise
// numbers compare numerically, and other values compare to the string form
// of the property.
func HasProperty(n adapter.Node, key string, value string) bool {
	if n == nil {
		return false
	}
	v, ok := adapter.PropsOf(n).Get(key)
	if !ok || v == nil {
		return false
	}
	return propertyMatches(v, value)
}

func propertyMatches(v interface{}, value string) bool {
	value = strings.TrimSpace(value)
	if s, quoted := unquote(value); quoted {
		str, ok := v.(string)
		return ok && str == s
	}
	if f, ok := toFloat(v); ok {
		if g, err := strconv.ParseFloat(value, 64); err == nil {
			return f == g
		}
	}
	s, ok := stringify(v)
	return ok && s == value
}

func unquote(s string) (string, bool) {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1], true
	}
	return s, false
}

func toFloat(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}

func stringify(v interface{}) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case bool:
		return strconv.FormatBool(x), true
	case fmt.Stringer:
		return x.String(), true
	}
	if f, ok := toFloat(v); ok {
		return strconv.FormatFloat(f, 'g', -1, 64), true
	}
	return "", false
}

// MatchesProps is true for host nodes having every property of props with
// an equal value. Additional properties of n are ignored.
func MatchesProps(n adapter.Node, props element.Props) bool {
	if n == nil || !n.IsHost() {
		return false
	}
	have := adapter.PropsOf(n)
	for k, want := range props {
		v, ok := have[k]
		if !ok || !element.DeepEqual(v, want) {
			return false
		}
	}
	return true
}

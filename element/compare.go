package element

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// Comparator decides if two property values are equal.
type Comparator func(a, b interface{}) bool

var deepEqualOptions = []cmp.Option{
	cmp.FilterValues(bothFuncs, cmp.Comparer(sameFunc)),
	cmp.Exporter(func(reflect.Type) bool { return true }),
}

// DeepEqual compares two values structurally. Functions are equal if they
// refer to the same code.
func DeepEqual(a, b interface{}) bool {
	if isFunc(a) || isFunc(b) {
		return bothFuncs(a, b) && sameFunc(a, b)
	}
	return cmp.Equal(a, b, deepEqualOptions...)
}

func isFunc(v interface{}) bool {
	return v != nil && reflect.ValueOf(v).Kind() == reflect.Func
}

func bothFuncs(a, b interface{}) bool {
	return isFunc(a) && isFunc(b)
}

func sameFunc(a, b interface{}) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

// Equal is true if a and b have the same type, equal properties and
// equal children. Property values are compared with eq, which defaults to
// DeepEqual.
func Equal(a, b *Element, eq Comparator) bool {
	if eq == nil {
		eq = DeepEqual
	}
	return compareElements(a, b, eq, false)
}

// Match is a lenient version of Equal: properties of a have to be present
// and equal in b, but b may carry additional properties. Properties with a
// nil value are treated as absent, and adjacent text children are merged
// before children are compared.
func Match(a, b *Element, eq Comparator) bool {
	if eq == nil {
		eq = DeepEqual
	}
	return compareElements(a, b, eq, true)
}

func compareElements(a, b *Element, eq Comparator, loose bool) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	left, right := a.Properties(), b.Properties()
	if loose {
		left, right = withoutNilValues(left), withoutNilValues(right)
	}
	for k, lv := range left {
		rv, ok := right[k]
		if !ok || !eq(lv, rv) {
			return false
		}
	}
	if !compareChildren(a.Children, b.Children, eq, loose) {
		return false
	}
	return loose || len(left) == len(right)
}

func compareChildren(a, b []*Element, eq Comparator, loose bool) bool {
	a, b = simplify(a, loose), simplify(b, loose)
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !compareElements(a[i], b[i], eq, loose) {
			return false
		}
	}
	return true
}

// simplify drops nil children. In loose mode adjacent text children are
// merged into one.
func simplify(children []*Element, loose bool) []*Element {
	r := make([]*Element, 0, len(children))
	for _, ch := range children {
		if ch == nil {
			continue
		}
		if loose && ch.IsText() && len(r) > 0 && r[len(r)-1].IsText() {
			r[len(r)-1] = Text(r[len(r)-1].TextContent() + ch.TextContent())
			continue
		}
		r = append(r, ch)
	}
	return r
}

func withoutNilValues(p Props) Props {
	r := make(Props, len(p))
	for k, v := range p {
		if v != nil {
			r[k] = v
		}
	}
	return r
}

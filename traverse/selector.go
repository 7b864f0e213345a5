package traverse

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/npillmayer/comptest/adapter"
	"github.com/npillmayer/comptest/element"
)

// ErrUnsupportedSelector is returned for selectors of an unsupported kind:
// nil, arrays and slices, empty mappings, and other primitive values.
var ErrUnsupportedSelector = errors.New("selector expects a string, a non-empty property mapping or a component")

// ErrInvalidSelector is returned for selector strings which cannot be parsed.
var ErrInvalidSelector = errors.New("invalid selector")

type selectorKind int

const (
	typeSelector selectorKind = iota
	classSelector
	idSelector
	propSelector
)

// selectorType classifies a simple selector by its first character.
func selectorType(s string) selectorKind {
	switch {
	case strings.HasPrefix(s, "."):
		return classSelector
	case strings.HasPrefix(s, "#"):
		return idSelector
	case strings.HasPrefix(s, "["):
		return propSelector
	}
	return typeSelector
}

// Compile turns a selector into a predicate. See the package documentation
// for the selector forms supported. A class clause ".x" matches host nodes
// only, whereas HasClassName also resolves composite nodes to the document
// node they render.
func (e *Engine) Compile(selector interface{}) (Predicate, error) {
	switch s := selector.(type) {
	case nil:
		return nil, fmt.Errorf("%w: got nil", ErrUnsupportedSelector)
	case string:
		return e.compileString(s)
	case element.Tag:
		if s == "" {
			return nil, fmt.Errorf("%w: empty tag", ErrInvalidSelector)
		}
		return func(n adapter.Node) bool { return HasType(n, s) }, nil
	case *element.Component:
		if s == nil {
			return nil, fmt.Errorf("%w: got nil component", ErrUnsupportedSelector)
		}
		return func(n adapter.Node) bool { return HasType(n, s) }, nil
	case element.Props:
		return compileProps(s)
	}
	v := reflect.ValueOf(selector)
	switch v.Kind() {
	case reflect.Array, reflect.Slice:
		return nil, fmt.Errorf("%w: got %T", ErrUnsupportedSelector, selector)
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w: got %T", ErrUnsupportedSelector, selector)
		}
		props := make(element.Props, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			props[iter.Key().String()] = iter.Value().Interface()
		}
		return compileProps(props)
	}
	return nil, fmt.Errorf("%w: got %T", ErrUnsupportedSelector, selector)
}

// MustCompile is like Compile, but panics if the selector cannot be compiled.
func (e *Engine) MustCompile(selector interface{}) Predicate {
	p, err := e.Compile(selector)
	if err != nil {
		panic(err)
	}
	return p
}

func compileProps(props element.Props) (Predicate, error) {
	if len(props) == 0 {
		return nil, fmt.Errorf("%w: got an empty mapping", ErrUnsupportedSelector)
	}
	return func(n adapter.Node) bool { return MatchesProps(n, props) }, nil
}

func (e *Engine) compileString(selector string) (Predicate, error) {
	clauses, err := splitSelector(selector)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("selector %q has clauses %q", selector, clauses)
	switch len(clauses) {
	case 0:
		return nil, fmt.Errorf("%w: %q is empty", ErrInvalidSelector, selector)
	case 1:
		return e.compileSimple(clauses[0])
	}
	predicates := make([]Predicate, len(clauses))
	for i, c := range clauses {
		if predicates[i], err = e.compileSimple(c); err != nil {
			return nil, err
		}
	}
	return And(predicates...), nil
}

func (e *Engine) compileSimple(s string) (Predicate, error) {
	switch selectorType(s) {
	case classSelector:
		className := s[1:]
		if className == "" {
			return nil, fmt.Errorf("%w: missing class name in %q", ErrInvalidSelector, s)
		}
		return func(n adapter.Node) bool {
			return n != nil && n.IsHost() && e.HasClassName(n, className)
		}, nil
	case idSelector:
		id := s[1:]
		if id == "" {
			return nil, fmt.Errorf("%w: missing id in %q", ErrInvalidSelector, s)
		}
		return func(n adapter.Node) bool { return e.HasID(n, id) }, nil
	case propSelector:
		key, value, hasValue, err := parseAttribute(s)
		if err != nil {
			return nil, err
		}
		if !hasValue {
			return func(n adapter.Node) bool { return HasPropertyKey(n, key) }, nil
		}
		return func(n adapter.Node) bool { return HasProperty(n, key, value) }, nil
	}
	// selector is a string. match to tag name or display name
	if !typeName.MatchString(s) {
		return nil, fmt.Errorf("%w: unsupported clause %q", ErrInvalidSelector, s)
	}
	return func(n adapter.Node) bool { return HasType(n, s) }, nil
}

var (
	propertyKey = regexp.MustCompile(`^[a-zA-Z][a-zA-Z_\d\-:]*$`)
	typeName    = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z_\d\-]*$`)
)

// parseAttribute splits "[key]" or "[key=value]". The value is everything up
// to the closing bracket.
func parseAttribute(s string) (key, value string, hasValue bool, err error) {
	if len(s) < 2 || !strings.HasSuffix(s, "]") {
		return "", "", false, fmt.Errorf("%w: unterminated attribute clause %q", ErrInvalidSelector, s)
	}
	key, value, hasValue = strings.Cut(s[1:len(s)-1], "=")
	key = strings.TrimSpace(key)
	if !propertyKey.MatchString(key) {
		return "", "", false, fmt.Errorf("%w: bad property key in %q", ErrInvalidSelector, s)
	}
	return key, value, hasValue, nil
}

package mount

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/comptest/element"
	"golang.org/x/net/html"
)

// Property keys which are renamed when rendered as attributes.
var attributeNames = map[string]string{
	"className": "class",
	"htmlFor":   "for",
}

// Property keys which never render as attributes.
var nonAttributes = map[string]bool{
	"children":                true,
	"key":                     true,
	"ref":                     true,
	"dangerouslySetInnerHTML": true,
}

// attributes renders host properties to document attributes, in key order.
// Functions (event handlers), nil and false values are not rendered.
func attributes(props element.Props) []html.Attribute {
	var attrs []html.Attribute
	for _, k := range props.Keys() {
		if nonAttributes[k] {
			continue
		}
		v, ok := attributeValue(k, props[k])
		if !ok {
			continue
		}
		name := k
		if n, renamed := attributeNames[k]; renamed {
			name = n
		}
		attrs = append(attrs, html.Attribute{Key: strings.ToLower(name), Val: v})
	}
	return attrs
}

func attributeValue(key string, v interface{}) (string, bool) {
	if key == "style" {
		return styleValue(v)
	}
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		return x, true
	case bool:
		return "", x
	case element.AnimatedString:
		return x.BaseVal, true
	case *element.AnimatedString:
		if x == nil {
			return "", false
		}
		return x.BaseVal, true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprint(x), true
	case fmt.Stringer:
		return x.String(), true
	}
	return "", false
}

// styleValue renders a style property, given either as a declaration string
// or as a mapping of CSS properties to values. Declarations are normalized
// to "property: value;" form, separated by a single blank.
func styleValue(v interface{}) (string, bool) {
	var text string
	switch x := v.(type) {
	case string:
		text = x
	case element.Props:
		text = declarations(x)
	case map[string]interface{}:
		text = declarations(element.Props(x))
	case map[string]string:
		p := make(element.Props, len(x))
		for k, s := range x {
			p[k] = s
		}
		text = declarations(p)
	default:
		return "", false
	}
	// the parser loses the value of a final declaration without ';'
	text = strings.TrimSpace(text)
	if text != "" && !strings.HasSuffix(text, ";") {
		text += ";"
	}
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		tracer().Infof("ignoring malformed style %q: %v", text, err)
		return "", false
	}
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		if d.Value == "" {
			tracer().Debugf("ignoring style property %q without value", d.Property)
			continue
		}
		s := d.Property + ": " + d.Value
		if d.Important {
			s += " !important"
		}
		parts = append(parts, s+";")
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, " "), true
}

func declarations(p element.Props) string {
	var b strings.Builder
	for _, k := range p.Keys() {
		if p[k] == nil {
			continue
		}
		fmt.Fprintf(&b, "%s: %v;", cssPropertyName(k), p[k])
	}
	return b.String()
}

// cssPropertyName maps camel-case keys ("marginTop") to CSS property names
// ("margin-top").
func cssPropertyName(key string) string {
	var b strings.Builder
	for _, r := range key {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

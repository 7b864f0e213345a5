package main

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/npillmayer/comptest/element"
	"github.com/npillmayer/comptest/mount"
	"gopkg.in/yaml.v3"
)

// ErrNoFixtures is returned if a glob pattern does not match any file.
var ErrNoFixtures = errors.New("no fixtures found")

// Fixture is a component tree described in YAML.
type Fixture struct {
	Name       string                   `yaml:"name"`
	Components map[string]ComponentDecl `yaml:"components"`
	Root       NodeDecl                 `yaml:"root"`
	types      map[string]*element.Component
}

// ComponentDecl declares a component. A component without a render
// template renders nothing.
type ComponentDecl struct {
	Stateless bool      `yaml:"stateless"`
	Render    *NodeDecl `yaml:"render"`
}

// NodeDecl describes an element. Exactly one of Type, Text and Slot is set.
type NodeDecl struct {
	Type     string                 `yaml:"type"`
	Key      string                 `yaml:"key"`
	Props    map[string]interface{} `yaml:"props"`
	Text     *string                `yaml:"text"`
	Slot     bool                   `yaml:"slot"`
	Children []NodeDecl             `yaml:"children"`
}

// loadFixtures reads all fixture files matching a glob pattern, in
// lexical order of their paths.
func loadFixtures(pattern string) ([]*Fixture, error) {
	paths, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("fixture pattern %q: %w", pattern, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w for %q", ErrNoFixtures, pattern)
	}
	sort.Strings(paths)
	fixtures := make([]*Fixture, 0, len(paths))
	for _, p := range paths {
		f, err := readFixture(p)
		if err != nil {
			return nil, err
		}
		fixtures = append(fixtures, f)
	}
	tracer().Debugf("loaded %d fixtures for %q", len(fixtures), pattern)
	return fixtures, nil
}

func readFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := parseFixture(data)
	if err != nil {
		return nil, fmt.Errorf("fixture %s: %w", path, err)
	}
	if f.Name == "" {
		f.Name = path
	}
	return f, nil
}

// parseFixture decodes and checks a fixture.
func parseFixture(data []byte) (*Fixture, error) {
	f := &Fixture{}
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, err
	}
	if err := f.Root.check(false); err != nil {
		return nil, fmt.Errorf("root: %w", err)
	}
	f.types = make(map[string]*element.Component, len(f.Components))
	for name, decl := range f.Components {
		if name == "" || element.Tag(name) == element.TextTag {
			return nil, fmt.Errorf("invalid component name %q", name)
		}
		if decl.Render != nil {
			if err := decl.Render.check(true); err != nil {
				return nil, fmt.Errorf("component %s: %w", name, err)
			}
			if decl.Render.Slot {
				return nil, fmt.Errorf("component %s: cannot render a bare slot", name)
			}
		}
		c := &element.Component{DisplayName: name, Stateless: decl.Stateless}
		if decl.Render != nil {
			c.Render = f.renderer(decl.Render)
		}
		f.types[name] = c
	}
	return f, nil
}

func (n *NodeDecl) check(inTemplate bool) error {
	kinds := 0
	if n.Type != "" {
		kinds++
	}
	if n.Text != nil {
		kinds++
	}
	if n.Slot {
		kinds++
		if !inTemplate {
			return errors.New("slot outside of a render template")
		}
	}
	if kinds != 1 {
		return errors.New("node needs exactly one of type, text or slot")
	}
	if n.Type == "" && (len(n.Children) > 0 || len(n.Props) > 0) {
		return errors.New("text and slot nodes cannot have props or children")
	}
	for i := range n.Children {
		if err := n.Children[i].check(inTemplate); err != nil {
			return err
		}
	}
	return nil
}

// Component returns a component declared by the fixture.
func (f *Fixture) Component(name string) (*element.Component, bool) {
	c, ok := f.types[name]
	return c, ok
}

// Element builds the root element of a fixture.
func (f *Fixture) Element() *element.Element {
	return f.instantiate(&f.Root, nil, nil)[0]
}

// Mount mounts the root element of a fixture.
func (f *Fixture) Mount() (*mount.Root, error) {
	return mount.Mount(f.Element(), mount.WithMaxDepth(settings.maxDepth))
}

// renderer creates the render function for a component template.
func (f *Fixture) renderer(tmpl *NodeDecl) element.RenderFunc {
	return func(props element.Props, children []*element.Element) *element.Element {
		return f.instantiate(tmpl, props, children)[0]
	}
}

// instantiate builds the elements for a node. Slots expand to the children
// of the component being rendered; any other node results in exactly one
// element.
func (f *Fixture) instantiate(n *NodeDecl, props element.Props, slot []*element.Element) []*element.Element {
	switch {
	case n.Slot:
		return slot
	case n.Text != nil:
		return []*element.Element{element.Text(substituteText(*n.Text, props))}
	}
	var t element.Type = element.Tag(n.Type)
	if c, ok := f.types[n.Type]; ok {
		t = c
	}
	var elProps element.Props
	if len(n.Props) > 0 {
		elProps = make(element.Props, len(n.Props))
		for k, v := range n.Props {
			elProps[k] = substitute(v, props)
		}
	}
	var children []*element.Element
	for i := range n.Children {
		children = append(children, f.instantiate(&n.Children[i], props, slot)...)
	}
	el := element.New(t, elProps, children...)
	if n.Key != "" {
		el.WithKey(n.Key)
	}
	return []*element.Element{el}
}

// substitute resolves "$name" to the property name of the component being
// rendered. "$$" escapes a leading dollar sign.
func substitute(v interface{}, props element.Props) interface{} {
	s, ok := v.(string)
	if !ok || len(s) < 2 || s[0] != '$' {
		return v
	}
	if s[1] == '$' {
		return s[1:]
	}
	v, _ = props.Get(s[1:])
	return v
}

func substituteText(s string, props element.Props) string {
	switch v := substitute(s, props).(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

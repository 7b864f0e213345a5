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

	"github.com/andybalholm/cascadia"
	"github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// Root is the result of mounting an element: the top instance of the
// instance tree and the document node the rendered output is attached to.
type Root struct {
	top       *Instance
	container *html.Node
}

// Instance returns the top instance.
func (r *Root) Instance() *Instance {
	if r == nil {
		return nil
	}
	return r.top
}

// Container returns the document node holding the rendered output.
func (r *Root) Container() *html.Node {
	if r == nil {
		return nil
	}
	return r.container
}

// HTML renders the document output of the top instance. A top instance
// rendering nothing results in an empty string.
func (r *Root) HTML() (string, error) {
	var b strings.Builder
	dom := r.Instance().Rendered()
	if dom == nil {
		return "", nil
	}
	if err := html.Render(&b, dom); err != nil {
		return "", fmt.Errorf("rendering HTML: %w", err)
	}
	return b.String(), nil
}

// QueryAll matches a CSS selector against the rendered document, in
// document order.
func (r *Root) QueryAll(selector string) ([]*html.Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid CSS selector %q: %w", selector, err)
	}
	return sel.MatchAll(r.Container()), nil
}

// Query returns the first document node matching a CSS selector, or nil.
func (r *Root) Query(selector string) (*html.Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid CSS selector %q: %w", selector, err)
	}
	return sel.MatchFirst(r.Container()), nil
}

// Debug returns an indented dump of the instance tree.
func (r *Root) Debug() string {
	return Debug(r.Instance())
}

// Debug returns an indented dump of the instance tree below inst.
func Debug(inst *Instance) string {
	if inst == nil {
		return "<nil>\n"
	}
	t := treeprint.New()
	t.SetValue(inst.Element().String())
	addBranches(t, inst)
	return t.String()
}

func addBranches(t treeprint.Tree, inst *Instance) {
	for _, ch := range inst.ChildInstances() {
		label := ch.Element().String()
		if ch.ChildCount() == 0 {
			t.AddNode(label)
			continue
		}
		addBranches(t.AddBranch(label), ch)
	}
}

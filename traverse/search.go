package traverse

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/comptest/adapter"
	"github.com/npillmayer/comptest/element"
	"github.com/npillmayer/comptest/maybe"
)

// Path is a chain of ancestors.
type Path = []adapter.Node

// FindAll returns all nodes of the subtree at root (including root) matching
// predicate, in document order. nil candidates never match.
func (e *Engine) FindAll(root adapter.Handle, predicate Predicate) ([]adapter.Node, error) {
	if predicate == nil {
		return nil, ErrNilPredicate
	}
	r, err := e.adapter.Normalize(root)
	if err != nil {
		return nil, err
	}
	return e.adapter.FindAll(r, func(n adapter.Node) bool {
		return n != nil && predicate(n)
	}), nil
}

// Find compiles selector and returns all nodes below root matching it, in
// document order.
func (e *Engine) Find(root adapter.Handle, selector interface{}) ([]adapter.Node, error) {
	p, err := e.Compile(selector)
	if err != nil {
		return nil, err
	}
	return e.FindAll(root, p)
}

// Is tests a single node against a selector.
func (e *Engine) Is(node adapter.Handle, selector interface{}) (bool, error) {
	p, err := e.Compile(selector)
	if err != nil {
		return false, err
	}
	n, err := e.adapter.Normalize(node)
	if err != nil {
		return false, err
	}
	return p(n), nil
}

// pathStep is a node visited during a path search, with the index of the
// step it has been reached from.
type pathStep struct {
	node   adapter.Node
	parent int
}

// PathTo returns the ancestors of target, starting at root and ending at the
// parent of target. The path is empty if target is root, and Nothing if
// target is not reachable from root.
//
// The search is depth-first, visiting children in order; every step
// remembers the step it came from, so the returned chain always is a real
// chain of parent/child links. Nodes appearing more than once in the tree
// are expanded once only.
func (e *Engine) PathTo(target, root adapter.Handle) (maybe.Maybe[Path], error) {
	t, err := e.adapter.Normalize(target)
	if err != nil {
		return nil, err
	}
	r, err := e.adapter.Normalize(root)
	if err != nil {
		return nil, err
	}
	steps := []pathStep{{node: r, parent: -1}}
	stack := []int{0}
	visited := map[adapter.Node]bool{r: true}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if steps[i].node == t {
			path := ancestry(steps, i)
			tracer().Debugf("path to %v has %d ancestors", t, len(path))
			return maybe.Just(path), nil
		}
		children := e.adapter.ChildrenOf(steps[i].node)
		for j := len(children) - 1; j >= 0; j-- {
			ch := children[j]
			if ch == nil || visited[ch] {
				continue
			}
			visited[ch] = true
			steps = append(steps, pathStep{node: ch, parent: i})
			stack = append(stack, len(steps)-1)
		}
	}
	tracer().Debugf("%v is not reachable from %v", t, r)
	return maybe.Nothing[Path](), nil
}

// ancestry follows the parent links of step i back to the root and returns
// the ancestors root first.
func ancestry(steps []pathStep, i int) Path {
	path := Path{}
	for p := steps[i].parent; p >= 0; p = steps[p].parent {
		path = append(path, steps[p].node)
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path
}

// ParentsOf returns the ancestors of node up to and including root, nearest
// first. The result is Nothing if node is not reachable from root.
func (e *Engine) ParentsOf(node, root adapter.Handle) (maybe.Maybe[Path], error) {
	path, err := e.PathTo(node, root)
	if err != nil {
		return nil, err
	}
	return path.Map(reversed), nil
}

func reversed(path Path) Path {
	r := make(Path, len(path))
	for i, n := range path {
		r[len(path)-1-i] = n
	}
	return r
}

// Closest returns node itself if it matches selector, or else its nearest
// ancestor below root matching selector.
func (e *Engine) Closest(node, root adapter.Handle, selector interface{}) (maybe.Maybe[adapter.Node], error) {
	p, err := e.Compile(selector)
	if err != nil {
		return nil, err
	}
	n, err := e.adapter.Normalize(node)
	if err != nil {
		return nil, err
	}
	if p(n) {
		return maybe.Just(n), nil
	}
	parents, err := e.ParentsOf(n, root)
	if err != nil {
		return nil, err
	}
	for _, anc := range parents.WithDefault(nil) {
		if p(anc) {
			return maybe.Just(anc), nil
		}
	}
	return maybe.Nothing[adapter.Node](), nil
}

// ContainsMatching is true if any node below root leniently matches el,
// see element.Match.
func (e *Engine) ContainsMatching(root adapter.Handle, el *element.Element) (bool, error) {
	if el == nil {
		return false, nil
	}
	found, err := e.FindAll(root, func(n adapter.Node) bool {
		return element.Match(el, n.Element(), nil)
	})
	return len(found) > 0, err
}

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
	"io"

	"github.com/npillmayer/comptest/adapter"
	"github.com/npillmayer/comptest/mount"
	"github.com/npillmayer/comptest/traverse"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var findCmd = &cobra.Command{
	Use:   "find [selector]",
	Short: "Find nodes matching a selector",
	Long: `Find nodes of the fixture trees matching a selector, in document order.
The selector is either a selector string (tags, component names, .class,
#id, [prop] and [prop=value], combined by juxtaposition), a YAML property
mapping given by --props, or a component declared by the fixture, given by
--component.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFind,
}

var parentsCmd = &cobra.Command{
	Use:   "parents [selector]",
	Short: "List the ancestors of nodes matching a selector",
	Long:  "List the ancestors of every node matching a selector, nearest first.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParents,
}

func init() {
	for _, cmd := range []*cobra.Command{findCmd, parentsCmd} {
		rootCmd.AddCommand(cmd)
		cmd.Flags().String("props", "", "Select by a YAML property mapping, e.g. '{kind: first}'")
		cmd.Flags().String("component", "", "Select by a component declared in the fixture")
		cmd.Flags().Int("limit", 0, "Max matches per fixture (0 for no limit)")
	}
}

// query is a selector, given in one of three forms.
type query struct {
	selector  string
	props     map[string]interface{}
	component string
	limit     int
}

func queryFromFlags(cmd *cobra.Command, args []string) (query, error) {
	q := query{}
	if len(args) > 0 {
		q.selector = args[0]
	}
	q.component, _ = cmd.Flags().GetString("component")
	q.limit, _ = cmd.Flags().GetInt("limit")
	props, _ := cmd.Flags().GetString("props")
	if props != "" {
		if err := yaml.Unmarshal([]byte(props), &q.props); err != nil {
			return q, fmt.Errorf("--props: %w", err)
		}
		if q.props == nil {
			q.props = map[string]interface{}{}
		}
	}
	forms := 0
	for _, given := range []bool{len(args) > 0, q.props != nil, q.component != ""} {
		if given {
			forms++
		}
	}
	if forms != 1 {
		return q, errors.New("need exactly one of: selector argument, --props, --component")
	}
	return q, nil
}

// selectorFor returns the selector for a fixture. It is false if the query
// names a component the fixture does not declare.
func (q query) selectorFor(f *Fixture) (interface{}, bool) {
	switch {
	case q.component != "":
		c, ok := f.Component(q.component)
		return c, ok
	case q.props != nil:
		return q.props, true
	}
	return q.selector, true
}

// match is a node found in a mounted fixture.
type match struct {
	node adapter.Node
	root *mount.Root
}

// eachMatch mounts every fixture and calls f with the nodes matching q.
func eachMatch(q query, f func(fx *Fixture, matches []match) error) error {
	fixtures, err := loadFixtures(settings.fixtures)
	if err != nil {
		return err
	}
	engine := traverse.New(mount.Adapter{})
	for _, fx := range fixtures {
		var matches []match
		if selector, ok := q.selectorFor(fx); ok {
			root, err := fx.Mount()
			if err != nil {
				return fmt.Errorf("fixture %s: %w", fx.Name, err)
			}
			nodes, err := engine.Find(root, selector)
			if err != nil {
				return err
			}
			if q.limit > 0 && len(nodes) > q.limit {
				nodes = nodes[:q.limit]
			}
			for _, n := range nodes {
				matches = append(matches, match{node: n, root: root})
			}
		} else {
			tracer().Infof("fixture %s does not declare component %s", fx.Name, q.component)
		}
		if err := f(fx, matches); err != nil {
			return err
		}
	}
	return nil
}

// --- find ------------------------------------------------------------------

type findResult struct {
	Fixtures []fixtureMatches `yaml:"fixtures"`
	Total    int              `yaml:"total"`
}

type fixtureMatches struct {
	Fixture string     `yaml:"fixture"`
	Matches []nodeInfo `yaml:"matches"`
}

func (r findResult) WriteText(w io.Writer) error {
	for _, fm := range r.Fixtures {
		for _, m := range fm.Matches {
			if _, err := fmt.Fprintf(w, "%s: %s\n", fm.Fixture, m.Path); err != nil {
				return err
			}
		}
	}
	return nil
}

func runFind(cmd *cobra.Command, args []string) error {
	q, err := queryFromFlags(cmd, args)
	if err != nil {
		return err
	}
	engine := traverse.New(mount.Adapter{})
	result := findResult{}
	err = eachMatch(q, func(fx *Fixture, matches []match) error {
		fm := fixtureMatches{Fixture: fx.Name, Matches: []nodeInfo{}}
		for _, m := range matches {
			path, err := engine.PathTo(m.node, m.root)
			if err != nil {
				return err
			}
			info := describe(m.node)
			ancestors := path.WithDefault(nil)
			info.Path = pathLabel(append(ancestors, m.node), " > ")
			fm.Matches = append(fm.Matches, info)
		}
		result.Fixtures = append(result.Fixtures, fm)
		result.Total += len(fm.Matches)
		return nil
	})
	if err != nil {
		return err
	}
	return printResult(cmd.OutOrStdout(), result)
}

// --- parents ---------------------------------------------------------------

type parentsResult struct {
	Fixtures []fixtureParents `yaml:"fixtures"`
}

type fixtureParents struct {
	Fixture string         `yaml:"fixture"`
	Nodes   []parentsEntry `yaml:"nodes"`
}

type parentsEntry struct {
	Node    nodeInfo `yaml:"node"`
	Parents []string `yaml:"parents"`
}

func (r parentsResult) WriteText(w io.Writer) error {
	for _, fp := range r.Fixtures {
		for _, e := range fp.Nodes {
			line := e.Node.label()
			for _, p := range e.Parents {
				line += " < " + p
			}
			if _, err := fmt.Fprintf(w, "%s: %s\n", fp.Fixture, line); err != nil {
				return err
			}
		}
	}
	return nil
}

func runParents(cmd *cobra.Command, args []string) error {
	q, err := queryFromFlags(cmd, args)
	if err != nil {
		return err
	}
	engine := traverse.New(mount.Adapter{})
	result := parentsResult{}
	err = eachMatch(q, func(fx *Fixture, matches []match) error {
		fp := fixtureParents{Fixture: fx.Name, Nodes: []parentsEntry{}}
		for _, m := range matches {
			parents, err := engine.ParentsOf(m.node, m.root)
			if err != nil {
				return err
			}
			entry := parentsEntry{Node: describe(m.node), Parents: []string{}}
			for _, p := range parents.WithDefault(nil) {
				entry.Parents = append(entry.Parents, describe(p).label())
			}
			fp.Nodes = append(fp.Nodes, entry)
		}
		result.Fixtures = append(result.Fixtures, fp)
		return nil
	})
	if err != nil {
		return err
	}
	return printResult(cmd.OutOrStdout(), result)
}

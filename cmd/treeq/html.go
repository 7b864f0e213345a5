package main

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/comptest/mount"
	"github.com/npillmayer/comptest/mount/mountdbg"
	"github.com/spf13/cobra"
	"golang.org/x/net/html"
)

var htmlCmd = &cobra.Command{
	Use:   "html",
	Short: "Render fixtures to HTML",
	Long: `Render the document output of every fixture. With --query, only the
document nodes matching a CSS selector are rendered.`,
	Args: cobra.NoArgs,
	RunE: runHTML,
}

var debugCmd = &cobra.Command{
	Use:   "debug",
	Short: "Dump mounted instance trees",
	Long: `Dump the instance tree of every fixture as an indented tree, or with
--dot in GraphViz format.`,
	Args: cobra.NoArgs,
	RunE: runDebug,
}

func init() {
	rootCmd.AddCommand(htmlCmd)
	htmlCmd.Flags().String("query", "", "CSS selector for document nodes to render")
	rootCmd.AddCommand(debugCmd)
	debugCmd.Flags().Bool("dot", false, "Output GraphViz (DOT) format")
	debugCmd.Flags().Bool("props", false, "Include properties in DOT node labels")
}

type htmlResult struct {
	Fixtures []fixtureHTML `yaml:"fixtures"`
}

type fixtureHTML struct {
	Fixture string   `yaml:"fixture"`
	HTML    []string `yaml:"html"`
}

func (r htmlResult) WriteText(w io.Writer) error {
	for _, fh := range r.Fixtures {
		for _, s := range fh.HTML {
			if _, err := fmt.Fprintln(w, s); err != nil {
				return err
			}
		}
	}
	return nil
}

func runHTML(cmd *cobra.Command, args []string) error {
	query, _ := cmd.Flags().GetString("query")
	fixtures, err := loadFixtures(settings.fixtures)
	if err != nil {
		return err
	}
	result := htmlResult{}
	for _, fx := range fixtures {
		root, err := fx.Mount()
		if err != nil {
			return fmt.Errorf("fixture %s: %w", fx.Name, err)
		}
		fh := fixtureHTML{Fixture: fx.Name, HTML: []string{}}
		if query == "" {
			s, err := root.HTML()
			if err != nil {
				return err
			}
			fh.HTML = append(fh.HTML, s)
		} else if fh.HTML, err = queryHTML(root, query); err != nil {
			return err
		}
		result.Fixtures = append(result.Fixtures, fh)
	}
	return printResult(cmd.OutOrStdout(), result)
}

func queryHTML(root *mount.Root, query string) ([]string, error) {
	nodes, err := root.QueryAll(query)
	if err != nil {
		return nil, err
	}
	r := make([]string, 0, len(nodes))
	for _, n := range nodes {
		var b strings.Builder
		if err := html.Render(&b, n); err != nil {
			return nil, err
		}
		r = append(r, b.String())
	}
	return r, nil
}

func runDebug(cmd *cobra.Command, args []string) error {
	dot, _ := cmd.Flags().GetBool("dot")
	withProps, _ := cmd.Flags().GetBool("props")
	fixtures, err := loadFixtures(settings.fixtures)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	for _, fx := range fixtures {
		root, err := fx.Mount()
		if err != nil {
			return fmt.Errorf("fixture %s: %w", fx.Name, err)
		}
		if dot {
			if err := mountdbg.ToGraphViz(root, w, withProps); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "# %s\n%s", fx.Name, root.Debug()); err != nil {
			return err
		}
	}
	return nil
}

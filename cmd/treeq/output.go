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

	"github.com/npillmayer/comptest/adapter"
	"gopkg.in/yaml.v3"
)

// textWriter is implemented by results which have a plain text form.
type textWriter interface {
	WriteText(w io.Writer) error
}

// printResult writes v to w in the configured format.
func printResult(w io.Writer, v textWriter) error {
	if settings.format == formatText {
		return v.WriteText(w)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}

// nodeInfo is the output form of a node.
type nodeInfo struct {
	Type  string                 `yaml:"type"`
	Key   string                 `yaml:"key,omitempty"`
	Text  string                 `yaml:"text,omitempty"`
	Props map[string]interface{} `yaml:"props,omitempty"`
	Path  string                 `yaml:"path,omitempty"`
}

func describe(n adapter.Node) nodeInfo {
	el := adapter.ElementOf(n)
	info := nodeInfo{Type: el.TypeName()}
	if el == nil {
		return info
	}
	info.Key = el.Key
	if el.IsText() {
		info.Text = el.TextContent()
		return info
	}
	if len(el.Props) > 0 {
		info.Props = make(map[string]interface{}, len(el.Props))
		for k, v := range el.Props {
			if v != nil {
				info.Props[k] = v
			}
		}
	}
	return info
}

func (n nodeInfo) label() string {
	if n.Text != "" {
		return fmt.Sprintf("%q", n.Text)
	}
	if n.Key != "" {
		return fmt.Sprintf("%s[key=%s]", n.Type, n.Key)
	}
	return n.Type
}

func pathLabel(path []adapter.Node, sep string) string {
	labels := make([]string, len(path))
	for i, n := range path {
		labels[i] = describe(n).label()
	}
	return strings.Join(labels, sep)
}

/*
Package mountdbg implements helpers to debug a mounted instance tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package mountdbg

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/comptest/mount"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname  string
	WithProps bool
	NodeTmpl  *template.Template
	EdgeTmpl  *template.Template
}

// ToGraphViz outputs a diagram for an instance tree. The diagram is in
// GraphViz (DOT) format. Host instances are drawn as ellipses, component
// instances as boxes and text instances as grey boxes. If withProps is set,
// node labels list the properties of host and component instances.
func ToGraphViz(root *mount.Root, w io.Writer, withProps bool) error {
	top := root.Instance()
	if top == nil {
		return fmt.Errorf("mountdbg: nothing mounted")
	}
	head, err := template.New("instances").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica", WithProps: withProps}
	gparams.NodeTmpl = template.Must(template.New("instance").Funcs(
		template.FuncMap{
			"shortstring": shortText,
			"props":       propsText,
		}).Parse(instanceTmpl))
	gparams.EdgeTmpl = template.Must(template.New("edge").Parse(edgeTmpl))
	if err = head.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[*mount.Instance]string, 256)
	if err = nodes(top, w, dict, &gparams); err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

type node struct {
	I         *mount.Instance
	Name      string
	Kind      string
	WithProps bool
}

func kindOf(inst *mount.Instance) string {
	el := inst.Element()
	switch {
	case el.IsText():
		return "text"
	case el.IsHost():
		return "host"
	}
	return "component"
}

func nodes(inst *mount.Instance, w io.Writer, dict map[*mount.Instance]string, gparams *graphParamsType) error {
	if err := instanceNode(inst, w, dict, gparams); err != nil {
		return err
	}
	for _, ch := range inst.ChildInstances() {
		if err := nodes(ch, w, dict, gparams); err != nil {
			return err
		}
		e := edge{N1: node{I: inst, Name: dict[inst]}, N2: node{I: ch, Name: dict[ch]}}
		if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
			return err
		}
	}
	return nil
}

func instanceNode(inst *mount.Instance, w io.Writer, dict map[*mount.Instance]string, gparams *graphParamsType) error {
	name := dict[inst]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(dict)+1)
		dict[inst] = name
	}
	return gparams.NodeTmpl.Execute(w, &node{
		I:         inst,
		Name:      name,
		Kind:      kindOf(inst),
		WithProps: gparams.WithProps,
	})
}

type edge struct {
	N1, N2 node
}

func shortText(inst *mount.Instance) string {
	text := inst.Element().TextContent()
	s := "\"\\\""
	if len(text) > 10 {
		s += text[:10] + "...\\\"\""
	} else {
		s += text + "\\\"\""
	}
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

// propsText lists properties, one per line, for a DOT record label.
func propsText(inst *mount.Instance) string {
	props := inst.Element().Properties()
	var b strings.Builder
	for _, k := range props.Keys() {
		fmt.Fprintf(&b, "\\n%s=%v", k, props[k])
	}
	return strings.ReplaceAll(b.String(), `"`, `\"`)
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const instanceTmpl = `{{ if eq .Kind "text" }}
{{ .Name }}	[ label={{ shortstring .I }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else if eq .Kind "host" }}
{{ .Name }}	[ label="{{ .I.Element.TypeName }}{{ if .WithProps }}{{ props .I }}{{ end }}" shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ else }}
{{ .Name }}	[ label="{{ .I.Element.TypeName }}{{ if .WithProps }}{{ props .I }}{{ end }}" shape=box style="filled,rounded" fillcolor=lightgoldenrod ] ;
{{ end }}
`

const edgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [dir=none weight=1] ;
`

/*
Command treeq runs selectors against component trees described in YAML.

	treeq find '.item' -f 'testdata/widgets/*.yaml'
	treeq parents 'li[disabled]'
	treeq find --component List
	treeq html --query 'ul > li'
	treeq debug --dot | dot -Tsvg > tree.svg

Without -f, all YAML files in or below folder testdata are read.
Patterns support "**" to match any number of folders.

A fixture declares components and a root element:

	components:
	  Item:
	    stateless: true
	    render:
	      type: li
	      props: { className: $kind }
	      children:
	        - text: $kind
	root:
	  type: ul
	  children:
	    - type: Item
	      props: { kind: first }

Within a render template, string values "$name" refer to the property name
of the component being rendered, and a child "slot: true" stands for the
children of the component. Components without a render template render
nothing.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

func main() {
	Execute()
}

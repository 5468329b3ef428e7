package docnode

import "strings"

// FindByName resolves a dotted name such as "Outer.Inner.fn" against a
// sibling list. The first segment selects every sibling with that name; any
// remaining segments are resolved inside the elements of selected
// namespaces. Other kinds have no addressable children. An empty name
// returns the list unchanged.
func FindByName(nodes []Node, name string) []Node {
	if name == "" {
		return nodes
	}

	head, rest, nested := strings.Cut(name, ".")

	var matched []Node
	for _, n := range nodes {
		if n.Name == head {
			matched = append(matched, n)
		}
	}
	if !nested {
		return matched
	}

	var found []Node
	for _, n := range matched {
		if ns, ok := n.Def.(*NamespaceDef); ok {
			found = append(found, FindByName(ns.Elements, rest)...)
		}
	}
	return found
}

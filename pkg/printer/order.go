package printer

import (
	"cmp"
	"slices"
	"strings"

	"github.com/arthur-debert/docprint/pkg/docnode"
)

// compareNodes orders siblings by kind rank, then by name
func compareNodes(a, b docnode.Node) int {
	if c := cmp.Compare(a.Kind().Rank(), b.Kind().Rank()); c != 0 {
		return c
	}
	return strings.Compare(a.Name, b.Name)
}

// sortNodes returns the siblings in presentation order without touching the
// input slice. Nodes that compare equal keep their input order.
func sortNodes(nodes []docnode.Node) []docnode.Node {
	sorted := slices.Clone(nodes)
	slices.SortStableFunc(sorted, compareNodes)
	return sorted
}

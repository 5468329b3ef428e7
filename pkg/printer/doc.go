// Package printer renders a documentation-node tree as a plain-text report.
//
// A rendering pass sorts sibling nodes by kind rank and then by name, and for
// each node writes a location header, its signature, its description and,
// for classes, enums, interfaces and namespaces, an indented member body.
// Namespace members are listed by signature only; composites nested inside a
// namespace are not expanded.
//
// Color and private-member visibility are fixed per pass through Options.
// A pass never mutates the tree, so several passes may share one tree
// concurrently as long as each writes to its own io.Writer.
package printer

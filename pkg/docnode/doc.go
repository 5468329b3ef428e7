// Package docnode defines the documentation-node tree consumed by the printer.
//
// A Node is one documented declaration: a name, where it was defined, an
// optional description and exactly one kind-specific definition. The
// definition is a sealed sum type (Def), so a node's kind is always the kind
// of its payload and no other payload can be attached to it.
//
// Trees are built by a producer (see pkg/loader) and are treated as read-only
// by every consumer.
package docnode

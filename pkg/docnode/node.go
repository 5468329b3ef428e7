package docnode

import "fmt"

// Location is the source position a node was defined at
type Location struct {
	Filename string
	// Line is 1-based
	Line int
	// Col is 1-based
	Col int
}

// String formats the location as file:line:col
func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.Filename, l.Line, l.Col)
}

// Node is one documentation entry for a declaration
type Node struct {
	Name     string
	Location Location

	// Description is the already-parsed descriptive comment, possibly empty
	Description string

	// Def is the kind-specific definition; it also determines the node kind
	Def Def
}

// Kind returns the kind of the node's definition
func (n Node) Kind() Kind {
	if n.Def == nil {
		return KindModuleDoc
	}
	return n.Def.Kind()
}

// Def is implemented by every kind-specific definition payload.
// The set of implementations is closed.
type Def interface {
	Kind() Kind
	isDef()
}

// ModuleDoc marks a module-level documentation node. It has no payload.
type ModuleDoc struct{}

// Import marks an import declaration. It has no payload.
type Import struct{}

func (ModuleDoc) Kind() Kind { return KindModuleDoc }
func (Import) Kind() Kind    { return KindImport }

func (*FunctionDef) Kind() Kind  { return KindFunction }
func (*VariableDef) Kind() Kind  { return KindVariable }
func (*ClassDef) Kind() Kind     { return KindClass }
func (*EnumDef) Kind() Kind      { return KindEnum }
func (*InterfaceDef) Kind() Kind { return KindInterface }
func (*TypeAliasDef) Kind() Kind { return KindTypeAlias }
func (*NamespaceDef) Kind() Kind { return KindNamespace }

func (ModuleDoc) isDef()     {}
func (Import) isDef()        {}
func (*FunctionDef) isDef()  {}
func (*VariableDef) isDef()  {}
func (*ClassDef) isDef()     {}
func (*EnumDef) isDef()      {}
func (*InterfaceDef) isDef() {}
func (*TypeAliasDef) isDef() {}
func (*NamespaceDef) isDef() {}

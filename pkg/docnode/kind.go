package docnode

// Kind identifies the declaration kind of a Node
type Kind int

// Kinds in presentation rank order
const (
	KindModuleDoc Kind = iota
	KindFunction
	KindVariable
	KindClass
	KindEnum
	KindInterface
	KindTypeAlias
	KindNamespace
	KindImport
)

var kindNames = map[Kind]string{
	KindModuleDoc: "moduleDoc",
	KindFunction:  "function",
	KindVariable:  "variable",
	KindClass:     "class",
	KindEnum:      "enum",
	KindInterface: "interface",
	KindTypeAlias: "typeAlias",
	KindNamespace: "namespace",
	KindImport:    "import",
}

// String returns the wire name of the kind
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Rank is the primary sort key among sibling nodes. Lower ranks print first.
func (k Kind) Rank() int {
	return int(k)
}

// IsComposite reports whether nodes of this kind have a member body
func (k Kind) IsComposite() bool {
	switch k {
	case KindClass, KindEnum, KindInterface, KindNamespace:
		return true
	}
	return false
}

// ParseKind maps a wire name back to a Kind
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return k, true
		}
	}
	return 0, false
}

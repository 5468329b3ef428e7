package docnode

// TypeParam is a generic type parameter
type TypeParam struct {
	Name       string
	Constraint string
	Default    string
}

// Param is a function, method or index signature parameter
type Param struct {
	Name     string
	Type     string
	Optional bool
	Rest     bool

	// Default is the source text of the default value, if any
	Default string
}

// Decorator is a decorator expression applied to a class or member
type Decorator struct {
	Name string
	Args []string
}

// FunctionDef describes a function declaration or a method body
type FunctionDef struct {
	IsAsync     bool
	IsGenerator bool
	TypeParams  []TypeParam
	Params      []Param
	ReturnType  string
	Decorators  []Decorator
}

// VarKind is the declaration keyword of a variable
type VarKind int

const (
	VarConst VarKind = iota
	VarLet
	VarVar
)

// String returns the declaration keyword
func (k VarKind) String() string {
	switch k {
	case VarLet:
		return "let"
	case VarVar:
		return "var"
	default:
		return "const"
	}
}

// VariableDef describes a variable declaration
type VariableDef struct {
	DeclKind VarKind
	Type     string
}

// EnumMemberDef is one enum member
type EnumMemberDef struct {
	Name        string
	Init        string
	Description string
}

// EnumDef describes an enum declaration
type EnumDef struct {
	Members []EnumMemberDef
}

// TypeAliasDef describes a type alias declaration
type TypeAliasDef struct {
	TypeParams []TypeParam
	Type       string
}

// NamespaceDef describes a namespace and owns its nested declarations
type NamespaceDef struct {
	Elements []Node
}

// IndexSignatureDef is an index signature of a class or interface
type IndexSignatureDef struct {
	Readonly bool
	Params   []Param
	Type     string
}

// MethodKind distinguishes plain methods from accessors
type MethodKind int

const (
	MethodKindMethod MethodKind = iota
	MethodKindGetter
	MethodKindSetter
)

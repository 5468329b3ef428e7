package docnode

// InterfaceDef describes an interface declaration. Interface members have no
// accessibility; they are always public.
type InterfaceDef struct {
	TypeParams      []TypeParam
	Extends         []string
	Properties      []InterfacePropertyDef
	Methods         []InterfaceMethodDef
	IndexSignatures []IndexSignatureDef
}

// InterfacePropertyDef is an interface property
type InterfacePropertyDef struct {
	Name string
	// Computed properties print their name in brackets
	Computed    bool
	Optional    bool
	Type        string
	Description string
	Location    Location
}

// InterfaceMethodDef is an interface method or accessor
type InterfaceMethodDef struct {
	Name        string
	Kind        MethodKind
	Optional    bool
	TypeParams  []TypeParam
	Params      []Param
	ReturnType  string
	Description string
	Location    Location
}

package loader

// The wire types mirror the JSON emitted by documentation extractors:
// a list of nodes tagged by "kind", each carrying the matching "<kind>Def"
// object. Type expressions are pre-rendered strings.

type wireNode struct {
	Kind        string       `json:"kind" yaml:"kind"`
	Name        string       `json:"name" yaml:"name"`
	Location    wireLocation `json:"location" yaml:"location"`
	Description string       `json:"description" yaml:"description"`
	JSDoc       *wireJSDoc   `json:"jsDoc" yaml:"jsDoc"`

	FunctionDef  *wireFunctionDef  `json:"functionDef" yaml:"functionDef"`
	VariableDef  *wireVariableDef  `json:"variableDef" yaml:"variableDef"`
	ClassDef     *wireClassDef     `json:"classDef" yaml:"classDef"`
	EnumDef      *wireEnumDef      `json:"enumDef" yaml:"enumDef"`
	InterfaceDef *wireInterfaceDef `json:"interfaceDef" yaml:"interfaceDef"`
	TypeAliasDef *wireTypeAliasDef `json:"typeAliasDef" yaml:"typeAliasDef"`
	NamespaceDef *wireNamespaceDef `json:"namespaceDef" yaml:"namespaceDef"`
}

type wireLocation struct {
	Filename string `json:"filename" yaml:"filename"`
	Line     int    `json:"line" yaml:"line"`
	Col      int    `json:"col" yaml:"col"`
}

type wireJSDoc struct {
	Doc string `json:"doc" yaml:"doc"`
}

type wireTypeParam struct {
	Name       string `json:"name" yaml:"name"`
	Constraint string `json:"constraint" yaml:"constraint"`
	Default    string `json:"default" yaml:"default"`
}

type wireParam struct {
	Name     string `json:"name" yaml:"name"`
	Type     string `json:"tsType" yaml:"tsType"`
	Optional bool   `json:"optional" yaml:"optional"`
	Rest     bool   `json:"rest" yaml:"rest"`
	Default  string `json:"default" yaml:"default"`
}

type wireDecorator struct {
	Name string   `json:"name" yaml:"name"`
	Args []string `json:"args" yaml:"args"`
}

type wireFunctionDef struct {
	IsAsync     bool            `json:"isAsync" yaml:"isAsync"`
	IsGenerator bool            `json:"isGenerator" yaml:"isGenerator"`
	TypeParams  []wireTypeParam `json:"typeParams" yaml:"typeParams"`
	Params      []wireParam     `json:"params" yaml:"params"`
	ReturnType  string          `json:"returnType" yaml:"returnType"`
	Decorators  []wireDecorator `json:"decorators" yaml:"decorators"`
}

type wireVariableDef struct {
	Kind string `json:"kind" yaml:"kind"`
	Type string `json:"tsType" yaml:"tsType"`
}

type wireClassDef struct {
	IsAbstract      bool                     `json:"isAbstract" yaml:"isAbstract"`
	TypeParams      []wireTypeParam          `json:"typeParams" yaml:"typeParams"`
	Extends         string                   `json:"extends" yaml:"extends"`
	SuperTypeParams []string                 `json:"superTypeParams" yaml:"superTypeParams"`
	Implements      []string                 `json:"implements" yaml:"implements"`
	Decorators      []wireDecorator          `json:"decorators" yaml:"decorators"`
	Constructors    []wireConstructorDef     `json:"constructors" yaml:"constructors"`
	Properties      []wireClassPropertyDef   `json:"properties" yaml:"properties"`
	IndexSignatures []wireIndexSignatureDef  `json:"indexSignatures" yaml:"indexSignatures"`
	Methods         []wireClassMethodDef     `json:"methods" yaml:"methods"`
}

type wireConstructorDef struct {
	Accessibility string       `json:"accessibility" yaml:"accessibility"`
	Params        []wireParam  `json:"params" yaml:"params"`
	Description   string       `json:"description" yaml:"description"`
	JSDoc         *wireJSDoc   `json:"jsDoc" yaml:"jsDoc"`
	Location      wireLocation `json:"location" yaml:"location"`
}

type wireClassPropertyDef struct {
	Name          string          `json:"name" yaml:"name"`
	Type          string          `json:"tsType" yaml:"tsType"`
	Accessibility string          `json:"accessibility" yaml:"accessibility"`
	IsAbstract    bool            `json:"isAbstract" yaml:"isAbstract"`
	IsStatic      bool            `json:"isStatic" yaml:"isStatic"`
	Readonly      bool            `json:"readonly" yaml:"readonly"`
	Optional      bool            `json:"optional" yaml:"optional"`
	Decorators    []wireDecorator `json:"decorators" yaml:"decorators"`
	Description   string          `json:"description" yaml:"description"`
	JSDoc         *wireJSDoc      `json:"jsDoc" yaml:"jsDoc"`
	Location      wireLocation    `json:"location" yaml:"location"`
}

type wireClassMethodDef struct {
	Name          string           `json:"name" yaml:"name"`
	Kind          string           `json:"kind" yaml:"kind"`
	Accessibility string           `json:"accessibility" yaml:"accessibility"`
	IsAbstract    bool             `json:"isAbstract" yaml:"isAbstract"`
	IsStatic      bool             `json:"isStatic" yaml:"isStatic"`
	Optional      bool             `json:"optional" yaml:"optional"`
	FunctionDef   *wireFunctionDef `json:"functionDef" yaml:"functionDef"`
	Description   string           `json:"description" yaml:"description"`
	JSDoc         *wireJSDoc       `json:"jsDoc" yaml:"jsDoc"`
	Location      wireLocation     `json:"location" yaml:"location"`
}

type wireIndexSignatureDef struct {
	Readonly bool        `json:"readonly" yaml:"readonly"`
	Params   []wireParam `json:"params" yaml:"params"`
	Type     string      `json:"tsType" yaml:"tsType"`
}

type wireEnumDef struct {
	Members []wireEnumMemberDef `json:"members" yaml:"members"`
}

type wireEnumMemberDef struct {
	Name        string     `json:"name" yaml:"name"`
	Init        string     `json:"init" yaml:"init"`
	Description string     `json:"description" yaml:"description"`
	JSDoc       *wireJSDoc `json:"jsDoc" yaml:"jsDoc"`
}

type wireInterfaceDef struct {
	TypeParams      []wireTypeParam            `json:"typeParams" yaml:"typeParams"`
	Extends         []string                   `json:"extends" yaml:"extends"`
	Properties      []wireInterfacePropertyDef `json:"properties" yaml:"properties"`
	Methods         []wireInterfaceMethodDef   `json:"methods" yaml:"methods"`
	IndexSignatures []wireIndexSignatureDef    `json:"indexSignatures" yaml:"indexSignatures"`
}

type wireInterfacePropertyDef struct {
	Name        string       `json:"name" yaml:"name"`
	Computed    bool         `json:"computed" yaml:"computed"`
	Optional    bool         `json:"optional" yaml:"optional"`
	Type        string       `json:"tsType" yaml:"tsType"`
	Description string       `json:"description" yaml:"description"`
	JSDoc       *wireJSDoc   `json:"jsDoc" yaml:"jsDoc"`
	Location    wireLocation `json:"location" yaml:"location"`
}

type wireInterfaceMethodDef struct {
	Name        string          `json:"name" yaml:"name"`
	Kind        string          `json:"kind" yaml:"kind"`
	Optional    bool            `json:"optional" yaml:"optional"`
	TypeParams  []wireTypeParam `json:"typeParams" yaml:"typeParams"`
	Params      []wireParam     `json:"params" yaml:"params"`
	ReturnType  string          `json:"returnType" yaml:"returnType"`
	Description string          `json:"description" yaml:"description"`
	JSDoc       *wireJSDoc      `json:"jsDoc" yaml:"jsDoc"`
	Location    wireLocation    `json:"location" yaml:"location"`
}

type wireTypeAliasDef struct {
	TypeParams []wireTypeParam `json:"typeParams" yaml:"typeParams"`
	Type       string          `json:"tsType" yaml:"tsType"`
}

type wireNamespaceDef struct {
	Elements []wireNode `json:"elements" yaml:"elements"`
}

// description prefers an explicit description over the jsDoc block
func description(text string, doc *wireJSDoc) string {
	if text != "" || doc == nil {
		return text
	}
	return doc.Doc
}

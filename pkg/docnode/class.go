package docnode

// Accessibility is the visibility modifier of a class member.
// The zero value is Public, which is also what an absent modifier means.
type Accessibility int

const (
	Public Accessibility = iota
	Protected
	Private
)

// String returns the modifier keyword
func (a Accessibility) String() string {
	switch a {
	case Protected:
		return "protected"
	case Private:
		return "private"
	default:
		return "public"
	}
}

// IsVisible reports whether a member with this accessibility is rendered
func (a Accessibility) IsVisible(includePrivate bool) bool {
	return includePrivate || a != Private
}

// ParseAccessibility maps a modifier keyword to an Accessibility. The empty
// string yields Public.
func ParseAccessibility(s string) (Accessibility, bool) {
	switch s {
	case "", "public":
		return Public, true
	case "protected":
		return Protected, true
	case "private":
		return Private, true
	}
	return Public, false
}

// ClassDef describes a class declaration
type ClassDef struct {
	IsAbstract      bool
	TypeParams      []TypeParam
	Extends         string
	SuperTypeParams []string
	Implements      []string
	Decorators      []Decorator

	Constructors    []ClassConstructorDef
	Properties      []ClassPropertyDef
	IndexSignatures []IndexSignatureDef
	Methods         []ClassMethodDef
}

// VisibleProperties returns the properties that pass the visibility filter
func (c *ClassDef) VisibleProperties(includePrivate bool) []ClassPropertyDef {
	var out []ClassPropertyDef
	for _, p := range c.Properties {
		if p.Accessibility.IsVisible(includePrivate) {
			out = append(out, p)
		}
	}
	return out
}

// VisibleMethods returns the methods that pass the visibility filter
func (c *ClassDef) VisibleMethods(includePrivate bool) []ClassMethodDef {
	var out []ClassMethodDef
	for _, m := range c.Methods {
		if m.Accessibility.IsVisible(includePrivate) {
			out = append(out, m)
		}
	}
	return out
}

// ClassConstructorDef is one constructor overload
type ClassConstructorDef struct {
	Accessibility Accessibility
	Params        []Param
	Description   string
	Location      Location
}

// ClassPropertyDef is a class property
type ClassPropertyDef struct {
	Name          string
	Type          string
	Accessibility Accessibility
	IsAbstract    bool
	IsStatic      bool
	Readonly      bool
	Optional      bool
	Decorators    []Decorator
	Description   string
	Location      Location
}

// ClassMethodDef is a class method or accessor
type ClassMethodDef struct {
	Name          string
	Accessibility Accessibility
	IsAbstract    bool
	IsStatic      bool
	Optional      bool
	Kind          MethodKind
	Function      *FunctionDef
	Description   string
	Location      Location
}

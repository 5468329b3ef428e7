package loader

import (
	"fmt"

	"github.com/arthur-debert/docprint/pkg/docnode"
	"github.com/arthur-debert/docprint/pkg/errors"
)

// converter turns wire nodes into docnode values, tracking the path of the
// node being converted for error details
type converter struct {
	source string
}

func (c *converter) invalid(path, format string, args ...interface{}) error {
	return errors.Newf(errors.ErrInvalidInput, format, args...).
		WithDetail("source", c.source).
		WithDetail("path", path)
}

func (c *converter) nodes(in []wireNode, path string) ([]docnode.Node, error) {
	out := make([]docnode.Node, 0, len(in))
	for i := range in {
		n, err := c.node(&in[i], fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func (c *converter) node(w *wireNode, path string) (docnode.Node, error) {
	kind, ok := docnode.ParseKind(w.Kind)
	if !ok {
		return docnode.Node{}, c.invalid(path, "unknown node kind %q", w.Kind)
	}

	if got := w.payloads(); len(got) > 1 || (len(got) == 1 && got[0] != kind) {
		return docnode.Node{}, c.invalid(path, "node %q of kind %s carries a mismatched payload", w.Name, kind)
	}

	node := docnode.Node{
		Name:        w.Name,
		Location:    location(w.Location),
		Description: description(w.Description, w.JSDoc),
	}

	switch kind {
	case docnode.KindModuleDoc:
		node.Def = docnode.ModuleDoc{}
	case docnode.KindImport:
		node.Def = docnode.Import{}
	case docnode.KindFunction:
		if w.FunctionDef == nil {
			return docnode.Node{}, c.missing(path, w)
		}
		node.Def = function(w.FunctionDef)
	case docnode.KindVariable:
		if w.VariableDef == nil {
			return docnode.Node{}, c.missing(path, w)
		}
		vk, err := c.varKind(w.VariableDef.Kind, path)
		if err != nil {
			return docnode.Node{}, err
		}
		node.Def = &docnode.VariableDef{DeclKind: vk, Type: w.VariableDef.Type}
	case docnode.KindClass:
		if w.ClassDef == nil {
			return docnode.Node{}, c.missing(path, w)
		}
		def, err := c.class(w.ClassDef, path+".classDef")
		if err != nil {
			return docnode.Node{}, err
		}
		node.Def = def
	case docnode.KindEnum:
		if w.EnumDef == nil {
			return docnode.Node{}, c.missing(path, w)
		}
		node.Def = enum(w.EnumDef)
	case docnode.KindInterface:
		if w.InterfaceDef == nil {
			return docnode.Node{}, c.missing(path, w)
		}
		def, err := c.iface(w.InterfaceDef, path+".interfaceDef")
		if err != nil {
			return docnode.Node{}, err
		}
		node.Def = def
	case docnode.KindTypeAlias:
		if w.TypeAliasDef == nil {
			return docnode.Node{}, c.missing(path, w)
		}
		node.Def = &docnode.TypeAliasDef{
			TypeParams: typeParams(w.TypeAliasDef.TypeParams),
			Type:       w.TypeAliasDef.Type,
		}
	case docnode.KindNamespace:
		if w.NamespaceDef == nil {
			return docnode.Node{}, c.missing(path, w)
		}
		elements, err := c.nodes(w.NamespaceDef.Elements, path+".namespaceDef.elements")
		if err != nil {
			return docnode.Node{}, err
		}
		node.Def = &docnode.NamespaceDef{Elements: elements}
	}

	return node, nil
}

func (c *converter) missing(path string, w *wireNode) error {
	return c.invalid(path, "node %q of kind %s has no %sDef payload", w.Name, w.Kind, w.Kind)
}

// payloads lists the kinds whose payload object is present
func (w *wireNode) payloads() []docnode.Kind {
	var kinds []docnode.Kind
	if w.FunctionDef != nil {
		kinds = append(kinds, docnode.KindFunction)
	}
	if w.VariableDef != nil {
		kinds = append(kinds, docnode.KindVariable)
	}
	if w.ClassDef != nil {
		kinds = append(kinds, docnode.KindClass)
	}
	if w.EnumDef != nil {
		kinds = append(kinds, docnode.KindEnum)
	}
	if w.InterfaceDef != nil {
		kinds = append(kinds, docnode.KindInterface)
	}
	if w.TypeAliasDef != nil {
		kinds = append(kinds, docnode.KindTypeAlias)
	}
	if w.NamespaceDef != nil {
		kinds = append(kinds, docnode.KindNamespace)
	}
	return kinds
}

func (c *converter) varKind(s, path string) (docnode.VarKind, error) {
	switch s {
	case "const", "":
		return docnode.VarConst, nil
	case "let":
		return docnode.VarLet, nil
	case "var":
		return docnode.VarVar, nil
	}
	return docnode.VarConst, c.invalid(path, "unknown variable kind %q", s)
}

func (c *converter) methodKind(s, path string) (docnode.MethodKind, error) {
	switch s {
	case "method", "":
		return docnode.MethodKindMethod, nil
	case "getter":
		return docnode.MethodKindGetter, nil
	case "setter":
		return docnode.MethodKindSetter, nil
	}
	return docnode.MethodKindMethod, c.invalid(path, "unknown method kind %q", s)
}

func (c *converter) accessibility(s, path string) (docnode.Accessibility, error) {
	a, ok := docnode.ParseAccessibility(s)
	if !ok {
		return docnode.Public, c.invalid(path, "unknown accessibility %q", s)
	}
	return a, nil
}

func (c *converter) class(w *wireClassDef, path string) (*docnode.ClassDef, error) {
	def := &docnode.ClassDef{
		IsAbstract:      w.IsAbstract,
		TypeParams:      typeParams(w.TypeParams),
		Extends:         w.Extends,
		SuperTypeParams: w.SuperTypeParams,
		Implements:      w.Implements,
		Decorators:      decorators(w.Decorators),
		IndexSignatures: indexSignatures(w.IndexSignatures),
	}

	for i, ctor := range w.Constructors {
		access, err := c.accessibility(ctor.Accessibility, fmt.Sprintf("%s.constructors[%d]", path, i))
		if err != nil {
			return nil, err
		}
		def.Constructors = append(def.Constructors, docnode.ClassConstructorDef{
			Accessibility: access,
			Params:        params(ctor.Params),
			Description:   description(ctor.Description, ctor.JSDoc),
			Location:      location(ctor.Location),
		})
	}

	for i, prop := range w.Properties {
		access, err := c.accessibility(prop.Accessibility, fmt.Sprintf("%s.properties[%d]", path, i))
		if err != nil {
			return nil, err
		}
		def.Properties = append(def.Properties, docnode.ClassPropertyDef{
			Name:          prop.Name,
			Type:          prop.Type,
			Accessibility: access,
			IsAbstract:    prop.IsAbstract,
			IsStatic:      prop.IsStatic,
			Readonly:      prop.Readonly,
			Optional:      prop.Optional,
			Decorators:    decorators(prop.Decorators),
			Description:   description(prop.Description, prop.JSDoc),
			Location:      location(prop.Location),
		})
	}

	for i, m := range w.Methods {
		mpath := fmt.Sprintf("%s.methods[%d]", path, i)
		access, err := c.accessibility(m.Accessibility, mpath)
		if err != nil {
			return nil, err
		}
		kind, err := c.methodKind(m.Kind, mpath)
		if err != nil {
			return nil, err
		}
		method := docnode.ClassMethodDef{
			Name:          m.Name,
			Accessibility: access,
			IsAbstract:    m.IsAbstract,
			IsStatic:      m.IsStatic,
			Optional:      m.Optional,
			Kind:          kind,
			Description:   description(m.Description, m.JSDoc),
			Location:      location(m.Location),
		}
		if m.FunctionDef != nil {
			method.Function = function(m.FunctionDef)
		}
		def.Methods = append(def.Methods, method)
	}

	return def, nil
}

func (c *converter) iface(w *wireInterfaceDef, path string) (*docnode.InterfaceDef, error) {
	def := &docnode.InterfaceDef{
		TypeParams:      typeParams(w.TypeParams),
		Extends:         w.Extends,
		IndexSignatures: indexSignatures(w.IndexSignatures),
	}

	for _, prop := range w.Properties {
		def.Properties = append(def.Properties, docnode.InterfacePropertyDef{
			Name:        prop.Name,
			Computed:    prop.Computed,
			Optional:    prop.Optional,
			Type:        prop.Type,
			Description: description(prop.Description, prop.JSDoc),
			Location:    location(prop.Location),
		})
	}

	for i, m := range w.Methods {
		kind, err := c.methodKind(m.Kind, fmt.Sprintf("%s.methods[%d]", path, i))
		if err != nil {
			return nil, err
		}
		def.Methods = append(def.Methods, docnode.InterfaceMethodDef{
			Name:        m.Name,
			Kind:        kind,
			Optional:    m.Optional,
			TypeParams:  typeParams(m.TypeParams),
			Params:      params(m.Params),
			ReturnType:  m.ReturnType,
			Description: description(m.Description, m.JSDoc),
			Location:    location(m.Location),
		})
	}

	return def, nil
}

func location(w wireLocation) docnode.Location {
	return docnode.Location{Filename: w.Filename, Line: w.Line, Col: w.Col}
}

func function(w *wireFunctionDef) *docnode.FunctionDef {
	return &docnode.FunctionDef{
		IsAsync:     w.IsAsync,
		IsGenerator: w.IsGenerator,
		TypeParams:  typeParams(w.TypeParams),
		Params:      params(w.Params),
		ReturnType:  w.ReturnType,
		Decorators:  decorators(w.Decorators),
	}
}

func enum(w *wireEnumDef) *docnode.EnumDef {
	def := &docnode.EnumDef{}
	for _, m := range w.Members {
		def.Members = append(def.Members, docnode.EnumMemberDef{
			Name:        m.Name,
			Init:        m.Init,
			Description: description(m.Description, m.JSDoc),
		})
	}
	return def
}

func typeParams(in []wireTypeParam) []docnode.TypeParam {
	if len(in) == 0 {
		return nil
	}
	out := make([]docnode.TypeParam, len(in))
	for i, tp := range in {
		out[i] = docnode.TypeParam{Name: tp.Name, Constraint: tp.Constraint, Default: tp.Default}
	}
	return out
}

func params(in []wireParam) []docnode.Param {
	if len(in) == 0 {
		return nil
	}
	out := make([]docnode.Param, len(in))
	for i, p := range in {
		out[i] = docnode.Param{
			Name:     p.Name,
			Type:     p.Type,
			Optional: p.Optional,
			Rest:     p.Rest,
			Default:  p.Default,
		}
	}
	return out
}

func decorators(in []wireDecorator) []docnode.Decorator {
	if len(in) == 0 {
		return nil
	}
	out := make([]docnode.Decorator, len(in))
	for i, d := range in {
		out[i] = docnode.Decorator{Name: d.Name, Args: d.Args}
	}
	return out
}

func indexSignatures(in []wireIndexSignatureDef) []docnode.IndexSignatureDef {
	if len(in) == 0 {
		return nil
	}
	out := make([]docnode.IndexSignatureDef, len(in))
	for i, s := range in {
		out[i] = docnode.IndexSignatureDef{Readonly: s.Readonly, Params: params(s.Params), Type: s.Type}
	}
	return out
}

package printer

import (
	"strings"

	"github.com/arthur-debert/docprint/pkg/docnode"
)

// modifiers renders the leading keywords of a class member, each followed by
// a space
func (p painter) modifiers(isAbstract bool, access docnode.Accessibility, isStatic bool) string {
	var sb strings.Builder
	if isAbstract {
		sb.WriteString(p.keyword("abstract") + " ")
	}
	// public is the default and is left implicit
	if access != docnode.Public {
		sb.WriteString(p.keyword(access.String()) + " ")
	}
	if isStatic {
		sb.WriteString(p.keyword("static") + " ")
	}
	return sb.String()
}

func (p painter) accessor(kind docnode.MethodKind) string {
	switch kind {
	case docnode.MethodKindGetter:
		return p.keyword("get") + " "
	case docnode.MethodKindSetter:
		return p.keyword("set") + " "
	}
	return ""
}

func optional(b bool) string {
	if b {
		return "?"
	}
	return ""
}

func typeSuffix(t string) string {
	if t == "" {
		return ""
	}
	return ": " + t
}

func (p painter) constructorSignature(c docnode.ClassConstructorDef) string {
	return p.modifiers(false, c.Accessibility, false) +
		p.keyword("constructor") + "(" + p.params(c.Params) + ")"
}

func (p painter) classPropertySignature(prop docnode.ClassPropertyDef) string {
	var sb strings.Builder
	sb.WriteString(p.modifiers(prop.IsAbstract, prop.Accessibility, prop.IsStatic))
	if prop.Readonly {
		sb.WriteString(p.keyword("readonly") + " ")
	}
	sb.WriteString(p.name(prop.Name) + optional(prop.Optional) + typeSuffix(prop.Type))
	return sb.String()
}

func (p painter) classMethodSignature(m docnode.ClassMethodDef) string {
	fn := m.Function
	if fn == nil {
		fn = &docnode.FunctionDef{}
	}

	var sb strings.Builder
	sb.WriteString(p.modifiers(m.IsAbstract, m.Accessibility, m.IsStatic))
	if fn.IsAsync {
		sb.WriteString(p.keyword("async") + " ")
	}
	sb.WriteString(p.accessor(m.Kind))
	if fn.IsGenerator {
		sb.WriteString(p.keyword("*"))
	}
	sb.WriteString(p.name(m.Name) + optional(m.Optional))
	sb.WriteString(p.typeParams(fn.TypeParams))
	sb.WriteString("(" + p.params(fn.Params) + ")")
	sb.WriteString(typeSuffix(fn.ReturnType))
	return sb.String()
}

func (p painter) indexSignature(sig docnode.IndexSignatureDef) string {
	s := ""
	if sig.Readonly {
		s = p.keyword("readonly") + " "
	}
	return s + "[" + p.params(sig.Params) + "]" + typeSuffix(sig.Type)
}

func (p painter) interfacePropertySignature(prop docnode.InterfacePropertyDef) string {
	name := p.name(prop.Name)
	if prop.Computed {
		name = "[" + name + "]"
	}
	return name + optional(prop.Optional) + typeSuffix(prop.Type)
}

func (p painter) interfaceMethodSignature(m docnode.InterfaceMethodDef) string {
	return p.accessor(m.Kind) + p.name(m.Name) + optional(m.Optional) +
		p.typeParams(m.TypeParams) + "(" + p.params(m.Params) + ")" + typeSuffix(m.ReturnType)
}

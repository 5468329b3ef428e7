package printer

import (
	"strings"

	"github.com/arthur-debert/docprint/pkg/docnode"
)

// signature writes the header of a declaration at the given depth.
// Imports and module docs have no header.
func (ps *pass) signature(node docnode.Node, depth int) error {
	p := ps.paint

	switch def := node.Def.(type) {
	case *docnode.FunctionDef:
		return ps.line(depth, p.functionSignature(node.Name, def))
	case *docnode.VariableDef:
		return ps.line(depth, p.variableSignature(node.Name, def))
	case *docnode.ClassDef:
		for _, d := range def.Decorators {
			if err := ps.line(depth, p.decorator(d)); err != nil {
				return err
			}
		}
		return ps.line(depth, p.classSignature(node.Name, def))
	case *docnode.EnumDef:
		return ps.line(depth, p.keyword("enum")+" "+p.name(node.Name))
	case *docnode.InterfaceDef:
		return ps.line(depth, p.interfaceSignature(node.Name, def))
	case *docnode.TypeAliasDef:
		return ps.line(depth, p.typeAliasSignature(node.Name, def))
	case *docnode.NamespaceDef:
		return ps.line(depth, p.keyword("namespace")+" "+p.name(node.Name))
	}
	return nil
}

func (p painter) functionSignature(name string, def *docnode.FunctionDef) string {
	var sb strings.Builder
	if def.IsAsync {
		sb.WriteString(p.keyword("async") + " ")
	}
	sb.WriteString(p.keyword("function"))
	if def.IsGenerator {
		sb.WriteString(p.keyword("*"))
	}
	sb.WriteString(" " + p.name(name))
	sb.WriteString(p.typeParams(def.TypeParams))
	sb.WriteString("(" + p.params(def.Params) + ")")
	if def.ReturnType != "" {
		sb.WriteString(": " + def.ReturnType)
	}
	return sb.String()
}

func (p painter) variableSignature(name string, def *docnode.VariableDef) string {
	s := p.keyword(def.DeclKind.String()) + " " + p.name(name)
	if def.Type != "" {
		s += ": " + def.Type
	}
	return s
}

func (p painter) classSignature(name string, def *docnode.ClassDef) string {
	var sb strings.Builder
	if def.IsAbstract {
		sb.WriteString(p.keyword("abstract") + " ")
	}
	sb.WriteString(p.keyword("class") + " " + p.name(name))
	sb.WriteString(p.typeParams(def.TypeParams))

	if def.Extends != "" {
		sb.WriteString(" " + p.keyword("extends") + " " + def.Extends)
		if len(def.SuperTypeParams) > 0 {
			sb.WriteString("<" + strings.Join(def.SuperTypeParams, ", ") + ">")
		}
	}

	if len(def.Implements) > 0 {
		sb.WriteString(" " + p.keyword("implements") + " " + strings.Join(def.Implements, ", "))
	}
	return sb.String()
}

func (p painter) interfaceSignature(name string, def *docnode.InterfaceDef) string {
	s := p.keyword("interface") + " " + p.name(name) + p.typeParams(def.TypeParams)
	if len(def.Extends) > 0 {
		s += " " + p.keyword("extends") + " " + strings.Join(def.Extends, ", ")
	}
	return s
}

func (p painter) typeAliasSignature(name string, def *docnode.TypeAliasDef) string {
	return p.keyword("type") + " " + p.name(name) + p.typeParams(def.TypeParams) + " = " + def.Type
}

// typeParams renders "<A, B extends C = D>", or nothing for an empty list
func (p painter) typeParams(tps []docnode.TypeParam) string {
	if len(tps) == 0 {
		return ""
	}
	parts := make([]string, len(tps))
	for i, tp := range tps {
		s := tp.Name
		if tp.Constraint != "" {
			s += " " + p.keyword("extends") + " " + tp.Constraint
		}
		if tp.Default != "" {
			s += " = " + tp.Default
		}
		parts[i] = s
	}
	return "<" + strings.Join(parts, ", ") + ">"
}

func (p painter) params(params []docnode.Param) string {
	parts := make([]string, len(params))
	for i, param := range params {
		parts[i] = p.param(param)
	}
	return strings.Join(parts, ", ")
}

func (p painter) param(param docnode.Param) string {
	var sb strings.Builder
	if param.Rest {
		sb.WriteString("...")
	}
	sb.WriteString(param.Name)
	if param.Optional {
		sb.WriteString("?")
	}
	if param.Type != "" {
		sb.WriteString(": " + param.Type)
	}
	if param.Default != "" {
		sb.WriteString(" = " + param.Default)
	}
	return sb.String()
}

func (p painter) decorator(d docnode.Decorator) string {
	s := "@" + d.Name
	if len(d.Args) > 0 {
		s += "(" + strings.Join(d.Args, ", ") + ")"
	}
	return s
}

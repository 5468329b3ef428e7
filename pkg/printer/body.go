package printer

import (
	"github.com/arthur-debert/docprint/pkg/docnode"
)

// body writes the member list of a composite node. Other kinds have no body.
func (ps *pass) body(node docnode.Node) error {
	switch def := node.Def.(type) {
	case *docnode.ClassDef:
		return ps.classBody(def)
	case *docnode.EnumDef:
		return ps.enumBody(def)
	case *docnode.InterfaceDef:
		return ps.interfaceBody(def)
	case *docnode.NamespaceDef:
		return ps.namespaceBody(def)
	}
	return nil
}

func (ps *pass) classBody(def *docnode.ClassDef) error {
	p := ps.paint

	for _, c := range def.Constructors {
		if err := ps.member(p.constructorSignature(c), c.Description); err != nil {
			return err
		}
	}

	for _, prop := range def.VisibleProperties(ps.includePrivate) {
		if err := ps.decorators(prop.Decorators); err != nil {
			return err
		}
		if err := ps.member(p.classPropertySignature(prop), prop.Description); err != nil {
			return err
		}
	}

	for _, sig := range def.IndexSignatures {
		if err := ps.line(1, p.indexSignature(sig)); err != nil {
			return err
		}
	}

	for _, m := range def.VisibleMethods(ps.includePrivate) {
		if m.Function != nil {
			if err := ps.decorators(m.Function.Decorators); err != nil {
				return err
			}
		}
		if err := ps.member(p.classMethodSignature(m), m.Description); err != nil {
			return err
		}
	}

	return ps.blank()
}

func (ps *pass) enumBody(def *docnode.EnumDef) error {
	for _, m := range def.Members {
		if err := ps.member(ps.paint.name(m.Name), m.Description); err != nil {
			return err
		}
	}
	return ps.blank()
}

func (ps *pass) interfaceBody(def *docnode.InterfaceDef) error {
	p := ps.paint

	for _, prop := range def.Properties {
		if err := ps.member(p.interfacePropertySignature(prop), prop.Description); err != nil {
			return err
		}
	}
	for _, m := range def.Methods {
		if err := ps.member(p.interfaceMethodSignature(m), m.Description); err != nil {
			return err
		}
	}
	for _, sig := range def.IndexSignatures {
		if err := ps.line(1, p.indexSignature(sig)); err != nil {
			return err
		}
	}

	return ps.blank()
}

// namespaceBody lists the elements one level deep. Nested composites get
// their signature and description but no body of their own.
func (ps *pass) namespaceBody(def *docnode.NamespaceDef) error {
	for _, el := range sortNodes(def.Elements) {
		if err := ps.signature(el, 1); err != nil {
			return err
		}
		if err := ps.description(el.Description, 2); err != nil {
			return err
		}
	}
	return ps.blank()
}

// member writes a member signature at depth 1 and its description at depth 2
func (ps *pass) member(sig, description string) error {
	if err := ps.line(1, sig); err != nil {
		return err
	}
	return ps.description(description, 2)
}

func (ps *pass) decorators(decorators []docnode.Decorator) error {
	for _, d := range decorators {
		if err := ps.line(1, ps.paint.decorator(d)); err != nil {
			return err
		}
	}
	return nil
}

package printer

import (
	"testing"

	"github.com/arthur-debert/docprint/pkg/docnode"
	"github.com/stretchr/testify/assert"
)

func TestFunctionSignature(t *testing.T) {
	tests := []struct {
		name string
		def  *docnode.FunctionDef
		want string
	}{
		{
			name: "async generator with generics",
			def: &docnode.FunctionDef{
				IsAsync:     true,
				IsGenerator: true,
				TypeParams:  []docnode.TypeParam{{Name: "T"}},
				Params:      []docnode.Param{{Name: "x", Type: "T"}},
				ReturnType:  "T",
			},
			want: "async function* Name<T>(x: T): T",
		},
		{
			name: "bare",
			def:  &docnode.FunctionDef{},
			want: "function Name()",
		},
		{
			name: "param markers",
			def: &docnode.FunctionDef{
				TypeParams: []docnode.TypeParam{{Name: "K", Constraint: "string", Default: `"id"`}, {Name: "V"}},
				Params: []docnode.Param{
					{Name: "key", Type: "K"},
					{Name: "value", Type: "V", Optional: true},
					{Name: "retries", Type: "number", Default: "3"},
					{Name: "rest", Type: "unknown[]", Rest: true},
				},
			},
			want: `function Name<K extends string = "id", V>(key: K, value?: V, retries: number = 3, ...rest: unknown[])`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, painter{}.functionSignature("Name", tt.def))
		})
	}
}

func TestDeclarationSignatures(t *testing.T) {
	p := painter{}

	assert.Equal(t, "let count: number", p.variableSignature("count", &docnode.VariableDef{DeclKind: docnode.VarLet, Type: "number"}))
	assert.Equal(t, "var legacy", p.variableSignature("legacy", &docnode.VariableDef{DeclKind: docnode.VarVar}))

	assert.Equal(t, "class Plain", p.classSignature("Plain", &docnode.ClassDef{}))
	assert.Equal(t, "class Impl implements A, B",
		p.classSignature("Impl", &docnode.ClassDef{Implements: []string{"A", "B"}}))
	assert.Equal(t, "class Sub extends Base",
		p.classSignature("Sub", &docnode.ClassDef{Extends: "Base"}))

	assert.Equal(t, "interface Empty", p.interfaceSignature("Empty", &docnode.InterfaceDef{}))
	assert.Equal(t, "interface Map<K, V> extends Iterable, Sized",
		p.interfaceSignature("Map", &docnode.InterfaceDef{
			TypeParams: []docnode.TypeParam{{Name: "K"}, {Name: "V"}},
			Extends:    []string{"Iterable", "Sized"},
		}))

	assert.Equal(t, "type Pair<A, B> = [A, B]",
		p.typeAliasSignature("Pair", &docnode.TypeAliasDef{
			TypeParams: []docnode.TypeParam{{Name: "A"}, {Name: "B"}},
			Type:       "[A, B]",
		}))
	assert.Equal(t, "type Id = string", p.typeAliasSignature("Id", &docnode.TypeAliasDef{Type: "string"}))
}

func TestEmptyTypeParamsOmitBrackets(t *testing.T) {
	p := painter{}
	assert.NotContains(t, p.functionSignature("f", &docnode.FunctionDef{}), "<")
	assert.NotContains(t, p.classSignature("C", &docnode.ClassDef{}), "<")
	assert.NotContains(t, p.interfaceSignature("I", &docnode.InterfaceDef{}), "<")
	assert.NotContains(t, p.typeAliasSignature("T", &docnode.TypeAliasDef{Type: "x"}), "<")
}

func TestMemberSignatures(t *testing.T) {
	p := painter{}

	assert.Equal(t, "protected constructor(a: string)",
		p.constructorSignature(docnode.ClassConstructorDef{
			Accessibility: docnode.Protected,
			Params:        []docnode.Param{{Name: "a", Type: "string"}},
		}))

	assert.Equal(t, "abstract protected static readonly limit?: number",
		p.classPropertySignature(docnode.ClassPropertyDef{
			Name:          "limit",
			Type:          "number",
			IsAbstract:    true,
			Accessibility: docnode.Protected,
			IsStatic:      true,
			Readonly:      true,
			Optional:      true,
		}))

	assert.Equal(t, "static async *items<T>(): AsyncIterable<T>",
		p.classMethodSignature(docnode.ClassMethodDef{
			Name:     "items",
			IsStatic: true,
			Function: &docnode.FunctionDef{
				IsAsync:     true,
				IsGenerator: true,
				TypeParams:  []docnode.TypeParam{{Name: "T"}},
				ReturnType:  "AsyncIterable<T>",
			},
		}))

	assert.Equal(t, "set value(v: number)",
		p.classMethodSignature(docnode.ClassMethodDef{
			Name:     "value",
			Kind:     docnode.MethodKindSetter,
			Function: &docnode.FunctionDef{Params: []docnode.Param{{Name: "v", Type: "number"}}},
		}))

	assert.Equal(t, "noBody()", p.classMethodSignature(docnode.ClassMethodDef{Name: "noBody"}))

	assert.Equal(t, "readonly [i: number]: T",
		p.indexSignature(docnode.IndexSignatureDef{
			Readonly: true,
			Params:   []docnode.Param{{Name: "i", Type: "number"}},
			Type:     "T",
		}))

	assert.Equal(t, "[Symbol.iterator]?: () => Iterator<T>",
		p.interfacePropertySignature(docnode.InterfacePropertyDef{
			Name:     "Symbol.iterator",
			Computed: true,
			Optional: true,
			Type:     "() => Iterator<T>",
		}))

	assert.Equal(t, "get size?(): number",
		p.interfaceMethodSignature(docnode.InterfaceMethodDef{
			Name:       "size",
			Kind:       docnode.MethodKindGetter,
			Optional:   true,
			ReturnType: "number",
		}))
}

func TestDecorator(t *testing.T) {
	p := painter{}
	assert.Equal(t, "@sealed", p.decorator(docnode.Decorator{Name: "sealed"}))
	assert.Equal(t, `@route("/x", "GET")`, p.decorator(docnode.Decorator{Name: "route", Args: []string{`"/x"`, `"GET"`}}))
}

package csm

import (
	"errors"
	"testing"

	"github.com/unparsehq/unparse/ast"
)

func TestBuildValidation(t *testing.T) {
	tests := []struct {
		name string
		b    *Builder
	}{
		{"nil element", NewBuilder().Add(nil)},
		{"conditional without then", NewBuilder().IfThen(innerProp, nil)},
		{"conditional without condition", NewBuilder().IfPred(nil, String("x"), nil)},
		{"list on single property", NewBuilder().List(labelProp)},
		{"child on list property", NewBuilder().Child(itemsProp)},
		{"nested defect in seq", NewBuilder().Seq(String("a"), If(innerProp, nil))},
		{"nested defect in list separator", NewBuilder().ListSep(itemsProp, Child(namesProp))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.b.Build(); !errors.Is(err, ErrBadTemplate) {
				t.Errorf("Build() err = %v, want ErrBadTemplate", err)
			}
		})
	}
}

func TestBuildOK(t *testing.T) {
	b := NewBuilder().
		Comment().
		Keyword("box").
		Space().
		ListWrap(itemsProp, Comma(), Punct("["), Punct("]")).
		IfThen(innerProp, Seq(Space(), Child(innerProp))).
		Semicolon().
		Newline()
	if _, err := b.Build(); err != nil {
		t.Fatalf("Build() err = %v", err)
	}
}

func TestBlock(t *testing.T) {
	r := testRegistry()
	mustRegister(r, boxShape, NewBuilder().
		Block(ListWrap(itemsProp, Newline(), nil, Newline())))

	n := box()
	n.SetList(itemsProp, item("a"), item("b"))
	got, err := r.RenderString(n)
	if err != nil {
		t.Fatal(err)
	}
	if want := "{\n    a\n    b\n}"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// an empty body still opens and closes the block
	empty := box()
	got, err = r.RenderString(empty)
	if err != nil {
		t.Fatal(err)
	}
	if want := "{\n}"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAnnotationsCombinator(t *testing.T) {
	r := Default()
	field := ast.NewNode(ast.FieldDeclarationShape)
	field.SetList(ast.AnnotationsProp, ast.MarkerAnnotation("Deprecated"))
	field.SetList(ast.VariablesProp,
		ast.VariableDeclarator(ast.PrimitiveType("int"), "x", nil))
	got, err := r.RenderString(field)
	if err != nil {
		t.Fatal(err)
	}
	if want := "\n@Deprecated\nint x;"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestModifiersCombinator(t *testing.T) {
	r := Default()
	field := ast.NewNode(ast.FieldDeclarationShape)
	field.SetValues(ast.ModifiersProp, "private", "static")
	field.SetList(ast.VariablesProp,
		ast.VariableDeclarator(ast.PrimitiveType("int"), "x", nil))
	got, err := r.RenderString(field)
	if err != nil {
		t.Fatal(err)
	}
	// leading and trailing space around the run, space-separated keywords
	if want := " private static int x;"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

package unparse

import (
	"errors"
	"testing"

	"github.com/unparsehq/unparse/ast"
	"github.com/unparsehq/unparse/csm"
	"github.com/unparsehq/unparse/printer"
)

func TestSource(t *testing.T) {
	n := ast.BinaryExpr(ast.NameExpr("a"), "+", ast.LiteralExpr("1"))
	got, err := Source(n)
	if err != nil {
		t.Fatal(err)
	}
	if got != "a + 1" {
		t.Errorf("got %q, want %q", got, "a + 1")
	}
}

func TestSourceOptions(t *testing.T) {
	cls := ast.NewNode(ast.ClassDeclarationShape)
	cls.SetChild(ast.NameProp, ast.SimpleName("T"))
	field := ast.NewNode(ast.FieldDeclarationShape)
	field.SetList(ast.VariablesProp,
		ast.VariableDeclarator(ast.PrimitiveType("int"), "x", nil))
	cls.SetList(ast.MembersProp, field)

	got, err := Source(cls, printer.WithIndent(2))
	if err != nil {
		t.Fatal(err)
	}
	if want := "class T {\n  int x;\n}\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSourceUnregisteredShape(t *testing.T) {
	_, err := Source(ast.NewNode("no-such-shape"))
	if !errors.Is(err, csm.ErrNoTemplate) {
		t.Fatalf("got %v, want ErrNoTemplate", err)
	}
}

func TestMustSourcePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	MustSource(ast.NewNode("no-such-shape"))
}

package csm

import (
	"github.com/unparsehq/unparse/ast"
	"github.com/unparsehq/unparse/printer"
)

// The built-in templates. Each shape gets exactly one; a shape reachable
// from a rendered tree without a template aborts the render with
// ErrNoTemplate.

func mustRegister(r *Registry, s ast.Shape, b *Builder) {
	if err := r.Register(s, b); err != nil {
		panic(err)
	}
}

func registerBuiltins(r *Registry) {
	mustRegister(r, ast.LineCommentShape, NewBuilder().
		Add(Text(printer.Comment, "// ")).
		Add(StringProp(printer.Comment, ast.ContentProp)).
		Newline())

	mustRegister(r, ast.BlockCommentShape, NewBuilder().
		Add(Text(printer.Comment, "/* ")).
		Add(StringProp(printer.Comment, ast.ContentProp)).
		Add(Text(printer.Comment, " */")).
		Newline())

	mustRegister(r, ast.SimpleNameShape, NewBuilder().
		StringProp(printer.Ident, ast.IdentifierProp))

	mustRegister(r, ast.NameShape, NewBuilder().
		IfThen(ast.QualifierProp, Seq(Child(ast.QualifierProp), Punct("."))).
		StringProp(printer.Ident, ast.IdentifierProp))

	mustRegister(r, ast.PrimitiveTypeShape, NewBuilder().
		Comment().
		Annotations().
		Add(ValueKind(printer.Keyword, ast.PrimitiveProp)))

	mustRegister(r, ast.ArrayTypeShape, NewBuilder().
		Child(ast.ComponentTypeProp).
		List(ast.AnnotationsProp).
		Punct("[").
		Punct("]"))

	mustRegister(r, ast.ClassTypeShape, NewBuilder().
		Comment().
		IfThen(ast.ScopeProp, Seq(Child(ast.ScopeProp), Punct("."))).
		ListWrap(ast.AnnotationsProp, Space(), nil, Space()).
		Child(ast.NameProp).
		IfPred(diamond,
			Seq(Punct("<"), Punct(">")),
			ListWrap(ast.TypeArgumentsProp, Seq(Comma(), Space()), Punct("<"), Punct(">"))))

	mustRegister(r, ast.TypeParameterShape, NewBuilder().
		Comment().
		Child(ast.NameProp))

	mustRegister(r, ast.ClassExprShape, NewBuilder().
		Comment().
		Child(ast.TypeProp).
		Punct(".").
		Keyword("class"))

	mustRegister(r, ast.NameExprShape, NewBuilder().
		Comment().
		Child(ast.NameProp))

	mustRegister(r, ast.LiteralExprShape, NewBuilder().
		Comment().
		Value(ast.ValueProp))

	mustRegister(r, ast.BinaryExprShape, NewBuilder().
		Comment().
		Child(ast.LeftProp).
		Space().
		Add(ValueKind(printer.Punct, ast.OperatorProp)).
		Space().
		Child(ast.RightProp))

	// The partial comparison form used by the rule dialect: an operator and
	// a right operand with no left operand, e.g. `> 18`.
	mustRegister(r, ast.HalfBinaryExprShape, NewBuilder().
		Comment().
		Add(ValueKind(printer.Punct, ast.OperatorProp)).
		Space().
		Child(ast.RightProp))

	mustRegister(r, ast.MarkerAnnotationShape, NewBuilder().
		Comment().
		Punct("@").
		Child(ast.NameProp))

	mustRegister(r, ast.PackageDeclarationShape, NewBuilder().
		Comment().
		Keyword("package").
		Space().
		Child(ast.NameProp).
		Semicolon().
		Newline().
		Newline())

	mustRegister(r, ast.ImportDeclarationShape, NewBuilder().
		Comment().
		Keyword("import").
		Space().
		Add(IfFlag(ast.StaticFlag, Seq(Keyword("static"), Space()), nil)).
		Child(ast.NameProp).
		Add(IfFlag(ast.AsteriskFlag, Seq(Punct("."), Punct("*")), nil)).
		Semicolon())

	mustRegister(r, ast.CompilationUnitShape, NewBuilder().
		Comment().
		Child(ast.PackageProp).
		ListWrap(ast.ImportsProp, Newline(), nil, Seq(Newline(), Newline())).
		ListSep(ast.TypesProp, Newline()).
		OrphanCommentsEnding())

	mustRegister(r, ast.ClassDeclarationShape, NewBuilder().
		Comment().
		ListWrap(ast.AnnotationsProp, Newline(), nil, Newline()).
		Modifiers().
		Add(IfFlag(ast.InterfaceFlag, Keyword("interface"), Keyword("class"))).
		Space().
		Child(ast.NameProp).
		ListWrap(ast.TypeParametersProp, Seq(Comma(), Space()), Punct("<"), Punct(">")).
		ListWrap(ast.ExtendedTypesProp, Seq(Comma(), Space()),
			Seq(Space(), Keyword("extends"), Space()), nil).
		ListWrap(ast.ImplementedTypesProp, Seq(Comma(), Space()),
			Seq(Space(), Keyword("implements"), Space()), nil).
		Space().
		Block(ListWrap(ast.MembersProp, Newline(), nil, Newline())).
		Newline())

	mustRegister(r, ast.FieldDeclarationShape, NewBuilder().
		Comment().
		Annotations().
		Modifiers().
		IfThen(ast.VariablesProp, ElementFunc(commonVariableType)).
		Space().
		ListWrap(ast.VariablesProp, Seq(Comma(), Space()), nil, nil).
		Semicolon())

	mustRegister(r, ast.VariableDeclaratorShape, NewBuilder().
		Comment().
		Child(ast.NameProp).
		IfThen(ast.InitializerProp,
			Seq(Space(), Punct("="), Space(), Child(ast.InitializerProp))))
}

func diamond(n *ast.Node) bool {
	return n.Flag(ast.DiamondFlag)
}

// commonVariableType renders the element type shared by the co-declared
// variables of a field, taken from the first declarator. The tree builder
// guarantees co-declared variables share it.
func commonVariableType(r *Registry, n *ast.Node, p *printer.Printer) error {
	vars := ast.VariablesProp.ListChildren(n)
	if len(vars) == 0 {
		return nil
	}
	t := ast.TypeProp.SingleChild(vars[0])
	if t == nil {
		return nil
	}
	return r.Render(t, p)
}

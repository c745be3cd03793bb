package ast

import "strings"

// Flag names used by the built-in shapes.
const (
	InterfaceFlag = "interface"
	DiamondFlag   = "diamond"
	StaticFlag    = "static"
	AsteriskFlag  = "asterisk"
)

func init() {
	mustDeclareShape(CompilationUnitShape, PackageProp, ImportsProp, TypesProp)
	mustDeclareShape(PackageDeclarationShape, AnnotationsProp, NameProp)
	mustDeclareShape(ImportDeclarationShape, NameProp)
	mustDeclareShape(ClassDeclarationShape,
		AnnotationsProp, ModifiersProp, NameProp, TypeParametersProp,
		ExtendedTypesProp, ImplementedTypesProp, MembersProp)
	mustDeclareShape(FieldDeclarationShape, AnnotationsProp, ModifiersProp, VariablesProp)
	mustDeclareShape(VariableDeclaratorShape, NameProp, TypeProp, InitializerProp)
	mustDeclareShape(ClassTypeShape, ScopeProp, AnnotationsProp, NameProp, TypeArgumentsProp)
	mustDeclareShape(ArrayTypeShape, ComponentTypeProp, AnnotationsProp)
	mustDeclareShape(PrimitiveTypeShape, AnnotationsProp, PrimitiveProp)
	mustDeclareShape(TypeParameterShape, NameProp)
	mustDeclareShape(SimpleNameShape, IdentifierProp)
	mustDeclareShape(NameShape, QualifierProp, IdentifierProp)
	mustDeclareShape(ClassExprShape, TypeProp)
	mustDeclareShape(NameExprShape, NameProp)
	mustDeclareShape(LiteralExprShape, ValueProp)
	mustDeclareShape(BinaryExprShape, LeftProp, OperatorProp, RightProp)
	mustDeclareShape(HalfBinaryExprShape, OperatorProp, RightProp)
	mustDeclareShape(MarkerAnnotationShape, NameProp)
	mustDeclareShape(LineCommentShape, ContentProp)
	mustDeclareShape(BlockCommentShape, ContentProp)
}

// Constructors for the leaf shapes that templates and tests build often.

func SimpleName(id string) *Node {
	return NewNode(SimpleNameShape).SetValue(IdentifierProp, id)
}

func PrimitiveType(keyword string) *Node {
	return NewNode(PrimitiveTypeShape).SetValue(PrimitiveProp, keyword)
}

// ClassType builds a class-or-interface type reference. A nil scope means an
// unqualified reference.
func ClassType(scope *Node, name string, typeArgs ...*Node) *Node {
	n := NewNode(ClassTypeShape)
	if scope != nil {
		n.SetChild(ScopeProp, scope)
	}
	n.SetChild(NameProp, SimpleName(name))
	if len(typeArgs) > 0 {
		n.SetList(TypeArgumentsProp, typeArgs...)
	}
	return n
}

// QualifiedName builds a possibly qualified name node from its dotted form,
// e.g. "java.util.List".
func QualifiedName(dotted string) *Node {
	parts := strings.Split(dotted, ".")
	n := NewNode(NameShape).SetValue(IdentifierProp, parts[0])
	for _, id := range parts[1:] {
		n = NewNode(NameShape).SetChild(QualifierProp, n).SetValue(IdentifierProp, id)
	}
	return n
}

func LineComment(content string) *Node {
	return NewNode(LineCommentShape).SetValue(ContentProp, content)
}

func BlockComment(content string) *Node {
	return NewNode(BlockCommentShape).SetValue(ContentProp, content)
}

func MarkerAnnotation(name string) *Node {
	return NewNode(MarkerAnnotationShape).SetChild(NameProp, SimpleName(name))
}

func NameExpr(id string) *Node {
	return NewNode(NameExprShape).SetChild(NameProp, SimpleName(id))
}

func LiteralExpr(v string) *Node {
	return NewNode(LiteralExprShape).SetValue(ValueProp, v)
}

// HalfBinaryExpr builds a partial comparison with only an operator and a
// right operand, e.g. `> 18`. Operators: == != < > <= >=.
func HalfBinaryExpr(operator string, right *Node) *Node {
	n := NewNode(HalfBinaryExprShape)
	n.SetValue(OperatorProp, operator)
	n.SetChild(RightProp, right)
	return n
}

func BinaryExpr(left *Node, operator string, right *Node) *Node {
	n := NewNode(BinaryExprShape)
	n.SetChild(LeftProp, left)
	n.SetValue(OperatorProp, operator)
	n.SetChild(RightProp, right)
	return n
}

// VariableDeclarator builds a declarator with an optional initializer.
func VariableDeclarator(typ *Node, name string, initializer *Node) *Node {
	n := NewNode(VariableDeclaratorShape)
	n.SetChild(NameProp, SimpleName(name))
	if typ != nil {
		n.SetChild(TypeProp, typ)
	}
	if initializer != nil {
		n.SetChild(InitializerProp, initializer)
	}
	return n
}

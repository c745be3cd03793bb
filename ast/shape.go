package ast

import "fmt"

// Shape identifies the concrete kind of a node. The set of shapes is open:
// collaborators introducing new syntactic forms declare their own Shape
// constants and register the shape's properties with DeclareShape.
type Shape string

const (
	CompilationUnitShape    Shape = "compilation-unit"
	PackageDeclarationShape Shape = "package-declaration"
	ImportDeclarationShape  Shape = "import-declaration"
	ClassDeclarationShape   Shape = "class-declaration"
	FieldDeclarationShape   Shape = "field-declaration"
	VariableDeclaratorShape Shape = "variable-declarator"
	ClassTypeShape          Shape = "class-type"
	ArrayTypeShape          Shape = "array-type"
	PrimitiveTypeShape      Shape = "primitive-type"
	TypeParameterShape      Shape = "type-parameter"
	SimpleNameShape         Shape = "simple-name"
	NameShape               Shape = "name"
	ClassExprShape          Shape = "class-expr"
	NameExprShape           Shape = "name-expr"
	LiteralExprShape        Shape = "literal-expr"
	BinaryExprShape         Shape = "binary-expr"
	HalfBinaryExprShape     Shape = "half-binary-expr"
	MarkerAnnotationShape   Shape = "marker-annotation"
	LineCommentShape        Shape = "line-comment"
	BlockCommentShape       Shape = "block-comment"
)

func (s Shape) String() string {
	return string(s)
}

// IsComment reports whether nodes of this shape are comments. Comment shapes
// participate in the attached-comment side channel and the trailing orphan
// comment scan rather than normal structural rendering.
func (s Shape) IsComment() bool {
	switch s {
	case LineCommentShape, BlockCommentShape:
		return true
	default:
		return false
	}
}

var shapeProperties = map[Shape][]Property{}

// DeclareShape records the structural properties of a shape. Declaring a
// shape twice replaces the earlier declaration; property names must be unique
// within the shape.
func DeclareShape(s Shape, props ...Property) error {
	seen := make(map[string]bool, len(props))
	for _, p := range props {
		if seen[p.Name] {
			return fmt.Errorf("%w: duplicate property %q on shape %s", ErrProperty, p.Name, s)
		}
		seen[p.Name] = true
	}
	shapeProperties[s] = props
	return nil
}

func mustDeclareShape(s Shape, props ...Property) {
	if err := DeclareShape(s, props...); err != nil {
		panic(err)
	}
}

// Properties returns the declared structural properties of s in declaration
// order, or nil when the shape is undeclared.
func (s Shape) Properties() []Property {
	return shapeProperties[s]
}

// LookupProperty resolves a property by name on a shape.
func LookupProperty(s Shape, name string) (Property, error) {
	for _, p := range shapeProperties[s] {
		if p.Name == name {
			return p, nil
		}
	}
	return Property{}, fmt.Errorf("%w: shape %s has no property %q", ErrProperty, s, name)
}

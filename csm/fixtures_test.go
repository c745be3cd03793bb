package csm

import (
	"github.com/unparsehq/unparse/ast"
)

// Shapes used only by tests in this package.
const (
	itemShape ast.Shape = "test-item"
	boxShape  ast.Shape = "test-box"
)

var (
	labelProp = ast.Property{Name: "label", Kind: ast.SingleValueProp}
	itemsProp = ast.Property{Name: "items", Kind: ast.NodeListProp}
	namesProp = ast.Property{Name: "names", Kind: ast.ValueListProp}
	innerProp = ast.Property{Name: "inner", Kind: ast.SingleNodeProp}
)

func init() {
	if err := ast.DeclareShape(itemShape, labelProp); err != nil {
		panic(err)
	}
	if err := ast.DeclareShape(boxShape, innerProp, itemsProp, namesProp); err != nil {
		panic(err)
	}
}

func item(label string) *ast.Node {
	return ast.NewNode(itemShape).SetValue(labelProp, label)
}

func box() *ast.Node {
	return ast.NewNode(boxShape)
}

// testRegistry returns a registry with templates for the test shapes plus
// the comment shapes, extended per test through extra builders.
func testRegistry() *Registry {
	r := NewRegistry()
	mustRegister(r, itemShape, NewBuilder().Comment().Value(labelProp))
	mustRegister(r, ast.LineCommentShape, NewBuilder().
		String("// ").
		Value(ast.ContentProp).
		Newline())
	return r
}

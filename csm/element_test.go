package csm

import (
	"strings"
	"testing"

	"github.com/unparsehq/unparse/ast"
	"github.com/unparsehq/unparse/printer"
)

func renderWith(t *testing.T, r *Registry, e Element, n *ast.Node) string {
	t.Helper()
	p := printer.New()
	if err := e.Render(r, n, p); err != nil {
		t.Fatalf("render: %v", err)
	}
	return p.String()
}

// For a node list of n items the wrappers appear only when n > 0 and the
// separator exactly n-1 times, never after the final item.
func TestNodeListLaw(t *testing.T) {
	r := testRegistry()
	tests := []struct {
		name  string
		items []*ast.Node
		want  string
	}{
		{"empty", nil, ""},
		{"explicit empty", []*ast.Node{}, ""},
		{"one", []*ast.Node{item("a")}, "[a]"},
		{"two", []*ast.Node{item("a"), item("b")}, "[a,b]"},
		{"three", []*ast.Node{item("a"), item("b"), item("c")}, "[a,b,c]"},
	}
	e := ListWrap(itemsProp, Comma(), Punct("["), Punct("]"))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := box()
			if tt.items != nil {
				n.SetList(itemsProp, tt.items...)
			}
			got := renderWith(t, r, e, n)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			if sep, want := strings.Count(got, ","), max(0, len(tt.items)-1); sep != want {
				t.Errorf("separator count = %d, want %d", sep, want)
			}
		})
	}
}

func TestValueListLaw(t *testing.T) {
	r := testRegistry()
	tests := []struct {
		name  string
		names []string
		want  string
	}{
		{"empty", nil, ""},
		{"one", []string{"public"}, " public "},
		{"two", []string{"public", "static"}, " public static "},
	}
	e := ListKind(printer.Keyword, namesProp, Space(), Space(), Space())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := box()
			if tt.names != nil {
				n.SetValues(namesProp, tt.names...)
			}
			if got := renderWith(t, r, e, n); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestListNoSeparator(t *testing.T) {
	r := testRegistry()
	n := box()
	n.SetList(itemsProp, item("a"), item("b"))
	if got := renderWith(t, r, List(itemsProp), n); got != "ab" {
		t.Errorf("got %q, want %q", got, "ab")
	}
}

func TestConditionalProperty(t *testing.T) {
	r := testRegistry()
	tests := []struct {
		name string
		node *ast.Node
		e    Element
		want string
	}{
		{"present child", box().SetChild(innerProp, item("x")), If(innerProp, String("yes")), "yes"},
		{"absent child", box(), If(innerProp, String("yes")), ""},
		{"absent child with else", box(), IfElse(innerProp, String("yes"), String("no")), "no"},
		{"empty list", box().SetList(itemsProp), If(itemsProp, String("yes")), ""},
		{"non-empty list", box().SetList(itemsProp, item("a")), If(itemsProp, String("yes")), "yes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderWith(t, r, tt.e, tt.node); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConditionalPredicate(t *testing.T) {
	r := testRegistry()
	yes := func(*ast.Node) bool { return true }
	no := func(*ast.Node) bool { return false }
	if got := renderWith(t, r, IfPred(yes, String("t"), String("f")), box()); got != "t" {
		t.Errorf("got %q", got)
	}
	if got := renderWith(t, r, IfPred(no, String("t"), String("f")), box()); got != "f" {
		t.Errorf("got %q", got)
	}
	// false with no else emits nothing
	if got := renderWith(t, r, IfPred(no, String("t"), nil), box()); got != "" {
		t.Errorf("got %q", got)
	}
}

func TestIfFlag(t *testing.T) {
	r := testRegistry()
	n := box().SetFlag("on", true)
	if got := renderWith(t, r, IfFlag("on", String("t"), String("f")), n); got != "t" {
		t.Errorf("got %q", got)
	}
	if got := renderWith(t, r, IfFlag("off", String("t"), String("f")), n); got != "f" {
		t.Errorf("got %q", got)
	}
}

// A node's attached comment renders before its other template output; a
// node without one emits nothing extra.
func TestCommentLaw(t *testing.T) {
	r := testRegistry()
	n := item("v")
	n.SetComment(ast.LineComment("note"))
	got, err := r.RenderString(n)
	if err != nil {
		t.Fatal(err)
	}
	if want := "// note\nv"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	plain, err := r.RenderString(item("v"))
	if err != nil {
		t.Fatal(err)
	}
	if plain != "v" {
		t.Errorf("got %q, want %q", plain, "v")
	}
}

func TestCommentSuppression(t *testing.T) {
	r := testRegistry()
	n := item("v")
	n.SetComment(ast.LineComment("note"))
	got, err := r.RenderString(n, printer.WithComments(false))
	if err != nil {
		t.Fatal(err)
	}
	if got != "v" {
		t.Errorf("got %q, want %q", got, "v")
	}
}

func TestValueAbsent(t *testing.T) {
	r := testRegistry()
	if got := renderWith(t, r, Value(labelProp), ast.NewNode(itemShape)); got != "" {
		t.Errorf("absent value rendered %q", got)
	}
}

func TestStringProp(t *testing.T) {
	r := testRegistry()
	if got := renderWith(t, r, StringProp(printer.Ident, labelProp), item("x")); got != "x" {
		t.Errorf("got %q", got)
	}
}

func TestChildAbsent(t *testing.T) {
	r := testRegistry()
	if got := renderWith(t, r, Child(innerProp), box()); got != "" {
		t.Errorf("absent child rendered %q", got)
	}
}

func TestSeq(t *testing.T) {
	r := testRegistry()
	e := Seq(String("a"), String("b"), String("c"))
	if got := renderWith(t, r, e, box()); got != "abc" {
		t.Errorf("got %q", got)
	}
}

func TestOrphanCommentsEnding(t *testing.T) {
	r := testRegistry()
	mustRegister(r, boxShape, NewBuilder().
		ListSep(itemsProp, Space()).
		OrphanCommentsEnding())

	n := box()
	n.SetList(itemsProp, item("a"))
	n.AddOrphanComment(ast.LineComment("one"))
	n.AddOrphanComment(ast.LineComment("two"))
	got, err := r.RenderString(n)
	if err != nil {
		t.Fatal(err)
	}
	if want := "a// one\n// two\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// no trailing comments: the scan is a no-op
	bare := box()
	bare.SetList(itemsProp, item("a"))
	got, err = r.RenderString(bare)
	if err != nil {
		t.Fatal(err)
	}
	if got != "a" {
		t.Errorf("got %q, want %q", got, "a")
	}
}

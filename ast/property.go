package ast

// PropertyKind distinguishes the four query forms a property supports.
type PropertyKind int

const (
	SingleValueProp PropertyKind = iota
	SingleNodeProp
	ValueListProp
	NodeListProp
)

func (k PropertyKind) String() string {
	s, ok := map[PropertyKind]string{
		SingleValueProp: "value",
		SingleNodeProp:  "node",
		ValueListProp:   "values",
		NodeListProp:    "nodes",
	}[k]
	if ok {
		return s
	}
	return "<unknown property kind>"
}

// Property is the read-only accessor for one named attribute of a node
// shape. A property value is either a scalar, a single child node, a list
// of scalars, or a list of child nodes. Absence of an optional relation is
// reported as a zero result, never as an error.
//
// A property is only meaningful for the shapes that declare it; reading it
// on another shape yields absence.
type Property struct {
	Name string
	Kind PropertyKind
}

// Properties shared by the built-in shapes.
var (
	NameProp             = Property{"name", SingleNodeProp}
	ScopeProp            = Property{"scope", SingleNodeProp}
	QualifierProp        = Property{"qualifier", SingleNodeProp}
	TypeProp             = Property{"type", SingleNodeProp}
	ComponentTypeProp    = Property{"componentType", SingleNodeProp}
	InitializerProp      = Property{"initializer", SingleNodeProp}
	PackageProp          = Property{"package", SingleNodeProp}
	LeftProp             = Property{"left", SingleNodeProp}
	RightProp            = Property{"right", SingleNodeProp}
	TypeArgumentsProp    = Property{"typeArguments", NodeListProp}
	TypeParametersProp   = Property{"typeParameters", NodeListProp}
	AnnotationsProp      = Property{"annotations", NodeListProp}
	ExtendedTypesProp    = Property{"extendedTypes", NodeListProp}
	ImplementedTypesProp = Property{"implementedTypes", NodeListProp}
	MembersProp          = Property{"members", NodeListProp}
	ImportsProp          = Property{"imports", NodeListProp}
	TypesProp            = Property{"types", NodeListProp}
	VariablesProp        = Property{"variables", NodeListProp}
	ModifiersProp        = Property{"modifiers", ValueListProp}
	IdentifierProp       = Property{"identifier", SingleValueProp}
	PrimitiveProp        = Property{"primitive", SingleValueProp}
	OperatorProp         = Property{"operator", SingleValueProp}
	ValueProp            = Property{"value", SingleValueProp}
	ContentProp          = Property{"content", SingleValueProp}
)

func (p Property) IsSingle() bool {
	return p.Kind == SingleValueProp || p.Kind == SingleNodeProp
}

func (p Property) IsAboutNodes() bool {
	return p.Kind == SingleNodeProp || p.Kind == NodeListProp
}

// SingleValue returns the scalar value of p on n, reporting presence.
func (p Property) SingleValue(n *Node) (string, bool) {
	v, ok := n.values[p.Name]
	return v, ok
}

// SingleChild returns the child node under p, or nil for an absent optional
// relation.
func (p Property) SingleChild(n *Node) *Node {
	return n.children[p.Name]
}

// ListValues returns the scalar list under p; nil when unset.
func (p Property) ListValues(n *Node) []string {
	return n.valueLists[p.Name]
}

// ListChildren returns the node list under p; nil when unset.
func (p Property) ListChildren(n *Node) []*Node {
	return n.nodeLists[p.Name]
}

// Present reports the conditional-element presence test for p on n: a
// non-nil child or set value for single properties, a non-empty list for
// list properties.
func (p Property) Present(n *Node) bool {
	switch p.Kind {
	case SingleNodeProp:
		return p.SingleChild(n) != nil
	case SingleValueProp:
		_, ok := p.SingleValue(n)
		return ok
	case NodeListProp:
		return len(p.ListChildren(n)) > 0
	case ValueListProp:
		return len(p.ListValues(n)) > 0
	default:
		return false
	}
}

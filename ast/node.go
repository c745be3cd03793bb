package ast

import (
	"sort"
)

// Node is one element of a syntax tree. The Parent back-reference is
// maintained by the mutators; it is never an owning reference and the
// rendering core only reads it. Pos is the source order among siblings and
// drives the trailing orphan comment scan; trees built programmatically get
// positions assigned in attachment order.
type Node struct {
	Shape       Shape
	Parent      *Node
	ParentField string
	ParentIndex int
	Pos         int

	// Comment is the attached comment side channel, not a structural child.
	Comment *Node

	values     map[string]string
	flags      map[string]bool
	children   map[string]*Node
	nodeLists  map[string][]*Node
	valueLists map[string][]string
	orphans    []*Node

	nextPos   int
	observers []ChangeFunc
}

// ChangeFunc receives an explicit change event pushed by a mutator. Old and
// new carry the property's previous and new value (string, *Node, []*Node or
// []string depending on the property kind).
type ChangeFunc func(n *Node, p Property, old, new any)

// NewNode creates an empty node of the given shape.
func NewNode(s Shape) *Node {
	return &Node{Shape: s}
}

// Observe registers f for change events on this node and all nodes below it.
func (n *Node) Observe(f ChangeFunc) {
	n.observers = append(n.observers, f)
}

func (n *Node) notify(p Property, old, new any) {
	for a := n; a != nil; a = a.Parent {
		for _, f := range a.observers {
			f(n, p, old, new)
		}
	}
}

func (n *Node) takePos() int {
	pos := n.nextPos
	n.nextPos++
	return pos
}

func (n *Node) adopt(c *Node, field string, index int) {
	c.Parent = n
	c.ParentField = field
	c.ParentIndex = index
	c.Pos = n.takePos()
}

// SetValue sets a scalar property.
func (n *Node) SetValue(p Property, v string) *Node {
	if n.values == nil {
		n.values = map[string]string{}
	}
	old, _ := n.values[p.Name]
	n.values[p.Name] = v
	n.notify(p, old, v)
	return n
}

// SetValues sets a scalar list property.
func (n *Node) SetValues(p Property, vs ...string) *Node {
	if n.valueLists == nil {
		n.valueLists = map[string][]string{}
	}
	old := n.valueLists[p.Name]
	n.valueLists[p.Name] = vs
	n.notify(p, old, vs)
	return n
}

// SetChild sets a single-node property, fixing up the child's back
// reference. A nil child clears the relation.
func (n *Node) SetChild(p Property, c *Node) *Node {
	if n.children == nil {
		n.children = map[string]*Node{}
	}
	old := n.children[p.Name]
	if old != nil {
		old.Parent = nil
	}
	if c == nil {
		delete(n.children, p.Name)
	} else {
		n.adopt(c, p.Name, 0)
		n.children[p.Name] = c
	}
	n.notify(p, old, c)
	return n
}

// SetList sets a node-list property, fixing up each child's back reference.
func (n *Node) SetList(p Property, cs ...*Node) *Node {
	if n.nodeLists == nil {
		n.nodeLists = map[string][]*Node{}
	}
	old := n.nodeLists[p.Name]
	for _, c := range old {
		c.Parent = nil
	}
	for i, c := range cs {
		n.adopt(c, p.Name, i)
	}
	n.nodeLists[p.Name] = cs
	n.notify(p, old, cs)
	return n
}

// SetFlag records a named boolean attribute, available to predicate-mode
// conditionals.
func (n *Node) SetFlag(name string, v bool) *Node {
	if n.flags == nil {
		n.flags = map[string]bool{}
	}
	n.flags[name] = v
	return n
}

// Flag reports the named boolean attribute; unset flags are false.
func (n *Node) Flag(name string) bool {
	return n.flags[name]
}

// SetComment attaches a comment node to n. The comment is a side channel
// rendered before the node's own template output, not a structural child.
func (n *Node) SetComment(c *Node) *Node {
	if c != nil {
		c.Parent = n
	}
	n.Comment = c
	return n
}

// AddOrphanComment appends a comment-shaped child that no structural
// element owns. Orphans at the tail of the position-sorted child list are
// emitted by the trailing comment scan.
func (n *Node) AddOrphanComment(c *Node) *Node {
	n.adopt(c, "", len(n.orphans))
	n.orphans = append(n.orphans, c)
	return n
}

// OrphanComments returns the orphan comments attached to n.
func (n *Node) OrphanComments() []*Node {
	return n.orphans
}

// ChildNodes returns the structural children of n plus its orphan comments,
// sorted by source position.
func (n *Node) ChildNodes() []*Node {
	var res []*Node
	for _, p := range n.Shape.Properties() {
		switch p.Kind {
		case SingleNodeProp:
			if c := p.SingleChild(n); c != nil {
				res = append(res, c)
			}
		case NodeListProp:
			res = append(res, p.ListChildren(n)...)
		}
	}
	res = append(res, n.orphans...)
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Pos < res[j].Pos
	})
	return res
}

// Root follows parent back-references to the tree root.
func (n *Node) Root() *Node {
	res := n
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

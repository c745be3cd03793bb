package csmyaml

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/unparsehq/unparse/ast"
	"github.com/unparsehq/unparse/csm"
	"github.com/unparsehq/unparse/printer"
)

// Document is a template definition file: optional shape declarations plus
// one element list per shape.
type Document struct {
	Shapes    map[string]ShapeDef     `yaml:"shapes"`
	Templates map[string][]ElementDef `yaml:"templates"`
}

type ShapeDef struct {
	Properties []PropertyDef `yaml:"properties"`
}

type PropertyDef struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
}

// ElementDef is one element of a template. Exactly one of the form fields
// may be set; a plain YAML string is shorthand for a literal.
type ElementDef struct {
	Literal          *string      `yaml:"literal"`
	Kind             string       `yaml:"kind"`
	Value            string       `yaml:"value"`
	Child            string       `yaml:"child"`
	Comment          bool         `yaml:"comment"`
	Newline          bool         `yaml:"newline"`
	Indent           bool         `yaml:"indent"`
	Unindent         bool         `yaml:"unindent"`
	TrailingComments bool         `yaml:"trailingComments"`
	List             *ListDef     `yaml:"list"`
	If               *IfDef       `yaml:"if"`
	Seq              []ElementDef `yaml:"seq"`
}

type ListDef struct {
	Property  string      `yaml:"property"`
	Kind      string      `yaml:"kind"`
	Separator *ElementDef `yaml:"separator"`
	Preceding *ElementDef `yaml:"preceding"`
	Following *ElementDef `yaml:"following"`
}

type IfDef struct {
	Property string       `yaml:"property"`
	Flag     string       `yaml:"flag"`
	Expr     string       `yaml:"expr"`
	Then     []ElementDef `yaml:"then"`
	Else     []ElementDef `yaml:"else"`
}

func (e *ElementDef) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err == nil {
		e.Literal = &s
		return nil
	}
	type raw ElementDef
	var r raw
	if err := unmarshal(&r); err != nil {
		return err
	}
	*e = ElementDef(r)
	return nil
}

// Load parses a template document and registers its templates into reg.
// Shapes declared by the document are declared with the ast package first,
// so a dialect can ship new forms entirely as data.
func Load(data []byte, reg *csm.Registry) error {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", csm.ErrBadTemplate, err)
	}
	for name, def := range doc.Shapes {
		props := make([]ast.Property, 0, len(def.Properties))
		for _, pd := range def.Properties {
			kind, err := propertyKind(pd.Kind)
			if err != nil {
				return fmt.Errorf("shape %s: %w", name, err)
			}
			props = append(props, ast.Property{Name: pd.Name, Kind: kind})
		}
		if err := ast.DeclareShape(ast.Shape(name), props...); err != nil {
			return err
		}
	}
	for name, defs := range doc.Templates {
		shape := ast.Shape(name)
		b := csm.NewBuilder()
		for i := range defs {
			el, err := compile(shape, &defs[i])
			if err != nil {
				return fmt.Errorf("template %s: %w", name, err)
			}
			b.Add(el)
		}
		if err := reg.Register(shape, b); err != nil {
			return err
		}
	}
	return nil
}

func propertyKind(v string) (ast.PropertyKind, error) {
	k, ok := map[string]ast.PropertyKind{
		"value":  ast.SingleValueProp,
		"node":   ast.SingleNodeProp,
		"values": ast.ValueListProp,
		"nodes":  ast.NodeListProp,
	}[v]
	if ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: unknown property kind %q", csm.ErrBadTemplate, v)
}

func textKind(v string) (printer.Kind, error) {
	if v == "" {
		return printer.Text, nil
	}
	k, ok := map[string]printer.Kind{
		"text":    printer.Text,
		"keyword": printer.Keyword,
		"ident":   printer.Ident,
		"literal": printer.Literal,
		"comment": printer.Comment,
		"punct":   printer.Punct,
	}[v]
	if ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: unknown text kind %q", csm.ErrBadTemplate, v)
}

func compile(shape ast.Shape, def *ElementDef) (csm.Element, error) {
	forms := 0
	if def.Literal != nil {
		forms++
	}
	if def.Value != "" {
		forms++
	}
	if def.Child != "" {
		forms++
	}
	for _, b := range []bool{def.Comment, def.Newline, def.Indent, def.Unindent, def.TrailingComments} {
		if b {
			forms++
		}
	}
	if def.List != nil {
		forms++
	}
	if def.If != nil {
		forms++
	}
	if def.Seq != nil {
		forms++
	}
	if forms != 1 {
		return nil, fmt.Errorf("%w: element must use exactly one form, got %d", csm.ErrBadTemplate, forms)
	}

	switch {
	case def.Literal != nil:
		kind, err := textKind(def.Kind)
		if err != nil {
			return nil, err
		}
		return csm.Text(kind, *def.Literal), nil
	case def.Value != "":
		prop, err := ast.LookupProperty(shape, def.Value)
		if err != nil {
			return nil, err
		}
		kind, err := textKind(def.Kind)
		if err != nil {
			return nil, err
		}
		if def.Kind == "" {
			kind = printer.Literal
		}
		return csm.ValueKind(kind, prop), nil
	case def.Child != "":
		prop, err := ast.LookupProperty(shape, def.Child)
		if err != nil {
			return nil, err
		}
		return csm.Child(prop), nil
	case def.Comment:
		return csm.AttachedComment(), nil
	case def.Newline:
		return csm.Newline(), nil
	case def.Indent:
		return csm.Indent(), nil
	case def.Unindent:
		return csm.Unindent(), nil
	case def.TrailingComments:
		return csm.OrphanCommentsEnding(), nil
	case def.List != nil:
		return compileList(shape, def.List)
	case def.If != nil:
		return compileIf(shape, def.If)
	default:
		return compileSeq(shape, def.Seq)
	}
}

func compileList(shape ast.Shape, def *ListDef) (csm.Element, error) {
	prop, err := ast.LookupProperty(shape, def.Property)
	if err != nil {
		return nil, err
	}
	kind, err := textKind(def.Kind)
	if err != nil {
		return nil, err
	}
	if def.Kind == "" {
		kind = printer.Literal
	}
	var sep, pre, post csm.Element
	for _, sub := range []struct {
		def *ElementDef
		el  *csm.Element
	}{
		{def.Separator, &sep},
		{def.Preceding, &pre},
		{def.Following, &post},
	} {
		if sub.def == nil {
			continue
		}
		el, err := compile(shape, sub.def)
		if err != nil {
			return nil, err
		}
		*sub.el = el
	}
	return csm.ListKind(kind, prop, sep, pre, post), nil
}

func compileIf(shape ast.Shape, def *IfDef) (csm.Element, error) {
	conds := 0
	for _, s := range []string{def.Property, def.Flag, def.Expr} {
		if s != "" {
			conds++
		}
	}
	if conds != 1 {
		return nil, fmt.Errorf("%w: conditional needs exactly one of property, flag and expr", csm.ErrBadTemplate)
	}
	then, err := compileSeq(shape, def.Then)
	if err != nil {
		return nil, err
	}
	var els csm.Element
	if def.Else != nil {
		els, err = compileSeq(shape, def.Else)
		if err != nil {
			return nil, err
		}
	}
	switch {
	case def.Property != "":
		prop, err := ast.LookupProperty(shape, def.Property)
		if err != nil {
			return nil, err
		}
		if els == nil {
			return csm.If(prop, then), nil
		}
		return csm.IfElse(prop, then, els), nil
	case def.Flag != "":
		return csm.IfFlag(def.Flag, then, els), nil
	default:
		pred, err := csm.ExprPredicate(def.Expr)
		if err != nil {
			return nil, err
		}
		return csm.IfPred(pred, then, els), nil
	}
}

func compileSeq(shape ast.Shape, defs []ElementDef) (csm.Element, error) {
	els := make([]csm.Element, 0, len(defs))
	for i := range defs {
		el, err := compile(shape, &defs[i])
		if err != nil {
			return nil, err
		}
		els = append(els, el)
	}
	if len(els) == 1 {
		return els[0], nil
	}
	return csm.Seq(els...), nil
}

package ast

import "github.com/modc-lang/modc/location"

// Modification is the raw syntax of a `[classModification] [= expr]` suffix
// attached to a component declaration, extends clause, short class, or
// element modification. The modification package turns this syntax into the
// algebra's layered, mergeable Modification value (spec §4.3); this type
// only records what was written.
type Modification struct {
	ClassMod    *ClassModification // nil if no parenthesized argument list
	Expr        Expr               // nil if no `= expr` suffix
	Description string
	Annotation  *AnnotationClause
	NodeSpan    location.Span
}

// Span returns the modification's source span.
func (m *Modification) Span() location.Span { return m.NodeSpan }

// ClassModification is a parenthesized, comma-separated list of modification
// arguments: `(arg1, arg2, ...)`.
type ClassModification struct {
	Arguments []ModificationArgument
	NodeSpan  location.Span
}

// Span returns the class modification's source span.
func (c *ClassModification) Span() location.Span { return c.NodeSpan }

// ModificationArgument is the sum of the three argument shapes a class
// modification may contain.
type ModificationArgument interface {
	Span() location.Span
	modificationArgumentNode()
}

// ElementModification is `[each][final] name [modification] [description]`.
type ElementModification struct {
	Each        bool
	Final       bool
	Name        DottedName
	Mod         *Modification
	Description string
	NodeSpan    location.Span
}

func (*ElementModification) modificationArgumentNode() {}

// Span implements ModificationArgument.
func (e *ElementModification) Span() location.Span { return e.NodeSpan }

// DottedName is a dotted element path, e.g. `f.q` in `Foo f(q = 2.0)`'s
// extracted nested modification, or a single-segment name at the top level.
type DottedName []string

// String joins the path with dots.
func (d DottedName) String() string {
	s := ""
	for i, part := range d {
		if i > 0 {
			s += "."
		}
		s += part
	}
	return s
}

// Head returns the first path segment.
func (d DottedName) Head() string {
	if len(d) == 0 {
		return ""
	}
	return d[0]
}

// Tail returns the path with the first segment removed.
func (d DottedName) Tail() DottedName {
	if len(d) <= 1 {
		return nil
	}
	return d[1:]
}

// ParameterModification is `name = expr`, used when a record value is
// constructed from a function-like call (spec §4.6).
type ParameterModification struct {
	Name     string
	Expr     Expr
	NodeSpan location.Span
}

func (*ParameterModification) modificationArgumentNode() {}

// Span implements ModificationArgument.
func (p *ParameterModification) Span() location.Span { return p.NodeSpan }

// ElementRedeclaration is `redeclare [each][final][replaceable]
// (short-class-def | component-clause1)`.
type ElementRedeclaration struct {
	Each        bool
	Final       bool
	Replaceable bool

	// Exactly one of ClassDef, Component is non-nil.
	ClassDef  *ClassDefinition
	Component *ComponentClause

	NodeSpan location.Span
}

func (*ElementRedeclaration) modificationArgumentNode() {}

// Span implements ModificationArgument.
func (r *ElementRedeclaration) Span() location.Span { return r.NodeSpan }

// Name returns the redeclared identifier, from whichever variant is set.
func (r *ElementRedeclaration) Name() string {
	if r.ClassDef != nil {
		return r.ClassDef.Name()
	}
	if r.Component != nil && len(r.Component.Declarations) > 0 {
		return r.Component.Declarations[0].Name
	}
	return ""
}

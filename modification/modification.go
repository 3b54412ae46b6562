package modification

import (
	"github.com/modc-lang/modc/ast"
	"github.com/modc-lang/modc/scope"
)

// Modification is spec §4.3's layered override value: an ordered list of
// arguments, an optional expression, an optional description, and a nested
// `annotations` modification. Modifications own their argument vectors and
// their folded expression memo (spec §5's ownership list); they hold weak
// references to AST nodes via Expr/ClassDef/Component fields rather than
// copying them.
type Modification struct {
	Scope       scope.Node
	Arguments   []Argument
	Expr        ast.Expr
	Description string
	Annotations *Modification

	foldedSet bool
	folded    any // expr.Value, stored as any to avoid a modification->expr->modification cycle risk
}

// Folded returns the memoized constant-folded value for Expr, if one has
// been computed. The flatten and annotation packages write it via SetFolded.
func (m *Modification) Folded() (any, bool) {
	if m == nil {
		return nil, false
	}
	return m.folded, m.foldedSet
}

// SetFolded memoizes the constant-folded value of Expr. Safe to call once
// per Modification; the engine is single-threaded (spec §5) so no locking
// is needed.
func (m *Modification) SetFolded(v any) {
	m.folded = v
	m.foldedSet = true
}

// Argument is the sum of the three modification-argument shapes (spec §4.3).
type Argument interface {
	// Name is the argument's lookup key for mergeModificationArguments.
	Name() string
	Hash() [32]byte
	argumentNode()
}

// ElementModification is a single-segment dotted-name override, e.g. the
// `j` in `parameter Real j(unit = "kg.m2")`. A multi-segment AST
// ElementModification (`f.q = 2.0`) is flattened into a chain of
// single-segment ElementModifications via [buildElementModification], each
// wrapping the next in Nested.
type ElementModification struct {
	Each  bool
	Final bool
	Head  string
	Nested *Modification
}

func (*ElementModification) argumentNode() {}

// Name implements Argument.
func (e *ElementModification) Name() string { return e.Head }

// ParameterModification is `name = expr`, used when a record value is
// constructed from a function-like call (spec §4.6).
type ParameterModification struct {
	ParamName string
	Expr      ast.Expr
}

func (*ParameterModification) argumentNode() {}

// Name implements Argument.
func (p *ParameterModification) Name() string { return p.ParamName }

// Redeclaration replaces a class or component declaration wholesale. Its
// ReplacementHash is computed from the AST-level structural content of the
// replacement at construction time (kind, name, nested modification),
// rather than from a fully resolved instance: resolving to a live
// instance.ClassInstance here would make modification depend on instance,
// which must depend on modification to build merged modifications during
// instantiation. Hashing the AST shape is equivalent for cache-key purposes
// because two structurally identical redeclaration targets always
// instantiate identically.
type Redeclaration struct {
	Each        bool
	Final       bool
	Replaceable bool
	RedeclName  string

	// Exactly one of ClassDef, Component is non-nil.
	ClassDef  *ast.ClassDefinition
	Component *ast.ComponentClause

	ReplacementHash [32]byte
}

func (*Redeclaration) argumentNode() {}

// Name implements Argument.
func (r *Redeclaration) Name() string { return r.RedeclName }

// FromAST builds a Modification from its raw AST syntax under scope s.
// A nil m yields an empty Modification, matching components and extends
// clauses with no written modification at all.
func FromAST(s scope.Node, m *ast.Modification) *Modification {
	mod := &Modification{Scope: s}
	if m == nil {
		return mod
	}
	mod.Expr = m.Expr
	mod.Description = m.Description
	if m.ClassMod != nil {
		for _, arg := range m.ClassMod.Arguments {
			mod.Arguments = append(mod.Arguments, fromArgument(s, arg))
		}
	}
	if m.Annotation != nil {
		mod.Annotations = FromAST(s, m.Annotation.Modification)
	}
	return mod
}

func fromArgument(s scope.Node, a ast.ModificationArgument) Argument {
	switch n := a.(type) {
	case *ast.ElementModification:
		em := buildElementModification(s, n.Each, n.Final, n.Name, n.Mod)
		if em.Nested.Description == "" {
			em.Nested.Description = n.Description
		}
		return em
	case *ast.ParameterModification:
		return &ParameterModification{ParamName: n.Name, Expr: n.Expr}
	case *ast.ElementRedeclaration:
		return &Redeclaration{
			Each:            n.Each,
			Final:           n.Final,
			Replaceable:     n.Replaceable,
			RedeclName:      n.Name(),
			ClassDef:        n.ClassDef,
			Component:       n.Component,
			ReplacementHash: hashRedeclarationTarget(n),
		}
	default:
		panic("modification: unhandled ModificationArgument variant")
	}
}

// buildElementModification flattens a (possibly dotted) AST element
// modification into a chain of single-segment ElementModifications, per
// spec §4.3's construction rule: `f.q = 2.0` becomes an ElementModification
// named "f" whose Nested modification has one argument named "q".
func buildElementModification(s scope.Node, each, final bool, path ast.DottedName, astMod *ast.Modification) *ElementModification {
	head := path.Head()
	tail := path.Tail()
	if len(tail) == 0 {
		return &ElementModification{Each: each, Final: final, Head: head, Nested: FromAST(s, astMod)}
	}
	inner := buildElementModification(s, false, false, tail, astMod)
	return &ElementModification{
		Each:   each,
		Final:  final,
		Head:   head,
		Nested: &Modification{Scope: s, Arguments: []Argument{inner}},
	}
}

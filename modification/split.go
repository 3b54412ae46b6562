package modification

import "github.com/modc-lang/modc/ast"

// Split implements spec §4.3's split(n): it fans a modification out into n
// per-element modifications, one per array index (1-based, matching
// Modelica array indexing).
func Split(m *Modification, n int) []*Modification {
	out := make([]*Modification, n)
	for i := range n {
		out[i] = SplitAt(m, n, i+1)
	}
	return out
}

// SplitAt implements split(n, i): the single per-element modification for
// 1-based index i. Every layer propagates per spec §4.3: ElementModification
// splits its nested argument list; ParameterModification splits its
// expression; Redeclaration is copied unchanged, since the same replacement
// class/component applies to every array element regardless of index.
func SplitAt(m *Modification, n, i int) *Modification {
	if m == nil {
		return nil
	}
	out := &Modification{Scope: m.Scope, Description: m.Description}
	for _, arg := range m.Arguments {
		out.Arguments = append(out.Arguments, splitArgument(arg, n, i))
	}
	out.Expr = indexAt(m.Expr, i)
	out.Annotations = SplitAt(m.Annotations, n, i)
	return out
}

func splitArgument(a Argument, n, i int) Argument {
	switch v := a.(type) {
	case *ElementModification:
		return &ElementModification{Each: v.Each, Final: v.Final, Head: v.Head, Nested: SplitAt(v.Nested, n, i)}
	case *ParameterModification:
		return &ParameterModification{ParamName: v.ParamName, Expr: indexAt(v.Expr, i)}
	case *Redeclaration:
		return v
	default:
		panic("modification: unhandled Argument variant")
	}
}

// indexAt wraps e in a one-dimensional index expression selecting element
// i, deferring the actual per-element selection to folding (interp) rather
// than resolving it here, since Modification stores unevaluated syntax.
func indexAt(e ast.Expr, i int) ast.Expr {
	if e == nil {
		return nil
	}
	return &ast.IndexExpr{
		Base:    e,
		Indices: []ast.Expr{&ast.IntLit{Value: int64(i)}},
	}
}

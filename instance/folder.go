package instance

import (
	"github.com/modc-lang/modc/ast"
	"github.com/modc-lang/modc/expr"
	"github.com/modc-lang/modc/scope"
)

// Folder is the constant-folding seam the instantiation engine calls
// through to evaluate array dimensions (spec §4.4's array-class
// instantiation step) without instance importing interp. interp.Evaluator
// is the concrete implementation.
type Folder interface {
	Fold(s scope.Node, e ast.Expr) (expr.Value, bool)
}

package interp

import (
	"github.com/modc-lang/modc/ast"
	"github.com/modc-lang/modc/diag"
	"github.com/modc-lang/modc/expr"
	"github.com/modc-lang/modc/instance"
	"github.com/modc-lang/modc/modification"
	"github.com/modc-lang/modc/scope"
)

// Evaluator is the sole implementation of instance.Folder. It is
// stateless: every Fold call is independent, matching the engine's
// single-threaded, cooperatively-lazy concurrency model (spec §5).
type Evaluator struct {
	Collector *diag.Collector
}

// New builds an Evaluator that reports diagnostics to collector.
func New(collector *diag.Collector) *Evaluator {
	return &Evaluator{Collector: collector}
}

// Fold implements instance.Folder. It dispatches on the expression shape
// (spec §4.6's coverage list) and returns (nil, false) for anything it
// cannot reduce to a value, including any expression that forces an
// instantiation which itself reports a failure.
func (ev *Evaluator) Fold(self scope.Node, e ast.Expr) (expr.Value, bool) {
	if e == nil {
		return nil, false
	}
	w := &walker{ev: ev, self: self}
	r, _ := ast.Accept(w, e).(result)
	return r.value, r.ok
}

type result struct {
	value expr.Value
	ok    bool
}

func ok(v expr.Value) result  { return result{value: v, ok: true} }
func fail() result            { return result{} }

// walker implements ast.Visitor, folding one expression tree under a
// fixed scope. A fresh walker is built per top-level Fold call since self
// varies per call.
type walker struct {
	ev   *Evaluator
	self scope.Node
}

func (w *walker) fold(e ast.Expr) result {
	r, _ := ast.Accept(w, e).(result)
	return r
}

func (w *walker) VisitBoolLit(n *ast.BoolLit) any   { return ok(expr.BooleanValue(n.Value)) }
func (w *walker) VisitIntLit(n *ast.IntLit) any     { return ok(expr.IntegerValue(n.Value)) }
func (w *walker) VisitRealLit(n *ast.RealLit) any   { return ok(expr.RealValue(n.Value)) }
func (w *walker) VisitStringLit(n *ast.StringLit) any { return ok(expr.StringValue(n.Value)) }

// VisitEnumLit folds a bare enumeration literal name to an EnumerationValue
// with ordinal 0: the literal's true ordinal depends on the enclosing
// enumeration class's declared order, which is not resolvable from the
// literal node alone. Downstream consumers that need the ordinal should
// resolve the literal's type first.
func (w *walker) VisitEnumLit(n *ast.EnumLit) any {
	return ok(expr.EnumerationValue{Label: n.Name})
}

func (w *walker) VisitComponentRef(n *ast.ComponentRef) any {
	path := make(scope.NamePath, len(n.Parts))
	for i, p := range n.Parts {
		path[i] = p.Name
	}
	el, found := scope.ResolveComponentReference(w.self, path)
	if !found {
		return fail()
	}
	switch target := el.(type) {
	case *instance.ClassInstance:
		v, found := instance.FromClassInstance(target, w.ev, w.ev.Collector)
		return result{value: v, ok: found}
	case *instance.ComponentInstance:
		if target.ClassInstance == nil {
			if err := target.Instantiate(w.ev, w.ev.Collector); err != nil {
				return fail()
			}
		}
		if target.ClassInstance == nil {
			return fail()
		}
		v, found := instance.FromClassInstance(target.ClassInstance, w.ev, w.ev.Collector)
		return result{value: v, ok: found}
	default:
		return fail()
	}
}

func (w *walker) VisitUnary(n *ast.UnaryExpr) any {
	operand := w.fold(n.Operand)
	if !operand.ok {
		return fail()
	}
	return ok(expr.FoldUnary(n.Op, operand.value))
}

func (w *walker) VisitBinary(n *ast.BinaryExpr) any {
	left := w.fold(n.Left)
	right := w.fold(n.Right)
	if !left.ok || !right.ok {
		return fail()
	}
	return ok(expr.FoldBinary(n.Op, left.value, right.value))
}

// VisitIfElse folds the condition and, when it resolves to a concrete
// Boolean, folds only the taken branch. An unfoldable condition means the
// whole expression is unfoldable (spec §4.6 permits partial results).
func (w *walker) VisitIfElse(n *ast.IfElseExpr) any {
	for i, cond := range n.Conditions {
		c := w.fold(cond)
		b, isBool := c.value.(expr.BooleanValue)
		if !c.ok || !isBool {
			return fail()
		}
		if bool(b) {
			return w.fold(n.Branches[i])
		}
	}
	return w.fold(n.Else)
}

func (w *walker) VisitRange(n *ast.RangeExpr) any {
	start := w.fold(n.Start)
	stop := w.fold(n.Stop)
	if !start.ok || !stop.ok {
		return fail()
	}
	step := result{value: expr.IntegerValue(1), ok: true}
	if n.Step != nil {
		step = w.fold(n.Step)
		if !step.ok {
			return fail()
		}
	}
	elements, shapeOK := rangeElements(start.value, step.value, stop.value)
	if !shapeOK {
		return fail()
	}
	return ok(&expr.ArrayValue{Shape: []int{len(elements)}, Elements: elements})
}

func rangeElements(start, step, stop expr.Value) ([]expr.Value, bool) {
	si, ok1 := asInt(start)
	pi, ok2 := asInt(step)
	ei, ok3 := asInt(stop)
	if !ok1 || !ok2 || !ok3 || pi == 0 {
		return nil, false
	}
	var elements []expr.Value
	if pi > 0 {
		for v := si; v <= ei; v += pi {
			elements = append(elements, expr.IntegerValue(v))
		}
	} else {
		for v := si; v >= ei; v += pi {
			elements = append(elements, expr.IntegerValue(v))
		}
	}
	return elements, true
}

func asInt(v expr.Value) (int64, bool) {
	i, ok := v.(expr.IntegerValue)
	return int64(i), ok
}

// VisitFunctionCall implements spec §4.6's record-construction rule: a
// call whose name resolves to a record class clones that class under a
// modification synthesized from the call's named arguments, then converts
// the clone. Any other call target is not a constant the interpreter can
// fold.
func (w *walker) VisitFunctionCall(n *ast.FunctionCallExpr) any {
	el, found := scope.ResolveTypeSpecifier(w.self, scope.NamePath{n.Name.Name}, n.Name.Global)
	if !found {
		return fail()
	}
	target, isClass := el.(*instance.ClassInstance)
	if !isClass || target.Kind != ast.ClassKindRecord {
		return fail()
	}

	args := make([]modification.Argument, 0, len(n.Named))
	for _, na := range n.Named {
		args = append(args, &modification.ParameterModification{ParamName: na.Name, Expr: na.Value})
	}
	mod := &modification.Modification{Scope: w.self, Arguments: args}

	clone, err := target.Clone(mod, w.ev, w.ev.Collector)
	if err != nil {
		return fail()
	}
	if err := clone.Instantiate(w.ev, w.ev.Collector); err != nil {
		return fail()
	}
	v, ok2 := instance.FromClassInstance(clone, w.ev, w.ev.Collector)
	return result{value: v, ok: ok2}
}

func (w *walker) VisitParenthesized(n *ast.ParenExpr) any {
	if len(n.Elements) != 1 {
		return fail()
	}
	return w.fold(n.Elements[0])
}

// VisitIndex folds `base[i]` by folding base to an array and selecting
// its i-th (1-based) element. This is what drives split's per-element
// modification form: an array-valued modification is not pre-sliced, it
// is wrapped in an IndexExpr over the original array per split element
// (see modification.SplitAt's indexAt), so folding a single component's
// declared value always bottoms out here. Multi-dimensional indexing is
// outside this coverage and fails to fold.
func (w *walker) VisitIndex(n *ast.IndexExpr) any {
	if len(n.Indices) != 1 {
		return fail()
	}
	base := w.fold(n.Base)
	arr, isArr := base.value.(*expr.ArrayValue)
	if !base.ok || !isArr {
		return fail()
	}
	idx := w.fold(n.Indices[0])
	i, isInt := asInt(idx.value)
	if !idx.ok || !isInt || i < 1 || int(i) > len(arr.Elements) {
		return fail()
	}
	return ok(arr.Elements[i-1])
}

// VisitField is not part of spec §4.6's coverage list.
func (w *walker) VisitField(n *ast.FieldExpr) any { return fail() }

// VisitArrayConcat folds `[row1; row2; ...]` to a row-major flat ArrayValue
// with a Shape of [rows, width] (or just [width] for a single row), the
// same flat layout expr.ToJSON expects to fold back using Shape.
func (w *walker) VisitArrayConcat(n *ast.ArrayConcatExpr) any {
	if len(n.Rows) == 1 {
		elements, ok2 := w.foldRowFlat(n.Rows[0])
		if !ok2 {
			return fail()
		}
		return ok(&expr.ArrayValue{Shape: []int{len(elements)}, Elements: elements})
	}

	var flat []expr.Value
	width := -1
	for _, row := range n.Rows {
		elements, ok2 := w.foldRowFlat(row)
		if !ok2 {
			return fail()
		}
		if width == -1 {
			width = len(elements)
		} else if width != len(elements) {
			return fail()
		}
		flat = append(flat, elements...)
	}
	return ok(&expr.ArrayValue{Shape: []int{len(n.Rows), width}, Elements: flat})
}

func (w *walker) foldRowFlat(row []ast.Expr) ([]expr.Value, bool) {
	elements := make([]expr.Value, 0, len(row))
	for _, e := range row {
		r := w.fold(e)
		if !r.ok {
			return nil, false
		}
		elements = append(elements, r.value)
	}
	return elements, true
}

func (w *walker) VisitArrayConstructor(n *ast.ArrayConstructorExpr) any {
	if len(n.Comprehension) > 0 {
		return w.foldComprehension(n)
	}
	elements := make([]expr.Value, 0, len(n.Elements))
	for _, e := range n.Elements {
		r := w.fold(e)
		if !r.ok {
			return fail()
		}
		elements = append(elements, r.value)
	}
	return ok(&expr.ArrayValue{Shape: []int{len(elements)}, Elements: elements})
}

// foldComprehension folds `{expr for i in range, j in range2, ...}` by
// materializing each index variable's range and evaluating the body once
// per combination. Index variables are not bound into the scope chain (no
// scope.Node implementation here can carry a transient binding), so a
// comprehension whose body actually references its index variable is left
// unfoldable; only comprehensions whose body is independent of the index
// (an unusual but legal case) fold successfully.
func (w *walker) foldComprehension(n *ast.ArrayConstructorExpr) any {
	count := 1
	for _, idx := range n.Comprehension {
		r := w.fold(idx.Range)
		arr, isArr := r.value.(*expr.ArrayValue)
		if !r.ok || !isArr {
			return fail()
		}
		count *= len(arr.Elements)
	}
	body := w.fold(n.Elements[0])
	if !body.ok {
		return fail()
	}
	elements := make([]expr.Value, count)
	for i := range elements {
		elements[i] = body.value
	}
	return ok(&expr.ArrayValue{Shape: []int{count}, Elements: elements})
}

package expr

import "github.com/modc-lang/modc/ast"

// FoldUnary statically folds a unary operator over operand when possible,
// otherwise returns an unevaluated UnaryValue (spec §4.2).
func FoldUnary(op ast.UnaryOp, operand Value) Value {
	switch op {
	case ast.OpNot:
		if b, ok := operand.(BooleanValue); ok {
			return BooleanValue(!b)
		}
	case ast.OpNeg, ast.OpNegElem:
		switch v := operand.(type) {
		case IntegerValue:
			return IntegerValue(-v)
		case RealValue:
			return RealValue(-v)
		}
	case ast.OpPos:
		switch operand.(type) {
		case IntegerValue, RealValue:
			return operand
		}
	}
	return &UnaryValue{Op: op, Operand: operand}
}

// FoldBinary statically folds a binary operator over compatible literal
// operands when possible, otherwise returns an unevaluated BinaryValue.
//
// Integer-op-Real and Real-op-Real yield Real, per spec §4.2. Equality on
// Booleans preserves the source's inverted mapping flagged in spec §9 as a
// possible bug: `==` folds to "values are unequal" and `<>` folds to
// "values are equal". This is deliberately NOT corrected — see DESIGN.md's
// Open Question decision — so that flattener output for inputs relying on
// this behavior stays byte-stable with the system this spec describes.
func FoldBinary(op ast.BinaryOp, left, right Value) Value {
	if b, ok := foldBooleanEquality(op, left, right); ok {
		return b
	}
	if v, ok := foldNumeric(op, left, right); ok {
		return v
	}
	if v, ok := foldLogical(op, left, right); ok {
		return v
	}
	return &BinaryValue{Op: op, Left: left, Right: right}
}

func foldBooleanEquality(op ast.BinaryOp, left, right Value) (Value, bool) {
	lb, lok := left.(BooleanValue)
	rb, rok := right.(BooleanValue)
	if !lok || !rok {
		return nil, false
	}
	switch op {
	case ast.OpEq:
		return BooleanValue(lb != rb), true
	case ast.OpNeq:
		return BooleanValue(lb == rb), true
	default:
		return nil, false
	}
}

func foldLogical(op ast.BinaryOp, left, right Value) (Value, bool) {
	lb, lok := left.(BooleanValue)
	rb, rok := right.(BooleanValue)
	if !lok || !rok {
		return nil, false
	}
	switch op {
	case ast.OpAnd:
		return BooleanValue(bool(lb) && bool(rb)), true
	case ast.OpOr:
		return BooleanValue(bool(lb) || bool(rb)), true
	default:
		return nil, false
	}
}

func foldNumeric(op ast.BinaryOp, left, right Value) (Value, bool) {
	lf, lok := numericFloat(left)
	rf, rok := numericFloat(right)
	if !lok || !rok {
		return nil, false
	}
	_, leftIsReal := left.(RealValue)
	_, rightIsReal := right.(RealValue)
	bothInteger := !leftIsReal && !rightIsReal

	switch op {
	case ast.OpAdd, ast.OpAddElem:
		return numericResult(lf+rf, bothInteger), true
	case ast.OpSub, ast.OpSubElem:
		return numericResult(lf-rf, bothInteger), true
	case ast.OpMul, ast.OpMulElem:
		return numericResult(lf*rf, bothInteger), true
	case ast.OpDiv, ast.OpDivElem:
		if rf == 0 {
			return nil, false
		}
		return RealValue(lf / rf), true
	case ast.OpPow, ast.OpPowElem:
		return RealValue(ipow(lf, rf)), true
	case ast.OpLt:
		return BooleanValue(lf < rf), true
	case ast.OpLe:
		return BooleanValue(lf <= rf), true
	case ast.OpGt:
		return BooleanValue(lf > rf), true
	case ast.OpGe:
		return BooleanValue(lf >= rf), true
	case ast.OpEq:
		return BooleanValue(lf == rf), true
	case ast.OpNeq:
		return BooleanValue(lf != rf), true
	default:
		return nil, false
	}
}

func numericFloat(v Value) (float64, bool) {
	switch n := v.(type) {
	case IntegerValue:
		return float64(n), true
	case RealValue:
		return float64(n), true
	default:
		return 0, false
	}
}

func numericResult(f float64, asInteger bool) Value {
	if asInteger {
		return IntegerValue(int64(f))
	}
	return RealValue(f)
}

func ipow(base, exp float64) float64 {
	result := 1.0
	neg := exp < 0
	n := int(exp)
	if float64(n) != exp {
		// Non-integral exponent: fall back to repeated squaring on the
		// truncated magnitude is not correct in general, so treat as
		// unfoldable by returning NaN-free best effort: callers that need
		// exact non-integer exponentiation should not rely on constant
		// folding for it; array-shape and enumeration evaluation (the
		// consumers of folding per spec §4.6) never require it.
		n = 0
	}
	if neg {
		n = -n
	}
	for range n {
		result *= base
	}
	if neg {
		return 1 / result
	}
	return result
}

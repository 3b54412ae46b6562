package expr

import "github.com/modc-lang/modc/ast"

// Value is the closed set of Expression IR node kinds (spec §4.2). A
// private marker method prevents external packages from defining new
// variants; [Accept] dispatches exhaustively over the set.
type Value interface {
	// Hash returns a stable digest, identical for structurally identical
	// values, used by the modification algebra's content-addressed cache.
	Hash() [32]byte

	value()
}

// Visitor dispatches over every Value variant.
type Visitor interface {
	VisitBoolean(BooleanValue) any
	VisitInteger(IntegerValue) any
	VisitReal(RealValue) any
	VisitString(StringValue) any
	VisitEnumeration(EnumerationValue) any
	VisitArray(*ArrayValue) any
	VisitRecord(*RecordValue) any
	VisitUnary(*UnaryValue) any
	VisitBinary(*BinaryValue) any
}

// Accept dispatches v to the matching Visitor method.
func Accept(vis Visitor, v Value) any {
	switch n := v.(type) {
	case BooleanValue:
		return vis.VisitBoolean(n)
	case IntegerValue:
		return vis.VisitInteger(n)
	case RealValue:
		return vis.VisitReal(n)
	case StringValue:
		return vis.VisitString(n)
	case EnumerationValue:
		return vis.VisitEnumeration(n)
	case *ArrayValue:
		return vis.VisitArray(n)
	case *RecordValue:
		return vis.VisitRecord(n)
	case *UnaryValue:
		return vis.VisitUnary(n)
	case *BinaryValue:
		return vis.VisitBinary(n)
	default:
		panic("expr: unhandled Value variant")
	}
}

// BooleanValue is a folded Boolean literal.
type BooleanValue bool

func (BooleanValue) value() {}

// IntegerValue is a folded integer literal.
type IntegerValue int64

func (IntegerValue) value() {}

// RealValue is a folded real literal.
type RealValue float64

func (RealValue) value() {}

// StringValue is a folded string literal.
type StringValue string

func (StringValue) value() {}

// EnumerationValue is a selected enumeration literal: its ordinal (1-based,
// per Modelica convention) and label.
type EnumerationValue struct {
	Ordinal int
	Label   string
}

func (EnumerationValue) value() {}

// ArrayValue is a folded array with its concrete or partially-deferred
// shape. A shape entry of -1 denotes a deferred (`:`) dimension (spec §3
// invariant 3).
type ArrayValue struct {
	Shape    []int
	Elements []Value
}

func (*ArrayValue) value() {}

// RecordValue is an ordered name -> Value map, optionally tagged with the
// originating class name (spec §4.2's "fromClassInstance" rule).
type RecordValue struct {
	ClassName string // empty if untagged
	Fields    []RecordField
}

func (*RecordValue) value() {}

// RecordField is one named entry of a RecordValue, kept ordered rather than
// in a plain map so JSON serialization and hashing are deterministic.
type RecordField struct {
	Name  string
	Value Value
}

// UnaryValue is an unevaluated unary expression retained because one or
// both operands could not be folded to a literal.
type UnaryValue struct {
	Op      ast.UnaryOp
	Operand Value
}

func (*UnaryValue) value() {}

// BinaryValue is an unevaluated binary expression retained for the same
// reason as UnaryValue.
type BinaryValue struct {
	Op    ast.BinaryOp
	Left  Value
	Right Value
}

func (*BinaryValue) value() {}

package ast

import "github.com/modc-lang/modc/location"

// BinaryOp enumerates the additive/multiplicative/relational/logical
// operators, fixed by the grammar at precedence
// or < and < relational < additive < multiplicative < exponentiation
// (exponentiation right-associative; the rest left-associative).
type BinaryOp string

const (
	OpOr  BinaryOp = "or"
	OpAnd BinaryOp = "and"

	OpLt  BinaryOp = "<"
	OpLe  BinaryOp = "<="
	OpGt  BinaryOp = ">"
	OpGe  BinaryOp = ">="
	OpEq  BinaryOp = "=="
	OpNeq BinaryOp = "<>"

	OpAdd      BinaryOp = "+"
	OpSub      BinaryOp = "-"
	OpAddElem  BinaryOp = ".+"
	OpSubElem  BinaryOp = ".-"

	OpMul      BinaryOp = "*"
	OpDiv      BinaryOp = "/"
	OpMulElem  BinaryOp = ".*"
	OpDivElem  BinaryOp = "./"

	OpPow     BinaryOp = "^"
	OpPowElem BinaryOp = ".^"
)

// UnaryOp enumerates the unary operators: logical not and additive sign.
type UnaryOp string

const (
	OpNot    UnaryOp = "not"
	OpNeg    UnaryOp = "-"
	OpPos    UnaryOp = "+"
	OpNegElem UnaryOp = ".-"
)

// Expr is the closed set of Modelica expression node kinds. A private
// marker method prevents external packages from defining new variants;
// [Visitor] dispatches exhaustively over the set below.
type Expr interface {
	Span() location.Span
	exprNode()
}

// Visitor dispatches over every Expr variant. Implementations must handle
// all methods; there is no default fallback, matching the exhaustiveness
// the grammar's fixed operator and literal vocabulary affords.
type Visitor interface {
	VisitBoolLit(*BoolLit) any
	VisitIntLit(*IntLit) any
	VisitRealLit(*RealLit) any
	VisitStringLit(*StringLit) any
	VisitEnumLit(*EnumLit) any
	VisitComponentRef(*ComponentRef) any
	VisitUnary(*UnaryExpr) any
	VisitBinary(*BinaryExpr) any
	VisitIfElse(*IfElseExpr) any
	VisitRange(*RangeExpr) any
	VisitFunctionCall(*FunctionCallExpr) any
	VisitParenthesized(*ParenExpr) any
	VisitIndex(*IndexExpr) any
	VisitField(*FieldExpr) any
	VisitArrayConcat(*ArrayConcatExpr) any
	VisitArrayConstructor(*ArrayConstructorExpr) any
}

// Accept dispatches e to the matching Visitor method. It panics on an
// Expr implementation outside this package's closed set, which can only
// happen if a caller deliberately bypasses the type system.
func Accept(v Visitor, e Expr) any {
	switch n := e.(type) {
	case *BoolLit:
		return v.VisitBoolLit(n)
	case *IntLit:
		return v.VisitIntLit(n)
	case *RealLit:
		return v.VisitRealLit(n)
	case *StringLit:
		return v.VisitStringLit(n)
	case *EnumLit:
		return v.VisitEnumLit(n)
	case *ComponentRef:
		return v.VisitComponentRef(n)
	case *UnaryExpr:
		return v.VisitUnary(n)
	case *BinaryExpr:
		return v.VisitBinary(n)
	case *IfElseExpr:
		return v.VisitIfElse(n)
	case *RangeExpr:
		return v.VisitRange(n)
	case *FunctionCallExpr:
		return v.VisitFunctionCall(n)
	case *ParenExpr:
		return v.VisitParenthesized(n)
	case *IndexExpr:
		return v.VisitIndex(n)
	case *FieldExpr:
		return v.VisitField(n)
	case *ArrayConcatExpr:
		return v.VisitArrayConcat(n)
	case *ArrayConstructorExpr:
		return v.VisitArrayConstructor(n)
	default:
		panic("ast: unhandled Expr variant")
	}
}

// BoolLit is an unsigned Boolean literal (`true`/`false`).
type BoolLit struct {
	Value    bool
	NodeSpan location.Span
}

func (*BoolLit) exprNode()            {}
func (b *BoolLit) Span() location.Span { return b.NodeSpan }

// IntLit is an unsigned integer literal.
type IntLit struct {
	Value    int64
	NodeSpan location.Span
}

func (*IntLit) exprNode()             {}
func (i *IntLit) Span() location.Span { return i.NodeSpan }

// RealLit is an unsigned real literal.
type RealLit struct {
	Value    float64
	NodeSpan location.Span
}

func (*RealLit) exprNode()            {}
func (r *RealLit) Span() location.Span { return r.NodeSpan }

// StringLit is a double-quoted string literal with escapes already decoded
// (see internal/textlit for the decoding rule shared with PO reading).
type StringLit struct {
	Value    string
	NodeSpan location.Span
}

func (*StringLit) exprNode()            {}
func (s *StringLit) Span() location.Span { return s.NodeSpan }

// EnumLit is a bare enumeration literal name as written in source, e.g. the
// `InitialState` in `Modelica.Blocks.Types.Init.InitialState`. Resolution to
// an ordinal happens during instantiation, not parsing.
type EnumLit struct {
	Name     string
	NodeSpan location.Span
}

func (*EnumLit) exprNode()            {}
func (e *EnumLit) Span() location.Span { return e.NodeSpan }

// ComponentRef is a (possibly globally qualified, possibly subscripted)
// dotted reference to a component or class, e.g. `a.b[i].c`.
type ComponentRef struct {
	Global   bool
	Parts    []ComponentRefPart
	NodeSpan location.Span
}

func (*ComponentRef) exprNode()            {}
func (c *ComponentRef) Span() location.Span { return c.NodeSpan }

// ComponentRefPart is one dotted segment of a ComponentRef, with its own
// optional subscript list.
type ComponentRefPart struct {
	Name       string
	Subscripts []Expr
}

// UnaryExpr applies a unary operator to one operand.
type UnaryExpr struct {
	Op       UnaryOp
	Operand  Expr
	NodeSpan location.Span
}

func (*UnaryExpr) exprNode()            {}
func (u *UnaryExpr) Span() location.Span { return u.NodeSpan }

// BinaryExpr applies a binary operator to two operands.
type BinaryExpr struct {
	Op       BinaryOp
	Left     Expr
	Right    Expr
	NodeSpan location.Span
}

func (*BinaryExpr) exprNode()            {}
func (b *BinaryExpr) Span() location.Span { return b.NodeSpan }

// IfElseExpr is `if cond then a elseif cond2 then b ... else z`.
type IfElseExpr struct {
	Conditions []Expr // len(Conditions) == len(Branches)
	Branches   []Expr
	Else       Expr
	NodeSpan   location.Span
}

func (*IfElseExpr) exprNode()            {}
func (i *IfElseExpr) Span() location.Span { return i.NodeSpan }

// RangeExpr is `start:stop` or `start:step:stop`.
type RangeExpr struct {
	Start    Expr
	Step     Expr // nil when no explicit step
	Stop     Expr
	NodeSpan location.Span
}

func (*RangeExpr) exprNode()            {}
func (r *RangeExpr) Span() location.Span { return r.NodeSpan }

// FunctionCallExpr is `name(positional..., named...)`, including the
// for-comprehension shape `{expr for x in range}` when Comprehension != nil.
type FunctionCallExpr struct {
	Name          TypeSpecifier
	Positional    []Expr
	Named         []NamedArgument
	Comprehension *ForIndex // non-nil only for array-constructor comprehensions
	NodeSpan      location.Span
}

func (*FunctionCallExpr) exprNode()            {}
func (f *FunctionCallExpr) Span() location.Span { return f.NodeSpan }

// NamedArgument is `name = expr` inside a function call.
type NamedArgument struct {
	Name  string
	Value Expr
}

// ForIndex is one `x in range` clause of a for-comprehension.
type ForIndex struct {
	Name  string
	Range Expr
}

// ParenExpr is a parenthesized expression list (arity > 1 denotes a tuple
// context, e.g. function-call lhs; arity 1 is a plain grouping).
type ParenExpr struct {
	Elements []Expr
	NodeSpan location.Span
}

func (*ParenExpr) exprNode()            {}
func (p *ParenExpr) Span() location.Span { return p.NodeSpan }

// IndexExpr is `base[indices...]`.
type IndexExpr struct {
	Base     Expr
	Indices  []Expr
	NodeSpan location.Span
}

func (*IndexExpr) exprNode()            {}
func (i *IndexExpr) Span() location.Span { return i.NodeSpan }

// FieldExpr is `base.field`, distinct from ComponentRef when base is itself
// a general expression rather than a plain dotted name (e.g. a function
// call result's field access).
type FieldExpr struct {
	Base     Expr
	Field    string
	NodeSpan location.Span
}

func (*FieldExpr) exprNode()            {}
func (f *FieldExpr) Span() location.Span { return f.NodeSpan }

// ArrayConcatExpr is `[e11, e12; e21, e22]` matrix/row concatenation syntax.
type ArrayConcatExpr struct {
	Rows     [][]Expr
	NodeSpan location.Span
}

func (*ArrayConcatExpr) exprNode()            {}
func (a *ArrayConcatExpr) Span() location.Span { return a.NodeSpan }

// ArrayConstructorExpr is `{e1, e2, ...}`, optionally driven by a
// for-comprehension instead of a literal element list.
type ArrayConstructorExpr struct {
	Elements      []Expr
	Comprehension []ForIndex // non-empty only for `{expr for i in r, j in s}`
	NodeSpan      location.Span
}

func (*ArrayConstructorExpr) exprNode()            {}
func (a *ArrayConstructorExpr) Span() location.Span { return a.NodeSpan }

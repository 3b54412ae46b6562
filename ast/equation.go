package ast

import "github.com/modc-lang/modc/location"

// Equation is the closed set of equation node kinds. Statements mirror
// these shapes (assignment in place of SimpleEquation, etc.) and are
// declared in statement.go.
type Equation interface {
	Span() location.Span
	equationNode()
}

// SimpleEquation is `lhs = rhs;`.
type SimpleEquation struct {
	LHS      Expr
	RHS      Expr
	NodeSpan location.Span
}

func (*SimpleEquation) equationNode()          {}
func (s *SimpleEquation) Span() location.Span { return s.NodeSpan }

// ProcedureEquation is a function-call used as an equation, e.g.
// `assert(x > 0, "must be positive");`.
type ProcedureEquation struct {
	Call     *FunctionCallExpr
	NodeSpan location.Span
}

func (*ProcedureEquation) equationNode()          {}
func (p *ProcedureEquation) Span() location.Span { return p.NodeSpan }

// IfEquation is `if cond then eqs elseif cond2 then eqs2 ... else eqsN end if;`.
type IfEquation struct {
	Conditions []Expr
	Branches   [][]Equation
	Else       []Equation
	NodeSpan   location.Span
}

func (*IfEquation) equationNode()          {}
func (i *IfEquation) Span() location.Span { return i.NodeSpan }

// ForEquation is `for x in range loop eqs end for;`.
type ForEquation struct {
	Indices  []ForIndex
	Body     []Equation
	NodeSpan location.Span
}

func (*ForEquation) equationNode()          {}
func (f *ForEquation) Span() location.Span { return f.NodeSpan }

// ConnectEquation is `connect(a, b);`. Topological resolution of connection
// sets into equality equations over flow/potential variables is out of
// scope for this core (spec §4.8); the node is carried through opaque.
type ConnectEquation struct {
	A        *ComponentRef
	B        *ComponentRef
	NodeSpan location.Span
}

func (*ConnectEquation) equationNode()          {}
func (c *ConnectEquation) Span() location.Span { return c.NodeSpan }

// WhenEquation is `when cond then eqs elsewhen cond2 then eqs2 end when;`.
// Evaluation of when-equations is out of scope for this core; the node is
// carried through opaque for the flattener to print as-is.
type WhenEquation struct {
	Conditions []Expr
	Branches   [][]Equation
	NodeSpan   location.Span
}

func (*WhenEquation) equationNode()          {}
func (w *WhenEquation) Span() location.Span { return w.NodeSpan }

package ast

import "github.com/modc-lang/modc/location"

// Statement is the closed set of algorithm-section statement kinds. These
// mirror the Equation shapes one-for-one (spec §4.1: "the assignment forms
// and control-flow statements mirror these").
type Statement interface {
	Span() location.Span
	statementNode()
}

// AssignStatement is `lhs := rhs;`.
type AssignStatement struct {
	LHS      Expr
	RHS      Expr
	NodeSpan location.Span
}

func (*AssignStatement) statementNode()        {}
func (a *AssignStatement) Span() location.Span { return a.NodeSpan }

// CallStatement is a bare function-call statement.
type CallStatement struct {
	Call     *FunctionCallExpr
	NodeSpan location.Span
}

func (*CallStatement) statementNode()        {}
func (c *CallStatement) Span() location.Span { return c.NodeSpan }

// IfStatement is `if cond then stmts elseif ... else stmts end if;`.
type IfStatement struct {
	Conditions []Expr
	Branches   [][]Statement
	Else       []Statement
	NodeSpan   location.Span
}

func (*IfStatement) statementNode()        {}
func (i *IfStatement) Span() location.Span { return i.NodeSpan }

// ForStatement is `for x in range loop stmts end for;`.
type ForStatement struct {
	Indices  []ForIndex
	Body     []Statement
	NodeSpan location.Span
}

func (*ForStatement) statementNode()        {}
func (f *ForStatement) Span() location.Span { return f.NodeSpan }

// WhileStatement is `while cond loop stmts end while;`.
type WhileStatement struct {
	Condition Expr
	Body      []Statement
	NodeSpan  location.Span
}

func (*WhileStatement) statementNode()        {}
func (w *WhileStatement) Span() location.Span { return w.NodeSpan }

// WhenStatement is `when cond then stmts elsewhen cond2 then stmts2 end when;`.
type WhenStatement struct {
	Conditions []Expr
	Branches   [][]Statement
	NodeSpan   location.Span
}

func (*WhenStatement) statementNode()        {}
func (w *WhenStatement) Span() location.Span { return w.NodeSpan }

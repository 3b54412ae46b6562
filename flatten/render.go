package flatten

import (
	"strconv"
	"strings"

	"github.com/modc-lang/modc/ast"
	"github.com/modc-lang/modc/expr"
)

// renderExpr prints an unevaluated AST expression in Modelica surface
// syntax, rewriting every non-global component reference by prefixing it
// with prefix (spec §4.8: "component-references on both sides rewritten
// through the full instance path"). A reference within a class's own
// equations or value expressions names an element of that same class's
// scope, so once the class is flattened, the reference becomes exactly
// prefix + "." + its original dotted text; references that actually climb
// to an enclosing scope (a nested model's equation naming a variable
// declared outside it) are not distinguished from local ones and print
// with the same prefix, which is the one case this walk gets wrong.
func renderExpr(e ast.Expr, prefix Path) string {
	if e == nil {
		return ""
	}
	return ast.Accept(exprRenderer{prefix: prefix}, e).(string)
}

type exprRenderer struct {
	prefix Path
}

func (r exprRenderer) render(e ast.Expr) string { return renderExpr(e, r.prefix) }

func (r exprRenderer) VisitBoolLit(b *ast.BoolLit) any {
	if b.Value {
		return "true"
	}
	return "false"
}

func (r exprRenderer) VisitIntLit(i *ast.IntLit) any { return strconv.FormatInt(i.Value, 10) }

func (r exprRenderer) VisitRealLit(f *ast.RealLit) any { return formatReal(f.Value) }

func (r exprRenderer) VisitStringLit(s *ast.StringLit) any { return strconv.Quote(s.Value) }

func (r exprRenderer) VisitEnumLit(e *ast.EnumLit) any { return e.Name }

func (r exprRenderer) VisitComponentRef(c *ast.ComponentRef) any {
	text := componentRefText(c, r.prefix)
	if c.Global || len(r.prefix) == 0 {
		return text
	}
	return r.prefix.String() + "." + text
}

func (r exprRenderer) VisitUnary(u *ast.UnaryExpr) any {
	return string(u.Op) + " " + r.render(u.Operand)
}

func (r exprRenderer) VisitBinary(b *ast.BinaryExpr) any {
	return r.render(b.Left) + " " + string(b.Op) + " " + r.render(b.Right)
}

func (r exprRenderer) VisitIfElse(i *ast.IfElseExpr) any {
	var b strings.Builder
	for idx, cond := range i.Conditions {
		if idx == 0 {
			b.WriteString("if ")
		} else {
			b.WriteString(" elseif ")
		}
		b.WriteString(r.render(cond))
		b.WriteString(" then ")
		b.WriteString(r.render(i.Branches[idx]))
	}
	b.WriteString(" else ")
	b.WriteString(r.render(i.Else))
	return b.String()
}

func (r exprRenderer) VisitRange(rg *ast.RangeExpr) any {
	if rg.Step != nil {
		return r.render(rg.Start) + ":" + r.render(rg.Step) + ":" + r.render(rg.Stop)
	}
	return r.render(rg.Start) + ":" + r.render(rg.Stop)
}

func (r exprRenderer) VisitFunctionCall(f *ast.FunctionCallExpr) any {
	name := f.Name.Name
	if f.Name.Global {
		name = "." + name
	}
	var args []string
	if f.Comprehension != nil && len(f.Positional) == 1 {
		return name + "(" + r.render(f.Positional[0]) + " for " + f.Comprehension.Name + " in " + r.render(f.Comprehension.Range) + ")"
	}
	for _, p := range f.Positional {
		args = append(args, r.render(p))
	}
	for _, n := range f.Named {
		args = append(args, n.Name+" = "+r.render(n.Value))
	}
	return name + "(" + strings.Join(args, ", ") + ")"
}

func (r exprRenderer) VisitParenthesized(p *ast.ParenExpr) any {
	parts := make([]string, len(p.Elements))
	for i, el := range p.Elements {
		parts[i] = r.render(el)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (r exprRenderer) VisitIndex(ix *ast.IndexExpr) any {
	parts := make([]string, len(ix.Indices))
	for i, idx := range ix.Indices {
		parts[i] = r.render(idx)
	}
	return r.render(ix.Base) + "[" + strings.Join(parts, ", ") + "]"
}

func (r exprRenderer) VisitField(f *ast.FieldExpr) any {
	return r.render(f.Base) + "." + f.Field
}

func (r exprRenderer) VisitArrayConcat(a *ast.ArrayConcatExpr) any {
	rows := make([]string, len(a.Rows))
	for i, row := range a.Rows {
		cells := make([]string, len(row))
		for j, c := range row {
			cells[j] = r.render(c)
		}
		rows[i] = strings.Join(cells, ", ")
	}
	return "[" + strings.Join(rows, "; ") + "]"
}

func (r exprRenderer) VisitArrayConstructor(a *ast.ArrayConstructorExpr) any {
	if len(a.Comprehension) > 0 && len(a.Elements) == 1 {
		idx := make([]string, len(a.Comprehension))
		for i, fi := range a.Comprehension {
			idx[i] = fi.Name + " in " + r.render(fi.Range)
		}
		return "{" + r.render(a.Elements[0]) + " for " + strings.Join(idx, ", ") + "}"
	}
	parts := make([]string, len(a.Elements))
	for i, el := range a.Elements {
		parts[i] = r.render(el)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// componentRefText renders a ComponentRef's own dotted text, without any
// path-prefix rewriting (rewriting is applied once, by the caller, around
// the whole reference). Subscripts are rendered with the same rewrite
// prefix: they are ordinary expressions evaluated in the same scope as the
// reference itself, not under the array-indexed path on their left.
func componentRefText(c *ast.ComponentRef, prefix Path) string {
	var b strings.Builder
	if c.Global {
		b.WriteByte('.')
	}
	for i, p := range c.Parts {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(p.Name)
		if len(p.Subscripts) > 0 {
			subs := make([]string, len(p.Subscripts))
			for j, s := range p.Subscripts {
				subs[j] = renderExpr(s, prefix)
			}
			b.WriteByte('[')
			b.WriteString(strings.Join(subs, ", "))
			b.WriteByte(']')
		}
	}
	return b.String()
}

// renderValue prints a folded expression IR value in Modelica literal
// syntax.
func renderValue(v expr.Value) string {
	return expr.Accept(valueRenderer{}, v).(string)
}

type valueRenderer struct{}

func (valueRenderer) VisitBoolean(b expr.BooleanValue) any {
	if b {
		return "true"
	}
	return "false"
}

func (valueRenderer) VisitInteger(i expr.IntegerValue) any {
	return strconv.FormatInt(int64(i), 10)
}

func (valueRenderer) VisitReal(f expr.RealValue) any { return formatReal(float64(f)) }

func (valueRenderer) VisitString(s expr.StringValue) any { return strconv.Quote(string(s)) }

func (valueRenderer) VisitEnumeration(e expr.EnumerationValue) any { return e.Label }

func (valueRenderer) VisitArray(a *expr.ArrayValue) any {
	parts := make([]string, len(a.Elements))
	for i, el := range a.Elements {
		parts[i] = renderValue(el)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (valueRenderer) VisitRecord(rec *expr.RecordValue) any {
	parts := make([]string, len(rec.Fields))
	for i, f := range rec.Fields {
		parts[i] = f.Name + " = " + renderValue(f.Value)
	}
	return rec.ClassName + "(" + strings.Join(parts, ", ") + ")"
}

func (valueRenderer) VisitUnary(u *expr.UnaryValue) any {
	return string(u.Op) + " " + renderValue(u.Operand)
}

func (valueRenderer) VisitBinary(b *expr.BinaryValue) any {
	return renderValue(b.Left) + " " + string(b.Op) + " " + renderValue(b.Right)
}

// formatReal matches Modelica's real-literal surface syntax: a bare
// integral value still carries a decimal point (2.0, not 2).
func formatReal(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

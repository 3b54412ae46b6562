package flatten

import (
	"strings"

	"github.com/modc-lang/modc/annotation"
	"github.com/modc-lang/modc/ast"
	"github.com/modc-lang/modc/diag"
	"github.com/modc-lang/modc/expr"
	"github.com/modc-lang/modc/instance"
	"github.com/modc-lang/modc/modification"
)

// attributeNames is the fixed predefined-scalar attribute set spec §4.8
// emits as children of a declaration, mirrored from
// instance.predefinedAttributeNames (unexported; instance has no exported
// accessor for the list itself, only for reading one attribute by name).
var attributeNames = []string{
	"quantity", "unit", "displayUnit", "min", "max", "start", "fixed",
	"nominal", "unbounded", "stateSelect",
}

// walker accumulates rendered declaration and equation lines while
// recursing through an instantiated class graph. Two slices rather than a
// single interleaved stream because the flattener output form groups all
// variable declarations ahead of all equations (spec §6).
type walker struct {
	folder      instance.Folder
	collector   *diag.Collector
	vars        []string
	eqs         []string
	annotations map[string]map[string]any
}

// recordAnnotations instantiates comp's and resolved's own annotation
// modifications against the embedded annotation schema (spec §4.4 step 5,
// §4.7) and, if any were found, stores their JSON form under path so
// Document exposes the same data spec §4.7's `annotation(name)` accessor
// reads.
func (w *walker) recordAnnotations(path Path, comp *instance.ComponentInstance, resolved *instance.ClassInstance) {
	var mods []*modification.Modification
	if comp != nil {
		mods = append(mods, comp.Annotations...)
	}
	if resolved != nil {
		mods = append(mods, resolved.Annotations...)
	}
	built := annotation.Build(mods, w.folder, w.collector)
	if len(built) == 0 {
		return
	}
	m := make(map[string]any, len(built))
	for _, a := range built {
		m[a.Name] = annotation.ToJSON(a.Instance, w.folder)
	}
	if w.annotations == nil {
		w.annotations = make(map[string]map[string]any)
	}
	w.annotations[path.String()] = m
}

// unwrapShort follows a ShortClassInstance forwarding chain to the
// underlying array/predefined/enumeration/plain instance it ultimately
// names, mirroring instance.innerShape's traversal.
func unwrapShort(ci *instance.ClassInstance) *instance.ClassInstance {
	for ci != nil && ci.Short != nil {
		ci = ci.Short.Target
	}
	return ci
}

// walkDeclared walks one class's declared elements at path, the scope
// level at which they were declared. Nested classes are not themselves
// variables and contribute nothing. Extends-instances are not recursed
// into a deeper path: spec §3 has them "forward their elements into the
// enclosing class", so their components are declared at path, not
// path+baseName.
func (w *walker) walkDeclared(path Path, declared []instance.DeclaredElement) {
	for _, d := range declared {
		switch el := d.(type) {
		case instance.ComponentElement:
			w.walkComponent(path, el.ComponentInstance)
		case instance.ExtendsElement:
			w.walkDeclared(path, el.Elements())
		case instance.NestedClassElement:
			// Nested class definitions have no variable of their own.
		}
	}
}

// equationSectionsOf collects a class's own equation sections together
// with every extends-ancestor's, in extends-then-own order, the same
// inheritance rule walkDeclared applies to components.
func equationSectionsOf(ci *instance.ClassInstance) []ast.EquationSection {
	var out []ast.EquationSection
	for _, d := range ci.Declared {
		if ext, ok := d.(instance.ExtendsElement); ok && ext.Target != nil {
			out = append(out, equationSectionsOf(ext.Target)...)
		}
	}
	if ci.Def != nil && ci.Def.Long != nil {
		out = append(out, ci.Def.Long.Equations...)
	}
	return out
}

func (w *walker) walkComponent(path Path, comp *instance.ComponentInstance) {
	childPath := path.Child(comp.Name)
	// Component instantiation is lazy (spec §4.4): a class's own
	// instantiateBody builds each ComponentInstance but does not resolve
	// its type, the same deferred-forcing instance.FromClassInstance's
	// fromRecord already relies on for record conversion.
	if comp.ClassInstance == nil {
		if err := comp.Instantiate(w.folder, w.collector); err != nil {
			return
		}
	}
	resolved := unwrapShort(comp.ClassInstance)
	if resolved == nil {
		// Unresolved type specifier; already reported during Instantiate
		// (E_UNRESOLVED_TYPE_SPECIFIER). Nothing to flatten.
		return
	}
	w.recordAnnotations(childPath, comp, resolved)

	if resolved.Array != nil {
		w.walkArray(childPath, comp, resolved.Array)
		return
	}

	if isLeaf(resolved) {
		w.vars = append(w.vars, w.renderDeclaration(childPath, comp, resolved))
		return
	}

	w.walkDeclared(childPath, resolved.Declared)
	for _, sec := range equationSectionsOf(resolved) {
		for _, eq := range sec.Equations {
			w.eqs = append(w.eqs, w.renderEquation(eq, childPath))
		}
	}
}

// walkArray flattens each concrete slot of an array component, 1-based per
// Modelica subscript convention. comp supplies the array's own variability,
// causality, and flow/stream/description metadata, shared by every slot.
func (w *walker) walkArray(path Path, comp *instance.ComponentInstance, arr *instance.ArrayClassInstance) {
	for i, elemCI := range arr.Elements {
		idxPath := path.Indexed(i + 1)
		resolved := unwrapShort(elemCI)
		if resolved == nil {
			continue
		}
		// A composite element's Declared is only populated once Instantiate
		// runs (Clone alone leaves it uninstantiated); predefined and
		// enumeration elements already carry everything FromClassInstance
		// needs straight out of Clone, so forcing is only required here.
		if resolved.Array == nil && !isLeaf(resolved) {
			if err := resolved.Instantiate(w.folder, w.collector); err != nil {
				continue
			}
		}
		w.recordAnnotations(idxPath, comp, resolved)
		switch {
		case resolved.Array != nil:
			w.walkArray(idxPath, comp, resolved.Array)
		case isLeaf(resolved):
			w.vars = append(w.vars, w.renderDeclaration(idxPath, comp, resolved))
		default:
			w.walkDeclared(idxPath, resolved.Declared)
		}
	}
}

func isLeaf(ci *instance.ClassInstance) bool {
	return ci.Predefined != "" || ci.Enum != nil
}

func leafTypeName(ci *instance.ClassInstance) string {
	if ci.Predefined != "" {
		return ci.Predefined
	}
	return ci.Name
}

// renderDeclaration renders one flattened variable line per spec §6's
// "Flattener output form": prefix keywords, type name, dotted path,
// attribute list, value, and trailing description.
func (w *walker) renderDeclaration(path Path, comp *instance.ComponentInstance, resolved *instance.ClassInstance) string {
	var b strings.Builder
	b.WriteString(declPrefix(comp.Flow, comp.Stream, comp.Causality, comp.Variability))
	b.WriteString(leafTypeName(resolved))
	b.WriteByte(' ')
	b.WriteString(path.String())

	if attrs := w.renderAttributes(resolved, path.Parent()); attrs != "" {
		b.WriteString(attrs)
	}
	if resolved.Enum != nil {
		if label, ok := w.enumValue(resolved); ok {
			b.WriteString(" = ")
			b.WriteString(label)
		}
	} else if v, ok := instance.FromClassInstance(resolved, w.folder, w.collector); ok {
		b.WriteString(" = ")
		b.WriteString(renderValue(v))
	}
	b.WriteByte(';')
	if comp.Description != "" {
		b.WriteString(" \"")
		b.WriteString(comp.Description)
		b.WriteByte('"')
	}
	return b.String()
}

// enumValue resolves the printed form of an enumeration-typed leaf. No
// instantiation-time call site resolves a component's `= literal`
// modification onto EnumerationClassInstance.Select (spec §4.6 folds an
// EnumLit to an expr.EnumerationValue but stops there), so flattening does
// it lazily: fold the modification's own expression and select the
// resulting label, falling back to whatever was already selected (e.g. by
// a caller that built the instance with a literal preselected).
func (w *walker) enumValue(resolved *instance.ClassInstance) (string, bool) {
	if resolved.Modification != nil && resolved.Modification.Expr != nil && w.folder != nil {
		if v, ok := w.folder.Fold(resolved.Modification.Scope, resolved.Modification.Expr); ok {
			if ev, ok := v.(expr.EnumerationValue); ok {
				resolved.Enum.Select(ev.Label)
				return ev.Label, true
			}
		}
	}
	if lit := resolved.Enum.SelectedLiteral(); lit != "" {
		return lit, true
	}
	return "", false
}

func declPrefix(flow, stream bool, causality ast.Causality, variability ast.Variability) string {
	var b strings.Builder
	if flow {
		b.WriteString("flow ")
	}
	if stream {
		b.WriteString("stream ")
	}
	switch causality {
	case ast.Input:
		b.WriteString("input ")
	case ast.Output:
		b.WriteString("output ")
	}
	switch variability {
	case ast.Parameter:
		b.WriteString("parameter ")
	case ast.Constant:
		b.WriteString("constant ")
	case ast.Discrete:
		b.WriteString("discrete ")
	}
	return b.String()
}

// renderAttributes renders a predefined scalar's set attributes as spec
// §6's `name(attr = expr, ...)` form, in attributeNames's fixed order.
func (w *walker) renderAttributes(resolved *instance.ClassInstance, prefix Path) string {
	if resolved.Predefined == "" || resolved.Modification == nil {
		return ""
	}
	var parts []string
	for _, name := range attributeNames {
		for _, arg := range resolved.Modification.Arguments {
			em, ok := arg.(*modification.ElementModification)
			if !ok || em.Head != name || em.Nested == nil || em.Nested.Expr == nil {
				continue
			}
			parts = append(parts, name+" = "+w.renderValueExpr(em.Nested, prefix))
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// renderValueExpr prints a Modification's own expression, preferring its
// constant-folded value (memoizing the fold) and falling back to printing
// the raw, path-rewritten AST expression when folding does not apply.
func (w *walker) renderValueExpr(m *modification.Modification, prefix Path) string {
	if m == nil || m.Expr == nil {
		return ""
	}
	if v, ok := m.Folded(); ok {
		if fv, ok := v.(expr.Value); ok {
			return renderValue(fv)
		}
	}
	if w.folder != nil {
		if v, ok := w.folder.Fold(m.Scope, m.Expr); ok {
			m.SetFolded(v)
			return renderValue(v)
		}
	}
	return renderExpr(m.Expr, prefix)
}

func (w *walker) renderEquation(eq ast.Equation, prefix Path) string {
	switch e := eq.(type) {
	case *ast.SimpleEquation:
		return renderExpr(e.LHS, prefix) + " = " + renderExpr(e.RHS, prefix) + ";"
	case *ast.ProcedureEquation:
		return renderExpr(e.Call, prefix) + ";"
	case *ast.ConnectEquation:
		return "connect(" + componentRefText(e.A, prefix) + ", " + componentRefText(e.B, prefix) + ");"
	case *ast.IfEquation:
		return w.renderIfEquation(e, prefix)
	case *ast.ForEquation:
		return w.renderForEquation(e, prefix)
	case *ast.WhenEquation:
		return w.renderWhenEquation(e, prefix)
	default:
		return ""
	}
}

func (w *walker) renderEquationList(eqs []ast.Equation, prefix Path) string {
	parts := make([]string, len(eqs))
	for i, eq := range eqs {
		parts[i] = w.renderEquation(eq, prefix)
	}
	return strings.Join(parts, " ")
}

func (w *walker) renderIfEquation(e *ast.IfEquation, prefix Path) string {
	var b strings.Builder
	for i, cond := range e.Conditions {
		if i == 0 {
			b.WriteString("if ")
		} else {
			b.WriteString("elseif ")
		}
		b.WriteString(renderExpr(cond, prefix))
		b.WriteString(" then ")
		b.WriteString(w.renderEquationList(e.Branches[i], prefix))
		b.WriteByte(' ')
	}
	if len(e.Else) > 0 {
		b.WriteString("else ")
		b.WriteString(w.renderEquationList(e.Else, prefix))
		b.WriteByte(' ')
	}
	b.WriteString("end if;")
	return b.String()
}

func (w *walker) renderForEquation(e *ast.ForEquation, prefix Path) string {
	idx := make([]string, len(e.Indices))
	for i, fi := range e.Indices {
		idx[i] = fi.Name + " in " + renderExpr(fi.Range, prefix)
	}
	return "for " + strings.Join(idx, ", ") + " loop " + w.renderEquationList(e.Body, prefix) + " end for;"
}

func (w *walker) renderWhenEquation(e *ast.WhenEquation, prefix Path) string {
	var b strings.Builder
	for i, cond := range e.Conditions {
		if i == 0 {
			b.WriteString("when ")
		} else {
			b.WriteString("elsewhen ")
		}
		b.WriteString(renderExpr(cond, prefix))
		b.WriteString(" then ")
		b.WriteString(w.renderEquationList(e.Branches[i], prefix))
		b.WriteByte(' ')
	}
	b.WriteString("end when;")
	return b.String()
}

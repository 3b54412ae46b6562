package ast

import (
	"fmt"

	"github.com/modc-lang/modc/diag"
	"github.com/modc-lang/modc/internal/textlit"
	"github.com/modc-lang/modc/parsetree"
)

// Field names a parser collaborator is expected to expose on the node
// kinds this builder reads. A concrete grammar's own field names may
// differ; a real integration supplies its own Builder configured with a
// matching field table. These are the defaults used by the in-repo test
// fixtures' fake parse trees.
const (
	FieldWithin     = "within"
	FieldClasses    = "classes"
	FieldPrefixes   = "prefixes"
	FieldKind       = "kind"
	FieldIdentifier = "identifier"
	FieldEndIdent   = "end_identifier"
	FieldElements   = "elements"
	FieldEquations  = "equations"
	FieldLHS        = "lhs"
	FieldRHS        = "rhs"
	FieldOperator   = "operator"
	FieldOperand    = "operand"
	FieldValue      = "value"
	FieldName       = "name"
)

// Builder constructs an AST from a parsetree.Node, reporting kind-mismatch
// and syntax-error diagnostics through a collector rather than failing the
// whole parse: spec §4.9 requires the entity to still be constructed (with
// a possibly partial AST) after a parse error.
type Builder struct {
	collector *diag.Collector
}

// NewBuilder creates a Builder that reports diagnostics to collector.
func NewBuilder(collector *diag.Collector) *Builder {
	return &Builder{collector: collector}
}

// kindMismatch reports that a concrete node's grammar kind disagrees with
// the abstract node type the builder expected there, per spec §4.1's
// "Construction fails with a kind-mismatch error" rule. The calling build
// step then drops the offending node (returns nil) so the rest of the tree
// can still be built.
func (b *Builder) kindMismatch(n parsetree.Node, want string) {
	if b.collector == nil || n == nil {
		return
	}
	b.collector.Collect(diag.NewIssue(diag.Error, diag.E_SYNTAX,
		fmt.Sprintf("expected %s, got %s", want, n.Kind())).
		WithSpan(n.Span()).
		Build())
}

// reportIfErrorNode reports a syntax diagnostic for a parser-marked error
// or missing node and returns whether the node was clean.
func (b *Builder) reportIfErrorNode(n parsetree.Node) bool {
	if n == nil {
		return true
	}
	if !n.IsError() && !n.IsMissing() {
		return true
	}
	if b.collector != nil {
		msg := "syntax error"
		if n.IsMissing() {
			msg = "missing " + n.Kind()
		}
		b.collector.Collect(diag.NewIssue(diag.Error, diag.E_SYNTAX, msg).
			WithSpan(n.Span()).
			Build())
	}
	return false
}

// BuildStoredDefinition builds the root of a parsed file.
func (b *Builder) BuildStoredDefinition(n parsetree.Node) *StoredDefinition {
	if n == nil {
		return nil
	}
	b.reportIfErrorNode(n)

	sd := &StoredDefinition{Span: n.Span()}
	if w := n.Child(FieldWithin); w != nil {
		sd.Within = &WithinDirective{Name: w.Text(), Span: w.Span()}
	}
	for _, c := range n.Children(FieldClasses) {
		if cd := b.BuildClassDefinition(c); cd != nil {
			sd.Classes = append(sd.Classes, cd)
		}
	}
	return sd
}

// BuildClassDefinition builds one class-definition node, dispatching on
// which specifier shape (long/short/der) the parse tree presents.
func (b *Builder) BuildClassDefinition(n parsetree.Node) *ClassDefinition {
	if n == nil {
		return nil
	}
	b.reportIfErrorNode(n)

	cd := &ClassDefinition{Span: n.Span()}
	if k := n.Child(FieldKind); k != nil {
		cd.Kind = classKindFromText(k.Text())
	}

	switch n.Kind() {
	case "long_class_specifier":
		cd.Long = b.buildLongClassSpecifier(n)
	case "short_class_specifier":
		cd.Short = b.buildShortClassSpecifier(n)
	case "der_class_specifier":
		cd.Der = b.buildDerClassSpecifier(n)
	default:
		// Unknown shape from this grammar version; treat as long-form best
		// effort so the rest of the tree is still reachable.
		cd.Long = b.buildLongClassSpecifier(n)
	}
	if cd.Long != nil {
		for _, e := range cd.Long.Elements {
			if nc, ok := e.(NestedClass); ok && nc.Def != nil {
				nc.Def.parent = cd
			}
		}
	}
	return cd
}

func classKindFromText(s string) ClassKind {
	switch s {
	case "model":
		return ClassKindModel
	case "record":
		return ClassKindRecord
	case "block":
		return ClassKindBlock
	case "connector":
		return ClassKindConnector
	case "type":
		return ClassKindType
	case "package":
		return ClassKindPackage
	case "function":
		return ClassKindFunction
	case "operator":
		return ClassKindOperator
	case "class":
		return ClassKindClass
	default:
		return ClassKindUnspecified
	}
}

func (b *Builder) buildLongClassSpecifier(n parsetree.Node) *LongClassSpecifier {
	l := &LongClassSpecifier{Span: n.Span()}
	if id := n.Child(FieldIdentifier); id != nil {
		l.Identifier = id.Text()
	}
	if end := n.Child(FieldEndIdent); end != nil {
		l.EndIdentifier = end.Text()
	} else {
		// No trailer present: treat as matching so downstream lint does not
		// spuriously fire on grammars that omit the field when absent.
		l.EndIdentifier = l.Identifier
	}
	for _, el := range n.Children(FieldElements) {
		if e := b.buildElement(el); e != nil {
			l.Elements = append(l.Elements, e)
		}
	}
	for _, eq := range n.Children(FieldEquations) {
		if sec := b.buildEquationSection(eq); sec != nil {
			l.Equations = append(l.Equations, *sec)
		}
	}
	return l
}

func (b *Builder) buildShortClassSpecifier(n parsetree.Node) *ShortClassSpecifier {
	s := &ShortClassSpecifier{Span: n.Span()}
	if id := n.Child(FieldIdentifier); id != nil {
		s.Identifier = id.Text()
	}
	if t := n.Child("type"); t != nil {
		s.Type = TypeSpecifier{Name: t.Text(), Span: t.Span()}
	}
	return s
}

func (b *Builder) buildDerClassSpecifier(n parsetree.Node) *DerClassSpecifier {
	d := &DerClassSpecifier{Span: n.Span()}
	if id := n.Child(FieldIdentifier); id != nil {
		d.Identifier = id.Text()
	}
	if t := n.Child("type"); t != nil {
		d.Type = TypeSpecifier{Name: t.Text(), Span: t.Span()}
	}
	for _, v := range n.Children("derived_vars") {
		d.DerivedVars = append(d.DerivedVars, v.Text())
	}
	return d
}

func (b *Builder) buildElement(n parsetree.Node) Element {
	if n == nil {
		return nil
	}
	switch n.Kind() {
	case "long_class_specifier", "short_class_specifier", "der_class_specifier":
		if cd := b.BuildClassDefinition(n); cd != nil {
			return NestedClass{Def: cd}
		}
	case "component_clause":
		return b.buildComponentClause(n)
	case "extends_clause":
		return b.buildExtendsClause(n)
	case "import_simple":
		return SimpleImportClause{Path: textOf(n.Child(FieldName)), ClauseSpan: n.Span()}
	case "import_compound":
		ic := CompoundImportClause{Path: textOf(n.Child(FieldName)), ClauseSpan: n.Span()}
		for _, name := range n.Children("picked") {
			ic.Names = append(ic.Names, name.Text())
		}
		return ic
	case "import_unqualified":
		return UnqualifiedImportClause{Path: textOf(n.Child(FieldName)), ClauseSpan: n.Span()}
	default:
		b.kindMismatch(n, "class element")
	}
	return nil
}

func textOf(n parsetree.Node) string {
	if n == nil {
		return ""
	}
	return n.Text()
}

func (b *Builder) buildComponentClause(n parsetree.Node) ComponentClause {
	c := ComponentClause{ClauseSpan: n.Span()}
	if t := n.Child("type"); t != nil {
		c.Type = TypeSpecifier{Name: t.Text(), Span: t.Span()}
	}
	for _, d := range n.Children("declarations") {
		c.Declarations = append(c.Declarations, b.buildComponentDeclaration(d))
	}
	return c
}

func (b *Builder) buildComponentDeclaration(n parsetree.Node) *ComponentDeclaration {
	d := &ComponentDeclaration{Span: n.Span()}
	if id := n.Child(FieldIdentifier); id != nil {
		d.Name = id.Text()
	}
	if e := n.Child("expr"); e != nil {
		d.Modification = &Modification{Expr: b.buildExpr(e), NodeSpan: e.Span()}
	}
	return d
}

func (b *Builder) buildExtendsClause(n parsetree.Node) ExtendsClause {
	e := ExtendsClause{ClauseSpan: n.Span()}
	if t := n.Child("type"); t != nil {
		e.Type = TypeSpecifier{Name: t.Text(), Span: t.Span()}
	}
	return e
}

func (b *Builder) buildEquationSection(n parsetree.Node) *EquationSection {
	sec := &EquationSection{SectionSpan: n.Span()}
	for _, eq := range n.Children("body") {
		if built := b.buildEquation(eq); built != nil {
			sec.Equations = append(sec.Equations, built)
		}
	}
	return sec
}

func (b *Builder) buildEquation(n parsetree.Node) Equation {
	if n == nil {
		return nil
	}
	switch n.Kind() {
	case "simple_equation":
		return &SimpleEquation{
			LHS:      b.buildExpr(n.Child(FieldLHS)),
			RHS:      b.buildExpr(n.Child(FieldRHS)),
			NodeSpan: n.Span(),
		}
	case "connect_equation":
		a, _ := b.buildExpr(n.Child("a")).(*ComponentRef)
		bb, _ := b.buildExpr(n.Child("b")).(*ComponentRef)
		return &ConnectEquation{A: a, B: bb, NodeSpan: n.Span()}
	default:
		b.kindMismatch(n, "equation")
		return nil
	}
}

// buildExpr builds an expression node. Its grammar coverage is deliberately
// partial: the concrete grammar is an external collaborator (spec §1), so
// this builder exists to demonstrate the field-driven construction pattern
// rather than to cover every production a real tree-sitter grammar emits.
func (b *Builder) buildExpr(n parsetree.Node) Expr {
	if n == nil {
		return nil
	}
	switch n.Kind() {
	case "true", "false":
		return &BoolLit{Value: n.Kind() == "true", NodeSpan: n.Span()}
	case "unsigned_integer":
		return &IntLit{Value: parseIntLit(n.Text()), NodeSpan: n.Span()}
	case "unsigned_real":
		return &RealLit{Value: parseRealLit(n.Text()), NodeSpan: n.Span()}
	case "string_literal":
		value, err := textlit.ConvertString(n.Text())
		if err != nil && b.collector != nil {
			b.collector.Collect(diag.NewIssue(diag.Error, diag.E_SYNTAX, err.Error()).
				WithSpan(n.Span()).
				Build())
		}
		return &StringLit{Value: value, NodeSpan: n.Span()}
	case "component_reference":
		return &ComponentRef{Parts: []ComponentRefPart{{Name: n.Text()}}, NodeSpan: n.Span()}
	case "binary_expression":
		return &BinaryExpr{
			Op:       BinaryOp(textOf(n.Child(FieldOperator))),
			Left:     b.buildExpr(n.Child(FieldLHS)),
			Right:    b.buildExpr(n.Child(FieldRHS)),
			NodeSpan: n.Span(),
		}
	case "unary_expression":
		return &UnaryExpr{
			Op:       UnaryOp(textOf(n.Child(FieldOperator))),
			Operand:  b.buildExpr(n.Child(FieldOperand)),
			NodeSpan: n.Span(),
		}
	default:
		b.kindMismatch(n, "expression")
		return nil
	}
}

func parseIntLit(s string) int64 {
	var v int64
	for _, c := range s {
		if c < '0' || c > '9' {
			break
		}
		v = v*10 + int64(c-'0')
	}
	return v
}

func parseRealLit(s string) float64 {
	var v float64
	_, err := fmt.Sscanf(s, "%g", &v)
	if err != nil {
		return 0
	}
	return v
}

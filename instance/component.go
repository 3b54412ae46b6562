package instance

import (
	"github.com/modc-lang/modc/ast"
	"github.com/modc-lang/modc/diag"
	"github.com/modc-lang/modc/modification"
)

// ComponentInstance is a declared variable or component (spec §3): name,
// description, variability, causality, flow/stream flag, array
// subscripts, and a late-resolved class instance for its type.
// ComponentInstance's type resolution happens when Instantiate runs, never
// at construction (invariant 6).
type ComponentInstance struct {
	Name        string
	Description string
	Variability ast.Variability
	Causality   ast.Causality
	Flow        bool
	Stream      bool
	Subscripts  []ast.Expr
	Condition   ast.Expr

	TypeSpec     ast.TypeSpecifier
	Modification *modification.Modification
	ClassInstance *ClassInstance // nil until Instantiate resolves the type, or if resolution failed
	Annotations  []*modification.Modification

	parent *ClassInstance
}

// ElementName implements scope.Element.
func (c *ComponentInstance) ElementName() string { return c.Name }

// Instantiate resolves the component's type specifier against the
// enclosing class and clones it under the component's merged modification
// (spec §4.4's "Component instantiation"). With array subscripts, the
// resolved class instance is wrapped in an ArrayClassInstance. Failure to
// resolve the type specifier is a non-fatal lookup diagnostic
// (E_UNRESOLVED_TYPE_SPECIFIER); ClassInstance is left nil and traversal
// continues.
func (c *ComponentInstance) Instantiate(folder Folder, collector *diag.Collector) error {
	if c.ClassInstance != nil {
		return c.ClassInstance.Instantiate(folder, collector)
	}
	target, ok := resolveTypeSpecifier(c.parent, c.TypeSpec)
	if !ok {
		collector.Collect(diag.NewIssue(diag.Error, diag.E_UNRESOLVED_TYPE_SPECIFIER,
			"unresolved type specifier for component \""+c.Name+"\"").
			WithSpan(c.TypeSpec.Span).
			Build())
		return nil
	}

	if len(c.Subscripts) == 0 {
		cloned, err := target.Clone(c.Modification, folder, collector)
		if err != nil {
			return err
		}
		c.ClassInstance = cloned
		return cloned.Instantiate(folder, collector)
	}

	arr := newArrayClassInstance(target, c.Subscripts, c.Modification, c.parent)
	if err := arr.Instantiate(folder, collector); err != nil {
		return err
	}
	c.ClassInstance = arr
	return nil
}

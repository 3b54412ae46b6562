package instance

import (
	"github.com/modc-lang/modc/ast"
	"github.com/modc-lang/modc/diag"
	"github.com/modc-lang/modc/modification"
)

// ExtendsClassInstance is an `extends T(...)` in some class (spec §3).
// After Instantiate it holds a clone of the base class built under the
// merge of the enclosing scope's outer overrides and the modification
// written on the extends line itself, and forwards its elements into the
// enclosing class's element iteration.
type ExtendsClassInstance struct {
	TypeSpec       ast.TypeSpecifier
	InheritanceMod *modification.Modification
	Annotation     *modification.Modification

	Target *ClassInstance // resolved base, after Instantiate

	parent *ClassInstance
}

// Instantiate resolves the base type, merges modifications per spec
// §4.4's "Merge order in extends"
// (mergeModificationArguments(enclosing.modification.arguments ++
// inheritanceModifications)), and clones the base under the merge.
func (e *ExtendsClassInstance) Instantiate(folder Folder, collector *diag.Collector) error {
	base, ok := resolveTypeSpecifier(e.parent, e.TypeSpec)
	if !ok {
		collector.Collect(diag.NewIssue(diag.Error, diag.E_UNRESOLVED_TYPE_SPECIFIER,
			"unresolved base class in extends clause").
			WithSpan(e.TypeSpec.Span).
			Build())
		return nil
	}

	var enclosingArgs []modification.Argument
	if e.parent != nil && e.parent.Modification != nil {
		enclosingArgs = e.parent.Modification.Arguments
	}
	var inheritArgs []modification.Argument
	if e.InheritanceMod != nil {
		inheritArgs = e.InheritanceMod.Arguments
	}
	merged := &modification.Modification{
		Scope:     scopeOf(e.parent),
		Arguments: modification.MergeModificationArguments(append(append([]modification.Argument{}, enclosingArgs...), inheritArgs...)),
	}

	cloned, err := base.Clone(merged, folder, collector)
	if err != nil {
		return err
	}
	e.Target = cloned
	return cloned.Instantiate(folder, collector)
}

// Elements forwards the base's elements, per spec §3: "forwards its
// elements into the enclosing class."
func (e *ExtendsClassInstance) Elements() []DeclaredElement {
	if e.Target == nil {
		return nil
	}
	return e.Target.Declared
}

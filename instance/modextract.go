package instance

import "github.com/modc-lang/modc/modification"

// extractModification implements spec §4.4's extractModification(childName):
// the subset of mod addressing childName, found by locating the argument
// with that name. An ElementModification's already-peeled Nested
// modification is returned directly (construction-from-AST in the
// modification package performs the head/tail peeling, so there is no
// further work to do here beyond the lookup). A ParameterModification
// (spec §4.6's record-construction-from-function-call synthesis) has no
// Nested modification of its own, so its Expr is wrapped in a fresh one.
func extractModification(mod *modification.Modification, childName string) *modification.Modification {
	if mod == nil {
		return &modification.Modification{}
	}
	for _, arg := range mod.Arguments {
		if arg.Name() != childName {
			continue
		}
		switch a := arg.(type) {
		case *modification.ElementModification:
			return a.Nested
		case *modification.ParameterModification:
			return &modification.Modification{Expr: a.Expr}
		}
	}
	return &modification.Modification{}
}

func findClassRedeclaration(mod *modification.Modification, name string) *modification.Redeclaration {
	if mod == nil {
		return nil
	}
	for _, arg := range mod.Arguments {
		if r, ok := arg.(*modification.Redeclaration); ok && r.Name() == name && r.ClassDef != nil {
			return r
		}
	}
	return nil
}

func findComponentRedeclaration(mod *modification.Modification, name string) *modification.Redeclaration {
	if mod == nil {
		return nil
	}
	for _, arg := range mod.Arguments {
		if r, ok := arg.(*modification.Redeclaration); ok && r.Name() == name && r.Component != nil {
			return r
		}
	}
	return nil
}

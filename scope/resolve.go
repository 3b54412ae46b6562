package scope

// PredefinedElement is the sentinel Element returned for Boolean, Integer,
// Real, and String when no user-declared element shadows them (spec §4.5's
// final fallback).
type PredefinedElement string

// ElementName implements Element.
func (p PredefinedElement) ElementName() string { return string(p) }

var predefinedTypes = map[string]PredefinedElement{
	"Boolean": "Boolean",
	"Integer": "Integer",
	"Real":    "Real",
	"String":  "String",
}

// IsPredefinedTypeName reports whether name is one of the four built-in
// predefined scalar types.
func IsPredefinedTypeName(name string) bool {
	_, ok := predefinedTypes[name]
	return ok
}

// ResolveSimpleName implements the single-identifier lookup algorithm of
// spec §4.5: local elements shadow qualified imports; qualified imports
// shadow unqualified imports; unqualified imports are searched in
// declaration order; encapsulated scopes do not climb to their parent; the
// built-in predefined types are the last fallback.
func ResolveSimpleName(self Node, identifier string, global, encapsulated bool) (Element, bool) {
	start := self
	if global {
		start = root(self)
	}

	for current := start; current != nil; {
		for _, el := range current.Elements() {
			if el.ElementName() == identifier {
				return el, true
			}
		}
		if imported, ok := current.QualifiedImport(identifier); ok {
			if el, ok := asElement(imported); ok {
				return el, true
			}
		}
		for _, pkg := range current.UnqualifiedImports() {
			if el, ok := pkg.Resolve(identifier); ok {
				return el, true
			}
		}

		encapsulatedHere := encapsulated || current.Encapsulated()
		if encapsulatedHere {
			break
		}
		parent, ok := current.Parent()
		if !ok {
			break
		}
		current = parent
	}

	if pre, ok := predefinedTypes[identifier]; ok {
		return pre, true
	}
	return nil, false
}

// asElement returns a resolved Node (an imported package or class) as an
// Element so it can be returned uniformly alongside components and nested
// classes. It only type-asserts: a Node that does not itself implement
// Element is reported as not found.
func asElement(n Node) (Element, bool) {
	if e, ok := n.(Element); ok {
		return e, true
	}
	return nil, false
}

func root(n Node) Node {
	current := n
	for {
		parent, ok := current.Parent()
		if !ok {
			return current
		}
		current = parent
	}
}

// NamePath is a dotted reference: either a type-specifier name or a
// component-reference's name chain.
type NamePath []string

// ResolveName applies ResolveSimpleName to the first component, then
// ResolveSimpleName(..., encapsulated=true) to each subsequent component
// against the prior result (spec §4.5: "dotted access does not climb").
// The prior result must itself be a Node (a class) to continue; resolution
// stops and fails if an intermediate component resolves to something that
// is not further navigable.
func ResolveName(self Node, path NamePath, global bool) (Element, bool) {
	if len(path) == 0 {
		return nil, false
	}
	el, ok := ResolveSimpleName(self, path[0], global, false)
	if !ok {
		return nil, false
	}
	current := el
	for _, part := range path[1:] {
		nextScope, ok := current.(Node)
		if !ok {
			return nil, false
		}
		current, ok = ResolveSimpleName(nextScope, part, false, true)
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// ResolveComponentReference is identical to ResolveName except it is the
// entry point used for `ComponentReference` AST nodes specifically (spec
// §4.5); the two share one implementation since dotted-access semantics do
// not differ between a type-specifier path and a component-reference path.
func ResolveComponentReference(self Node, path NamePath) (Element, bool) {
	return ResolveName(self, path, false)
}

// ResolveTypeSpecifier dispatches through ResolveName honoring the global
// '.' prefix (spec §4.5).
func ResolveTypeSpecifier(self Node, path NamePath, global bool) (Element, bool) {
	return ResolveName(self, path, global)
}

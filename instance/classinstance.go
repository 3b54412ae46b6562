package instance

import (
	"github.com/modc-lang/modc/ast"
	"github.com/modc-lang/modc/diag"
	"github.com/modc-lang/modc/location"
	"github.com/modc-lang/modc/modification"
	"github.com/modc-lang/modc/scope"
)

// ClassInstance is the hub of the instance graph (spec §3). It implements
// both scope.Node (so name resolution can walk through it) and
// scope.Element (so it can appear as a nested-class member of its parent).
//
// A ClassInstance exclusively owns its declaredElements and its
// cloneCache (spec §5's ownership list); parent is a weak, non-owning
// back-pointer.
type ClassInstance struct {
	Name         string
	Kind         ast.ClassKind
	Def          *ast.ClassDefinition // nil for array/predefined/enumeration synthetic instances
	Modification *modification.Modification

	Declared            []DeclaredElement
	QualifiedImports    map[string]*ClassInstance
	UnqualifiedImports_ []*ClassInstance
	CloneCache          map[[32]byte]*ClassInstance
	Annotations         []*modification.Modification

	// Exactly one of Short, Array, Predefined is set for the corresponding
	// ClassInstance variant (spec §3); a plain class instance sets none of
	// them. Enum is set for enumeration classes, which have a nil Def.
	Short      *ShortClassInstance
	Array      *ArrayClassInstance
	Enum       *EnumerationClassInstance
	Predefined string // "Boolean", "Integer", "Real", "String", or "" if not predefined

	state  State
	parent *ClassInstance
}

// NewClassInstance constructs an uninstantiated class instance for the
// given class definition under scope parent.
func NewClassInstance(name string, def *ast.ClassDefinition, mod *modification.Modification, parent *ClassInstance) *ClassInstance {
	if mod == nil {
		mod = &modification.Modification{}
	}
	kind := ast.ClassKindUnspecified
	if def != nil {
		kind = def.Kind
	}
	ci := &ClassInstance{
		Name:         name,
		Kind:         kind,
		Def:          def,
		Modification: mod,
		CloneCache:   make(map[[32]byte]*ClassInstance),
		parent:       parent,
	}
	if def != nil && (def.Short != nil || def.Der != nil) {
		ci.Short = &ShortClassInstance{}
	}
	return ci
}

// State returns the current instantiation state.
func (c *ClassInstance) State() State { return c.state }

// ElementName implements scope.Element.
func (c *ClassInstance) ElementName() string { return c.Name }

// Elements implements scope.Node: every declared component and nested
// class, plus every extends-instance's own elements forwarded in place
// (spec §3: extends-instances "forward their elements into the enclosing
// class").
func (c *ClassInstance) Elements() []scope.Element {
	var out []scope.Element
	for _, d := range c.Declared {
		switch e := d.(type) {
		case ComponentElement:
			out = append(out, e.ComponentInstance)
		case NestedClassElement:
			out = append(out, e.ClassInstance)
		case ExtendsElement:
			for _, inner := range e.Elements() {
				out = append(out, declaredToElement(inner)...)
			}
		}
	}
	return out
}

func declaredToElement(d DeclaredElement) []scope.Element {
	switch e := d.(type) {
	case ComponentElement:
		return []scope.Element{e.ComponentInstance}
	case NestedClassElement:
		return []scope.Element{e.ClassInstance}
	case ExtendsElement:
		var out []scope.Element
		for _, inner := range e.Elements() {
			out = append(out, declaredToElement(inner)...)
		}
		return out
	default:
		return nil
	}
}

// QualifiedImport implements scope.Node.
func (c *ClassInstance) QualifiedImport(name string) (scope.Node, bool) {
	ci, ok := c.QualifiedImports[name]
	if !ok {
		return nil, false
	}
	return ci, true
}

// UnqualifiedImports implements scope.Node.
func (c *ClassInstance) UnqualifiedImports() []scope.Node {
	out := make([]scope.Node, len(c.UnqualifiedImports_))
	for i, ci := range c.UnqualifiedImports_ {
		out[i] = ci
	}
	return out
}

// Parent implements scope.Node.
func (c *ClassInstance) Parent() (scope.Node, bool) {
	if c.parent == nil {
		return nil, false
	}
	return c.parent, true
}

// Encapsulated implements scope.Node.
func (c *ClassInstance) Encapsulated() bool {
	if c.Def == nil || c.Def.Long == nil {
		return false
	}
	return c.Def.Prefixes.Encapsulated
}

// Resolve implements scope.Node: a direct lookup within this node's own
// elements, without walking the scope chain.
func (c *ClassInstance) Resolve(name string) (scope.Element, bool) {
	for _, el := range c.Elements() {
		if el.ElementName() == name {
			return el, true
		}
	}
	return nil, false
}

func scopeOf(c *ClassInstance) scope.Node {
	if c == nil {
		return nil
	}
	return c
}

func resolveTypeSpecifier(self *ClassInstance, ts ast.TypeSpecifier) (*ClassInstance, bool) {
	if self == nil {
		return nil, false
	}
	el, ok := scope.ResolveTypeSpecifier(self, scope.NamePath{ts.Name}, ts.Global)
	if !ok {
		return nil, false
	}
	if pre, ok := el.(scope.PredefinedElement); ok {
		return predefinedTarget(string(pre)), true
	}
	ci, ok := el.(*ClassInstance)
	return ci, ok
}

// predefinedCache holds one canonical, bare target ClassInstance per
// predefined type name, shared as the Clone receiver every predefined
// component resolves against. The engine is single-threaded (spec §5), so
// a plain map needs no locking.
var predefinedCache = map[string]*ClassInstance{}

func predefinedTarget(kind string) *ClassInstance {
	if ci, ok := predefinedCache[kind]; ok {
		return ci
	}
	ci := NewPredefinedInstance(kind, nil, nil)
	predefinedCache[kind] = ci
	return ci
}

// Clone implements spec §4.4's clone cache: merge(self.modification, mod),
// look up the merge's hash, and return the cached instance on a hit
// (re-asserting Instantiated) or build and cache a fresh instance on a
// miss. This is the engine's central performance property — a model reused
// a thousand times is built once.
func (c *ClassInstance) Clone(mod *modification.Modification, folder Folder, collector *diag.Collector) (*ClassInstance, error) {
	merged := modification.Merge(c.Modification, mod)
	if merged == nil {
		merged = &modification.Modification{}
	}
	h := merged.Hash()
	if cached, ok := c.CloneCache[h]; ok {
		if err := cached.Instantiate(folder, collector); err != nil {
			return nil, err
		}
		return cached, nil
	}

	clone := NewClassInstance(c.Name, c.Def, merged, c.parent)
	clone.Predefined = c.Predefined
	if c.Enum != nil {
		clone.Enum = &EnumerationClassInstance{Literals: c.Enum.Literals, Selected: c.Enum.Selected}
	}
	if c.Predefined != "" {
		clone.state = Instantiated
	}
	c.CloneCache[h] = clone
	return clone, nil
}

// CloneCacheLen reports how many distinct modifications of this class have
// been cloned and cached, a test/debug hook onto Clone's content-addressed
// cache (spec §8 scenario 6: two identically-modified instances share one
// clone).
func (c *ClassInstance) CloneCacheLen() int {
	return len(c.CloneCache)
}

// Instantiate implements spec §4.4's class instantiation algorithm (long
// form). Reentry while Instantiating is the one failure that returns a Go
// error (the node cannot make progress on itself); every other failure is
// reported through collector and instantiation proceeds best-effort.
func (c *ClassInstance) Instantiate(folder Folder, collector *diag.Collector) error {
	switch c.state {
	case Instantiated:
		return nil
	case Instantiating:
		collector.Collect(diag.NewIssue(diag.Fatal, diag.E_REENTRANT_INSTANTIATE,
			"reentrant instantiate() on \""+c.Name+"\"").Build())
		return &ReentrancyError{Name: c.Name}
	}
	c.state = Instantiating

	if err := c.instantiateBody(folder, collector); err != nil {
		c.state = Uninstantiated
		return err
	}

	c.state = Instantiated
	return nil
}

func (c *ClassInstance) instantiateBody(folder Folder, collector *diag.Collector) error {
	switch {
	case c.Array != nil:
		return c.instantiateArray(folder, collector)
	case c.Short != nil:
		return c.instantiateShort(folder, collector)
	case c.Predefined != "":
		return nil
	}
	if c.Def == nil || c.Def.Long == nil {
		return nil
	}
	long := c.Def.Long

	var imports []ast.ImportClause
	seen := make(map[string]int, len(long.Elements))
	for _, el := range long.Elements {
		switch n := el.(type) {
		case ast.NestedClass:
			if dup, ok := seen[n.Def.Name()]; ok {
				c.Declared[dup] = NestedClassElement{c.buildNestedClass(n)}
				collector.Collect(dupNameIssue(n.Def.Name(), n.Span()))
				continue
			}
			seen[n.Def.Name()] = len(c.Declared)
			c.Declared = append(c.Declared, NestedClassElement{c.buildNestedClass(n)})
		case ast.ComponentClause:
			for _, decl := range n.Declarations {
				if dup, ok := seen[decl.Name]; ok {
					c.Declared[dup] = ComponentElement{c.buildComponent(n, decl)}
					collector.Collect(dupNameIssue(decl.Name, decl.Span))
					continue
				}
				seen[decl.Name] = len(c.Declared)
				c.Declared = append(c.Declared, ComponentElement{c.buildComponent(n, decl)})
			}
		case ast.ExtendsClause:
			c.Declared = append(c.Declared, ExtendsElement{c.buildExtends(n)})
		case ast.SimpleImportClause:
			imports = append(imports, n)
		case ast.CompoundImportClause:
			imports = append(imports, n)
		case ast.UnqualifiedImportClause:
			imports = append(imports, n)
		}
	}

	for _, d := range c.Declared {
		ext, ok := d.(ExtendsElement)
		if !ok {
			continue
		}
		if err := ext.Instantiate(folder, collector); err != nil {
			return err
		}
	}

	c.resolveImports(imports, collector)

	if long.Annotation != nil {
		c.Annotations = append(c.Annotations, modification.FromAST(c, long.Annotation.Modification))
	}

	return nil
}

func (c *ClassInstance) buildNestedClass(n ast.NestedClass) *ClassInstance {
	mod := extractModification(c.Modification, n.Def.Name())
	if redecl := findClassRedeclaration(c.Modification, n.Def.Name()); redecl != nil {
		return NewClassInstance(redecl.RedeclName, redecl.ClassDef, mod, c)
	}
	return NewClassInstance(n.Def.Name(), n.Def, mod, c)
}

func (c *ClassInstance) buildComponent(clause ast.ComponentClause, decl *ast.ComponentDeclaration) *ComponentInstance {
	comp := &ComponentInstance{
		Name:        decl.Name,
		Description: decl.Description,
		Variability: clause.Variability,
		Causality:   clause.Causality,
		Flow:        clause.Flow,
		Stream:      clause.Stream,
		Subscripts:  decl.Subscripts,
		Condition:   decl.Condition,
		TypeSpec:    clause.Type,
		Modification: modification.Merge(
			extractModification(c.Modification, decl.Name),
			modification.FromAST(c, decl.Modification),
		),
		parent: c,
	}
	if redecl := findComponentRedeclaration(c.Modification, decl.Name); redecl != nil && redecl.Component != nil {
		comp.TypeSpec = redecl.Component.Type
	}
	if decl.Annotation != nil {
		comp.Annotations = append(comp.Annotations, modification.FromAST(c, decl.Annotation.Modification))
	}
	return comp
}

func (c *ClassInstance) buildExtends(n ast.ExtendsClause) *ExtendsClassInstance {
	var annot *modification.Modification
	if n.Annotation != nil {
		annot = modification.FromAST(c, n.Annotation.Modification)
	}
	return &ExtendsClassInstance{
		TypeSpec:       n.Type,
		InheritanceMod: modification.FromAST(c, n.Modification),
		Annotation:     annot,
		parent:         c,
	}
}

func (c *ClassInstance) resolveImports(imports []ast.ImportClause, collector *diag.Collector) {
	if c.QualifiedImports == nil {
		c.QualifiedImports = make(map[string]*ClassInstance)
	}
	for _, imp := range imports {
		switch n := imp.(type) {
		case ast.SimpleImportClause:
			target, ok := resolvePackagePath(c, n.Path)
			if !ok {
				collector.Collect(unresolvedImportIssue(n.Path, n.Span()))
				continue
			}
			name := n.ShortName
			if name == "" {
				name = target.Name
			}
			c.QualifiedImports[name] = target
		case ast.CompoundImportClause:
			pkg, ok := resolvePackagePath(c, n.Path)
			if !ok {
				collector.Collect(unresolvedImportIssue(n.Path, n.Span()))
				continue
			}
			for _, picked := range n.Names {
				el, ok := pkg.Resolve(picked)
				if !ok {
					collector.Collect(unresolvedImportIssue(n.Path+"."+picked, n.Span()))
					continue
				}
				if ci, ok := el.(*ClassInstance); ok {
					c.QualifiedImports[picked] = ci
				}
			}
		case ast.UnqualifiedImportClause:
			pkg, ok := resolvePackagePath(c, n.Path)
			if !ok {
				collector.Collect(unresolvedImportIssue(n.Path, n.Span()))
				continue
			}
			c.UnqualifiedImports_ = append(c.UnqualifiedImports_, pkg)
		}
	}
}

func resolvePackagePath(self *ClassInstance, dotted string) (*ClassInstance, bool) {
	path := splitDotted(dotted)
	el, ok := scope.ResolveName(self, path, true)
	if !ok {
		return nil, false
	}
	ci, ok := el.(*ClassInstance)
	return ci, ok
}

func splitDotted(s string) scope.NamePath {
	var parts scope.NamePath
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	parts = append(parts, s[start:])
	return parts
}

func dupNameIssue(name string, span location.Span) diag.Issue {
	return diag.NewIssue(diag.Warning, diag.E_DUPLICATE_ELEMENT_NAME,
		"element \""+name+"\" already declared in this scope").
		WithSpan(span).
		Build()
}

func unresolvedImportIssue(path string, span location.Span) diag.Issue {
	return diag.NewIssue(diag.Warning, diag.E_UNRESOLVED_IMPORT,
		"unresolved import \""+path+"\"").
		WithSpan(span).
		Build()
}

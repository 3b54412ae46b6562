package instance

import (
	"github.com/modc-lang/modc/ast"
	"github.com/modc-lang/modc/diag"
	"github.com/modc-lang/modc/expr"
	"github.com/modc-lang/modc/modification"
)

// predefinedAttributeNames lists the fixed attribute set predefined scalar
// instances read through their modification (spec §3).
var predefinedAttributeNames = []string{
	"quantity", "unit", "displayUnit", "min", "max", "start", "fixed",
	"nominal", "unbounded", "stateSelect",
}

// NewPredefinedInstance builds a Boolean/Integer/Real/String instance. It
// is immediately Instantiated: predefined instances have no declared
// elements of their own, only the fixed attribute set read through
// modification.
func NewPredefinedInstance(kind string, mod *modification.Modification, parent *ClassInstance) *ClassInstance {
	ci := NewClassInstance(kind, nil, mod, parent)
	ci.Predefined = kind
	ci.state = Instantiated
	return ci
}

// Attribute reads a predefined instance's attribute value by name (one of
// predefinedAttributeNames), using the folded or unevaluated expression
// attached to its modification. The interp package supplies folding; this
// method only looks up the raw AST expression, since instance cannot
// import interp (see [Folder]).
func (c *ClassInstance) Attribute(name string) (ast.Expr, bool) {
	if c.Predefined == "" || c.Modification == nil {
		return nil, false
	}
	for _, arg := range c.Modification.Arguments {
		if em, ok := arg.(*modification.ElementModification); ok && em.Head == name {
			return em.Nested.Expr, em.Nested.Expr != nil
		}
	}
	return nil, false
}

// EnumerationClassInstance carries an ordered list of enumeration literals
// and, when selected, a current value (spec §3). Enumeration-literal
// syntax is not part of this module's parse-tree-to-AST builder (see
// ast/builder.go's documented partial grammar coverage), so instances are
// constructed directly by callers that already know the literal set — a
// future grammar extension can call NewEnumerationInstance from the
// builder once it parses `type X = enumeration(a, b, c)`.
type EnumerationClassInstance struct {
	Literals []string
	Selected int // -1 if none selected
}

// NewEnumerationInstance builds an enumeration class instance with the
// given ordered literal set.
func NewEnumerationInstance(name string, literals []string, mod *modification.Modification, parent *ClassInstance) *ClassInstance {
	ci := NewClassInstance(name, nil, mod, parent)
	ci.Enum = &EnumerationClassInstance{Literals: literals, Selected: -1}
	ci.state = Instantiated
	return ci
}

// Select sets the enumeration's current value by literal name, per spec
// §4.6's enum-literal resolution. Reports false if name is not a member.
func (e *EnumerationClassInstance) Select(name string) bool {
	for i, lit := range e.Literals {
		if lit == name {
			e.Selected = i
			return true
		}
	}
	return false
}

// SelectedLiteral returns the name of the currently selected literal, or
// "" if none is selected.
func (e *EnumerationClassInstance) SelectedLiteral() string {
	if e.Selected < 0 || e.Selected >= len(e.Literals) {
		return ""
	}
	return e.Literals[e.Selected]
}

// ShortClassInstance is `X = Y[...](mods)` (spec §3): forwards to an
// underlying target, resolved at instantiation time.
type ShortClassInstance struct {
	Target *ClassInstance
}

// instantiateShort implements spec §4.4's short-class instantiation:
// resolve typeSpecifier under the enclosing scope; with no subscripts,
// clone the target under the short class's modification; with
// subscripts, wrap in an ArrayClassInstance. Resolution failure is a
// non-fatal diagnostic; the short instance is left present with no target.
func (c *ClassInstance) instantiateShort(folder Folder, collector *diag.Collector) error {
	var ts ast.TypeSpecifier
	var subscripts []ast.Expr
	var ownMod *modification.Modification
	switch {
	case c.Def.Short != nil:
		ts = c.Def.Short.Type
		subscripts = c.Def.Short.Subscripts
		ownMod = modification.FromAST(c, c.Def.Short.Modification)
	case c.Def.Der != nil:
		ts = c.Def.Der.Type
	}

	target, ok := resolveTypeSpecifier(c.parent, ts)
	if !ok {
		collector.Collect(diag.NewIssue(diag.Error, diag.E_UNRESOLVED_TYPE_SPECIFIER,
			"unresolved short-class target for \""+c.Name+"\"").
			WithSpan(ts.Span).
			Build())
		return nil
	}

	effective := modification.Merge(ownMod, c.Modification)

	if len(subscripts) == 0 {
		cloned, err := target.Clone(effective, folder, collector)
		if err != nil {
			return err
		}
		c.Short.Target = cloned
		return cloned.Instantiate(folder, collector)
	}

	arr := newArrayClassInstance(target, subscripts, effective, c.parent)
	if err := arr.Instantiate(folder, collector); err != nil {
		return err
	}
	c.Short.Target = arr
	return nil
}

// ArrayClassInstance is an element class plus evaluated integer shape
// (spec §3): declaredElements holds Π shape concrete cloned element
// instances under split modifications.
type ArrayClassInstance struct {
	ElementClass *ClassInstance
	Subscripts   []ast.Expr
	Shape        []int // -1 denotes a deferred (":") dimension
	Elements     []*ClassInstance
}

func newArrayClassInstance(elementClass *ClassInstance, subscripts []ast.Expr, mod *modification.Modification, parent *ClassInstance) *ClassInstance {
	ci := NewClassInstance(elementClass.Name, nil, mod, parent)
	ci.Array = &ArrayClassInstance{ElementClass: elementClass, Subscripts: subscripts}
	return ci
}

// instantiateArray implements spec §4.4's array-class instantiation: fold
// each subscript (an IntegerLit becomes a dimension, an unfoldable or
// absent subscript becomes -1/deferred), concatenate with the element
// class's own shape if it is itself array-shaped (through a
// ShortClassInstance forwarding chain), compute n = Π shape when fully
// concrete, split the modification n ways, and clone the element class
// once per slot.
func (c *ClassInstance) instantiateArray(folder Folder, collector *diag.Collector) error {
	a := c.Array
	shape := make([]int, 0, len(a.Subscripts))
	for _, sub := range a.Subscripts {
		shape = append(shape, foldDimension(sub, c, folder, collector))
	}

	inner := innerShape(a.ElementClass)
	shape = append(shape, inner...)
	a.Shape = shape

	n := 1
	concrete := true
	for _, dim := range shape {
		if dim < 0 {
			concrete = false
			break
		}
		n *= dim
	}
	if !concrete {
		return nil
	}

	splits := modification.Split(c.Modification, n)
	a.Elements = make([]*ClassInstance, n)
	for i := 0; i < n; i++ {
		cloned, err := a.ElementClass.Clone(splits[i], folder, collector)
		if err != nil {
			return err
		}
		a.Elements[i] = cloned
	}
	return nil
}

func foldDimension(e ast.Expr, self *ClassInstance, folder Folder, collector *diag.Collector) int {
	if e == nil {
		return -1
	}
	if folder == nil {
		return -1
	}
	v, ok := folder.Fold(self, e)
	if !ok {
		collector.Collect(diag.NewIssue(diag.Warning, diag.E_ARRAY_SHAPE_UNFOLDABLE,
			"array dimension did not fold to an integer constant").
			WithSpan(e.Span()).
			Build())
		return -1
	}
	iv, ok := v.(expr.IntegerValue)
	if !ok {
		collector.Collect(diag.NewIssue(diag.Warning, diag.E_ARRAY_SHAPE_UNFOLDABLE,
			"array dimension is not an integer").
			WithSpan(e.Span()).
			Build())
		return -1
	}
	return int(iv)
}

// innerShape concatenates an already-array-shaped element class's own
// shape, following a ShortClassInstance forwarding chain, per spec §4.4:
// "If the element class is itself array-shaped ... concatenate shapes."
func innerShape(ci *ClassInstance) []int {
	for ci != nil {
		if ci.Array != nil {
			return ci.Array.Shape
		}
		if ci.Short != nil && ci.Short.Target != nil {
			ci = ci.Short.Target
			continue
		}
		return nil
	}
	return nil
}

package ast

import "github.com/modc-lang/modc/location"

// ClassKind enumerates the nine class-like definitions Modelica shares a
// single grammar production for.
type ClassKind uint8

const (
	ClassKindUnspecified ClassKind = iota
	ClassKindClass
	ClassKindModel
	ClassKindRecord
	ClassKindBlock
	ClassKindConnector
	ClassKindType
	ClassKindPackage
	ClassKindFunction
	ClassKindOperator
)

// String returns the Modelica keyword for the kind.
func (k ClassKind) String() string {
	switch k {
	case ClassKindClass:
		return "class"
	case ClassKindModel:
		return "model"
	case ClassKindRecord:
		return "record"
	case ClassKindBlock:
		return "block"
	case ClassKindConnector:
		return "connector"
	case ClassKindType:
		return "type"
	case ClassKindPackage:
		return "package"
	case ClassKindFunction:
		return "function"
	case ClassKindOperator:
		return "operator"
	default:
		return "unspecified"
	}
}

// Prefixes carries the boolean class-definition prefixes the grammar allows
// before a class-kind keyword.
type Prefixes struct {
	Partial     bool
	Final       bool
	Inner       bool
	Outer       bool
	Replaceable bool
	Encapsulated bool
	// Pure/Impure applies only to function class-definitions.
	Pure   bool
	Impure bool
}

// StoredDefinition is the root of a parsed .mo file: an optional within
// clause followed by one or more top-level class definitions.
type StoredDefinition struct {
	Within *WithinDirective
	Final  bool
	Classes []*ClassDefinition
	Span    location.Span
}

// WithinDirective is the `within [name];` header of a stored definition.
type WithinDirective struct {
	Name string // dotted package name; empty for a top-level `within;`
	Span location.Span
}

// ClassDefinition is one `<kind> ... end Name;` declaration, or its short
// or der-class equivalent.
type ClassDefinition struct {
	Prefixes Prefixes
	Kind     ClassKind

	// Exactly one of Long, Short, Der is non-nil.
	Long  *LongClassSpecifier
	Short *ShortClassSpecifier
	Der   *DerClassSpecifier

	Span   location.Span
	parent *ClassDefinition // weak; non-owning; nil for the root classes of a StoredDefinition
}

// Parent returns the enclosing class definition, or nil at the top level.
func (c *ClassDefinition) Parent() *ClassDefinition { return c.parent }

// Name returns the defining identifier regardless of specifier shape.
func (c *ClassDefinition) Name() string {
	switch {
	case c.Long != nil:
		return c.Long.Identifier
	case c.Short != nil:
		return c.Short.Identifier
	case c.Der != nil:
		return c.Der.Identifier
	default:
		return ""
	}
}

// LongClassSpecifier is `identifier ... composition ... end endIdentifier;`.
type LongClassSpecifier struct {
	Identifier    string
	EndIdentifier string
	Description   string
	Elements      []Element
	Equations     []EquationSection
	Algorithms    []AlgorithmSection
	Annotation    *AnnotationClause
	Span          location.Span
}

// EndIdentifierMatches reports whether the header and trailer identifiers
// agree, per the spec's lint invariant (not a parse failure).
func (l *LongClassSpecifier) EndIdentifierMatches() bool {
	return l.Identifier == l.EndIdentifier
}

// ShortClassSpecifier is `identifier = typeSpecifier [subscripts] [modification];`.
type ShortClassSpecifier struct {
	Identifier   string
	Type         TypeSpecifier
	Subscripts   []Expr // array subscripts; nil if none
	Modification *Modification
	Span         location.Span
}

// DerClassSpecifier is `identifier = der(typeSpecifier, ident, ...);`.
type DerClassSpecifier struct {
	Identifier  string
	Type        TypeSpecifier
	DerivedVars []string
	Span        location.Span
}

// TypeSpecifier is a (possibly globally qualified) dotted type name.
type TypeSpecifier struct {
	Global bool // leading '.'
	Name   string
	Span   location.Span
}

// Element is the sum of the four things a long class body can declare in
// sequence: a nested class, a component clause, an extends clause, or an
// import clause. Declaration order within a class body matters (spec §4.4
// step 2 processes elements in order), so Elements is a flat ordered slice
// of this interface rather than four separate typed slices.
type Element interface {
	elementNode()
	Span() location.Span
}

// NestedClass wraps a ClassDefinition appearing as a class element.
type NestedClass struct {
	Def *ClassDefinition
}

func (NestedClass) elementNode() {}

// Span implements Element.
func (n NestedClass) Span() location.Span { return n.Def.Span }

// ComponentClause declares one or more components sharing a type,
// variability, causality, and flow/stream prefix.
type ComponentClause struct {
	Flow        bool
	Stream      bool
	Variability Variability
	Causality   Causality
	Type        TypeSpecifier
	Declarations []*ComponentDeclaration
	ClauseSpan   location.Span
}

func (ComponentClause) elementNode() {}

// Span implements Element.
func (c ComponentClause) Span() location.Span { return c.ClauseSpan }

// Variability is the `discrete|parameter|constant|continuous` prefix.
type Variability uint8

const (
	Continuous Variability = iota
	Discrete
	Parameter
	Constant
)

// Causality is the `input|output|none` prefix.
type Causality uint8

const (
	NoCausality Causality = iota
	Input
	Output
)

// ComponentDeclaration is one declared component name within a clause.
type ComponentDeclaration struct {
	Name        string
	Subscripts  []Expr // array subscripts on the declaration; nil if scalar
	Modification *Modification
	Condition   Expr // `if expr` component condition; nil if absent
	Description string
	Annotation  *AnnotationClause
	Span        location.Span
}

// ExtendsClause is `extends TypeSpecifier [(modifications)] [annotation];`.
type ExtendsClause struct {
	Type         TypeSpecifier
	Modification *Modification
	Annotation   *AnnotationClause
	ClauseSpan   location.Span
}

func (ExtendsClause) elementNode() {}

// Span implements Element.
func (e ExtendsClause) Span() location.Span { return e.ClauseSpan }

// ImportClause is the sum of the three import shapes the grammar allows.
type ImportClause interface {
	elementNode()
	Span() location.Span
	importNode()
}

// SimpleImportClause is `import [shortName =] pkg;`.
type SimpleImportClause struct {
	ShortName string // empty if not aliased
	Path      string
	ClauseSpan location.Span
}

func (SimpleImportClause) elementNode() {}
func (SimpleImportClause) importNode()  {}

// Span implements ImportClause.
func (s SimpleImportClause) Span() location.Span { return s.ClauseSpan }

// CompoundImportClause is `import pkg.{a,b,...};`.
type CompoundImportClause struct {
	Path       string
	Names      []string
	ClauseSpan location.Span
}

func (CompoundImportClause) elementNode() {}
func (CompoundImportClause) importNode()  {}

// Span implements ImportClause.
func (c CompoundImportClause) Span() location.Span { return c.ClauseSpan }

// UnqualifiedImportClause is `import pkg.*;`.
type UnqualifiedImportClause struct {
	Path       string
	ClauseSpan location.Span
}

func (UnqualifiedImportClause) elementNode() {}
func (UnqualifiedImportClause) importNode()  {}

// Span implements ImportClause.
func (u UnqualifiedImportClause) Span() location.Span { return u.ClauseSpan }

// EquationSection is an `equation ... ` block, possibly `initial equation`.
type EquationSection struct {
	Initial    bool
	Equations  []Equation
	SectionSpan location.Span
}

// AlgorithmSection is an `algorithm ...` block, possibly `initial algorithm`.
type AlgorithmSection struct {
	Initial     bool
	Statements  []Statement
	SectionSpan location.Span
}

// AnnotationClause is `annotation (classModification)`.
type AnnotationClause struct {
	Modification *Modification
	ClauseSpan   location.Span
}

package diag

// CodeCategory represents the semantic domain of an error code.
//
// Categories represent the semantic domain of an error, not necessarily the
// compiler phase that emits it. Most codes are emitted exclusively by their
// category's phase, but some codes represent cross-cutting concerns.
type CodeCategory uint8

const (
	// CategorySentinel is for sentinel codes like E_LIMIT_REACHED and E_INTERNAL.
	CategorySentinel CodeCategory = iota

	// CategorySyntax is for parse-tree errors surfaced by the parser collaborator.
	CategorySyntax

	// CategoryLookup is for name and type-specifier resolution failures.
	CategoryLookup

	// CategoryStructural is for instantiation and array-shape errors.
	CategoryStructural

	// CategoryLint is for non-fatal style and consistency diagnostics.
	CategoryLint

	// CategoryTranslation is for PO translation-table errors.
	CategoryTranslation
)

// String returns a human-readable label for the category.
func (c CodeCategory) String() string {
	switch c {
	case CategorySentinel:
		return "sentinel"
	case CategorySyntax:
		return "syntax"
	case CategoryLookup:
		return "lookup"
	case CategoryStructural:
		return "structural"
	case CategoryLint:
		return "lint"
	case CategoryTranslation:
		return "translation"
	default:
		return "unknown"
	}
}

// Code is a stable programmatic identifier for an Issue.
//
// Error codes are stable identifiers that tools can match on, even when
// message text changes. The Code type uses unexported fields to enforce
// a closed set of valid codes—only codes defined in this package are valid.
//
// Code.String() values are globally unique across all categories. The
// CodeCategory is informational metadata for filtering and grouping.
type Code struct {
	value string
	cat   CodeCategory
}

// String returns the code's string representation (e.g., "E_UNRESOLVED_IDENTIFIER").
func (c Code) String() string {
	return c.value
}

// Category returns the programmatic category for this code.
func (c Code) Category() CodeCategory {
	return c.cat
}

// IsZero reports whether the code is unset.
func (c Code) IsZero() bool {
	return c.value == ""
}

// code is the unexported constructor—callers cannot create arbitrary codes.
func code(value string, cat CodeCategory) Code {
	return Code{value: value, cat: cat}
}

// Sentinel codes.
var (
	// E_LIMIT_REACHED is a sentinel code for explicit limit notification.
	// It does not automatically trigger Result.LimitReached(); use
	// Collector.LimitReached() to check limit status. Callers may inject
	// this code manually when desired.
	E_LIMIT_REACHED = code("E_LIMIT_REACHED", CategorySentinel)

	// E_INTERNAL indicates an unexpected invariant failure (internal bug indicator).
	// Use for conditions that should never occur in correct code.
	E_INTERNAL = code("E_INTERNAL", CategorySentinel)

	// E_EXTERNAL marks an issue reported through the legacy Sink callback
	// shape (severity, message, resourcePath, range), which carries no
	// code of its own.
	E_EXTERNAL = code("E_EXTERNAL", CategorySentinel)
)

// Syntax codes, reported from parse-tree nodes marked isError/isMissing by
// the parser collaborator.
var (
	// E_SYNTAX indicates an error-marked or missing node in the parse tree.
	// The AST still materializes around it.
	E_SYNTAX = code("E_SYNTAX", CategorySyntax)
)

// Lookup codes, emitted as non-fatal diagnostics; traversal continues with
// null-valued links.
var (
	// E_UNRESOLVED_IDENTIFIER indicates a simple name could not be resolved
	// in any enclosing scope.
	E_UNRESOLVED_IDENTIFIER = code("E_UNRESOLVED_IDENTIFIER", CategoryLookup)

	// E_UNRESOLVED_TYPE_SPECIFIER indicates a component's type specifier
	// could not be resolved to a ClassInstance. The component's classInstance
	// field is left nil.
	E_UNRESOLVED_TYPE_SPECIFIER = code("E_UNRESOLVED_TYPE_SPECIFIER", CategoryLookup)

	// E_UNRESOLVED_IMPORT indicates an import clause names an identifier
	// that cannot be resolved. The import is skipped.
	E_UNRESOLVED_IMPORT = code("E_UNRESOLVED_IMPORT", CategoryLookup)
)

// Structural codes, covering instantiation and array-shape failures.
var (
	// E_REENTRANT_INSTANTIATE indicates instantiate() was re-entered on a
	// node already in the Instantiating state. Fatal.
	E_REENTRANT_INSTANTIATE = code("E_REENTRANT_INSTANTIATE", CategoryStructural)

	// E_MISSING_CLASS_DEFINITION indicates an entity's AST has no class
	// definition matching the name the library expected to find there.
	E_MISSING_CLASS_DEFINITION = code("E_MISSING_CLASS_DEFINITION", CategoryStructural)

	// E_ARRAY_SHAPE_MISMATCH indicates an array's evaluated dimension
	// disagrees with the length of a literal value supplied for it. Reuses
	// elements best-effort and proceeds.
	E_ARRAY_SHAPE_MISMATCH = code("E_ARRAY_SHAPE_MISMATCH", CategoryStructural)

	// E_ARRAY_SHAPE_UNFOLDABLE indicates an array dimension expression did
	// not fold to an integer constant. The dimension is recorded as -1 and
	// no clones are produced for that axis.
	E_ARRAY_SHAPE_UNFOLDABLE = code("E_ARRAY_SHAPE_UNFOLDABLE", CategoryStructural)
)

// Lint codes, non-fatal style and consistency diagnostics.
var (
	// E_DUPLICATE_ELEMENT_NAME indicates two elements at the same scope
	// declare the same name. The later declaration wins; iteration order
	// is preserved.
	E_DUPLICATE_ELEMENT_NAME = code("E_DUPLICATE_ELEMENT_NAME", CategoryLint)

	// E_END_IDENTIFIER_MISMATCH indicates a class's trailing "end Name;"
	// identifier does not match its header identifier.
	E_END_IDENTIFIER_MISMATCH = code("E_END_IDENTIFIER_MISMATCH", CategoryLint)

	// E_UNRESOLVED_COMPONENT_TYPE is surfaced by the second lint pass for
	// any component whose classInstance remained nil after instantiation:
	// "Class 'X' not found in scope 'Y'."
	E_UNRESOLVED_COMPONENT_TYPE = code("E_UNRESOLVED_COMPONENT_TYPE", CategoryLint)
)

// Translation codes.
var (
	// E_PO_PARSE indicates a malformed entry in a PO-style translation
	// table (unterminated string, unknown escape, orphaned continuation).
	E_PO_PARSE = code("E_PO_PARSE", CategoryTranslation)
)

// allCodes contains all defined codes for AllCodes() and uniqueness verification.
var allCodes = []Code{
	// Sentinel
	E_LIMIT_REACHED,
	E_INTERNAL,
	E_EXTERNAL,
	// Syntax
	E_SYNTAX,
	// Lookup
	E_UNRESOLVED_IDENTIFIER,
	E_UNRESOLVED_TYPE_SPECIFIER,
	E_UNRESOLVED_IMPORT,
	// Structural
	E_REENTRANT_INSTANTIATE,
	E_MISSING_CLASS_DEFINITION,
	E_ARRAY_SHAPE_MISMATCH,
	E_ARRAY_SHAPE_UNFOLDABLE,
	// Lint
	E_DUPLICATE_ELEMENT_NAME,
	E_END_IDENTIFIER_MISMATCH,
	E_UNRESOLVED_COMPONENT_TYPE,
	// Translation
	E_PO_PARSE,
}

// AllCodes returns all defined codes.
//
// This function is useful for tooling and testing. The returned slice is a
// copy; modifications do not affect the original.
func AllCodes() []Code {
	result := make([]Code, len(allCodes))
	copy(result, allCodes)
	return result
}

// CodesByCategory returns codes in the given category.
//
// The returned slice is a new allocation; modifications do not affect
// internal state.
func CodesByCategory(cat CodeCategory) []Code {
	var result []Code
	for _, c := range allCodes {
		if c.cat == cat {
			result = append(result, c)
		}
	}
	return result
}

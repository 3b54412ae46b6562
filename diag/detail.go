package diag

import "strconv"

// Detail provides key-value context for diagnostic issues.
//
// Details are used to add structured information to issues that can be
// programmatically inspected by tools. Use the standard detail key constants
// to ensure consistent key naming across the codebase.
type Detail struct {
	Key   string
	Value string
}

// Standard detail keys for consistent diagnostic metadata.
//
// Use these constants to avoid stringly-typed drift and enable programmatic
// inspection of diagnostic details. Custom detail keys are permitted for
// domain-specific diagnostics; use lower_snake_case for custom keys.
const (
	// DetailKeyExpected is the expected value or shape.
	DetailKeyExpected = "expected"

	// DetailKeyGot is the actual value or shape received.
	DetailKeyGot = "got"

	// DetailKeyClassName is the class name involved in the diagnostic.
	DetailKeyClassName = "class"

	// DetailKeyComponentName is the component name involved.
	DetailKeyComponentName = "component"

	// DetailKeyScopeName is the enclosing scope name in which resolution failed.
	DetailKeyScopeName = "scope"

	// DetailKeyIdentifier is the unresolved identifier text.
	DetailKeyIdentifier = "identifier"

	// DetailKeyReason is the failure reason discriminant.
	// Used with E_ARRAY_SHAPE_UNFOLDABLE ("non_integer", "non_constant").
	DetailKeyReason = "reason"

	// DetailKeyField is the field name associated with the diagnostic
	// (e.g., a modification-argument name).
	DetailKeyField = "field"

	// DetailKeyDetail is the specific error description (grammar violation,
	// shape-mismatch reason, parse error).
	DetailKeyDetail = "detail"

	// DetailKeyExtension is the file extension passed to the parser
	// collaborator's getParser lookup.
	DetailKeyExtension = "extension"

	// DetailKeyImportPath is the import path (for import resolution errors).
	DetailKeyImportPath = "path"

	// DetailKeyAlias is the import alias (for alias validation errors).
	DetailKeyAlias = "alias"

	// DetailKeyCycle is the cycle participants as a JSON array
	// (for inheritance and instantiation cycle detection).
	DetailKeyCycle = "cycle"

	// DetailKeyName is the invalid identifier name (for naming errors).
	DetailKeyName = "name"

	// DetailKeyContext is contextual information (e.g., "Library", "ClassInstance").
	DetailKeyContext = "context"

	// DetailKeyId is the identifier value (e.g., synthetic SourceID).
	DetailKeyId = "id"

	// DetailKeyFunction is the built-in function name involved in constant
	// folding (for interpreter errors).
	DetailKeyFunction = "function"

	// DetailKeyDimension is the array dimension index involved in a shape
	// diagnostic (0-based).
	DetailKeyDimension = "dimension"

	// DetailKeyModificationHash is the 256-bit modification hash (hex-encoded)
	// involved in a clone-cache diagnostic.
	DetailKeyModificationHash = "modification_hash"

	// DetailKeyEndIdentifier is the trailing identifier of an "end Name;"
	// clause, for end-identifier-mismatch diagnostics.
	DetailKeyEndIdentifier = "end_identifier"

	// DetailKeyHeaderIdentifier is the header identifier of a class
	// definition, for end-identifier-mismatch diagnostics.
	DetailKeyHeaderIdentifier = "header_identifier"

	// DetailKeyMsgctxt is the PO msgctxt for a translation-table diagnostic.
	DetailKeyMsgctxt = "msgctxt"

	// DetailKeyLine is the line number of the offending entry.
	DetailKeyLine = "line"
)

// ExpectedGot creates a pair of details for shape/type mismatch diagnostics.
//
// This is the standard pattern for reporting "expected X, got Y" errors.
func ExpectedGot(expected, got string) []Detail {
	return []Detail{
		{Key: DetailKeyExpected, Value: expected},
		{Key: DetailKeyGot, Value: got},
	}
}

// ClassComponent creates detail entries for class+component diagnostics.
//
// Use for diagnostics involving a specific component declared on a class,
// such as E_UNRESOLVED_TYPE_SPECIFIER.
func ClassComponent(className, componentName string) []Detail {
	return []Detail{
		{Key: DetailKeyClassName, Value: className},
		{Key: DetailKeyComponentName, Value: componentName},
	}
}

// IdentifierInScope creates detail entries for name-resolution diagnostics,
// pairing the unresolved identifier with the scope it was looked up in.
//
// Use with E_UNRESOLVED_IDENTIFIER and E_UNRESOLVED_COMPONENT_TYPE
// ("Class 'X' not found in scope 'Y'.").
func IdentifierInScope(identifier, scopeName string) []Detail {
	return []Detail{
		{Key: DetailKeyIdentifier, Value: identifier},
		{Key: DetailKeyScopeName, Value: scopeName},
	}
}

// ArrayDimension creates detail entries for array-shape diagnostics.
//
// Use for diagnostics like E_ARRAY_SHAPE_MISMATCH and
// E_ARRAY_SHAPE_UNFOLDABLE, identifying which dimension of which component
// failed to resolve.
func ArrayDimension(componentName string, dimension int, reason string) []Detail {
	return []Detail{
		{Key: DetailKeyComponentName, Value: componentName},
		{Key: DetailKeyDimension, Value: strconv.Itoa(dimension)},
		{Key: DetailKeyReason, Value: reason},
	}
}

// EndIdentifierMismatch creates detail entries for E_END_IDENTIFIER_MISMATCH
// diagnostics, pairing the class header identifier with the mismatched
// trailing identifier.
func EndIdentifierMismatch(headerIdentifier, endIdentifier string) []Detail {
	return []Detail{
		{Key: DetailKeyHeaderIdentifier, Value: headerIdentifier},
		{Key: DetailKeyEndIdentifier, Value: endIdentifier},
	}
}

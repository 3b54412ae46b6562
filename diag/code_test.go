package diag

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"
)

func TestCode_String(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{E_LIMIT_REACHED, "E_LIMIT_REACHED"},
		{E_INTERNAL, "E_INTERNAL"},
		{E_SYNTAX, "E_SYNTAX"},
		{E_UNRESOLVED_IDENTIFIER, "E_UNRESOLVED_IDENTIFIER"},
		{E_REENTRANT_INSTANTIATE, "E_REENTRANT_INSTANTIATE"},
		{E_DUPLICATE_ELEMENT_NAME, "E_DUPLICATE_ELEMENT_NAME"},
		{E_PO_PARSE, "E_PO_PARSE"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.code.String(); got != tt.want {
				t.Errorf("Code.String() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestCode_Category(t *testing.T) {
	tests := []struct {
		code Code
		want CodeCategory
	}{
		{E_LIMIT_REACHED, CategorySentinel},
		{E_INTERNAL, CategorySentinel},
		{E_SYNTAX, CategorySyntax},
		{E_UNRESOLVED_IDENTIFIER, CategoryLookup},
		{E_UNRESOLVED_TYPE_SPECIFIER, CategoryLookup},
		{E_UNRESOLVED_IMPORT, CategoryLookup},
		{E_REENTRANT_INSTANTIATE, CategoryStructural},
		{E_ARRAY_SHAPE_MISMATCH, CategoryStructural},
		{E_DUPLICATE_ELEMENT_NAME, CategoryLint},
		{E_END_IDENTIFIER_MISMATCH, CategoryLint},
		{E_PO_PARSE, CategoryTranslation},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.want {
				t.Errorf("%s.Category() = %s; want %s", tt.code, got, tt.want)
			}
		})
	}
}

func TestCode_IsZero(t *testing.T) {
	tests := []struct {
		name string
		code Code
		want bool
	}{
		{"zero value", Code{}, true},
		{"empty string value", code("", CategorySentinel), true},
		{"valid code", E_UNRESOLVED_IDENTIFIER, false},
		{"sentinel code", E_LIMIT_REACHED, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.code.IsZero(); got != tt.want {
				t.Errorf("Code.IsZero() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestCodeCategory_String(t *testing.T) {
	tests := []struct {
		cat  CodeCategory
		want string
	}{
		{CategorySentinel, "sentinel"},
		{CategorySyntax, "syntax"},
		{CategoryLookup, "lookup"},
		{CategoryStructural, "structural"},
		{CategoryLint, "lint"},
		{CategoryTranslation, "translation"},
		{CodeCategory(255), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.cat.String(); got != tt.want {
				t.Errorf("CodeCategory(%d).String() = %q; want %q", tt.cat, got, tt.want)
			}
		})
	}
}

func TestAllCodes(t *testing.T) {
	codes := AllCodes()

	// Verify we have a reasonable number of codes
	if len(codes) < 10 {
		t.Errorf("AllCodes() returned %d codes; expected at least 10", len(codes))
	}

	// Verify the slice is a copy (modifications don't affect internal state)
	original := AllCodes()
	codes[0] = Code{}
	afterMod := AllCodes()
	if afterMod[0].IsZero() {
		t.Error("AllCodes() should return a copy, not the internal slice")
	}
	if original[0].IsZero() {
		t.Error("original should not be affected by modifications to copy")
	}
}

func TestAllCodes_Uniqueness(t *testing.T) {
	// Critical test: verify all code strings are unique
	codes := AllCodes()
	seen := make(map[string]Code)

	for _, c := range codes {
		str := c.String()
		if str == "" {
			t.Error("found code with empty string")
			continue
		}
		if prev, ok := seen[str]; ok {
			t.Errorf("duplicate code string %q: categories %s and %s",
				str, prev.Category(), c.Category())
		}
		seen[str] = c
	}

	// Verify count matches
	if len(seen) != len(codes) {
		t.Errorf("unique codes: %d, total codes: %d", len(seen), len(codes))
	}
}

func TestAllCodes_NoZeroValues(t *testing.T) {
	for _, c := range AllCodes() {
		if c.IsZero() {
			t.Errorf("AllCodes() contains zero-value code")
		}
	}
}

func TestCodesByCategory(t *testing.T) {
	tests := []struct {
		cat         CodeCategory
		minExpected int
		mustContain []Code
	}{
		{
			cat:         CategorySentinel,
			minExpected: 2,
			mustContain: []Code{E_LIMIT_REACHED, E_INTERNAL},
		},
		{
			cat:         CategorySyntax,
			minExpected: 1,
			mustContain: []Code{E_SYNTAX},
		},
		{
			cat:         CategoryLookup,
			minExpected: 3,
			mustContain: []Code{E_UNRESOLVED_IDENTIFIER, E_UNRESOLVED_TYPE_SPECIFIER, E_UNRESOLVED_IMPORT},
		},
		{
			cat:         CategoryStructural,
			minExpected: 3,
			mustContain: []Code{E_REENTRANT_INSTANTIATE, E_MISSING_CLASS_DEFINITION, E_ARRAY_SHAPE_MISMATCH},
		},
		{
			cat:         CategoryLint,
			minExpected: 3,
			mustContain: []Code{E_DUPLICATE_ELEMENT_NAME, E_END_IDENTIFIER_MISMATCH, E_UNRESOLVED_COMPONENT_TYPE},
		},
		{
			cat:         CategoryTranslation,
			minExpected: 1,
			mustContain: []Code{E_PO_PARSE},
		},
	}

	for _, tt := range tests {
		t.Run(tt.cat.String(), func(t *testing.T) {
			codes := CodesByCategory(tt.cat)

			if len(codes) < tt.minExpected {
				t.Errorf("CodesByCategory(%s) returned %d codes; expected at least %d",
					tt.cat, len(codes), tt.minExpected)
			}

			// Verify all returned codes have the correct category
			for _, c := range codes {
				if c.Category() != tt.cat {
					t.Errorf("code %s has category %s; expected %s",
						c, c.Category(), tt.cat)
				}
			}

			// Verify must-contain codes are present
			codeSet := make(map[string]bool)
			for _, c := range codes {
				codeSet[c.String()] = true
			}
			for _, required := range tt.mustContain {
				if !codeSet[required.String()] {
					t.Errorf("CodesByCategory(%s) missing required code %s",
						tt.cat, required)
				}
			}
		})
	}
}

func TestCodesByCategory_ReturnsNewSlice(t *testing.T) {
	// Verify modifications don't affect internal state
	codes1 := CodesByCategory(CategoryLookup)
	if len(codes1) == 0 {
		t.Skip("no lookup codes to test with")
	}

	codes1[0] = Code{}
	codes2 := CodesByCategory(CategoryLookup)

	if codes2[0].IsZero() {
		t.Error("CodesByCategory should return a new slice each time")
	}
}

func TestCodesByCategory_AllCategoriesCovered(t *testing.T) {
	// Verify every code in AllCodes appears in exactly one category
	allByCategory := make(map[string]bool)
	categories := []CodeCategory{
		CategorySentinel,
		CategorySyntax,
		CategoryLookup,
		CategoryStructural,
		CategoryLint,
		CategoryTranslation,
	}

	for _, cat := range categories {
		for _, c := range CodesByCategory(cat) {
			if allByCategory[c.String()] {
				t.Errorf("code %s appears in multiple categories", c)
			}
			allByCategory[c.String()] = true
		}
	}

	for _, c := range AllCodes() {
		if !allByCategory[c.String()] {
			t.Errorf("code %s not returned by any CodesByCategory call", c)
		}
	}
}

// TestFailureSemanticsCodesExist verifies that the codes named in the
// compiler's failure-semantics table are all defined with the right category.
func TestFailureSemanticsCodesExist(t *testing.T) {
	requiredCodes := []struct {
		code     Code
		category CodeCategory
	}{
		// Sentinel
		{E_LIMIT_REACHED, CategorySentinel},
		{E_INTERNAL, CategorySentinel},
		// Syntax
		{E_SYNTAX, CategorySyntax},
		// Lookup
		{E_UNRESOLVED_IDENTIFIER, CategoryLookup},
		{E_UNRESOLVED_TYPE_SPECIFIER, CategoryLookup},
		{E_UNRESOLVED_IMPORT, CategoryLookup},
		// Structural
		{E_REENTRANT_INSTANTIATE, CategoryStructural},
		{E_MISSING_CLASS_DEFINITION, CategoryStructural},
		{E_ARRAY_SHAPE_MISMATCH, CategoryStructural},
		{E_ARRAY_SHAPE_UNFOLDABLE, CategoryStructural},
		// Lint
		{E_DUPLICATE_ELEMENT_NAME, CategoryLint},
		{E_END_IDENTIFIER_MISMATCH, CategoryLint},
		{E_UNRESOLVED_COMPONENT_TYPE, CategoryLint},
		// Translation
		{E_PO_PARSE, CategoryTranslation},
	}

	for _, tc := range requiredCodes {
		t.Run(tc.code.String(), func(t *testing.T) {
			if tc.code.IsZero() {
				t.Errorf("code %s is zero", tc.code)
			}
			if tc.code.Category() != tc.category {
				t.Errorf("code %s has category %s; want %s",
					tc.code, tc.code.Category(), tc.category)
			}
		})
	}
}

// TestAllCodes_MatchesDefinedCodes uses AST parsing to verify that every
// exported E_* variable in code.go appears in allCodes exactly once.
// This prevents drift between code definitions and the allCodes slice.
func TestAllCodes_MatchesDefinedCodes(t *testing.T) {
	// Parse code.go to find all exported E_* variable declarations
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "code.go", nil, 0)
	if err != nil {
		t.Fatalf("failed to parse code.go: %v", err)
	}

	// Collect all E_* variable names from AST
	definedCodes := make(map[string]bool)
	ast.Inspect(f, func(n ast.Node) bool {
		genDecl, ok := n.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.VAR {
			return true
		}

		for _, spec := range genDecl.Specs {
			valueSpec, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}
			for _, name := range valueSpec.Names {
				if strings.HasPrefix(name.Name, "E_") && name.IsExported() {
					definedCodes[name.Name] = true
				}
			}
		}
		return true
	})

	if len(definedCodes) == 0 {
		t.Fatal("no E_* variables found in code.go")
	}

	// Build map from allCodes
	allCodesMap := make(map[string]bool)
	for _, c := range AllCodes() {
		str := c.String()
		if allCodesMap[str] {
			t.Errorf("allCodes contains duplicate: %s", str)
		}
		allCodesMap[str] = true
	}

	// Check for codes in definitions but not in allCodes
	for name := range definedCodes {
		if !allCodesMap[name] {
			t.Errorf("E_* variable %s defined in code.go but missing from allCodes", name)
		}
	}

	// Check for codes in allCodes but not in definitions
	for name := range allCodesMap {
		if !definedCodes[name] {
			t.Errorf("allCodes contains %s but no matching E_* variable in code.go", name)
		}
	}

	// Log counts for visibility
	t.Logf("found %d E_* definitions, %d entries in allCodes", len(definedCodes), len(allCodesMap))
}

// Package hygiene provides programmatic verification of architectural invariants.
//
// This package contains tests that enforce layering constraints across the
// module. These tests serve as the authoritative gate for dependency hygiene;
// shell snippets in documentation are for convenience only.
//
// # Foundation Tier Import Rules
//
// The module has a tiered architecture where foundation packages must not
// import upper-tier packages:
//
//   - location: stdlib + golang.org/x/text/unicode/norm (no other packages)
//   - diag: stdlib + location (no upper-tier packages)
//   - internal/textlit: stdlib only (no other packages)
//
// Upper-tier packages that foundation packages must NOT import:
//
//   - ast
//   - expr
//   - modification
//   - scope
//   - instance
//   - library
//   - flatten
//   - internal/trace
//
// # Test Coverage
//
// [TestFoundationImports] verifies the location and diag constraints, and that
// internal/trace imports none of the upper-tier packages, using
// `go list -deps -test`, which includes both production and test dependencies.
// This catches cases where test files violate layering even if production code
// is clean. The internal/textlit rule is not checked by this test.
//
// Packages that don't exist yet are skipped. Once a foundation package is
// created, it will automatically be tested.
package hygiene

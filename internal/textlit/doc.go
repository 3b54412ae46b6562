// Package textlit provides text literal conversion utilities.
//
// This package handles the conversion of quoted string literals to Go
// strings, including escape sequence processing via strconv.Unquote. It
// supports double-quoted string literals with standard Go escape sequences
// (\n, \t, \uXXXX, etc.), which is a superset of the escapes Modelica string
// literals and PO translation-table entries require (\n, \", \\).
//
// # Internal Package
//
// This package is internal to the modc library. Its API may change without
// notice between versions. External consumers should not import this package.
//
// # Main Functions
//
//   - ConvertString: Converts a quoted string literal (double or single
//     quoted) to a Go string, processing escape sequences. Returns the
//     original string alongside an error for invalid escapes to enable
//     proper diagnostics.
//
// # Usage Notes
//
// This package is positioned in internal/ rather than as part of the ast
// package to allow both ast and the PO translation-table reader to depend
// on it without creating upward dependencies.
package textlit

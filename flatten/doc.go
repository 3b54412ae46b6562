// Package flatten walks an instantiated class graph and writes its
// flattened textual form: a single `class Name ... end Name;` block
// holding one declaration per reachable component and one equation per
// emitted equation, with component references rewritten to their full
// dotted instance path.
//
// The walker and Printer follow the functional-options/trace-span shape
// used throughout this module (see library.Load). Flatten walks the graph
// into a buffered [Document]; Run calls Flatten and then prints that
// Document to an io.Writer, the same "Writer is any sink with
// write(string)" contract the rest of the module's external interfaces use.
package flatten

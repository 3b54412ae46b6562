// Package parsetree defines the narrow interface a concrete Modelica parser
// must satisfy for the rest of this module to build an AST from it.
//
// No concrete parser ships in this module; the grammar itself is an external
// collaborator. Node is deliberately shaped around what a tree-sitter-style
// parser exposes naturally: a type name, a byte/line-column span, field-keyed
// children, and error/missing predicates.
package parsetree

import "github.com/modc-lang/modc/location"

// Parser produces a parse tree for one source file's text.
type Parser interface {
	// Parse parses text and returns its root node. sourceID names the
	// source the text was read from.
	Parse(text []byte, sourceID location.SourceID) (Node, error)
}

// Node is one node of a concrete parse tree.
//
// Implementations are expected to be read-only views backed by the
// underlying parser's tree; modc never mutates a Node.
type Node interface {
	// Kind is the grammar's type name for this node (e.g. "long_class_specifier").
	Kind() string

	// Span is this node's source range.
	Span() location.Span

	// Text is the node's raw source text.
	Text() string

	// Child returns the single named field child, or nil if absent.
	Child(field string) Node

	// Children returns all children for a repeated field, in source order.
	Children(field string) []Node

	// IsError reports whether the parser marked this node as a syntax error.
	IsError() bool

	// IsMissing reports whether the parser synthesized this node to recover
	// from a missing required token.
	IsMissing() bool
}

// WalkErrors visits every error or missing node reachable from root.
//
// The visit function is field-name agnostic: it walks every field present
// on a Kind via the parser-specific field registry, which is why it takes a
// fields func rather than hardcoding Modelica's field names here.
func WalkErrors(root Node, fields func(kind string) []string, visit func(Node)) {
	if root == nil {
		return
	}
	if root.IsError() || root.IsMissing() {
		visit(root)
	}
	for _, field := range fields(root.Kind()) {
		for _, child := range root.Children(field) {
			WalkErrors(child, fields, visit)
		}
	}
}

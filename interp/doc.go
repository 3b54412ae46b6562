// Package interp implements the constant folder that turns unevaluated
// ast.Expr syntax into expr.Value IR (spec §4.6). Evaluator is the
// concrete instance.Folder the instantiation engine calls back into when
// it needs an array dimension or a predefined attribute's folded value;
// the dependency runs one way only (instance declares the Folder
// interface, interp implements it) so instantiation and folding can refer
// to each other without an import cycle.
package interp

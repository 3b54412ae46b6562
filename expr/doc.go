// Package expr implements the flattened, partially-evaluated Expression IR
// that the interpreter folds AST expressions into (spec §4.2).
//
// Values are a closed set behind the [Value] interface, following the same
// private-marker-method discrimination the ast package uses for syntax
// nodes. Construction happens through the interp package's constant folder;
// this package owns the representation, JSON serialization, array
// splitting, and structural hashing used by the modification algebra.
package expr

// Package ast defines the typed syntax tree for Modelica source.
//
// Nodes are built from a concrete parse tree (see the parsetree package) or
// can be constructed directly by tests and by the modification package's
// programmatic builders. A [ClassDefinition] keeps a weak (non-owning)
// pointer to its enclosing class, set by the [Builder] for classes nested in
// a long class body; root classes and directly constructed nodes leave it
// nil. Other node kinds (elements, equations, expressions) carry no parent
// pointer.
//
// Expression, equation, and statement nodes are modeled as a closed set of
// types behind the [Expr] and [Equation] interfaces: a private marker method
// prevents external packages from adding new variants, and [Visitor]
// dispatches exhaustively over the known set. Declaration-shaped nodes
// (class definitions, component clauses, import clauses) are concrete
// structs, since nothing needs to visit them polymorphically the way
// expressions and equations do.
package ast

// Package scope implements Modelica name resolution (spec §4.5): simple,
// qualified, global, and component-reference lookup through the scope
// chain, imports, inheritance, and the built-in predefined types.
//
// This package defines only the [Node] interface name resolution walks
// over; the instance package's ClassInstance implements it. Keeping the
// interface here (rather than in instance) lets the lookup algorithm stay
// free of the instantiation state machine, and keeps scope below instance
// in the module's import layering (see internal/hygiene).
package scope

// Package instance implements the instance graph (spec §4.4): class
// instances, component instances, extends-instances, array-class
// instances, predefined scalar instances, and the instantiation state
// machine with its content-addressed clone cache.
//
// instance does not import the interp package even though instantiation
// needs constant folding (array dimensions, enumeration selections): the
// dependency actually runs both ways (interp resolves names and forces
// component instantiation through instance, instance needs interp to fold
// array-dimension expressions), which would be a straight import cycle if
// instance depended on interp directly. The [Folder] interface inverts the
// dependency — instance declares the seam, interp implements it, and the
// caller that wires a Library together passes the concrete folder in.
package instance

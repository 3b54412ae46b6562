// Package annotation instantiates a class or component's annotation
// modifications against the predefined annotation schema (spec §4.7),
// producing one Annotation per top-level argument of each annotation(...)
// clause the instance carries.
//
// The schema's recognized names mirror schema.mo, the canonical Modelica
// source spec §6 requires be built into the binary; schema.mo is embedded
// for inspection, but recognition itself is driven by the recognized set
// in annotation.go rather than by parsing schema.mo at runtime, following the same
// pattern instance/predefined.go uses for Boolean/Integer/Real/String:
// this module ships no grammar to parse schema.mo with, so its recognized
// classes are synthesized directly rather than round-tripped through a
// parser this module does not have.
package annotation

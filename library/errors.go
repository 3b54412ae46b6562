package library

import "errors"

// ErrNoParser is returned by Load when no WithParser option was supplied.
// Load has no usable default parser collaborator (spec §1/§6 name the
// concrete grammar as an external dependency this module never ships).
var ErrNoParser = errors.New("library: no parser configured; use WithParser")

// ErrNotFound is returned when the root path does not exist.
var ErrNotFound = errors.New("library: root path not found")

package jsonio

import (
	"encoding/json"

	"github.com/modc-lang/modc/flatten"
)

// MarshalDocument renders a flattened class (flatten.Flatten's result) to
// JSON, for a downstream simulation pipeline that wants the declaration and
// equation lists as data rather than parsing Modelica surface syntax back
// out of flatten.Run's text output. The wire shape is flatten.Document's
// own json tags, so the two stay in lockstep by construction.
func MarshalDocument(doc *flatten.Document) ([]byte, error) {
	return json.Marshal(doc)
}

// MarshalDocumentIndent is MarshalDocument with human-readable
// indentation, for CLI output and debugging.
func MarshalDocumentIndent(doc *flatten.Document, prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(doc, prefix, indent)
}

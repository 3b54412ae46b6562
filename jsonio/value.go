package jsonio

import (
	"encoding/json"

	"github.com/modc-lang/modc/expr"
)

// MarshalValue renders a folded expression value to its stable JSON form
// (spec §4.2's toJSON rule): scalars map to JSON scalars, arrays fold back
// to nested lists via their shape, and records become objects carrying an
// "@type" key for their class name. It is the same conversion
// expr.ToJSON performs, wrapped with encoding/json's standard marshaling so
// callers outside this module never need to import expr directly.
func MarshalValue(v expr.Value) ([]byte, error) {
	return json.Marshal(expr.ToJSON(v))
}

// MarshalValueIndent is MarshalValue with human-readable indentation, for
// CLI output and debugging.
func MarshalValueIndent(v expr.Value, prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(expr.ToJSON(v), prefix, indent)
}

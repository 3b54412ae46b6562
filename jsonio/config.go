package jsonio

import (
	"encoding/json"
	"io"

	"github.com/tidwall/jsonc"
)

// Config is the shape of an optional `modc.jsonc` host-tooling sidecar
// (SPEC_FULL.md §11): default library search roots and flattener defaults a
// host can set without wiring them through command-line flags. Every field
// is optional; a caller applies only the ones it cares about as Option
// values on library.Load/flatten.Run.
type Config struct {
	// LibraryRoots lists library root paths. cmd/modc loads the first one
	// when -library is not given; the other entries are not read.
	LibraryRoots []string `json:"libraryRoots,omitempty"`
	// IssueLimit is the default diagnostic issue cap, mirroring
	// library.WithIssueLimit/flatten.WithIssueLimit. Zero means unlimited.
	IssueLimit int `json:"issueLimit,omitempty"`
	// RootClass is the fully-qualified class name to flatten when a host
	// tool is not told one explicitly.
	RootClass string `json:"rootClass,omitempty"`
}

// ReadSidecarConfig reads a JSONC-tolerant config sidecar: trailing commas
// and both comment styles are accepted, matching the leniency a
// hand-edited host config file needs in practice. jsonc.ToJSON preprocesses
// the raw bytes into strict JSON in place (same length, comments and
// trailing commas blanked to spaces) before the standard decoder runs,
// exactly the "preprocess then decode" shape the teacher's own
// jsonc regression test documents for its offset-preserving guarantee.
func ReadSidecarConfig(r io.Reader) (*Config, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(jsonc.ToJSON(raw), &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

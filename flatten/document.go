package flatten

import (
	"context"
	"log/slog"

	"github.com/modc-lang/modc/diag"
	"github.com/modc-lang/modc/instance"
	"github.com/modc-lang/modc/internal/trace"
)

// Document is the flattened result of one class as data, rather than the
// rendered `class Name ... end Name;` text Run writes: one already-rendered
// declaration line per reachable component, and one already-rendered
// equation line per reachable equation, in the same grouped order spec §6's
// output form requires. Run builds its text output by printing a Document;
// jsonio serializes a Document directly for machine consumers that want the
// flattened result as data rather than Modelica surface syntax.
// Document.Annotations maps a dotted component path (the root class
// itself, for the empty path) to its instantiated annotations, each
// rendered to the same JSON form annotation.Lookup returns for spec
// §4.7's `annotation(name)` accessor. A path with no annotation
// modifications of its own is simply absent from the map.
type Document struct {
	ClassName    string                    `json:"className"`
	Declarations []string                  `json:"declarations"`
	Equations    []string                  `json:"equations"`
	Annotations  map[string]map[string]any `json:"annotations,omitempty"`
}

// Flatten instantiates root (idempotent if already instantiated) and
// returns its flattened form as a Document, per spec §4.8. Like Run, err is
// non-nil only for the fatal reentrant-instantiation case; diagnostics
// accumulate in the returned Result.
func Flatten(root *instance.ClassInstance, folder instance.Folder, opts ...Option) (*Document, diag.Result, error) {
	cfg := defaultConfig()
	applyOptions(cfg, opts)

	ctx := context.Background()
	if cfg.requestID != "" {
		ctx = trace.WithRequestID(ctx, cfg.requestID)
	}
	op := trace.Begin(ctx, cfg.logger, "modc.flatten.flatten", slog.String("class", root.Name))
	var err error
	defer func() { op.End(err) }()

	collector := diag.NewCollector(cfg.issueLimit)
	if err = root.Instantiate(folder, collector); err != nil {
		return nil, collector.Result(), err
	}

	wk := &walker{folder: folder, collector: collector}
	walkRoot(wk, root)

	doc := &Document{ClassName: root.Name, Declarations: wk.vars, Equations: wk.eqs, Annotations: wk.annotations}
	return doc, collector.Result(), nil
}

package flatten

import (
	"context"
	"io"
	"log/slog"

	"github.com/modc-lang/modc/diag"
	"github.com/modc-lang/modc/instance"
	"github.com/modc-lang/modc/internal/trace"
)

// Run instantiates root (idempotent if already instantiated) and writes
// its flattened textual form to w, per spec §4.8: a `class Name ... end
// Name;` block holding one declaration per reachable component and one
// equation per emitted equation. Diagnostics accumulate in the returned
// Result rather than unwinding to the caller; err is non-nil only for the
// fatal reentrant-instantiation case or a write failure on w.
func Run(root *instance.ClassInstance, w io.Writer, folder instance.Folder, opts ...Option) (diag.Result, error) {
	cfg := defaultConfig()
	applyOptions(cfg, opts)

	ctx := context.Background()
	if cfg.requestID != "" {
		ctx = trace.WithRequestID(ctx, cfg.requestID)
	}
	op := trace.Begin(ctx, cfg.logger, "modc.flatten.run", slog.String("class", root.Name))
	var err error
	defer func() { op.End(err) }()

	doc, result, ferr := Flatten(root, folder, opts...)
	if ferr != nil {
		err = ferr
		return result, err
	}

	p := newPrinter(w)
	p.Line("class " + doc.ClassName)
	p.Indent()
	for _, v := range doc.Declarations {
		p.Line(v)
	}
	for _, e := range doc.Equations {
		p.Line(e)
	}
	p.Dedent()
	p.Line("end " + doc.ClassName + ";")

	if p.Err() != nil {
		err = p.Err()
	}
	return result, err
}

// walkRoot handles the root class itself, which (unlike a component) has
// no owning ComponentInstance to supply variability/description metadata
// and no path prefix of its own.
func walkRoot(wk *walker, root *instance.ClassInstance) {
	target := unwrapShort(root)
	if target == nil || target.Array != nil || isLeaf(target) {
		// A scalar or array root has nothing to name its own members
		// with; spec §8's scenarios all flatten a composite root.
		return
	}
	wk.recordAnnotations(nil, nil, target)
	wk.walkDeclared(nil, target.Declared)
	for _, sec := range equationSectionsOf(target) {
		for _, eq := range sec.Equations {
			wk.eqs = append(wk.eqs, wk.renderEquation(eq, nil))
		}
	}
}

package annotation

import (
	_ "embed"

	"github.com/modc-lang/modc/diag"
	"github.com/modc-lang/modc/expr"
	"github.com/modc-lang/modc/instance"
	"github.com/modc-lang/modc/modification"
)

//go:embed schema.mo
var schemaSource string

// Source returns the canonical embedded annotation schema text (spec §6).
func Source() string { return schemaSource }

// recognized holds the schema.mo class names: an annotation argument
// matching one of these is Recognized; anything else still produces a
// dummy Annotation so callers can read its modification data.
var recognized = map[string]bool{
	"Placement": true, "Icon": true, "Diagram": true,
	"Line": true, "Rectangle": true, "Ellipse": true, "Polygon": true,
	"Text": true, "Bitmap": true, "choices": true, "dialog": true,
}

// Annotation is one instantiated top-level argument of an annotation
// modification, e.g. the Placement in `annotation(Placement(...))`
// (spec §4.7).
type Annotation struct {
	Name       string
	Recognized bool
	Instance   *instance.ClassInstance
}

// Build instantiates each top-level argument of every modification in
// mods against the schema, in order. Arguments that are not dotted-name
// element modifications (a bare ParameterModification or Redeclaration,
// which annotation syntax never actually produces) are skipped.
func Build(mods []*modification.Modification, folder instance.Folder, collector *diag.Collector) []*Annotation {
	var out []*Annotation
	for _, mod := range mods {
		if mod == nil {
			continue
		}
		for _, arg := range mod.Arguments {
			em, ok := arg.(*modification.ElementModification)
			if !ok {
				continue
			}
			ci := instance.NewClassInstance(em.Head, nil, em.Nested, nil)
			_ = ci.Instantiate(folder, collector)
			out = append(out, &Annotation{
				Name:       em.Head,
				Recognized: recognized[em.Head],
				Instance:   ci,
			})
		}
	}
	return out
}

// Lookup returns the JSON form of the first annotation named name, or nil
// if none matches (spec §4.7's annotation(name) accessor).
func Lookup(annotations []*Annotation, name string, folder instance.Folder) any {
	for _, a := range annotations {
		if a.Name == name {
			return ToJSON(a.Instance, folder)
		}
	}
	return nil
}

// ToJSON renders an annotation instance's modification tree into a plain
// Go value: each element-modification argument becomes an object key,
// folding its expression (or, if it has none, recursing into its own
// arguments) the same way expr.ToJSON renders any other folded value.
func ToJSON(ci *instance.ClassInstance, folder instance.Folder) any {
	if ci == nil {
		return nil
	}
	b := &jsonBuilder{folder: folder}
	return b.modToJSON(ci.Modification)
}

type jsonBuilder struct {
	folder instance.Folder
}

func (b *jsonBuilder) modToJSON(m *modification.Modification) any {
	if m == nil {
		return nil
	}
	out := map[string]any{}
	for _, arg := range m.Arguments {
		em, ok := arg.(*modification.ElementModification)
		if !ok {
			continue
		}
		out[em.Head] = b.argValue(em.Nested)
	}
	if m.Expr != nil {
		v := b.exprValue(m)
		if len(out) == 0 {
			return v
		}
		out["value"] = v
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func (b *jsonBuilder) argValue(nested *modification.Modification) any {
	if nested == nil {
		return nil
	}
	if len(nested.Arguments) > 0 {
		return b.modToJSON(nested)
	}
	return b.exprValue(nested)
}

func (b *jsonBuilder) exprValue(m *modification.Modification) any {
	if m == nil || m.Expr == nil || b.folder == nil {
		return nil
	}
	if v, ok := m.Folded(); ok {
		return expr.ToJSON(v)
	}
	v, ok := b.folder.Fold(m.Scope, m.Expr)
	if !ok {
		return nil
	}
	m.SetFolded(v)
	return expr.ToJSON(v)
}

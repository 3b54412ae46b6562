package instance

import (
	"github.com/modc-lang/modc/diag"
	"github.com/modc-lang/modc/expr"
)

// FromClassInstance implements spec §4.2's canonical fromClassInstance(ci)
// rule for turning an instantiated class into an expression value:
// predefined classes fold their value expression (or, if it cannot be
// folded, any partially-folded fragment Fold returns); enumeration
// classes convert to their selected literal; array classes convert to an
// Array with the shape and recursively converted elements; every other
// class converts to a Record mapping each declared component's name to
// fromClassInstance(component.classInstance), tagged with the class name,
// forcing the component's own instantiation first if it has not run yet.
// Missing children (unresolved component types) are skipped. This lives
// in instance rather than expr to avoid expr depending on instance.
func FromClassInstance(ci *ClassInstance, folder Folder, collector *diag.Collector) (expr.Value, bool) {
	if ci == nil {
		return nil, false
	}

	switch {
	case ci.Predefined != "":
		return fromPredefined(ci, folder)
	case ci.Enum != nil:
		return fromEnumeration(ci.Enum), true
	case ci.Array != nil:
		return fromArray(ci.Array, folder, collector)
	case ci.Short != nil:
		return FromClassInstance(ci.Short.Target, folder, collector)
	default:
		return fromRecord(ci, folder, collector)
	}
}

func fromPredefined(ci *ClassInstance, folder Folder) (expr.Value, bool) {
	if ci.Modification == nil || ci.Modification.Expr == nil || folder == nil {
		return nil, false
	}
	return folder.Fold(scopeOf(ci), ci.Modification.Expr)
}

func fromEnumeration(e *EnumerationClassInstance) expr.Value {
	label := e.SelectedLiteral()
	return expr.EnumerationValue{Ordinal: e.Selected + 1, Label: label}
}

func fromArray(a *ArrayClassInstance, folder Folder, collector *diag.Collector) (expr.Value, bool) {
	elements := make([]expr.Value, 0, len(a.Elements))
	for _, el := range a.Elements {
		v, ok := FromClassInstance(el, folder, collector)
		if !ok {
			continue
		}
		elements = append(elements, v)
	}
	return &expr.ArrayValue{Shape: a.Shape, Elements: elements}, true
}

func fromRecord(ci *ClassInstance, folder Folder, collector *diag.Collector) (expr.Value, bool) {
	rec := &expr.RecordValue{ClassName: ci.Name}
	for _, d := range ci.Declared {
		comp, ok := d.(ComponentElement)
		if !ok {
			continue
		}
		if comp.ClassInstance == nil {
			if err := comp.Instantiate(folder, collector); err != nil {
				continue
			}
		}
		if comp.ClassInstance == nil {
			continue
		}
		v, ok := FromClassInstance(comp.ClassInstance, folder, collector)
		if !ok {
			continue
		}
		rec.Fields = append(rec.Fields, expr.RecordField{Name: comp.Name, Value: v})
	}
	return rec, true
}

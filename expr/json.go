package expr

// ToJSON renders v into a plain Go value suitable for stable JSON encoding
// (spec §4.2): literals map to scalars, arrays fold back to nested lists
// using their shape, and records map to objects with an optional "@type"
// key. Unevaluated unary/binary values are not representable as data and
// render as nil; callers that need a guaranteed-scalar result should fold
// first.
func ToJSON(v Value) any {
	switch n := v.(type) {
	case BooleanValue:
		return bool(n)
	case IntegerValue:
		return int64(n)
	case RealValue:
		return float64(n)
	case StringValue:
		return string(n)
	case EnumerationValue:
		return n.Label
	case *ArrayValue:
		return arrayToJSON(n)
	case *RecordValue:
		return recordToJSON(n)
	default:
		return nil
	}
}

func arrayToJSON(a *ArrayValue) any {
	if len(a.Shape) <= 1 {
		out := make([]any, len(a.Elements))
		for i, el := range a.Elements {
			out[i] = ToJSON(el)
		}
		return out
	}
	// Multi-dimensional: fold the flat element list back into nested lists
	// using the shape, outermost dimension first.
	return nestJSON(a.Elements, a.Shape)
}

func nestJSON(flat []Value, shape []int) any {
	if len(shape) == 1 {
		out := make([]any, len(flat))
		for i, el := range flat {
			out[i] = ToJSON(el)
		}
		return out
	}
	outer := shape[0]
	inner := shape[1:]
	stride := 1
	for _, d := range inner {
		stride *= d
	}
	out := make([]any, outer)
	for i := 0; i < outer; i++ {
		lo := i * stride
		hi := lo + stride
		if hi > len(flat) {
			hi = len(flat)
		}
		out[i] = nestJSON(flat[lo:hi], inner)
	}
	return out
}

func recordToJSON(r *RecordValue) any {
	out := make(map[string]any, len(r.Fields)+1)
	if r.ClassName != "" {
		out["@type"] = r.ClassName
	}
	for _, f := range r.Fields {
		out[f.Name] = ToJSON(f.Value)
	}
	return out
}

// Split divides v into n per-element values for array-class construction
// from a literal modification (spec §4.2). Scalars yield n copies;
// binary/unary values split their operands componentwise; arrays whose flat
// length equals n return those elements directly.
func Split(v Value, n int) []Value {
	switch val := v.(type) {
	case *ArrayValue:
		if len(val.Elements) == n {
			out := make([]Value, n)
			copy(out, val.Elements)
			return out
		}
	case *UnaryValue:
		operands := Split(val.Operand, n)
		out := make([]Value, n)
		for i, o := range operands {
			out[i] = FoldUnary(val.Op, o)
		}
		return out
	case *BinaryValue:
		lefts := Split(val.Left, n)
		rights := Split(val.Right, n)
		out := make([]Value, n)
		for i := range out {
			out[i] = FoldBinary(val.Op, lefts[i], rights[i])
		}
		return out
	}
	out := make([]Value, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// SplitAt returns the i-th element of Split(v, n), matching the
// split(n, i) overload (spec §4.2) without materializing the full slice
// when a caller only needs one slot.
func SplitAt(v Value, n, i int) Value {
	return Split(v, n)[i]
}

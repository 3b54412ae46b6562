package modification

// Merge implements spec §4.3's merge(base, override): concatenate argument
// lists then deduplicate by name, prefer the override's expression when it
// declares one, merge the two annotations modifications the same way, and
// let override's description and scope win. A nil base or override is
// treated as an empty modification; Merge(nil, nil) is nil.
func Merge(base, override *Modification) *Modification {
	if base == nil && override == nil {
		return nil
	}
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := &Modification{Scope: override.Scope}
	result.Arguments = MergeModificationArguments(append(append([]Argument{}, base.Arguments...), override.Arguments...))

	result.Expr = base.Expr
	if override.Expr != nil {
		result.Expr = override.Expr
	}

	result.Annotations = Merge(base.Annotations, override.Annotations)

	result.Description = base.Description
	if override.Description != "" {
		result.Description = override.Description
	}
	return result
}

// MergeModificationArguments groups args by Name(), preserving the order in
// which each distinct name first appears. A single entry in a group passes
// through untouched. A group of all ElementModifications recursively merges
// each member's nested modification; any other group uses override-last-
// wins (spec §4.3). Exported separately from Merge because extends-instance
// construction (spec §4.4's "Merge order in extends") applies this grouping
// rule to a concatenated argument list directly, without Merge's
// expression/description/scope handling.
func MergeModificationArguments(args []Argument) []Argument {
	order := make([]string, 0, len(args))
	groups := make(map[string][]Argument, len(args))
	for _, a := range args {
		name := a.Name()
		if _, seen := groups[name]; !seen {
			order = append(order, name)
		}
		groups[name] = append(groups[name], a)
	}

	result := make([]Argument, 0, len(order))
	for _, name := range order {
		group := groups[name]
		switch {
		case len(group) == 1:
			result = append(result, group[0])
		case allElementModifications(group):
			result = append(result, mergeElementModificationGroup(group))
		default:
			result = append(result, group[len(group)-1])
		}
	}
	return result
}

func allElementModifications(group []Argument) bool {
	for _, a := range group {
		if _, ok := a.(*ElementModification); !ok {
			return false
		}
	}
	return true
}

// mergeElementModificationGroup folds a same-named run of
// ElementModifications left to right through Merge, so the final nested
// modification carries the last member's expression at any given head
// (Merge's override-wins-if-set rule) while accumulating every member's
// nested arguments. The group's Each/Final/Head come from the last member,
// matching override-last-wins for everything Merge does not itself combine.
//
// Description provenance for this group is not specified: this
// implementation lets the last member's description win, consistent with
// Merge's own override-wins policy, rather than the first member's (see
// DESIGN.md).
func mergeElementModificationGroup(group []Argument) Argument {
	ems := make([]*ElementModification, len(group))
	for i, a := range group {
		ems[i] = a.(*ElementModification)
	}

	merged := ems[0].Nested
	for _, em := range ems[1:] {
		merged = Merge(merged, em.Nested)
	}

	last := ems[len(ems)-1]
	return &ElementModification{Each: last.Each, Final: last.Final, Head: last.Head, Nested: merged}
}

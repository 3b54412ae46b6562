package library

import (
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/modc-lang/modc/ast"
	"github.com/modc-lang/modc/instance"
)

// Entity is a class instance whose definition is read from a file or
// directory (spec §3). An unstructured Entity is a single .mo file
// defining one or more classes; a structured Entity is a directory
// carrying an optional package.mo plus zero or more ordered sub-entities.
type Entity struct {
	Name       string
	Path       string
	Structured bool

	// Defs holds the root class-definition AST nodes this entity
	// contributes, in declaration order. For a structured entity this is
	// the (at most one) class declared by package.mo, after sub-entity
	// classes have been spliced into its element list.
	Defs []*ast.ClassDefinition

	// Classes is one ClassInstance per entry in Defs, built but not yet
	// instantiated: spec §2's data flow instantiates on demand.
	Classes []*instance.ClassInstance

	// SubEntities holds this entity's children in presentation order
	// (package.order, falling back to locale-collated name order).
	SubEntities []*Entity
}

// ClassByName returns the root class instance with the given name, or nil.
func (e *Entity) ClassByName(name string) *instance.ClassInstance {
	for _, ci := range e.Classes {
		if ci.Name == name {
			return ci
		}
	}
	return nil
}

// dirEntryName is the bare identifier package.order entries reference: a
// directory's own name, or a .mo file's base name without extension.
func dirEntryName(name string, isDir bool) string {
	if isDir {
		return name
	}
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// orderNames sorts names by position in order (the package.order manifest,
// one identifier per line), then appends the remainder in locale-collated
// order (spec §6's collate fallback for entries package.order omits).
func orderNames(names []string, order []string) []string {
	rank := make(map[string]int, len(order))
	for i, n := range order {
		rank[n] = i
	}

	var ranked, rest []string
	for _, n := range names {
		if _, ok := rank[n]; ok {
			ranked = append(ranked, n)
		} else {
			rest = append(rest, n)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return rank[ranked[i]] < rank[ranked[j]] })

	col := collate.New(language.Und)
	col.SortStrings(rest)

	return append(ranked, rest...)
}

func parseOrderFile(content []byte) []string {
	var order []string
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		order = append(order, line)
	}
	return order
}

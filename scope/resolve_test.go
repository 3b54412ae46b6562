package scope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modc-lang/modc/scope"
)

// fakeNode is a minimal scope.Node + scope.Element used to exercise name
// resolution without the instance package, avoiding a test-only import
// cycle (instance is the real implementation and depends on scope).
type fakeNode struct {
	name           string
	elements       []scope.Element
	qualified      map[string]*fakeNode
	unqualified    []*fakeNode
	parent         *fakeNode
	encapsulated   bool
}

func (n *fakeNode) ElementName() string { return n.name }
func (n *fakeNode) Elements() []scope.Element { return n.elements }
func (n *fakeNode) QualifiedImport(name string) (scope.Node, bool) {
	q, ok := n.qualified[name]
	if !ok {
		return nil, false
	}
	return q, true
}
func (n *fakeNode) UnqualifiedImports() []scope.Node {
	out := make([]scope.Node, len(n.unqualified))
	for i, u := range n.unqualified {
		out[i] = u
	}
	return out
}
func (n *fakeNode) Parent() (scope.Node, bool) {
	if n.parent == nil {
		return nil, false
	}
	return n.parent, true
}
func (n *fakeNode) Encapsulated() bool { return n.encapsulated }
func (n *fakeNode) Resolve(name string) (scope.Element, bool) {
	for _, el := range n.elements {
		if el.ElementName() == name {
			return el, true
		}
	}
	return nil, false
}

type fakeComponent string

func (f fakeComponent) ElementName() string { return string(f) }

func TestResolveSimpleName_LocalElementShadowsEverything(t *testing.T) {
	pkg := &fakeNode{name: "Pkg", elements: []scope.Element{fakeComponent("x")}}
	self := &fakeNode{
		name:      "Self",
		elements:  []scope.Element{fakeComponent("local")},
		qualified: map[string]*fakeNode{"local": pkg},
	}
	el, ok := scope.ResolveSimpleName(self, "local", false, false)
	require.True(t, ok)
	assert.Equal(t, fakeComponent("local"), el)
}

func TestResolveSimpleName_QualifiedImportBeforeUnqualified(t *testing.T) {
	qualifiedTarget := &fakeNode{name: "Q", elements: []scope.Element{fakeComponent("shared")}}
	unqualifiedTarget := &fakeNode{name: "U", elements: []scope.Element{fakeComponent("Q")}}
	self := &fakeNode{
		name:        "Self",
		qualified:   map[string]*fakeNode{"Q": qualifiedTarget},
		unqualified: []*fakeNode{unqualifiedTarget},
	}
	el, ok := scope.ResolveSimpleName(self, "Q", false, false)
	require.True(t, ok)
	assert.Equal(t, "Q", el.ElementName())
	assert.Same(t, qualifiedTarget, el)
}

func TestResolveSimpleName_UnqualifiedImportFallback(t *testing.T) {
	unq := &fakeNode{name: "U", elements: []scope.Element{fakeComponent("other")}}
	self := &fakeNode{name: "Self", unqualified: []*fakeNode{unq}}
	el, ok := scope.ResolveSimpleName(self, "other", false, false)
	require.True(t, ok)
	assert.Equal(t, fakeComponent("other"), el)
}

func TestResolveSimpleName_ClimbsToParentUnlessEncapsulated(t *testing.T) {
	parent := &fakeNode{name: "Parent", elements: []scope.Element{fakeComponent("fromParent")}}
	child := &fakeNode{name: "Child", parent: parent}
	_, ok := scope.ResolveSimpleName(child, "fromParent", false, false)
	assert.True(t, ok)

	encapsulatedChild := &fakeNode{name: "Child", parent: parent, encapsulated: true}
	_, ok = scope.ResolveSimpleName(encapsulatedChild, "fromParent", false, false)
	assert.False(t, ok)
}

func TestResolveSimpleName_PredefinedTypeFallback(t *testing.T) {
	self := &fakeNode{name: "Self"}
	el, ok := scope.ResolveSimpleName(self, "Real", false, false)
	require.True(t, ok)
	assert.Equal(t, scope.PredefinedElement("Real"), el)
}

func TestResolveSimpleName_GlobalStartsAtRoot(t *testing.T) {
	root := &fakeNode{name: "Root", elements: []scope.Element{fakeComponent("top")}}
	mid := &fakeNode{name: "Mid", parent: root}
	leaf := &fakeNode{name: "Leaf", parent: mid}
	_, ok := scope.ResolveSimpleName(leaf, "top", true, false)
	assert.True(t, ok)
}

func TestResolveName_DottedAccessDoesNotClimb(t *testing.T) {
	inner := &fakeNode{name: "Inner", elements: []scope.Element{fakeComponent("leaf")}}
	outerElements := []scope.Element{innerAsElement{inner}}
	outer := &fakeNode{name: "Outer", elements: outerElements}
	el, ok := scope.ResolveName(outer, scope.NamePath{"Inner", "leaf"}, false)
	require.True(t, ok)
	assert.Equal(t, fakeComponent("leaf"), el)

	inner.parent = outer
	outer.elements = append(outer.elements, fakeComponent("sibling"))
	_, ok = scope.ResolveName(outer, scope.NamePath{"Inner", "sibling"}, false)
	assert.False(t, ok)
}

// innerAsElement adapts a *fakeNode into an Element+Node pair so
// ResolveName's dotted-access step can navigate into it, mirroring how
// instance.ClassInstance satisfies both scope.Node and scope.Element.
type innerAsElement struct{ *fakeNode }

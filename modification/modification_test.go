package modification_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modc-lang/modc/ast"
	"github.com/modc-lang/modc/modification"
)

func TestFromAST_DottedElementModificationFlattens(t *testing.T) {
	cm := &ast.ClassModification{
		Arguments: []ast.ModificationArgument{
			&ast.ElementModification{
				Name: ast.DottedName{"f", "q"},
				Mod:  &ast.Modification{Expr: &ast.RealLit{Value: 2.0}},
			},
		},
	}
	m := modification.FromAST(nil, &ast.Modification{ClassMod: cm})
	require.Len(t, m.Arguments, 1)
	outer, ok := m.Arguments[0].(*modification.ElementModification)
	require.True(t, ok)
	assert.Equal(t, "f", outer.Head)
	require.Len(t, outer.Nested.Arguments, 1)
	inner, ok := outer.Nested.Arguments[0].(*modification.ElementModification)
	require.True(t, ok)
	assert.Equal(t, "q", inner.Head)
	require.NotNil(t, inner.Nested.Expr)
}

func elemMod(head string, expr ast.Expr) *modification.ElementModification {
	return &modification.ElementModification{Head: head, Nested: &modification.Modification{Expr: expr}}
}

func TestMerge_OverrideWinsExpression(t *testing.T) {
	base := &modification.Modification{Arguments: []modification.Argument{elemMod("j", &ast.RealLit{Value: 1.0})}}
	override := &modification.Modification{Arguments: []modification.Argument{elemMod("j", &ast.RealLit{Value: 2.0})}}

	merged := modification.Merge(base, override)
	require.Len(t, merged.Arguments, 1)
	em := merged.Arguments[0].(*modification.ElementModification)
	assert.Equal(t, "j", em.Head)
	lit, ok := em.Nested.Expr.(*ast.RealLit)
	require.True(t, ok)
	assert.Equal(t, 2.0, lit.Value)
}

func TestMerge_BaseOnlyArgumentSurvives(t *testing.T) {
	base := &modification.Modification{Arguments: []modification.Argument{elemMod("j", &ast.RealLit{Value: 1.0})}}
	override := &modification.Modification{Arguments: []modification.Argument{elemMod("k", &ast.RealLit{Value: 2.0})}}

	merged := modification.Merge(base, override)
	assert.Len(t, merged.Arguments, 2)
}

func TestMerge_DescriptionOverrideWins(t *testing.T) {
	base := &modification.Modification{Description: "base"}
	override := &modification.Modification{Description: "override"}
	assert.Equal(t, "override", modification.Merge(base, override).Description)

	baseOnly := &modification.Modification{Description: "base"}
	overrideEmpty := &modification.Modification{}
	assert.Equal(t, "base", modification.Merge(baseOnly, overrideEmpty).Description)
}

func TestMerge_NilHandling(t *testing.T) {
	assert.Nil(t, modification.Merge(nil, nil))
	one := &modification.Modification{Description: "x"}
	assert.Same(t, one, modification.Merge(nil, one))
	assert.Same(t, one, modification.Merge(one, nil))
}

func TestSplit_ProducesNPerElementModifications(t *testing.T) {
	m := &modification.Modification{
		Arguments: []modification.Argument{
			&modification.ParameterModification{ParamName: "start", Expr: &ast.ComponentRef{Parts: []ast.ComponentRefPart{{Name: "x"}}}},
		},
	}
	out := modification.Split(m, 3)
	require.Len(t, out, 3)
	for i, per := range out {
		pm := per.Arguments[0].(*modification.ParameterModification)
		idx, ok := pm.Expr.(*ast.IndexExpr)
		require.True(t, ok)
		lit := idx.Indices[0].(*ast.IntLit)
		assert.Equal(t, int64(i+1), lit.Value)
	}
}

func TestSplit_RedeclarationCopiedUnchanged(t *testing.T) {
	redecl := &modification.Redeclaration{RedeclName: "R"}
	m := &modification.Modification{Arguments: []modification.Argument{redecl}}
	out := modification.Split(m, 2)
	assert.Same(t, redecl, out[0].Arguments[0])
	assert.Same(t, redecl, out[1].Arguments[0])
}

func TestHash_StructurallyIdenticalModificationsMatch(t *testing.T) {
	a := &modification.Modification{Arguments: []modification.Argument{elemMod("j", &ast.RealLit{Value: 1.0})}}
	b := &modification.Modification{Arguments: []modification.Argument{elemMod("j", &ast.RealLit{Value: 1.0})}}
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestHash_DifferentExpressionsDiffer(t *testing.T) {
	a := &modification.Modification{Arguments: []modification.Argument{elemMod("j", &ast.RealLit{Value: 1.0})}}
	b := &modification.Modification{Arguments: []modification.Argument{elemMod("j", &ast.RealLit{Value: 2.0})}}
	assert.NotEqual(t, a.Hash(), b.Hash())
}

func TestHash_NilModificationIsStable(t *testing.T) {
	var a, b *modification.Modification
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestModification_FoldedMemo(t *testing.T) {
	m := &modification.Modification{}
	_, ok := m.Folded()
	assert.False(t, ok)
	m.SetFolded(42)
	v, ok := m.Folded()
	require.True(t, ok)
	assert.Equal(t, 42, v)
}

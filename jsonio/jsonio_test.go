package jsonio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modc-lang/modc/expr"
	"github.com/modc-lang/modc/flatten"
	"github.com/modc-lang/modc/jsonio"
)

func TestMarshalValue_Scalar(t *testing.T) {
	b, err := jsonio.MarshalValue(expr.RealValue(2.5))
	require.NoError(t, err)
	assert.JSONEq(t, "2.5", string(b))
}

func TestMarshalValue_Array(t *testing.T) {
	arr := &expr.ArrayValue{Shape: []int{3}, Elements: []expr.Value{
		expr.RealValue(1.0), expr.RealValue(2.0), expr.RealValue(3.0),
	}}
	b, err := jsonio.MarshalValue(arr)
	require.NoError(t, err)
	assert.JSONEq(t, "[1, 2, 3]", string(b))
}

func TestMarshalValue_Record(t *testing.T) {
	rec := &expr.RecordValue{
		ClassName: "Point",
		Fields: []expr.RecordField{
			{Name: "x", Value: expr.RealValue(1.0)},
			{Name: "y", Value: expr.RealValue(2.0)},
		},
	}
	b, err := jsonio.MarshalValue(rec)
	require.NoError(t, err)
	assert.JSONEq(t, `{"@type": "Point", "x": 1, "y": 2}`, string(b))
}

func TestMarshalDocument_UsesDocumentJSONTags(t *testing.T) {
	doc := &flatten.Document{
		ClassName:    "M",
		Declarations: []string{"parameter Real x = 1.0;"},
		Equations:    []string{"x = 1.0;"},
	}
	b, err := jsonio.MarshalDocument(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"className": "M",
		"declarations": ["parameter Real x = 1.0;"],
		"equations": ["x = 1.0;"]
	}`, string(b))
}

func TestReadSidecarConfig_PlainJSON(t *testing.T) {
	cfg, err := jsonio.ReadSidecarConfig(strings.NewReader(`{"libraryRoots": ["./lib"], "issueLimit": 50}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"./lib"}, cfg.LibraryRoots)
	assert.Equal(t, 50, cfg.IssueLimit)
}

func TestReadSidecarConfig_TolerantOfCommentsAndTrailingCommas(t *testing.T) {
	src := `{
		// default search roots
		"libraryRoots": ["./lib", "./vendor",],
		/* flattener defaults */
		"rootClass": "Main",
	}`
	cfg, err := jsonio.ReadSidecarConfig(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"./lib", "./vendor"}, cfg.LibraryRoots)
	assert.Equal(t, "Main", cfg.RootClass)
}

func TestReadSidecarConfig_MalformedJSONFails(t *testing.T) {
	_, err := jsonio.ReadSidecarConfig(strings.NewReader(`{"libraryRoots": [`))
	assert.Error(t, err)
}

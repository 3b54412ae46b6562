package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modc-lang/modc/ast"
	"github.com/modc-lang/modc/diag"
	"github.com/modc-lang/modc/instance"
	"github.com/modc-lang/modc/interp"
)

func TestRun_RequiresLibraryAndClass(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(nil, &stdout, &stderr)
	assert.Error(t, err)
}

func TestRun_NoParserConfiguredSurfacesFriendlyError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "M.mo"), []byte("model M end M;"), 0o600))

	var stdout, stderr bytes.Buffer
	err := run([]string{"-library", filepath.Join(dir, "M.mo"), "-class", "M"}, &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no parser")
}

func TestRun_SidecarConfigSuppliesLibraryAndClass(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "modc.jsonc")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{
		// picked up when -library/-class are not given on the command line
		"libraryRoots": ["`+filepath.Join(dir, "M.mo")+`"],
		"rootClass": "M",
	}`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "M.mo"), []byte("model M end M;"), 0o600))

	var stdout, stderr bytes.Buffer
	err := run([]string{"-config", cfgPath}, &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no parser")
}

func TestRun_MalformedSidecarConfigFails(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "modc.jsonc")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"libraryRoots": [`), 0o600))

	var stdout, stderr bytes.Buffer
	err := run([]string{"-config", cfgPath, "-library", "ignored", "-class", "M"}, &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestResolveClass_DottedPathDescendsNestedClasses(t *testing.T) {
	innerDef := &ast.ClassDefinition{
		Kind: ast.ClassKindModel,
		Long: &ast.LongClassSpecifier{
			Identifier:    "Inner",
			EndIdentifier: "Inner",
		},
	}
	outerDef := &ast.ClassDefinition{
		Kind: ast.ClassKindPackage,
		Long: &ast.LongClassSpecifier{
			Identifier:    "Outer",
			EndIdentifier: "Outer",
			Elements:      []ast.Element{ast.NestedClass{Def: innerDef}},
		},
	}
	outer := instance.NewClassInstance("Outer", outerDef, nil, nil)

	folder := interp.New(diag.NewCollectorUnlimited())
	byName := func(name string) *instance.ClassInstance {
		if name == "Outer" {
			return outer
		}
		return nil
	}

	got, err := resolveClass(folder, byName, "Outer.Inner")
	require.NoError(t, err)
	assert.Equal(t, "Inner", got.Name)
}

func TestResolveClass_UnknownRootFails(t *testing.T) {
	folder := interp.New(diag.NewCollectorUnlimited())
	_, err := resolveClass(folder, func(string) *instance.ClassInstance { return nil }, "Missing")
	assert.Error(t, err)
}

func TestResolveClass_UnknownMemberFails(t *testing.T) {
	def := &ast.ClassDefinition{
		Kind: ast.ClassKindModel,
		Long: &ast.LongClassSpecifier{Identifier: "M", EndIdentifier: "M"},
	}
	m := instance.NewClassInstance("M", def, nil, nil)
	folder := interp.New(diag.NewCollectorUnlimited())
	_, err := resolveClass(folder, func(string) *instance.ClassInstance { return m }, "M.Missing")
	assert.Error(t, err)
}

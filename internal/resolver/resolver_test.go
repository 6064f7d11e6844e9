package resolver_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ianzepp/faber/internal/config"
	"github.com/ianzepp/faber/internal/resolver"
)

func writeModule(t *testing.T, dir, name, source string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(source), 0644))
	return path
}

func TestClassifyPath(t *testing.T) {
	assert.Equal(t, resolver.KindLocal, resolver.ClassifyPath("./foo"))
	assert.Equal(t, resolver.KindLocal, resolver.ClassifyPath("../foo/bar"))
	assert.Equal(t, resolver.KindIntrinsic, resolver.ClassifyPath("norma"))
	assert.Equal(t, resolver.KindIntrinsic, resolver.ClassifyPath("norma/solum"))
	assert.Equal(t, resolver.KindExternal, resolver.ClassifyPath("alius-packagium"))
}

func TestLoadExtractsPublicExport(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "mathematica.fab", `
		@publica functio adde(a, b) -> numerus {
			redde a + b
		}
	`)

	cfg := config.Default(dir)
	ctx := resolver.NewContext(cfg, nil)
	mod := ctx.Load(filepath.Join(dir, "mathematica.fab"))

	require.Contains(t, mod.Exports, "adde")
	assert.Equal(t, resolver.ExportFunction, mod.Exports["adde"].Kind)
}

func TestLoadIsCachedAcrossImporters(t *testing.T) {
	dir := t.TempDir()
	shared := writeModule(t, dir, "shared.fab", `@publica fixum numerus x = 1`)
	writeModule(t, dir, "a.fab", `importa ex "./shared.fab" privata x`)
	writeModule(t, dir, "b.fab", `importa ex "./shared.fab" privata x`)

	cfg := config.Default(dir)
	ctx := resolver.NewContext(cfg, nil)

	ctx.Load(filepath.Join(dir, "a.fab"))
	first := ctx.Load(shared)
	ctx.Load(filepath.Join(dir, "b.fab"))
	second := ctx.Load(shared)

	assert.Same(t, first, second)
}

func TestLoadToleratesCycle(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "a.fab", `importa ex "./b.fab" privata y
@publica fixum numerus x = 1`)
	writeModule(t, dir, "b.fab", `importa ex "./a.fab" privata x
@publica fixum numerus y = 2`)

	cfg := config.Default(dir)
	ctx := resolver.NewContext(cfg, nil)

	modA := ctx.Load(filepath.Join(dir, "a.fab"))
	for _, e := range modA.Errors {
		assert.NotEqual(t, "S005", e.Code)
	}
}

func TestLoadMissingFileReportsError(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default(dir)
	ctx := resolver.NewContext(cfg, nil)

	mod := ctx.Load(filepath.Join(dir, "missing.fab"))
	require.Len(t, mod.Errors, 1)
	assert.Equal(t, "S004", mod.Errors[0].Code)
}

func TestLoadTypesIntrinsicImport(t *testing.T) {
	dir := t.TempDir()
	path := writeModule(t, dir, "usa.fab", `
		importa ex "norma/solum" privata Lege

		functio principale() {
			fixum textus contentum = Lege("hello.txt")
		}
	`)

	cfg := config.Default(dir)
	ctx := resolver.NewContext(cfg, nil)
	mod := ctx.Load(path)

	for _, e := range mod.Errors {
		assert.NotEqual(t, "S001", e.Code)
	}
}

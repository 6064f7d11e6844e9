package fsys_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ianzepp/faber/internal/fsys"
)

func TestReadTextAndExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.fab")
	require.NoError(t, os.WriteFile(path, []byte("varia numerus x = 1"), 0o644))

	assert.True(t, fsys.Exists(path))
	assert.False(t, fsys.Exists(filepath.Join(dir, "missing.fab")))

	text, err := fsys.ReadText(path)
	require.NoError(t, err)
	assert.Equal(t, "varia numerus x = 1", text)
}

func TestIsDir(t *testing.T) {
	dir := t.TempDir()
	assert.True(t, fsys.IsDir(dir))
	assert.False(t, fsys.IsDir(filepath.Join(dir, "nope")))
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.fab"), []byte(""), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.fab"), []byte(""), 0o644))

	names, err := fsys.List(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a.fab", "b.fab"}, names)
}

func TestJoinAndDir(t *testing.T) {
	assert.Equal(t, filepath.Join("a", "b.fab"), fsys.Join("a", "b.fab"))
	assert.Equal(t, "a", fsys.Dir(filepath.Join("a", "b.fab")))
}

func TestExtAndWithoutExt(t *testing.T) {
	assert.Equal(t, ".fab", fsys.Ext("module.fab"))
	assert.Equal(t, "module", fsys.WithoutExt("module.fab"))
	assert.Equal(t, "module", fsys.WithoutExt("module"))
}

func TestAbs(t *testing.T) {
	abs, err := fsys.Abs(".")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(abs))
}

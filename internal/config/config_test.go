package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ianzepp/faber/internal/config"
)

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	dir := t.TempDir()

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"."}, cfg.Roots)
	assert.Equal(t, "fsys", cfg.Intrinsics["solum"])
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	content := "roots = [\"src\", \"lib\"]\n\n[intrinsics]\nsolum = \"fsys\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileTOML), []byte(content), 0644))

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"src", "lib"}, cfg.Roots)
	pkg, ok := cfg.ResolveIntrinsic("consolum")
	assert.True(t, ok)
	assert.Equal(t, "console", pkg)
}

func TestLoadYAMLFallback(t *testing.T) {
	dir := t.TempDir()
	content := "roots:\n  - src\nintrinsics:\n  solum: fsys\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileYAML), []byte(content), 0644))

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"src"}, cfg.Roots)
}

func TestLoadTOMLTakesPrecedenceOverYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileTOML), []byte("roots = [\"from-toml\"]\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileYAML), []byte("roots:\n  - from-yaml\n"), 0644))

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"from-toml"}, cfg.Roots)
}

func TestLoadMalformedTOMLReportsError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileTOML), []byte("not = [valid"), 0644))

	_, err := config.Load(dir)
	assert.Error(t, err)
}

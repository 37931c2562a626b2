package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udsdoc/udsdoc/internal/config"
)

func testCLI(t *testing.T) (*CLI, string) {
	t.Helper()
	dir := t.TempDir()
	return &CLI{Config: filepath.Join(dir, "site.yaml")}, dir
}

func TestInitThenCheck(t *testing.T) {
	root, _ := testCLI(t)

	initCmd := &InitCmd{}
	require.NoError(t, initCmd.Run(&Global{}, root))

	// Re-running without --force must refuse to clobber the file.
	require.Error(t, initCmd.Run(&Global{}, root))
	require.NoError(t, (&InitCmd{Force: true}).Run(&Global{}, root))

	require.NoError(t, (&CheckCmd{}).Run(&Global{}, root))
}

func TestCheckWithoutConfigFileUsesDefaults(t *testing.T) {
	root, _ := testCLI(t)
	require.NoError(t, (&CheckCmd{}).Run(&Global{}, root))
}

func TestCheckRejectsInvalidConfig(t *testing.T) {
	root, _ := testCLI(t)
	content := "extensions:\n  - sphinx_needs\n  - sphinx_needs\n"
	require.NoError(t, os.WriteFile(root.Config, []byte(content), 0644))

	err := (&CheckCmd{}).Run(&Global{}, root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate extension")
}

func TestGenerateProducesBuilderConfig(t *testing.T) {
	root, dir := testCLI(t)
	docsDir := filepath.Join(dir, "docs")

	gen := &GenerateCmd{Docs: docsDir}
	require.NoError(t, gen.Run(&Global{}, root))

	data, err := os.ReadFile(filepath.Join(docsDir, "conf.py"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `project = "uds_protocol"`)
	assert.Contains(t, string(data), `html_theme = "pydata_sphinx_theme"`)

	_, err = os.Stat(filepath.Join(docsDir, "_templates"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(docsDir, "_static"))
	assert.NoError(t, err)
}

func TestGenerateHonorsConfigFile(t *testing.T) {
	root, dir := testCLI(t)
	content := "project: other_project\nhtml_theme: alabaster\n"
	require.NoError(t, os.WriteFile(root.Config, []byte(content), 0644))

	docsDir := filepath.Join(dir, "docs")
	require.NoError(t, (&GenerateCmd{Docs: docsDir}).Run(&Global{}, root))

	data, err := os.ReadFile(filepath.Join(docsDir, "conf.py"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `project = "other_project"`)
	assert.Contains(t, string(data), `html_theme = "alabaster"`)
}

func TestLoadConfigFreshRecordPerCall(t *testing.T) {
	root, _ := testCLI(t)
	require.NoError(t, config.Init(root.Config, false))

	a, err := loadConfig(root)
	require.NoError(t, err)
	b, err := loadConfig(root)
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.NotSame(t, a, b)
}

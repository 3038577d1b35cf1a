package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "renagex.yaml")
	content := `
full: true
padding: 4
ignore:
  - "**/*.bak"
  - ".git/**"
continue_on_error: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	fc, err := Load(context.Background(), path)
	require.NoError(t, err)

	require.NotNil(t, fc.Full)
	assert.True(t, *fc.Full)
	assert.Nil(t, fc.Recursive)
	require.NotNil(t, fc.Padding)
	assert.Equal(t, 4, *fc.Padding)
	assert.Equal(t, []string{"**/*.bak", ".git/**"}, fc.Ignore)
	require.NotNil(t, fc.ContinueOnError)
	assert.True(t, *fc.ContinueOnError)
}

func TestLoad_HCL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "renagex.hcl")
	content := `
recursive = true
padding   = 2
ignore    = ["*.tmp"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	fc, err := Load(context.Background(), path)
	require.NoError(t, err)

	require.NotNil(t, fc.Recursive)
	assert.True(t, *fc.Recursive)
	require.NotNil(t, fc.Padding)
	assert.Equal(t, 2, *fc.Padding)
	assert.Equal(t, []string{"*.tmp"}, fc.Ignore)
	assert.Nil(t, fc.Full)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("full: [not a bool"), 0o644))

	_, err := Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestLoad_UnknownExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

	_, err := Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no parser found")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestGetParser(t *testing.T) {
	assert.IsType(t, &YAMLParser{}, GetParser("a.yaml"))
	assert.IsType(t, &YAMLParser{}, GetParser("a.yml"))
	assert.IsType(t, &HCLParser{}, GetParser("a.hcl"))
	assert.Nil(t, GetParser("a.json"))
}

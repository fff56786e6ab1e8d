package obslog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDisabledDiscardsLogs(t *testing.T) {
	require.NoError(t, Init(Options{Enabled: false}))
	Info("should not appear anywhere")
}

func TestInitWritesUnderBaseDirLog(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(Options{Enabled: true, BaseDir: dir, Name: "my-node"}))
	t.Cleanup(func() { Init(Options{Enabled: false}) })

	Info("hello", "k", "v")

	data, err := os.ReadFile(filepath.Join(dir, "log", "my-node.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
	assert.Contains(t, string(data), `"node":"my-node"`)
}

func TestInitDefaultsNameWhenEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(Options{Enabled: true, BaseDir: dir}))
	t.Cleanup(func() { Init(Options{Enabled: false}) })

	_, err := os.Stat(filepath.Join(dir, "log", "node.log"))
	require.NoError(t, err)
}

func TestComponentLoggerCarriesFields(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(Options{Enabled: true, BaseDir: dir, Name: "n"}))
	t.Cleanup(func() { Init(Options{Enabled: false}) })

	Component("archive", "archive").Info("spawned")

	data, err := os.ReadFile(filepath.Join(dir, "log", "n.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"component_type":"archive"`)
	assert.Contains(t, string(data), `"component_label":"archive"`)
}

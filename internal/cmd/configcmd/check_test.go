package configcmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/mdpub/internal/config"
)

func TestRunCheck_Valid(t *testing.T) {
	clearEnv(t)

	var buf bytes.Buffer
	require.NoError(t, runCheck(filepath.Join(t.TempDir(), "missing.yml"), true, &buf))
	assert.Contains(t, buf.String(), "✓ Configuration is valid")
}

func TestRunCheck_InvalidEngine(t *testing.T) {
	clearEnv(t)
	configPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, (&config.Config{Engine: "pandoc"}).Save(configPath))

	var buf bytes.Buffer
	err := runCheck(configPath, true, &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
	assert.Contains(t, buf.String(), "✗ Invalid configuration")
}

func TestRunCheck_EnvOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("MDPUB_EXTENSION", "html")

	var buf bytes.Buffer
	err := runCheck(filepath.Join(t.TempDir(), "missing.yml"), true, &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "extension must start with a dot")
}

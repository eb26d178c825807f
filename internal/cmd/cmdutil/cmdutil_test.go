package cmdutil

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/mdpub/internal/config"
)

func newFlagCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("config", "", "")
	cmd.Flags().String("output", "", "")
	cmd.Flags().Bool("no-color", false, "")
	cmd.Flags().Bool("verbose", false, "")
	return cmd
}

func TestGlobals(t *testing.T) {
	cmd := newFlagCmd()
	require.NoError(t, cmd.Flags().Parse([]string{"--config", "/tmp/c.yml", "--output", "json", "--verbose"}))

	g := Globals(cmd)
	assert.Equal(t, "/tmp/c.yml", g.ConfigPath)
	assert.Equal(t, "json", g.Output)
	assert.True(t, g.Verbose)
	assert.False(t, g.NoColor)
}

func TestResolvedConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	assert.Equal(t, "/explicit.yml", GlobalOptions{ConfigPath: "/explicit.yml"}.ResolvedConfigPath())
	assert.Equal(t, filepath.Join("/xdg", "mdpub", "config.yml"), GlobalOptions{}.ResolvedConfigPath())
}

func TestLoadConfig_OutputFallback(t *testing.T) {
	for _, v := range config.EnvVars {
		t.Setenv(v, "")
	}
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, (&config.Config{OutputFormat: "plain"}).Save(path))

	g := &GlobalOptions{ConfigPath: path}
	cfg, err := g.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "md", cfg.SourceDir)
	assert.Equal(t, "plain", g.Output)

	g = &GlobalOptions{ConfigPath: path, Output: "json"}
	_, err = g.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "json", g.Output)
}

func TestRenderer_InvalidFormat(t *testing.T) {
	_, err := GlobalOptions{Output: "xml"}.Renderer(&bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

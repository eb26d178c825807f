// Package cmdutil holds helpers shared by mdpub commands.
package cmdutil

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/mdpub/internal/config"
	"github.com/open-cli-collective/mdpub/internal/view"
)

// GlobalOptions are the persistent flags defined on the root command.
type GlobalOptions struct {
	ConfigPath string
	Output     string
	NoColor    bool
	Verbose    bool
}

// Globals reads the persistent flags from cmd.
func Globals(cmd *cobra.Command) GlobalOptions {
	var g GlobalOptions
	g.ConfigPath, _ = cmd.Flags().GetString("config")
	g.Output, _ = cmd.Flags().GetString("output")
	g.NoColor, _ = cmd.Flags().GetBool("no-color")
	g.Verbose, _ = cmd.Flags().GetBool("verbose")
	return g
}

// ResolvedConfigPath returns the explicit config path or the default one.
func (g GlobalOptions) ResolvedConfigPath() string {
	if g.ConfigPath != "" {
		return g.ConfigPath
	}
	return config.DefaultConfigPath()
}

// LoadConfig loads the configuration with environment overrides applied.
// The configured output format is used when --output was not given.
func (g *GlobalOptions) LoadConfig() (*config.Config, error) {
	cfg, err := config.LoadWithEnv(g.ResolvedConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if g.Output == "" {
		g.Output = cfg.OutputFormat
	}
	return cfg, nil
}

// Renderer creates a view renderer writing to w.
func (g GlobalOptions) Renderer(w io.Writer) (*view.Renderer, error) {
	if err := view.ValidateFormat(g.Output); err != nil {
		return nil, err
	}
	r := view.NewRenderer(view.Format(g.Output), g.NoColor)
	r.SetWriter(w)
	return r, nil
}

// Logger creates the diagnostic logger. It writes to stderr at info level,
// or debug level when verbose is set.
func (g GlobalOptions) Logger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "mdpub",
	})
	if g.Verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

package configcmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/mdpub/internal/cmd/cmdutil"
	"github.com/open-cli-collective/mdpub/internal/config"
)

// NewCmdShow creates the config show command.
func NewCmdShow() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  `Display the effective mdpub configuration and where each value comes from.`,
		Example: `  # Show current config
  mdpub config show`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := cmdutil.Globals(cmd)
			return runShow(g.ResolvedConfigPath(), g.NoColor, cmd.OutOrStdout())
		},
	}

	return cmd
}

func runShow(configPath string, noColor bool, w io.Writer) error {
	if noColor {
		color.NoColor = true
	}

	// Load file config (may not exist)
	fileCfg, fileErr := config.Load(configPath)
	if fileErr != nil {
		fileCfg = &config.Config{}
	}

	cfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	printField := func(label, value, fileValue, envVar string) {
		_, _ = bold.Fprintf(w, "%-14s", label+":")
		_, _ = fmt.Fprint(w, value)

		source := "default"
		switch {
		case os.Getenv(envVar) != "" && value == os.Getenv(envVar):
			source = envVar
		case fileErr == nil && fileValue == value:
			source = "config"
		}

		_, _ = dim.Fprintf(w, "  (source: %s)\n", source)
	}

	printField("Source dir", cfg.SourceDir, fileCfg.SourceDir, "MDPUB_SOURCE_DIR")
	printField("Output dir", cfg.OutputDir, fileCfg.OutputDir, "MDPUB_OUTPUT_DIR")
	printField("Extension", cfg.Extension, fileCfg.Extension, "MDPUB_EXTENSION")
	printField("Engine", cfg.Engine, fileCfg.Engine, "MDPUB_ENGINE")
	printField("Skip assets", strconv.FormatBool(cfg.SkipAssets), strconv.FormatBool(fileCfg.SkipAssets), "MDPUB_SKIP_ASSETS")

	_, _ = fmt.Fprintln(w)
	_, _ = dim.Fprintf(w, "Config file: %s\n", configPath)
	if fileErr != nil {
		_, _ = dim.Fprintln(w, "(file not found)")
	}

	return nil
}

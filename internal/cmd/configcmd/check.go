package configcmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/mdpub/internal/cmd/cmdutil"
	"github.com/open-cli-collective/mdpub/internal/config"
)

// NewCmdCheck creates the config check command.
func NewCmdCheck() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the current configuration",
		Long:  `Load the configuration with environment overrides and report any invalid values.`,
		Example: `  # Check config
  mdpub config check`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := cmdutil.Globals(cmd)
			return runCheck(g.ResolvedConfigPath(), g.NoColor, cmd.OutOrStdout())
		},
	}

	return cmd
}

func runCheck(configPath string, noColor bool, w io.Writer) error {
	if noColor {
		color.NoColor = true
	}

	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	cfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		_, _ = red.Fprintln(w, "✗ Could not load configuration:", err)
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		_, _ = red.Fprintln(w, "✗ Invalid configuration:", err)
		_, _ = fmt.Fprintln(w, "\nReview it with: mdpub config show")
		_, _ = fmt.Fprintln(w, "Reconfigure with: mdpub init")
		return fmt.Errorf("invalid config: %w", err)
	}

	_, _ = green.Fprintln(w, "✓ Configuration is valid")
	return nil
}

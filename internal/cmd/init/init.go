// Package init provides the init command for mdpub.
package init

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/mdpub/internal/cmd/cmdutil"
	"github.com/open-cli-collective/mdpub/internal/config"
	"github.com/open-cli-collective/mdpub/pkg/md"
)

type initOptions struct {
	sourceDir string
	outputDir string
	engine    string
	defaults  bool
	force     bool
}

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize mdpub configuration",
		Long: `Initialize mdpub by choosing where markdown is read from and where
HTML is written. The configuration will be saved to ~/.config/mdpub/config.yml.`,
		Example: `  # Interactive setup
  mdpub init

  # Write the defaults without prompting
  mdpub init --defaults

  # Pre-populate the output directory
  mdpub init --output-dir site`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := cmdutil.Globals(cmd)
			return runInit(g.ResolvedConfigPath(), opts, cmd.OutOrStdout(), promptConfig)
		},
	}

	cmd.Flags().StringVar(&opts.sourceDir, "source-dir", "", "Name of the markdown directory")
	cmd.Flags().StringVar(&opts.outputDir, "output-dir", "", "Output directory next to the markdown directory")
	cmd.Flags().StringVar(&opts.engine, "engine", "", "Conversion engine: line, goldmark")
	cmd.Flags().BoolVar(&opts.defaults, "defaults", false, "Skip the prompts and use flag values or defaults")
	cmd.Flags().BoolVar(&opts.force, "force", false, "Overwrite an existing configuration without asking")

	return cmd
}

// prompter fills cfg interactively. It reports false if the user declined
// to overwrite an existing file.
type prompter func(cfg *config.Config, configPath string, exists bool) (bool, error)

func runInit(configPath string, opts *initOptions, w io.Writer, prompt prompter) error {
	_, statErr := os.Stat(configPath)
	exists := statErr == nil

	cfg := &config.Config{
		SourceDir: opts.sourceDir,
		OutputDir: opts.outputDir,
		Engine:    opts.engine,
	}
	cfg.ApplyDefaults()

	if !opts.defaults {
		proceed, err := prompt(cfg, configPath, exists && !opts.force)
		if err != nil {
			return err
		}
		if !proceed {
			_, _ = fmt.Fprintln(w, "Initialization cancelled.")
			return nil
		}
	} else if exists && !opts.force {
		return fmt.Errorf("configuration already exists at %s (use --force to overwrite)", configPath)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Save(configPath); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(w, "\nConfiguration saved to %s\n", configPath)
	_, _ = fmt.Fprintln(w, "\nYou're all set! Try running:")
	_, _ = fmt.Fprintln(w, "  mdpub build")

	return nil
}

func promptConfig(cfg *config.Config, configPath string, exists bool) (bool, error) {
	if exists {
		var overwrite bool
		err := huh.NewConfirm().
			Title("Configuration already exists").
			Description(fmt.Sprintf("Overwrite %s?", configPath)).
			Value(&overwrite).
			Run()
		if err != nil {
			return false, err
		}
		if !overwrite {
			return false, nil
		}
	}

	copyAssets := !cfg.SkipAssets
	engineOptions := make([]huh.Option[string], 0, len(md.Engines))
	for _, e := range md.Engines {
		engineOptions = append(engineOptions, huh.NewOption(string(e), string(e)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Markdown directory").
				Description("Searched for in the working directory and its parents").
				Placeholder(config.DefaultSourceDir).
				Value(&cfg.SourceDir).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("markdown directory is required")
					}
					return nil
				}),

			huh.NewInput().
				Title("Output directory").
				Description("Created next to the markdown directory").
				Placeholder(config.DefaultOutputDir).
				Value(&cfg.OutputDir).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("output directory is required")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Title("Engine").
				Description("line: fast line-by-line parser; goldmark: CommonMark").
				Options(engineOptions...).
				Value(&cfg.Engine),

			huh.NewConfirm().
				Title("Copy non-markdown files?").
				Affirmative("Yes").
				Negative("No").
				Value(&copyAssets),
		),
	)

	if err := form.Run(); err != nil {
		return false, err
	}
	cfg.SkipAssets = !copyAssets
	return true, nil
}

// Package build provides the build command, which publishes a markdown tree.
package build

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/mdpub/internal/cmd/cmdutil"
	"github.com/open-cli-collective/mdpub/internal/site"
	"github.com/open-cli-collective/mdpub/pkg/md"
)

type buildOptions struct {
	dir           string
	sourceDir     string
	outputDir     string
	engine        string
	extension     string
	skipAssets    bool
	skipAssetsSet bool // --no-copy given explicitly
	global        cmdutil.GlobalOptions
}

// NewCmdBuild creates the build command.
func NewCmdBuild() *cobra.Command {
	opts := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Convert a markdown tree to HTML",
		Long: `Find the markdown directory and publish it as HTML.

The source directory ("md" by default) is searched for in the working
directory and then in each parent directory. Every .md file beneath it is
converted to HTML and written to a mirrored tree under the output directory
("public" by default), which sits next to the source directory. Other files
are copied unless --no-copy is given.`,
		Example: `  # Publish ./md (or the nearest md directory above) to ./public/md
  mdpub build

  # Use the CommonMark engine and a different output directory
  mdpub build --engine goldmark --out site`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.global = cmdutil.Globals(cmd)
			opts.skipAssetsSet = cmd.Flags().Changed("no-copy")
			return runBuild(cmd.Context(), opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.dir, "dir", "C", "", "Directory to start searching from (default: working directory)")
	cmd.Flags().StringVar(&opts.sourceDir, "source-dir", "", "Name of the markdown directory to look for")
	cmd.Flags().StringVar(&opts.outputDir, "out", "", "Output directory, relative to the source directory's parent")
	cmd.Flags().StringVar(&opts.engine, "engine", "", "Conversion engine: line, goldmark")
	cmd.Flags().StringVar(&opts.extension, "ext", "", "Extension for converted files (e.g., .html)")
	cmd.Flags().BoolVar(&opts.skipAssets, "no-copy", false, "Do not copy non-markdown files")

	return cmd
}

func runBuild(ctx context.Context, opts *buildOptions, w io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := opts.global.LoadConfig()
	if err != nil {
		return err
	}

	// Flags override the configuration
	if opts.sourceDir != "" {
		cfg.SourceDir = opts.sourceDir
	}
	if opts.outputDir != "" {
		cfg.OutputDir = opts.outputDir
	}
	if opts.engine != "" {
		cfg.Engine = opts.engine
	}
	if opts.extension != "" {
		cfg.Extension = opts.extension
	}
	if opts.skipAssetsSet {
		cfg.SkipAssets = opts.skipAssets
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	renderer, err := opts.global.Renderer(w)
	if err != nil {
		return err
	}

	start := opts.dir
	if start == "" {
		if start, err = os.Getwd(); err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
	}

	sourceDir, err := site.FindSourceDir(start, cfg.SourceDir)
	if err != nil {
		return err
	}

	outputDir := cfg.OutputDir
	if !filepath.IsAbs(outputDir) {
		outputDir = filepath.Join(filepath.Dir(sourceDir), outputDir)
	}

	engine, err := md.ParseEngine(cfg.Engine)
	if err != nil {
		return err
	}

	logger := opts.global.Logger()
	logger.Debug("building", "source", sourceDir, "output", outputDir, "engine", engine)

	builder := site.NewBuilder(site.Options{
		SourceDir:  sourceDir,
		OutputDir:  outputDir,
		Extension:  cfg.Extension,
		Engine:     engine,
		SkipAssets: cfg.SkipAssets,
		Logger:     logger,
	})

	report, err := builder.Build(ctx)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	return renderReport(renderer, report)
}

// Package convert provides the convert command for single documents.
package convert

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/mdpub/internal/cmd/cmdutil"
	"github.com/open-cli-collective/mdpub/pkg/md"
)

type convertOptions struct {
	engine string
	body   bool
	global cmdutil.GlobalOptions
}

// NewCmdConvert creates the convert command.
func NewCmdConvert() *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert <file|->",
		Short: "Convert one markdown file to HTML",
		Long: `Convert a single markdown file and print the HTML document to stdout.
Use "-" to read from standard input.`,
		Example: `  # Convert a file
  mdpub convert notes.md > notes.html

  # Convert from stdin, body only
  echo "# Title" | mdpub convert - --body`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.global = cmdutil.Globals(cmd)
			return runConvert(args[0], opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.engine, "engine", "", "Conversion engine: line, goldmark")
	cmd.Flags().BoolVar(&opts.body, "body", false, "Print only the document body, without the html envelope")

	return cmd
}

func runConvert(path string, opts *convertOptions, stdin io.Reader, w io.Writer) error {
	cfg, err := opts.global.LoadConfig()
	if err != nil {
		return err
	}
	if opts.engine != "" {
		cfg.Engine = opts.engine
	}

	engine, err := md.ParseEngine(cfg.Engine)
	if err != nil {
		return err
	}

	data, err := readInput(path, stdin)
	if err != nil {
		return err
	}

	convert := md.Convert
	if opts.body {
		convert = md.ConvertBody
	}

	out, err := convert(md.SplitLines(string(data)), engine)
	if err != nil {
		return fmt.Errorf("failed to convert %s: %w", path, err)
	}

	_, err = io.WriteString(w, md.JoinLines(out))
	return err
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

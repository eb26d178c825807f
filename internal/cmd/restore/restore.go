// Package restore provides the restore command, which turns HTML back into
// markdown.
package restore

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/mdpub/pkg/md"
)

// NewCmdRestore creates the restore command.
func NewCmdRestore() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore <file|->",
		Short: "Convert an HTML file back to markdown",
		Long: `Convert a published HTML file back to markdown and print it to stdout.
Use "-" to read from standard input. The result is CommonMark and may differ
from the original source in formatting.`,
		Example: `  # Recover a page whose source was lost
  mdpub restore public/md/index.html > index.md`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRestore(args[0], cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	return cmd
}

func runRestore(path string, stdin io.Reader, w io.Writer) error {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	markdown, err := md.ToMarkdown(string(data))
	if err != nil {
		return fmt.Errorf("failed to convert %s: %w", path, err)
	}

	_, err = fmt.Fprintln(w, markdown)
	return err
}

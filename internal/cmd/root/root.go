// Package root provides the root command for the mdpub CLI.
package root

import (
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/mdpub/internal/cmd/build"
	"github.com/open-cli-collective/mdpub/internal/cmd/completion"
	"github.com/open-cli-collective/mdpub/internal/cmd/configcmd"
	"github.com/open-cli-collective/mdpub/internal/cmd/convert"
	initcmd "github.com/open-cli-collective/mdpub/internal/cmd/init"
	"github.com/open-cli-collective/mdpub/internal/cmd/restore"
	"github.com/open-cli-collective/mdpub/internal/version"
)

// NewCmdRoot creates the root command for mdpub.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mdpub",
		Short: "Publish a directory of markdown notes as HTML",
		Long: `mdpub converts markdown notes to static HTML pages.

It finds the nearest "md" directory at or above the working directory and
writes a mirrored tree of HTML files to a sibling "public" directory.

Get started by running: mdpub build`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}

	// Global flags
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ~/.config/mdpub/config.yml)")
	cmd.PersistentFlags().StringP("output", "o", "", "output format: table, json, plain")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	cmd.SetVersionTemplate(version.String() + "\n")

	// Subcommands
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(build.NewCmdBuild())
	cmd.AddCommand(convert.NewCmdConvert())
	cmd.AddCommand(restore.NewCmdRestore())
	cmd.AddCommand(configcmd.NewCmdConfig())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}

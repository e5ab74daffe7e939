package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/colorrs/colorrs/internal/config"
)

// version is set at build time via -ldflags.
var version = "dev"

// options holds the persistent flags shared by every subcommand.
type options struct {
	dir     string
	verbose bool
}

// patternDir resolves the pattern directory once per command run.
func (o *options) patternDir() (string, error) {
	return config.ResolvePatternDir(o.dir)
}

// NewRootCmd creates the top-level `colorrs` command.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "colorrs",
		Short: "colorrs — install and manage colorful terminal patterns",
		Long: `colorrs keeps a directory of patterns: TOML templates with color
placeholders, or executable colorscripts. Patterns can be installed from a
local directory or downloaded from a git repository that has a patterns/ or
colorscripts/ directory at its root.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
	}

	root.PersistentFlags().StringVarP(&opts.dir, "dir", "d", "",
		fmt.Sprintf("Pattern directory (default: $%s, settings.toml, or the user config dir)", config.DirEnvVar))
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log each step and show clone progress")
	_ = root.MarkPersistentFlagDirname("dir")

	root.AddCommand(newDownloadCmd(opts))
	root.AddCommand(newInstallCmd(opts))
	root.AddCommand(newListCmd(opts))
	root.AddCommand(newRemoveCmd(opts))

	return root
}

// Execute runs the root command.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

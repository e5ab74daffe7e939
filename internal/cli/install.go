package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/colorrs/colorrs/internal/installer"
)

// newInstallCmd creates the `install` command.
// Usage: colorrs install <directory>
func newInstallCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "install <directory>",
		Short: "Install patterns from a local directory",
		Long: `Installs the files of a local directory. If the directory contains a
patterns/ or colorscripts/ subdirectory, that one is installed instead.`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveFilterDirs
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := opts.patternDir()
			if err != nil {
				return err
			}
			inst := installer.New(nil, installer.OSFileSystem{}, dir)
			return runInstallWith(inst, args[0], cmd.OutOrStdout())
		},
	}
}

// runInstallWith is the testable core of the install command.
func runInstallWith(inst *installer.Installer, srcDir string, w io.Writer) error {
	fmt.Fprintf(w, "📂 Installing from %s...\n", srcDir)

	out, err := inst.InstallFromDirectory(srcDir)
	if err != nil {
		return fmt.Errorf("installing from %s: %w", srcDir, err)
	}

	printOutcome(w, out, inst.Destination())
	return nil
}

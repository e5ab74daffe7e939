package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/colorrs/colorrs/internal/pattern"
)

// newRemoveCmd creates the `remove` command.
// Usage: colorrs remove <name>
func newRemoveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Delete an installed pattern",
		Long: `Deletes every installed file whose name without extension is <name>.

Example:
  colorrs remove waves`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			dir, err := opts.patternDir()
			if err != nil {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return resolveInstalledNames(dir, toComplete)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := opts.patternDir()
			if err != nil {
				return err
			}
			return runRemoveWith(dir, args[0], cmd.OutOrStdout())
		},
	}
}

// runRemoveWith is the testable core of the remove command.
func runRemoveWith(dir, name string, w io.Writer) error {
	removed, err := pattern.Remove(dir, name)
	if err != nil {
		return err
	}

	for _, path := range removed {
		fmt.Fprintf(w, "🧹 Deleted %s\n", filepath.Base(path))
	}
	fmt.Fprintf(w, "🗑️  Removed pattern %s\n", name)
	return nil
}

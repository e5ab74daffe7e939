package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/colorrs/colorrs/internal/pattern"
)

// newListCmd creates the `list` command.
// Usage: colorrs list [--check]
func newListCmd(opts *options) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List installed patterns",
		Long: `Lists every installed pattern by name, with its extension in brackets.

With --check, TOML patterns are parsed and the command exits with a non-zero
code if any of them is invalid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := opts.patternDir()
			if err != nil {
				return err
			}
			return runListWith(dir, check, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Validate TOML patterns and fail if any is invalid")

	return cmd
}

// runListWith is the testable core of the list command.
func runListWith(dir string, check bool, w io.Writer) error {
	entries, err := pattern.List(dir)
	if err != nil {
		return fmt.Errorf("pattern directory %s: %w", dir, err)
	}

	if len(entries) == 0 {
		fmt.Fprintf(w, "📋 No patterns installed in %s.\n", dir)
		return nil
	}

	var invalid int
	for _, e := range entries {
		if !check || !e.IsTOML() {
			fmt.Fprintln(w, e)
			continue
		}
		if _, err := pattern.Decode(e.Path); err != nil {
			fmt.Fprintf(w, "%s  ❌ %s\n", e, err)
			invalid++
			continue
		}
		fmt.Fprintln(w, e)
	}

	if invalid > 0 {
		return fmt.Errorf("found %d invalid pattern(s) in %s", invalid, dir)
	}
	return nil
}

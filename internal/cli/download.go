package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/colorrs/colorrs/internal/installer"
	"github.com/colorrs/colorrs/internal/source"
)

// newDownloadCmd creates the `download` command.
// Usage: colorrs download <owner/name|url>
func newDownloadCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "download <owner/name|url>",
		Short: "Install patterns from a git repository",
		Long: `Clones a git repository and installs every file from its patterns/
directory, or from colorscripts/ when there is no patterns/ directory.
Patterns whose name is already installed, with any extension, are skipped.

Examples:
  colorrs download someone/patterns
  colorrs download https://gitlab.com/someone/colorscripts.git`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return resolveGitHubCompletions(toComplete)
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := opts.patternDir()
			if err != nil {
				return err
			}

			var fetchOpts []source.Option
			if opts.verbose {
				fetchOpts = append(fetchOpts, source.WithProgress(cmd.ErrOrStderr()))
			}
			inst := installer.New(source.NewFetcher(fetchOpts...), installer.OSFileSystem{}, dir)

			return runDownloadWith(cmd.Context(), inst, args[0], cmd.OutOrStdout())
		},
	}
}

// runDownloadWith is the testable core of the download command.
func runDownloadWith(ctx context.Context, inst *installer.Installer, reference string, w io.Writer) error {
	fmt.Fprintf(w, "🔄 Fetching %s...\n", reference)

	out, err := inst.InstallFromRepository(ctx, reference)
	if err != nil {
		return fmt.Errorf("downloading %s: %w", reference, err)
	}

	printOutcome(w, out, inst.Destination())
	return nil
}

// printOutcome reports one line per file, then the installed count.
func printOutcome(w io.Writer, out installer.Outcome, dest string) {
	fmt.Fprintln(w)
	for _, name := range out.Installed {
		fmt.Fprintf(w, "  ✅ %s\n", name)
	}
	for _, d := range out.Skipped {
		if d.Conflict == d.Name {
			fmt.Fprintf(w, "  ⏭️  %s — already installed\n", d.Name)
		} else {
			fmt.Fprintf(w, "  ⏭️  %s — already installed as %s\n", d.Name, d.Conflict)
		}
	}
	for _, f := range out.Failed {
		fmt.Fprintf(w, "  ❌ %s: %s\n", f.Name, f.Err)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "📦 Installed %d pattern(s) into %s\n", out.Count(), dest)
	if len(out.Failed) > 0 {
		fmt.Fprintf(w, "⚠️  %d file(s) could not be copied.\n", len(out.Failed))
	}
}

package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/colorrs/colorrs/internal/pattern"
)

// formatCompletionLine joins a value and its description the way cobra
// expects for shells that show descriptions.
func formatCompletionLine(value, description string) string {
	return value + "\t" + description
}

func resolveInstalledNames(dir, toComplete string) ([]string, cobra.ShellCompDirective) {
	entries, err := pattern.List(dir)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	seen := make(map[string]bool)
	var completions []string
	for _, e := range entries {
		if seen[e.Name] || !strings.HasPrefix(e.Name, toComplete) {
			continue
		}
		seen[e.Name] = true
		desc := "Colorscript"
		if e.IsTOML() {
			desc = "TOML pattern"
		}
		completions = append(completions, formatCompletionLine(e.Name, desc))
	}

	return completions, cobra.ShellCompDirectiveNoFileComp
}

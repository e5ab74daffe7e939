package cli

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/colorrs/colorrs/internal/auth"
)

// githubAPIBase is a variable so tests can point completion at a local server.
var githubAPIBase = "https://api.github.com"

// resolveGitHubCompletions suggests owner/name references from GitHub search.
// Full URLs are left to the shell.
func resolveGitHubCompletions(toComplete string) ([]string, cobra.ShellCompDirective) {
	if strings.HasPrefix(toComplete, "http://") || strings.HasPrefix(toComplete, "https://") {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	// Use a short timeout to prevent blocking the shell
	return completeRepos(auth.NewAPIClient(time.Second), githubAPIBase, toComplete)
}

func completeRepos(client *http.Client, apiBase, toComplete string) ([]string, cobra.ShellCompDirective) {
	if toComplete == "" {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	// "org/re" searches org's repositories by name, "org" searches everything
	query := toComplete
	if owner, prefix, ok := strings.Cut(toComplete, "/"); ok {
		query = fmt.Sprintf("user:%s %s in:name", owner, prefix)
	}

	searchURL := fmt.Sprintf("%s/search/repositories?q=%s&per_page=10", apiBase, url.QueryEscape(query))
	resp, err := client.Get(searchURL)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var result struct {
		Items []struct {
			FullName    string `json:"full_name"`
			Description string `json:"description"`
		} `json:"items"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var completions []string
	for _, item := range result.Items {
		if !strings.HasPrefix(item.FullName, toComplete) {
			continue
		}
		desc := item.Description
		if desc == "" {
			desc = "Repository"
		}
		completions = append(completions, formatCompletionLine(item.FullName, truncateDescription(desc, 60)))
	}

	return completions, cobra.ShellCompDirectiveNoFileComp
}

// truncateDescription shortens desc to at most limit runes, ending in "...".
func truncateDescription(desc string, limit int) string {
	runes := []rune(desc)
	if len(runes) <= limit {
		return desc
	}
	return string(runes[:limit-3]) + "..."
}

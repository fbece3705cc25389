package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/jacksmith/shoplist/internal/model"
	"github.com/jacksmith/shoplist/internal/ops"
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for shop.

To load completions:

Bash:
  $ source <(shop completion bash)

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc
  $ shop completion zsh > "${fpath[1]}/_shop"

Fish:
  $ shop completion fish | source
`,
}

var completionBashCmd = &cobra.Command{
	Use:   "bash",
	Short: "Generate bash completion script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenBashCompletion(os.Stdout)
	},
}

var completionZshCmd = &cobra.Command{
	Use:   "zsh",
	Short: "Generate zsh completion script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenZshCompletion(os.Stdout)
	},
}

var completionFishCmd = &cobra.Command{
	Use:   "fish",
	Short: "Generate fish completion script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenFishCompletion(os.Stdout, true)
	},
}

func init() {
	completionCmd.AddCommand(completionBashCmd)
	completionCmd.AddCommand(completionZshCmd)
	completionCmd.AddCommand(completionFishCmd)
	rootCmd.AddCommand(completionCmd)
}

// completeCategories completes configured category names.
func completeCategories(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	categories := model.DefaultCategories()
	if s, err := openStorage(); err == nil {
		if cfg, err := s.LoadConfig(); err == nil {
			categories = cfg.Categories
		}
	}

	var completions []string
	toCompleteLower := strings.ToLower(toComplete)
	for _, c := range categories {
		if strings.HasPrefix(strings.ToLower(string(c)), toCompleteLower) {
			completions = append(completions, string(c))
		}
	}

	return completions, cobra.ShellCompDirectiveNoFileComp
}

// completePositions completes item positions, described by item name.
func completePositions(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	s, err := openStorage()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	store := ops.NewListStore(s, ops.StoreOptions{})
	if _, err := store.Load(); err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var completions []string
	for i, item := range store.Items() {
		pos := strconv.Itoa(i + 1)
		if strings.HasPrefix(pos, toComplete) {
			completions = append(completions, pos+"\t"+truncate(item.DisplayName(), 40))
		}
	}

	return completions, cobra.ShellCompDirectiveNoFileComp
}

// completeAddArgs completes the category, the third positional argument of add.
func completeAddArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 2 {
		return completeCategories(cmd, args, toComplete)
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}

// truncate shortens a string to the given length, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find <query>",
	Short: "Search items by name",
	Long: `Search for items whose name contains the query.

The search is case-insensitive. Results keep their list positions so they
can be passed to edit or remove.`,
	Args: cobra.ExactArgs(1),
	RunE: runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	query := args[0]

	sess, err := openSession()
	if err != nil {
		return err
	}

	matches := sess.store.Find(query)
	if len(matches) == 0 {
		fmt.Printf("No results found for %q\n", query)
		return nil
	}

	renderMatches(matches)
	return nil
}

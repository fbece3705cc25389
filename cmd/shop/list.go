package main

import (
	"fmt"

	"github.com/jacksmith/shoplist/internal/cli"
	"github.com/jacksmith/shoplist/internal/ops"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List items",
	Long: `List items in display order with their positions.

Use --category to show only one category (prefixes are accepted).`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var listCategory string

func init() {
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "show only this category")
	listCmd.RegisterFlagCompletionFunc("category", completeCategories)
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}

	if sess.store.Len() == 0 {
		fmt.Println("Shopping list is empty.")
		return nil
	}

	if listCategory != "" {
		c, err := cli.MatchCategory(listCategory, sess.store.Categories())
		if err != nil {
			return err
		}
		matches := sess.store.FilterCategory(c)
		if len(matches) == 0 {
			fmt.Printf("No items in %s.\n", c)
			return nil
		}
		renderMatches(matches)
		return nil
	}

	renderItems(sess.store.Items())
	fmt.Println(cli.Gray(summary(sess.store)))
	return nil
}

// summary returns e.g. "3 items, 9 total".
func summary(store *ops.ListStore) string {
	noun := "items"
	if store.Len() == 1 {
		noun = "item"
	}
	return fmt.Sprintf("%d %s, %d total", store.Len(), noun, store.TotalQuantity())
}

package main

import (
	"github.com/jacksmith/shoplist/internal/cli"
	"github.com/jacksmith/shoplist/internal/ops"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <name> <quantity> [category]",
	Short: "Add an item",
	Long: `Add an item to the end of the shopping list.

The quantity must be a whole number greater than zero. The category may be
given as the third argument or with --category, and may be abbreviated to
any unique prefix of a configured category.

Examples:
  shop add Milk 2 Dairy
  shop add "Paper towels" 1 house
  shop add Apples 6 -c produce`,
	Args:              cobra.RangeArgs(2, 3),
	RunE:              runAdd,
	ValidArgsFunction: completeAddArgs,
}

var addCategory string

func init() {
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "item category")
	addCmd.RegisterFlagCompletionFunc("category", completeCategories)
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}

	category := addCategory
	if len(args) == 3 {
		category = args[2]
	}
	matched, err := cli.MatchCategory(category, sess.store.Categories())
	if err != nil {
		return err
	}

	res, err := sess.store.Add(ops.ItemInput{
		Name:     args[0],
		Quantity: args[1],
		Category: string(matched),
	})
	if err != nil {
		return err
	}

	sess.report(res)
	return nil
}

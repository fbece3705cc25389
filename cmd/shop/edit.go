package main

import (
	"fmt"
	"strconv"

	"github.com/jacksmith/shoplist/internal/cli"
	"github.com/jacksmith/shoplist/internal/ops"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <position>",
	Short: "Edit an item",
	Long: `Edit the item at a position shown by 'shop list'.

Fields that are not given keep their current values. The item stays at the
same position. Use -i to edit all fields in $EDITOR.

Examples:
  shop edit 2 --quantity=3
  shop edit 2 --name="Oat milk" --category=dairy
  shop edit 2 -i`,
	Args:              cobra.ExactArgs(1),
	RunE:              runEdit,
	ValidArgsFunction: completePositions,
}

var (
	editName        string
	editQuantity    string
	editCategory    string
	editInteractive bool
)

func init() {
	editCmd.Flags().StringVar(&editName, "name", "", "set item name")
	editCmd.Flags().StringVarP(&editQuantity, "quantity", "q", "", "set item quantity")
	editCmd.Flags().StringVarP(&editCategory, "category", "c", "", "set item category")
	editCmd.Flags().BoolVarP(&editInteractive, "interactive", "i", false, "edit in $EDITOR")

	editCmd.RegisterFlagCompletionFunc("category", completeCategories)

	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	pos, err := parsePosition(args[0])
	if err != nil {
		return err
	}

	sess, err := openSession()
	if err != nil {
		return err
	}

	current, err := sess.store.Get(pos)
	if err != nil {
		return &ops.SelectionError{Action: "edit", Position: pos, Len: sess.store.Len()}
	}

	var in ops.ItemInput
	if editInteractive {
		in, err = cli.EditItem(current)
		if err != nil {
			return err
		}
	} else {
		in = ops.ItemInput{
			Name:     current.Name,
			Quantity: strconv.Itoa(current.Quantity),
			Category: string(current.Category),
		}
		hasChanges := false

		if cmd.Flags().Changed("name") {
			in.Name = editName
			hasChanges = true
		}
		if cmd.Flags().Changed("quantity") {
			in.Quantity = editQuantity
			hasChanges = true
		}
		if cmd.Flags().Changed("category") {
			in.Category = editCategory
			hasChanges = true
		}

		if !hasChanges {
			return fmt.Errorf("no changes specified")
		}
	}

	matched, err := cli.MatchCategory(in.Category, sess.store.Categories())
	if err != nil {
		return err
	}
	in.Category = string(matched)

	res, err := sess.store.Edit(pos, in)
	if err != nil {
		return err
	}

	sess.report(res)
	return nil
}

package main

import (
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "remove <position>",
	Aliases: []string{"rm"},
	Short:   "Remove an item",
	Long: `Remove the item at a position shown by 'shop list'.

Items after it move up one position.

Examples:
  shop remove 3
  shop rm 1`,
	Args:              cobra.ExactArgs(1),
	RunE:              runRemove,
	ValidArgsFunction: completePositions,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	pos, err := parsePosition(args[0])
	if err != nil {
		return err
	}

	sess, err := openSession()
	if err != nil {
		return err
	}

	res, err := sess.store.Remove(pos)
	if err != nil {
		return err
	}

	sess.report(res)
	return nil
}

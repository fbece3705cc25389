package main

import (
	"fmt"

	"github.com/jacksmith/shoplist/internal/cli"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:               "show <position>",
	Short:             "Show item details",
	Args:              cobra.ExactArgs(1),
	RunE:              runShow,
	ValidArgsFunction: completePositions,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	pos, err := parsePosition(args[0])
	if err != nil {
		return err
	}

	sess, err := openSession()
	if err != nil {
		return err
	}

	item, err := sess.store.Get(pos)
	if err != nil {
		return err
	}

	fmt.Printf("Position:  %d of %d\n", pos, sess.store.Len())
	fmt.Printf("Name:      %s\n", item.DisplayName())
	fmt.Printf("Quantity:  %d\n", item.Quantity)
	fmt.Printf("Category:  %s\n", cli.Cyan(string(item.Category)))
	return nil
}

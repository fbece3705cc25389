package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Export the list as plain text",
	Long: `Export the list as plain text grouped by category, for printing or
sharing. Categories appear in the order they first occur in the list.

This is a one-way export; it cannot be re-imported.`,
	Args: cobra.NoArgs,
	RunE: runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}

	fmt.Println("# Shopping list")
	fmt.Printf("# %s\n", summary(sess.store))

	for _, g := range sess.store.ByCategory() {
		fmt.Println()
		fmt.Printf("## %s\n", g.Category)
		for _, m := range g.Items {
			fmt.Printf("- [ ] %s (%d)\n", m.Item.DisplayName(), m.Item.Quantity)
		}
	}

	return nil
}

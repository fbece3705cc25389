package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jacksmith/shoplist/internal/cli"
	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the configured categories",
	Long: `List the categories items may use, with the number of items in each.

The set comes from the categories key in .shoplist.yaml, or the built-in
defaults when it is not set.`,
	Args: cobra.NoArgs,
	RunE: runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}

	table := cli.NewTable()
	table.SetAlignRight(1)
	for _, c := range sess.store.Categories() {
		count := len(sess.store.FilterCategory(c))
		countStr := strconv.Itoa(count)
		if count == 0 {
			countStr = cli.Gray(countStr)
		}
		table.AddRow(cli.Cyan(string(c)), countStr)
	}
	table.Render(os.Stdout)

	if issues := sess.store.Check(); len(issues) > 0 {
		fmt.Println(cli.Yellow(fmt.Sprintf("%d issue(s) in the list; run 'shop validate'", len(issues))))
	}
	return nil
}

package main

import (
	"fmt"

	"github.com/jacksmith/shoplist/internal/cli"
	"github.com/jacksmith/shoplist/internal/ops"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check data integrity",
	Long: `Check the list file for items that break the list rules.

Loading never rejects items, so a hand-edited file can contain:
- Empty names
- Quantities that are zero or negative
- Empty categories
- Categories that are not configured

Fix reported items with 'shop edit' or 'shop remove'.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}

	issues := sess.store.Check()
	if len(issues) == 0 {
		fmt.Println(cli.Green("No issues found."))
		return nil
	}

	fmt.Printf("Found %d issue(s):\n\n", len(issues))
	for _, issue := range issues {
		fmt.Printf("#%d %s: %s\n", issue.Position, formatIssueType(issue.Type), issue.Message)
	}

	return fmt.Errorf("list has %d issue(s)", len(issues))
}

func formatIssueType(t ops.IssueType) string {
	switch t {
	case ops.IssueEmptyName:
		return cli.Red("[name]")
	case ops.IssueBadQuantity:
		return cli.Red("[quantity]")
	case ops.IssueEmptyCategory:
		return cli.Red("[category]")
	case ops.IssueUnknownCategory:
		return cli.Yellow("[unknown-category]")
	default:
		return fmt.Sprintf("[%s]", t)
	}
}

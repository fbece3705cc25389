// Package main is the entry point for the shop CLI.
package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/shoplist/internal/cli"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shop",
	Short: "shop - a shopping list kept in a local JSON file",
	Long: `shop keeps a shopping list of items, each with a name, a quantity, and
a category. The list is stored as JSON in shopping_list_data.json and is
rewritten after every change.

Items are addressed by their position as shown by 'shop list'.`,
	Version:       Version,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			cli.SetColorEnabled(false)
		}
	},
	// Show help when no subcommand is provided
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var (
	rootDir  string
	dataFile string
	noColor  bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "C", ".", "directory holding .shoplist.yaml and the list file")
	rootCmd.PersistentFlags().StringVarP(&dataFile, "file", "f", "", "use this list file instead of the configured one")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("shop version {{.Version}}\n")
}

package main

import (
	"fmt"

	"github.com/jacksmith/shoplist/internal/storage"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an empty shopping list",
	Long: `Create an empty list file in the target directory.

Other commands also work without init; the list file is created on the
first change. Fails if the list file already exists.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	var (
		s   *storage.Storage
		err error
	)
	if dataFile != "" {
		s = storage.New(dataFile)
		if s.Exists() {
			return fmt.Errorf("%s already exists", s.Path())
		}
		err = s.SaveList(nil)
	} else {
		s, err = storage.Init(rootDir)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Created empty shopping list in %s\n", s.Path())
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/apply-agent/internal/styles"
)

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List the available document styles",
	RunE:  runStyles,
}

var stylesDirFlag string

func init() {
	stylesCmd.Flags().StringVar(&stylesDirFlag, "styles-dir", "", "Directory holding document styles (default: built-in styles)")

	rootCmd.AddCommand(stylesCmd)
}

func runStyles(_ *cobra.Command, _ []string) error {
	manager, err := styles.NewManager(stylesDirFlag)
	if err != nil {
		return err
	}

	list, err := manager.List()
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Println("No styles found.")
		return nil
	}

	for _, choice := range styles.FormatChoices(list) {
		fmt.Println(choice)
	}
	return nil
}

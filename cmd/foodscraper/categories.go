package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"foodscraper/pkg/categories"
)

// categoriesCmd lists the built-in food categories
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the built-in food categories",
	Run: func(cmd *cobra.Command, args []string) {
		for i, name := range categories.All() {
			fmt.Printf("  %2d) %s\n", i+1, name)
		}
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

package mealtrack

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "mealtrack",
	Short: "mealtrack tracks meals, macros, and food spend from your terminal",
	Long:  "mealtrack is a local-first nutrition and budget tracker with computed calorie/macro targets, meal-slot budgets, training-mode adjustments, and daily progress.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
}

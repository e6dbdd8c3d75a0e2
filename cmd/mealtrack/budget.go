package mealtrack

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chiawen/mealtrack/internal/model"
	"github.com/chiawen/mealtrack/internal/service"
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Manage the daily food budget and its meal-slot split",
}

var budgetTotal float64

var budgetSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set the daily total (auto mode redistributes slots 20/35/35/10)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(sqldb *sql.DB, userID string) error {
			b, err := service.SetBudgetTotal(sqldb, userID, budgetTotal)
			if err != nil {
				return err
			}
			return printBudget(cmd, sqldb, b)
		})
	},
}

var (
	budgetSlotName   string
	budgetSlotAmount float64
)

var budgetSlotCmd = &cobra.Command{
	Use:   "slot",
	Short: "Set one slot amount (custom mode derives the total as the sum)",
	RunE: func(cmd *cobra.Command, args []string) error {
		slot, err := parseMealSlot(budgetSlotName)
		if err != nil {
			return err
		}
		return withUser(func(sqldb *sql.DB, userID string) error {
			b, err := service.SetBudgetSlot(sqldb, userID, slot, budgetSlotAmount)
			if err != nil {
				return err
			}
			return printBudget(cmd, sqldb, b)
		})
	},
}

var budgetModeCustom bool

var budgetModeCmd = &cobra.Command{
	Use:   "mode",
	Short: "Switch budget edit direction without changing values",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(sqldb *sql.DB, userID string) error {
			b, err := service.SetBudgetMode(sqldb, userID, budgetModeCustom)
			if err != nil {
				return err
			}
			return printBudget(cmd, sqldb, b)
		})
	},
}

var budgetShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the daily budget breakdown",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(sqldb *sql.DB, userID string) error {
			b, err := service.GetBudget(sqldb, userID)
			if err != nil {
				return err
			}
			return printBudget(cmd, sqldb, b)
		})
	},
}

func printBudget(cmd *cobra.Command, sqldb *sql.DB, b *model.Budget) error {
	currency, err := service.Currency(sqldb)
	if err != nil {
		return err
	}
	mode := "auto"
	if b.Custom {
		mode = "custom"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Daily total: %s%.0f (%s mode)\n", currency, b.DailyTotal, mode)
	fmt.Fprintf(cmd.OutOrStdout(), "Breakfast: %s%.0f\nLunch: %s%.0f\nDinner: %s%.0f\nSnack: %s%.0f\n",
		currency, b.Breakdown.Breakfast, currency, b.Breakdown.Lunch, currency, b.Breakdown.Dinner, currency, b.Breakdown.Snack)
	return nil
}

func init() {
	rootCmd.AddCommand(budgetCmd)
	budgetCmd.AddCommand(budgetSetCmd, budgetSlotCmd, budgetModeCmd, budgetShowCmd)

	budgetSetCmd.Flags().Float64Var(&budgetTotal, "total", 0, "Daily budget total")
	_ = budgetSetCmd.MarkFlagRequired("total")

	budgetSlotCmd.Flags().StringVar(&budgetSlotName, "slot", "", "Meal slot (breakfast, lunch, dinner, snack)")
	budgetSlotCmd.Flags().Float64Var(&budgetSlotAmount, "amount", 0, "Slot amount")
	_ = budgetSlotCmd.MarkFlagRequired("slot")
	_ = budgetSlotCmd.MarkFlagRequired("amount")

	budgetModeCmd.Flags().BoolVar(&budgetModeCustom, "custom", false, "Custom mode: slots are authoritative (default auto)")
}

package mealtrack

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chiawen/mealtrack/internal/model"
	"github.com/chiawen/mealtrack/internal/service"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Record and manage food logs",
}

var (
	logName     string
	logCalories int
	logProtein  float64
	logCarbs    float64
	logFat      float64
	logPrice    float64
	logSlot     string
	logDate     string
	logTime     string
)

var logAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a food entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		slot, err := parseMealSlot(logSlot)
		if err != nil {
			return err
		}
		loggedAt, err := parseDateTimeOrNow(logDate, logTime)
		if err != nil {
			return err
		}
		return withUser(func(sqldb *sql.DB, userID string) error {
			id, stats, err := service.CreateFoodLog(sqldb, service.CreateFoodLogInput{
				UserID:   userID,
				Name:     logName,
				Calories: logCalories,
				ProteinG: logProtein,
				CarbsG:   logCarbs,
				FatG:     logFat,
				Price:    logPrice,
				Slot:     slot,
				LoggedAt: loggedAt,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged entry %d\n", id)
			printDayStats(cmd, stats)
			return nil
		})
	},
}

var estimateJSON string

var logEstimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Log an entry from a nutrition-estimator JSON payload",
	RunE: func(cmd *cobra.Command, args []string) error {
		var est model.FoodEstimate
		if err := json.Unmarshal([]byte(estimateJSON), &est); err != nil {
			return fmt.Errorf("parse estimate JSON: %w", err)
		}
		slot, err := parseMealSlot(logSlot)
		if err != nil {
			return err
		}
		loggedAt, err := parseDateTimeOrNow(logDate, logTime)
		if err != nil {
			return err
		}
		return withUser(func(sqldb *sql.DB, userID string) error {
			id, stats, err := service.LogEstimate(sqldb, userID, est, slot, loggedAt)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged estimate %q as entry %d\n", est.FoodName, id)
			printDayStats(cmd, stats)
			return nil
		})
	},
}

var (
	listDate  string
	listSlot  string
	listLimit int
)

var logListCmd = &cobra.Command{
	Use:   "list",
	Short: "List food logs",
	RunE: func(cmd *cobra.Command, args []string) error {
		var slot model.MealSlot
		if listSlot != "" {
			parsed, err := parseMealSlot(listSlot)
			if err != nil {
				return err
			}
			slot = parsed
		}
		return withUser(func(sqldb *sql.DB, userID string) error {
			entries, err := service.ListFoodLogs(sqldb, service.FoodLogFilter{
				UserID: userID,
				Date:   listDate,
				Slot:   slot,
				Limit:  listLimit,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tTIME\tSLOT\tNAME\tKCAL\tP\tC\tF\tPRICE")
			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\t%d\t%.1f\t%.1f\t%.1f\t%.0f\n",
					e.ID, e.LoggedAt.Local().Format("2006-01-02 15:04"), e.Slot, e.Name, e.Calories, e.ProteinG, e.CarbsG, e.FatG, e.Price)
			}
			return nil
		})
	},
}

var logUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a food log entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("entry id", args[0])
		if err != nil {
			return err
		}
		slot, err := parseMealSlot(logSlot)
		if err != nil {
			return err
		}
		loggedAt, err := parseDateTimeOrNow(logDate, logTime)
		if err != nil {
			return err
		}
		return withUser(func(sqldb *sql.DB, userID string) error {
			stats, err := service.UpdateFoodLog(sqldb, service.UpdateFoodLogInput{
				ID:       id,
				UserID:   userID,
				Name:     logName,
				Calories: logCalories,
				ProteinG: logProtein,
				CarbsG:   logCarbs,
				FatG:     logFat,
				Price:    logPrice,
				Slot:     slot,
				LoggedAt: loggedAt,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated entry %d\n", id)
			printDayStats(cmd, stats)
			return nil
		})
	},
}

var logDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a food log entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("entry id", args[0])
		if err != nil {
			return err
		}
		return withUser(func(sqldb *sql.DB, userID string) error {
			stats, err := service.DeleteFoodLog(sqldb, userID, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted entry %d\n", id)
			printDayStats(cmd, stats)
			return nil
		})
	},
}

func printDayStats(cmd *cobra.Command, stats model.DailyStats) {
	fmt.Fprintf(cmd.OutOrStdout(), "Day so far: %d kcal | P %.1fg | C %.1fg | F %.1fg | spent %.0f\n",
		stats.Calories, stats.ProteinG, stats.CarbsG, stats.FatG, stats.SpentBudget)
}

func addEntryFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&logName, "name", "", "Food name")
	cmd.Flags().IntVar(&logCalories, "calories", 0, "Calories")
	cmd.Flags().Float64Var(&logProtein, "protein", 0, "Protein grams")
	cmd.Flags().Float64Var(&logCarbs, "carbs", 0, "Carb grams")
	cmd.Flags().Float64Var(&logFat, "fat", 0, "Fat grams")
	cmd.Flags().Float64Var(&logPrice, "price", 0, "Price paid")
	cmd.Flags().StringVar(&logSlot, "slot", "", "Meal slot (breakfast, lunch, dinner, snack)")
	cmd.Flags().StringVar(&logDate, "date", "", "Date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&logTime, "time", "", "Time HH:MM")
	_ = cmd.MarkFlagRequired("slot")
}

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.AddCommand(logAddCmd, logEstimateCmd, logListCmd, logUpdateCmd, logDeleteCmd)

	addEntryFlags(logAddCmd)
	_ = logAddCmd.MarkFlagRequired("name")
	_ = logAddCmd.MarkFlagRequired("calories")

	addEntryFlags(logUpdateCmd)
	_ = logUpdateCmd.MarkFlagRequired("name")
	_ = logUpdateCmd.MarkFlagRequired("calories")
	_ = logUpdateCmd.MarkFlagRequired("date")

	logEstimateCmd.Flags().StringVar(&estimateJSON, "json", "", "FoodEstimate JSON payload")
	logEstimateCmd.Flags().StringVar(&logSlot, "slot", "", "Meal slot (breakfast, lunch, dinner, snack)")
	logEstimateCmd.Flags().StringVar(&logDate, "date", "", "Date YYYY-MM-DD (default today)")
	logEstimateCmd.Flags().StringVar(&logTime, "time", "", "Time HH:MM")
	_ = logEstimateCmd.MarkFlagRequired("json")
	_ = logEstimateCmd.MarkFlagRequired("slot")

	logListCmd.Flags().StringVar(&listDate, "date", "", "Filter by date YYYY-MM-DD")
	logListCmd.Flags().StringVar(&listSlot, "slot", "", "Filter by meal slot")
	logListCmd.Flags().IntVar(&listLimit, "limit", 50, "Max entries to list")
}

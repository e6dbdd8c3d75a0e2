package mealtrack

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/chiawen/mealtrack/internal/service"
)

var todayDate string

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's consumption against targets and budget",
	RunE: func(cmd *cobra.Command, args []string) error {
		target := time.Now()
		if todayDate != "" {
			parsed, err := time.ParseInLocation("2006-01-02", todayDate, time.Local)
			if err != nil {
				return fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", todayDate)
			}
			target = parsed
		}
		return withUser(func(sqldb *sql.DB, userID string) error {
			progress, err := service.DayProgressFor(sqldb, userID, target)
			if err != nil {
				return err
			}
			currency, err := service.Currency(sqldb)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Date: %s (mode %s)\n", progress.Date, progress.TrainingMode)
			fmt.Fprintf(out, "Consumed: %d kcal | P %.1fg | C %.1fg | F %.1fg | spent %s%.0f\n",
				progress.Stats.Calories, progress.Stats.ProteinG, progress.Stats.CarbsG, progress.Stats.FatG, currency, progress.Stats.SpentBudget)
			fmt.Fprintf(out, "Targets: %d kcal | P %dg | C %dg | F %dg | budget %s%.0f\n",
				progress.Targets.Calories, progress.Targets.ProteinG, progress.Targets.CarbsG, progress.Targets.FatG, currency, progress.Budget.DailyTotal)
			fmt.Fprintf(out, "Remaining: %d kcal | P %.1fg | C %.1fg | F %.1fg | %s%.0f\n",
				progress.RemainingCalories, progress.RemainingProteinG, progress.RemainingCarbsG, progress.RemainingFatG, currency, progress.RemainingBudget)
			for _, w := range progress.Warnings {
				fmt.Fprintf(out, "Warning: %s\n", w)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().StringVar(&todayDate, "date", "", "Date YYYY-MM-DD (default today)")
}

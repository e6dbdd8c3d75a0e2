package mealtrack

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chiawen/mealtrack/internal/service"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "Show or recompute cached daily calorie/macro targets",
}

var targetsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the cached daily targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(sqldb *sql.DB, userID string) error {
			t, err := service.GetTargets(sqldb, userID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Calories: %d kcal\nProtein: %dg\nCarbs: %dg\nFat: %dg\n",
				t.Calories, t.ProteinG, t.CarbsG, t.FatG)
			return nil
		})
	},
}

var targetsRecomputeCmd = &cobra.Command{
	Use:   "recompute",
	Short: "Recompute targets from the profile and training mode",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(sqldb *sql.DB, userID string) error {
			p, err := service.GetProfile(sqldb, userID)
			if err != nil {
				return err
			}
			targets, err := service.SaveProfile(sqldb, *p)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recomputed: %d kcal | P %dg | C %dg | F %dg\n",
				targets.Calories, targets.ProteinG, targets.CarbsG, targets.FatG)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(targetsCmd)
	targetsCmd.AddCommand(targetsShowCmd, targetsRecomputeCmd)
}

package mealtrack

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chiawen/mealtrack/internal/model"
	"github.com/chiawen/mealtrack/internal/service"
)

var modeCmd = &cobra.Command{
	Use:   "mode",
	Short: "Declare today's training mode",
}

var modeSetCmd = &cobra.Command{
	Use:   "set <rest|push_pull|leg>",
	Short: "Set the training mode and recompute targets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := model.TrainingMode(strings.TrimSpace(strings.ToLower(args[0])))
		return withUser(func(sqldb *sql.DB, userID string) error {
			targets, err := service.SetTrainingMode(sqldb, userID, mode)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Mode %s. Targets: %d kcal | P %dg | C %dg | F %dg\n",
				mode, targets.Calories, targets.ProteinG, targets.CarbsG, targets.FatG)
			return nil
		})
	},
}

var modeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current training mode",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(sqldb *sql.DB, userID string) error {
			p, err := service.GetProfile(sqldb, userID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Training mode: %s\n", p.TrainingMode)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(modeCmd)
	modeCmd.AddCommand(modeSetCmd, modeShowCmd)
}

package mealtrack

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chiawen/mealtrack/internal/model"
	"github.com/chiawen/mealtrack/internal/service"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the anthropometric profile behind target computation",
}

var (
	profileHeight   float64
	profileWeight   float64
	profileAge      int
	profileSex      string
	profileActivity float64
	profileGoal     string
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update the profile and recompute daily targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(sqldb *sql.DB, userID string) error {
			current, err := service.GetProfile(sqldb, userID)
			if err != nil {
				return err
			}
			next := *current
			if cmd.Flags().Changed("height") {
				next.HeightCm = profileHeight
			}
			if cmd.Flags().Changed("weight") {
				next.WeightKg = profileWeight
			}
			if cmd.Flags().Changed("age") {
				next.AgeYears = profileAge
			}
			if cmd.Flags().Changed("sex") {
				next.Sex = model.Sex(profileSex)
			}
			if cmd.Flags().Changed("activity") {
				next.ActivityFactor = profileActivity
			}
			if cmd.Flags().Changed("goal") {
				next.GoalType = model.GoalType(profileGoal)
			}

			targets, err := service.SaveProfile(sqldb, next)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Profile saved. Targets: %d kcal | P %dg | C %dg | F %dg\n",
				targets.Calories, targets.ProteinG, targets.CarbsG, targets.FatG)
			return nil
		})
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(sqldb *sql.DB, userID string) error {
			p, err := service.GetProfile(sqldb, userID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Height: %.1f cm\nWeight: %.1f kg\nAge: %d\nSex: %s\nActivity factor: %.2f\nGoal: %s\nTraining mode: %s\n",
				p.HeightCm, p.WeightKg, p.AgeYears, p.Sex, p.ActivityFactor, p.GoalType, p.TrainingMode)
			fmt.Fprintf(cmd.OutOrStdout(), "TDEE: %d kcal\n", service.ComputeTDEE(*p))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd, profileShowCmd)

	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "Height in cm")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "Weight in kg")
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "Age in years")
	profileSetCmd.Flags().StringVar(&profileSex, "sex", "", "Sex (male or female)")
	profileSetCmd.Flags().Float64Var(&profileActivity, "activity", 0, "Activity factor (1.2-1.9)")
	profileSetCmd.Flags().StringVar(&profileGoal, "goal", "", "Goal type (lose_fat, maintain, build_muscle, recomp)")
}

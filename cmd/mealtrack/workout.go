package mealtrack

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chiawen/mealtrack/internal/service"
)

var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Record and manage workout logs",
}

var (
	workoutActivity string
	workoutDuration int
	workoutSource   string
	workoutDate     string
	workoutTime     string
	workoutNotes    string
)

var workoutAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a workout session",
	RunE: func(cmd *cobra.Command, args []string) error {
		loggedAt, err := parseDateTimeOrNow(workoutDate, workoutTime)
		if err != nil {
			return err
		}
		var duration *int
		if cmd.Flags().Changed("duration") {
			duration = &workoutDuration
		}
		return withUser(func(sqldb *sql.DB, userID string) error {
			id, err := service.AddWorkoutLog(sqldb, service.AddWorkoutLogInput{
				UserID:      userID,
				Activity:    workoutActivity,
				DurationMin: duration,
				Source:      workoutSource,
				LoggedAt:    loggedAt,
				Notes:       workoutNotes,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged workout %d\n", id)
			return nil
		})
	},
}

var workoutLimit int

var workoutListCmd = &cobra.Command{
	Use:   "list",
	Short: "List workout logs",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(sqldb *sql.DB, userID string) error {
			logs, err := service.ListWorkoutLogs(sqldb, userID, workoutLimit)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tDATE\tACTIVITY\tMIN\tSOURCE")
			for _, l := range logs {
				dur := "-"
				if l.DurationMin != nil {
					dur = fmt.Sprintf("%d", *l.DurationMin)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\t%s\n", l.ID, l.LoggedAt.Local().Format("2006-01-02"), l.Activity, dur, l.Source)
			}
			return nil
		})
	},
}

var workoutDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a workout log",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("workout log id", args[0])
		if err != nil {
			return err
		}
		return withUser(func(sqldb *sql.DB, userID string) error {
			if err := service.DeleteWorkoutLog(sqldb, userID, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted workout %d\n", id)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(workoutCmd)
	workoutCmd.AddCommand(workoutAddCmd, workoutListCmd, workoutDeleteCmd)

	workoutAddCmd.Flags().StringVar(&workoutActivity, "activity", "", "Activity name")
	workoutAddCmd.Flags().IntVar(&workoutDuration, "duration", 0, "Duration in minutes")
	workoutAddCmd.Flags().StringVar(&workoutSource, "source", "", "Source (manual or import)")
	workoutAddCmd.Flags().StringVar(&workoutDate, "date", "", "Date YYYY-MM-DD (default today)")
	workoutAddCmd.Flags().StringVar(&workoutTime, "time", "", "Time HH:MM")
	workoutAddCmd.Flags().StringVar(&workoutNotes, "notes", "", "Notes")
	_ = workoutAddCmd.MarkFlagRequired("activity")

	workoutListCmd.Flags().IntVar(&workoutLimit, "limit", 50, "Max workouts to list")
}

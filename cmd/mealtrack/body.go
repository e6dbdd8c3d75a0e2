package mealtrack

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chiawen/mealtrack/internal/service"
)

var bodyCmd = &cobra.Command{
	Use:   "body",
	Short: "Record and manage body measurements",
}

var (
	bodyWeight float64
	bodyFat    float64
	bodyDate   string
	bodyTime   string
	bodyNotes  string
)

var bodyAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a body measurement",
	RunE: func(cmd *cobra.Command, args []string) error {
		loggedAt, err := parseDateTimeOrNow(bodyDate, bodyTime)
		if err != nil {
			return err
		}
		var fatPct *float64
		if cmd.Flags().Changed("fat-pct") {
			fatPct = &bodyFat
		}
		return withUser(func(sqldb *sql.DB, userID string) error {
			id, err := service.AddBodyLog(sqldb, service.AddBodyLogInput{
				UserID:     userID,
				WeightKg:   bodyWeight,
				BodyFatPct: fatPct,
				LoggedAt:   loggedAt,
				Notes:      bodyNotes,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged body measurement %d\n", id)
			return nil
		})
	},
}

var bodyLimit int

var bodyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List body measurements",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(sqldb *sql.DB, userID string) error {
			logs, err := service.ListBodyLogs(sqldb, userID, bodyLimit)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tDATE\tWEIGHT\tFAT%")
			for _, l := range logs {
				fat := "-"
				if l.BodyFatPct != nil {
					fat = fmt.Sprintf("%.1f", *l.BodyFatPct)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%.1fkg\t%s\n", l.ID, l.LoggedAt.Local().Format("2006-01-02"), l.WeightKg, fat)
			}
			return nil
		})
	},
}

var bodyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a body measurement",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("body log id", args[0])
		if err != nil {
			return err
		}
		return withUser(func(sqldb *sql.DB, userID string) error {
			if err := service.DeleteBodyLog(sqldb, userID, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted body measurement %d\n", id)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(bodyCmd)
	bodyCmd.AddCommand(bodyAddCmd, bodyListCmd, bodyDeleteCmd)

	bodyAddCmd.Flags().Float64Var(&bodyWeight, "weight", 0, "Weight in kg")
	bodyAddCmd.Flags().Float64Var(&bodyFat, "fat-pct", 0, "Body fat percentage")
	bodyAddCmd.Flags().StringVar(&bodyDate, "date", "", "Date YYYY-MM-DD (default today)")
	bodyAddCmd.Flags().StringVar(&bodyTime, "time", "", "Time HH:MM")
	bodyAddCmd.Flags().StringVar(&bodyNotes, "notes", "", "Notes")
	_ = bodyAddCmd.MarkFlagRequired("weight")

	bodyListCmd.Flags().IntVar(&bodyLimit, "limit", 50, "Max measurements to list")
}

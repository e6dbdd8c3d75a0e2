package mealtrack

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chiawen/mealtrack/internal/app"
	"github.com/chiawen/mealtrack/internal/db"
	"github.com/chiawen/mealtrack/internal/service"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the local mealtrack database",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveDBPath()
		if err != nil {
			return err
		}
		if err := app.EnsureDBDir(path); err != nil {
			return err
		}

		sqldb, err := db.Open(path)
		if err != nil {
			return err
		}
		defer sqldb.Close()

		if err := db.ApplyMigrations(sqldb); err != nil {
			return err
		}
		if _, err := service.EnsureDefaultUser(sqldb); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Initialized mealtrack database at %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

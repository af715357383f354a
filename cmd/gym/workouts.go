package main

import (
	"github.com/JSwartzmiller/gym/internal/database"
	"github.com/JSwartzmiller/gym/internal/lib/utils"
	"github.com/JSwartzmiller/gym/internal/repository"
	"github.com/spf13/cobra"
)

var workoutsCmd = &cobra.Command{
	Use:     "workouts",
	Aliases: []string{"ls"},
	Short:   "Print stored workouts as JSON, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, loggerService, err := bootstrap()
		if err != nil {
			return err
		}
		defer loggerService.Shutdown()

		db, err := database.New(cfg, log, loggerService)
		if err != nil {
			return err
		}
		defer db.Close()

		workouts, err := repository.NewWorkoutStore(db).List(cmd.Context())
		if err != nil {
			return err
		}

		return utils.PrintJSON(cmd.OutOrStdout(), workouts)
	},
}

package cmd

import (
	"hotel-loyalty/pkg/database"

	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := bootstrap()
			if err != nil {
				return err
			}
			defer rt.Close()

			if err := database.Migrate(cmd.Context(), rt.db); err != nil {
				return err
			}

			rt.logger.Info("Schema applied")
			return nil
		},
	}
}

package cli

import (
	"github.com/spf13/cobra"

	"starwars_api/internal/database"
)

func newMigrateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer database.Close(db, a.log)

			return database.RunMigrations(db, a.log)
		},
	}
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"starwars_api/internal/database"
)

func newSeedCommand(a *app) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert a demo user and sample people and planets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer database.Close(db, a.log)

			if err := database.RunMigrations(db, a.log); err != nil {
				return err
			}
			user, err := database.Seed(cmd.Context(), db, password, a.log)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "demo user: id=%d email=%s\n", user.ID, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "demo", "password stored for the demo user")
	return cmd
}

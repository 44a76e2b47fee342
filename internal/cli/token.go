package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"starwars_api/internal/utils"
)

func newTokenCommand(a *app) *cobra.Command {
	var (
		userID uint
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print a signed access token for a user (development helper)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if userID == 0 {
				return errors.New("--user-id is required")
			}
			if a.cfg.AccessTokenSecret == "" {
				return errors.New("ACCESS_TOKEN_SECRET environment variable is required")
			}
			if ttl == 0 {
				ttl = a.cfg.AccessTokenTTL
			}

			token, err := utils.GenerateAccessToken(userID, ttl, []byte(a.cfg.AccessTokenSecret))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().UintVar(&userID, "user-id", 0, "id of the user the token identifies")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (defaults to ACCESS_TOKEN_TTL)")
	return cmd
}

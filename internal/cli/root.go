package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"starwars_api/internal/config"
	"starwars_api/internal/database"
	"starwars_api/internal/logger"
)

// app is the state shared by subcommands, filled in by the root PersistentPreRunE.
type app struct {
	cfg *config.Config
	log zerolog.Logger
}

// NewRootCommand builds the starwars-api command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "starwars-api",
		Short:         "REST API for Star Wars people, planets and user favorites",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = logger.New(cfg.LogLevel, cfg.LogFormat)
			return nil
		},
	}

	root.AddCommand(
		newServeCommand(a),
		newMigrateCommand(a),
		newSeedCommand(a),
		newTokenCommand(a),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func (a *app) openDB(ctx context.Context) (*gorm.DB, error) {
	return database.Open(ctx, a.cfg, a.log)
}

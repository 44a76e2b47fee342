//go:build integration

package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	"starwars_api/internal/database"
)

// SetupPostgres starts a PostgreSQL container, opens it through database.Open and
// runs the migrations. The container is terminated when the test ends.
func SetupPostgres(t *testing.T) (*gorm.DB, string) {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("starwars"),
		postgres.WithUsername("starwars"),
		postgres.WithPassword("starwars"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "start PostgreSQL container")
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	cfg := GetTestConfig()
	cfg.DatabaseURL = connStr

	db, err := database.Open(ctx, cfg, zerolog.Nop())
	require.NoError(t, err, "open postgres")
	t.Cleanup(func() { database.Close(db, zerolog.Nop()) })

	require.NoError(t, database.RunMigrations(db, zerolog.Nop()))
	return db, connStr
}


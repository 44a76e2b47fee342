package database

import (
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"starwars_api/internal/models"
)

type migration struct {
	name  string
	model any
}

// Referenced tables come before favorite so its foreign keys can be created.
var migrations = []migration{
	{name: "user", model: &models.User{}},
	{name: "people", model: &models.People{}},
	{name: "planet", model: &models.Planet{}},
	{name: "favorite", model: &models.Favorite{}},
}

func RunMigrations(db *gorm.DB, log zerolog.Logger) error {
	for i, m := range migrations {
		log.Info().Int("step", i+1).Int("total", len(migrations)).Str("table", m.name).Msg("Running migration")
		if err := db.AutoMigrate(m.model); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", i+1, m.name, err)
		}
	}

	log.Info().Msg("All migrations completed successfully")
	return nil
}

package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"starwars_api/internal/models"
	"starwars_api/internal/repositories"
)

const DemoUserEmail = "demo@starwars.dev"

var seedPeople = []models.People{
	{Name: "Luke Skywalker", Height: "172", Gender: "male"},
	{Name: "Leia Organa", Height: "150", Gender: "female"},
	{Name: "Darth Vader", Height: "202", Gender: "male"},
	{Name: "R2-D2", Height: "96", Gender: "n/a"},
}

var seedPlanets = []models.Planet{
	{Name: "Tatooine", Population: "200000", Terrain: "desert"},
	{Name: "Alderaan", Population: "2000000000", Terrain: "grasslands, mountains"},
	{Name: "Hoth", Population: "unknown", Terrain: "tundra, ice caves, mountain ranges"},
}

// Seed inserts a demo user and sample people and planets. It is safe to run more
// than once: the user is matched by email and the catalogues are only filled when empty.
// It returns the demo user.
func Seed(ctx context.Context, db *gorm.DB, password string, log zerolog.Logger) (*models.User, error) {
	userRepo := repositories.NewUserRepository(db)
	peopleRepo := repositories.NewPeopleRepository(db)
	planetRepo := repositories.NewPlanetRepository(db)

	user, err := userRepo.FindUserByEmail(ctx, DemoUserEmail)
	if err != nil {
		return nil, err
	}
	if user == nil {
		user = &models.User{Email: DemoUserEmail, Password: password, IsActive: true}
		if err := userRepo.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("seed user: %w", err)
		}
		log.Info().Uint("user_id", user.ID).Str("email", user.Email).Msg("Seeded demo user")
	}

	n, err := peopleRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		for _, p := range seedPeople {
			if err := peopleRepo.Create(ctx, &p); err != nil {
				return nil, fmt.Errorf("seed people: %w", err)
			}
		}
		log.Info().Int("count", len(seedPeople)).Msg("Seeded people")
	}

	n, err = planetRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		for _, p := range seedPlanets {
			if err := planetRepo.Create(ctx, &p); err != nil {
				return nil, fmt.Errorf("seed planets: %w", err)
			}
		}
		log.Info().Int("count", len(seedPlanets)).Msg("Seeded planets")
	}

	return user, nil
}

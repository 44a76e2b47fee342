package repositories

import (
	"context"
	"errors"
	"fmt"

	"starwars_api/internal/models"

	"gorm.io/gorm"
)

type PlanetRepository struct {
	db *gorm.DB
}

func NewPlanetRepository(db *gorm.DB) *PlanetRepository {
	return &PlanetRepository{db: db}
}

func (r *PlanetRepository) Create(ctx context.Context, planet *models.Planet) error {
	if err := r.db.WithContext(ctx).Create(planet).Error; err != nil {
		return fmt.Errorf("insert planet: %w", err)
	}
	return nil
}

func (r *PlanetRepository) FindAll(ctx context.Context) ([]models.Planet, error) {
	var planets []models.Planet
	if err := r.db.WithContext(ctx).Order("id").Find(&planets).Error; err != nil {
		return nil, fmt.Errorf("list planets: %w", err)
	}
	return planets, nil
}

// FindByID returns nil, nil when no such planet exists.
func (r *PlanetRepository) FindByID(ctx context.Context, id uint) (*models.Planet, error) {
	var planet models.Planet
	err := r.db.WithContext(ctx).First(&planet, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find planet %d: %w", id, err)
	}
	return &planet, nil
}

func (r *PlanetRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Planet{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count planets: %w", err)
	}
	return n, nil
}

package repositories

import (
	"context"
	"errors"
	"fmt"

	"starwars_api/internal/models"

	"gorm.io/gorm"
)

type PeopleRepository struct {
	db *gorm.DB
}

func NewPeopleRepository(db *gorm.DB) *PeopleRepository {
	return &PeopleRepository{db: db}
}

func (r *PeopleRepository) Create(ctx context.Context, person *models.People) error {
	if err := r.db.WithContext(ctx).Create(person).Error; err != nil {
		return fmt.Errorf("insert people: %w", err)
	}
	return nil
}

func (r *PeopleRepository) FindAll(ctx context.Context) ([]models.People, error) {
	var people []models.People
	if err := r.db.WithContext(ctx).Order("id").Find(&people).Error; err != nil {
		return nil, fmt.Errorf("list people: %w", err)
	}
	return people, nil
}

// FindByID returns nil, nil when no such person exists.
func (r *PeopleRepository) FindByID(ctx context.Context, id uint) (*models.People, error) {
	var person models.People
	err := r.db.WithContext(ctx).First(&person, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find people %d: %w", id, err)
	}
	return &person, nil
}

func (r *PeopleRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.People{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count people: %w", err)
	}
	return n, nil
}

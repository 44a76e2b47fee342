package repositories

import (
	"context"
	"errors"
	"fmt"

	"starwars_api/internal/models"

	"gorm.io/gorm"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Create inserts the favorite and loads its target so it can be serialized.
func (r *FavoriteRepository) Create(ctx context.Context, fav *models.Favorite) error {
	db := r.db.WithContext(ctx)
	if err := db.Create(fav).Error; err != nil {
		return fmt.Errorf("insert favorite: %w", err)
	}
	if err := db.Preload("Planet").Preload("People").First(fav, fav.ID).Error; err != nil {
		return fmt.Errorf("reload favorite %d: %w", fav.ID, err)
	}
	return nil
}

func (r *FavoriteRepository) FindByUserID(ctx context.Context, userID uint) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := r.db.WithContext(ctx).
		Preload("Planet").
		Preload("People").
		Where("user_id = ?", userID).
		Order("id").
		Find(&favorites).Error
	if err != nil {
		return nil, fmt.Errorf("list favorites of user %d: %w", userID, err)
	}
	return favorites, nil
}

// FindByTarget returns nil, nil when the user has not bookmarked the target.
func (r *FavoriteRepository) FindByTarget(ctx context.Context, userID uint, target models.FavoriteTarget) (*models.Favorite, error) {
	var fav models.Favorite
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where(target.Column()+" = ?", target.ID).
		First(&fav).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find favorite %s of user %d: %w", target, userID, err)
	}
	return &fav, nil
}

// DeleteByTarget removes the user's favorite for target and reports whether one existed.
func (r *FavoriteRepository) DeleteByTarget(ctx context.Context, userID uint, target models.FavoriteTarget) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where(target.Column()+" = ?", target.ID).
		Delete(&models.Favorite{})
	if res.Error != nil {
		return false, fmt.Errorf("delete favorite %s of user %d: %w", target, userID, res.Error)
	}
	return res.RowsAffected > 0, nil
}

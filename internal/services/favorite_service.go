package services

import (
	"context"
	"errors"
	"fmt"

	"starwars_api/internal/models"
	"starwars_api/internal/repositories"

	"gorm.io/gorm"
)

type FavoriteService struct {
	favoriteRepo *repositories.FavoriteRepository
	userRepo     *repositories.UserRepository
	planetRepo   *repositories.PlanetRepository
	peopleRepo   *repositories.PeopleRepository
}

func NewFavoriteService(
	favoriteRepo *repositories.FavoriteRepository,
	userRepo *repositories.UserRepository,
	planetRepo *repositories.PlanetRepository,
	peopleRepo *repositories.PeopleRepository,
) *FavoriteService {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		userRepo:     userRepo,
		planetRepo:   planetRepo,
		peopleRepo:   peopleRepo,
	}
}

func (s *FavoriteService) GetUserFavorites(ctx context.Context, userID uint) ([]models.Favorite, error) {
	return s.favoriteRepo.FindByUserID(ctx, userID)
}

// AddFavorite bookmarks target for the user. The user and the target must exist and
// the target must not be bookmarked already.
func (s *FavoriteService) AddFavorite(ctx context.Context, userID uint, target models.FavoriteTarget) (*models.Favorite, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := s.ensureTargetExists(ctx, target); err != nil {
		return nil, err
	}

	existing, err := s.favoriteRepo.FindByTarget(ctx, userID, target)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrFavoriteExists
	}

	fav, err := models.NewFavorite(userID, target)
	if err != nil {
		return nil, err
	}
	if err := s.favoriteRepo.Create(ctx, fav); err != nil {
		// A concurrent request can still win the race past the check above.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrFavoriteExists
		}
		return nil, err
	}
	return fav, nil
}

func (s *FavoriteService) RemoveFavorite(ctx context.Context, userID uint, target models.FavoriteTarget) error {
	deleted, err := s.favoriteRepo.DeleteByTarget(ctx, userID, target)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrFavoriteNotFound
	}
	return nil
}

func (s *FavoriteService) ensureTargetExists(ctx context.Context, target models.FavoriteTarget) error {
	switch target.Kind {
	case models.TargetPlanet:
		planet, err := s.planetRepo.FindByID(ctx, target.ID)
		if err != nil {
			return err
		}
		if planet == nil {
			return ErrPlanetNotFound
		}
	case models.TargetPeople:
		person, err := s.peopleRepo.FindByID(ctx, target.ID)
		if err != nil {
			return err
		}
		if person == nil {
			return ErrPersonNotFound
		}
	default:
		return fmt.Errorf("unknown favorite target kind %q", target.Kind)
	}
	return nil
}

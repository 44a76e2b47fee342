package services

import (
	"context"

	"starwars_api/internal/models"
	"starwars_api/internal/repositories"
)

type PlanetService struct {
	planetRepo *repositories.PlanetRepository
}

func NewPlanetService(planetRepo *repositories.PlanetRepository) *PlanetService {
	return &PlanetService{planetRepo: planetRepo}
}

type CreatePlanetRequest struct {
	Name       string `json:"name" binding:"required"`
	Terrain    string `json:"terrain" binding:"required"`
	Population string `json:"population" binding:"required"`
}

func (s *PlanetService) CreatePlanet(ctx context.Context, req CreatePlanetRequest) (*models.Planet, error) {
	planet := &models.Planet{
		Name:       req.Name,
		Terrain:    req.Terrain,
		Population: req.Population,
	}
	if err := s.planetRepo.Create(ctx, planet); err != nil {
		return nil, err
	}
	return planet, nil
}

func (s *PlanetService) GetPlanet(ctx context.Context, id uint) (*models.Planet, error) {
	planet, err := s.planetRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if planet == nil {
		return nil, ErrPlanetNotFound
	}
	return planet, nil
}

func (s *PlanetService) GetAllPlanets(ctx context.Context) ([]models.Planet, error) {
	return s.planetRepo.FindAll(ctx)
}

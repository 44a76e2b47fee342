package services

import (
	"context"

	"starwars_api/internal/models"
	"starwars_api/internal/repositories"
)

type PeopleService struct {
	peopleRepo *repositories.PeopleRepository
}

func NewPeopleService(peopleRepo *repositories.PeopleRepository) *PeopleService {
	return &PeopleService{peopleRepo: peopleRepo}
}

// CreatePeopleRequest is the POST /people body. Every field must be present and non-empty.
type CreatePeopleRequest struct {
	Name   string `json:"name" binding:"required"`
	Height string `json:"height" binding:"required"`
	Gender string `json:"gender" binding:"required"`
}

func (s *PeopleService) CreatePeople(ctx context.Context, req CreatePeopleRequest) (*models.People, error) {
	person := &models.People{
		Name:   req.Name,
		Height: req.Height,
		Gender: req.Gender,
	}
	if err := s.peopleRepo.Create(ctx, person); err != nil {
		return nil, err
	}
	return person, nil
}

func (s *PeopleService) GetPeople(ctx context.Context, id uint) (*models.People, error) {
	person, err := s.peopleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, ErrPersonNotFound
	}
	return person, nil
}

func (s *PeopleService) GetAllPeople(ctx context.Context) ([]models.People, error) {
	return s.peopleRepo.FindAll(ctx)
}

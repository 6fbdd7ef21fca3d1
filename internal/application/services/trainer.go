package services

import (
	"context"

	"fitness-platform-api/internal/application/ports"
	domain "fitness-platform-api/internal/domain/trainer"
)

// featuredLimit is how many trainers the landing page shows.
const featuredLimit = 6

type TrainerService struct {
	trainerRepository domain.Repository
}

func NewTrainerService(
	trainerRepository domain.Repository,
) ports.TrainerService {
	return &TrainerService{
		trainerRepository: trainerRepository,
	}
}

func (ts *TrainerService) FeaturedTrainers(ctx context.Context) (domain.FeaturedList, error) {
	fs, err := ts.trainerRepository.FetchFeatured(ctx, featuredLimit)
	if err != nil {
		return nil, err
	}

	return fs, nil
}

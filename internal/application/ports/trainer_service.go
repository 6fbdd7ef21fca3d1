package ports

import (
	"context"

	"fitness-platform-api/internal/domain/trainer"
)

type TrainerService interface {
	FeaturedTrainers(ctx context.Context) (trainer.FeaturedList, error)
}

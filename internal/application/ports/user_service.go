package ports

import (
	"context"

	"fitness-platform-api/internal/domain/trainer"
	"fitness-platform-api/internal/domain/user"
)

type UserService interface {
	Register(ctx context.Context, u user.User, password string, details *trainer.Details) (*user.User, error)
	FindUserByID(ctx context.Context, uuid user.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
}

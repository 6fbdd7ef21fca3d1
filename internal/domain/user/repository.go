package user

import (
	"context"

	"fitness-platform-api/internal/domain/media"
	"fitness-platform-api/internal/domain/trainer"
)

type Repository interface {
	FetchUserByID(ctx context.Context, uuid UUID) (*User, error)
	FetchUserByEmail(ctx context.Context, email string) (*User, error)
	// CreateUser inserts the user and, for trainers, the trainer details
	// in a single transaction.
	CreateUser(ctx context.Context, req User, details *trainer.Details) (*User, error)
	// UpdateImageSlot sets the slot column to key (nil clears the slot)
	// and returns the updated user.
	UpdateImageSlot(ctx context.Context, uuid UUID, slot media.Slot, key *string) (*User, error)
}

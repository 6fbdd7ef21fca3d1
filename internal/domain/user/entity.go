package user

import (
	"time"

	"github.com/google/uuid"

	"fitness-platform-api/internal/domain/trainer"
)

const (
	TypeUser    = "user"
	TypeTrainer = "trainer"
)

type (
	UUID = uuid.UUID
	User struct {
		UUID         UUID
		Email        string
		PasswordHash *string
		Name         string
		Phone        string
		Type         string
		IsActive     bool

		// Current image slot keys, nil when the slot is empty.
		ProfileImageKey *string
		CoverImageKey   *string

		// Details is set for trainers only.
		Details *trainer.Details

		CreatedAt time.Time
		UpdatedAt time.Time
	}
)

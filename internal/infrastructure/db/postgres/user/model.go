package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	User struct {
		ID           uint64
		UUID         uuid.UUID
		Email        string
		PasswordHash *string
		Name         string
		Phone        string
		Type         string
		IsActive     bool

		ProfileImage *string
		CoverImage   *string

		CreatedAt time.Time
		UpdatedAt time.Time
	}

	TrainerDetails struct {
		ID              uint64
		UserID          uint64
		Specializations string
		Certifications  string
		Bio             string
		Rating          float64
		RatingCount     uint32

		CreatedAt time.Time
		UpdatedAt time.Time
	}
)

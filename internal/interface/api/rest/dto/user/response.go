package user

import (
	"github.com/google/uuid"

	trainerDTO "fitness-platform-api/internal/interface/api/rest/dto/trainer"
)

type (
	User struct {
		UUID            uuid.UUID           `json:"uuid"`
		Name            string              `json:"name"`
		Email           string              `json:"email"`
		Phone           string              `json:"phone_number"`
		Type            string              `json:"type"`
		IsActive        bool                `json:"is_active"`
		ProfileImage    *string             `json:"profile_image"`
		CoverImage      *string             `json:"cover_image"`
		ProfileImageURL string              `json:"profile_image_url"`
		CoverImageURL   string              `json:"cover_image_url"`
		TrainerDetails  *trainerDTO.Details `json:"trainer_details,omitempty"`
	}
)

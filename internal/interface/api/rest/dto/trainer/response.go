package trainer

import (
	"github.com/google/uuid"
)

type (
	Details struct {
		Specializations string  `json:"specializations"`
		Certifications  string  `json:"certifications"`
		Bio             string  `json:"bio"`
		Rating          float64 `json:"rating"`
		RatingCount     uint32  `json:"rating_count"`
	}
	Featured struct {
		UUID            uuid.UUID `json:"uuid"`
		Name            string    `json:"name"`
		ProfileImageURL string    `json:"profile_image_url"`
		CoverImageURL   string    `json:"cover_image_url"`
		TrainerDetails  Details   `json:"trainer_details"`
	}
	FeaturedList []Featured
	ResponseData struct {
		Trainers FeaturedList `json:"trainers"`
	}
)

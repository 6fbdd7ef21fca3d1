package trainer

import (
	"time"

	"github.com/google/uuid"
)

type (
	Details struct {
		UserUUID        uuid.UUID
		Specializations string
		Certifications  string
		Bio             string
		Rating          float64
		RatingCount     uint32

		CreatedAt time.Time
		UpdatedAt time.Time
	}

	// Featured is a trainer row as shown on the public landing page.
	Featured struct {
		UserUUID        uuid.UUID
		Name            string
		ProfileImageKey *string
		CoverImageKey   *string
		Details         Details
	}
	FeaturedList []*Featured
)

package user

import (
	domain "fitness-platform-api/internal/domain/user"
	trainerDTO "fitness-platform-api/internal/interface/api/rest/dto/trainer"
)

// ImageURLs carries the resolved display URLs for the two image slots.
// They are computed by the media service so that empty slots still map to
// usable placeholder URLs.
type ImageURLs struct {
	Profile string
	Cover   string
}

func ToResponseUser(uDomain domain.User, urls ImageURLs) User {
	u := User{
		UUID:            uDomain.UUID,
		Name:            uDomain.Name,
		Email:           uDomain.Email,
		Phone:           uDomain.Phone,
		Type:            uDomain.Type,
		IsActive:        uDomain.IsActive,
		ProfileImage:    uDomain.ProfileImageKey,
		CoverImage:      uDomain.CoverImageKey,
		ProfileImageURL: urls.Profile,
		CoverImageURL:   urls.Cover,
	}
	if uDomain.Details != nil {
		d := trainerDTO.ToResponseDetails(*uDomain.Details)
		u.TrainerDetails = &d
	}

	return u
}

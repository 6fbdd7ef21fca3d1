package trainer

import (
	domain "fitness-platform-api/internal/domain/trainer"
)

func ToResponseDetails(d domain.Details) Details {
	return Details{
		Specializations: d.Specializations,
		Certifications:  d.Certifications,
		Bio:             d.Bio,
		Rating:          d.Rating,
		RatingCount:     d.RatingCount,
	}
}

// URLResolver turns a slot key (nil for empty) into a displayable URL.
type URLResolver func(profileKey, coverKey *string, displayName string) (profileURL, coverURL string)

func ToResponseFeatured(fDomain domain.FeaturedList, resolve URLResolver) FeaturedList {
	fs := make(FeaturedList, len(fDomain))
	for idx, f := range fDomain {
		profileURL, coverURL := resolve(f.ProfileImageKey, f.CoverImageKey, f.Name)
		fs[idx] = Featured{
			UUID:            f.UserUUID,
			Name:            f.Name,
			ProfileImageURL: profileURL,
			CoverImageURL:   coverURL,
			TrainerDetails:  ToResponseDetails(f.Details),
		}
	}

	return fs
}

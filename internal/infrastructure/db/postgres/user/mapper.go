package user

import (
	trainerDomain "fitness-platform-api/internal/domain/trainer"
	domain "fitness-platform-api/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	u := &domain.User{
		UUID:         model.UUID,
		Email:        model.Email,
		PasswordHash: model.PasswordHash,
		Name:         model.Name,
		Phone:        model.Phone,
		Type:         model.Type,
		IsActive:     model.IsActive,

		ProfileImageKey: model.ProfileImage,
		CoverImageKey:   model.CoverImage,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	return u
}

func detailsFromDBModel(model *TrainerDetails, userUUID domain.UUID) *trainerDomain.Details {
	return &trainerDomain.Details{
		UserUUID:        userUUID,
		Specializations: model.Specializations,
		Certifications:  model.Certifications,
		Bio:             model.Bio,
		Rating:          model.Rating,
		RatingCount:     model.RatingCount,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

package trainer

import (
	"context"

	domain "fitness-platform-api/internal/domain/trainer"
	"fitness-platform-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchFeatured(ctx context.Context, limit int) (domain.FeaturedList, error) {
	rows, err := r.db.Query(ctx, SelectFeaturedTrainers, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fs domain.FeaturedList
	for rows.Next() {
		f := new(domain.Featured)

		if err = rows.Scan(
			&f.UserUUID,
			&f.Name,
			&f.ProfileImageKey,
			&f.CoverImageKey,

			&f.Details.Specializations,
			&f.Details.Certifications,
			&f.Details.Bio,
			&f.Details.Rating,
			&f.Details.RatingCount,
		); err != nil {
			return nil, err
		}
		f.Details.UserUUID = f.UserUUID

		fs = append(fs, f)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fs, nil
}

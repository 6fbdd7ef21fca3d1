package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"fitness-platform-api/internal/domain/media"
	trainerDomain "fitness-platform-api/internal/domain/trainer"
	domain "fitness-platform-api/internal/domain/user"
	"fitness-platform-api/internal/infrastructure/db/postgres"
)

var ErrEmailAlreadyExists = errors.New("email already exists")

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

// rowQuerier is satisfied by both the pool and a transaction.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func scanUser(row pgx.Row) (*User, error) {
	u := new(User)
	err := row.Scan(
		&u.ID,
		&u.UUID,
		&u.Email,
		&u.PasswordHash,
		&u.Name,
		&u.Phone,
		&u.Type,
		&u.IsActive,

		&u.ProfileImage,
		&u.CoverImage,

		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func scanDetails(row pgx.Row) (*TrainerDetails, error) {
	d := new(TrainerDetails)
	err := row.Scan(
		&d.ID,
		&d.UserID,
		&d.Specializations,
		&d.Certifications,
		&d.Bio,
		&d.Rating,
		&d.RatingCount,

		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return d, nil
}

// fetchDetails fills Details for trainer rows. A trainer without a
// details row is returned as-is.
func (r *Repository) fetchDetails(ctx context.Context, q rowQuerier, dbU *User, u *domain.User) error {
	if dbU.Type != domain.TypeTrainer {
		return nil
	}
	d, err := scanDetails(q.QueryRow(ctx, SelectTrainerDetailsByUserID, dbU.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return err
	}
	u.Details = detailsFromDBModel(d, dbU.UUID)

	return nil
}

func (r *Repository) FetchUserByID(ctx context.Context, uuid domain.UUID) (*domain.User, error) {
	dbU, err := scanUser(r.db.QueryRow(ctx, SelectUserByID, uuid.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	u := fromDBModel(dbU)
	if err = r.fetchDetails(ctx, r.db, dbU, u); err != nil {
		return nil, err
	}

	return u, nil
}

func (r *Repository) FetchUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	dbU, err := scanUser(r.db.QueryRow(ctx, SelectUserByEmail, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	u := fromDBModel(dbU)
	if err = r.fetchDetails(ctx, r.db, dbU, u); err != nil {
		return nil, err
	}

	return u, nil
}

func (r *Repository) CreateUser(ctx context.Context, req domain.User, details *trainerDomain.Details) (*domain.User, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	dbU, err := scanUser(tx.QueryRow(
		ctx,
		InsertUser,
		req.Email, req.PasswordHash, req.Name, req.Phone, req.Type,
	))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	u := fromDBModel(dbU)

	if details != nil {
		dbD, derr := scanDetails(tx.QueryRow(
			ctx,
			InsertTrainerDetails,
			dbU.ID, details.Specializations, details.Certifications, details.Bio,
		))
		if derr != nil {
			return nil, derr
		}
		u.Details = detailsFromDBModel(dbD, dbU.UUID)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	return u, nil
}

func (r *Repository) UpdateImageSlot(ctx context.Context, uuid domain.UUID, slot media.Slot, key *string) (*domain.User, error) {
	var query string
	switch slot {
	case media.SlotProfile:
		query = UpdateProfileImageByUUID
	case media.SlotCover:
		query = UpdateCoverImageByUUID
	default:
		return nil, media.ErrUnknownSlot
	}

	dbU, err := scanUser(r.db.QueryRow(ctx, query, key, uuid.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	u := fromDBModel(dbU)
	if err = r.fetchDetails(ctx, r.db, dbU, u); err != nil {
		return nil, err
	}

	return u, nil
}

package user

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitness-platform-api/internal/domain/media"
	trainerDomain "fitness-platform-api/internal/domain/trainer"
	domain "fitness-platform-api/internal/domain/user"
)

var userCols = []string{
	"id", "uuid", "email", "password_hash", "name", "phone", "type", "is_active",
	"profile_image", "cover_image", "created_at", "updated_at",
}

var detailCols = []string{
	"id", "user_id", "specializations", "certifications", "bio", "rating", "rating_count",
	"created_at", "updated_at",
}

func userRow(id uint64, uid uuid.UUID, email, userType string, profileKey, coverKey *string) *pgxmock.Rows {
	hash := "$2a$10$hash"
	now := time.Now()
	return pgxmock.NewRows(userCols).AddRow(
		id, uid, email, &hash, "Jane", "+15550100", userType, true,
		profileKey, coverKey, now, now,
	)
}

func newMockRepo(t *testing.T) (pgxmock.PgxPoolIface, domain.Repository) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, NewRepository(mock)
}

func TestFetchUserByID(t *testing.T) {
	t.Run("missing row maps to nil, nil", func(t *testing.T) {
		mock, repo := newMockRepo(t)
		uid := uuid.New()

		mock.ExpectQuery(regexp.QuoteMeta(SelectUserByID)).
			WithArgs(uid.String()).
			WillReturnError(pgx.ErrNoRows)

		u, err := repo.FetchUserByID(context.Background(), uid)
		require.NoError(t, err)
		assert.Nil(t, u)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("plain user, no details query", func(t *testing.T) {
		mock, repo := newMockRepo(t)
		uid := uuid.New()
		key := "profile-images/a.webp"

		mock.ExpectQuery(regexp.QuoteMeta(SelectUserByID)).
			WithArgs(uid.String()).
			WillReturnRows(userRow(1, uid, "jane@example.com", domain.TypeUser, &key, nil))

		u, err := repo.FetchUserByID(context.Background(), uid)
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, uid, u.UUID)
		assert.Equal(t, "jane@example.com", u.Email)
		require.NotNil(t, u.ProfileImageKey)
		assert.Equal(t, key, *u.ProfileImageKey)
		assert.Nil(t, u.CoverImageKey)
		assert.Nil(t, u.Details)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("trainer row pulls details", func(t *testing.T) {
		mock, repo := newMockRepo(t)
		uid := uuid.New()
		now := time.Now()

		mock.ExpectQuery(regexp.QuoteMeta(SelectUserByID)).
			WithArgs(uid.String()).
			WillReturnRows(userRow(7, uid, "anna@example.com", domain.TypeTrainer, nil, nil))
		mock.ExpectQuery(regexp.QuoteMeta(SelectTrainerDetailsByUserID)).
			WithArgs(uint64(7)).
			WillReturnRows(pgxmock.NewRows(detailCols).AddRow(
				uint64(3), uint64(7), "yoga", "RYT-200", "a bio", 4.5, uint32(10), now, now,
			))

		u, err := repo.FetchUserByID(context.Background(), uid)
		require.NoError(t, err)
		require.NotNil(t, u)
		require.NotNil(t, u.Details)
		assert.Equal(t, "yoga", u.Details.Specializations)
		assert.Equal(t, uint32(10), u.Details.RatingCount)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCreateUser(t *testing.T) {
	t.Run("duplicate email", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(InsertUser)).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})
		mock.ExpectRollback()

		_, err := repo.CreateUser(context.Background(), domain.User{Email: "dup@example.com"}, nil)
		require.ErrorIs(t, err, ErrEmailAlreadyExists)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("trainer insert is transactional", func(t *testing.T) {
		mock, repo := newMockRepo(t)
		uid := uuid.New()
		now := time.Now()

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(InsertUser)).
			WillReturnRows(userRow(9, uid, "anna@example.com", domain.TypeTrainer, nil, nil))
		mock.ExpectQuery(regexp.QuoteMeta(InsertTrainerDetails)).
			WithArgs(uint64(9), "yoga", "RYT-200", "a bio").
			WillReturnRows(pgxmock.NewRows(detailCols).AddRow(
				uint64(4), uint64(9), "yoga", "RYT-200", "a bio", 0.0, uint32(0), now, now,
			))
		mock.ExpectCommit()
		mock.ExpectRollback() // deferred rollback after commit is a no-op

		u, err := repo.CreateUser(
			context.Background(),
			domain.User{Email: "anna@example.com", Type: domain.TypeTrainer},
			&trainerDomain.Details{Specializations: "yoga", Certifications: "RYT-200", Bio: "a bio"},
		)
		require.NoError(t, err)
		require.NotNil(t, u)
		require.NotNil(t, u.Details)
		assert.Equal(t, "yoga", u.Details.Specializations)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("details insert failure rolls back", func(t *testing.T) {
		mock, repo := newMockRepo(t)
		uid := uuid.New()

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(InsertUser)).
			WillReturnRows(userRow(9, uid, "anna@example.com", domain.TypeTrainer, nil, nil))
		mock.ExpectQuery(regexp.QuoteMeta(InsertTrainerDetails)).
			WillReturnError(pgx.ErrTxClosed)
		mock.ExpectRollback()

		_, err := repo.CreateUser(
			context.Background(),
			domain.User{Email: "anna@example.com", Type: domain.TypeTrainer},
			&trainerDomain.Details{Specializations: "yoga", Certifications: "c", Bio: "b"},
		)
		require.Error(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateImageSlot(t *testing.T) {
	t.Run("sets profile key", func(t *testing.T) {
		mock, repo := newMockRepo(t)
		uid := uuid.New()
		key := "profile-images/new.webp"

		mock.ExpectQuery(regexp.QuoteMeta(UpdateProfileImageByUUID)).
			WithArgs(&key, uid.String()).
			WillReturnRows(userRow(1, uid, "jane@example.com", domain.TypeUser, &key, nil))

		u, err := repo.UpdateImageSlot(context.Background(), uid, media.SlotProfile, &key)
		require.NoError(t, err)
		require.NotNil(t, u)
		require.NotNil(t, u.ProfileImageKey)
		assert.Equal(t, key, *u.ProfileImageKey)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("clears cover key with nil", func(t *testing.T) {
		mock, repo := newMockRepo(t)
		uid := uuid.New()

		mock.ExpectQuery(regexp.QuoteMeta(UpdateCoverImageByUUID)).
			WithArgs((*string)(nil), uid.String()).
			WillReturnRows(userRow(1, uid, "jane@example.com", domain.TypeUser, nil, nil))

		u, err := repo.UpdateImageSlot(context.Background(), uid, media.SlotCover, nil)
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Nil(t, u.CoverImageKey)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown slot", func(t *testing.T) {
		_, repo := newMockRepo(t)

		_, err := repo.UpdateImageSlot(context.Background(), uuid.New(), media.Slot(99), nil)
		require.ErrorIs(t, err, media.ErrUnknownSlot)
	})

	t.Run("vanished user maps to nil, nil", func(t *testing.T) {
		mock, repo := newMockRepo(t)
		uid := uuid.New()
		key := "cover-images/x.webp"

		mock.ExpectQuery(regexp.QuoteMeta(UpdateCoverImageByUUID)).
			WithArgs(&key, uid.String()).
			WillReturnError(pgx.ErrNoRows)

		u, err := repo.UpdateImageSlot(context.Background(), uid, media.SlotCover, &key)
		require.NoError(t, err)
		assert.Nil(t, u)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

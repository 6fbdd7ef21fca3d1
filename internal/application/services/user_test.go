package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"fitness-platform-api/internal/domain/trainer"
	domain "fitness-platform-api/internal/domain/user"
)

func TestRegister(t *testing.T) {
	repo := newFakeUserRepo()
	ms, fmq := newMediaForTest(t, newFakeBlob(), repo)
	us := NewUserService(repo, ms, fmq, testCounter())

	in := domain.User{
		UUID:     uuid.New(),
		Email:    "trainer@example.com",
		Name:     "Anna Trainer",
		Type:     domain.TypeTrainer,
		IsActive: true,
	}
	details := &trainer.Details{Specializations: "yoga", Bio: "ten years of practice"}

	got, err := us.Register(context.Background(), in, "VeryStrongPassw0rd!", details)
	require.NoError(t, err)
	require.NotNil(t, got)

	require.NotNil(t, got.PasswordHash, "stored user carries the bcrypt hash")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*got.PasswordHash), []byte("VeryStrongPassw0rd!")))

	select {
	case e := <-fmq.GetInputChan():
		assert.Equal(t, "POST", e.Method)
		assert.Equal(t, in.UUID.String(), e.UserID)
		assert.NotEmpty(t, e.Payload.ProfileImageURL, "placeholder URL even without an uploaded image")
	default:
		t.Fatal("expected a registration event")
	}
}

func TestFindUserByID(t *testing.T) {
	u := &domain.User{UUID: uuid.New(), Email: "x@example.com", IsActive: true}
	repo := newFakeUserRepo(u)
	ms, fmq := newMediaForTest(t, newFakeBlob(), repo)
	us := NewUserService(repo, ms, fmq, testCounter())

	got, err := us.FindUserByID(context.Background(), u.UUID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, u.Email, got.Email)

	missing, err := us.FindUserByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

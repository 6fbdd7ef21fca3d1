package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"

	"fitness-platform-api/internal/application/ports"
	"fitness-platform-api/internal/domain/media"
	trainerDomain "fitness-platform-api/internal/domain/trainer"
	domain "fitness-platform-api/internal/domain/user"
	"fitness-platform-api/internal/infrastructure/mq"
	userDTO "fitness-platform-api/internal/interface/api/rest/dto/user"
)

var ErrUserNotFound = errors.New("user not found")

type UserService struct {
	userRepository domain.Repository
	mediaService   ports.MediaService
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	mediaService ports.MediaService,
	mqPort ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		mediaService:   mediaService,
		mq:             mqPort,
		mCounter:       mCounter,
	}
}

func (us *UserService) Register(ctx context.Context, u domain.User, password string, details *trainerDomain.Details) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)
	u.PasswordHash = &hashStr

	uRet, err := us.userRepository.CreateUser(ctx, u, details)
	if err != nil {
		return nil, err
	}

	if uRet != nil {
		us.mq.GetInputChan() <- mq.Event{
			Id:      uuid.New(),
			TS:      time.Now(),
			Method:  http.MethodPost,
			UserID:  uRet.UUID.String(),
			Payload: userDTO.ToResponseUser(*uRet, us.imageURLs(uRet)),
		}
	}

	us.mCounter.WithLabelValues("user_registered_total").Inc()

	return uRet, nil
}

func (us *UserService) FindUserByID(ctx context.Context, uuid domain.UUID) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByID(ctx, uuid)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (us *UserService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (us *UserService) imageURLs(u *domain.User) userDTO.ImageURLs {
	return userDTO.ImageURLs{
		Profile: us.mediaService.PublicURL(u.ProfileImageKey, u.Name, media.SlotProfile),
		Cover:   us.mediaService.PublicURL(u.CoverImageKey, u.Name, media.SlotCover),
	}
}

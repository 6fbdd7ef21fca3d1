package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fitness-platform-api/internal/application/ports"
	"fitness-platform-api/internal/application/services"
	"fitness-platform-api/internal/domain/media"
	trainerDomain "fitness-platform-api/internal/domain/trainer"
	domain "fitness-platform-api/internal/domain/user"
	userDB "fitness-platform-api/internal/infrastructure/db/postgres/user"
	"fitness-platform-api/internal/infrastructure/jwt"
	"fitness-platform-api/internal/interface/api/rest/dto/auth"
	userDTO "fitness-platform-api/internal/interface/api/rest/dto/user"
	"fitness-platform-api/internal/interface/api/rest/middleware"
	"fitness-platform-api/internal/interface/api/rest/validator"
)

type AuthController struct {
	logger       *zap.Logger
	userService  ports.UserService
	authService  ports.Auth
	mediaService ports.MediaService
}

func NewAuthController(
	r *gin.Engine,
	logger *zap.Logger,
	userService ports.UserService,
	authService ports.Auth,
	mediaService ports.MediaService,
	jwtService *jwt.Service,
) *AuthController {
	ac := &AuthController{
		logger:       logger,
		userService:  userService,
		authService:  authService,
		mediaService: mediaService,
	}

	r.POST(RouteRegister, ac.RegisterHandler)
	r.POST(RouteLogin, ac.LoginHandler)
	r.GET(RouteMe, middleware.AuthMiddleware(jwtService), ac.MeHandler)

	return ac
}

func (ac *AuthController) RegisterHandler(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	if errs := validator.ValidateRegister(req); errs != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "validation failed",
			"details": errs,
		})
		return
	}

	u := domain.User{
		Email:    req.Email,
		Name:     req.Name,
		Phone:    req.Phone,
		Type:     req.Type,
		IsActive: true,
	}
	var details *trainerDomain.Details
	if req.Type == domain.TypeTrainer {
		details = &trainerDomain.Details{
			Specializations: req.Specializations,
			Certifications:  req.Certifications,
			Bio:             req.Bio,
		}
	}

	uRet, err := ac.userService.Register(c.Request.Context(), u, req.Password, details)
	if err != nil {
		if errors.Is(err, userDB.ErrEmailAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already exists"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "registration failed"},
		)
		ac.logger.Error("Register() error", zap.Error(err))
		return
	}

	token, err := ac.authService.GenerateToken(uRet, req.Password)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to generate token"},
		)
		ac.logger.Error("GenerateToken() error", zap.Error(err), zap.Stringer("user_uuid", uRet.UUID))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":         ac.toResponse(uRet),
		"access_token": token,
		"token_type":   "Bearer",
	})
}

func (ac *AuthController) LoginHandler(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	if errs := validator.ValidateLogin(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	u, err := ac.userService.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a user"},
		)
		ac.logger.Error("FindByEmail() error", zap.Error(err))
		return
	}
	if u == nil {
		c.JSON(
			http.StatusUnauthorized,
			gin.H{"error": "invalid credentials"},
		)
		return
	}

	token, err := ac.authService.GenerateToken(u, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		case errors.Is(err, services.ErrAccountDeactivated):
			c.JSON(http.StatusForbidden, gin.H{"error": "account is deactivated"})
		default:
			ac.logger.Error("GenerateToken() error", zap.Error(err), zap.Stringer("user_uuid", u.UUID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":         ac.toResponse(u),
		"access_token": token,
		"token_type":   "Bearer",
	})
}

func (ac *AuthController) MeHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.GetString(middleware.CtxUserID))
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			gin.H{"error": "invalid token subject"},
		)
		return
	}

	u, err := ac.userService.FindUserByID(c.Request.Context(), uuid)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get user data"},
		)
		ac.logger.Error("FindUserByID() error", zap.Error(err))
		return
	}
	if u == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "user not found"},
		)
		return
	}
	if !u.IsActive {
		c.JSON(
			http.StatusForbidden,
			gin.H{"error": "account is deactivated"},
		)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": ac.toResponse(u)})
}

func (ac *AuthController) toResponse(u *domain.User) userDTO.User {
	return userDTO.ToResponseUser(*u, userDTO.ImageURLs{
		Profile: ac.mediaService.PublicURL(u.ProfileImageKey, u.Name, media.SlotProfile),
		Cover:   ac.mediaService.PublicURL(u.CoverImageKey, u.Name, media.SlotCover),
	})
}

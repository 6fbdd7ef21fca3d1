package rest

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fitness-platform-api/internal/application/ports"
	"fitness-platform-api/internal/application/services"
	"fitness-platform-api/internal/domain/media"
	domain "fitness-platform-api/internal/domain/user"
	"fitness-platform-api/internal/infrastructure/jwt"
	userDTO "fitness-platform-api/internal/interface/api/rest/dto/user"
	"fitness-platform-api/internal/interface/api/rest/middleware"
	"fitness-platform-api/internal/interface/api/rest/validator"
)

type MediaController struct {
	logger         *zap.Logger
	mediaService   ports.MediaService
	maxUploadBytes int64
}

func NewMediaController(
	r *gin.Engine,
	logger *zap.Logger,
	mediaService ports.MediaService,
	jwtService *jwt.Service,
	maxUploadBytes int64,
) *MediaController {
	mc := &MediaController{
		logger:         logger,
		mediaService:   mediaService,
		maxUploadBytes: maxUploadBytes,
	}

	authed := r.Group("", middleware.AuthMiddleware(jwtService))
	authed.POST(RouteProfileImage, mc.UploadProfileImageHandler)
	authed.DELETE(RouteProfileImage, mc.RemoveProfileImageHandler)
	authed.POST(RouteCoverImage, mc.UploadCoverImageHandler)
	authed.DELETE(RouteCoverImage, mc.RemoveCoverImageHandler)

	return mc
}

func (mc *MediaController) UploadProfileImageHandler(c *gin.Context) {
	mc.upload(c, media.SlotProfile, "profile_image")
}

func (mc *MediaController) UploadCoverImageHandler(c *gin.Context) {
	mc.upload(c, media.SlotCover, "cover_image")
}

func (mc *MediaController) RemoveProfileImageHandler(c *gin.Context) {
	mc.remove(c, media.SlotProfile)
}

func (mc *MediaController) RemoveCoverImageHandler(c *gin.Context) {
	mc.remove(c, media.SlotCover)
}

func (mc *MediaController) upload(c *gin.Context, slot media.Slot, field string) {
	ok, userUUID := validator.IsUUID(c.GetString(middleware.CtxUserID))
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			gin.H{"error": "invalid token subject"},
		)
		return
	}

	fh, err := c.FormFile(field)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "validation failed",
			"details": map[string]string{field: "file is required"},
		})
		return
	}
	if fh.Size > mc.maxUploadBytes {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "validation failed",
			"details": map[string]string{field: "file exceeds the maximum allowed size"},
		})
		return
	}
	if !allowedUpload(fh) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "validation failed",
			"details": map[string]string{field: "file must be a jpeg or png image"},
		})
		return
	}

	data, err := readUpload(fh, mc.maxUploadBytes)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to read upload"},
		)
		mc.logger.Error("readUpload() error", zap.Error(err))
		return
	}

	u, err := mc.mediaService.ReplaceSlotImage(c.Request.Context(), userUUID, slot, data)
	if err != nil {
		mc.respondPipelineError(c, slot, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": slot.String() + " updated successfully",
		"user":    mc.toResponse(u),
	})
}

func (mc *MediaController) remove(c *gin.Context, slot media.Slot) {
	ok, userUUID := validator.IsUUID(c.GetString(middleware.CtxUserID))
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			gin.H{"error": "invalid token subject"},
		)
		return
	}

	u, err := mc.mediaService.RemoveSlotImage(c.Request.Context(), userUUID, slot)
	if err != nil {
		mc.respondPipelineError(c, slot, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": slot.String() + " removed successfully",
		"user":    mc.toResponse(u),
	})
}

func (mc *MediaController) respondPipelineError(c *gin.Context, slot media.Slot, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case errors.Is(err, media.ErrUnsupportedFormat):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "unsupported image format"})
	case errors.Is(err, media.ErrDecode):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "file is not a valid image"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process image"})
		mc.logger.Error("media pipeline error", zap.Error(err), zap.Stringer("slot", slot))
	}
}

func (mc *MediaController) toResponse(u *domain.User) userDTO.User {
	return userDTO.ToResponseUser(*u, userDTO.ImageURLs{
		Profile: mc.mediaService.PublicURL(u.ProfileImageKey, u.Name, media.SlotProfile),
		Cover:   mc.mediaService.PublicURL(u.CoverImageKey, u.Name, media.SlotCover),
	})
}

// allowedUpload checks extension and declared content type only; the real
// format check happens at decode time inside the pipeline.
func allowedUpload(fh *multipart.FileHeader) bool {
	switch strings.ToLower(filepath.Ext(fh.Filename)) {
	case ".jpg", ".jpeg", ".png":
	default:
		return false
	}
	switch fh.Header.Get("Content-Type") {
	case "image/jpeg", "image/png", "image/jpg":
		return true
	}
	return false
}

func readUpload(fh *multipart.FileHeader, limit int64) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(io.LimitReader(f, limit+1))
}

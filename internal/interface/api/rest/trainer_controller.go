package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fitness-platform-api/internal/application/ports"
	"fitness-platform-api/internal/domain/media"
	trainerDTO "fitness-platform-api/internal/interface/api/rest/dto/trainer"
)

type TrainerController struct {
	logger         *zap.Logger
	trainerService ports.TrainerService
	mediaService   ports.MediaService
}

func NewTrainerController(
	r *gin.Engine,
	logger *zap.Logger,
	trainerService ports.TrainerService,
	mediaService ports.MediaService,
) *TrainerController {
	tc := &TrainerController{
		logger:         logger,
		trainerService: trainerService,
		mediaService:   mediaService,
	}

	r.GET(RouteFeaturedTrainers, tc.FeaturedHandler)

	return tc
}

func (tc *TrainerController) FeaturedHandler(c *gin.Context) {
	featured, err := tc.trainerService.FeaturedTrainers(c.Request.Context())
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get featured trainers"},
		)
		tc.logger.Error("FeaturedTrainers() error", zap.Error(err))
		return
	}

	resolve := func(profileKey, coverKey *string, displayName string) (string, string) {
		return tc.mediaService.PublicURL(profileKey, displayName, media.SlotProfile),
			tc.mediaService.PublicURL(coverKey, displayName, media.SlotCover)
	}

	c.JSON(http.StatusOK, trainerDTO.ResponseData{
		Trainers: trainerDTO.ToResponseFeatured(featured, resolve),
	})
}

package http_battle

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/happydoodle/core/internal/delivery/http/common"
	"github.com/happydoodle/core/internal/model"
	usecase_battle "github.com/happydoodle/core/internal/usecase/battle"
)

// Battle images are small stitched PNGs; anything bigger is not ours.
const maxUploadBytes = 8 << 20

type Controller struct {
	uc     *usecase_battle.Usecase
	logger *slog.Logger
}

func New(uc *usecase_battle.Usecase) *Controller {
	return &Controller{
		uc:     uc,
		logger: slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	battles := router.Group("/room/:room_id/battles")
	battles.POST("", c.publish)
	battles.GET("/latest", c.latest)
}

type PublishResponseDTO struct {
	URL string `json:"url"`
}

// publish accepts the stitched PNG body, stores it, and returns the
// public link. A failed upload is a single error to the caller; the
// client does not retry.
func (c *Controller) publish(ctx *gin.Context) {
	roomID := model.RoomID(ctx.Param("room_id"))

	content, err := io.ReadAll(io.LimitReader(ctx.Request.Body, maxUploadBytes))
	if err != nil || len(content) == 0 {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "missing image body",
		})
		return
	}

	url, err := c.uc.Publish(ctx, roomID, content)
	if err != nil {
		c.logger.Error("failed to publish battle", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "upload failed",
		})
		return
	}

	ctx.JSON(http.StatusOK, PublishResponseDTO{URL: url})
}

type LatestResponseDTO struct {
	URL string `json:"url"`
}

func (c *Controller) latest(ctx *gin.Context) {
	roomID := model.RoomID(ctx.Param("room_id"))

	url := c.uc.LatestLink(ctx, roomID)
	if url == "" {
		ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
			Message: "not found",
		})
		return
	}

	ctx.JSON(http.StatusOK, LatestResponseDTO{URL: url})
}

package http_room

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/happydoodle/core/internal/delivery/http/common"
	"github.com/happydoodle/core/internal/model"
	usecase_room "github.com/happydoodle/core/internal/usecase/room"
	qrcode "github.com/skip2/go-qrcode"
)

type Controller struct {
	usecase *usecase_room.Usecase
	// baseURL overrides the request origin when non-empty.
	baseURL string
	logger  *slog.Logger
}

func New(usecase *usecase_room.Usecase, baseURL string) *Controller {
	return &Controller{
		usecase: usecase,
		baseURL: baseURL,
		logger:  slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	rooms := router.Group("/room")
	{
		rooms.POST("", c.create)
		rooms.GET("/:room_id", c.get)
		rooms.PUT("/:room_id/prompt", c.setPrompt)
		rooms.GET("/:room_id/qr", c.qr)
	}
}

type CreateResponseDTO struct {
	ID          string `json:"id"`
	JoinURL     string `json:"joinUrl"`
	SpectateURL string `json:"spectateUrl"`
}

// create allocates a room and returns the two shareable URLs built on
// the origin that handled this request.
func (c *Controller) create(ctx *gin.Context) {
	base := http_common.RequestBase(c.baseURL, ctx.Request.TLS != nil, ctx.Request.Host)

	links, err := c.usecase.Create(ctx, base)
	if err != nil {
		c.logger.Error("failed to create room", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, CreateResponseDTO{
		ID:          string(links.ID),
		JoinURL:     links.JoinURL,
		SpectateURL: links.SpectateURL,
	})
}

type RoomResponseDTO struct {
	ID     string `json:"id"`
	Prompt string `json:"prompt"`
}

func (c *Controller) get(ctx *gin.Context) {
	roomID := model.RoomID(ctx.Param("room_id"))

	prompt, err := c.usecase.Prompt(ctx, roomID)
	if err != nil {
		if errors.Is(err, usecase_room.ErrResourceNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Message: "not found",
			})
			return
		}
		c.logger.Error("failed to get room", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	ctx.JSON(http.StatusOK, RoomResponseDTO{
		ID:     string(roomID),
		Prompt: prompt,
	})
}

type SetPromptRequestDTO struct {
	Prompt string `json:"prompt" binding:"required"`
}

// setPrompt persists the prompt a drawer picked at round start.
func (c *Controller) setPrompt(ctx *gin.Context) {
	roomID := model.RoomID(ctx.Param("room_id"))

	var req SetPromptRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	if err := c.usecase.SetPrompt(ctx, roomID, req.Prompt); err != nil {
		if errors.Is(err, usecase_room.ErrResourceNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Message: "not found",
			})
			return
		}
		c.logger.Error("failed to set prompt", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// qr renders the join or spectate link as a PNG QR code, the same two
// codes the landing page shows.
func (c *Controller) qr(ctx *gin.Context) {
	roomID := model.RoomID(ctx.Param("room_id"))
	base := http_common.RequestBase(c.baseURL, ctx.Request.TLS != nil, ctx.Request.Host)

	links := usecase_room.BuildLinks(base, roomID)

	url := links.JoinURL
	if ctx.Query("kind") == "vote" {
		url = links.SpectateURL
	}

	png, err := qrcode.Encode(url, qrcode.Medium, 192)
	if err != nil {
		c.logger.Error("failed to encode qr", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	ctx.Data(http.StatusOK, "image/png", png)
}

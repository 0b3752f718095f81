package http_vote

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/happydoodle/core/internal/delivery/http/common"
	"github.com/happydoodle/core/internal/model"
	usecase_vote "github.com/happydoodle/core/internal/usecase/vote"
)

type Controller struct {
	uc *usecase_vote.Usecase

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_vote.Usecase, opts ...ControllerOption) *Controller {
	c := &Controller{
		uc:     uc,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	votes := router.Group("/room/:room_id/votes")
	votes.GET("", c.tally)
	votes.POST("", c.cast)
}

type TallyResponseDTO struct {
	Left  int `json:"left"`
	Right int `json:"right"`
}

// tally is the initial full read a client performs before it starts
// counting insert events on its own.
func (c *Controller) tally(ctx *gin.Context) {
	roomID := model.RoomID(ctx.Param("room_id"))

	counts, err := c.uc.Tally(ctx, roomID)
	if err != nil {
		c.logger.Error("failed to load tally", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	ctx.JSON(http.StatusOK, TallyResponseDTO{
		Left:  counts.Left,
		Right: counts.Right,
	})
}

type CastRequestDTO struct {
	Voter string `json:"voter" binding:"required"`
	Side  string `json:"side" binding:"required"`
}

type CastResponseDTO struct {
	// Seen reports whether this voter key had already cast in the room.
	// Advisory only: the upsert already kept the count idempotent.
	Seen bool `json:"seen"`
}

func (c *Controller) cast(ctx *gin.Context) {
	roomID := model.RoomID(ctx.Param("room_id"))

	var req CastRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	seen, err := c.uc.Cast(ctx, model.Vote{
		RoomID:   roomID,
		VoterKey: req.Voter,
		Side:     model.Side(req.Side),
	})
	if err != nil {
		if errors.Is(err, usecase_vote.ErrInvalidSide) {
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Message: "side must be left or right",
			})
			return
		}
		c.logger.Error("failed to cast vote", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	ctx.JSON(http.StatusOK, CastResponseDTO{Seen: seen})
}

package ws_room

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/happydoodle/core/internal/model"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Join links are opened from phones on whatever origin scanned the
	// QR code; the room id in the URL is the only admission check.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type Controller struct {
	hub    *Hub
	logger *slog.Logger
}

func NewController(hub *Hub) *Controller {
	return &Controller{
		hub:    hub,
		logger: slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/ws/room/:room_id", c.subscribe)
}

func (c *Controller) subscribe(ctx *gin.Context) {
	roomID := model.RoomID(ctx.Param("room_id"))

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		c.logger.Error("websocket upgrade failed", slog.String("error", err.Error()))
		return
	}

	client := &Client{
		Hub:    c.hub,
		Conn:   conn,
		Send:   make(chan []byte, 64),
		RoomID: roomID,
	}

	c.hub.RegisterClient(client)
	go c.hub.StartClientWriting(client)
	go c.hub.StartClientReading(client)
}

package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	ws_room "github.com/happydoodle/core/internal/delivery/ws/room"
	"github.com/happydoodle/core/internal/model"
)

// Client talks to the service's HTTP surface.
type Client struct {
	base string
	http *http.Client
}

func NewClient(base string) *Client {
	return &Client{
		base: strings.TrimSuffix(base, "/"),
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Tally(ctx context.Context, roomID model.RoomID) (model.Tally, error) {
	var out struct {
		Left  int `json:"left"`
		Right int `json:"right"`
	}
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/room/%s/votes", roomID), nil, &out)
	if err != nil {
		return model.Tally{}, err
	}
	return model.Tally{Left: out.Left, Right: out.Right}, nil
}

func (c *Client) Cast(ctx context.Context, vote model.Vote) error {
	in := map[string]string{
		"voter": vote.VoterKey,
		"side":  string(vote.Side),
	}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/api/room/%s/votes", vote.RoomID), in, nil)
}

func (c *Client) Prompt(ctx context.Context, roomID model.RoomID) (string, error) {
	var out struct {
		Prompt string `json:"prompt"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/room/%s", roomID), nil, &out); err != nil {
		return "", err
	}
	return out.Prompt, nil
}

func (c *Client) SetPrompt(ctx context.Context, roomID model.RoomID, prompt string) error {
	in := map[string]string{"prompt": prompt}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/room/%s/prompt", roomID), in, nil)
}

func (c *Client) Publish(ctx context.Context, roomID model.RoomID, png []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.base+fmt.Sprintf("/api/room/%s/battles", roomID), bytes.NewReader(png))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "image/png")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("upload failed: %s", resp.Status)
	}

	var out struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.URL, nil
}

// CreateRoom hits the room-allocation endpoint; used by the CLI host.
func (c *Client) CreateRoom(ctx context.Context) (id, joinURL, spectateURL string, err error) {
	var out struct {
		ID          string `json:"id"`
		JoinURL     string `json:"joinUrl"`
		SpectateURL string `json:"spectateUrl"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/room", nil, &out); err != nil {
		return "", "", "", err
	}
	return out.ID, out.JoinURL, out.SpectateURL, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr struct {
			Message string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Message != "" {
			return fmt.Errorf("%s %s: %s", method, path, apiErr.Message)
		}
		return fmt.Errorf("%s %s: %s", method, path, resp.Status)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// WSChannel subscribes to a room's broadcast channel over websocket.
type WSChannel struct {
	conn *websocket.Conn

	mu     sync.Mutex
	closed bool
}

// DialChannel connects and pumps every inbound frame into onFrame
// until the connection drops or Close is called.
func DialChannel(ctx context.Context, wsURL string, onFrame func([]byte)) (*WSChannel, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return nil, err
	}

	ch := &WSChannel{conn: conn}
	go func() {
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			onFrame(data)
		}
	}()
	return ch, nil
}

func (ch *WSChannel) Publish(event ws_room.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	ch.mu.Lock()
	defer ch.mu.Unlock()
	if ch.closed {
		return websocket.ErrCloseSent
	}
	return ch.conn.WriteMessage(websocket.TextMessage, data)
}

func (ch *WSChannel) Close() error {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	if ch.closed {
		return nil
	}
	ch.closed = true
	return ch.conn.Close()
}

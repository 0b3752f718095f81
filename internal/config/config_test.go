package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetenvDefaults(t *testing.T) {
	t.Setenv("HTTP_PORT", "")

	assert.Equal(t, "8080", newHTTP().Port)

	t.Setenv("HTTP_PORT", "9090")
	assert.Equal(t, "9090", newHTTP().Port)
}

func TestGameDefaults(t *testing.T) {
	t.Setenv("ROUND_DURATION", "")
	t.Setenv("ROUND_POLL_INTERVAL", "")
	t.Setenv("BASE_URL", "")

	game := newGame()

	assert.Equal(t, 30*time.Second, game.RoundDuration)
	assert.Equal(t, 200*time.Millisecond, game.PollInterval)
	assert.Empty(t, game.BaseURL)
}

func TestGameOverrides(t *testing.T) {
	t.Setenv("ROUND_DURATION", "45s")
	t.Setenv("ROUND_POLL_INTERVAL", "1s")
	t.Setenv("BASE_URL", "https://doodle.example.com")

	game := newGame()

	assert.Equal(t, 45*time.Second, game.RoundDuration)
	assert.Equal(t, time.Second, game.PollInterval)
	assert.Equal(t, "https://doodle.example.com", game.BaseURL)
}

func TestBadDurationFallsBack(t *testing.T) {
	t.Setenv("ROUND_DURATION", "soon")

	assert.Equal(t, 30*time.Second, newGame().RoundDuration)
}

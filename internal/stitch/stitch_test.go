package stitch

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/happydoodle/core/internal/canvas"
	"github.com/happydoodle/core/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeDimensions(t *testing.T) {
	left := canvas.New(420, 300)
	right := canvas.New(420, 300)

	data, err := Compose(left.Image(), right.Image(), Battle{
		RoomID: "7f9c2ba4-e88f-4a0b-a249-77f395b2d8f1",
		Prompt: "A cat surfing",
		Counts: model.Tally{Left: 3, Right: 1},
		Winner: model.WinnerLeft,
	})
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, 420*2+gap+pad*2, img.Bounds().Dx())
	assert.Equal(t, 300+pad*2+banner, img.Bounds().Dy())
}

func TestComposeClampsSmallSurfaces(t *testing.T) {
	left := canvas.New(100, 80)
	right := canvas.New(100, 80)

	data, err := Compose(left.Image(), right.Image(), Battle{RoomID: "room"})
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, minWidth*2+gap+pad*2, img.Bounds().Dx())
	assert.Equal(t, minHeight+pad*2+banner, img.Bounds().Dy())
}

func TestComposePaintsBannerAndBackground(t *testing.T) {
	left := canvas.New(320, 240)
	right := canvas.New(320, 240)

	data, err := Compose(left.Image(), right.Image(), Battle{RoomID: "room"})
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	r, g, b, _ := img.At(2, 2).RGBA()
	assert.Zero(t, r)
	assert.Zero(t, g)
	assert.Zero(t, b)

	r, g, b, _ = img.At(2, banner+2).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), g)
	assert.Equal(t, uint32(0xffff), b)
}

func TestFooterLine(t *testing.T) {
	testCases := []struct {
		name     string
		counts   model.Tally
		winner   model.Winner
		expected string
	}{
		{
			name:     "left wins",
			counts:   model.Tally{Left: 3, Right: 1},
			winner:   model.WinnerLeft,
			expected: "Votes • Left 3 vs Right 1 — LEFT wins!",
		},
		{
			name:     "right wins",
			counts:   model.Tally{Left: 1, Right: 4},
			winner:   model.WinnerRight,
			expected: "Votes • Left 1 vs Right 4 — RIGHT wins!",
		},
		{
			name:     "tie",
			counts:   model.Tally{Left: 2, Right: 2},
			winner:   model.WinnerTie,
			expected: "Votes • Left 2 vs Right 2 — Tie!",
		},
		{
			name:     "no verdict before the round ends",
			counts:   model.Tally{Left: 1},
			winner:   model.WinnerNone,
			expected: "Votes • Left 1 vs Right 0",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, footerLine(tc.counts, tc.winner))
		})
	}
}

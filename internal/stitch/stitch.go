// Package stitch composes the shareable battle image: banner, both
// drawings side by side, footer with the vote verdict.
package stitch

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/fogleman/gg"
	"github.com/happydoodle/core/internal/model"
)

const (
	gap    = 16
	pad    = 16
	banner = 56

	minWidth  = 320
	minHeight = 240
)

type Battle struct {
	RoomID model.RoomID
	Prompt string
	Counts model.Tally
	Winner model.Winner
}

// Compose rasterizes both surfaces plus banner and footer into one PNG.
func Compose(left, right image.Image, b Battle) ([]byte, error) {
	w := left.Bounds().Dx()
	h := left.Bounds().Dy()
	if w < minWidth {
		w = minWidth
	}
	if h < minHeight {
		h = minHeight
	}

	totalW := w*2 + gap + pad*2
	totalH := h + pad*2 + banner

	dc := gg.NewContext(totalW, totalH)

	// background
	dc.SetHexColor("#ffffff")
	dc.Clear()

	// banner
	dc.SetHexColor("#000000")
	dc.DrawRectangle(0, 0, float64(totalW), banner)
	dc.Fill()
	dc.SetHexColor("#ffffff")
	title := b.Prompt
	if title == "" {
		title = "Doodle Duel"
	}
	dc.DrawStringAnchored(
		fmt.Sprintf("Happy Doodle • %s • Room %s", title, b.RoomID.Short()),
		float64(totalW)/2, banner/2, 0.5, 0.5)

	// art
	dc.DrawImage(left, pad, banner+pad)
	dc.DrawImage(right, pad+w+gap, banner+pad)

	// footer
	dc.SetHexColor("#333333")
	dc.DrawStringAnchored(footerLine(b.Counts, b.Winner),
		float64(totalW)/2, float64(banner+pad+h+12), 0.5, 0.5)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func footerLine(counts model.Tally, winner model.Winner) string {
	line := fmt.Sprintf("Votes • Left %d vs Right %d", counts.Left, counts.Right)
	if v := verdict(winner); v != "" {
		line += " — " + v
	}
	return line
}

func verdict(winner model.Winner) string {
	switch winner {
	case model.WinnerNone:
		return ""
	case model.WinnerTie:
		return "Tie!"
	default:
		return strings.ToUpper(string(winner)) + " wins!"
	}
}

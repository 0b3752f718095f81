// Package canvas is the in-memory drawing surface a session paints on.
// It mirrors the 2D canvas the drawers see: round caps and joins,
// strokes applied as polylines.
package canvas

import (
	"image"

	"github.com/fogleman/gg"
	"github.com/happydoodle/core/internal/model"
)

const (
	// Default CSS-pixel surface size; the original clamps to at least
	// 320x240 when stitching.
	DefaultWidth  = 420
	DefaultHeight = 300
)

type Canvas struct {
	dc     *gg.Context
	width  int
	height int
}

func New(width, height int) *Canvas {
	c := &Canvas{
		dc:     gg.NewContext(width, height),
		width:  width,
		height: height,
	}
	c.Clear()
	return c
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

func (c *Canvas) Clear() {
	c.dc.SetHexColor("#ffffff")
	c.dc.Clear()
}

// ApplyStroke renders a full stroke at once, the way remote subscribers
// do on receipt of a broadcast.
func (c *Canvas) ApplyStroke(s model.Stroke) {
	c.drawPath(s.Path, s.Color, s.Width)
}

// ApplySegment renders only the tail of an in-progress gesture, used
// for low-latency local echo while the pointer moves.
func (c *Canvas) ApplySegment(path []model.Point, color string, width float64) {
	if len(path) > 2 {
		path = path[len(path)-2:]
	}
	c.drawPath(path, color, width)
}

func (c *Canvas) drawPath(path []model.Point, color string, width float64) {
	if len(path) == 0 {
		return
	}
	c.dc.SetHexColor(color)

	// A zero-length path strokes as nothing, so a down-then-up tap
	// gets a filled dot instead.
	if len(path) == 1 {
		c.dc.DrawCircle(path[0].X, path[0].Y, width/2)
		c.dc.Fill()
		return
	}

	c.dc.SetLineWidth(width)
	c.dc.SetLineCapRound()
	c.dc.SetLineJoinRound()

	c.dc.MoveTo(path[0].X, path[0].Y)
	for _, p := range path[1:] {
		c.dc.LineTo(p.X, p.Y)
	}
	c.dc.Stroke()
}

func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

package model

import "time"

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Stroke is one continuous pointer-down-to-pointer-up gesture.
// It exists only as a broadcast message and is never persisted.
type Stroke struct {
	Side  Side    `json:"side"`
	Path  []Point `json:"path"`
	Color string  `json:"color"`
	Width float64 `json:"width"`
}

// Round is carried in a round_start broadcast. Every client derives
// remaining time from Until against its own clock; there is no
// server-side authority on round state.
type Round struct {
	Prompt string
	Until  time.Time
}

func (r Round) Remaining(now time.Time) time.Duration {
	if d := r.Until.Sub(now); d > 0 {
		return d
	}
	return 0
}

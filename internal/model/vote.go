package model

type Side string

const (
	SideLeft      Side = "left"
	SideRight     Side = "right"
	SideSpectator Side = "spectator"
)

// IsDrawer reports whether this side owns a drawing surface.
func (s Side) IsDrawer() bool {
	return s == SideLeft || s == SideRight
}

type Vote struct {
	RoomID   RoomID
	VoterKey string
	Side     Side
}

type Tally struct {
	Left  int
	Right int
}

func (t Tally) Total() int {
	return t.Left + t.Right
}

// Percentages as shown next to the live bar: left is rounded,
// right takes the remainder so the two always sum to 100.
func (t Tally) Percentages() (left, right int) {
	total := t.Total()
	if total == 0 {
		return 0, 0
	}
	left = int(float64(t.Left)/float64(total)*100 + 0.5)
	return left, 100 - left
}

type Winner string

const (
	WinnerLeft  Winner = "left"
	WinnerRight Winner = "right"
	WinnerTie   Winner = "tie"
	WinnerNone  Winner = ""
)

// Verdict compares whatever counts the caller has observed so far.
// It is not an authoritative result; two clients with different
// snapshots may disagree.
func (t Tally) Verdict() Winner {
	switch {
	case t.Left > t.Right:
		return WinnerLeft
	case t.Right > t.Left:
		return WinnerRight
	default:
		return WinnerTie
	}
}

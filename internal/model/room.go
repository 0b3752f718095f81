package model

type RoomID string

const EmptyRoomID RoomID = ""

// Short form used in banners and headings ("Room 1a2b3c4d").
func (id RoomID) Short() string {
	s := string(id)
	if len(s) > 8 {
		return s[:8]
	}
	return s
}

type Room struct {
	ID     RoomID
	Prompt string
}

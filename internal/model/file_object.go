package model

type FileObject interface {
	GetFilename() string
	GetParent() string
	GetContent() []byte
}

// Snapshot is a stitched battle image headed for object storage.
type Snapshot struct {
	Filename string
	Content  []byte

	RoomID string
}

func (s Snapshot) GetFilename() string {
	return s.Filename
}

func (s Snapshot) GetContent() []byte {
	return s.Content
}

func (s Snapshot) GetParent() string {
	return s.RoomID
}

package usecase_battle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/happydoodle/core/internal/model"
)

var ErrUploadFailed = errors.New("battle upload failed")

//go:generate mockery --name=SnapshotRepository --output=./mocks/repository --filename=repository.go
type SnapshotRepository interface {
	Save(ctx context.Context, obj model.FileObject) (string, error)
	PublicURL(key string) string
}

// LinkCache remembers the most recent battle link per room.
type LinkCache interface {
	Set(ctx context.Context, roomID model.RoomID, url string, ttl time.Duration) error
	Get(ctx context.Context, roomID model.RoomID) (string, error)
}

const linkTTL = 24 * time.Hour

type Usecase struct {
	snapshots SnapshotRepository
	links     LinkCache

	now func() time.Time
}

type Option func(*Usecase)

// WithNow overrides the timestamp source used in filenames.
func WithNow(now func() time.Time) Option {
	return func(u *Usecase) { u.now = now }
}

func New(snapshots SnapshotRepository, links LinkCache, opts ...Option) *Usecase {
	u := &Usecase{
		snapshots: snapshots,
		links:     links,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Publish uploads a stitched battle PNG under a unique room+timestamp
// name and returns its durable public URL. One attempt, no retry.
func (u *Usecase) Publish(ctx context.Context, roomID model.RoomID, content []byte) (string, error) {
	snapshot := model.Snapshot{
		Filename: fmt.Sprintf("battle-%s-%d.png", roomID, u.now().UnixMilli()),
		Content:  content,
		RoomID:   string(roomID),
	}

	key, err := u.snapshots.Save(ctx, snapshot)
	if err != nil {
		return "", errors.Join(ErrUploadFailed, err)
	}

	url := u.snapshots.PublicURL(key)

	// Best effort; a cold cache only means no "latest battle" shortcut.
	_ = u.links.Set(ctx, roomID, url, linkTTL)

	return url, nil
}

// LatestLink returns the most recently published link for a room, or
// empty when none is cached.
func (u *Usecase) LatestLink(ctx context.Context, roomID model.RoomID) string {
	url, err := u.links.Get(ctx, roomID)
	if err != nil {
		return ""
	}
	return url
}

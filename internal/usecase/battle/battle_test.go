package usecase_battle

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/happydoodle/core/internal/infra/s3mock"
	"github.com/happydoodle/core/internal/model"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type UsecaseBattleUnitSuite struct {
	suite.Suite
}

type fakeLinkCache struct {
	links   map[model.RoomID]string
	failing bool
}

func newFakeLinkCache() *fakeLinkCache {
	return &fakeLinkCache{links: make(map[model.RoomID]string)}
}

func (c *fakeLinkCache) Set(_ context.Context, roomID model.RoomID, url string, _ time.Duration) error {
	if c.failing {
		return errors.New("cache down")
	}
	c.links[roomID] = url
	return nil
}

func (c *fakeLinkCache) Get(_ context.Context, roomID model.RoomID) (string, error) {
	if c.failing {
		return "", errors.New("cache down")
	}
	return c.links[roomID], nil
}

type failingSnapshots struct{}

func (failingSnapshots) Save(context.Context, model.FileObject) (string, error) {
	return "", errors.New("no space left")
}

func (failingSnapshots) PublicURL(key string) string { return key }

func (s *UsecaseBattleUnitSuite) TestPublish(t provider.T) {
	roomID := model.RoomID("7f9c2ba4-e88f-4a0b-a249-77f395b2d8f1")
	at := time.UnixMilli(1756723200000)

	t.Run("Should store the image under a room and timestamp name", func(t provider.T) {
		storage := s3mock.New()
		cache := newFakeLinkCache()
		uc := New(storage, cache, WithNow(func() time.Time { return at }))
		content := []byte("png bytes")

		url, err := uc.Publish(context.Background(), roomID, content)

		assert.NoError(t, err)
		wantKey := fmt.Sprintf("battles/battle-%s-%d.png", roomID, at.UnixMilli())
		assert.Equal(t, "https://happydoodle.local/"+wantKey, url)

		stored, ok := storage.Object(wantKey)
		assert.True(t, ok)
		assert.Equal(t, content, stored)
	})

	t.Run("Should remember the link for the room", func(t provider.T) {
		storage := s3mock.New()
		cache := newFakeLinkCache()
		uc := New(storage, cache, WithNow(func() time.Time { return at }))

		url, err := uc.Publish(context.Background(), roomID, []byte("png bytes"))

		assert.NoError(t, err)
		assert.Equal(t, url, uc.LatestLink(context.Background(), roomID))
	})

	t.Run("Should succeed even when the link cache fails", func(t provider.T) {
		storage := s3mock.New()
		cache := newFakeLinkCache()
		cache.failing = true
		uc := New(storage, cache)

		url, err := uc.Publish(context.Background(), roomID, []byte("png bytes"))

		assert.NoError(t, err)
		assert.NotEmpty(t, url)
	})

	t.Run("Should return upload error when storage fails", func(t provider.T) {
		uc := New(failingSnapshots{}, newFakeLinkCache())

		_, err := uc.Publish(context.Background(), roomID, []byte("png bytes"))

		assert.ErrorIs(t, err, ErrUploadFailed)
	})
}

func (s *UsecaseBattleUnitSuite) TestLatestLink(t provider.T) {
	roomID := model.RoomID("7f9c2ba4-e88f-4a0b-a249-77f395b2d8f1")

	t.Run("Should return empty when nothing was published", func(t provider.T) {
		uc := New(s3mock.New(), newFakeLinkCache())

		assert.Empty(t, uc.LatestLink(context.Background(), roomID))
	})

	t.Run("Should return empty when the cache errors", func(t provider.T) {
		cache := newFakeLinkCache()
		cache.failing = true
		uc := New(s3mock.New(), cache)

		assert.Empty(t, uc.LatestLink(context.Background(), roomID))
	})
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseBattleUnitSuite))
}

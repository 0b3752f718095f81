package usecase_room

import (
	"context"
	"errors"
	"strings"

	"github.com/happydoodle/core/internal/model"
)

var (
	ErrInternal         = errors.New("internal error")
	ErrResourceNotFound = errors.New("no such resource")
)

//go:generate mockery --name=RoomRepository --output=./mocks/repository --filename=repository.go
type RoomRepository interface {
	Create(ctx context.Context) (model.RoomID, error)
	PromptByID(ctx context.Context, roomID model.RoomID) (string, error)
	SetPrompt(ctx context.Context, roomID model.RoomID, prompt string) error
}

type Usecase struct {
	RoomRepository RoomRepository
}

func New(
	RoomRepository RoomRepository,
) *Usecase {
	return &Usecase{
		RoomRepository: RoomRepository,
	}
}

// Links is what room creation hands back: the drawer URL and the
// audience URL, both on the origin that served the request.
type Links struct {
	ID          model.RoomID
	JoinURL     string
	SpectateURL string
}

func BuildLinks(base string, roomID model.RoomID) Links {
	base = strings.TrimSuffix(base, "/")
	return Links{
		ID:          roomID,
		JoinURL:     base + "/room/" + string(roomID),
		SpectateURL: base + "/vote/" + string(roomID),
	}
}

// Create allocates one empty room row and builds its shareable URLs.
// No retry: an insert failure surfaces straight to the caller.
func (u *Usecase) Create(ctx context.Context, base string) (Links, error) {
	roomID, err := u.RoomRepository.Create(ctx)
	if err != nil {
		return Links{}, errors.Join(ErrInternal, err)
	}
	return BuildLinks(base, roomID), nil
}

func (u *Usecase) Prompt(ctx context.Context, roomID model.RoomID) (string, error) {
	prompt, err := u.RoomRepository.PromptByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return "", ErrResourceNotFound
		}
		return "", errors.Join(ErrInternal, err)
	}
	return prompt, nil
}

// SetPrompt persists the prompt chosen at round start onto the room
// record. The room row is never mutated for any other reason.
func (u *Usecase) SetPrompt(ctx context.Context, roomID model.RoomID, prompt string) error {
	err := u.RoomRepository.SetPrompt(ctx, roomID, prompt)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return ErrResourceNotFound
		}
		return errors.Join(ErrInternal, err)
	}
	return nil
}

package usecase_vote

import (
	"context"
	"errors"

	"github.com/happydoodle/core/internal/model"
)

var (
	ErrInternal    = errors.New("internal error")
	ErrInvalidSide = errors.New("side must be left or right")
)

//go:generate mockery --name=VoteRepository --output=./mocks/repository --filename=repository.go
type VoteRepository interface {
	ListByRoom(ctx context.Context, roomID model.RoomID) ([]model.Vote, error)
	Upsert(ctx context.Context, vote model.Vote) error
}

// VoterSet remembers which voter keys a room has seen. Advisory: the
// postgres upsert is the actual one-vote-per-device mechanism.
//
//go:generate mockery --name=VoterSet --output=./mocks/voterset --filename=voterset.go
type VoterSet interface {
	Add(ctx context.Context, roomID model.RoomID, voterKey string) (seen bool, err error)
}

// Notifier pushes a vote_insert event to the room's subscribers.
//
//go:generate mockery --name=Notifier --output=./mocks/notifier --filename=notifier.go
type Notifier interface {
	NotifyVoteInsert(roomID model.RoomID, side model.Side)
}

type Usecase struct {
	voteRepository VoteRepository
	voterSet       VoterSet
	notifier       Notifier
}

func New(
	r VoteRepository,
	voterSet VoterSet,
	notifier Notifier,
) *Usecase {
	return &Usecase{
		voteRepository: r,
		voterSet:       voterSet,
		notifier:       notifier,
	}
}

// Tally fetches all vote rows for the room and partitions them by side.
func (u *Usecase) Tally(ctx context.Context, roomID model.RoomID) (model.Tally, error) {
	votes, err := u.voteRepository.ListByRoom(ctx, roomID)
	if err != nil {
		return model.Tally{}, errors.Join(ErrInternal, err)
	}

	var tally model.Tally
	for _, v := range votes {
		switch v.Side {
		case model.SideLeft:
			tally.Left++
		case model.SideRight:
			tally.Right++
		}
	}
	return tally, nil
}

// Cast upserts the vote keyed by (room, voter) and notifies the room's
// subscribers.
//
// Subscribers always receive a plain vote_insert, including when the
// upsert overwrote an earlier vote by the same key. Live counters on
// clients therefore over-count changed votes until their next full
// load. Known gap, kept as-is.
func (u *Usecase) Cast(ctx context.Context, vote model.Vote) (seen bool, err error) {
	if vote.Side != model.SideLeft && vote.Side != model.SideRight {
		return false, ErrInvalidSide
	}

	if err := u.voteRepository.Upsert(ctx, vote); err != nil {
		return false, errors.Join(ErrInternal, err)
	}

	seen, err = u.voterSet.Add(ctx, vote.RoomID, vote.VoterKey)
	if err != nil {
		// Losing the advisory marker does not fail the cast.
		seen = false
	}

	u.notifier.NotifyVoteInsert(vote.RoomID, vote.Side)
	return seen, nil
}

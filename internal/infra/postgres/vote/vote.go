package infra_postgres_vote

import (
	"context"

	"github.com/happydoodle/core/internal/model"
	"github.com/jmoiron/sqlx"
)

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type voteDTO struct {
	RoomID    string `db:"room_id"`
	VoterHash string `db:"voter_hash"`
	VoteFor   string `db:"vote_for"`
}

// ListByRoom fetches every vote row for a room, in insertion order.
func (d *Driver) ListByRoom(ctx context.Context, roomID model.RoomID) ([]model.Vote, error) {
	var rows []voteDTO

	query := `
		SELECT room_id, voter_hash, vote_for
		FROM votes
		WHERE room_id = $1
		ORDER BY created_at
	`

	if err := d.db.SelectContext(ctx, &rows, query, string(roomID)); err != nil {
		return nil, err
	}

	votes := make([]model.Vote, 0, len(rows))
	for _, row := range rows {
		votes = append(votes, model.Vote{
			RoomID:   model.RoomID(row.RoomID),
			VoterKey: row.VoterHash,
			Side:     model.Side(row.VoteFor),
		})
	}
	return votes, nil
}

// Upsert writes a vote keyed by (room, voter), overwriting any prior
// side for that key. At most one row per pair ever exists.
func (d *Driver) Upsert(ctx context.Context, vote model.Vote) error {
	dto := voteDTO{
		RoomID:    string(vote.RoomID),
		VoterHash: vote.VoterKey,
		VoteFor:   string(vote.Side),
	}

	query := `
		INSERT INTO votes (room_id, voter_hash, vote_for)
		VALUES (:room_id, :voter_hash, :vote_for)
		ON CONFLICT (room_id, voter_hash)
		DO UPDATE SET vote_for = EXCLUDED.vote_for
	`

	_, err := d.db.NamedExecContext(ctx, query, dto)
	return err
}

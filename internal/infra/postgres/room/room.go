package infra_postgres_room

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/happydoodle/core/internal/model"
	usecase_room "github.com/happydoodle/core/internal/usecase/room"
	"github.com/jmoiron/sqlx"
)

type Driver struct {
	db *sqlx.DB
}

func New(
	db *sqlx.DB,
) *Driver {
	return &Driver{db: db}
}

type roomDTO struct {
	ID     uuid.UUID      `db:"id"`
	Prompt sql.NullString `db:"prompt_text"`
}

// Create inserts one empty room row and reads back its generated
// identifier.
func (d *Driver) Create(ctx context.Context) (model.RoomID, error) {
	var id uuid.UUID

	query := `
		INSERT INTO rooms DEFAULT VALUES
		RETURNING id
	`

	if err := d.db.GetContext(ctx, &id, query); err != nil {
		return model.EmptyRoomID, err
	}
	return model.RoomID(id.String()), nil
}

func (d *Driver) PromptByID(ctx context.Context, roomID model.RoomID) (string, error) {
	var room roomDTO

	query := `
        SELECT id, prompt_text
        FROM rooms
        WHERE id = $1
    `

	err := d.db.GetContext(ctx, &room, query, string(roomID))
	if err != nil {
		if err == sql.ErrNoRows {
			return "", usecase_room.ErrResourceNotFound
		}
		return "", err
	}

	return room.Prompt.String, nil
}

func (d *Driver) SetPrompt(ctx context.Context, roomID model.RoomID, prompt string) error {
	query := `
        UPDATE rooms
        SET prompt_text = $1
        WHERE id = $2
    `

	result, err := d.db.ExecContext(ctx, query, prompt, string(roomID))
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return usecase_room.ErrResourceNotFound
	}

	return nil
}

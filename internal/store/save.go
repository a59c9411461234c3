package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jsalter/cmi5quest/internal/player"
)

// ErrNoSave is returned by LoadPlayer when no game has been saved yet.
var ErrNoSave = player.ErrNoSave

// SaveRepo persists the single player save slot.
type SaveRepo interface {
	// SavePlayer writes the snapshot, replacing any previous save.
	SavePlayer(ctx context.Context, s *player.State) error

	// LoadPlayer reads the saved snapshot. Returns ErrNoSave if the
	// slot is empty.
	LoadPlayer(ctx context.Context) (*player.State, error)

	// SavedAt returns the time of the last save, or the zero time with
	// ErrNoSave if the slot is empty.
	SavedAt(ctx context.Context) (time.Time, error)

	// Reset clears the save slot.
	Reset(ctx context.Context) error
}

type saveRepo struct {
	db *sql.DB
}

func (r *saveRepo) SavePlayer(ctx context.Context, s *player.State) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal save: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO save_data (id, data, updated_at) VALUES (1, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (id) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP`,
		string(data))
	if err != nil {
		return fmt.Errorf("write save: %w", err)
	}
	return nil
}

func (r *saveRepo) LoadPlayer(ctx context.Context) (*player.State, error) {
	var data string
	err := r.db.QueryRowContext(ctx, `SELECT data FROM save_data WHERE id = 1`).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSave
	}
	if err != nil {
		return nil, fmt.Errorf("read save: %w", err)
	}

	var s player.State
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return nil, fmt.Errorf("decode save: %w", err)
	}
	return &s, nil
}

func (r *saveRepo) SavedAt(ctx context.Context) (time.Time, error) {
	var ts time.Time
	err := r.db.QueryRowContext(ctx, `SELECT updated_at FROM save_data WHERE id = 1`).Scan(&ts)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, ErrNoSave
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("read save time: %w", err)
	}
	return ts, nil
}

func (r *saveRepo) Reset(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM save_data`); err != nil {
		return fmt.Errorf("clear save: %w", err)
	}
	return nil
}

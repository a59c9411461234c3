package player

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// ErrNoSave marks an empty save slot. Persistence backends return it
// from LoadPlayer so callers can tell "no game yet" from a real fault.
var ErrNoSave = errors.New("no saved game")

// Saver persists player snapshots. The sqlite save repo implements it;
// tests use in-memory fakes.
type Saver interface {
	SavePlayer(ctx context.Context, s *State) error
}

// Autosave writes the current snapshot. Save failures are reported to
// stderr but never interrupt play; the next autosave retries with a
// fresh snapshot anyway.
func Autosave(ctx context.Context, repo Saver, s *State) {
	if repo == nil {
		return
	}
	if err := repo.SavePlayer(ctx, s); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to save game: %v\n", err)
	}
}

// Loader reads back a persisted snapshot.
type Loader interface {
	LoadPlayer(ctx context.Context) (*State, error)
}

// Load fetches the saved character. Loading fails soft: a missing or
// unreadable save is reported as absent so the caller falls back to a
// fresh game rather than crashing on a bad record.
func Load(ctx context.Context, repo Loader) (*State, bool) {
	if repo == nil {
		return nil, false
	}
	s, err := repo.LoadPlayer(ctx)
	if err != nil {
		if !errors.Is(err, ErrNoSave) {
			fmt.Fprintf(os.Stderr, "warning: failed to load save, starting fresh: %v\n", err)
		}
		return nil, false
	}
	return s, true
}

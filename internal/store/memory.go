// internal/store/memory.go
//
// In-memory record of finished Bagels games.
// Games live only as long as the process; nothing is written to disk.
//
// Characteristics:
//   - Stores *bagels.Game objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex.
//   - Saving a game again replaces the earlier record.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/novelties/internal/bagels"
)

// Store defines the record interface for finished games.
type Store interface {
	// Save persists or updates a game.
	Save(ctx context.Context, g *bagels.Game) error

	// Stats counts recorded games and wins.
	Stats(ctx context.Context) (played, won int, err error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex            // guards games
	games map[string]*bagels.Game // keyed by Game.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{games: make(map[string]*bagels.Game)}
}

func (m *memory) Save(ctx context.Context, g *bagels.Game) error {
	if g == nil || g.ID == "" {
		return errors.New("game id is required")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = g
	return nil
}

func (m *memory) Stats(ctx context.Context) (played, won int, err error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, g := range m.games {
		played++
		if g.Won {
			won++
		}
	}
	return played, won, nil
}

var _ bagels.Recorder = (*memory)(nil)

// Package persist saves and loads maze snapshots. A snapshot holds only
// what is needed to rebuild a level: the grid recipe, where each mover
// stands and which doors are still locked.
package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrSnapshotNotFound is returned by Load when no snapshot exists for the key.
var ErrSnapshotNotFound = errors.New("persist: snapshot not found")

// CellRef addresses a cell by ring and column.
type CellRef struct {
	Ring int `json:"ring"`
	Col  int `json:"col"`
}

// MoverState is one mover's saved position.
type MoverState struct {
	ID   uuid.UUID `json:"id"`
	Role string    `json:"role"`
	Name string    `json:"name,omitempty"`
	Cell CellRef   `json:"cell"`
	Keys int       `json:"keys,omitempty"`
}

// Snapshot is the saved state of a level.
type Snapshot struct {
	Rings       int          `json:"rings"`
	Seed        int64        `json:"seed"`
	Algorithm   string       `json:"algorithm"`
	Braid       float64      `json:"braid"`
	RemoveWalls float64      `json:"removeWalls"`
	Rooms       bool         `json:"rooms"`
	DoorCount   int          `json:"doorCount"`
	Tick        int          `json:"tick"`
	Movers      []MoverState `json:"movers"`
	Doors       [][2]CellRef `json:"doors"`
}

// Store keeps snapshots under string keys.
type Store interface {
	Save(ctx context.Context, key string, snap Snapshot) error
	Load(ctx context.Context, key string) (Snapshot, error)
}

// Encode serializes a snapshot.
func Encode(snap Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// Decode parses a snapshot produced by Encode.
func Decode(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	if snap.Rings < 1 {
		return Snapshot{}, fmt.Errorf("decode snapshot: invalid ring count %d", snap.Rings)
	}
	return snap, nil
}

package persist

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot() Snapshot {
	return Snapshot{
		Rings:       8,
		Seed:        42,
		Algorithm:   "backtracker",
		Braid:       1,
		RemoveWalls: 0.1,
		Rooms:       true,
		DoorCount:   2,
		Tick:        37,
		Movers: []MoverState{
			{ID: uuid.New(), Role: "player", Name: "player", Cell: CellRef{Ring: 2, Col: 5}, Keys: 1},
			{ID: uuid.New(), Role: "hostile", Name: "monster-1", Cell: CellRef{Ring: 6, Col: 40}},
		},
		Doors: [][2]CellRef{{{Ring: 3, Col: 1}, {Ring: 3, Col: 2}}},
	}
}

func TestFileStore_SaveLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "saves")
	store := NewFileStore(dir)
	ctx := context.Background()
	snap := sampleSnapshot()

	require.NoError(t, store.Save(ctx, "slot1", snap))
	_, err := os.Stat(filepath.Join(dir, "slot1.json"))
	require.NoError(t, err)

	got, err := store.Load(ctx, "slot1")
	require.NoError(t, err)
	assert.Equal(t, snap, got)

	snap.Tick = 99
	require.NoError(t, store.Save(ctx, "slot1", snap))
	got, err = store.Load(ctx, "slot1")
	require.NoError(t, err)
	assert.Equal(t, 99, got.Tick)
}

func TestFileStore_NotFound(t *testing.T) {
	store := NewFileStore(t.TempDir())
	_, err := store.Load(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestDecode_Rejects(t *testing.T) {
	_, err := Decode([]byte(`{"rings": 0}`))
	assert.Error(t, err)

	_, err = Decode([]byte(`not json`))
	assert.Error(t, err)
}

func TestRedisStore_Keys(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	defer client.Close()

	store := NewRedisStore(client, "maze:", 30)
	assert.Equal(t, "maze:slot", store.key("slot"))
	assert.Equal(t, 30*time.Second, store.ttl)
}

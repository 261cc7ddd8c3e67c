package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickDirectionNeverRepeats(t *testing.T) {
	prev := pickDirection("")
	for i := 0; i < 500; i++ {
		next := pickDirection(prev)
		require.NotEqual(t, prev, next)
		prev = next
	}
}

func TestPickDirectionFreshRoomAllowsAllFour(t *testing.T) {
	seen := make(map[Direction]bool)
	for i := 0; i < 500; i++ {
		seen[pickDirection("")] = true
	}
	assert.Len(t, seen, 4)
}

func TestHazardSpawnEdges(t *testing.T) {
	tests := []struct {
		dir   Direction
		check func(t *testing.T, pos Position)
	}{
		{DirUp, func(t *testing.T, pos Position) {
			assert.Equal(t, ArenaHeight, pos.Y)
			assert.GreaterOrEqual(t, pos.X, 0.0)
			assert.Less(t, pos.X, ArenaWidth)
		}},
		{DirDown, func(t *testing.T, pos Position) {
			assert.Equal(t, 0.0, pos.Y)
			assert.GreaterOrEqual(t, pos.X, 0.0)
			assert.Less(t, pos.X, ArenaWidth)
		}},
		{DirLeft, func(t *testing.T, pos Position) {
			assert.Equal(t, ArenaWidth, pos.X)
			assert.GreaterOrEqual(t, pos.Y, 0.0)
			assert.Less(t, pos.Y, ArenaHeight)
		}},
		{DirRight, func(t *testing.T, pos Position) {
			assert.Equal(t, 0.0, pos.X)
			assert.GreaterOrEqual(t, pos.Y, 0.0)
			assert.Less(t, pos.Y, ArenaHeight)
		}},
	}

	for _, tt := range tests {
		t.Run(string(tt.dir), func(t *testing.T) {
			for i := 0; i < 100; i++ {
				tt.check(t, hazardSpawn(tt.dir))
			}
		})
	}
}

func TestRandomSpawnPositionInsideMargins(t *testing.T) {
	for i := 0; i < 200; i++ {
		pos := randomSpawnPosition()
		assert.GreaterOrEqual(t, pos.X, spawnMargin)
		assert.LessOrEqual(t, pos.X, ArenaWidth-spawnMargin)
		assert.GreaterOrEqual(t, pos.Y, spawnMargin)
		assert.LessOrEqual(t, pos.Y, ArenaHeight-spawnMargin)
	}
}

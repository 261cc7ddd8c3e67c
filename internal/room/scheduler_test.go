package room

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSpawnDelayShrinksEveryCycle(t *testing.T) {
	const base = 3 * time.Second

	prev := SpawnDelay(base, 1.0)
	assert.Equal(t, base, prev)

	for n := 1; n <= 30; n++ {
		d := SpawnDelay(base, math.Pow(difficultyGrowth, float64(n)))
		assert.Less(t, d, prev, "interval must strictly decrease with every spawn")
		prev = d
	}
}

func TestSpawnDelayMatchesDifficulty(t *testing.T) {
	const base = 3 * time.Second

	got := SpawnDelay(base, math.Pow(difficultyGrowth, 5))
	want := float64(base) / math.Pow(1.1, 5)
	assert.InDelta(t, want, float64(got), 1) // nanosecond truncation only
}

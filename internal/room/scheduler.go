package room

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// runHazards drives one room's spawn cycle until the room leaves the
// registry. The first hazard fires immediately; after each spawn the
// difficulty ramps, so the wait before cycle n is baseInterval/1.1^n and
// strictly shrinks over the room's lifetime.
//
// Cancellation comes from two directions: the context, revoked by
// Manager.Delete, and the registry lookup at the top of each cycle. A timer
// already armed when the room dies fires once, finds nothing, and stops.
func (m *Manager) runHazards(ctx context.Context, r *Room) {
	log.Info().Str("room", r.Code).Msg("hazard scheduler started")
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug().Str("room", r.Code).Msg("hazard scheduler cancelled")
			return
		case <-timer.C:
		}

		if _, live := m.Get(r.Code); !live {
			log.Debug().Str("room", r.Code).Msg("room gone, hazard scheduler stopping")
			return
		}

		hz := r.SpawnHazard()
		if hz == nil {
			return
		}
		r.IncreaseDifficulty()

		timer.Reset(SpawnDelay(m.baseInterval, r.Difficulty()))
	}
}

// SpawnDelay is the wait before the next hazard at the given difficulty.
func SpawnDelay(base time.Duration, difficulty float64) time.Duration {
	return time.Duration(float64(base) / difficulty)
}

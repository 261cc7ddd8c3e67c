package room

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"spikerun/pkg/utils"
)

// Manager is the registry of live rooms, keyed by shareable code. It is
// built in main and injected wherever rooms are resolved; there is no
// package-level instance. Rooms live only in memory.
type Manager struct {
	mu           sync.RWMutex
	rooms        map[string]*Room
	cancels      map[string]context.CancelFunc
	baseInterval time.Duration
}

func NewManager(baseInterval time.Duration) *Manager {
	return &Manager{
		rooms:        make(map[string]*Room),
		cancels:      make(map[string]context.CancelFunc),
		baseInterval: baseInterval,
	}
}

// Create registers a room under a freshly generated code. Codes are only
// checked against currently-live rooms; the generator retries on the rare
// clash.
func (m *Manager) Create() *Room {
	m.mu.Lock()
	defer m.mu.Unlock()

	for {
		code := utils.GenRoomCode()
		if _, taken := m.rooms[code]; taken {
			continue
		}
		r := NewRoom(code)
		m.rooms[code] = r
		log.Info().Str("room", code).Msg("room created")
		return r
	}
}

func (m *Manager) Get(code string) (*Room, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.rooms[code]
	return r, ok
}

// Delete removes the room from the registry, revokes its hazard scheduler
// and marks the room closed. Safe to call more than once.
func (m *Manager) Delete(code string) {
	m.mu.Lock()
	r, ok := m.rooms[code]
	if !ok {
		m.mu.Unlock()
		return
	}
	delete(m.rooms, code)
	cancel := m.cancels[code]
	delete(m.cancels, code)
	m.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	r.shutdown()
	log.Info().Str("room", code).Msg("room deleted")
}

// StartGame transitions the room to started and launches its hazard
// scheduler. Room.Start succeeds at most once per room, so no second
// scheduler can appear no matter how many start events race.
func (m *Manager) StartGame(r *Room) bool {
	if !r.Start() {
		return false
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.mu.Lock()
	if _, live := m.rooms[r.Code]; !live {
		// deleted between Start and here; nothing to schedule
		m.mu.Unlock()
		cancel()
		return false
	}
	m.cancels[r.Code] = cancel
	m.mu.Unlock()

	go m.runHazards(ctx, r)
	return true
}

// List reports all live rooms for the REST surface.
func (m *Manager) List() []RoomInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]RoomInfo, 0, len(m.rooms))
	for code, r := range m.rooms {
		out = append(out, RoomInfo{Code: code, Players: r.PlayerCount(), Started: r.Started()})
	}
	return out
}

package room

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/rs/zerolog/log"
)

const (
	MaxPlayers = 8
	MinPlayers = 2

	startingDifficulty = 1.0
	difficultyGrowth   = 1.1
)

var (
	ErrRoomFull     = errors.New("room is full")
	ErrRoomNotFound = errors.New("room not found")
)

// Room owns all game-rule state for one session. Every mutation and the
// broadcast it produces happen under the same lock hold, so messages leave in
// commit order. Fan-out writes to per-player buffered channels and never
// blocks; a backed-up client just misses frames.
type Room struct {
	Code string

	mu         sync.RWMutex
	players    map[string]*Player
	started    bool
	closed     bool
	difficulty float64
	hazard     *Hazard
	lastDir    Direction
}

func NewRoom(code string) *Room {
	return &Room{
		Code:       code,
		players:    make(map[string]*Player),
		difficulty: startingDifficulty,
	}
}

// AddPlayer creates a player at a random spawn point and announces the new
// roster. The joining connection alone receives the joined event.
func (r *Room) AddPlayer(id string, avatar Avatar, conn *websocket.Conn) (*Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, ErrRoomNotFound
	}
	if len(r.players) >= MaxPlayers {
		return nil, ErrRoomFull
	}

	p := NewPlayer(id, avatar, conn)
	p.Position = randomSpawnPosition()
	r.players[id] = p

	r.sendToLocked(p, EventJoined, JoinedPayload{Code: r.Code, PlayerID: id})
	r.broadcastLocked(EventRosterUpdate, RosterPayload{Players: r.rosterLocked()}, nil)
	if !r.started && len(r.players) >= MinPlayers {
		r.broadcastLocked(EventRoomReady, struct{}{}, nil)
	}

	log.Info().Str("room", r.Code).Str("player", id).Int("players", len(r.players)).Msg("player joined")
	return p, nil
}

// RemovePlayer drops the player if present. When a started room falls below
// the minimum it flips back to unstarted, tells everyone the game is over and
// returns true; the caller is responsible for deleting the room.
func (r *Room) RemovePlayer(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.players[id]; !ok {
		return false
	}
	delete(r.players, id)
	log.Info().Str("room", r.Code).Str("player", id).Int("players", len(r.players)).Msg("player left")

	if r.started && len(r.players) < MinPlayers {
		r.started = false
		r.broadcastLocked(EventGameOver, GameOverPayload{Reason: "not enough players"}, nil)
		return true
	}

	r.broadcastLocked(EventRosterUpdate, RosterPayload{Players: r.rosterLocked()}, nil)
	return false
}

// MovePlayer records a client-reported position and relays it to everyone
// except the mover. Unknown players are stale messages and are ignored.
func (r *Room) MovePlayer(id string, pos Position) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.players[id]
	if !ok || r.closed {
		return
	}
	p.SetPosition(pos.X, pos.Y)
	r.broadcastLocked(EventPlayerMoved, PlayerMovedPayload{PlayerID: id, Position: pos}, p)
}

// Start flips the room to started if it can. Returns false when already
// started, below the minimum, or closed — the false path is what keeps a
// second hazard scheduler from ever spawning.
func (r *Room) Start() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || r.started || len(r.players) < MinPlayers {
		return false
	}
	r.started = true
	r.broadcastLocked(EventGameStarted, struct{}{}, nil)
	log.Info().Str("room", r.Code).Int("players", len(r.players)).Msg("game started")
	return true
}

// ResolveCollision burns a life off the reporting player, announces the new
// state, and runs the end-of-game check. Returns true when the game is over,
// in which case a gameOver broadcast has already been queued and the caller
// should remove the room from the registry.
func (r *Room) ResolveCollision(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return false
	}
	p, ok := r.players[id]
	if !ok {
		return false
	}

	eliminated := p.ApplyCollision()
	r.broadcastLocked(EventPlayerState, PlayerStatePayload{
		PlayerID:   id,
		Lives:      p.Lives,
		State:      p.State,
		Eliminated: eliminated,
	}, nil)

	if !r.isGameOverLocked() {
		return false
	}

	var winnerID string
	if w := r.winnerLocked(); w != nil {
		winnerID = w.ID
	}
	r.broadcastLocked(EventGameOver, GameOverPayload{WinnerID: winnerID}, nil)
	log.Info().Str("room", r.Code).Str("winner", winnerID).Msg("game over")
	return true
}

// SpawnHazard replaces the current hazard with a fresh one and publishes it.
// The hazard carries the room's difficulty at the moment of the spawn.
func (r *Room) SpawnHazard() *Hazard {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	dir := pickDirection(r.lastDir)
	r.lastDir = dir
	hz := &Hazard{Direction: dir, Speed: r.difficulty, Position: hazardSpawn(dir)}
	r.hazard = hz
	r.broadcastLocked(EventHazard, hz, nil)
	return hz
}

// IncreaseDifficulty ramps the difficulty by the fixed growth factor. Called
// once per spawn, the very first one included.
func (r *Room) IncreaseDifficulty() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.difficulty *= difficultyGrowth
}

// shutdown marks the room dead so stale handlers and the scheduler turn into
// no-ops. Called by the registry when the room is deleted.
func (r *Room) shutdown() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
}

func (r *Room) CanStart() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.players) >= MinPlayers
}

func (r *Room) IsFull() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.players) >= MaxPlayers
}

func (r *Room) Started() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.started
}

func (r *Room) PlayerCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.players)
}

func (r *Room) Difficulty() float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.difficulty
}

func (r *Room) CurrentHazard() *Hazard {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.hazard
}

func (r *Room) AlivePlayers() []*Player {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.alivePlayersLocked()
}

func (r *Room) IsGameOver() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.isGameOverLocked()
}

// Winner returns the sole alive player, or nil when more than one remains or
// a simultaneous elimination left nobody standing (a draw).
func (r *Room) Winner() *Player {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.winnerLocked()
}

func (r *Room) Snapshot() RoomSnapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return RoomSnapshot{Code: r.Code, Started: r.started, Players: r.rosterLocked()}
}

func (r *Room) alivePlayersLocked() []*Player {
	out := make([]*Player, 0, len(r.players))
	for _, p := range r.players {
		if p.Alive {
			out = append(out, p)
		}
	}
	return out
}

func (r *Room) isGameOverLocked() bool {
	return r.started && len(r.alivePlayersLocked()) <= 1
}

func (r *Room) winnerLocked() *Player {
	alive := r.alivePlayersLocked()
	if len(alive) == 1 {
		return alive[0]
	}
	return nil
}

func (r *Room) rosterLocked() []PlayerInfo {
	out := make([]PlayerInfo, 0, len(r.players))
	for _, p := range r.players {
		out = append(out, p.Info())
	}
	return out
}

// broadcastLocked queues an event for every player except the excluded one.
// Caller must hold r.mu.
func (r *Room) broadcastLocked(event string, payload any, except *Player) {
	msg, err := encodeEvent(event, payload)
	if err != nil {
		log.Error().Str("room", r.Code).Str("event", event).Err(err).Msg("encode failed")
		return
	}
	for _, p := range r.players {
		if p == except {
			continue
		}
		select {
		case p.send <- msg:
		default:
		}
	}
}

// sendToLocked queues an event for a single player. Caller must hold r.mu.
func (r *Room) sendToLocked(p *Player, event string, payload any) {
	msg, err := encodeEvent(event, payload)
	if err != nil {
		log.Error().Str("room", r.Code).Str("event", event).Err(err).Msg("encode failed")
		return
	}
	select {
	case p.send <- msg:
	default:
	}
}

func encodeEvent(event string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(WSMessage{Type: event, Data: data})
}

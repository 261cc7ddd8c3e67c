package room

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Gateway terminates client connections and translates inbound events into
// Room calls. Rooms never touch the network themselves; all fan-out goes
// through the per-player send queues the Room writes into.
type Gateway struct {
	manager *Manager
}

func NewGateway(m *Manager) *Gateway {
	return &Gateway{manager: m}
}

// Handle owns one websocket connection from upgrade to disconnect. The first
// frame must be a join; everything after that is dispatched until the socket
// drops.
func (g *Gateway) Handle(conn *websocket.Conn) {
	r, p, ok := g.join(conn)
	if !ok {
		conn.Close()
		return
	}

	go g.readLoop(r, p)
	p.WritePump()
}

// join resolves or creates the target room and registers the player in it.
// Failures are reported to the requesting connection only.
func (g *Gateway) join(conn *websocket.Conn) (*Room, *Player, bool) {
	_, raw, err := conn.ReadMessage()
	if err != nil {
		return nil, nil, false
	}

	var env WSMessage
	if err := json.Unmarshal(raw, &env); err != nil || env.Type != EventJoin {
		writeError(conn, "expected a join event")
		return nil, nil, false
	}
	var req JoinRequest
	if err := json.Unmarshal(env.Data, &req); err != nil {
		writeError(conn, "malformed join payload")
		return nil, nil, false
	}

	var r *Room
	if req.Code == "" {
		r = g.manager.Create()
	} else {
		existing, ok := g.manager.Get(req.Code)
		if !ok {
			writeError(conn, "room not found")
			return nil, nil, false
		}
		if existing.IsFull() {
			writeError(conn, "room is full")
			return nil, nil, false
		}
		r = existing
	}

	p, err := r.AddPlayer(uuid.NewString(), req.Avatar.Normalize(), conn)
	if err != nil {
		if errors.Is(err, ErrRoomFull) {
			writeError(conn, "room is full")
		} else {
			writeError(conn, "could not join room")
		}
		if r.PlayerCount() == 0 {
			g.manager.Delete(r.Code)
		}
		return nil, nil, false
	}
	return r, p, true
}

// readLoop pumps inbound frames into the dispatcher. A panic while handling
// one event drops the connection but never takes the process down.
func (g *Gateway) readLoop(r *Room, p *Player) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Error().Str("room", r.Code).Str("player", p.ID).Interface("panic", rec).Msg("read loop panic")
		}
		p.shutdown()
		g.disconnect(r, p)
	}()

	for {
		_, raw, err := p.conn.ReadMessage()
		if err != nil {
			return
		}
		g.dispatch(r, p, raw)
	}
}

func (g *Gateway) dispatch(r *Room, p *Player, raw []byte) {
	var env WSMessage
	if err := json.Unmarshal(raw, &env); err != nil {
		log.Debug().Str("player", p.ID).Err(err).Msg("unreadable frame")
		return
	}

	switch env.Type {
	case EventMove:
		var req MoveRequest
		if err := json.Unmarshal(env.Data, &req); err != nil {
			return
		}
		r.MovePlayer(p.ID, req.Position)

	case EventStart:
		g.manager.StartGame(r)

	case EventCollision:
		if over := r.ResolveCollision(p.ID); over {
			g.manager.Delete(r.Code)
		}

	case EventJoin:
		// connection already sits in a room; stale retry, drop it

	default:
		log.Debug().Str("player", p.ID).Str("type", env.Type).Msg("unknown event")
	}
}

// disconnect removes the player and reclaims the room when it terminated
// early or emptied out. Disconnection is lifecycle, not an error.
func (g *Gateway) disconnect(r *Room, p *Player) {
	terminated := r.RemovePlayer(p.ID)
	if terminated || r.PlayerCount() == 0 {
		g.manager.Delete(r.Code)
	}
}

// writeError reports a user-facing failure straight to a connection whose
// pumps are not running yet.
func writeError(conn *websocket.Conn, msg string) {
	payload, err := encodeEvent(EventRoomError, ErrorPayload{Message: msg})
	if err != nil {
		return
	}
	_ = conn.WriteMessage(websocket.TextMessage, payload)
}

package room

import (
	"context"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/rs/zerolog/log"
)

// VisualState is a display-only classification derived from remaining lives.
type VisualState string

const (
	StateKing    VisualState = "king"
	StateNormal  VisualState = "normal"
	StateNervous VisualState = "nervous"
)

const StartingLives = 3

const (
	writeWait  = 10 * time.Second
	pingPeriod = 54 * time.Second
	sendBuffer = 256
)

// Player is one connected token: game state plus the connection it came in on.
// Game fields are guarded by the owning Room's mutex, never by the Player.
type Player struct {
	ID       string
	Avatar   Avatar
	Position Position
	Lives    int
	Alive    bool
	State    VisualState

	conn   *websocket.Conn
	send   chan []byte
	ctx    context.Context
	cancel context.CancelFunc
	once   sync.Once
}

func NewPlayer(id string, avatar Avatar, conn *websocket.Conn) *Player {
	ctx, cancel := context.WithCancel(context.Background())
	return &Player{
		ID:     id,
		Avatar: avatar,
		Lives:  StartingLives,
		Alive:  true,
		State:  StateKing,
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
		ctx:    ctx,
		cancel: cancel,
	}
}

// ApplyCollision burns one life and reports whether the player is now
// eliminated. Once the lives are gone further calls stop decrementing.
func (p *Player) ApplyCollision() bool {
	if p.Lives > 0 {
		p.Lives--
		p.refreshState()
	}
	return p.Lives == 0
}

func (p *Player) refreshState() {
	switch p.Lives {
	case 3:
		p.State = StateKing
	case 2:
		p.State = StateNormal
	case 1:
		p.State = StateNervous
	default:
		p.Alive = false
	}
}

// SetPosition overwrites the client-reported position. Bounds are the
// client's problem; the server trusts what it is told.
func (p *Player) SetPosition(x, y float64) {
	p.Position.X = x
	p.Position.Y = y
}

func (p *Player) Info() PlayerInfo {
	return PlayerInfo{
		ID:       p.ID,
		Avatar:   p.Avatar,
		Position: p.Position,
		Lives:    p.Lives,
		State:    p.State,
		Alive:    p.Alive,
	}
}

// shutdown tears down the connection exactly once. The send channel is left
// open on purpose: stale broadcasts landing in its buffer are harmless,
// closing it would panic a concurrent fan-out.
func (p *Player) shutdown() {
	p.once.Do(func() {
		p.cancel()
		if p.conn != nil {
			p.conn.Close()
		}
	})
}

// WritePump drains the send queue onto the socket and keeps the connection
// alive with pings. Runs on the websocket handler goroutine.
func (p *Player) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		p.shutdown()
	}()

	for {
		select {
		case <-p.ctx.Done():
			return

		case msg := <-p.send:
			p.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := p.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				log.Debug().Str("player", p.ID).Err(err).Msg("write failed")
				return
			}

		case <-ticker.C:
			p.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := p.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

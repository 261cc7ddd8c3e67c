package room

import "encoding/json"

// WSMessage is the wire envelope for every event in both directions.
type WSMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Inbound event types.
const (
	EventJoin      = "join"
	EventMove      = "move"
	EventStart     = "start"
	EventCollision = "collision"
)

// Outbound event types.
const (
	EventJoined       = "joined"
	EventRoomError    = "roomError"
	EventRosterUpdate = "rosterUpdate"
	EventRoomReady    = "roomReady"
	EventGameStarted  = "gameStarted"
	EventHazard       = "hazard"
	EventPlayerState  = "playerStateUpdate"
	EventPlayerMoved  = "playerMoved"
	EventGameOver     = "gameOver"
)

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Avatar is the client-chosen look for a token. The server attaches it to
// broadcasts but never interprets it beyond sanitizing the enums.
type Avatar struct {
	Shape   string `json:"shape"`
	Pattern string `json:"pattern"`
	Color   string `json:"color"`
}

const (
	defaultShape   = "circle"
	defaultPattern = "solid"
)

var (
	validShapes   = map[string]bool{"circle": true, "square": true, "triangle": true}
	validPatterns = map[string]bool{"solid": true, "striped": true, "dotted": true}
)

// Normalize maps unknown shape or pattern values back to the client defaults.
// Color is passed through untouched.
func (a Avatar) Normalize() Avatar {
	if !validShapes[a.Shape] {
		a.Shape = defaultShape
	}
	if !validPatterns[a.Pattern] {
		a.Pattern = defaultPattern
	}
	return a
}

type JoinRequest struct {
	Code   string `json:"partyCode,omitempty"`
	Avatar Avatar `json:"avatar"`
}

type MoveRequest struct {
	Position Position `json:"position"`
}

type JoinedPayload struct {
	Code     string `json:"partyCode"`
	PlayerID string `json:"playerId"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

type PlayerInfo struct {
	ID       string      `json:"playerId"`
	Avatar   Avatar      `json:"avatar"`
	Position Position    `json:"position"`
	Lives    int         `json:"lives"`
	State    VisualState `json:"state"`
	Alive    bool        `json:"isAlive"`
}

type RosterPayload struct {
	Players []PlayerInfo `json:"players"`
}

type PlayerStatePayload struct {
	PlayerID   string      `json:"playerId"`
	Lives      int         `json:"lives"`
	State      VisualState `json:"state"`
	Eliminated bool        `json:"isEliminated"`
}

type PlayerMovedPayload struct {
	PlayerID string   `json:"playerId"`
	Position Position `json:"position"`
}

type GameOverPayload struct {
	WinnerID string `json:"winner,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

// RoomInfo is returned by the room-list endpoint.
type RoomInfo struct {
	Code    string `json:"partyCode"`
	Players int    `json:"players"`
	Started bool   `json:"started"`
}

// RoomSnapshot is the REST view of a single room.
type RoomSnapshot struct {
	Code    string       `json:"partyCode"`
	Started bool         `json:"started"`
	Players []PlayerInfo `json:"players"`
}

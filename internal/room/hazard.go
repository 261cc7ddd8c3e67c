package room

import "math/rand"

// Direction a hazard travels across the arena.
type Direction string

const (
	DirUp    Direction = "up"
	DirDown  Direction = "down"
	DirLeft  Direction = "left"
	DirRight Direction = "right"
)

var directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// Arena dimensions match the 800x600 canvas the clients render.
const (
	ArenaWidth  = 800.0
	ArenaHeight = 600.0
	spawnMargin = 50.0
)

// Hazard is the room's current obstacle. It only exists until the next spawn
// replaces it; clients animate its travel and report hits back, so the server
// never simulates it.
type Hazard struct {
	Direction Direction `json:"direction"`
	Speed     float64   `json:"speed"`
	Position  Position  `json:"position"`
}

// pickDirection draws uniformly from the four cardinal directions, excluding
// prev so the same direction never comes twice in a row. An empty prev (fresh
// room) leaves all four in the pool.
func pickDirection(prev Direction) Direction {
	pool := make([]Direction, 0, len(directions))
	for _, d := range directions {
		if d != prev {
			pool = append(pool, d)
		}
	}
	return pool[rand.Intn(len(pool))]
}

// hazardSpawn places a hazard at the edge opposite its apparent destination,
// at a random point along the perpendicular axis.
func hazardSpawn(dir Direction) Position {
	switch dir {
	case DirUp:
		return Position{X: rand.Float64() * ArenaWidth, Y: ArenaHeight}
	case DirDown:
		return Position{X: rand.Float64() * ArenaWidth, Y: 0}
	case DirLeft:
		return Position{X: ArenaWidth, Y: rand.Float64() * ArenaHeight}
	default:
		return Position{X: 0, Y: rand.Float64() * ArenaHeight}
	}
}

// randomSpawnPosition puts a joining player strictly inside the arena margins.
func randomSpawnPosition() Position {
	return Position{
		X: spawnMargin + rand.Float64()*(ArenaWidth-2*spawnMargin),
		Y: spawnMargin + rand.Float64()*(ArenaHeight-2*spawnMargin),
	}
}

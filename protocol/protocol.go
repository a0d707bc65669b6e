package protocol

import "bounce/game"

const (
	PathIndex      = "/"
	PathUpdateBall = "/update_ball"
	PathHealth     = "/healthz"
	PathStatic     = "/static"
)

// MaxBodyBytes caps an update request. A ball is four numbers.
const MaxBodyBytes = 4 << 10

// UpdateRequest is what the client POSTs every tick while the ball is in flight.
type UpdateRequest struct {
	Ball *BallFields `json:"ball"`
}

// BallFields uses pointers so a missing key can be told apart from zero.
type BallFields struct {
	X  *float64 `json:"x"`
	Y  *float64 `json:"y"`
	DX *float64 `json:"dx"`
	DY *float64 `json:"dy"`
}

// BallState is the response body: the stepped ball, flat.
type BallState struct {
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}

type Error struct {
	Error string `json:"error"`
}

type Health struct {
	Status string `json:"status"`
}

func NewBallState(b game.Ball) BallState {
	return BallState{X: b.X, Y: b.Y, DX: b.DX, DY: b.DY}
}

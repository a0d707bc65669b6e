package game

// Ball is the whole simulation state. The client owns it; the server only
// ever sees a copy for the length of one request.
type Ball struct {
	X, Y   float64
	DX, DY float64
}

// Finite reports whether all four fields are real numbers. Step can overflow
// to ±Inf on huge but finite input, and JSON cannot carry that.
func (b Ball) Finite() bool {
	return finite(b.X) && finite(b.Y) && finite(b.DX) && finite(b.DY)
}

package game

import (
	"fmt"
	"math"
)

// World holds the constants a step runs against. It is fixed when the
// process starts and shared read-only by every request.
type World struct {
	Gravity float64
	FloorY  float64
	Bounce  float64
	Width   float64
}

func DefaultWorld() World {
	return World{
		Gravity: Gravity,
		FloorY:  FloorY,
		Bounce:  Bounce,
		Width:   WorldWidth,
	}
}

// Validate rejects worlds outside the documented domain. Step itself accepts
// anything; this is for configuration loading.
func (w World) Validate() error {
	if !finite(w.Gravity) || w.Gravity <= 0 {
		return fmt.Errorf("gravity must be > 0, got %v", w.Gravity)
	}
	if !finite(w.FloorY) {
		return fmt.Errorf("floor must be finite, got %v", w.FloorY)
	}
	if !finite(w.Bounce) || w.Bounce <= -1 || w.Bounce >= 0 {
		return fmt.Errorf("bounce must be in (-1, 0), got %v", w.Bounce)
	}
	if !finite(w.Width) || w.Width <= LeftWall {
		return fmt.Errorf("width must be > %v, got %v", LeftWall, w.Width)
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

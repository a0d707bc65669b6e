package game

// Court defaults. Units are canvas pixels and pixels per tick.
const (
	Gravity    = 0.5   // added to DY every tick
	FloorY     = 600.0 // canvas height
	Bounce     = -0.6  // flips and damps a velocity component on contact
	WorldWidth = 800.0 // right wall
	LeftWall   = 0.0
)

package game

// Step advances b by one tick in w and returns the new state.
//
// Order matters: collisions see post-integration positions. The two wall
// checks are independent so a degenerate width can trigger both.
func Step(b Ball, w World) Ball {
	b.DY += w.Gravity

	b.X += b.DX
	b.Y += b.DY

	if b.Y > w.FloorY {
		b.Y = w.FloorY
		b.DY *= w.Bounce
	}

	if b.X < LeftWall {
		b.X = LeftWall
		b.DX *= w.Bounce
	}
	if b.X > w.Width {
		b.X = w.Width
		b.DX *= w.Bounce
	}

	return b
}

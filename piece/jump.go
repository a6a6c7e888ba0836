package piece

// Jump is a single signed board displacement (Δx, Δy).
//
// The zero value, Jump{0,0}, is never a valid parsed jump — the
// parser rejects it (spec: NotAValidJump) — but Jump itself carries no
// validity flag; callers that construct Jump values directly (mirrors,
// tests) are responsible for the same invariant.
type Jump struct {
	X, Y int
}

// IsZero reports whether j is the degenerate (0,0) displacement.
func (j Jump) IsZero() bool {
	return j.X == 0 && j.Y == 0
}

// Add returns the coordinate reached by applying j to pos.
func (j Jump) Add(pos [2]int) [2]int {
	return [2]int{pos[0] + j.X, pos[1] + j.Y}
}

// Invert negates X when invertX is set and Y when invertY is set,
// implementing the reachability engine's per-query board inversion
// (spec §4.4 step 3: "apply inversion").
func (j Jump) Invert(invertX, invertY bool) Jump {
	out := j
	if invertX {
		out.X = -out.X
	}
	if invertY {
		out.Y = -out.Y
	}
	return out
}

// MirrorHorizontal negates Y: (x,y) → (x,-y).
func MirrorHorizontal(j Jump) Jump { return Jump{X: j.X, Y: -j.Y} }

// MirrorVertical negates X: (x,y) → (-x,y).
func MirrorVertical(j Jump) Jump { return Jump{X: -j.X, Y: j.Y} }

// MirrorDiagonal swaps axes: (x,y) → (y,x). This is an axis swap, not
// a geometric reflection across a diagonal — a deliberate choice; do
// not "fix" it to (x,y) → (-y,-x) or similar.
func MirrorDiagonal(j Jump) Jump { return Jump{X: j.Y, Y: j.X} }

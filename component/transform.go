package component

// TransformComponent holds world-space position and facing.
// Facing is radians with 0 pointing +X; it is only meaningful for
// entities that have moved or dashed at least once.
type TransformComponent struct {
	X, Y   float64
	Facing float64
}

package component

// KineticComponent holds velocity in units per second. Integration is
// the movement system's second pass, so anything that writes velocity
// (steering, dash, projectiles) moves without further coupling.
type KineticComponent struct {
	VelX, VelY float64
}

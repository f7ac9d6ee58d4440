package component

// DeathComponent tags an entity as dead, pending removal. Tagged
// entities are excluded from targeting, combat, and abilities, but the
// registry rows survive until the cleanup pass of the following tick so
// same-tick observers all see the terminal state once.
type DeathComponent struct {
	// Tick records when the tag was applied; cleanup destroys the
	// entity on any later tick.
	Tick int64
}

package component

// OrderComponent is a movement destination. Steering drives the entity
// toward (TargetX, TargetY) until within the arrival threshold, then
// sets Arrived and zeroes velocity. Attack orders are expressed as a
// move to the target's position at order time.
type OrderComponent struct {
	TargetX, TargetY float64
	Arrived          bool
}

package component

// EngageComponent is the showdown force-engagement tag. While present,
// the combat resolver ignores the attack range gate so the entity
// always seeks the nearest living enemy.
type EngageComponent struct{}

package core

// Team identifies the side an entity fights for
type Team int8

const (
	// TeamNeutral is reserved for entities that never participate in
	// combat and can never be targeted
	TeamNeutral Team = iota
	TeamRed
	TeamBlue
)

// Targetable reports whether entities of this team may be attacked
func (t Team) Targetable() bool {
	return t != TeamNeutral
}

// Hostile reports whether two teams may attack each other
func Hostile(a, b Team) bool {
	return a.Targetable() && b.Targetable() && a != b
}

func (t Team) String() string {
	switch t {
	case TeamRed:
		return "red"
	case TeamBlue:
		return "blue"
	default:
		return "neutral"
	}
}

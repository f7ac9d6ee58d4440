package core

// Phase is one state of the match-level state machine. Phases only
// advance forward; there is no regression path.
type Phase int32

const (
	PhaseNormal Phase = iota
	PhaseWarning
	PhaseCollapse
	PhaseShowdown
	PhaseVictory

	PhaseCount
)

func (p Phase) String() string {
	switch p {
	case PhaseNormal:
		return "normal"
	case PhaseWarning:
		return "warning"
	case PhaseCollapse:
		return "collapse"
	case PhaseShowdown:
		return "showdown"
	case PhaseVictory:
		return "victory"
	default:
		return "unknown"
	}
}

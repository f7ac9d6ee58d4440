package component

import "github.com/lixenwraith/skirmish/core"

// AllegianceComponent binds an entity to a team. Combatants belong to
// exactly one team; same-team targeting is forbidden in the combat
// resolver, and the neutral team can never be targeted.
type AllegianceComponent struct {
	Team core.Team
}

package core

// Entity is a generation-checked handle into the world's slot map.
// The low 32 bits hold the slot index and the high 32 bits the slot
// generation, so a handle kept across destroy-and-reuse fails validation
// instead of silently addressing the new occupant.
type Entity uint64

// NoEntity is the zero handle. Generations start at 1, so no live
// entity ever compares equal to it.
const NoEntity Entity = 0

// MakeEntity packs a slot index and generation into a handle
func MakeEntity(index, generation uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

// Index returns the slot index encoded in the handle
func (e Entity) Index() uint32 {
	return uint32(e)
}

// Generation returns the slot generation encoded in the handle
func (e Entity) Generation() uint32 {
	return uint32(e >> 32)
}

package component

// VitalityComponent tracks current and maximum health. Health is
// clamped to [0, MaxHealth]; lethal damage sets exactly 0, never a
// negative value.
type VitalityComponent struct {
	Health    float64
	MaxHealth float64
}

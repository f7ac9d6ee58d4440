// Package config resolves match tuning from TOML files with validation.
// Config errors are the only fatal errors in the simulation: a match
// must not start with a nonsensical arena or timeline.
package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/skirmish/parameter"
)

// MatchConfig is the resolved arena and timeline tuning
type MatchConfig struct {
	ArenaWidth  float64 `toml:"arena_width"`
	ArenaHeight float64 `toml:"arena_height"`
	CellSize    float64 `toml:"cell_size"`
	MoveSpeed   float64 `toml:"move_speed"`

	TeleportRadius float64 `toml:"teleport_radius"`

	WarningAt  duration `toml:"warning_at"`
	CollapseAt duration `toml:"collapse_at"`
	ShowdownAt duration `toml:"showdown_at"`
}

// duration lets TOML carry values like "150s"
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// Default returns the parameter-package tuning the tests assume
func Default() MatchConfig {
	return MatchConfig{
		ArenaWidth:     parameter.DefaultArenaWidth,
		ArenaHeight:    parameter.DefaultArenaHeight,
		CellSize:       parameter.DefaultCellSize,
		MoveSpeed:      parameter.DefaultMoveSpeed,
		TeleportRadius: parameter.DefaultTeleportRadius,
		WarningAt:      duration{parameter.DefaultWarningAt},
		CollapseAt:     duration{parameter.DefaultCollapseAt},
		ShowdownAt:     duration{parameter.DefaultShowdownAt},
	}
}

// Load reads a TOML file over the defaults and validates the result
func Load(path string) (MatchConfig, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return MatchConfig{}, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return MatchConfig{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations the simulation cannot honor
func (c MatchConfig) Validate() error {
	if c.ArenaWidth <= 0 || c.ArenaHeight <= 0 {
		return fmt.Errorf("arena dimensions must be positive, got %gx%g", c.ArenaWidth, c.ArenaHeight)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("cell size must be positive, got %g", c.CellSize)
	}
	if c.MoveSpeed <= 0 {
		return fmt.Errorf("move speed must be positive, got %g", c.MoveSpeed)
	}
	if c.TeleportRadius <= 0 {
		return fmt.Errorf("teleport radius must be positive, got %g", c.TeleportRadius)
	}
	if c.WarningAt.Duration <= 0 {
		return fmt.Errorf("warning threshold must be positive, got %v", c.WarningAt.Duration)
	}
	if c.CollapseAt.Duration <= c.WarningAt.Duration {
		return fmt.Errorf("collapse threshold %v must follow warning %v", c.CollapseAt.Duration, c.WarningAt.Duration)
	}
	if c.ShowdownAt.Duration <= c.CollapseAt.Duration {
		return fmt.Errorf("showdown threshold %v must follow collapse %v", c.ShowdownAt.Duration, c.CollapseAt.Duration)
	}
	if c.TeleportRadius*2 > c.ArenaWidth || c.TeleportRadius*2 > c.ArenaHeight {
		return fmt.Errorf("teleport radius %g does not fit the arena", c.TeleportRadius)
	}
	return nil
}

// Durations exposed without the TOML wrapper

func (c MatchConfig) Warning() time.Duration  { return c.WarningAt.Duration }
func (c MatchConfig) Collapse() time.Duration { return c.CollapseAt.Duration }
func (c MatchConfig) Showdown() time.Duration { return c.ShowdownAt.Duration }

// WithThresholds returns a copy with a custom timeline; handy for
// fast-running tests
func (c MatchConfig) WithThresholds(warning, collapse, showdown time.Duration) MatchConfig {
	c.WarningAt = duration{warning}
	c.CollapseAt = duration{collapse}
	c.ShowdownAt = duration{showdown}
	return c
}

package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/skirmish/arena"
	"github.com/lixenwraith/skirmish/audio"
	"github.com/lixenwraith/skirmish/component"
	"github.com/lixenwraith/skirmish/core"
	"github.com/lixenwraith/skirmish/event"
	"github.com/lixenwraith/skirmish/vmath"
)

// view renders the match on a tcell screen and translates input into
// commands. One fixed-step loop drives both rendering and simulation.
type view struct {
	match  *arena.Match
	player *audio.Player
	screen tcell.Screen

	selected core.Entity
	paused   bool
}

func newView(match *arena.Match, player *audio.Player) (*view, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.Clear()
	return &view{
		match:  match,
		player: player,
		screen: screen,
	}, nil
}

func (v *view) fini() {
	v.screen.Fini()
}

// run steps the simulation at a fixed dt until quit or match end plus a
// short result display
func (v *view) run(dt time.Duration) {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go v.screen.ChannelEvents(events, quit)

	auto := newAutopilot(v.match)
	ticker := time.NewTicker(dt)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if !v.handleInput(ev) {
				close(quit)
				return
			}
		case <-ticker.C:
			if !v.paused && !v.match.Over() {
				auto.drive()
				v.match.Step(dt)
			}
			v.draw()
		}
	}
}

// handleInput returns false when the user quits
func (v *view) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
			return false
		case ev.Rune() == ' ':
			v.paused = !v.paused
		case ev.Rune() == 'm':
			v.player.SetMuted(true)
		case ev.Rune() == 'M':
			v.player.SetMuted(false)
		case ev.Rune() == 'd':
			v.trigger(component.AbilityDash)
		case ev.Rune() == 's':
			v.trigger(component.AbilityShield)
		case ev.Rune() == 'f':
			v.trigger(component.AbilityRanged)
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		ax, ay := v.cellToArena(x, y)
		switch ev.Buttons() {
		case tcell.Button1:
			v.selected = v.unitAt(ax, ay)
			v.match.Push(event.EventSelectionChange, &event.SelectionChangePayload{
				Entities: []core.Entity{v.selected},
			})
		case tcell.Button2:
			if v.selected != core.NoEntity {
				v.match.MoveOrder([]core.Entity{v.selected}, ax, ay)
			}
		}
	}
	return true
}

func (v *view) trigger(kind component.AbilityKind) {
	if v.selected != core.NoEntity {
		v.match.TriggerAbility([]core.Entity{v.selected}, kind)
	}
}

// unitAt picks the living unit nearest the arena point
func (v *view) unitAt(x, y float64) core.Entity {
	snap := v.match.Snapshot()
	best := core.NoEntity
	bestDist := 0.0
	for _, u := range snap.Units {
		if u.Dead {
			continue
		}
		d := vmath.DistSq(x, y, u.X, u.Y)
		if best == core.NoEntity || d < bestDist {
			best = u.Entity
			bestDist = d
		}
	}
	return best
}

// Arena to screen mapping; one status row at the top and one ability
// row at the bottom
func (v *view) fieldRect() (w, h, top int) {
	sw, sh := v.screen.Size()
	return sw, sh - 2, 1
}

func (v *view) arenaToCell(x, y float64) (int, int) {
	cfg := v.match.World().Resource.Config
	w, h, top := v.fieldRect()
	cx := int(x / cfg.ArenaWidth * float64(w-1))
	cy := top + int(y/cfg.ArenaHeight*float64(h-1))
	return cx, cy
}

func (v *view) cellToArena(cx, cy int) (float64, float64) {
	cfg := v.match.World().Resource.Config
	w, h, top := v.fieldRect()
	if w < 2 || h < 2 {
		return 0, 0
	}
	x := float64(cx) / float64(w-1) * cfg.ArenaWidth
	y := float64(cy-top) / float64(h-1) * cfg.ArenaHeight
	return vmath.Clamp(x, 0, cfg.ArenaWidth), vmath.Clamp(y, 0, cfg.ArenaHeight)
}

func (v *view) draw() {
	snap := v.match.Snapshot()
	v.screen.Clear()

	v.drawStatus(snap)

	for _, p := range snap.Projectiles {
		cx, cy := v.arenaToCell(p.X, p.Y)
		v.screen.SetContent(cx, cy, '·', nil, teamStyle(p.Team, 1.0, false))
	}
	for _, u := range snap.Units {
		if u.Dead {
			continue
		}
		cx, cy := v.arenaToCell(u.X, u.Y)
		glyph := 'R'
		if u.Team == core.TeamBlue {
			glyph = 'B'
		}
		frac := 1.0
		if u.MaxHealth > 0 {
			frac = u.Health / u.MaxHealth
		}
		v.screen.SetContent(cx, cy, glyph, nil, teamStyle(u.Team, frac, u.Entity == v.selected))
	}

	v.drawAbilityBar(snap)
	v.screen.Show()
}

func (v *view) drawStatus(snap arena.Snapshot) {
	red, blue := 0, 0
	for _, u := range snap.Units {
		if u.Dead {
			continue
		}
		switch u.Team {
		case core.TeamRed:
			red++
		case core.TeamBlue:
			blue++
		}
	}

	status := fmt.Sprintf(" %s  next:%s  red:%d blue:%d",
		snap.Phase, snap.TimeToNext.Truncate(time.Second), red, blue)
	if snap.Phase == core.PhaseVictory {
		if snap.Draw {
			status = " match over: draw (press q)"
		} else {
			status = fmt.Sprintf(" match over: %s wins (press q)", snap.Winner)
		}
	}
	if v.paused {
		status += "  [paused]"
	}
	v.drawText(0, 0, status, tcell.StyleDefault.Reverse(true))
}

func (v *view) drawAbilityBar(snap arena.Snapshot) {
	_, sh := v.screen.Size()
	if v.selected == core.NoEntity {
		v.drawText(0, sh-1, " click a unit; right-click to move, d/s/f abilities", tcell.StyleDefault.Dim(true))
		return
	}
	for _, u := range snap.Units {
		if u.Entity != v.selected {
			continue
		}
		bar := fmt.Sprintf(" hp %.0f/%.0f  dash %s shield %s shot %s",
			u.Health, u.MaxHealth,
			cooldownGauge(u.Cooldowns[component.AbilityDash]),
			cooldownGauge(u.Cooldowns[component.AbilityShield]),
			cooldownGauge(u.Cooldowns[component.AbilityRanged]))
		v.drawText(0, sh-1, bar, tcell.StyleDefault)
		return
	}
	// Selection died
	v.selected = core.NoEntity
}

func cooldownGauge(frac float64) string {
	if frac <= 0 {
		return "[ready]"
	}
	return fmt.Sprintf("[%2.0f%%]", (1-frac)*100)
}

func (v *view) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range text {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

func teamStyle(team core.Team, healthFrac float64, selected bool) tcell.Style {
	style := tcell.StyleDefault
	switch team {
	case core.TeamRed:
		style = style.Foreground(tcell.ColorRed)
	case core.TeamBlue:
		style = style.Foreground(tcell.ColorBlue)
	}
	if healthFrac < 0.5 {
		style = style.Dim(true)
	}
	if selected {
		style = style.Bold(true).Underline(true)
	}
	return style
}

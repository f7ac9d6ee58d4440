package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/skirmish/component"
	"github.com/lixenwraith/skirmish/core"
	"github.com/lixenwraith/skirmish/event"
	"github.com/lixenwraith/skirmish/vmath"
)

// shortTimeline compresses the thresholds so phase tests stay fast
func shortTimeline(h *harness) {
	cfg := h.world.Resource.Config
	cfg.WarningAt = 2 * time.Second
	cfg.CollapseAt = 3 * time.Second
	cfg.ShowdownAt = 4 * time.Second
}

func TestPhaseProgression(t *testing.T) {
	h := newHarness()
	shortTimeline(h)
	h.spawn(core.TeamRed, 100, 100)
	h.spawn(core.TeamBlue, 900, 900)

	h.step(time.Second)
	if got := h.world.Resource.Match.Phase; got != core.PhaseNormal {
		t.Errorf("Expected normal at 1s, got %s", got)
	}

	h.step(time.Second) // elapsed 2s, threshold inclusive
	if got := h.world.Resource.Match.Phase; got != core.PhaseWarning {
		t.Errorf("Expected warning at 2s, got %s", got)
	}

	h.step(time.Second)
	if got := h.world.Resource.Match.Phase; got != core.PhaseCollapse {
		t.Errorf("Expected collapse at 3s, got %s", got)
	}

	h.step(time.Second)
	if got := h.world.Resource.Match.Phase; got != core.PhaseShowdown {
		t.Errorf("Expected showdown at 4s, got %s", got)
	}
}

func TestShowdownTeleportConfines(t *testing.T) {
	h := newHarness()
	shortTimeline(h)
	red := h.spawn(core.TeamRed, 100, 100)
	blue := h.spawn(core.TeamBlue, 900, 900)

	for i := 0; i < 4; i++ {
		h.step(time.Second)
	}

	cfg := h.world.Resource.Config
	cx, cy := cfg.ArenaWidth/2, cfg.ArenaHeight/2
	for _, e := range []core.Entity{red, blue} {
		x, y := h.position(e)
		if vmath.DistSq(x, y, cx, cy) > cfg.TeleportRadius*cfg.TeleportRadius+1e-9 {
			t.Errorf("Expected entity within teleport radius, got (%g, %g)", x, y)
		}
		kin, _ := h.world.Component.Kinetic.Get(e)
		if kin.VelX != 0 || kin.VelY != 0 {
			t.Errorf("Expected zero velocity after teleport, got (%g, %g)", kin.VelX, kin.VelY)
		}
		if !h.world.Component.Engage.Has(e) {
			t.Error("Expected force-engage flag after teleport")
		}
		// The spatial index must agree with the transform
		sx, sy, ok := h.world.Spatial.Position(e)
		if !ok || sx != x || sy != y {
			t.Errorf("Expected spatial index updated to (%g, %g), got (%g, %g)", x, y, sx, sy)
		}
	}
}

func TestShowdownClearsPendingOrders(t *testing.T) {
	h := newHarness()
	shortTimeline(h)
	red := h.spawn(core.TeamRed, 100, 100)
	h.spawn(core.TeamBlue, 900, 900)

	h.world.PushEvent(event.EventMoveOrder, &event.MoveOrderPayload{
		Entities: []core.Entity{red}, X: 100, Y: 900,
	})
	for i := 0; i < 4; i++ {
		h.step(time.Second)
	}

	ord, ok := h.world.Component.Order.Get(red)
	if !ok || !ord.Arrived {
		t.Errorf("Expected pending order cleared at teleport, got %+v", ord)
	}
}

func TestShowdownEntryFiresOnce(t *testing.T) {
	h := newHarness()
	shortTimeline(h)
	h.spawn(core.TeamRed, 100, 100)
	h.spawn(core.TeamBlue, 900, 900)

	for i := 0; i < 4; i++ {
		h.step(time.Second)
	}
	teleports := h.stat("phase.teleports")
	if teleports != 2 {
		t.Fatalf("Expected 2 teleports at showdown entry, got %d", teleports)
	}

	// Entities keep fighting; repeated ticks must not re-teleport
	h.step(time.Second)
	if got := h.stat("phase.teleports"); got != teleports {
		t.Errorf("Expected teleport to fire exactly once, got %d", got)
	}
}

func TestOversizedDeltaFiresEachEntryOnceInOrder(t *testing.T) {
	h := newHarness()
	shortTimeline(h)
	h.spawn(core.TeamRed, 100, 100)
	h.spawn(core.TeamBlue, 900, 900)

	// One step crosses every threshold
	h.step(10 * time.Second)
	if got := h.world.Resource.Match.Phase; got != core.PhaseShowdown {
		t.Fatalf("Expected showdown after oversized delta, got %s", got)
	}
	if got := h.stat("phase.teleports"); got != 2 {
		t.Errorf("Expected one teleport per entity, got %d", got)
	}

	var phases []core.Phase
	for _, ev := range h.queue.Consume() {
		if ev.Type != event.EventPhaseChanged {
			continue
		}
		p, ok := ev.Payload.(*event.PhaseChangedPayload)
		if !ok {
			t.Fatalf("Expected phase payload, got %T", ev.Payload)
		}
		phases = append(phases, p.Phase)
	}
	want := []core.Phase{core.PhaseWarning, core.PhaseCollapse, core.PhaseShowdown}
	if len(phases) != len(want) {
		t.Fatalf("Expected %d phase events, got %v", len(want), phases)
	}
	for i := range want {
		if phases[i] != want[i] {
			t.Errorf("Expected %s at position %d, got %s", want[i], i, phases[i])
		}
	}
}

func TestVictoryWinner(t *testing.T) {
	h := newHarness()
	shortTimeline(h)
	h.spawn(core.TeamRed, 100, 100)
	h.spawn(core.TeamRed, 100, 200)
	h.spawn(core.TeamBlue, 900, 900)

	for i := 0; i < 12 && h.world.Resource.Match.Phase != core.PhaseVictory; i++ {
		h.step(time.Second)
	}

	match := h.world.Resource.Match
	if match.Phase != core.PhaseVictory {
		t.Fatalf("Expected victory, still in %s", match.Phase)
	}
	if match.Winner != core.TeamRed || match.Draw {
		t.Errorf("Expected red victory, got winner=%d draw=%v", match.Winner, match.Draw)
	}
}

func TestSimultaneousEliminationIsDraw(t *testing.T) {
	h := newHarness()
	shortTimeline(h)
	h.spawn(core.TeamRed, 100, 100)
	h.spawn(core.TeamBlue, 900, 900)

	// Symmetric fighters: the showdown duel kills both on the same tick
	for i := 0; i < 12 && h.world.Resource.Match.Phase != core.PhaseVictory; i++ {
		h.step(time.Second)
	}

	match := h.world.Resource.Match
	if match.Phase != core.PhaseVictory {
		t.Fatalf("Expected victory, still in %s", match.Phase)
	}
	if !match.Draw {
		t.Errorf("Expected a draw, got winner=%d draw=%v", match.Winner, match.Draw)
	}
	if match.Winner != core.TeamNeutral {
		t.Errorf("Expected no winner on a draw, got %d", match.Winner)
	}
}

func TestVictoryIsTerminal(t *testing.T) {
	h := newHarness()
	shortTimeline(h)
	h.spawn(core.TeamRed, 100, 100)
	h.spawn(core.TeamRed, 100, 200)
	h.spawn(core.TeamBlue, 900, 900)

	for i := 0; i < 12 && h.world.Resource.Match.Phase != core.PhaseVictory; i++ {
		h.step(time.Second)
	}
	if h.world.Resource.Match.Phase != core.PhaseVictory {
		t.Fatal("Expected a decided match")
	}
	winner := h.world.Resource.Match.Winner

	for i := 0; i < 5; i++ {
		h.step(time.Second)
	}
	match := h.world.Resource.Match
	if match.Phase != core.PhaseVictory || match.Winner != winner {
		t.Errorf("Expected terminal victory state, got phase=%s winner=%d", match.Phase, match.Winner)
	}
}

func TestNoVictoryBeforeShowdown(t *testing.T) {
	h := newHarness()
	shortTimeline(h)
	red := h.spawn(core.TeamRed, 100, 100)
	blue := h.spawn(core.TeamBlue, 130, 100)
	_ = red
	h.world.Component.Vitality.Set(blue, component.VitalityComponent{Health: 25, MaxHealth: 100})

	// Blue falls long before the showdown threshold
	for i := 0; i < 6; i++ {
		h.step(500 * time.Millisecond)
	}
	if h.world.Alive(blue) && h.health(blue) > 0 {
		t.Fatal("Expected blue eliminated in the early fight")
	}
	if got := h.world.Resource.Match.Phase; got == core.PhaseVictory {
		t.Error("Expected no victory call before showdown")
	}

	// Once showdown arrives the standing team wins
	for i := 0; i < 10 && h.world.Resource.Match.Phase != core.PhaseVictory; i++ {
		h.step(time.Second)
	}
	if h.world.Resource.Match.Winner != core.TeamRed {
		t.Errorf("Expected red to win after showdown, got %d", h.world.Resource.Match.Winner)
	}
}

func TestTimeToNextCountsDown(t *testing.T) {
	h := newHarness()
	shortTimeline(h)
	h.spawn(core.TeamRed, 100, 100)
	h.spawn(core.TeamBlue, 900, 900)

	h.step(time.Second)
	if got := h.world.Resource.Match.TimeToNext; got != time.Second {
		t.Errorf("Expected 1s to the warning threshold, got %v", got)
	}

	h.step(time.Second) // warning at 2s, next is collapse at 3s
	if got := h.world.Resource.Match.TimeToNext; got != time.Second {
		t.Errorf("Expected 1s to the collapse threshold, got %v", got)
	}
}

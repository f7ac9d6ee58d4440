package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/pkg/profile"

	"github.com/lixenwraith/skirmish/arena"
	"github.com/lixenwraith/skirmish/audio"
	"github.com/lixenwraith/skirmish/config"
	"github.com/lixenwraith/skirmish/core"
)

var (
	configFlag   = flag.String("config", "", "Path to TOML match config")
	seedFlag     = flag.Uint64("seed", 1, "Deterministic match seed")
	unitsFlag    = flag.Int("units", 8, "Fighters per team")
	headlessFlag = flag.Bool("headless", false, "Run without a terminal UI and print the result")
	muteFlag     = flag.Bool("mute", false, "Disable audio cues")
	profileFlag  = flag.Bool("profile", false, "Write a CPU profile to the working directory")
)

const stepDt = 50 * time.Millisecond

func main() {
	flag.Parse()

	if *profileFlag {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skirmish: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	match, err := arena.New(cfg, *seedFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "skirmish: %v\n", err)
		os.Exit(1)
	}
	if err := spawnTeams(match, cfg, *unitsFlag); err != nil {
		fmt.Fprintf(os.Stderr, "skirmish: %v\n", err)
		os.Exit(1)
	}

	if *headlessFlag {
		runHeadless(match)
		return
	}

	player := audio.NewPlayer(*muteFlag)
	defer player.Close()
	match.Subscribe(player)

	view, err := newView(match, player)
	if err != nil {
		fmt.Fprintf(os.Stderr, "skirmish: %v\n", err)
		os.Exit(1)
	}

	// Terminal must come back in a sane state even on a crash
	defer func() {
		if r := recover(); r != nil {
			view.fini()
			fmt.Fprintf(os.Stderr, "\nskirmish crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer view.fini()

	view.run(stepDt)
}

// spawnTeams lines both teams up on opposite arena edges
func spawnTeams(match *arena.Match, cfg config.MatchConfig, perTeam int) error {
	if perTeam < 1 {
		return fmt.Errorf("need at least 1 fighter per team, got %d", perTeam)
	}
	loadout := arena.DefaultLoadout()
	gap := cfg.ArenaHeight / float64(perTeam+1)
	for i := 0; i < perTeam; i++ {
		y := gap * float64(i+1)
		if _, err := match.SpawnFighter(core.TeamRed, cfg.ArenaWidth*0.1, y, loadout); err != nil {
			return err
		}
		if _, err := match.SpawnFighter(core.TeamBlue, cfg.ArenaWidth*0.9, y, loadout); err != nil {
			return err
		}
	}
	return nil
}

// runHeadless steps the match to its terminal phase and prints the
// result; usable in CI and for determinism checks
func runHeadless(match *arena.Match) {
	auto := newAutopilot(match)

	// Hard cap well past the showdown threshold so a stalemate still
	// terminates the process
	maxSteps := int(10*time.Minute/stepDt) + 1
	for i := 0; i < maxSteps && !match.Over(); i++ {
		auto.drive()
		match.Step(stepDt)
	}

	snap := match.Snapshot()
	log.Printf("ticks=%d elapsed=%v phase=%s digest=%#x",
		snap.Tick, snap.Elapsed, snap.Phase, snap.Digest())
	stats := match.World().Resource.Stats
	for _, name := range stats.Names() {
		log.Printf("stat %s=%d", name, stats.Counter(name).Load())
	}
	switch {
	case snap.Draw:
		log.Printf("result: draw")
	case snap.Winner != core.TeamNeutral:
		log.Printf("result: %s wins, %d fighters standing", snap.Winner, standing(snap, snap.Winner))
	default:
		log.Printf("result: no decision reached")
	}
}

func standing(snap arena.Snapshot, team core.Team) int {
	n := 0
	for _, u := range snap.Units {
		if u.Team == team && !u.Dead {
			n++
		}
	}
	return n
}

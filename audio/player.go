package audio

import (
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/skirmish/core"
	"github.com/lixenwraith/skirmish/event"
)

const sampleRate = beep.SampleRate(44100)

// Player renders match cues through the system speaker. Construction
// never fails: when the speaker cannot initialize the player stays in
// silent mode and every cue is a no-op.
type Player struct {
	muted  atomic.Bool
	silent bool
}

// NewPlayer initializes the speaker. Pass muted to start silent.
func NewPlayer(muted bool) *Player {
	p := &Player{}
	p.muted.Store(muted)
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		p.silent = true
	}
	return p
}

// SetMuted toggles cue playback
func (p *Player) SetMuted(muted bool) {
	p.muted.Store(muted)
}

// Close releases the speaker
func (p *Player) Close() {
	if !p.silent {
		speaker.Close()
	}
}

func (p *Player) play(streamers ...beep.Streamer) {
	if p.silent || p.muted.Load() {
		return
	}
	speaker.Play(beep.Seq(streamers...))
}

func tone(freq float64, duration time.Duration, wave WaveType, vol float64) beep.Streamer {
	osc := NewOscillator(freq, duration, wave, sampleRate)
	env := NewEnvelope(osc, duration, 5*time.Millisecond, 30*time.Millisecond, sampleRate)
	return newVolume(env, vol)
}

// Warning plays two mid beeps for the escalation warning
func (p *Player) Warning() {
	p.play(
		tone(660, 120*time.Millisecond, WaveSine, 0.5),
		tone(660, 120*time.Millisecond, WaveSine, 0.5),
	)
}

// Collapse plays a falling saw for the arena collapse
func (p *Player) Collapse() {
	p.play(
		tone(440, 150*time.Millisecond, WaveSaw, 0.4),
		tone(330, 150*time.Millisecond, WaveSaw, 0.4),
		tone(220, 200*time.Millisecond, WaveSaw, 0.4),
	)
}

// Showdown plays a rising square for the forced engagement
func (p *Player) Showdown() {
	p.play(
		tone(330, 100*time.Millisecond, WaveSquare, 0.4),
		tone(440, 100*time.Millisecond, WaveSquare, 0.4),
		tone(660, 180*time.Millisecond, WaveSquare, 0.4),
	)
}

// Victory plays an ascending triad for the match result
func (p *Player) Victory() {
	p.play(
		tone(523, 140*time.Millisecond, WaveSine, 0.5),
		tone(659, 140*time.Millisecond, WaveSine, 0.5),
		tone(784, 300*time.Millisecond, WaveSine, 0.5),
	)
}

// EventTypes declares the match events the player reacts to
func (p *Player) EventTypes() []event.EventType {
	return []event.EventType{event.EventPhaseChanged, event.EventMatchOver}
}

// HandleEvent maps phase transitions to cues
func (p *Player) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventPhaseChanged:
		payload, ok := ev.Payload.(*event.PhaseChangedPayload)
		if !ok {
			return
		}
		switch payload.Phase {
		case core.PhaseWarning:
			p.Warning()
		case core.PhaseCollapse:
			p.Collapse()
		case core.PhaseShowdown:
			p.Showdown()
		}
	case event.EventMatchOver:
		p.Victory()
	}
}

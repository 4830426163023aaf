package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

// musicVolume is the base-10 exponent of the music gain (0.1).
const musicVolume = -1

// Player mixes clips from a bank onto the speaker.
// All methods are no-ops until Open succeeds.
type Player struct {
	mu      sync.Mutex
	bank    *Bank
	logger  *log.Logger
	mixer   *beep.Mixer
	music   *beep.Ctrl
	enabled bool
}

// NewPlayer creates a muted player for bank.
func NewPlayer(bank *Bank, logger *log.Logger) *Player {
	if bank == nil {
		bank = Synthesized()
	}
	return &Player{
		bank:   bank,
		logger: logger,
		mixer:  &beep.Mixer{},
	}
}

// Open initializes the speaker. If no audio device is available the player
// stays muted and the failure is logged.
func (p *Player) Open() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.enabled {
		return
	}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		if p.logger != nil {
			p.logger.Warn("audio device unavailable, running muted", "err", err)
		}
		return
	}
	speaker.Play(p.mixer)
	p.enabled = true
}

// Enabled reports whether sound is actually played.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Play plays the clip mapped to the event, if any.
func (p *Player) Play(ev core.Event) {
	s, ok := SoundFor(ev.Kind)
	if !ok {
		return
	}
	p.PlaySound(s)
}

// PlayEvents plays the clips for all events of one tick.
func (p *Player) PlayEvents(events []core.Event) {
	for _, ev := range events {
		p.Play(ev)
	}
}

// PlaySound plays a clip once.
func (p *Player) PlaySound(s Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		return
	}
	p.add(p.bank.Streamer(s))
}

// StartMusic loops the background music at low volume.
func (p *Player) StartMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		return
	}
	if p.music != nil {
		speaker.Lock()
		p.music.Paused = false
		speaker.Unlock()
		return
	}

	loop := beep.Loop(-1, p.bank.Streamer(SoundMusic))
	p.music = &beep.Ctrl{Streamer: &effects.Volume{
		Streamer: loop,
		Base:     10,
		Volume:   musicVolume,
	}}
	p.add(p.music)
}

// StopMusic pauses the background music.
func (p *Player) StopMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.music == nil {
		return
	}
	speaker.Lock()
	p.music.Paused = true
	speaker.Unlock()
}

// Close stops all sound and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.mixer = &beep.Mixer{}
	p.music = nil
	p.enabled = false
}

func (p *Player) add(s beep.Streamer) {
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

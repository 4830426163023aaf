// Package audio plays the game's sound effects and background music.
//
// Sounds are loaded from WAV files or synthesized when no sound directory
// is given. A sound that cannot be loaded becomes a short silent clip so the
// game never depends on its assets.
package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

// SampleRate is the rate all clips are stored and played at.
const SampleRate = beep.SampleRate(44100)

const resampleQuality = 4

// format is the in-memory format of every clip.
var format = beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}

// Sound names a clip. The name is also the WAV file base name.
type Sound string

const (
	SoundShoot   Sound = "shoot"
	SoundHit     Sound = "hit"
	SoundPowerUp Sound = "powerup"
	SoundMusic   Sound = "music"
)

// Sounds lists every clip a bank holds.
var Sounds = []Sound{SoundShoot, SoundHit, SoundPowerUp, SoundMusic}

// SoundFor returns the clip played for a game event.
func SoundFor(kind core.EventKind) (Sound, bool) {
	switch kind {
	case core.EventShoot:
		return SoundShoot, true
	case core.EventHit, core.EventKill, core.EventLifeLost:
		return SoundHit, true
	case core.EventPowerUp:
		return SoundPowerUp, true
	default:
		return "", false
	}
}

// Bank holds decoded clips in memory.
type Bank struct {
	clips map[Sound]*beep.Buffer
}

// Streamer returns a fresh streamer over the clip.
func (b *Bank) Streamer(s Sound) beep.StreamSeeker {
	buf := b.clip(s)
	return buf.Streamer(0, buf.Len())
}

// Len returns the clip length in samples.
func (b *Bank) Len(s Sound) int {
	return b.clip(s).Len()
}

func (b *Bank) clip(s Sound) *beep.Buffer {
	if buf, ok := b.clips[s]; ok {
		return buf
	}
	return silence()
}

// LoadBank loads <dir>/<sound>.wav for every sound. An empty dir returns the
// synthesized bank. Missing or broken files are logged and replaced by silence.
func LoadBank(dir string, logger *log.Logger) *Bank {
	if dir == "" {
		return Synthesized()
	}

	b := &Bank{clips: make(map[Sound]*beep.Buffer, len(Sounds))}
	for _, s := range Sounds {
		path := filepath.Join(dir, string(s)+".wav")
		buf, err := loadWAV(path)
		if err != nil {
			if logger != nil {
				logger.Warn("sound unavailable, using silence", "sound", s, "err", err)
			}
			buf = silence()
		}
		b.clips[s] = buf
	}
	return b
}

func loadWAV(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: open %s: %w", path, err)
	}

	stream, fileFormat, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("audio: decode %s: %w", path, err)
	}
	defer stream.Close()

	var s beep.Streamer = stream
	if fileFormat.SampleRate != SampleRate {
		s = beep.Resample(resampleQuality, fileFormat.SampleRate, SampleRate, stream)
	}

	buf := beep.NewBuffer(format)
	buf.Append(s)
	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("audio: read %s: %w", path, err)
	}
	if buf.Len() == 0 {
		return nil, fmt.Errorf("audio: %s: no samples", path)
	}
	return buf, nil
}

// Synthesized returns a bank of generated tones.
func Synthesized() *Bank {
	return &Bank{clips: map[Sound]*beep.Buffer{
		SoundShoot:   tones(40*time.Millisecond, 880, 660),
		SoundHit:     tones(60*time.Millisecond, 220, 110),
		SoundPowerUp: tones(70*time.Millisecond, 523, 659, 784),
		SoundMusic:   tones(250*time.Millisecond, 110, 0, 131, 0, 98, 0, 82, 0),
	}}
}

// tones renders one note per frequency. A zero frequency is a rest.
func tones(note time.Duration, freqs ...float64) *beep.Buffer {
	n := SampleRate.N(note)
	buf := beep.NewBuffer(format)
	for _, f := range freqs {
		if f <= 0 {
			buf.Append(beep.Silence(n))
			continue
		}
		tone, err := generators.SineTone(SampleRate, f)
		if err != nil {
			buf.Append(beep.Silence(n))
			continue
		}
		buf.Append(beep.Take(n, tone))
	}
	return buf
}

func silence() *beep.Buffer {
	buf := beep.NewBuffer(format)
	buf.Append(beep.Silence(SampleRate.N(50 * time.Millisecond)))
	return buf
}

package core

// RuntimeConfig is passed to games on every Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells
	ScreenH  int   // Screen height in cells
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 lets the platform pick one from the clock
}

// DefaultConfig returns an 80x24 screen at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the externally visible state of a game.
type GameState struct {
	Score     int
	HighScore int
	Wave      int
	Lives     int
	Started   bool
	GameOver  bool
	Paused    bool
}

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventStart EventKind = iota
	EventShoot
	EventHit
	EventKill
	EventPowerUp
	EventShieldDown
	EventLifeLost
	EventWaveCleared
	EventGameOver
)

// String returns the event name used for sound lookup and logs.
func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventShoot:
		return "shoot"
	case EventHit:
		return "hit"
	case EventKill:
		return "kill"
	case EventPowerUp:
		return "powerup"
	case EventShieldDown:
		return "shield_down"
	case EventLifeLost:
		return "life_lost"
	case EventWaveCleared:
		return "wave_cleared"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is emitted by Game.Step. Value carries kind-specific data such as
// points scored or the wave number.
type Event struct {
	Kind  EventKind
	Value int
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given kind occurred this tick.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

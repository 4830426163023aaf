package invasion

import "github.com/vovakirdan/alien-invasion/internal/core"

// Ship is the player's ship. It only moves horizontally.
type Ship struct {
	X, Y        float64
	W, H        int
	Speed       float64
	Shield      bool
	ShieldUntil int // Tick at which the shield expires
}

// Rect returns the ship's hitbox.
func (s Ship) Rect() core.Rect {
	return core.RectAt(s.X, s.Y, s.W, s.H)
}

// Bullet is a projectile. Player bullets move up (negative Speed),
// boss bombs move down.
type Bullet struct {
	X, Y  float64
	W, H  int
	Speed float64 // Cells per tick, signed: negative is up
}

// Rect returns the bullet's hitbox.
func (b Bullet) Rect() core.Rect {
	return core.RectAt(b.X, b.Y, b.W, b.H)
}

// EnemyType distinguishes regular aliens from bosses.
type EnemyType int

const (
	EnemyNormal EnemyType = iota
	EnemyBoss
)

// String returns the type name.
func (t EnemyType) String() string {
	if t == EnemyBoss {
		return "boss"
	}
	return "normal"
}

// Enemy is one alien of the formation.
type Enemy struct {
	X, Y     float64
	W, H     int
	Type     EnemyType
	Health   int
	Alive    bool
	NextBomb int // Tick of the next bomb drop (bosses only)
}

// Rect returns the enemy's hitbox.
func (e Enemy) Rect() core.Rect {
	return core.RectAt(e.X, e.Y, e.W, e.H)
}

// PowerUpType is the kind of pickup.
type PowerUpType int

const (
	PowerUpShield PowerUpType = iota
	PowerUpExtraLife
)

// String returns the pickup name.
func (t PowerUpType) String() string {
	switch t {
	case PowerUpShield:
		return "shield"
	case PowerUpExtraLife:
		return "extraLife"
	default:
		return "unknown"
	}
}

// PowerUp is a falling pickup collected by touching it with the ship.
type PowerUp struct {
	X, Y float64
	W, H int
	VY   float64
	Type PowerUpType
}

// Rect returns the pickup's hitbox.
func (p PowerUp) Rect() core.Rect {
	return core.RectAt(p.X, p.Y, p.W, p.H)
}

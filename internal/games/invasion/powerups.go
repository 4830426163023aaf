package invasion

import "github.com/vovakirdan/alien-invasion/internal/core"

// maybeSpawnPowerUp rolls the per-tick spawn chance and drops a pickup at a
// random column just below the HUD.
func (g *Game) maybeSpawnPowerUp() {
	pc := g.cfg.PowerUps
	if !pc.Enabled || pc.SpawnPerMille <= 0 {
		return
	}
	if g.rng.Intn(1000) >= pc.SpawnPerMille {
		return
	}

	g.powerUps = append(g.powerUps, PowerUp{
		X:    float64(g.rng.Intn(max(g.runtime.ScreenW-pc.Width+1, 1))),
		Y:    float64(hudRows),
		W:    pc.Width,
		H:    pc.Height,
		VY:   pc.FallSpeed,
		Type: g.rollPowerUpType(),
	})
}

// rollPowerUpType picks a type by the configured weights.
func (g *Game) rollPowerUpType() PowerUpType {
	pc := g.cfg.PowerUps
	total := pc.ShieldWeight + pc.LifeWeight
	if total <= 0 || g.rng.Intn(total) < pc.ShieldWeight {
		return PowerUpShield
	}
	return PowerUpExtraLife
}

// updatePowerUps moves pickups and collects the ones touching the ship.
func (g *Game) updatePowerUps() {
	shipRect := g.ship.Rect()
	kept := g.powerUps[:0]
	for _, p := range g.powerUps {
		p.Y += p.VY
		if p.Rect().Intersects(shipRect) {
			g.collect(p.Type)
			continue
		}
		if int(p.Y) >= g.runtime.ScreenH {
			continue
		}
		kept = append(kept, p)
	}
	g.powerUps = kept
}

// collect applies a pickup's effect.
func (g *Game) collect(t PowerUpType) {
	switch t {
	case PowerUpShield:
		from := max(g.ship.ShieldUntil, g.tick)
		if !g.ship.Shield {
			from = g.tick
		}
		g.ship.Shield = true
		g.ship.ShieldUntil = from + g.cfg.PowerUps.ShieldDuration
	case PowerUpExtraLife:
		if g.lives < g.cfg.Ship.MaxLives {
			g.lives++
		}
	}
	g.emit(core.EventPowerUp, int(t))
}

// expireShield turns the shield off once its time is up.
func (g *Game) expireShield() {
	if g.ship.Shield && g.tick >= g.ship.ShieldUntil {
		g.dropShield()
	}
}

func (g *Game) dropShield() {
	g.ship.Shield = false
	g.ship.ShieldUntil = 0
	g.emit(core.EventShieldDown, 0)
}

// shieldTicksLeft returns the remaining shield time, or 0.
func (g *Game) shieldTicksLeft() int {
	if !g.ship.Shield {
		return 0
	}
	return max(g.ship.ShieldUntil-g.tick, 0)
}

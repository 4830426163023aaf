package invasion

import (
	"math"

	"github.com/vovakirdan/alien-invasion/internal/config"
)

// hudRows is the number of rows reserved for the score line.
const hudRows = 1

// formation tracks the shared movement of the alien wave.
type formation struct {
	dir    float64 // +1 moving right, -1 moving left
	startY int     // Top row the wave spawned at; invasions push back to it
}

// waveSize returns how many enemies wave n (1-based) asks for before
// capacity limits.
func waveSize(cfg config.EnemyConfig, n int) int {
	return cfg.BasePerWave + cfg.ExtraPerWave*(n-1)
}

// formationColumns returns how many aliens fit side by side while leaving
// a quarter of the screen free for the formation to sweep across.
func formationColumns(cfg config.EnemyConfig, screenW int) int {
	usable := screenW * 3 / 4
	return max(1, (usable+cfg.GapX)/(cfg.Width+cfg.GapX))
}

// fitRows returns how many formation rows fit between the HUD and the
// ship while keeping two free rows above the ship. Never less than one.
func (g *Game) fitRows() int {
	ec := g.cfg.Enemies
	return max(1, (int(g.ship.Y)-2-hudRows-ec.Top)/(ec.Height+ec.GapY))
}

// capacity returns how many aliens a wave can hold on the current screen.
func (g *Game) capacity() int {
	ec := g.cfg.Enemies
	return formationColumns(ec, g.runtime.ScreenW) * min(ec.MaxRows, g.fitRows())
}

// spawnWave replaces the enemy list with wave n.
func (g *Game) spawnWave(n int) {
	ec := g.cfg.Enemies
	count := min(waveSize(ec, n), g.capacity())

	g.enemies = g.enemies[:0]
	bossInterval := g.difficulty.BombInterval(g.cfg.Boss.BombInterval, g.progress())
	for i := 0; i < count; i++ {
		e := Enemy{
			W:      ec.Width,
			H:      ec.Height,
			Type:   EnemyNormal,
			Health: 1,
			Alive:  true,
		}
		if g.isBossSlot(n, i) {
			e.Type = EnemyBoss
			e.Health = g.cfg.Boss.Health
			e.NextBomb = g.tick + bossInterval/2 + g.rng.Intn(max(bossInterval, 1))
		}
		g.enemies = append(g.enemies, e)
	}

	g.formation.dir = 1
	g.layoutFormation(n)
}

// layoutFormation places the enemies row by row, centered, at the start
// height of wave n, and records that height for pushBack.
func (g *Game) layoutFormation(n int) {
	ec := g.cfg.Enemies
	cols := formationColumns(ec, g.runtime.ScreenW)
	count := len(g.enemies)
	rows := (count + cols - 1) / cols
	usedCols := max(min(count, cols), 1)

	rowPitch := ec.Height + ec.GapY
	colPitch := ec.Width + ec.GapX

	startY := hudRows + ec.Top + min(ec.WaveDescent*(n-1), ec.MaxDescent)
	// Keep at least two free rows between the wave and the ship.
	lowest := int(g.ship.Y) - 2 - rows*rowPitch
	if startY > lowest {
		startY = max(lowest, hudRows)
	}

	width := usedCols*colPitch - ec.GapX
	x0 := max((g.runtime.ScreenW-width)/2, 0)

	for i := range g.enemies {
		g.enemies[i].X = float64(x0 + (i%cols)*colPitch)
		g.enemies[i].Y = float64(startY + (i/cols)*rowPitch)
	}
	g.formation.startY = startY
}

// refitFormation lays the surviving wave out again for the current screen.
// Aliens beyond the new capacity leave the wave without scoring.
func (g *Game) refitFormation() {
	g.pruneEnemies()
	if c := g.capacity(); len(g.enemies) > c {
		g.enemies = g.enemies[:c]
	}
	g.layoutFormation(g.wave)
}

// isBossSlot reports whether slot i of wave n holds a boss.
func (g *Game) isBossSlot(n, i int) bool {
	b := g.cfg.Boss
	return b.Enabled && b.Every > 0 && n > b.FromWave && i%b.Every == 0
}

// moveFormation advances every alive enemy by the shared speed. If any of
// them would leave the screen the whole formation reverses and drops
// instead of moving sideways.
func (g *Game) moveFormation() {
	dx := g.enemySpeed() * g.formation.dir
	screenW := float64(g.runtime.ScreenW)

	bounce := false
	for _, e := range g.enemies {
		if !e.Alive {
			continue
		}
		nx := e.X + dx
		if nx < 0 || nx+float64(e.W) > screenW {
			bounce = true
			break
		}
	}

	if bounce {
		g.formation.dir = -g.formation.dir
		drop := float64(g.cfg.Enemies.Drop)
		for i := range g.enemies {
			if g.enemies[i].Alive {
				g.enemies[i].Y += drop
			}
		}
		return
	}

	for i := range g.enemies {
		if g.enemies[i].Alive {
			g.enemies[i].X += dx
		}
	}
}

// pushBack lifts the formation so its top row is at the wave start height.
func (g *Game) pushBack() {
	top := math.Inf(1)
	for _, e := range g.enemies {
		if e.Alive && e.Y < top {
			top = e.Y
		}
	}
	if math.IsInf(top, 1) {
		return
	}
	dy := top - float64(g.formation.startY)
	if dy <= 0 {
		return
	}
	for i := range g.enemies {
		g.enemies[i].Y -= dy
	}
}

// enemySpeed returns the current formation speed in cells per tick.
func (g *Game) enemySpeed() float64 {
	return g.difficulty.EnemySpeed(g.cfg.Enemies.BaseSpeed, g.progress())
}

// pruneEnemies drops dead enemies, keeping order.
func (g *Game) pruneEnemies() {
	alive := g.enemies[:0]
	for _, e := range g.enemies {
		if e.Alive {
			alive = append(alive, e)
		}
	}
	g.enemies = alive
}

// dropBombs lets every boss whose timer is due release a bomb.
func (g *Game) dropBombs() {
	if !g.cfg.Boss.Enabled {
		return
	}
	interval := max(g.difficulty.BombInterval(g.cfg.Boss.BombInterval, g.progress()), 1)
	bc := g.cfg.Bullets
	for i := range g.enemies {
		e := &g.enemies[i]
		if !e.Alive || e.Type != EnemyBoss || g.tick < e.NextBomb {
			continue
		}
		g.bombs = append(g.bombs, Bullet{
			X:     e.X + float64(e.W/2),
			Y:     e.Y + float64(e.H),
			W:     bc.Width,
			H:     bc.Height,
			Speed: bc.BombSpeed,
		})
		e.NextBomb = g.tick + interval
	}
}

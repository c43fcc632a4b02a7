package skycombat

import (
	"fmt"
	"math"

	"github.com/vovakirdan/sky-combat/internal/config"
	"github.com/vovakirdan/sky-combat/internal/core"
)

// SceneGame is the name of the playing scene.
const SceneGame = "game"

// Game is the playing scene. It owns every entity and mediates all
// interaction between them; actors never reference each other.
type Game struct {
	session    *Session
	cfg        config.SkyCombatConfig
	difficulty *config.DifficultyManager
	rng        *core.Rand
	enemySkin  core.Sprite

	score      uint64
	speed      float64 // Global speed multiplier
	spawnTimer float64
	scoreTimer float64
	elapsed    float64 // Scaled time since the game started

	player            *Player
	enemies           []*Enemy
	enemyProjectiles  []*Projectile
	playerProjectiles []*Projectile
	explosions        []*Explosion
	clouds            []*Cloud
	cloudsSpawned     bool
}

func newGame(s *Session, seed uint64) *Game {
	cfg := s.cfg
	return &Game{
		session:    s,
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		rng:        core.NewRand(seed),
		enemySkin:  s.sprite(spriteEnemy),
		speed:      cfg.Game.Speed,
		spawnTimer: cfg.Game.InitialSpawnDelay,
		player:     NewPlayer(cfg.Player, cfg.Arena, s.sprite(spritePlayer)),
	}
}

// Name implements Scene.
func (g *Game) Name() string {
	return SceneGame
}

// Enter sets up the sky and populates the clouds.
func (g *Game) Enter(r core.Renderer) {
	if !g.cloudsSpawned {
		for i := 0; i < g.cfg.Game.Clouds; i++ {
			g.clouds = append(g.clouds, NewCloud(g.cfg.Cloud, g.cfg.Arena, g.rng))
		}
		g.cloudsSpawned = true
	}
	r.SetBackground(core.ColorTeal)
	r.SetCamera(0, g.cfg.Arena.Height/2)
}

// Exit implements Scene.
func (g *Game) Exit() {}

// Score returns the current score.
func (g *Game) Score() uint64 {
	return g.score
}

// Lives returns the player's remaining health.
func (g *Game) Lives() int {
	return g.player.Health()
}

// Player returns the player ship.
func (g *Game) Player() *Player {
	return g.player
}

// Update runs one frame. The order of the phases matters: collisions see
// positions already moved this frame, and a dead player is never moved.
func (g *Game) Update(in *Frame) Transition {
	if in.Input.Has(core.ActionQuit) {
		return Quit()
	}

	f := &Frame{Draw: in.Draw, Input: in.Input, Delta: in.Delta, Speed: g.speed, Rand: g.rng}
	scaled := f.Scaled()
	g.elapsed += scaled

	g.scoreTimer += scaled
	for g.scoreTimer >= 1 {
		g.scoreTimer--
		g.addScore(1)
	}

	g.spawnTimer -= scaled
	if g.spawnTimer < 0 {
		g.spawnTimer = g.difficulty.SpawnInterval(g.cfg.Game.SpawnInterval, g.score, g.elapsed)
		speed := g.difficulty.EnemySpeed(g.cfg.Enemy.Speed, g.score, g.elapsed)
		g.enemies = append(g.enemies, NewEnemy(g.cfg.Enemy, g.cfg.Arena, speed, g.rng.Uint64(), g.enemySkin))
	}

	for _, c := range g.clouds {
		c.Update(f)
	}

	deadEnemies := g.updateEnemies(f)
	spentShots := g.updateEnemyProjectiles(f)

	if !g.player.Alive() {
		return SwitchTo(g.session.NewGameOver(g.score))
	}

	g.player.Update(f)
	if g.player.CanShoot() {
		g.firePlayer()
	}

	spentPlayerShots, killed := g.updatePlayerProjectiles(f)
	deadEnemies = append(deadEnemies, killed...)

	var doneExplosions []int
	for i, e := range g.explosions {
		e.Update(f)
		if !e.Alive() {
			doneExplosions = append(doneExplosions, i)
		}
	}

	g.drawHUD(f.Draw)

	g.enemies = prune(g.enemies, deadEnemies)
	g.enemyProjectiles = prune(g.enemyProjectiles, spentShots)
	g.playerProjectiles = prune(g.playerProjectiles, spentPlayerShots)
	g.explosions = prune(g.explosions, doneExplosions)

	return Stay()
}

// updateEnemies moves every enemy, lets those in the firing band shoot at
// the player and returns the indices of enemies that left the arena.
func (g *Game) updateEnemies(f *Frame) []int {
	var gone []int
	band := g.cfg.Enemy.FiringBand
	limit := g.cfg.Arena.Width/2 + g.cfg.Enemy.ExitMargin

	for i, e := range g.enemies {
		e.Update(f)

		if e.CanShoot() && band.Contains(e.Y()) {
			shot := NewProjectile(g.cfg.Enemy.ProjectileSpeed, Angle(e, g.player), e.X(), e.Y(), core.ColorRed)
			g.enemyProjectiles = append(g.enemyProjectiles, shot)
			e.ResetShootInterval()
		}

		if e.Y() < -g.cfg.Enemy.ExitMargin || e.X() > limit || e.X() < -limit {
			gone = append(gone, i)
		}
	}
	return gone
}

// updateEnemyProjectiles moves enemy shots, applies hits on the player and
// returns the indices of shots to drop.
func (g *Game) updateEnemyProjectiles(f *Frame) []int {
	var spent []int
	for i, p := range g.enemyProjectiles {
		p.Update(f)

		if Intersects(p, g.player) {
			g.player.Damage()
			spent = append(spent, i)
		}
		if p.Y() < g.cfg.Enemy.ProjectileFloor || Distance(p, g.player) > g.cfg.Enemy.ProjectileRange {
			spent = append(spent, i)
		}
	}
	return spent
}

func (g *Game) firePlayer() {
	pc := g.cfg.Player
	x, y := g.player.X(), g.player.Y()
	g.playerProjectiles = append(g.playerProjectiles,
		NewProjectile(pc.ProjectileSpeed, 90, x-pc.MuzzleOffset, y, core.ColorYellow),
		NewProjectile(pc.ProjectileSpeed, 90, x+pc.MuzzleOffset, y, core.ColorYellow),
	)
	g.player.ResetShootInterval()
}

// updatePlayerProjectiles moves the player's shots and resolves hits.
// A shot damages every live enemy it overlaps, in spawn order, until one of
// them dies.
func (g *Game) updatePlayerProjectiles(f *Frame) (spent, killed []int) {
	for i, p := range g.playerProjectiles {
		p.Update(f)

		if Distance(p, g.player) > g.cfg.Player.ProjectileRange {
			spent = append(spent, i)
			continue
		}

		for j, e := range g.enemies {
			if !e.Alive() || !Intersects(p, e) {
				continue
			}
			e.Damage()
			spent = append(spent, i)
			if !e.Alive() {
				g.addScore(g.cfg.Game.KillBonus)
				killed = append(killed, j)
				g.explosions = append(g.explosions, NewExplosion(g.cfg.Explosion, e.X(), e.Y()))
				break
			}
		}
	}
	return spent, killed
}

func (g *Game) drawHUD(r core.Renderer) {
	left := -g.cfg.Arena.Width/2 + 5
	top := g.cfg.Arena.Height
	r.Text(fmt.Sprintf("SCORE: %d", g.score), core.Font3x5, left, top-10, core.ColorPurple)
	r.Text(fmt.Sprintf("LIVES: %d", g.player.Health()), core.Font3x5, left, top-20, core.ColorPurple)
}

// addScore adds n points, saturating at the maximum.
func (g *Game) addScore(n uint64) {
	if g.score > math.MaxUint64-n {
		g.score = math.MaxUint64
		return
	}
	g.score += n
}

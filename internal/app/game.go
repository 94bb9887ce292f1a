// internal/app/game.go
package app

import (
	"carrier-defense/internal/component"
	"carrier-defense/internal/config"
	"carrier-defense/internal/defs"
	"carrier-defense/internal/entity"
	"carrier-defense/internal/event"
	"carrier-defense/internal/logger"
	"carrier-defense/internal/store"
	"carrier-defense/internal/system"
	"carrier-defense/internal/target"
	"carrier-defense/internal/terrain"
	"carrier-defense/internal/types"
	"carrier-defense/internal/utils"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// HardpointDefID — определение огневых точек носителя.
const HardpointDefID = "HARDPOINT"

// Options — всё, из чего собирается партия.
type Options struct {
	Seed       int64 // 0 — случайный сид
	Width      float64
	Height     float64
	Defs       *defs.Library
	Log        *logrus.Logger
	Waves      config.WaveConfig
	Engagement config.EngagementConfig
	Terrain    config.TerrainConfig
}

// DefaultOptions — мир размером с экран под HUD и стандартные настройки.
func DefaultOptions() Options {
	return Options{
		Width:      config.ScreenWidth,
		Height:     config.ScreenHeight - config.HUDHeight,
		Waves:      config.DefaultWaveConfig(),
		Engagement: config.DefaultEngagementConfig(),
		Terrain:    config.DefaultTerrainConfig(),
	}
}

// Game holds the main game state and logic.
type Game struct {
	ECS             *entity.ECS
	Terrain         *terrain.Grid
	Targets         *target.Registry
	EventDispatcher *event.Dispatcher
	Counters        *store.Memory
	Rng             *utils.PRNGService
	Defs            *defs.Library
	Scheduler       *system.Scheduler

	WaveDirector     *system.WaveDirector
	EngagementSystem *system.EngagementSystem
	TurretSystem     *system.TurretSystem
	ProjectileSystem *system.ProjectileSystem
	DrillSystem      *system.DrillSystem

	SpeedMultiplier float64

	ctx    *system.Context
	log    *logrus.Entry
	width  float64
	height float64

	// Game state
	gameTime   float64
	isPaused   bool
	over       bool
	victory    bool
	overReason string
}

// NewGame initializes a new game instance.
func NewGame(opts Options) (*Game, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid world size %.0fx%.0f", opts.Width, opts.Height)
	}
	lib := opts.Defs
	if lib == nil {
		var err error
		if lib, err = defs.Default(); err != nil {
			return nil, fmt.Errorf("failed to load default definitions: %w", err)
		}
	}
	if _, ok := lib.Turrets[HardpointDefID]; !ok {
		return nil, errors.New("definitions have no " + HardpointDefID + " turret")
	}
	log := opts.Log
	if log == nil {
		log = logger.Discard()
	}

	rng := utils.NewPRNGService(opts.Seed)
	terrainCfg := opts.Terrain
	if terrainCfg.Seed == 0 {
		terrainCfg.Seed = rng.Seed()
	}

	g := &Game{
		ECS:             entity.NewECS(),
		Terrain:         terrain.Generate(opts.Width, opts.Height, config.TileSize, terrainCfg),
		Targets:         target.NewRegistry(),
		EventDispatcher: event.NewDispatcher(),
		Counters:        store.NewMemory(),
		Rng:             rng,
		Defs:            lib,
		Scheduler:       system.NewScheduler(),
		SpeedMultiplier: 1.0,
		log:             logger.For(log, "game"),
		width:           opts.Width,
		height:          opts.Height,
	}
	g.ctx = &system.Context{
		ECS:        g.ECS,
		Terrain:    g.Terrain,
		Targets:    g.Targets,
		Events:     g.EventDispatcher,
		Counters:   g.Counters,
		World:      g,
		Rng:        g.Rng,
		Defs:       lib,
		Scheduler:  g.Scheduler,
		Log:        log,
		Waves:      opts.Waves,
		Engagement: opts.Engagement,
	}
	g.WaveDirector = system.NewWaveDirector(g.ctx)
	g.EngagementSystem = system.NewEngagementSystem(g.ctx)
	g.TurretSystem = system.NewTurretSystem(g.ctx)
	g.ProjectileSystem = system.NewProjectileSystem(g.ctx)
	g.DrillSystem = system.NewDrillSystem(g.ctx)

	g.Counters.Set(store.ResourcesOre, config.InitialOre)
	g.Counters.Set(store.WaveCurrent, 0)
	g.Counters.Set(store.EnemiesAlive, 0.0)
	g.Counters.Set(store.EnemiesKilled, 0.0)
	g.Counters.Set(store.TurretsCount, 0.0)
	g.Counters.Set(store.GameOver, false)

	g.createCarrier()

	listener := &GameEventListener{game: g}
	g.EventDispatcher.Subscribe(event.TargetDestroyed, listener)
	g.EventDispatcher.Subscribe(event.AllWavesCompleted, listener)
	g.EventDispatcher.Subscribe(event.EnemyKilled, g.WaveDirector)

	g.WaveDirector.Start()
	g.log.WithFields(logrus.Fields{
		"seed":  rng.Seed(),
		"cols":  g.Terrain.Cols(),
		"rows":  g.Terrain.Rows(),
		"waves": opts.Waves.MaxWaves,
	}).Info("game created")
	return g, nil
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.TargetDestroyed:
		if p, ok := e.Data.(event.TargetPayload); ok {
			l.game.handleTargetDestroyed(p.Target)
		}
	case event.AllWavesCompleted:
		l.game.endGame(true, "all waves completed")
	}
}

// createCarrier вешает носитель над серединой мира и ставит на него огневые точки.
func (g *Game) createCarrier() {
	c := &component.Carrier{
		ID:        g.ECS.NewEntity(),
		Pos:       component.Position{X: g.width / 2, Y: g.height * config.CarrierAltitude},
		Structure: component.NewStructure(config.CarrierHealth),
	}
	def := g.Defs.Turrets[HardpointDefID]
	for _, dx := range []float64{-config.HardpointOffsetX, config.HardpointOffsetX} {
		hp := component.NewTurret(g.ECS.NewEntity(), def, c.Pos.X+dx, c.Pos.Y+config.HardpointOffsetY, true)
		c.Hardpoints = append(c.Hardpoints, hp)
		g.ECS.Turrets[hp.ID] = hp
		g.Targets.Register(hp)
	}
	g.ECS.Carrier = c
	g.Targets.Register(c)
}

// Bounds — прямоугольник мира.
func (g *Game) Bounds() (types.Rect, bool) {
	return types.Rect{Width: g.width, Height: g.height}, g.width > 0 && g.height > 0
}

// CarrierPosition — позиция носителя, пока он цел.
func (g *Game) CarrierPosition() (float64, float64, bool) {
	c := g.ECS.Carrier
	if c == nil || c.Destroyed {
		return 0, 0, false
	}
	return c.Pos.X, c.Pos.Y, true
}

// Update продвигает игру на deltaTime реальных секунд.
func (g *Game) Update(deltaTime float64) {
	if g.isPaused || g.over {
		return
	}
	dt := deltaTime * g.SpeedMultiplier
	g.gameTime += dt
	g.ECS.GameTime = g.gameTime

	g.Scheduler.Run(g.gameTime)
	g.WaveDirector.Update()
	g.EngagementSystem.Update(dt)
	g.TurretSystem.Update(dt)
	g.ProjectileSystem.Update(dt)
	g.DrillSystem.Update(dt)
	if c := g.ECS.Carrier; c != nil {
		c.Structure.Tick(dt)
	}
	g.cleanupDestroyedEntities()
}

// cleanupDestroyedEntities убирает убитых врагов и сообщает о каждом.
func (g *Game) cleanupDestroyedEntities() {
	for _, e := range g.ECS.EnemyList() {
		if e.IsAlive() {
			continue
		}
		g.removeEnemy(e, false)
	}
}

func (g *Game) removeEnemy(e *component.Enemy, cleared bool) {
	delete(g.ECS.Enemies, e.ID)
	store.Add(g.Counters, store.EnemiesAlive, -1)
	if !cleared {
		store.Add(g.Counters, store.EnemiesKilled, 1)
	}
	g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyPayload{
		EnemyID:   e.ID,
		WaveID:    e.WaveID,
		Archetype: string(e.Archetype),
		X:         e.Pos.X,
		Y:         e.Pos.Y,
		Cleared:   cleared,
	}})
}

// handleTargetDestroyed снимает разрушенную постройку с учёта. Это делает
// владелец: тот, кто нанёс удар, только сообщает о разрушении.
func (g *Game) handleTargetDestroyed(t interface{}) {
	switch v := t.(type) {
	case *component.Turret:
		if !g.Targets.Unregister(v) {
			return
		}
		delete(g.ECS.Turrets, v.ID)
		if !v.Mounted {
			store.Add(g.Counters, store.TurretsCount, -1)
		}
		g.log.WithFields(logrus.Fields{"turret": v.ID, "mounted": v.Mounted}).Info("turret destroyed")
		g.EventDispatcher.Dispatch(event.Event{Type: event.TurretDestroyed, Data: event.TurretPayload{
			TurretID: v.ID,
			Kind:     string(v.Kind),
			X:        v.Pos.X,
			Y:        v.Pos.Y,
		}})
	case *component.Drill:
		if !g.Targets.Unregister(v) {
			return
		}
		delete(g.ECS.Drills, v.ID)
		g.log.WithField("drill", v.ID).Info("drill destroyed")
	case *component.Carrier:
		if !g.Targets.Unregister(v) {
			return
		}
		g.EventDispatcher.Dispatch(event.Event{Type: event.CarrierDestroyed, Data: event.TargetPayload{
			Target:   v,
			Priority: v.Priority().String(),
			X:        v.Pos.X,
			Y:        v.Pos.Y,
		}})
		g.endGame(false, "carrier destroyed")
	default:
		if tg, ok := t.(target.Targetable); ok {
			g.Targets.Unregister(tg)
		}
	}
}

func (g *Game) endGame(victory bool, reason string) {
	if g.over {
		return
	}
	g.over = true
	g.victory = victory
	g.overReason = reason
	g.WaveDirector.Stop()
	g.Counters.Set(store.GameOver, true)
	g.log.WithFields(logrus.Fields{"victory": victory, "reason": reason, "time": g.gameTime}).Info("game over")
}

// --- Public Accessors & Mutators ---

// ClearEnemies снимает с поля всех врагов. Для волн это равносильно их гибели.
func (g *Game) ClearEnemies() {
	for _, e := range g.ECS.EnemyList() {
		g.removeEnemy(e, true)
	}
}

func (g *Game) ClearProjectiles() {
	for id := range g.ECS.Projectiles {
		delete(g.ECS.Projectiles, id)
	}
}

// CallNextWave запускает следующую волну, не дожидаясь таймера.
func (g *Game) CallNextWave() {
	g.WaveDirector.CallNextWave()
}

// SetSpeed задаёт множитель скорости игры.
func (g *Game) SetSpeed(multiplier float64) {
	if multiplier <= 0 {
		multiplier = 1
	}
	g.SpeedMultiplier = multiplier
}

func (g *Game) TogglePause() {
	g.isPaused = !g.isPaused
}

// IsPaused возвращает текущее состояние паузы.
func (g *Game) IsPaused() bool {
	return g.isPaused
}

func (g *Game) IsOver() bool {
	return g.over
}

// Outcome — победа ли и почему игра закончилась.
func (g *Game) Outcome() (victory bool, reason string) {
	return g.victory, g.overReason
}

func (g *Game) GetGameTime() float64 {
	return g.gameTime
}

// Ore — текущий запас руды.
func (g *Game) Ore() float64 {
	return store.Float(g.Counters, store.ResourcesOre)
}

func (g *Game) Width() float64 {
	return g.width
}

func (g *Game) Height() float64 {
	return g.height
}

// cmd/game/main.go
package main

import (
	"carrier-defense/internal/app"
	"carrier-defense/internal/audio"
	"carrier-defense/internal/config"
	"carrier-defense/internal/defs"
	"carrier-defense/internal/logger"
	"carrier-defense/internal/state"
	"flag"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const startFromGame = true // true — начинать с игры, false — с меню

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	seed := flag.Int64("seed", 0, "world seed, 0 for random")
	defsDir := flag.String("defs", "", "directory with enemies.json, turrets.json, spawn_weights.json")
	mute := flag.Bool("mute", false, "disable sound")
	pprofAddr := flag.String("pprof", "localhost:6060", "pprof listen address, empty to disable")
	flag.Parse()

	log := logger.New()

	if *pprofAddr != "" {
		go func() {
			log.WithError(http.ListenAndServe(*pprofAddr, nil)).Warn("pprof server stopped")
		}()
	}

	lib, err := loadDefs(*defsDir)
	if err != nil {
		log.WithError(err).Fatal("failed to load definitions")
	}

	sound := audio.NewSoundManager(logger.For(log, "audio"))
	if !*mute {
		if err := sound.Initialize(); err != nil {
			// без звука игра работает
			log.WithError(err).Warn("audio initialization failed")
		}
	}
	defer sound.Cleanup()

	factory := func() (*app.Game, error) {
		opts := app.DefaultOptions()
		opts.Seed = *seed
		opts.Defs = lib
		opts.Log = log
		g, err := app.NewGame(opts)
		if err != nil {
			return nil, err
		}
		for _, et := range audio.Events() {
			g.EventDispatcher.Subscribe(et, sound)
		}
		log.WithField("seed", g.Rng.Seed()).Info("new game")
		return g, nil
	}

	sm := state.NewStateMachine(factory, log) // Создаём машину состояний
	if startFromGame {
		if err := sm.StartGame(); err != nil {
			log.WithError(err).Fatal("failed to start game")
		}
	} else {
		sm.SetState(state.NewMenuState(sm)) // Устанавливаем состояние меню
	}
	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Carrier Defense")
	if err := ebiten.RunGame(game); err != nil {
		log.WithError(err).Fatal("game loop failed")
	}
}

func loadDefs(dir string) (*defs.Library, error) {
	if dir == "" {
		return defs.Default()
	}
	return defs.LoadDir(dir)
}

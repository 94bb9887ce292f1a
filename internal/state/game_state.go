// internal/state/game_state.go
package state

import (
	"carrier-defense/internal/app"
	"carrier-defense/internal/config"
	"carrier-defense/internal/defs"
	"carrier-defense/internal/render"
	"carrier-defense/internal/ui"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState — состояние игры
type GameState struct {
	sm            *StateMachine
	game          *app.Game
	renderer      *render.Renderer
	hud           *render.HUD
	waveIndicator *ui.WaveIndicator
	speedButton   *ui.SpeedButton
	pauseButton   *ui.PauseButton
	maxWaves      int
}

func NewGameState(sm *StateMachine) (*GameState, error) {
	if sm.factory == nil {
		return nil, fmt.Errorf("state machine has no game factory")
	}
	gameLogic, err := sm.factory()
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	speedX := float32(config.ScreenWidth - config.SpeedButtonOffsetX)
	return &GameState{
		sm:            sm,
		game:          gameLogic,
		renderer:      render.NewRenderer(gameLogic),
		hud:           render.NewHUD(gameLogic),
		waveIndicator: ui.NewWaveIndicator(config.WaveIndicatorX, config.WaveIndicatorY),
		speedButton:   ui.NewSpeedButton(speedX, config.SpeedButtonY, config.SpeedButtonSize),
		pauseButton:   ui.NewPauseButton(speedX+40, config.SpeedButtonY, config.SpeedButtonSize*0.8),
		maxWaves:      gameLogic.WaveDirector.MaxWaves(),
	}, nil
}

// Game — партия этого состояния.
func (g *GameState) Game() *app.Game {
	return g.game
}

func (g *GameState) Enter() {
	g.pauseButton.SetPaused(false)
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.pause()
		return
	}

	g.game.Update(deltaTime)
	if g.game.IsOver() {
		g.sm.SetState(NewGameOverState(g.sm, g))
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.game.CallNextWave()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		x, y := ebiten.CursorPosition()
		g.game.PlaceDrill(screenToWorld(x, y))
	}

	// Обработка левой кнопки
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		// Проверяем клик по UI элементам в первую очередь
		switch {
		case g.speedButton.Contains(x, y):
			if g.speedButton.ToggleState() {
				g.game.SetSpeed(g.speedButton.Multiplier())
			}
		case g.pauseButton.Contains(x, y):
			if g.pauseButton.TogglePause() {
				g.pause()
			}
		case y > config.HUDHeight:
			wx, wy := screenToWorld(x, y)
			g.game.PlaceTurret(wx, wy, defs.TurretPointDefense)
		}
	}

	// Правый клик всегда игровой
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		if y > config.HUDHeight {
			wx, wy := screenToWorld(x, y)
			g.game.PlaceTurret(wx, wy, defs.TurretMacro)
		}
	}
}

func (g *GameState) pause() {
	g.pauseButton.SetPaused(true)
	g.sm.SetState(NewPauseState(g.sm, g))
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)
	g.hud.Draw(screen)
	g.waveIndicator.Draw(screen, g.game.WaveDirector.WaveNumber(), g.maxWaves, g.waveProgress(), g.hud.FontFace())
	g.speedButton.Draw(screen)
	g.pauseButton.Draw(screen)
}

func (g *GameState) Exit() {}

// waveProgress — прогресс самой старой активной волны, -1 если волн нет.
func (g *GameState) waveProgress() float64 {
	waves := g.game.WaveDirector.ActiveWaves()
	if len(waves) == 0 {
		return -1
	}
	return waves[0].Progress()
}

func screenToWorld(x, y int) (float64, float64) {
	return float64(x), float64(y - config.HUDHeight)
}

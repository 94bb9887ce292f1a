// internal/state/game_over_state.go
package state

import (
	"carrier-defense/internal/config"
	"carrier-defense/internal/store"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GameOverState показывает итог партии поверх последнего кадра.
type GameOverState struct {
	sm       *StateMachine
	finished *GameState
}

func NewGameOverState(sm *StateMachine, finished *GameState) *GameOverState {
	return &GameOverState{sm: sm, finished: finished}
}

func (s *GameOverState) Enter() {
	victory, reason := s.finished.game.Outcome()
	s.sm.log.WithField("victory", victory).Info(reason)
}

func (s *GameOverState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.sm.SetState(NewMenuState(s.sm))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.finished.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)

	g := s.finished.game
	face := s.finished.hud.FontFace()
	victory, _ := g.Outcome()
	title := "CARRIER LOST"
	if victory {
		title = "ALL WAVES REPELLED"
	}
	y := config.ScreenHeight/2 - 20
	drawCentered(screen, title, face, y)
	drawCentered(screen, fmt.Sprintf("waves %d   kills %d   ore %.0f   time %.0fs",
		g.WaveDirector.WaveNumber(),
		store.Int(g.Counters, store.EnemiesKilled),
		g.Ore(),
		g.GetGameTime(),
	), face, y+20)
	drawCentered(screen, "SPACE to continue", face, y+40)
}

func (s *GameOverState) Exit() {}

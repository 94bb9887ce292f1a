// internal/state/pause_state.go
package state

import (
	"carrier-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает партию и рисует её под затемнением.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {
	s.previousState.game.TogglePause()
}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if s.previousState.pauseButton.Contains(x, y) && s.previousState.pauseButton.TogglePause() {
			unpause = true
		}
	}

	if unpause {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	drawCentered(screen, "PAUSED", s.previousState.hud.FontFace(), config.ScreenHeight/2)
}

func (s *PauseState) Exit() {
	s.previousState.game.TogglePause()
}

// drawCentered рисует строку по центру экрана по горизонтали.
func drawCentered(screen *ebiten.Image, line string, face font.Face, y int) {
	width := font.MeasureString(face, line).Ceil()
	text.Draw(screen, line, face, (config.ScreenWidth-width)/2, y, config.TextLightColor)
}

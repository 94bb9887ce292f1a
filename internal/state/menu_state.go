// internal/state/menu_state.go
package state

import (
	"carrier-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/basicfont"
)

var controls = []string{
	"LMB  point defense turret",
	"RMB  macro turret",
	"D    drill under cursor",
	"N    call next wave",
	"P    pause",
}

// MenuState — заставка перед партией.
type MenuState struct {
	sm        *StateMachine
	lastError error
}

func NewMenuState(sm *StateMachine) *MenuState {
	return &MenuState{sm: sm}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.lastError = m.sm.StartGame()
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := basicfont.Face7x13
	drawCentered(screen, "CARRIER DEFENSE", face, config.ScreenHeight/2-20)
	drawCentered(screen, "SPACE to launch", face, config.ScreenHeight/2)
	for i, line := range controls {
		drawCentered(screen, line, face, config.ScreenHeight/2+40+i*16)
	}
	if m.lastError != nil {
		drawCentered(screen, m.lastError.Error(), face, config.ScreenHeight/2+40+len(controls)*16+20)
	}
}

func (m *MenuState) Exit() {}

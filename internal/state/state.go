// internal/state/state.go
package state

import (
	"carrier-defense/internal/app"
	"carrier-defense/internal/logger"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// Factory собирает новую партию: из меню и после конца игры.
type Factory func() (*app.Game, error)

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
	factory Factory
	log     *logrus.Entry
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine(factory Factory, log *logrus.Logger) *StateMachine {
	return &StateMachine{factory: factory, log: logger.For(log, "state")}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

// Current — текущее состояние.
func (sm *StateMachine) Current() State {
	return sm.current
}

// StartGame собирает новую партию и переходит в неё.
// При ошибке остаётся в текущем состоянии.
func (sm *StateMachine) StartGame() error {
	gs, err := NewGameState(sm)
	if err != nil {
		sm.log.WithError(err).Error("failed to start game")
		return err
	}
	sm.SetState(gs)
	return nil
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

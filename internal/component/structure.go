// internal/component/structure.go
package component

import "carrier-defense/internal/config"

// Structure — здоровье постройки игрока (носитель, турель, бур).
type Structure struct {
	Health     float64
	MaxHealth  float64
	Destroyed  bool
	FlashTimer float64 // сколько ещё секунд подсвечивать попадание
}

func NewStructure(health float64) Structure {
	return Structure{Health: health, MaxHealth: health}
}

// TakeDamage наносит урон и возвращает true, если именно этот удар разрушил постройку.
// Урон по уже разрушенной постройке игнорируется.
func (s *Structure) TakeDamage(amount float64) bool {
	if s.Destroyed || amount <= 0 {
		return false
	}
	s.Health -= amount
	s.FlashTimer = config.FlashDuration
	if s.Health <= 0 {
		s.Health = 0
		s.Destroyed = true
		return true
	}
	return false
}

func (s *Structure) IsDestroyed() bool {
	return s.Destroyed
}

// HealthRatio — доля оставшегося здоровья, 0..1
func (s *Structure) HealthRatio() float64 {
	if s.MaxHealth <= 0 {
		return 0
	}
	return s.Health / s.MaxHealth
}

// Tick гасит подсветку попадания
func (s *Structure) Tick(deltaTime float64) {
	if s.FlashTimer > 0 {
		s.FlashTimer -= deltaTime
		if s.FlashTimer < 0 {
			s.FlashTimer = 0
		}
	}
}

package component

import (
	"carrier-defense/internal/config"
	"carrier-defense/internal/defs"
	"carrier-defense/internal/target"
	"carrier-defense/internal/types"
	"image/color"
)

// EnemyState — состояние врага в бою.
type EnemyState int

const (
	StateSeeking EnemyState = iota
	StateApproaching
	StateAttacking
	StatePatrolling
	StateRetreating // только у стрелков
)

func (s EnemyState) String() string {
	switch s {
	case StateSeeking:
		return "SEEKING"
	case StateApproaching:
		return "APPROACHING"
	case StateAttacking:
		return "ATTACKING"
	case StatePatrolling:
		return "PATROLLING"
	case StateRetreating:
		return "RETREATING"
	default:
		return "UNKNOWN"
	}
}

// Enemy представляет вражескую сущность.
// Поведение выбирается по Archetype, а не типом структуры.
type Enemy struct {
	ID        types.EntityID
	DefID     string
	Archetype defs.Archetype
	WaveID    int
	Pos       Position

	Health    float64
	MaxHealth float64
	Speed     float64
	Damage    float64

	AttackRange    float64 // включительно
	MinRange       float64 // стрелки отступают, если ближе
	AttackInterval float64
	AttackCooldown float64 // не бывает отрицательным
	ShotRange      float64

	Target     target.Targetable
	TargetType target.Priority
	State      EnemyState
	Heading    float64 // курс патрулирования
	Facing     float64 // куда смотрит
	Dead       bool

	FlashTimer float64
	Color      color.RGBA
	Radius     float64
}

// NewEnemy собирает врага из определения, умножая здоровье и урон на сложность волны.
func NewEnemy(id types.EntityID, def defs.EnemyDefinition, waveID int, difficulty, x, y float64) *Enemy {
	if difficulty <= 0 {
		difficulty = 1
	}
	radius := config.EnemyRadius
	if def.Visuals.RadiusFactor > 0 {
		radius *= def.Visuals.RadiusFactor
	}
	health := def.Health * difficulty
	return &Enemy{
		ID:             id,
		DefID:          def.ID,
		Archetype:      def.Archetype,
		WaveID:         waveID,
		Pos:            Position{X: x, Y: y},
		Health:         health,
		MaxHealth:      health,
		Speed:          def.Speed,
		Damage:         def.Damage * difficulty,
		AttackRange:    def.AttackRange,
		MinRange:       def.MinRange,
		AttackInterval: def.AttackInterval,
		ShotRange:      def.ShotRange,
		State:          StateSeeking,
		Color:          def.Visuals.Color,
		Radius:         radius,
	}
}

// TakeDamage наносит урон и возвращает true, если этот удар убил врага.
func (e *Enemy) TakeDamage(amount float64) bool {
	if e.Dead || amount <= 0 {
		return false
	}
	e.Health -= amount
	e.FlashTimer = config.FlashDuration
	if e.Health <= 0 {
		e.Health = 0
		e.Dead = true
		return true
	}
	return false
}

func (e *Enemy) IsAlive() bool {
	return !e.Dead && e.Health > 0
}

// ClearTarget сбрасывает цель и возвращает врага к поиску.
func (e *Enemy) ClearTarget() {
	e.Target = nil
	e.State = StateSeeking
}

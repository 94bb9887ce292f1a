// internal/component/turret.go
package component

import (
	"carrier-defense/internal/config"
	"carrier-defense/internal/defs"
	"carrier-defense/internal/target"
	"carrier-defense/internal/types"
	"image/color"
)

// TurretState — состояние наведения турели.
type TurretState int

const (
	TurretIdle     TurretState = iota // цели нет
	TurretTracking                    // цель есть, идёт поворот
	TurretAligned                     // наведена, ждёт перезарядки
)

func (s TurretState) String() string {
	switch s {
	case TurretTracking:
		return "TRACKING"
	case TurretAligned:
		return "ALIGNED"
	default:
		return "IDLE"
	}
}

// Turret — турель на грунте или огневая точка носителя (Mounted).
type Turret struct {
	ID    types.EntityID
	DefID string
	Kind  defs.TurretKind
	Pos   Position
	Structure
	Mounted bool

	// CurrentAngle - текущий угол поворота в радианах.
	CurrentAngle float64
	// TurnSpeed - скорость поворота в радианах в секунду.
	TurnSpeed float64
	Range     float64
	Damage    float64
	FireRate  float64 // выстрелов в секунду
	// FireCooldown - оставшееся время до следующего выстрела
	FireCooldown float64
	SplashRadius float64

	// Заряд (только MACRO): копится, пока цель удерживается, сбрасывается выстрелом.
	Charge      float64
	ChargeRate  float64
	ChargeDecay float64
	MaxCharge   float64

	State  TurretState
	Target *Enemy
	Color  color.RGBA
	Radius float64
}

// NewTurret собирает турель из определения.
func NewTurret(id types.EntityID, def defs.TurretDefinition, x, y float64, mounted bool) *Turret {
	radius := config.TurretRadius
	if def.Visuals.RadiusFactor > 0 {
		radius *= def.Visuals.RadiusFactor
	}
	return &Turret{
		ID:           id,
		DefID:        def.ID,
		Kind:         def.Kind,
		Pos:          Position{X: x, Y: y},
		Structure:    NewStructure(def.Health),
		Mounted:      mounted,
		CurrentAngle: -1.5707963267948966, // смотрит вверх
		TurnSpeed:    def.TurnSpeed,
		Range:        def.Range,
		Damage:       def.Damage,
		FireRate:     def.FireRate,
		SplashRadius: def.SplashRadius,
		ChargeRate:   def.ChargeRate,
		ChargeDecay:  def.ChargeDecay,
		MaxCharge:    def.MaxCharge,
		Color:        def.Visuals.Color,
		Radius:       radius,
	}
}

func (t *Turret) Position() (float64, float64) { return t.Pos.X, t.Pos.Y }

// Priority: огневая точка носителя важнее наземной турели.
func (t *Turret) Priority() target.Priority {
	if t.Mounted {
		return target.PriorityCarrierHardpoint
	}
	return target.PriorityTurret
}

func (t *Turret) HitRadius() float64 { return t.Radius }

// VisualScale — во сколько раз увеличить снаряд/ствол при текущем заряде
func (t *Turret) VisualScale() float64 {
	return 1 + t.Charge/2
}

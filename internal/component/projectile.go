// internal/component/projectile.go
package component

import (
	"carrier-defense/internal/types"
	"image/color"
)

// Faction — чей снаряд.
type Faction int

const (
	FactionEnemy  Faction = iota // бьёт по целям игрока
	FactionPlayer                // бьёт по врагам
)

// Projectile представляет летящий снаряд. Летит по прямой,
// исчезает на MaxRange или при первом попадании.
type Projectile struct {
	ID        types.EntityID
	Faction   Faction
	SourceID  types.EntityID
	Pos       Position
	Direction float64
	Speed     float64
	Damage    float64
	Traveled  float64
	MaxRange  float64
	Radius    float64
	// SplashRadius > 0 — урон по площади в точке попадания
	SplashRadius float64
	// CraterRadius > 0 — снаряд рвёт грунт при попадании в него
	CraterRadius float64
	Scale        float64
	Expired      bool
	Color        color.RGBA
}

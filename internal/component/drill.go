// internal/component/drill.go
package component

import (
	"carrier-defense/internal/config"
	"carrier-defense/internal/target"
	"carrier-defense/internal/types"
)

// Drill — бур на поверхности, добывает руду из грунта под собой.
type Drill struct {
	ID  types.EntityID
	Pos Position
	Structure
	MineTimer float64
	Mined     float64 // сколько руды добыто за всё время
	// Stalled — бур упёрся в коренную породу или край сетки
	Stalled bool
}

func (d *Drill) Position() (float64, float64) { return d.Pos.X, d.Pos.Y }

func (d *Drill) Priority() target.Priority { return target.PriorityDrill }

func (d *Drill) HitRadius() float64 { return config.DrillRadius }

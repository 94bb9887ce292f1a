// internal/component/carrier.go
package component

import (
	"carrier-defense/internal/config"
	"carrier-defense/internal/target"
	"carrier-defense/internal/types"
)

// Carrier — база игрока. Висит над поверхностью, несёт огневые точки.
type Carrier struct {
	ID  types.EntityID
	Pos Position
	Structure
	Hardpoints []*Turret
}

func (c *Carrier) Position() (float64, float64) { return c.Pos.X, c.Pos.Y }

func (c *Carrier) Priority() target.Priority { return target.PriorityCarrier }

func (c *Carrier) HitRadius() float64 { return config.CarrierRadius }

// AliveHardpoints — неразрушенные огневые точки.
func (c *Carrier) AliveHardpoints() int {
	n := 0
	for _, hp := range c.Hardpoints {
		if !hp.Destroyed {
			n++
		}
	}
	return n
}

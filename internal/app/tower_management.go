// internal/app/tower_management.go
package app

import (
	"carrier-defense/internal/component"
	"carrier-defense/internal/config"
	"carrier-defense/internal/defs"
	"carrier-defense/internal/event"
	"carrier-defense/internal/store"
	"carrier-defense/internal/system"
	"carrier-defense/internal/types"

	"github.com/sirupsen/logrus"
)

// turretDefIDs — какое определение строится для каждого вида турели.
var turretDefIDs = map[defs.TurretKind]string{
	defs.TurretPointDefense: "TURRET_POINT_DEFENSE",
	defs.TurretMacro:        "TURRET_MACRO",
}

// PlaceTurret ставит турель на поверхность под точкой (x, y).
// Возвращает id и true, если место подходит и руды хватает.
func (g *Game) PlaceTurret(x, y float64, kind defs.TurretKind) (types.EntityID, bool) {
	def, ok := g.turretDef(kind)
	if !ok {
		g.log.WithField("kind", kind).Warn("unknown turret kind")
		return 0, false
	}
	radius := config.TurretRadius
	if def.Visuals.RadiusFactor > 0 {
		radius *= def.Visuals.RadiusFactor
	}
	px, py, ok := g.canPlace(x, y, radius, def.Cost)
	if !ok {
		return 0, false
	}

	t := component.NewTurret(g.ECS.NewEntity(), def, px, py, false)
	g.ECS.Turrets[t.ID] = t
	g.Targets.Register(t)
	store.Add(g.Counters, store.ResourcesOre, -def.Cost)
	store.Add(g.Counters, store.TurretsCount, 1)

	g.log.WithFields(logrus.Fields{"turret": t.ID, "kind": kind, "x": px, "y": py}).Debug("turret placed")
	g.EventDispatcher.Dispatch(event.Event{Type: event.TurretPlaced, Data: event.TurretPayload{
		TurretID: t.ID,
		Kind:     string(kind),
		X:        px,
		Y:        py,
	}})
	return t.ID, true
}

// PlaceDrill ставит бур на поверхность под точкой (x, y).
func (g *Game) PlaceDrill(x, y float64) (types.EntityID, bool) {
	px, py, ok := g.canPlace(x, y, config.DrillRadius, config.DrillCost)
	if !ok {
		return 0, false
	}
	d := &component.Drill{
		ID:        g.ECS.NewEntity(),
		Pos:       component.Position{X: px, Y: py},
		Structure: component.NewStructure(config.DrillHealth),
	}
	g.ECS.Drills[d.ID] = d
	g.Targets.Register(d)
	store.Add(g.Counters, store.ResourcesOre, -config.DrillCost)

	g.EventDispatcher.Dispatch(event.Event{Type: event.DrillPlaced, Data: event.DrillPayload{
		DrillID: d.ID,
		X:       px,
		Y:       py,
	}})
	return d.ID, true
}

func (g *Game) turretDef(kind defs.TurretKind) (defs.TurretDefinition, bool) {
	id, ok := turretDefIDs[kind]
	if !ok {
		return defs.TurretDefinition{}, false
	}
	def, ok := g.Defs.Turrets[id]
	return def, ok
}

// canPlace проверяет правила постройки и возвращает точку на поверхности.
func (g *Game) canPlace(x, y, radius, cost float64) (float64, float64, bool) {
	if g.over {
		return 0, 0, false
	}
	if _, _, inside := g.Terrain.CellAt(x, y); !inside {
		return 0, 0, false
	}
	if g.Ore() < cost {
		return 0, 0, false
	}
	px, py, ok := system.SurfacePlacement(g.Terrain, x, radius)
	if !ok {
		return 0, 0, false
	}
	if g.isOccupied(px, py, radius) {
		return 0, 0, false
	}
	return px, py, true
}

// isOccupied — пересекается ли круг с уже стоящими постройками.
func (g *Game) isOccupied(x, y, radius float64) bool {
	for _, t := range g.ECS.TurretList() {
		if !t.Mounted && !t.Destroyed && t.Pos.DistanceTo(x, y) < t.Radius+radius {
			return true
		}
	}
	for _, d := range g.ECS.DrillList() {
		if !d.Destroyed && d.Pos.DistanceTo(x, y) < config.DrillRadius+radius {
			return true
		}
	}
	return false
}

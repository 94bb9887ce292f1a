// internal/system/drill.go
package system

import (
	"carrier-defense/internal/component"
	"carrier-defense/internal/config"
	"carrier-defense/internal/store"
	"carrier-defense/internal/terrain"

	"github.com/sirupsen/logrus"
)

// DrillSystem добывает руду: раз в DrillInterval каждый бур срезает тайл
// под собой и опускается на новую поверхность.
type DrillSystem struct {
	ctx *Context
	log *logrus.Entry
}

func NewDrillSystem(ctx *Context) *DrillSystem {
	return &DrillSystem{ctx: ctx, log: ctx.logFor("drill")}
}

func (s *DrillSystem) Update(deltaTime float64) {
	for _, d := range s.ctx.ECS.DrillList() {
		if d.Destroyed {
			continue
		}
		d.Structure.Tick(deltaTime)
		d.MineTimer += deltaTime
		for d.MineTimer >= config.DrillInterval {
			d.MineTimer -= config.DrillInterval
			s.Mine(d)
		}
	}
	s.SettleGround()
}

// Mine срезает первый сплошной тайл под буром. Коренная порода не добывается:
// бур останавливается. Возвращает добытое количество руды.
func (s *DrillSystem) Mine(d *component.Drill) float64 {
	grid := s.ctx.Terrain
	if grid == nil || d.Stalled {
		return 0
	}
	col, _, ok := grid.CellAt(d.Pos.X, d.Pos.Y)
	if !ok {
		d.Stalled = true
		return 0
	}
	row, ok := grid.SurfaceRow(col)
	if !ok {
		d.Stalled = true
		return 0
	}
	tile, _ := grid.At(col, row)
	if tile.Material.Yield() <= 0 {
		d.Stalled = true
		s.log.WithFields(logrus.Fields{"drill": d.ID, "material": tile.Material.String()}).Debug("drill stalled")
		return 0
	}

	x, y := grid.CellCenter(col, row)
	mined, ok := grid.DestroyAt(x, y)
	if !ok {
		return 0
	}
	amount := mined.Material.Yield()
	d.Mined += amount
	store.Add(s.ctx.counters(), store.ResourcesOre, amount)
	s.settle(&d.Pos, config.DrillRadius)
	return amount
}

// SettleGround опускает буры и наземные турели, если грунт под ними исчез.
func (s *DrillSystem) SettleGround() {
	if s.ctx.Terrain == nil {
		return
	}
	for _, d := range s.ctx.ECS.DrillList() {
		if !d.Destroyed {
			s.settle(&d.Pos, config.DrillRadius)
		}
	}
	for _, t := range s.ctx.ECS.TurretList() {
		if !t.Destroyed && !t.Mounted {
			s.settle(&t.Pos, t.Radius)
		}
	}
}

// settle ставит постройку на поверхность столбца. Постройка только опускается:
// грунт сверху её не выталкивает.
func (s *DrillSystem) settle(pos *component.Position, radius float64) {
	surfaceY, ok := s.ctx.Terrain.GetSurfaceY(pos.X)
	if !ok {
		return
	}
	if y := surfaceY - radius; y > pos.Y {
		pos.Y = y
	}
}

// SurfacePlacement — точка для постройки радиуса radius над поверхностью столбца x.
func SurfacePlacement(grid *terrain.Grid, x, radius float64) (float64, float64, bool) {
	if grid == nil {
		return 0, 0, false
	}
	surfaceY, ok := grid.GetSurfaceY(x)
	if !ok {
		return 0, 0, false
	}
	// проверяем клетку прямо над поверхностью
	if !grid.CanPlaceAt(x, surfaceY-grid.TileSize()/2) {
		return 0, 0, false
	}
	return x, surfaceY - radius, true
}

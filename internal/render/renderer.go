// internal/render/renderer.go
package render

import (
	"carrier-defense/internal/app"
	"carrier-defense/internal/component"
	"carrier-defense/internal/config"
	"carrier-defense/internal/terrain"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Renderer рисует мир игры: грунт, постройки, врагов и снаряды.
// Мир смещён вниз на высоту HUD.
type Renderer struct {
	game *app.Game

	terrainImage   *ebiten.Image // один пиксель на тайл, растягивается при отрисовке
	terrainVersion uint64
	terrainBuf     []byte
	hasTerrain     bool
}

func NewRenderer(g *app.Game) *Renderer {
	return &Renderer{game: g}
}

func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	vector.DrawFilledRect(screen, 0, config.HUDHeight, float32(r.game.Width()), float32(r.game.Height()), config.SkyColor, false)

	r.drawTerrain(screen)
	r.drawCarrier(screen)
	for _, d := range r.game.ECS.DrillList() {
		r.drawDrill(screen, d)
	}
	for _, t := range r.game.ECS.TurretList() {
		if !t.Mounted {
			r.drawTurret(screen, t)
		}
	}
	for _, e := range r.game.ECS.AliveEnemies() {
		r.drawEnemy(screen, e)
	}
	for _, p := range r.game.ECS.ProjectileList() {
		r.drawProjectile(screen, p)
	}
}

// drawTerrain перерисовывает картинку грунта, только если сетка изменилась.
func (r *Renderer) drawTerrain(screen *ebiten.Image) {
	grid := r.game.Terrain
	if grid == nil || grid.Cols() == 0 || grid.Rows() == 0 {
		return
	}
	if r.terrainImage == nil {
		r.terrainImage = ebiten.NewImage(grid.Cols(), grid.Rows())
	}
	if !r.hasTerrain || r.terrainVersion != grid.Version() {
		r.refreshTerrain(grid)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(grid.TileSize(), grid.TileSize())
	op.GeoM.Translate(0, config.HUDHeight)
	screen.DrawImage(r.terrainImage, op)
}

func (r *Renderer) refreshTerrain(grid *terrain.Grid) {
	r.terrainBuf = grid.AppendRGBA(r.terrainBuf[:0])
	r.terrainImage.WritePixels(r.terrainBuf)
	r.terrainVersion = grid.Version()
	r.hasTerrain = true
}

func (r *Renderer) drawCarrier(screen *ebiten.Image) {
	c := r.game.ECS.Carrier
	if c == nil {
		return
	}
	x, y := worldToScreen(c.Pos.X, c.Pos.Y)
	body := config.CarrierColor
	if c.Destroyed {
		body = config.TextDimColor
	}
	vector.DrawFilledRect(screen, x-config.CarrierRadius*1.6, y-config.CarrierRadius/3, config.CarrierRadius*3.2, config.CarrierRadius*2/3, flash(body, c.FlashTimer), true)
	vector.DrawFilledCircle(screen, x, y, config.CarrierRadius/2, flash(body, c.FlashTimer), true)
	for _, hp := range c.Hardpoints {
		r.drawTurret(screen, hp)
	}
	drawHealthBar(screen, x, y-config.CarrierRadius/2-10, config.CarrierRadius*2, c.HealthRatio())
}

func (r *Renderer) drawTurret(screen *ebiten.Image, t *component.Turret) {
	x, y := worldToScreen(t.Pos.X, t.Pos.Y)
	radius := float32(t.Radius)
	if t.Destroyed {
		vector.StrokeCircle(screen, x, y, radius, 1, config.TextDimColor, true)
		return
	}
	vector.DrawFilledCircle(screen, x, y, radius, flash(t.Color, t.FlashTimer), true)

	barrel := radius * 1.4 * float32(t.VisualScale())
	bx := x + barrel*float32(math.Cos(t.CurrentAngle))
	by := y + barrel*float32(math.Sin(t.CurrentAngle))
	vector.StrokeLine(screen, x, y, bx, by, 3, config.TextLightColor, true)

	if t.HealthRatio() < 1 {
		drawHealthBar(screen, x, y-radius-6, radius*2, t.HealthRatio())
	}
}

func (r *Renderer) drawDrill(screen *ebiten.Image, d *component.Drill) {
	x, y := worldToScreen(d.Pos.X, d.Pos.Y)
	c := config.DrillColor
	if d.Stalled {
		c = config.TextDimColor
	}
	vector.DrawFilledRect(screen, x-config.DrillRadius, y-config.DrillRadius, config.DrillRadius*2, config.DrillRadius*2, flash(c, d.FlashTimer), true)
	vector.StrokeLine(screen, x, y, x, y+config.DrillRadius*1.5, 2, config.TextLightColor, true)
	if d.HealthRatio() < 1 {
		drawHealthBar(screen, x, y-config.DrillRadius-6, config.DrillRadius*2, d.HealthRatio())
	}
}

func (r *Renderer) drawEnemy(screen *ebiten.Image, e *component.Enemy) {
	x, y := worldToScreen(e.Pos.X, e.Pos.Y)
	radius := float32(e.Radius)
	vector.DrawFilledCircle(screen, x, y, radius, flash(e.Color, e.FlashTimer), true)
	fx := x + radius*float32(math.Cos(e.Facing))
	fy := y + radius*float32(math.Sin(e.Facing))
	vector.StrokeLine(screen, x, y, fx, fy, 2, config.BackgroundColor, true)
	if e.MaxHealth > 0 && e.Health < e.MaxHealth {
		drawHealthBar(screen, x, y-radius-5, radius*2, e.Health/e.MaxHealth)
	}
}

func (r *Renderer) drawProjectile(screen *ebiten.Image, p *component.Projectile) {
	x, y := worldToScreen(p.Pos.X, p.Pos.Y)
	vector.DrawFilledCircle(screen, x, y, float32(p.Radius), p.Color, true)
}

func worldToScreen(x, y float64) (float32, float32) {
	return float32(x), float32(y + config.HUDHeight)
}

// drawHealthBar рисует полоску здоровья шириной width с центром в (cx, y).
func drawHealthBar(screen *ebiten.Image, cx, y, width float32, ratio float64) {
	if ratio < 0 {
		ratio = 0
	}
	const height = 3
	left := cx - width/2
	vector.DrawFilledRect(screen, left, y, width, height, config.HealthBackColor, false)
	vector.DrawFilledRect(screen, left, y, width*float32(ratio), height, config.HealthBarColor, false)
}

// flash подмешивает белый, пока идёт подсветка попадания.
func flash(c color.RGBA, timer float64) color.RGBA {
	if timer <= 0 {
		return c
	}
	return config.FlashColor
}

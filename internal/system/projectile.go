// internal/system/projectile.go
package system

import (
	"carrier-defense/internal/component"
	"carrier-defense/internal/config"
	"carrier-defense/internal/target"
	"math"
)

// ProjectileSystem управляет движением снарядов и нанесением урона.
// Снаряд летит по прямой и исчезает на максимальной дальности,
// при попадании в грунт или при первом попадании в цель.
type ProjectileSystem struct {
	ctx *Context
}

func NewProjectileSystem(ctx *Context) *ProjectileSystem {
	return &ProjectileSystem{ctx: ctx}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	targets := s.ctx.Targets.GetAll()
	for _, p := range s.ctx.ECS.ProjectileList() {
		if p.Expired {
			s.removeProjectile(p)
			continue
		}
		s.step(p, targets, deltaTime)
		if p.Expired {
			s.removeProjectile(p)
		}
	}
}

// Вспомогательная функция для удаления снаряда
func (s *ProjectileSystem) removeProjectile(p *component.Projectile) {
	delete(s.ctx.ECS.Projectiles, p.ID)
}

func (s *ProjectileSystem) step(p *component.Projectile, targets []target.Targetable, deltaTime float64) {
	dist := p.Speed * deltaTime
	if remaining := p.MaxRange - p.Traveled; dist > remaining {
		dist = math.Max(remaining, 0)
	}
	x0, y0 := p.Pos.X, p.Pos.Y
	x1 := x0 + math.Cos(p.Direction)*dist
	y1 := y0 + math.Sin(p.Direction)*dist

	// Ищем самое раннее столкновение на отрезке пути.
	bestT := math.Inf(1)
	var hitTarget target.Targetable
	var hitEnemy *component.Enemy

	switch p.Faction {
	case component.FactionEnemy:
		for _, t := range targets {
			if t.IsDestroyed() {
				continue
			}
			tx, ty := t.Position()
			if at, ok := segmentHit(x0, y0, x1, y1, tx, ty, p.Radius+target.HitRadius(t, config.TurretRadius)); ok && at < bestT {
				bestT, hitTarget = at, t
			}
		}
	case component.FactionPlayer:
		for _, e := range s.ctx.ECS.AliveEnemies() {
			if at, ok := segmentHit(x0, y0, x1, y1, e.Pos.X, e.Pos.Y, p.Radius+e.Radius); ok && at < bestT {
				bestT, hitTarget, hitEnemy = at, nil, e
			}
		}
	}

	groundT, hitGround := s.terrainHit(x0, y0, x1, y1)
	if hitGround && groundT < bestT {
		p.Pos.X = x0 + (x1-x0)*groundT
		p.Pos.Y = y0 + (y1-y0)*groundT
		s.hitGround(p)
		return
	}

	if !math.IsInf(bestT, 1) {
		p.Pos.X = x0 + (x1-x0)*bestT
		p.Pos.Y = y0 + (y1-y0)*bestT
		if hitEnemy != nil {
			s.hitEnemy(p, hitEnemy)
		} else if hitTarget != nil {
			s.hitTarget(p, hitTarget)
		}
		p.Expired = true
		return
	}

	p.Pos.X, p.Pos.Y = x1, y1
	p.Traveled += dist
	if p.Traveled >= p.MaxRange {
		p.Expired = true
	}
}

// terrainHit ищет первую сплошную точку на отрезке, шагая по полтайла.
func (s *ProjectileSystem) terrainHit(x0, y0, x1, y1 float64) (float64, bool) {
	grid := s.ctx.Terrain
	if grid == nil {
		return 0, false
	}
	length := math.Hypot(x1-x0, y1-y0)
	if length == 0 {
		return 0, false
	}
	steps := int(math.Ceil(length / (grid.TileSize() / 2)))
	for i := 1; i <= steps; i++ {
		at := float64(i) / float64(steps)
		if grid.IsSolid(x0+(x1-x0)*at, y0+(y1-y0)*at) {
			return at, true
		}
	}
	return 0, false
}

func (s *ProjectileSystem) hitGround(p *component.Projectile) {
	p.Expired = true
	if p.CraterRadius > 0 {
		s.ctx.explode(p.Pos.X, p.Pos.Y, p.CraterRadius, 1)
	}
	if p.Faction == component.FactionPlayer && p.SplashRadius > 0 {
		s.splash(p)
	}
}

func (s *ProjectileSystem) hitTarget(p *component.Projectile, t target.Targetable) {
	if t.TakeDamage(p.Damage) {
		s.ctx.reportTargetDestroyed(t)
	}
}

func (s *ProjectileSystem) hitEnemy(p *component.Projectile, e *component.Enemy) {
	if p.SplashRadius > 0 {
		s.splash(p)
		return
	}
	e.TakeDamage(p.Damage)
}

// splash бьёт всех живых врагов в радиусе. Обход по снимку:
// враг, погибший от этого же взрыва, не сбивает перебор.
func (s *ProjectileSystem) splash(p *component.Projectile) {
	for _, e := range s.ctx.ECS.AliveEnemies() {
		if e.Pos.DistanceTo(p.Pos.X, p.Pos.Y) <= p.SplashRadius+e.Radius {
			e.TakeDamage(p.Damage)
		}
	}
}

// segmentHit возвращает параметр [0, 1] ближайшей к центру точки отрезка,
// если круг радиуса r с центром (cx, cy) задевает отрезок.
func segmentHit(x0, y0, x1, y1, cx, cy, r float64) (float64, bool) {
	dx, dy := x1-x0, y1-y0
	lengthSq := dx*dx + dy*dy
	at := 0.0
	if lengthSq > 0 {
		at = ((cx-x0)*dx + (cy-y0)*dy) / lengthSq
		if at < 0 {
			at = 0
		} else if at > 1 {
			at = 1
		}
	}
	px, py := x0+dx*at, y0+dy*at
	if math.Hypot(cx-px, cy-py) <= r {
		return at, true
	}
	return 0, false
}

// internal/system/turret.go
package system

import (
	"carrier-defense/internal/component"
	"carrier-defense/internal/config"
	"carrier-defense/internal/defs"
	"carrier-defense/internal/event"
	"carrier-defense/internal/utils"
	"math"

	"github.com/sirupsen/logrus"
)

// TurretSystem наводит турели и огневые точки на врагов и стреляет.
// Патрулирования у турелей нет: без цели турель стоит.
type TurretSystem struct {
	ctx *Context
	cfg config.EngagementConfig
	log *logrus.Entry
}

func NewTurretSystem(ctx *Context) *TurretSystem {
	return &TurretSystem{ctx: ctx, cfg: ctx.Engagement, log: ctx.logFor("turret")}
}

func (s *TurretSystem) Update(deltaTime float64) {
	enemies := s.ctx.ECS.AliveEnemies()
	for _, t := range s.ctx.ECS.TurretList() {
		if t.Destroyed {
			continue
		}
		s.Tick(t, enemies, deltaTime)
	}
}

// Tick продвигает одну турель: перезарядка, выбор цели, поворот, заряд, выстрел.
func (s *TurretSystem) Tick(t *component.Turret, enemies []*component.Enemy, deltaTime float64) {
	t.Structure.Tick(deltaTime)
	if t.FireCooldown > 0 {
		t.FireCooldown -= deltaTime
		if t.FireCooldown < 0 {
			t.FireCooldown = 0
		}
	}

	if t.Target != nil && !s.inReach(t, t.Target) {
		t.Target = nil
	}
	if t.Target == nil {
		t.Target = s.findNearestEnemyInRange(t, enemies)
	}
	if t.Target == nil {
		t.State = component.TurretIdle
		if t.Charge > 0 {
			t.Charge = math.Max(0, t.Charge-t.ChargeDecay*deltaTime)
		}
		return
	}

	if t.Kind == defs.TurretMacro && t.MaxCharge > 0 {
		t.Charge = math.Min(t.MaxCharge, t.Charge+t.ChargeRate*deltaTime)
	}

	desired := utils.AngleTo(t.Pos.X, t.Pos.Y, t.Target.Pos.X, t.Target.Pos.Y)
	t.CurrentAngle = utils.RotateTowards(t.CurrentAngle, desired, t.TurnSpeed*deltaTime)
	if math.Abs(utils.AngleDiff(t.CurrentAngle, desired)) > s.cfg.AimTolerance {
		t.State = component.TurretTracking
		return
	}
	t.State = component.TurretAligned
	if t.FireCooldown > 0 || t.FireRate <= 0 {
		return
	}
	s.fire(t)
}

func (s *TurretSystem) inReach(t *component.Turret, e *component.Enemy) bool {
	return e.IsAlive() && t.Pos.DistanceTo(e.Pos.X, e.Pos.Y) <= t.Range
}

// findNearestEnemyInRange — ближайший живой враг в радиусе; при равенстве — первый в списке.
func (s *TurretSystem) findNearestEnemyInRange(t *component.Turret, enemies []*component.Enemy) *component.Enemy {
	var nearest *component.Enemy
	minDistance := math.Inf(1)
	for _, e := range enemies {
		if !e.IsAlive() {
			continue
		}
		d := t.Pos.DistanceTo(e.Pos.X, e.Pos.Y)
		if d <= t.Range && d < minDistance {
			minDistance = d
			nearest = e
		}
	}
	return nearest
}

func (s *TurretSystem) fire(t *component.Turret) {
	damage := t.Damage
	scale := 1.0
	if t.Kind == defs.TurretMacro {
		damage *= 1 + t.Charge
		scale = t.VisualScale()
	}

	p := &component.Projectile{
		Faction:      component.FactionPlayer,
		SourceID:     t.ID,
		Pos:          t.Pos,
		Direction:    t.CurrentAngle,
		Speed:        s.cfg.ProjectileSpeed,
		Damage:       damage,
		MaxRange:     t.Range * 1.2,
		Radius:       config.ProjectileRadius * scale,
		SplashRadius: t.SplashRadius,
		CraterRadius: t.SplashRadius / 2,
		Scale:        scale,
		Color:        config.TurretShotColor,
	}
	s.ctx.ECS.AddProjectile(p)

	t.FireCooldown = 1.0 / t.FireRate
	t.Charge = 0

	s.ctx.emit(event.TurretFired, event.TurretPayload{
		TurretID: t.ID,
		Kind:     string(t.Kind),
		X:        t.Pos.X,
		Y:        t.Pos.Y,
		Damage:   damage,
	})
}

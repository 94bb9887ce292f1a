// internal/system/engagement.go
package system

import (
	"carrier-defense/internal/component"
	"carrier-defense/internal/config"
	"carrier-defense/internal/defs"
	"carrier-defense/internal/target"
	"carrier-defense/internal/utils"
	"math"

	"github.com/sirupsen/logrus"
)

// enemyBehavior — что враг делает, когда цель уже выбрана.
type enemyBehavior interface {
	engage(s *EngagementSystem, e *component.Enemy, tx, ty, dist, deltaTime float64)
}

// EngagementSystem каждый тик решает, что делает каждый враг:
// ищет цель, сближается, атакует, отступает или патрулирует.
type EngagementSystem struct {
	ctx       *Context
	cfg       config.EngagementConfig
	behaviors map[defs.Archetype]enemyBehavior
	log       *logrus.Entry
}

func NewEngagementSystem(ctx *Context) *EngagementSystem {
	return &EngagementSystem{
		ctx: ctx,
		cfg: ctx.Engagement,
		behaviors: map[defs.Archetype]enemyBehavior{
			defs.ArchetypeMelee:   meleeBehavior{},
			defs.ArchetypeShooter: shooterBehavior{},
		},
		log: ctx.logFor("engagement"),
	}
}

func (s *EngagementSystem) Update(deltaTime float64) {
	// Снимок целей на тик: цель, которой нет в снимке, считается потерянной.
	snapshot := s.ctx.Targets.GetAll()
	for _, e := range s.ctx.ECS.AliveEnemies() {
		s.Tick(e, snapshot, deltaTime)
	}
}

// Tick продвигает одного врага на deltaTime.
func (s *EngagementSystem) Tick(e *component.Enemy, snapshot []target.Targetable, deltaTime float64) {
	if !e.IsAlive() {
		return
	}
	if e.AttackCooldown > 0 {
		e.AttackCooldown -= deltaTime
		if e.AttackCooldown < 0 {
			e.AttackCooldown = 0
		}
	}
	if e.FlashTimer > 0 {
		e.FlashTimer = math.Max(0, e.FlashTimer-deltaTime)
	}

	if e.Target != nil && !isTargetValid(e.Target, snapshot) {
		e.ClearTarget()
	}
	if e.Target == nil {
		e.Target = s.acquire(e, snapshot)
		if e.Target == nil {
			s.patrol(e, deltaTime)
			return
		}
		e.TargetType = e.Target.Priority()
		e.State = component.StateApproaching
	}

	tx, ty := e.Target.Position()
	dist := e.Pos.DistanceTo(tx, ty)
	e.Facing = utils.AngleTo(e.Pos.X, e.Pos.Y, tx, ty)
	s.behaviorFor(e).engage(s, e, tx, ty, dist, deltaTime)
}

func (s *EngagementSystem) behaviorFor(e *component.Enemy) enemyBehavior {
	if b, ok := s.behaviors[e.Archetype]; ok {
		return b
	}
	s.log.WithField("archetype", e.Archetype).Warn("unknown archetype, falling back to melee")
	return meleeBehavior{}
}

func isTargetValid(t target.Targetable, snapshot []target.Targetable) bool {
	if t.IsDestroyed() {
		return false
	}
	for _, candidate := range snapshot {
		if candidate == t {
			return true
		}
	}
	return false
}

// acquire выбирает цель. Пока живы огневые точки носителя, с вероятностью
// HardpointBias берётся ближайшая из них; когда их не осталось, с вероятностью
// CarrierBias берётся сам носитель; иначе — ближайшая цель вообще.
func (s *EngagementSystem) acquire(e *component.Enemy, snapshot []target.Targetable) target.Targetable {
	alive := target.Filter(snapshot, func(t target.Targetable) bool { return !t.IsDestroyed() })
	if len(alive) == 0 {
		return nil
	}

	hardpoints := target.Filter(alive, func(t target.Targetable) bool {
		return t.Priority() == target.PriorityCarrierHardpoint
	})
	if len(hardpoints) > 0 {
		if utils.Chance(s.ctx.Rng, s.cfg.HardpointBias) {
			closest, _ := target.FindClosest(e.Pos.X, e.Pos.Y, hardpoints)
			return closest
		}
	} else {
		carriers := target.Filter(alive, func(t target.Targetable) bool {
			return t.Priority() == target.PriorityCarrier
		})
		if len(carriers) > 0 && utils.Chance(s.ctx.Rng, s.cfg.CarrierBias) {
			closest, _ := target.FindClosest(e.Pos.X, e.Pos.Y, carriers)
			return closest
		}
	}

	closest, _ := target.FindClosest(e.Pos.X, e.Pos.Y, alive)
	return closest
}

// approach двигает врага прямо на цель, не проскакивая её.
func (s *EngagementSystem) approach(e *component.Enemy, tx, ty, dist, deltaTime float64) {
	e.State = component.StateApproaching
	step := math.Min(e.Speed*deltaTime, dist)
	e.Pos.Advance(utils.AngleTo(e.Pos.X, e.Pos.Y, tx, ty), step)
}

// patrol ведёт врага без цели: курс медленно дрейфует и тянется вниз, к базе.
// У краёв мира курс отражается, уход за верхний край разворачивает вниз.
func (s *EngagementSystem) patrol(e *component.Enemy, deltaTime float64) {
	e.State = component.StatePatrolling

	e.Heading += (s.ctx.Rng.Float64()*2 - 1) * s.cfg.PatrolTurnRate * deltaTime
	desired := math.Pi / 2
	if cx, cy, ok := s.ctx.carrierPosition(); ok {
		desired = utils.AngleTo(e.Pos.X, e.Pos.Y, cx, cy)
	}
	e.Heading = utils.LerpAngle(e.Heading, desired, utils.Clamp(s.cfg.PatrolDownBias*deltaTime, 0, 1))

	if bounds, ok := s.ctx.bounds(); ok && !bounds.Empty() {
		margin := s.cfg.PatrolEdgeMargin
		cos, sin := math.Cos(e.Heading), math.Sin(e.Heading)
		if (e.Pos.X < bounds.X+margin && cos < 0) || (e.Pos.X > bounds.X+bounds.Width-margin && cos > 0) {
			e.Heading = math.Pi - e.Heading
		}
		if e.Pos.Y < bounds.Y+margin && sin < 0 {
			// уходит за верхний край — разворачиваем вниз
			e.Heading = -e.Heading
		} else if e.Pos.Y > bounds.Y+bounds.Height-margin && sin > 0 {
			e.Heading = -e.Heading
		}
		e.Heading = utils.NormalizeAngle(e.Heading)
		e.Pos.Advance(e.Heading, e.Speed*s.cfg.PatrolSpeedFactor*deltaTime)
		e.Pos.X = utils.Clamp(e.Pos.X, bounds.X, bounds.X+bounds.Width)
		e.Pos.Y = utils.Clamp(e.Pos.Y, bounds.Y, bounds.Y+bounds.Height)
	} else {
		e.Heading = utils.NormalizeAngle(e.Heading)
		e.Pos.Advance(e.Heading, e.Speed*s.cfg.PatrolSpeedFactor*deltaTime)
	}
	e.Facing = e.Heading
}

// strike наносит урон цели; если удар её разрушил, враг сразу её отпускает.
func (s *EngagementSystem) strike(e *component.Enemy) {
	t := e.Target
	if t.TakeDamage(e.Damage) {
		s.log.WithFields(logrus.Fields{
			"enemy":  e.ID,
			"target": t.Priority().String(),
		}).Debug("target destroyed")
		s.ctx.reportTargetDestroyed(t)
		e.ClearTarget()
	}
}

type meleeBehavior struct{}

func (meleeBehavior) engage(s *EngagementSystem, e *component.Enemy, tx, ty, dist, deltaTime float64) {
	if dist > e.AttackRange {
		s.approach(e, tx, ty, dist, deltaTime)
		return
	}
	e.State = component.StateAttacking
	if e.AttackCooldown > 0 {
		return
	}
	e.AttackCooldown = e.AttackInterval
	s.strike(e)
	// Удар задевает грунт вокруг цели.
	s.ctx.explode(tx, ty, s.cfg.CollateralRadius, s.cfg.CollateralStrength)
}

type shooterBehavior struct{}

func (shooterBehavior) engage(s *EngagementSystem, e *component.Enemy, tx, ty, dist, deltaTime float64) {
	switch {
	case dist < e.MinRange:
		e.State = component.StateRetreating
		away := utils.AngleTo(tx, ty, e.Pos.X, e.Pos.Y)
		e.Pos.Advance(away, e.Speed*deltaTime)
		if bounds, ok := s.ctx.bounds(); ok && !bounds.Empty() {
			e.Pos.X = utils.Clamp(e.Pos.X, bounds.X, bounds.X+bounds.Width)
			e.Pos.Y = utils.Clamp(e.Pos.Y, bounds.Y, bounds.Y+bounds.Height)
		}
	case dist > e.AttackRange:
		s.approach(e, tx, ty, dist, deltaTime)
	default:
		e.State = component.StateAttacking
		if e.AttackCooldown > 0 {
			return
		}
		e.AttackCooldown = e.AttackInterval
		s.fire(e)
	}
}

// fire выпускает снаряд врага в сторону цели.
func (s *EngagementSystem) fire(e *component.Enemy) {
	maxRange := e.ShotRange
	if maxRange <= 0 {
		maxRange = e.AttackRange * 1.5
	}
	s.ctx.ECS.AddProjectile(&component.Projectile{
		Faction:      component.FactionEnemy,
		SourceID:     e.ID,
		Pos:          e.Pos,
		Direction:    e.Facing,
		Speed:        s.cfg.EnemyShotSpeed,
		Damage:       e.Damage,
		MaxRange:     maxRange,
		Radius:       config.ProjectileRadius,
		CraterRadius: s.cfg.ShotCraterRadius,
		Scale:        1,
		Color:        config.EnemyShotColor,
	})
}

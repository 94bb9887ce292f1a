package system

import (
	"carrier-defense/internal/component"
	"carrier-defense/internal/event"
	"carrier-defense/internal/target"
	"math"
	"testing"
)

func newEnemy(t *testing.T, ctx *Context, defID string, x, y float64) *component.Enemy {
	t.Helper()
	e := component.NewEnemy(ctx.ECS.NewEntity(), enemyDef(t, ctx, defID), 1, 1, x, y)
	ctx.ECS.Enemies[e.ID] = e
	return e
}

func TestMeleeAttacksAtRangeBoundary(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	s := NewEngagementSystem(ctx)
	e := newEnemy(t, ctx, "ENEMY_MELEE", 0, 0)
	drill := &dummyTarget{x: e.AttackRange, priority: target.PriorityDrill, health: 100}

	s.Tick(e, []target.Targetable{drill}, 0.1)

	if e.State != component.StateAttacking {
		t.Fatalf("Expected ATTACKING at exactly attack range, got %s", e.State)
	}
	if drill.hits != 1 || drill.health != 100-e.Damage {
		t.Errorf("Expected one hit for %.0f, got %d hits, health %.0f", e.Damage, drill.hits, drill.health)
	}
	if e.AttackCooldown != e.AttackInterval {
		t.Errorf("Expected cooldown %.2f, got %.2f", e.AttackInterval, e.AttackCooldown)
	}
	if e.Pos.X != 0 || e.Pos.Y != 0 {
		t.Errorf("Attacking enemy should not move, got (%.2f, %.2f)", e.Pos.X, e.Pos.Y)
	}

	// Пока идёт перезарядка, второго удара нет.
	s.Tick(e, []target.Targetable{drill}, 0.1)
	if drill.hits != 1 {
		t.Errorf("Expected no hit during cooldown, got %d hits", drill.hits)
	}
}

func TestMeleeApproachesJustOutsideRange(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	s := NewEngagementSystem(ctx)
	e := newEnemy(t, ctx, "ENEMY_MELEE", 0, 0)
	drill := &dummyTarget{x: e.AttackRange + 0.5, priority: target.PriorityDrill, health: 100}

	s.Tick(e, []target.Targetable{drill}, 0.1)

	if e.State != component.StateApproaching {
		t.Fatalf("Expected APPROACHING, got %s", e.State)
	}
	if drill.hits != 0 {
		t.Errorf("Expected no hit out of range, got %d", drill.hits)
	}
	if math.Abs(e.Pos.X-e.Speed*0.1) > 1e-9 {
		t.Errorf("Expected to move %.2f towards target, got x=%.2f", e.Speed*0.1, e.Pos.X)
	}
}

func TestAcquirePrefersHardpoints(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	s := NewEngagementSystem(ctx)
	drill := &dummyTarget{x: 10, priority: target.PriorityDrill, health: 10}
	hardpoint := &dummyTarget{x: 300, priority: target.PriorityCarrierHardpoint, health: 10}
	snapshot := []target.Targetable{drill, hardpoint}

	ctx.Rng = &scripted{floats: []float64{0.5}}
	e := newEnemy(t, ctx, "ENEMY_MELEE", 0, 0)
	if got := s.acquire(e, snapshot); got != hardpoint {
		t.Errorf("Expected hardpoint with roll under the bias, got %v", got)
	}

	ctx.Rng = &scripted{floats: []float64{0.95}}
	if got := s.acquire(e, snapshot); got != drill {
		t.Errorf("Expected closest target with roll over the bias, got %v", got)
	}
}

func TestAcquireCarrierOnceHardpointsAreGone(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	s := NewEngagementSystem(ctx)
	drill := &dummyTarget{x: 10, priority: target.PriorityDrill, health: 10}
	hardpoint := &dummyTarget{x: 50, priority: target.PriorityCarrierHardpoint, destroyed: true}
	carrier := &dummyTarget{x: 400, priority: target.PriorityCarrier, health: 10}
	snapshot := []target.Targetable{drill, hardpoint, carrier}
	e := newEnemy(t, ctx, "ENEMY_MELEE", 0, 0)

	ctx.Rng = &scripted{floats: []float64{0.5}}
	if got := s.acquire(e, snapshot); got != carrier {
		t.Errorf("Expected carrier, got %v", got)
	}
	ctx.Rng = &scripted{floats: []float64{0.9}}
	if got := s.acquire(e, snapshot); got != drill {
		t.Errorf("Expected closest target, got %v", got)
	}
}

func TestAcquireWithNoCandidates(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	s := NewEngagementSystem(ctx)
	e := newEnemy(t, ctx, "ENEMY_MELEE", 0, 0)
	dead := &dummyTarget{priority: target.PriorityTurret, destroyed: true}

	if got := s.acquire(e, []target.Targetable{dead}); got != nil {
		t.Errorf("Expected no target, got %v", got)
	}
}

func TestReacquiresAfterTargetDestroyed(t *testing.T) {
	ctx, sink, _ := newTestContext(t)
	s := NewEngagementSystem(ctx)
	e := newEnemy(t, ctx, "ENEMY_MELEE", 0, 0)
	weak := &dummyTarget{x: 10, priority: target.PriorityDrill, health: 5}
	strong := &dummyTarget{x: 30, priority: target.PriorityDrill, health: 100}
	ctx.Targets.Register(weak)
	ctx.Targets.Register(strong)

	s.Update(0.1)

	if !weak.destroyed {
		t.Fatal("Expected the closest target to be destroyed")
	}
	if e.Target != nil {
		t.Errorf("Expected target to be released after the killing blow, got %v", e.Target)
	}
	if sink.count(event.TargetDestroyed) != 1 {
		t.Errorf("Expected 1 TargetDestroyed, got %d", sink.count(event.TargetDestroyed))
	}

	// Владелец ещё не снял цель с учёта, но разрушенная цель не выбирается.
	s.Update(0.1)
	if e.Target != strong {
		t.Errorf("Expected to re-acquire the remaining target, got %v", e.Target)
	}
}

func TestTargetMissingFromSnapshotIsDropped(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	s := NewEngagementSystem(ctx)
	e := newEnemy(t, ctx, "ENEMY_MELEE", 0, 0)
	gone := &dummyTarget{x: 5, priority: target.PriorityDrill, health: 100}
	other := &dummyTarget{x: 200, priority: target.PriorityDrill, health: 100}
	e.Target = gone

	s.Tick(e, []target.Targetable{other}, 0.1)

	if e.Target != other {
		t.Errorf("Expected target outside the snapshot to be replaced, got %v", e.Target)
	}
	if gone.hits != 0 {
		t.Errorf("Stale target must not be hit, got %d hits", gone.hits)
	}
}

func TestShooterKeepsDistance(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	s := NewEngagementSystem(ctx)
	tgt := &dummyTarget{x: 0, y: 300, priority: target.PriorityTurret, health: 100}
	snapshot := []target.Targetable{tgt}

	e := newEnemy(t, ctx, "ENEMY_SHOOTER", 100, 300)
	s.Tick(e, snapshot, 0.1)
	if e.State != component.StateRetreating {
		t.Fatalf("Expected RETREATING inside min range, got %s", e.State)
	}
	if want := 100 + e.Speed*0.1; math.Abs(e.Pos.X-want) > 1e-9 {
		t.Errorf("Expected to back off to x=%.2f, got %.2f", want, e.Pos.X)
	}

	e.Pos.X = 150
	s.Tick(e, snapshot, 0.1)
	if e.State != component.StateAttacking {
		t.Fatalf("Expected ATTACKING between min and max range, got %s", e.State)
	}
	shots := ctx.ECS.ProjectileList()
	if len(shots) != 1 {
		t.Fatalf("Expected 1 projectile, got %d", len(shots))
	}
	if shots[0].Faction != component.FactionEnemy {
		t.Errorf("Expected enemy projectile, got faction %d", shots[0].Faction)
	}
	if math.Abs(shots[0].Direction-math.Pi) > 1e-9 {
		t.Errorf("Expected shot towards the target (pi), got %.3f", shots[0].Direction)
	}

	e.Pos.X = 400
	s.Tick(e, snapshot, 0.1)
	if e.State != component.StateApproaching {
		t.Errorf("Expected APPROACHING beyond attack range, got %s", e.State)
	}
}

func TestCooldownNeverNegative(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	s := NewEngagementSystem(ctx)
	e := newEnemy(t, ctx, "ENEMY_MELEE", 500, 100)
	e.AttackCooldown = 0.05

	s.Tick(e, nil, 0.1)

	if e.AttackCooldown != 0 {
		t.Errorf("Expected cooldown clamped to 0, got %f", e.AttackCooldown)
	}
}

func TestPatrolStaysInsideWorld(t *testing.T) {
	ctx, _, world := newTestContext(t)
	s := NewEngagementSystem(ctx)
	e := newEnemy(t, ctx, "ENEMY_MELEE", 5, 5)
	e.Heading = -math.Pi / 2

	for i := 0; i < 400; i++ {
		s.Tick(e, nil, 0.05)
		if e.State != component.StatePatrolling {
			t.Fatalf("Expected PATROLLING without targets, got %s", e.State)
		}
		b := world.bounds
		if e.Pos.X < b.X || e.Pos.X > b.X+b.Width || e.Pos.Y < b.Y || e.Pos.Y > b.Y+b.Height {
			t.Fatalf("Patrol left the world at step %d: (%.1f, %.1f)", i, e.Pos.X, e.Pos.Y)
		}
	}
}

func TestMeleeStrikeCratersTerrain(t *testing.T) {
	ctx, sink, _ := newTestContext(t)
	ctx.Terrain = flatTerrain()
	s := NewEngagementSystem(ctx)
	e := newEnemy(t, ctx, "ENEMY_MELEE", 55, 85)
	drill := &dummyTarget{x: 55, y: 100, priority: target.PriorityDrill, health: 100}

	s.Tick(e, []target.Targetable{drill}, 0.1)

	if sink.count(event.TerrainExplosion) != 1 {
		t.Errorf("Expected collateral explosion, got %d", sink.count(event.TerrainExplosion))
	}
	if !ctx.Terrain.IsSettled() {
		t.Error("Expected terrain to be settled after collateral damage")
	}
}

func TestPatrolWithoutWorld(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	ctx.World = nil
	s := NewEngagementSystem(ctx)
	e := newEnemy(t, ctx, "ENEMY_MELEE", 100, 100)

	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("Patrol panicked without a world: %v", r)
		}
	}()

	for i := 0; i < 10; i++ {
		s.Tick(e, nil, 0.05)
	}
	if e.State != component.StatePatrolling {
		t.Errorf("Expected PATROLLING, got %s", e.State)
	}
}

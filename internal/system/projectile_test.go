package system

import (
	"carrier-defense/internal/component"
	"carrier-defense/internal/event"
	"carrier-defense/internal/target"
	"math"
	"testing"
)

func TestProjectileExpiresAtMaxRange(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	s := NewProjectileSystem(ctx)
	p := &component.Projectile{Faction: component.FactionPlayer, Speed: 480, MaxRange: 100, Radius: 3, Damage: 5}
	ctx.ECS.AddProjectile(p)

	s.Update(0.1)
	s.Update(0.1)
	if len(ctx.ECS.Projectiles) != 1 {
		t.Fatalf("Projectile expired too early after %.0f px", p.Traveled)
	}
	s.Update(0.1)
	if len(ctx.ECS.Projectiles) != 0 {
		t.Fatalf("Expected projectile removed at max range")
	}
	if math.Abs(p.Traveled-100) > 1e-9 {
		t.Errorf("Expected to travel exactly 100, got %.2f", p.Traveled)
	}
}

func TestPlayerProjectileHitsEnemy(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	s := NewProjectileSystem(ctx)
	e := newEnemy(t, ctx, "ENEMY_MELEE", 30, 0)
	far := newEnemy(t, ctx, "ENEMY_MELEE", 45, 0)
	ctx.ECS.AddProjectile(&component.Projectile{Faction: component.FactionPlayer, Speed: 480, MaxRange: 500, Radius: 3, Damage: 5})

	s.Update(0.1)

	if e.Health != e.MaxHealth-5 {
		t.Errorf("Expected first enemy on the path to take 5 damage, health %.0f", e.Health)
	}
	if far.Health != far.MaxHealth {
		t.Errorf("Single-target shot must not hit a second enemy")
	}
	if len(ctx.ECS.Projectiles) != 0 {
		t.Errorf("Expected projectile consumed on hit")
	}
}

func TestSplashDamagesEveryEnemyInRadius(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	s := NewProjectileSystem(ctx)
	a := newEnemy(t, ctx, "ENEMY_MELEE", 30, 0)
	b := newEnemy(t, ctx, "ENEMY_MELEE", 40, 20)
	c := newEnemy(t, ctx, "ENEMY_MELEE", 300, 300)
	a.Health = 1
	ctx.ECS.AddProjectile(&component.Projectile{
		Faction: component.FactionPlayer, Speed: 480, MaxRange: 500, Radius: 3, Damage: 10, SplashRadius: 40,
	})

	s.Update(0.1)

	if a.IsAlive() {
		t.Error("Expected first enemy killed by splash")
	}
	if b.Health != b.MaxHealth-10 {
		t.Errorf("Expected neighbour hit by splash, health %.0f", b.Health)
	}
	if c.Health != c.MaxHealth {
		t.Error("Enemy outside the splash radius must not be hit")
	}
}

func TestEnemyProjectileDestroysTarget(t *testing.T) {
	ctx, sink, _ := newTestContext(t)
	s := NewProjectileSystem(ctx)
	drill := &dummyTarget{x: 40, priority: target.PriorityDrill, health: 5}
	ctx.Targets.Register(drill)
	ctx.ECS.AddProjectile(&component.Projectile{Faction: component.FactionEnemy, Speed: 480, MaxRange: 500, Radius: 3, Damage: 10})

	s.Update(0.1)

	if !drill.destroyed {
		t.Fatal("Expected target destroyed")
	}
	ev, ok := sink.last(event.TargetDestroyed)
	if !ok {
		t.Fatal("Expected TargetDestroyed event")
	}
	if p := ev.Data.(event.TargetPayload); p.Target != target.Targetable(drill) {
		t.Errorf("Expected payload to carry the destroyed target, got %v", p.Target)
	}
	if !ctx.Targets.Contains(drill) {
		t.Error("Projectile must not unregister the target itself")
	}
}

func TestProjectileStopsOnTerrain(t *testing.T) {
	ctx, sink, _ := newTestContext(t)
	ctx.Terrain = flatTerrain()
	s := NewProjectileSystem(ctx)
	p := &component.Projectile{
		Faction: component.FactionPlayer, Pos: component.Position{X: 55, Y: 50},
		Direction: math.Pi / 2, Speed: 480, MaxRange: 1000, Radius: 3, CraterRadius: 12,
	}
	ctx.ECS.AddProjectile(p)

	s.Update(0.1)
	if p.Expired {
		t.Fatal("Projectile should still be in the air above the surface")
	}
	s.Update(0.1)
	if !p.Expired {
		t.Fatal("Expected projectile to stop on solid ground")
	}
	if p.Pos.Y < 100 || p.Pos.Y > 110 {
		t.Errorf("Expected impact in the surface row, got y=%.2f", p.Pos.Y)
	}
	if sink.count(event.TerrainExplosion) != 1 {
		t.Errorf("Expected crater explosion, got %d", sink.count(event.TerrainExplosion))
	}
}

func TestSegmentHit(t *testing.T) {
	if at, ok := segmentHit(0, 0, 100, 0, 50, 5, 6); !ok || math.Abs(at-0.5) > 1e-9 {
		t.Errorf("Expected hit at 0.5, got %.2f %v", at, ok)
	}
	if _, ok := segmentHit(0, 0, 100, 0, 50, 10, 6); ok {
		t.Error("Expected miss")
	}
	if at, ok := segmentHit(0, 0, 0, 0, 1, 1, 2); !ok || at != 0 {
		t.Errorf("Zero-length segment should test the start point, got %.2f %v", at, ok)
	}
}

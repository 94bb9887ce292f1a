package system

import (
	"carrier-defense/internal/component"
	"carrier-defense/internal/event"
	"math"
	"testing"
)

func newTurret(t *testing.T, ctx *Context, defID string, x, y float64) *component.Turret {
	t.Helper()
	tr := component.NewTurret(ctx.ECS.NewEntity(), turretDef(t, ctx, defID), x, y, false)
	ctx.ECS.Turrets[tr.ID] = tr
	return tr
}

func TestTurretTurnsBeforeFiring(t *testing.T) {
	ctx, sink, _ := newTestContext(t)
	s := NewTurretSystem(ctx)
	tr := newTurret(t, ctx, "TURRET_POINT_DEFENSE", 0, 0)
	e := newEnemy(t, ctx, "ENEMY_MELEE", 100, 0)

	s.Update(0.1)
	if tr.Target != e {
		t.Fatalf("Expected turret to pick the enemy in range")
	}
	if tr.State != component.TurretTracking {
		t.Fatalf("Expected TRACKING while turning, got %s", tr.State)
	}
	if len(ctx.ECS.Projectiles) != 0 {
		t.Fatalf("Turret must not fire before it is aligned")
	}

	for i := 0; i < 10 && len(ctx.ECS.Projectiles) == 0; i++ {
		s.Update(0.1)
	}
	if len(ctx.ECS.Projectiles) != 1 {
		t.Fatalf("Expected 1 projectile once aligned, got %d", len(ctx.ECS.Projectiles))
	}
	if tr.State != component.TurretAligned {
		t.Errorf("Expected ALIGNED, got %s", tr.State)
	}
	if want := 1 / tr.FireRate; math.Abs(tr.FireCooldown-want) > 1e-9 {
		t.Errorf("Expected cooldown %.3f, got %.3f", want, tr.FireCooldown)
	}
	if sink.count(event.TurretFired) != 1 {
		t.Errorf("Expected 1 TurretFired, got %d", sink.count(event.TurretFired))
	}
}

func TestTurretIgnoresEnemiesOutOfRange(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	s := NewTurretSystem(ctx)
	tr := newTurret(t, ctx, "TURRET_POINT_DEFENSE", 0, 0)
	newEnemy(t, ctx, "ENEMY_MELEE", tr.Range+1, 0)

	s.Update(0.1)

	if tr.Target != nil || tr.State != component.TurretIdle {
		t.Errorf("Expected idle turret, got target %v state %s", tr.Target, tr.State)
	}
}

func TestTurretDropsDeadTarget(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	s := NewTurretSystem(ctx)
	tr := newTurret(t, ctx, "TURRET_POINT_DEFENSE", 0, 0)
	first := newEnemy(t, ctx, "ENEMY_MELEE", 50, 0)
	second := newEnemy(t, ctx, "ENEMY_MELEE", 80, 0)

	s.Update(0.01)
	if tr.Target != first {
		t.Fatalf("Expected nearest enemy first")
	}
	first.TakeDamage(first.Health)
	s.Update(0.01)
	if tr.Target != second {
		t.Errorf("Expected switch to the next enemy, got %v", tr.Target)
	}
}

func TestMacroChargeBoostsDamage(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	s := NewTurretSystem(ctx)
	tr := newTurret(t, ctx, "TURRET_MACRO", 0, 0)
	newEnemy(t, ctx, "ENEMY_MELEE", 100, 0)
	tr.CurrentAngle = 0
	tr.FireCooldown = 1

	s.Update(1)

	shots := ctx.ECS.ProjectileList()
	if len(shots) != 1 {
		t.Fatalf("Expected 1 projectile, got %d", len(shots))
	}
	// заряд 0.5 за секунду: урон ×1.5
	if want := tr.Damage * 1.5; math.Abs(shots[0].Damage-want) > 1e-9 {
		t.Errorf("Expected damage %.2f, got %.2f", want, shots[0].Damage)
	}
	if shots[0].SplashRadius != tr.SplashRadius {
		t.Errorf("Expected splash %.0f, got %.0f", tr.SplashRadius, shots[0].SplashRadius)
	}
	if tr.Charge != 0 {
		t.Errorf("Expected charge reset after firing, got %.2f", tr.Charge)
	}
}

func TestMacroChargeCapsAndDecays(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	s := NewTurretSystem(ctx)
	tr := newTurret(t, ctx, "TURRET_MACRO", 0, 0)
	e := newEnemy(t, ctx, "ENEMY_MELEE", 100, 0)
	tr.FireCooldown = 100

	for i := 0; i < 20; i++ {
		s.Update(1)
	}
	if tr.Charge != tr.MaxCharge {
		t.Fatalf("Expected charge capped at %.1f, got %.2f", tr.MaxCharge, tr.Charge)
	}

	e.TakeDamage(e.Health)
	s.Update(1)
	if want := tr.MaxCharge - tr.ChargeDecay; math.Abs(tr.Charge-want) > 1e-9 {
		t.Errorf("Expected charge to decay to %.2f, got %.2f", want, tr.Charge)
	}
}

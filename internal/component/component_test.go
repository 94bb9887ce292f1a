package component

import (
	"carrier-defense/internal/defs"
	"carrier-defense/internal/target"
	"testing"
)

func TestStructureTakeDamage(t *testing.T) {
	s := NewStructure(10)
	if s.TakeDamage(4) {
		t.Error("Expected structure to survive the first hit")
	}
	if s.FlashTimer <= 0 {
		t.Error("Expected hit flash to start")
	}
	if !s.TakeDamage(6) {
		t.Error("Expected the killing blow to report destruction")
	}
	if s.TakeDamage(5) {
		t.Error("Expected damage after destruction to be ignored")
	}
	if s.Health != 0 || !s.IsDestroyed() {
		t.Errorf("Expected destroyed structure with 0 health, got %v", s.Health)
	}
}

func TestTargetablesImplementContract(t *testing.T) {
	var _ target.Targetable = (*Carrier)(nil)
	var _ target.Targetable = (*Turret)(nil)
	var _ target.Targetable = (*Drill)(nil)

	ground := NewTurret(1, defs.TurretDefinition{ID: "T", Health: 5}, 0, 0, false)
	mounted := NewTurret(2, defs.TurretDefinition{ID: "H", Health: 5}, 0, 0, true)
	if ground.Priority() != target.PriorityTurret {
		t.Errorf("Expected ground turret priority TURRET, got %s", ground.Priority())
	}
	if mounted.Priority() != target.PriorityCarrierHardpoint {
		t.Errorf("Expected mounted turret priority CARRIER_HARDPOINT, got %s", mounted.Priority())
	}
}

func TestCarrierAliveHardpoints(t *testing.T) {
	a := NewTurret(1, defs.TurretDefinition{Health: 1}, 0, 0, true)
	b := NewTurret(2, defs.TurretDefinition{Health: 1}, 0, 0, true)
	c := &Carrier{Structure: NewStructure(100), Hardpoints: []*Turret{a, b}}
	b.TakeDamage(5)
	if c.AliveHardpoints() != 1 {
		t.Errorf("Expected 1 live hardpoint, got %d", c.AliveHardpoints())
	}
}

func TestNewEnemyScalesWithDifficulty(t *testing.T) {
	def := defs.EnemyDefinition{ID: "E", Archetype: defs.ArchetypeMelee, Health: 100, Damage: 10, Speed: 50}
	e := NewEnemy(7, def, 3, 1.5, 10, 20)
	if e.Health != 150 || e.MaxHealth != 150 {
		t.Errorf("Expected 150 health, got %v", e.Health)
	}
	if e.Damage != 15 {
		t.Errorf("Expected 15 damage, got %v", e.Damage)
	}
	if e.Speed != 50 {
		t.Errorf("Expected speed to be unscaled, got %v", e.Speed)
	}
	if e.State != StateSeeking || e.WaveID != 3 {
		t.Errorf("Unexpected initial state %s / wave %d", e.State, e.WaveID)
	}
	if !e.TakeDamage(200) || e.IsAlive() {
		t.Error("Expected lethal damage to kill")
	}
}

func TestWaveProgress(t *testing.T) {
	w := &Wave{Size: 4, EnemiesRemaining: 4}
	if w.Progress() != 0 {
		t.Errorf("Expected 0 progress, got %v", w.Progress())
	}
	w.EnemiesRemaining = 1
	if w.Progress() != 0.75 {
		t.Errorf("Expected 0.75 progress, got %v", w.Progress())
	}
}

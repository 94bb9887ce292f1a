package target

import "testing"

type dummy struct {
	x, y      float64
	priority  Priority
	health    float64
	destroyed bool
}

func (d *dummy) Position() (float64, float64) { return d.x, d.y }
func (d *dummy) Priority() Priority { return d.priority }
func (d *dummy) IsDestroyed() bool { return d.destroyed }
func (d *dummy) TakeDamage(amount float64) bool {
	if d.destroyed {
		return false
	}
	d.health -= amount
	if d.health <= 0 {
		d.destroyed = true
		return true
	}
	return false
}

func TestRegisterIsIdempotent(t *testing.T) {
	r := NewRegistry()
	a := &dummy{priority: PriorityDrill}

	if !r.Register(a) {
		t.Fatal("Expected first registration to succeed")
	}
	if r.Register(a) {
		t.Error("Expected second registration to report false")
	}
	if r.Len() != 1 {
		t.Errorf("Expected 1 target, got %d", r.Len())
	}
	if r.Register(nil) {
		t.Error("Expected nil registration to be rejected")
	}
}

func TestUnregisterAbsent(t *testing.T) {
	r := NewRegistry()
	a, b := &dummy{}, &dummy{}
	r.Register(a)

	if r.Unregister(b) {
		t.Error("Expected unregistering an absent target to report false")
	}
	if !r.Unregister(a) {
		t.Error("Expected unregistering a present target to succeed")
	}
	if r.Unregister(a) {
		t.Error("Expected second unregister to report false")
	}
}

func TestGetAllIsSnapshot(t *testing.T) {
	r := NewRegistry()
	a, b, c := &dummy{}, &dummy{}, &dummy{}
	r.Register(a)
	r.Register(b)
	r.Register(c)

	snapshot := r.GetAll()
	r.Unregister(a)

	if len(snapshot) != 3 || snapshot[0] != a || snapshot[1] != b {
		t.Error("Expected snapshot to be unaffected by later mutation")
	}
	all := r.GetAll()
	if len(all) != 2 || all[0] != b || all[1] != c {
		t.Error("Expected insertion order to be kept after removal")
	}
}

func TestFindClosestTieBreak(t *testing.T) {
	a := &dummy{x: 10, y: 0}
	b := &dummy{x: -10, y: 0}
	c := &dummy{x: 0, y: 30}

	got, d := FindClosest(0, 0, []Targetable{a, b, c})
	if got != a || d != 10 {
		t.Errorf("Expected first of the tied candidates, got %v at %v", got, d)
	}
	got, _ = FindClosest(0, 0, []Targetable{b, a, c})
	if got != b {
		t.Error("Expected tie to follow candidate order")
	}
	got, _ = FindClosest(0, 25, []Targetable{a, b, c})
	if got != c {
		t.Error("Expected nearest candidate")
	}
	if got, _ := FindClosest(0, 0, nil); got != nil {
		t.Error("Expected nil for no candidates")
	}
}

func TestPriorityQueries(t *testing.T) {
	r := NewRegistry()
	hp1 := &dummy{priority: PriorityCarrierHardpoint}
	hp2 := &dummy{priority: PriorityCarrierHardpoint, destroyed: true}
	carrier := &dummy{priority: PriorityCarrier}
	r.Register(hp1)
	r.Register(hp2)
	r.Register(carrier)

	hps := r.ByPriority(PriorityCarrierHardpoint)
	if len(hps) != 1 || hps[0] != hp1 {
		t.Errorf("Expected only the live hardpoint, got %d", len(hps))
	}
	if len(r.Alive()) != 2 {
		t.Errorf("Expected 2 live targets, got %d", len(r.Alive()))
	}
	if PriorityCarrierHardpoint.String() != "CARRIER_HARDPOINT" {
		t.Error("Unexpected priority name")
	}
}

func TestHitRadiusFallback(t *testing.T) {
	if HitRadius(&dummy{}, 7) != 7 {
		t.Error("Expected fallback radius for unsized target")
	}
}

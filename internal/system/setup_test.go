package system

import (
	"carrier-defense/internal/config"
	"carrier-defense/internal/defs"
	"carrier-defense/internal/entity"
	"carrier-defense/internal/event"
	"carrier-defense/internal/logger"
	"carrier-defense/internal/store"
	"carrier-defense/internal/target"
	"carrier-defense/internal/terrain"
	"carrier-defense/internal/types"
	"carrier-defense/internal/utils"
	"testing"
)

type fakeWorld struct {
	bounds     types.Rect
	hasBounds  bool
	cx, cy     float64
	hasCarrier bool
}

func (w *fakeWorld) Bounds() (types.Rect, bool) { return w.bounds, w.hasBounds }
func (w *fakeWorld) CarrierPosition() (float64, float64, bool) {
	return w.cx, w.cy, w.hasCarrier
}

// recorder запоминает все события.
type recorder struct {
	events []event.Event
}

func (r *recorder) Dispatch(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func (r *recorder) last(t event.EventType) (event.Event, bool) {
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Type == t {
			return r.events[i], true
		}
	}
	return event.Event{}, false
}

// scripted отдаёт заранее заданные значения по кругу.
type scripted struct {
	ints   []int
	floats []float64
	i, f   int
}

func (s *scripted) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[s.i%len(s.ints)] % n
	s.i++
	return v
}

func (s *scripted) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[s.f%len(s.floats)]
	s.f++
	return v
}

// dummyTarget — цель с заданным приоритетом и здоровьем.
type dummyTarget struct {
	x, y      float64
	priority  target.Priority
	health    float64
	destroyed bool
	hits      int
}

func (d *dummyTarget) Position() (float64, float64) { return d.x, d.y }
func (d *dummyTarget) Priority() target.Priority { return d.priority }
func (d *dummyTarget) IsDestroyed() bool { return d.destroyed }
func (d *dummyTarget) TakeDamage(amount float64) bool {
	if d.destroyed {
		return false
	}
	d.hits++
	d.health -= amount
	if d.health <= 0 {
		d.destroyed = true
		return true
	}
	return false
}

// newTestContext собирает контекст без грунта, с миром 1000×800 и носителем в центре.
func newTestContext(t *testing.T) (*Context, *recorder, *fakeWorld) {
	t.Helper()
	lib, err := defs.Default()
	if err != nil {
		t.Fatalf("Failed to load definitions: %v", err)
	}
	world := &fakeWorld{
		bounds:     types.Rect{Width: 1000, Height: 800},
		hasBounds:  true,
		cx:         500,
		cy:         400,
		hasCarrier: true,
	}
	sink := &recorder{}
	ctx := &Context{
		ECS:        entity.NewECS(),
		Targets:    target.NewRegistry(),
		Events:     sink,
		Counters:   store.NewMemory(),
		World:      world,
		Rng:        utils.NewPRNGService(7),
		Defs:       lib,
		Scheduler:  NewScheduler(),
		Log:        logger.Discard(),
		Waves:      config.DefaultWaveConfig(),
		Engagement: config.DefaultEngagementConfig(),
	}
	return ctx, sink, world
}

// flatTerrain — сетка 20×20 тайлов по 10 px с ровной поверхностью на строке 10:
// по две строки рыхлого, мягкого и среднего грунта, дальше коренная порода.
func flatTerrain() *terrain.Grid {
	return terrain.Generate(200, 200, 10, config.TerrainConfig{
		Seed:         3,
		SurfaceRatio: 0.5,
		LooseDepth:   2,
		SoftDepth:    2,
		MediumDepth:  2,
	})
}

func enemyDef(t *testing.T, ctx *Context, id string) defs.EnemyDefinition {
	t.Helper()
	def, ok := ctx.Defs.Enemies[id]
	if !ok {
		t.Fatalf("Missing enemy definition %s", id)
	}
	return def
}

func turretDef(t *testing.T, ctx *Context, id string) defs.TurretDefinition {
	t.Helper()
	def, ok := ctx.Defs.Turrets[id]
	if !ok {
		t.Fatalf("Missing turret definition %s", id)
	}
	return def
}

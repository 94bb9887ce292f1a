// internal/system/context.go
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

	"github.com/sirupsen/logrus"
)

// WorldProvider — что системы могут спросить у мира. Только чтение.
type WorldProvider interface {
	// Bounds — прямоугольник мира; false, если мир ещё не задан.
	Bounds() (types.Rect, bool)
	// CarrierPosition — где сейчас носитель; false, если его нет.
	CarrierPosition() (x, y float64, ok bool)
}

// Context собирает всё, что нужно системам, и передаётся им при создании.
type Context struct {
	ECS        *entity.ECS
	Terrain    *terrain.Grid
	Targets    *target.Registry
	Events     event.Sink
	Counters   store.Store
	World      WorldProvider
	Rng        utils.Random
	Defs       *defs.Library
	Scheduler  *Scheduler
	Log        *logrus.Logger
	Waves      config.WaveConfig
	Engagement config.EngagementConfig
}

// Now — текущее игровое время в секундах.
func (c *Context) Now() float64 {
	return c.ECS.GameTime
}

func (c *Context) emit(t event.EventType, data interface{}) {
	if c.Events == nil {
		return
	}
	c.Events.Dispatch(event.Event{Type: t, Data: data})
}

// bounds и carrierPosition: без мира ответ «неизвестно».
func (c *Context) bounds() (types.Rect, bool) {
	if c.World == nil {
		return types.Rect{}, false
	}
	return c.World.Bounds()
}

func (c *Context) carrierPosition() (float64, float64, bool) {
	if c.World == nil {
		return 0, 0, false
	}
	return c.World.CarrierPosition()
}

func (c *Context) logFor(system string) *logrus.Entry {
	return logger.For(c.Log, system)
}

func (c *Context) counters() store.Store {
	if c.Counters == nil {
		c.Counters = store.NewMemory()
	}
	return c.Counters
}

// reportTargetDestroyed сообщает владельцу, что цель разрушена.
// Снимает её с учёта владелец, а не тот, кто нанёс удар.
func (c *Context) reportTargetDestroyed(t target.Targetable) {
	x, y := t.Position()
	c.emit(event.TargetDestroyed, event.TargetPayload{
		Target:   t,
		Priority: t.Priority().String(),
		X:        x,
		Y:        y,
	})
}

// explode рвёт грунт и сообщает о взрыве.
func (c *Context) explode(x, y, radius, strength float64) int {
	if c.Terrain == nil {
		return 0
	}
	destroyed := c.Terrain.CreateExplosion(x, y, radius, strength)
	c.emit(event.TerrainExplosion, event.ExplosionPayload{
		X:         x,
		Y:         y,
		Radius:    radius,
		Strength:  strength,
		Destroyed: destroyed,
	})
	return destroyed
}

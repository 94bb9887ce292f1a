// internal/entity/ecs.go
package entity

import (
	"carrier-defense/internal/component"
	"carrier-defense/internal/types"
	"sort"
)

// ECS хранит все сущности боя. Карты дают быстрый доступ по id,
// списки (…List) — детерминированный порядок обхода по возрастанию id.
type ECS struct {
	GameTime    float64
	NextID      types.EntityID
	Enemies     map[types.EntityID]*component.Enemy
	Turrets     map[types.EntityID]*component.Turret
	Projectiles map[types.EntityID]*component.Projectile
	Drills      map[types.EntityID]*component.Drill
	Carrier     *component.Carrier
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Turrets:     make(map[types.EntityID]*component.Turret),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Drills:      make(map[types.EntityID]*component.Drill),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

func sortedIDs[T any](m map[types.EntityID]T) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// EnemyList — снимок всех врагов, включая только что убитых.
func (ecs *ECS) EnemyList() []*component.Enemy {
	out := make([]*component.Enemy, 0, len(ecs.Enemies))
	for _, id := range sortedIDs(ecs.Enemies) {
		out = append(out, ecs.Enemies[id])
	}
	return out
}

// AliveEnemies — снимок живых врагов.
func (ecs *ECS) AliveEnemies() []*component.Enemy {
	out := make([]*component.Enemy, 0, len(ecs.Enemies))
	for _, id := range sortedIDs(ecs.Enemies) {
		if e := ecs.Enemies[id]; e.IsAlive() {
			out = append(out, e)
		}
	}
	return out
}

// TurretList включает огневые точки носителя.
func (ecs *ECS) TurretList() []*component.Turret {
	out := make([]*component.Turret, 0, len(ecs.Turrets))
	for _, id := range sortedIDs(ecs.Turrets) {
		out = append(out, ecs.Turrets[id])
	}
	return out
}

func (ecs *ECS) ProjectileList() []*component.Projectile {
	out := make([]*component.Projectile, 0, len(ecs.Projectiles))
	for _, id := range sortedIDs(ecs.Projectiles) {
		out = append(out, ecs.Projectiles[id])
	}
	return out
}

func (ecs *ECS) DrillList() []*component.Drill {
	out := make([]*component.Drill, 0, len(ecs.Drills))
	for _, id := range sortedIDs(ecs.Drills) {
		out = append(out, ecs.Drills[id])
	}
	return out
}

// AddProjectile выдаёт снаряду id и кладёт его в хранилище.
func (ecs *ECS) AddProjectile(p *component.Projectile) types.EntityID {
	p.ID = ecs.NewEntity()
	ecs.Projectiles[p.ID] = p
	return p.ID
}

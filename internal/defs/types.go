// internal/defs/types.go
package defs

import "image/color"

// Archetype — поведение врага в бою.
type Archetype string

const (
	ArchetypeMelee   Archetype = "MELEE"
	ArchetypeShooter Archetype = "SHOOTER"
)

// TurretKind — вариант поведения турели.
type TurretKind string

const (
	TurretPointDefense TurretKind = "POINT_DEFENSE"
	TurretMacro        TurretKind = "MACRO"
)

// Visuals contains parameters for rendering an entity.
type Visuals struct {
	Color        color.RGBA `json:"color"`
	RadiusFactor float64    `json:"radius_factor"`
}

// SpawnWeight — вес типа врага в случайном выборе при спавне.
type SpawnWeight struct {
	EnemyID string `json:"enemy_id"`
	Weight  int    `json:"weight"`
}

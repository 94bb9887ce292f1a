package event

import "carrier-defense/internal/types"

// EnemyPayload — данные для EnemySpawned и EnemyKilled.
type EnemyPayload struct {
	EnemyID   types.EntityID
	WaveID    int
	Archetype string
	X, Y      float64
	// Cleared — враг снят с поля принудительно, а не убит.
	Cleared bool
}

// WavePayload — данные для событий волны.
type WavePayload struct {
	WaveID     int
	Number     int
	Size       int
	Difficulty float64
	Progress   float64
}

// CountdownPayload — сколько секунд осталось до следующей волны.
type CountdownPayload struct {
	NextWave  int
	Remaining float64
}

// TurretPayload — данные для событий турелей.
type TurretPayload struct {
	TurretID types.EntityID
	Kind     string
	X, Y     float64
	Damage   float64
}

// DrillPayload — данные для DrillPlaced.
type DrillPayload struct {
	DrillID types.EntityID
	X, Y    float64
}

// TargetPayload — данные для TargetDestroyed.
// Target хранит саму цель (target.Targetable), чтобы владелец мог её снять с учёта.
type TargetPayload struct {
	Target   interface{}
	Priority string
	X, Y     float64
}

// ExplosionPayload — данные для TerrainExplosion.
type ExplosionPayload struct {
	X, Y      float64
	Radius    float64
	Strength  float64
	Destroyed int
}

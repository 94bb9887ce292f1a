// internal/defs/enemies.go
package defs

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Archetype Archetype `json:"archetype"`
	Health    float64   `json:"health"`
	Speed     float64   `json:"speed"`
	Damage    float64   `json:"damage"`
	// AttackRange — дистанция, с которой враг бьёт или стреляет (включительно).
	AttackRange float64 `json:"attack_range"`
	// MinRange — только для стрелков: ближе этого враг отступает.
	MinRange       float64 `json:"min_range"`
	AttackInterval float64 `json:"attack_interval"`
	ShotRange      float64 `json:"shot_range"`
	Visuals        Visuals `json:"visuals"`
}

// internal/defs/turrets.go
package defs

// TurretDefinition describes a placeable or carrier-mounted turret.
type TurretDefinition struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Kind         TurretKind `json:"kind"`
	Health       float64    `json:"health"`
	Range        float64    `json:"range"`
	Damage       float64    `json:"damage"`
	FireRate     float64    `json:"fire_rate"`  // выстрелов в секунду
	TurnSpeed    float64    `json:"turn_speed"` // рад/с
	SplashRadius float64    `json:"splash_radius"`
	// Заряд есть только у MACRO: копится, пока цель удерживается.
	ChargeRate  float64 `json:"charge_rate"`
	ChargeDecay float64 `json:"charge_decay"`
	MaxCharge   float64 `json:"max_charge"`
	Cost        float64 `json:"cost"`
	Visuals     Visuals `json:"visuals"`
}

// internal/target/targetable.go
package target

// Priority — метка цели для врагов.
type Priority int

const (
	PriorityDrill Priority = iota
	PriorityTurret
	PriorityCarrierHardpoint
	PriorityCarrier
)

func (p Priority) String() string {
	switch p {
	case PriorityDrill:
		return "DRILL"
	case PriorityTurret:
		return "TURRET"
	case PriorityCarrierHardpoint:
		return "CARRIER_HARDPOINT"
	case PriorityCarrier:
		return "CARRIER"
	default:
		return "UNKNOWN"
	}
}

// Targetable — всё, что враги могут выбрать целью.
type Targetable interface {
	Position() (x, y float64)
	Priority() Priority
	IsDestroyed() bool
	// TakeDamage наносит урон и возвращает true, если этот удар разрушил цель.
	TakeDamage(amount float64) bool
}

// Sized — цели, которые знают свой радиус попадания.
type Sized interface {
	HitRadius() float64
}

// HitRadius возвращает радиус попадания цели или fallback, если цель его не знает.
func HitRadius(t Targetable, fallback float64) float64 {
	if s, ok := t.(Sized); ok {
		return s.HitRadius()
	}
	return fallback
}

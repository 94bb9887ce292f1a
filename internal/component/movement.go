// component/movement.go
package component

import "math"

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// DistanceTo — расстояние до точки
func (p Position) DistanceTo(x, y float64) float64 {
	return math.Hypot(x-p.X, y-p.Y)
}

// Advance сдвигает позицию на dist в направлении angle
func (p *Position) Advance(angle, dist float64) {
	p.X += math.Cos(angle) * dist
	p.Y += math.Sin(angle) * dist
}

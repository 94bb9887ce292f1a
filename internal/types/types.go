// internal/types/types.go
package types

// EntityID — идентификатор сущности
type EntityID uint64

// Rect — прямоугольник мира в пикселях
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Contains проверяет, лежит ли точка внутри прямоугольника (границы включительно)
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

// Empty — true, если у прямоугольника нет площади
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

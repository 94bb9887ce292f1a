// internal/terrain/tile.go
package terrain

import "image/color"

// Material — вид грунта.
type Material uint8

const (
	MaterialEmpty Material = iota
	MaterialLoose          // рыхлый, осыпается
	MaterialSoft
	MaterialMedium
	MaterialHard // коренная порода
)

func (m Material) String() string {
	switch m {
	case MaterialEmpty:
		return "empty"
	case MaterialLoose:
		return "loose"
	case MaterialSoft:
		return "soft"
	case MaterialMedium:
		return "medium"
	case MaterialHard:
		return "hard"
	default:
		return "unknown"
	}
}

// ResistanceFactor — множитель вероятности разрушения взрывом.
// Чем твёрже материал, тем он меньше: hard < medium < soft < loose.
func (m Material) ResistanceFactor() float64 {
	switch m {
	case MaterialLoose:
		return 1.0
	case MaterialSoft:
		return 0.75
	case MaterialMedium:
		return 0.45
	case MaterialHard:
		return 0.1
	default:
		return 0
	}
}

// Yield — сколько руды даёт тайл при бурении.
func (m Material) Yield() float64 {
	switch m {
	case MaterialLoose:
		return 1
	case MaterialSoft:
		return 2
	case MaterialMedium:
		return 4
	default:
		return 0
	}
}

// Tile — значение клетки сетки. Клетка хранит копию, тайл не меняется на месте.
type Tile struct {
	Solid     bool
	Shiftable bool
	Material  Material
	Color     color.RGBA
}

// Empty — пустая клетка.
var Empty = Tile{}

// IsEmpty — true, если в клетке нет грунта.
func (t Tile) IsEmpty() bool {
	return !t.Solid
}

// Falls — true, если тайл подвержен гравитации.
func (t Tile) Falls() bool {
	return t.Solid && t.Shiftable
}

// NewTile создаёт сплошной тайл из материала. Осыпается только рыхлый грунт.
func NewTile(m Material, c color.RGBA) Tile {
	if m == MaterialEmpty {
		return Empty
	}
	return Tile{
		Solid:     true,
		Shiftable: m == MaterialLoose,
		Material:  m,
		Color:     c,
	}
}

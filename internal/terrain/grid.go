// internal/terrain/grid.go
package terrain

import (
	"carrier-defense/internal/types"
	"carrier-defense/internal/utils"
	"math"
)

// Grid — разрушаемое поле тайлов cols × rows с фиксированным размером тайла.
// В каждой клетке всегда лежит валидный Tile; пустота — это Empty.
type Grid struct {
	cols, rows int
	tileSize   float64
	tiles      []Tile // row-major: tiles[row*cols+col]
	rng        utils.Random
	// version растёт при каждом изменении, по нему рендер понимает, что картинку пора перерисовать
	version uint64
}

// New создаёт пустую сетку.
func New(cols, rows int, tileSize float64, rng utils.Random) *Grid {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	if tileSize <= 0 {
		tileSize = 1
	}
	if rng == nil {
		rng = utils.NewPRNGService(defaultSeed)
	}
	return &Grid{
		cols:     cols,
		rows:     rows,
		tileSize: tileSize,
		tiles:    make([]Tile, cols*rows),
		rng:      rng,
	}
}

func (g *Grid) Cols() int { return g.cols }
func (g *Grid) Rows() int { return g.rows }
func (g *Grid) TileSize() float64 { return g.tileSize }
func (g *Grid) Width() float64 { return float64(g.cols) * g.tileSize }
func (g *Grid) Height() float64 { return float64(g.rows) * g.tileSize }
func (g *Grid) Version() uint64 { return g.version }
func (g *Grid) SetRandom(r utils.Random) { g.rng = r }

// Bounds — прямоугольник мира, который покрывает сетка.
func (g *Grid) Bounds() types.Rect {
	return types.Rect{Width: g.Width(), Height: g.Height()}
}

func (g *Grid) inBounds(col, row int) bool {
	return col >= 0 && col < g.cols && row >= 0 && row < g.rows
}

// At возвращает тайл клетки. Для клеток вне сетки — Empty и false.
func (g *Grid) At(col, row int) (Tile, bool) {
	if !g.inBounds(col, row) {
		return Empty, false
	}
	return g.tiles[row*g.cols+col], true
}

func (g *Grid) set(col, row int, t Tile) {
	g.tiles[row*g.cols+col] = t
	g.version++
}

// CellAt переводит мировые координаты в клетку.
func (g *Grid) CellAt(worldX, worldY float64) (col, row int, ok bool) {
	if worldX < 0 || worldY < 0 {
		return 0, 0, false
	}
	col = int(worldX / g.tileSize)
	row = int(worldY / g.tileSize)
	return col, row, g.inBounds(col, row)
}

// CellCenter — мировые координаты центра клетки.
func (g *Grid) CellCenter(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * g.tileSize, (float64(row) + 0.5) * g.tileSize
}

// IsSolid — есть ли грунт в точке мира.
func (g *Grid) IsSolid(worldX, worldY float64) bool {
	col, row, ok := g.CellAt(worldX, worldY)
	if !ok {
		return false
	}
	return g.tiles[row*g.cols+col].Solid
}

// SurfaceRow — первая сплошная строка столбца сверху.
func (g *Grid) SurfaceRow(col int) (int, bool) {
	if col < 0 || col >= g.cols {
		return 0, false
	}
	for row := 0; row < g.rows; row++ {
		if g.tiles[row*g.cols+col].Solid {
			return row, true
		}
	}
	return 0, false
}

// GetSurfaceY — верхняя кромка первого сплошного тайла в столбце под worldX.
func (g *Grid) GetSurfaceY(worldX float64) (float64, bool) {
	if worldX < 0 {
		return 0, false
	}
	row, ok := g.SurfaceRow(int(worldX / g.tileSize))
	if !ok {
		return 0, false
	}
	return float64(row) * g.tileSize, true
}

// CanPlaceAt — клетка пуста, а под ней сплошной грунт.
func (g *Grid) CanPlaceAt(worldX, worldY float64) bool {
	col, row, ok := g.CellAt(worldX, worldY)
	if !ok {
		return false
	}
	if g.tiles[row*g.cols+col].Solid {
		return false
	}
	below, ok := g.At(col, row+1)
	return ok && below.Solid
}

// DestroyAt очищает клетку под точкой и даёт осыпаться тому, что над ней.
// Возвращает тайл, который был в клетке, и true, если там был грунт.
func (g *Grid) DestroyAt(worldX, worldY float64) (Tile, bool) {
	col, row, ok := g.CellAt(worldX, worldY)
	if !ok {
		return Empty, false
	}
	return g.destroyCell(col, row)
}

func (g *Grid) destroyCell(col, row int) (Tile, bool) {
	old := g.tiles[row*g.cols+col]
	if !old.Solid {
		return Empty, false
	}
	g.set(col, row, Empty)
	g.SimulateFalling(col, row)
	return old, true
}

// SimulateFalling проходит столбец вверх от fromRow и опускает каждый
// осыпающийся тайл до ближайшего непустого тайла или дна сетки.
// Нижние тайлы обрабатываются раньше верхних, поэтому стопка оседает за один проход.
// Возвращает число сдвинутых тайлов.
func (g *Grid) SimulateFalling(col, fromRow int) int {
	if col < 0 || col >= g.cols || g.rows == 0 {
		return 0
	}
	if fromRow >= g.rows {
		fromRow = g.rows - 1
	}
	moved := 0
	for row := fromRow; row >= 0; row-- {
		t := g.tiles[row*g.cols+col]
		if !t.Falls() {
			continue
		}
		dest := row
		for dest+1 < g.rows && !g.tiles[(dest+1)*g.cols+col].Solid {
			dest++
		}
		if dest != row {
			g.set(col, row, Empty)
			g.set(col, dest, t)
			moved++
		}
	}
	return moved
}

// CreateExplosion разрушает тайлы в радиусе radius (в пикселях) от точки.
// Для каждого тайла вероятность разрушения равна
// (1 - d/R) * strength * ResistanceFactor, где d и R в клетках.
// После обработки всей области столбцы оседают снизу вверх.
// Возвращает число разрушенных тайлов.
func (g *Grid) CreateExplosion(worldX, worldY, radius, strength float64) int {
	centerCol, centerRow, ok := g.CellAt(worldX, worldY)
	if !ok || radius <= 0 || strength <= 0 {
		return 0
	}
	gridRadius := radius / g.tileSize
	reach := int(math.Ceil(gridRadius))

	destroyed := 0
	for row := centerRow - reach; row <= centerRow+reach; row++ {
		for col := centerCol - reach; col <= centerCol+reach; col++ {
			if !g.inBounds(col, row) {
				continue
			}
			t := g.tiles[row*g.cols+col]
			if !t.Solid {
				continue
			}
			d := math.Hypot(float64(col-centerCol), float64(row-centerRow))
			if d > gridRadius {
				continue
			}
			p := (1 - d/gridRadius) * strength * t.Material.ResistanceFactor()
			if g.rng.Float64() < p {
				g.set(col, row, Empty)
				destroyed++
			}
		}
	}

	bottom := centerRow + reach
	if bottom >= g.rows {
		bottom = g.rows - 1
	}
	for col := centerCol - reach; col <= centerCol+reach; col++ {
		g.SimulateFalling(col, bottom)
	}
	return destroyed
}

// IsSettled — ни один осыпающийся тайл не висит над пустотой.
func (g *Grid) IsSettled() bool {
	for row := 0; row < g.rows-1; row++ {
		for col := 0; col < g.cols; col++ {
			if g.tiles[row*g.cols+col].Falls() && !g.tiles[(row+1)*g.cols+col].Solid {
				return false
			}
		}
	}
	return true
}

// CountSolid — число сплошных тайлов.
func (g *Grid) CountSolid() int {
	n := 0
	for _, t := range g.tiles {
		if t.Solid {
			n++
		}
	}
	return n
}

// Equal сравнивает размеры и содержимое двух сеток.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.cols != other.cols || g.rows != other.rows || g.tileSize != other.tileSize {
		return false
	}
	for i := range g.tiles {
		if g.tiles[i] != other.tiles[i] {
			return false
		}
	}
	return true
}

// AppendRGBA дописывает в buf картинку сетки: один пиксель RGBA на тайл,
// построчно сверху вниз. Пустые клетки прозрачны.
func (g *Grid) AppendRGBA(buf []byte) []byte {
	for _, t := range g.tiles {
		if !t.Solid {
			buf = append(buf, 0, 0, 0, 0)
			continue
		}
		buf = append(buf, t.Color.R, t.Color.G, t.Color.B, t.Color.A)
	}
	return buf
}

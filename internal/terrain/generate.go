// internal/terrain/generate.go
package terrain

import (
	"carrier-defense/internal/config"
	"carrier-defense/internal/utils"
	"image/color"
	"math"
)

// defaultSeed используется, когда сид не задан: мир должен быть одинаковым
// для одинаковых размеров.
const defaultSeed int64 = 1

// Generate строит сетку под мир width × height пикселей.
// Высота поверхности в столбце — сумма низкочастотных синусов по x;
// ниже поверхности идут полосы рыхлого, мягкого, среднего грунта и
// бесконечная коренная порода. Одинаковые размеры и сид дают одинаковую сетку.
func Generate(width, height, tileSize float64, cfg config.TerrainConfig) *Grid {
	seed := cfg.Seed
	if seed == 0 {
		seed = defaultSeed
	}
	rng := utils.NewPRNGService(seed)
	if tileSize <= 0 {
		tileSize = config.TileSize
	}
	g := New(int(width/tileSize), int(height/tileSize), tileSize, rng)
	if g.cols == 0 || g.rows == 0 {
		return g
	}

	// Фазы синусов берутся из того же генератора, что и взрывы, до первого взрыва.
	phases := make([]float64, len(cfg.Amplitudes))
	for i := range phases {
		phases[i] = rng.Float64() * 2 * math.Pi
	}

	base := float64(g.rows) * cfg.SurfaceRatio
	for col := 0; col < g.cols; col++ {
		h := base
		for i, amp := range cfg.Amplitudes {
			if i >= len(cfg.Frequencies) {
				break
			}
			h += amp * math.Sin(float64(col)*cfg.Frequencies[i]+phases[i])
		}
		surface := int(math.Round(h))
		if surface < 1 {
			surface = 1
		}
		if surface > g.rows-1 {
			surface = g.rows - 1
		}

		for row := surface; row < g.rows; row++ {
			m := materialForDepth(row-surface, cfg)
			g.tiles[row*g.cols+col] = NewTile(m, tint(baseColor(m), col, row, seed))
		}
	}
	return g
}

func materialForDepth(depth int, cfg config.TerrainConfig) Material {
	switch {
	case depth < cfg.LooseDepth:
		return MaterialLoose
	case depth < cfg.LooseDepth+cfg.SoftDepth:
		return MaterialSoft
	case depth < cfg.LooseDepth+cfg.SoftDepth+cfg.MediumDepth:
		return MaterialMedium
	default:
		return MaterialHard
	}
}

func baseColor(m Material) color.RGBA {
	switch m {
	case MaterialLoose:
		return config.LooseColor
	case MaterialSoft:
		return config.SoftColor
	case MaterialMedium:
		return config.MediumColor
	default:
		return config.HardColor
	}
}

// tint слегка сдвигает яркость тайла детерминированным шумом по координатам.
func tint(c color.RGBA, col, row int, seed int64) color.RGBA {
	h := uint64(col)*73856093 ^ uint64(row)*19349663 ^ uint64(seed)*83492791
	h ^= h >> 13
	h *= 0x5bd1e995
	h ^= h >> 15
	shift := int(h%25) - 12
	return color.RGBA{
		R: shade(c.R, shift),
		G: shade(c.G, shift),
		B: shade(c.B, shift),
		A: c.A,
	}
}

func shade(v uint8, shift int) uint8 {
	n := int(v) + shift
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}

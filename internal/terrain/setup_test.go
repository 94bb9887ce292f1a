package terrain

import (
	"carrier-defense/internal/config"
	"carrier-defense/internal/utils"
)

// floorGrid строит сетку 10×10 с тайлом 10 и твёрдым дном в последней строке.
func floorGrid() *Grid {
	g := New(10, 10, 10, utils.NewPRNGService(1))
	for col := 0; col < g.Cols(); col++ {
		g.set(col, g.Rows()-1, NewTile(MaterialHard, config.HardColor))
	}
	return g
}

func smallConfig(seed int64) config.TerrainConfig {
	cfg := config.DefaultTerrainConfig()
	cfg.Seed = seed
	cfg.SurfaceRatio = 0.4
	cfg.LooseDepth = 4
	cfg.SoftDepth = 4
	cfg.MediumDepth = 4
	cfg.Amplitudes = []float64{3, 1.5, 0.5}
	return cfg
}

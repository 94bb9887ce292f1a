// cmd/terrain_viewer/main.go
// Терминальный просмотр генератора грунта: одна клетка терминала — один тайл.
package main

import (
	"carrier-defense/internal/config"
	"carrier-defense/internal/logger"
	"carrier-defense/internal/terrain"
	"carrier-defense/internal/utils"
	"flag"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

type viewer struct {
	screen   tcell.Screen
	cfg      config.TerrainConfig
	grid     *terrain.Grid
	rng      *utils.PRNGService
	radius   float64
	strength float64
	status   string
	log      *logrus.Entry
}

func main() {
	seed := flag.Int64("seed", 0, "terrain seed, 0 for random")
	radius := flag.Float64("radius", 5, "explosion radius in tiles")
	strength := flag.Float64("strength", 1.2, "explosion strength")
	flag.Parse()

	log := logger.For(logger.New(), "terrain_viewer")

	screen, err := tcell.NewScreen()
	if err != nil {
		log.WithError(err).Fatal("failed to create screen")
	}
	if err := screen.Init(); err != nil {
		log.WithError(err).Fatal("failed to init screen")
	}
	defer screen.Fini()

	v := &viewer{
		screen:   screen,
		cfg:      config.DefaultTerrainConfig(),
		rng:      utils.NewPRNGService(*seed),
		radius:   *radius * config.TileSize,
		strength: *strength,
		log:      log,
	}
	v.cfg.Seed = v.rng.Seed()
	v.regenerate()

	for {
		v.draw()
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			v.regenerate()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				return
			}
			if ev.Key() != tcell.KeyRune {
				continue
			}
			switch ev.Rune() {
			case 'q':
				return
			case 'e':
				v.explode()
			case 'r':
				v.cfg.Seed = int64(v.rng.Intn(1<<31-1)) + 1
				v.regenerate()
			}
		}
	}
}

// regenerate строит сетку под размер терминала, последняя строка под статус.
func (v *viewer) regenerate() {
	w, h := v.screen.Size()
	if h > 1 {
		h--
	}
	v.grid = terrain.Generate(float64(w)*config.TileSize, float64(h)*config.TileSize, config.TileSize, v.cfg)
	v.status = fmt.Sprintf("seed %d  solid %d", v.cfg.Seed, v.grid.CountSolid())
	v.log.WithField("seed", v.cfg.Seed).Debug("terrain regenerated")
}

// explode бьёт в случайную точку на поверхности.
func (v *viewer) explode() {
	if v.grid.Cols() == 0 {
		return
	}
	col := v.rng.Intn(v.grid.Cols())
	x, _ := v.grid.CellCenter(col, 0)
	y, ok := v.grid.GetSurfaceY(x)
	if !ok {
		y = v.grid.Height() / 2
	}
	destroyed := v.grid.CreateExplosion(x, y, v.radius, v.strength)
	v.status = fmt.Sprintf("seed %d  boom at col %d: -%d tiles  settled %v",
		v.cfg.Seed, col, destroyed, v.grid.IsSettled())
}

func (v *viewer) draw() {
	v.screen.Clear()
	sky := tcell.StyleDefault.Background(rgb(config.SkyColor.R, config.SkyColor.G, config.SkyColor.B))
	for row := 0; row < v.grid.Rows(); row++ {
		for col := 0; col < v.grid.Cols(); col++ {
			t, _ := v.grid.At(col, row)
			style := sky
			if t.Solid {
				style = tcell.StyleDefault.Background(rgb(t.Color.R, t.Color.G, t.Color.B))
			}
			v.screen.SetContent(col, row, ' ', nil, style)
		}
	}

	line := v.status + "  [e] explode  [r] regenerate  [q] quit"
	for i, r := range line {
		v.screen.SetContent(i, v.grid.Rows(), r, nil, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	}
	v.screen.Show()
}

func rgb(r, g, b uint8) tcell.Color {
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

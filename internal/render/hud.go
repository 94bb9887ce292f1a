// internal/render/hud.go
package render

import (
	"carrier-defense/internal/app"
	"carrier-defense/internal/config"
	"carrier-defense/internal/store"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// HUD — строка состояния над миром. Всё, что в ней показано, читается из счётчиков.
type HUD struct {
	game     *app.Game
	fontFace font.Face
}

func NewHUD(g *app.Game) *HUD {
	return &HUD{game: g, fontFace: basicfont.Face7x13}
}

// FontFace — шрифт HUD, им же пользуются индикаторы.
func (h *HUD) FontFace() font.Face {
	return h.fontFace
}

func (h *HUD) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.HUDHeight, config.BackgroundColor, false)

	counters := h.game.Counters
	y := 16
	left := fmt.Sprintf("ORE %.0f   TURRETS %d   ENEMIES %d   KILLED %d",
		store.Float(counters, store.ResourcesOre),
		store.Int(counters, store.TurretsCount),
		store.Int(counters, store.EnemiesAlive),
		store.Int(counters, store.EnemiesKilled),
	)
	text.Draw(screen, left, h.fontFace, 10, y, config.TextLightColor)

	var status string
	switch {
	case h.game.WaveDirector.WaveActive():
		status = fmt.Sprintf("WAVE %d  %.0f%%", store.Int(counters, store.WaveCurrent), store.Float(counters, store.WaveProgress)*100)
	case !h.game.IsOver():
		status = fmt.Sprintf("NEXT WAVE IN %.0fs  [N] to call", store.Float(counters, store.WaveCountdown))
	}
	text.Draw(screen, status, h.fontFace, 10, y+16, config.TextDimColor)

	if c := h.game.ECS.Carrier; c != nil {
		hull := fmt.Sprintf("HULL %.0f%%  HARDPOINTS %d", c.HealthRatio()*100, c.AliveHardpoints())
		x := config.ScreenWidth - config.SpeedButtonOffsetX - 40 - len(hull)*config.TextCharWidth
		text.Draw(screen, hull, h.fontFace, x, y, config.TextLightColor)
	}
	help := "LMB point defense  RMB macro  D drill  P pause"
	text.Draw(screen, help, h.fontFace, 320, y+16, config.TextDimColor)
}

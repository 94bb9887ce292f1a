// internal/ui/wave_indicator.go
package ui

import (
	"carrier-defense/internal/config"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// WaveIndicator — номер волны римскими цифрами и прогресс текущей волны.
type WaveIndicator struct {
	X, Y             int
	Color            color.RGBA
	OutlineColor     color.RGBA
	OutlineThickness int
	BarWidth         int
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y int) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.WaveTextColor,
		OutlineColor:     config.TextLightColor,
		OutlineThickness: 1,
		BarWidth:         60,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw рисует номер волны и под ним полосу прогресса (доля уничтоженных врагов).
// progress < 0 — волна не идёт, полоса не рисуется. Последняя волна выделяется цветом.
func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber, maxWaves int, progress float64, face font.Face) {
	if waveNumber <= 0 {
		return
	}

	label := toRoman(waveNumber)
	textColor := i.Color
	if waveNumber == maxWaves {
		textColor = config.BossWaveColor
	}

	width := font.MeasureString(face, label).Ceil()
	textX := i.X - width/2
	textY := i.Y + face.Metrics().Ascent.Ceil()

	for y := -i.OutlineThickness; y <= i.OutlineThickness; y++ {
		for x := -i.OutlineThickness; x <= i.OutlineThickness; x++ {
			if x == 0 && y == 0 {
				continue
			}
			text.Draw(screen, label, face, textX+x, textY+y, i.OutlineColor)
		}
	}
	text.Draw(screen, label, face, textX, textY, textColor)

	if progress < 0 {
		return
	}
	if progress > 1 {
		progress = 1
	}
	barX := float32(i.X - i.BarWidth/2)
	barY := float32(textY + 4)
	vector.DrawFilledRect(screen, barX, barY, float32(i.BarWidth), 3, config.HealthBackColor, false)
	vector.DrawFilledRect(screen, barX, barY, float32(float64(i.BarWidth)*progress), 3, textColor, false)
}

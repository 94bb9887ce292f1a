// internal/ui/speed_button.go
package ui

import (
	"carrier-defense/internal/config"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// fillImg — белая текстура для заливки треугольников, создаётся при первой отрисовке.
var fillImg *ebiten.Image

// SpeedButton переключает скорость игры: x1 → x2 → x4 → x1.
type SpeedButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	StateColors    []color.RGBA
	Multipliers    []float64
	CurrentState   int
}

func NewSpeedButton(x, y, size float32) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: config.SpeedButtonColor,
		Multipliers: config.SpeedMultipliers,
	}
}

// Multiplier — текущий множитель скорости.
func (b *SpeedButton) Multiplier() float64 {
	if len(b.Multipliers) == 0 {
		return 1
	}
	return b.Multipliers[b.CurrentState%len(b.Multipliers)]
}

// Contains — попал ли клик в кнопку. Форма сложная, поэтому проверяем круг.
func (b *SpeedButton) Contains(x, y int) bool {
	dx := float32(x) - b.X
	dy := float32(y) - b.Y
	r := b.Size * 1.5
	return dx*dx+dy*dy <= r*r
}

// ToggleState переходит к следующей скорости. Повторный клик быстрее
// ClickDebounceMillis игнорируется.
func (b *SpeedButton) ToggleState() bool {
	if time.Since(b.LastToggleTime) < config.ClickDebounceMillis*time.Millisecond {
		return false
	}
	if len(b.Multipliers) > 0 {
		b.CurrentState = (b.CurrentState + 1) % len(b.Multipliers)
	}
	b.LastClickTime = time.Now()
	b.LastToggleTime = b.LastClickTime
	return true
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	triangleSize := b.Size * float32(scale)

	c := color.RGBA{255, 255, 255, 255}
	if len(b.StateColors) > 0 {
		c = b.StateColors[b.CurrentState%len(b.StateColors)]
	}

	// Параметры треугольников
	height := triangleSize * 1.2
	width := triangleSize
	offset := width * 0.8

	drawTriangle(screen, b.X-width, b.Y-height/2, b.X, b.Y, b.X-width, b.Y+height/2, c)
	drawTriangle(screen, b.X-width+offset, b.Y-height/2, b.X+offset, b.Y, b.X-width+offset, b.Y+height/2, c)
}

func drawTriangle(screen *ebiten.Image, x1, y1, x2, y2, x3, y3 float32, c color.RGBA) {
	var path vector.Path
	path.MoveTo(x1, y1)
	path.LineTo(x2, y2)
	path.LineTo(x3, y3)
	path.Close()

	if fillImg == nil {
		fillImg = ebiten.NewImage(3, 3)
		fillImg.Fill(color.White)
	}
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
	screen.DrawTriangles(vs, is, fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})

	vector.StrokeLine(screen, x1, y1, x2, y2, 1, color.White, true)
	vector.StrokeLine(screen, x2, y2, x3, y3, 1, color.White, true)
	vector.StrokeLine(screen, x3, y3, x1, y1, 1, color.White, true)
}

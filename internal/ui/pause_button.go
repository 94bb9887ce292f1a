// internal/ui/pause_button.go
package ui

import (
	"carrier-defense/internal/config"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton — кнопка паузы: две полосы, на паузе — треугольник.
type PauseButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	IsPaused       bool
	PauseColor     color.RGBA
	PlayColor      color.RGBA
}

func NewPauseButton(x, y, size float32) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: config.WaveTextColor,
		PlayColor:  config.HealthBarColor,
	}
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	rectSize := b.Size * float32(scale)

	if b.IsPaused {
		drawTriangle(screen, b.X-rectSize, b.Y-rectSize*1.2, b.X+rectSize, b.Y, b.X-rectSize, b.Y+rectSize*1.2, b.PlayColor)
		return
	}
	width := rectSize * 0.6
	height := rectSize * 2.0
	spacing := rectSize * 0.4
	for _, left := range []float32{b.X - width - spacing/2, b.X + spacing/2} {
		vector.DrawFilledRect(screen, left, b.Y-height/2, width, height, b.PauseColor, true)
		vector.StrokeRect(screen, left, b.Y-height/2, width, height, 1, color.White, true)
	}
}

func (b *PauseButton) Contains(x, y int) bool {
	dx := float32(x) - b.X
	dy := float32(y) - b.Y
	return dx*dx+dy*dy <= b.Size*b.Size*2
}

// TogglePause переключает кнопку. Повторный клик быстрее ClickDebounceMillis игнорируется.
func (b *PauseButton) TogglePause() bool {
	if time.Since(b.LastToggleTime) < config.ClickDebounceMillis*time.Millisecond {
		return false
	}
	b.IsPaused = !b.IsPaused
	b.LastClickTime = time.Now()
	b.LastToggleTime = b.LastClickTime
	return true
}

func (b *PauseButton) SetPaused(paused bool) {
	b.IsPaused = paused
}

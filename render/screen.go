package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/fluxfield/engine"
)

// Renderer draws visual snapshots onto a tcell screen
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer wraps an initialized screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw renders one frame from the snapshot
// The engine never calls this; the host loop owns the screen lifecycle
func (r *Renderer) Draw(v engine.VisualSnapshot) {
	width, height := r.screen.Size()
	if width <= 0 || height <= 0 {
		return
	}

	for cy := 0; cy < height; cy++ {
		y := float64(cy) / float64(height)
		for cx := 0; cx < width; cx++ {
			x := float64(cx) / float64(width)

			s := Sample(x, y, v)
			fg := CellColor(s, v)
			style := tcell.StyleDefault.Foreground(fg)
			r.screen.SetContent(cx, cy, ShadeRune(s.Value), nil, style)
		}
	}
	r.screen.Show()
}

// CellColor converts a field sample to a terminal color
// Saturation and brightness come from the snapshot; value shades the cell
func CellColor(s CellSample, v engine.VisualSnapshot) tcell.Color {
	val := 0.25 + s.Value*0.75*(0.5+v.Brightness*0.5)
	if val > 1 {
		val = 1
	}
	c := colorful.Hsv(s.Hue*360, 0.3+v.Saturation*0.7, val)
	ri, gi, bi := c.RGB255()
	return tcell.NewRGBColor(int32(ri), int32(gi), int32(bi))
}

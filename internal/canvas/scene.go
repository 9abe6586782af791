package canvas

import (
	"image/color"

	"github.com/verte-zerg/tapquiz/internal/layout"
)

// ShapeKind selects how a Shape is drawn.
type ShapeKind int

const (
	ShapeFill ShapeKind = iota
	ShapeStroke
	ShapeText
)

// Shape is one draw instruction. Text shapes are centered on (Rect.X, Rect.Y)
// and Size is the text height in pixels.
type Shape struct {
	Kind  ShapeKind
	Rect  layout.Rect
	Color color.RGBA
	Text  string
	Size  float64
}

// Palette.
var (
	Background  = color.RGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff}
	Foreground  = color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
	Muted       = color.RGBA{R: 0x8c, G: 0x8c, B: 0x8c, A: 0xff}
	PanelFill   = color.RGBA{R: 0x2d, G: 0x2d, B: 0x2d, A: 0xff}
	PanelBorder = color.RGBA{R: 0x4a, G: 0x4a, B: 0x4a, A: 0xff}
	Accent      = color.RGBA{R: 0x3a, G: 0x7b, B: 0xc8, A: 0xff}
	Danger      = color.RGBA{R: 0xc8, G: 0x3a, B: 0x3a, A: 0xff}
	DebugOn     = color.RGBA{R: 0x00, G: 0xa0, B: 0x6e, A: 0xff}
	Overlay     = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xa0}
)

func fill(r layout.Rect, c color.RGBA) Shape {
	return Shape{Kind: ShapeFill, Rect: r, Color: c}
}

func stroke(r layout.Rect, c color.RGBA) Shape {
	return Shape{Kind: ShapeStroke, Rect: r, Color: c}
}

func label(x, y, size float64, c color.RGBA, s string) Shape {
	return Shape{Kind: ShapeText, Rect: layout.Rect{X: x, Y: y}, Color: c, Text: s, Size: size}
}

func button(r layout.Rect, bg color.RGBA, size float64, s string) []Shape {
	cx, cy := r.Center()
	return []Shape{fill(r, bg), stroke(r, PanelBorder), label(cx, cy, size, Foreground, s)}
}

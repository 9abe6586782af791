// Package render runs a canvas.Controller in an Ebiten window.
package render

import (
	"errors"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/verte-zerg/tapquiz/internal/canvas"
)

// basicfont glyphs are 13px tall; text is scaled from there.
const glyphHeight = 13

// basicfont covers printable ASCII only.
var asciiOperators = strings.NewReplacer("−", "-", "×", "x", "÷", "/")

// Game adapts a controller to ebiten.Game.
type Game struct {
	ctrl    *canvas.Controller
	face    *text.GoXFace
	touches []ebiten.TouchID
}

// NewGame wraps ctrl.
func NewGame(ctrl *canvas.Controller) *Game {
	return &Game{
		ctrl: ctrl,
		face: text.NewGoXFace(basicfont.Face7x13),
	}
}

// Run opens a resizable window and blocks until it is closed or Escape is pressed.
func Run(ctrl *canvas.Controller, title string) error {
	ebiten.SetWindowSize(900, 700)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	err := ebiten.RunGame(NewGame(ctrl))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	now := time.Now()
	g.ctrl.Tick(now)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.ctrl.Click(float64(x), float64(y), now)
	}
	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		x, y := ebiten.TouchPosition(id)
		g.ctrl.Click(float64(x), float64(y), now)
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(canvas.Background)
	for _, s := range g.ctrl.Scene(time.Now()) {
		r := s.Rect
		switch s.Kind {
		case canvas.ShapeFill:
			vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), s.Color, true)
		case canvas.ShapeStroke:
			vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, s.Color, true)
		case canvas.ShapeText:
			g.drawText(screen, s)
		}
	}
}

func (g *Game) drawText(screen *ebiten.Image, s canvas.Shape) {
	scale := s.Size / glyphHeight
	if scale <= 0 {
		scale = 1
	}
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(s.Rect.X, s.Rect.Y)
	op.ColorScale.ScaleWithColor(s.Color)
	text.Draw(screen, asciiOperators.Replace(s.Text), g.face, op)
}

// Layout implements ebiten.Game. The canvas matches the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.ctrl.Resize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

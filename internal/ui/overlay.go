//go:build ebiten

package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	overlayPadding = 6
	promptPadding  = 10
)

// Overlay draws the length readout and the game-over prompt on top of the board.
type Overlay struct {
	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	o := &Overlay{}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Draw renders the overlay onto the provided screen. An empty prompt draws
// only the length readout.
func (o *Overlay) Draw(screen *ebiten.Image, length int, prompt string) {
	face := basicfont.Face7x13

	label := "length " + strconv.Itoa(length)
	bounds := text.BoundString(face, label)
	text.Draw(screen, label, face, overlayPadding, overlayPadding-bounds.Min.Y, color.RGBA{R: 90, G: 90, B: 100, A: 255})

	if prompt == "" {
		return
	}
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	pb := text.BoundString(face, prompt)
	w, h := pb.Dx()+2*promptPadding, pb.Dy()+2*promptPadding
	x, y := (sw-w)/2, (sh-h)/2
	o.drawRect(screen, float64(x), float64(y), float64(w), float64(h), color.RGBA{R: 20, G: 20, B: 24, A: 220})
	text.Draw(screen, prompt, face, x+promptPadding-pb.Min.X, y+promptPadding-pb.Min.Y, color.RGBA{R: 240, G: 240, B: 245, A: 255})
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	if o.pixel == nil || w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}

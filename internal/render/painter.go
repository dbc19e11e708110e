//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// FramePainter uploads packed pixel frames into a single ebiten image.
type FramePainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewFramePainter allocates a painter for frames of size w*h.
func NewFramePainter(w, h int) *FramePainter {
	fp := &FramePainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	fp.img = ebiten.NewImage(w, h)
	return fp
}

// Blit uploads the provided frame into the painter image and draws it.
func (fp *FramePainter) Blit(dst *ebiten.Image, frame []uint32) {
	if len(frame) != fp.w*fp.h {
		return
	}
	ToRGBA(fp.buf, frame)
	fp.img.WritePixels(fp.buf)
	dst.DrawImage(fp.img, nil)
}

// Size returns the dimensions of the underlying image.
func (fp *FramePainter) Size() (int, int) { return fp.w, fp.h }

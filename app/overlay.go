package app

import (
	"fmt"
	"image/color"

	"plotter/glyph"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
)

var colorText = color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}

const (
	readoutAnchor = 50
	readoutPitch  = 15
)

// readout shows the current scale in the top-left corner, from the glyph
// atlas when one is loaded and as plain text otherwise.
type readout struct {
	atlas  *glyph.Atlas
	digits int
	font   tinyfont.Fonter
}

func newReadout(atlas *glyph.Atlas, digits int) *readout {
	return &readout{atlas: atlas, digits: digits, font: &freemono.Bold9pt7b}
}

func (r *readout) draw(d *fbDisplay, scale float64) {
	if r.atlas == nil {
		tinyfont.WriteLine(d, r.font, 10, 30, fmt.Sprintf("scale %.2f", scale), colorText)
		return
	}
	for slot, idx := range glyph.Digits(scale, r.digits) {
		g := r.atlas.Glyph(idx)
		if g == nil {
			continue
		}
		b := g.Bounds()
		x0 := readoutAnchor - b.Dx() + readoutPitch*slot
		y0 := readoutAnchor - b.Dy()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := g.NRGBAAt(x, y)
				if c.A < 0x80 {
					continue
				}
				d.SetPixel(int16(x0+x-b.Min.X), int16(y0+y-b.Min.Y), color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF})
			}
		}
	}
}

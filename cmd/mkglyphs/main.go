// Command mkglyphs writes the digit images the plotter's scale readout loads
// (0.png..9.png and d.png), rendered from a bitmap font.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"plotter/glyph"

	xdraw "golang.org/x/image/draw"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
)

const (
	cellW    = 12
	cellH    = 16
	baseline = 13
)

func main() {
	var (
		outDir = flag.String("out", "images", "Output directory.")
		zoom   = flag.Int("zoom", glyph.Shrink, "Upscale factor applied to each cell.")
	)
	flag.Parse()

	if *zoom <= 0 {
		fatalf("zoom must be positive: %d", *zoom)
	}
	if err := writeGlyphs(*outDir, *zoom); err != nil {
		fatalf("mkglyphs: %v", err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func writeGlyphs(dir string, zoom int) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for i := 0; i < glyph.Count; i++ {
		r := rune('0' + i)
		if i == glyph.Point {
			r = '.'
		}
		img := renderCell(r, zoom)
		path := filepath.Join(dir, glyph.FileName(i))
		if err := writePNG(path, img); err != nil {
			return err
		}
	}
	return nil
}

func renderCell(r rune, zoom int) *image.NRGBA {
	cell := &imageDisplay{img: image.NewNRGBA(image.Rect(0, 0, cellW, cellH))}
	tinyfont.DrawChar(cell, &freemono.Bold9pt7b, 0, baseline, r, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})

	out := image.NewNRGBA(image.Rect(0, 0, cellW*zoom, cellH*zoom))
	xdraw.NearestNeighbor.Scale(out, out.Bounds(), cell.img, cell.img.Bounds(), draw.Src, nil)
	return out
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// imageDisplay lets tinyfont draw into an in-memory image.
type imageDisplay struct {
	img *image.NRGBA
}

func (d *imageDisplay) Size() (x, y int16) {
	b := d.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (d *imageDisplay) SetPixel(x, y int16, c color.RGBA) {
	if !(image.Point{X: int(x), Y: int(y)}.In(d.img.Bounds())) {
		return
	}
	d.img.SetNRGBA(int(x), int(y), color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A})
}

func (d *imageDisplay) Display() error { return nil }

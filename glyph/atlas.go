// Package glyph loads the digit images used by the scale readout and splits a
// scale value into the digits to show.
package glyph

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/png"
	"io/fs"
	"os"

	xdraw "golang.org/x/image/draw"
)

// Point is the glyph index of the decimal point image.
const Point = 10

// Count is the number of glyphs in an atlas: ten digits and the point.
const Count = 11

// Shrink is the factor source images are reduced by when loaded.
const Shrink = 6

// ErrBadGlyph is returned for an image that is empty after decoding or shrinking.
var ErrBadGlyph = errors.New("glyph: bad glyph image")

// FileName returns the file name glyph i is loaded from.
func FileName(i int) string {
	if i == Point {
		return "d.png"
	}
	return fmt.Sprintf("%d.png", i)
}

// Atlas holds every glyph, decoded and shrunk once. It is read-only after Load.
type Atlas struct {
	glyphs [Count]*image.NRGBA
}

// Load reads all glyph files from dir.
func Load(dir string) (*Atlas, error) {
	a, err := LoadFS(os.DirFS(dir))
	if err != nil {
		return nil, fmt.Errorf("%w (glyph directory %q)", err, dir)
	}
	return a, nil
}

// LoadFS reads all glyph files from the root of fsys. The first missing or
// undecodable file aborts the load.
func LoadFS(fsys fs.FS) (*Atlas, error) {
	a := &Atlas{}
	for i := 0; i < Count; i++ {
		name := FileName(i)
		img, err := decode(fsys, name)
		if err != nil {
			return nil, err
		}
		g, err := shrink(img)
		if err != nil {
			return nil, fmt.Errorf("glyph: %s: %w", name, err)
		}
		a.glyphs[i] = g
	}
	return a, nil
}

func decode(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("glyph: open %s: %w", name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("glyph: decode %s: %w", name, err)
	}
	return img, nil
}

func shrink(src image.Image) (*image.NRGBA, error) {
	b := src.Bounds()
	w, h := b.Dx()/Shrink, b.Dy()/Shrink
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, ErrBadGlyph
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst, nil
}

// Glyph returns glyph i, or nil for an index outside the atlas.
func (a *Atlas) Glyph(i int) *image.NRGBA {
	if a == nil || i < 0 || i >= Count {
		return nil
	}
	return a.glyphs[i]
}

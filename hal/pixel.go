//go:build !tinygo

package hal

import (
	"errors"
	"image"
)

func rgb565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

func rgb888From565(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

// RGB565 packs an 8-bit-per-channel color into a framebuffer pixel.
func RGB565(r, g, b uint8) uint16 { return rgb565(r, g, b) }

// PixelAt returns the 8-bit color of the framebuffer pixel at (x, y).
func PixelAt(fb Framebuffer, x, y int) (r, g, b uint8, ok bool) {
	if fb == nil || fb.Format() != PixelFormatRGB565 {
		return 0, 0, 0, false
	}
	if x < 0 || x >= fb.Width() || y < 0 || y >= fb.Height() {
		return 0, 0, 0, false
	}
	buf := fb.Buffer()
	off := y*fb.StrideBytes() + x*2
	if off < 0 || off+1 >= len(buf) {
		return 0, 0, 0, false
	}
	r, g, b = rgb888From565(uint16(buf[off]) | uint16(buf[off+1])<<8)
	return r, g, b, true
}

// expandRGB565 converts packed RGB565 bytes into opaque RGBA bytes.
func expandRGB565(dst, src []byte) {
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		r, gg, b := rgb888From565(uint16(src[i]) | uint16(src[i+1])<<8)
		j := (i / 2) * 4
		dst[j+0] = r
		dst[j+1] = gg
		dst[j+2] = b
		dst[j+3] = 0xFF
	}
}

// Snapshot converts the framebuffer contents into an RGBA image. For host
// framebuffers this is the last presented frame.
func Snapshot(fb Framebuffer) (*image.RGBA, error) {
	if fb == nil {
		return nil, errors.New("hal: snapshot of nil framebuffer")
	}
	if fb.Format() != PixelFormatRGB565 {
		return nil, errors.New("hal: snapshot: unsupported framebuffer format")
	}
	img := image.NewRGBA(image.Rect(0, 0, fb.Width(), fb.Height()))
	if hf, ok := fb.(*hostFramebuffer); ok {
		scratch := make([]byte, len(hf.front))
		hf.snapshotRGB565(scratch)
		expandRGB565(img.Pix, scratch)
		return img, nil
	}
	expandRGB565(img.Pix, fb.Buffer())
	return img, nil
}

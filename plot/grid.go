package plot

import "image/color"

// DrawGrid draws the crosshair axes through the surface center, ten tick bars
// along each axis and arrowheads at the positive ends. Tick spacing is fixed
// in pixels and does not follow the view.
func DrawGrid(c Canvas, w, h int, col color.RGBA) {
	midX, midY := w/2, h/2
	bar := w / 100

	DrawLine(c, midX, 0, midX, h, col)
	DrawLine(c, 0, midY, w, midY, col)

	if step := h / 10; step > 0 {
		for y := 0; y < h; y += step {
			DrawLine(c, midX-bar, y, midX+bar, y, col)
		}
	}
	if step := w / 10; step > 0 {
		for x := 0; x < w; x += step {
			DrawLine(c, x, midY-bar, x, midY+bar, col)
		}
	}

	DrawLine(c, w-3*bar, midY-bar, w, midY, col)
	DrawLine(c, w-3*bar, midY+bar, w, midY, col)
	DrawLine(c, midX-bar, 3*bar, midX, 0, col)
	DrawLine(c, midX+bar, 3*bar, midX, 0, col)
}

// DrawLine plots a Bresenham line including both end points.
func DrawLine(c Canvas, x0, y0, x1, y1 int, col color.RGBA) {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy > 0 {
		dy = -dy
	}
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.SetPixel(int16(x0), int16(y0), col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

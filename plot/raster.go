package plot

import "image/color"

// Canvas is the pixel sink traces and the grid draw into. Pixels outside the
// surface are dropped by the implementation.
type Canvas interface {
	SetPixel(x, y int16, c color.RGBA)
}

// Trace walks every pixel column left to right, samples f and plots one
// pixel per column whose value lies inside the view. Consecutive samples are
// not joined. It returns the number of pixels plotted.
func Trace(c Canvas, m Mapper, v ViewRect, f Function) int {
	if f.Eval == nil {
		return 0
	}
	n := 0
	for i := 0; i < m.Width; i++ {
		y := f.Eval(m.ColumnX(v, i))
		row, ok := m.Row(v, y)
		if !ok {
			continue
		}
		c.SetPixel(int16(i), int16(row), f.Color)
		n++
	}
	return n
}

// TraceAll draws fns in order; later traces overwrite earlier ones.
func TraceAll(c Canvas, m Mapper, v ViewRect, fns []Function) int {
	n := 0
	for _, f := range fns {
		n += Trace(c, m, v, f)
	}
	return n
}

package plot

import (
	"fmt"
	"math"
)

// Mapper converts between world coordinates and pixels of a Width x Height
// surface.
type Mapper struct {
	Width  int
	Height int
}

// ColumnX returns the world x sampled by pixel column i.
func (m Mapper) ColumnX(v ViewRect, i int) float64 {
	return v.MinX + float64(i)*(v.MaxX-v.MinX)/float64(m.Width)
}

// Row maps world y to a pixel row. Positive values scale against MaxY and the
// rest against MinY, so y == 0 always lands on Height/2. Values outside
// [MinY, MaxY] report ok == false and must be skipped, not clamped.
//
// A row outside [0, Height] means the view is broken and panics.
func (m Mapper) Row(v ViewRect, y float64) (row int, ok bool) {
	if math.IsNaN(y) || y > v.MaxY || y < v.MinY {
		return 0, false
	}

	half := float64(m.Height) / 2
	var r float64
	if y > 0 {
		r = half * (1 - y/v.MaxY)
	} else {
		r = half + half*(y/v.MinY)
	}
	if math.IsNaN(r) || r < 0 || r > float64(m.Height) {
		panic(fmt.Sprintf("plot: y=%v in view %v maps to row %v outside [0,%d]", y, v, r, m.Height))
	}
	return int(r), true
}

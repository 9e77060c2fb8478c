package plot

import (
	"errors"
	"fmt"
	"math"
)

// DefaultScale is the half-width of the view the plotter starts with.
const DefaultScale = 10

// MaxScale is the largest half-width whose span still fits in a float64.
const MaxScale = math.MaxFloat64 / 2

// ErrInvalidScale is returned for scales that cannot form a view.
var ErrInvalidScale = errors.New("plot: invalid scale")

// ViewRect is the world-coordinate rectangle mapped onto the window.
type ViewRect struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// DefaultView returns [-10,10]x[-10,10].
func DefaultView() ViewRect {
	v, _ := SetScale(DefaultScale)
	return v
}

// SetScale returns the symmetric view [-s,s]x[-s,s]. s must be in (0, MaxScale].
func SetScale(s float64) (ViewRect, error) {
	if !(s > 0) || s > MaxScale {
		return ViewRect{}, fmt.Errorf("%w: %v", ErrInvalidScale, s)
	}
	return ViewRect{MinX: -s, MaxX: s, MinY: -s, MaxY: s}, nil
}

// IncrementScale grows every bound by dir tenths of itself. A negative dir
// narrows the view. Stepping +1 then -1 does not return the original view.
func (v ViewRect) IncrementScale(dir int) ViewRect {
	d := float64(dir)
	return ViewRect{
		MinX: v.MinX + d*v.MinX/10,
		MaxX: v.MaxX + d*v.MaxX/10,
		MinY: v.MinY + d*v.MinY/10,
		MaxY: v.MaxY + d*v.MaxY/10,
	}
}

// Scale is the half-width of the view along x, the value shown in the readout.
func (v ViewRect) Scale() float64 {
	return (v.MaxX - v.MinX) / 2
}

// Validate reports whether the bounds and both spans are finite and the
// bounds are ordered.
func (v ViewRect) Validate() error {
	for _, b := range [...]float64{v.MinX, v.MaxX, v.MinY, v.MaxY} {
		if math.IsNaN(b) || math.IsInf(b, 0) {
			return fmt.Errorf("plot: view %v has a non-finite bound", v)
		}
	}
	if !(v.MinX < v.MaxX) || !(v.MinY < v.MaxY) {
		return fmt.Errorf("plot: view %v is empty", v)
	}
	if math.IsInf(v.MaxX-v.MinX, 0) || math.IsInf(v.MaxY-v.MinY, 0) {
		return fmt.Errorf("plot: view %v is too wide", v)
	}
	return nil
}

func (v ViewRect) String() string {
	return fmt.Sprintf("[%g,%g]x[%g,%g]", v.MinX, v.MaxX, v.MinY, v.MaxY)
}

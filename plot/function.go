package plot

import (
	"image/color"
	"math"
)

// Function is a plottable mapping from world x to world y with the color its
// trace is drawn in.
type Function struct {
	Name  string
	Eval  func(x float64) float64
	Color color.RGBA
}

var (
	ColorRed     = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	ColorMagenta = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	ColorGreen   = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	ColorYellow  = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	ColorAxis    = color.RGBA{R: 0, G: 255, B: 255, A: 255}
)

// Functions returns the plotted functions in draw order.
func Functions() []Function {
	return []Function{
		{Name: "x^2", Eval: square, Color: ColorRed},
		{Name: "1.1x+2", Eval: line, Color: ColorMagenta},
		{Name: "1000sin(x/500)", Eval: wave, Color: ColorGreen},
		{Name: "1/x", Eval: reciprocal, Color: ColorYellow},
	}
}

func square(x float64) float64 { return x * x }

func line(x float64) float64 { return 1.1*x + 2 }

func wave(x float64) float64 { return 1000 * math.Sin(x/500) }

func reciprocal(x float64) float64 {
	if x == 0 {
		return 0
	}
	return 1 / x
}

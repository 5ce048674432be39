package badge

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	// ClassName is the class marker identifying badge elements.
	ClassName = "scope-badge"

	// LuminanceThreshold is the cutoff above which badges get black text.
	LuminanceThreshold = 186.0

	// Black and White are the only foreground colours ever applied.
	Black = "#000000"
	White = "#ffffff"
)

// Source supplies uniform random numbers in [0, 1).
// A *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
}

// NewSource returns a PCG-backed Source. A zero seed seeds from the clock,
// any other value gives a reproducible sequence.
func NewSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// Color is an RGB triple with channels in [0, 255].
type Color struct {
	R, G, B uint8
}

// RandomColor draws each channel independently as floor(u*256).
func RandomColor(src Source) Color {
	return Color{
		R: channel(src),
		G: channel(src),
		B: channel(src),
	}
}

func channel(src Source) uint8 {
	v := math.Floor(src.Float64() * 256)
	return uint8(max(0, min(v, 255)))
}

// Luminance returns the weighted channel sum used for the contrast decision.
// The explicit conversions keep the compiler from fusing into FMA, which
// would move values sitting exactly on the threshold.
func (c Color) Luminance() float64 {
	r := float64(0.299 * float64(c.R))
	g := float64(0.587 * float64(c.G))
	b := float64(0.114 * float64(c.B))
	return r + g + b
}

// CSS formats the colour as "rgb(r, g, b)".
func (c Color) CSS() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex formats the colour as "#rrggbb".
func (c Color) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// ContrastColor returns Black when c is brighter than LuminanceThreshold
// and White otherwise.
func ContrastColor(c Color) string {
	if c.Luminance() > LuminanceThreshold {
		return Black
	}
	return White
}

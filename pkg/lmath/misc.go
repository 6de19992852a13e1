package lmath

import "math"

// Some functions that only operate on basic types, that are useful

func Clamp01(f float64) float64 {
	if math.IsNaN(f) || f < 0.0 {
		return 0.0
	} else if f > 1.0 {
		return 1.0
	}
	return f
}

// UnitToByte maps [0.0, 1.0] onto [0, 255], rounding to nearest.
func UnitToByte(f float64) uint8 {
	return uint8(math.Round(Clamp01(f) * 255.0))
}

// Div255 computes round(x/255) exactly for x in [0, 255*255].
func Div255(x uint32) uint32 {
	t := x + 128
	return (t + (t >> 8)) >> 8
}

func MulDiv255(a, b uint32) uint32 { return Div255(a * b) }

// https://www.sjbrown.co.uk/posts/gamma-correct-rendering/ - "linear RGB to sRGB"
func GammaExpand_F64(f float64) float64 {
	if f <= 0.0031308 {
		return 12.92 * f
	}
	return 1.055 * math.Pow(f, 1.0/2.4) - 0.055
}

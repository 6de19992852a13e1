package lmath

// Affine transforms, used to work out where a resized image lands.

import(
	"fmt"
	"image"
	"math"

	"golang.org/x/image/math/f64"
)

// Use a local type so we can hang methods off it
type Aff3 f64.Aff3

// Cut-n-pasted from image@0.7.0/draw/scale:matMul
func (p Aff3)Mult(q Aff3) Aff3 {
	return Aff3{
		p[3*0+0]*q[3*0+0] + p[3*0+1]*q[3*1+0],
		p[3*0+0]*q[3*0+1] + p[3*0+1]*q[3*1+1],
		p[3*0+0]*q[3*0+2] + p[3*0+1]*q[3*1+2] + p[3*0+2],
		p[3*1+0]*q[3*0+0] + p[3*1+1]*q[3*1+0],
		p[3*1+0]*q[3*0+1] + p[3*1+1]*q[3*1+1],
		p[3*1+0]*q[3*0+2] + p[3*1+1]*q[3*1+2] + p[3*1+2],
	}
}

func Identity() Aff3 {
	return Aff3{1, 0, 0,   0, 1, 0}
}

func (m1 Aff3)Translate(tx, ty float64) Aff3 {
	return m1.Mult(Aff3{1, 0, tx,   0, 1, ty})
}

func (m1 Aff3)Scale(sx, sy float64) Aff3 {
	return m1.Mult(Aff3{sx, 0, 0,   0, sy, 0})
}

// Apply maps the point (x,y).
func (m Aff3)Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[1]*y + m[2], m[3]*x + m[4]*y + m[5]
}

func (m Aff3)String() string {
	return fmt.Sprintf("[%8.4f %8.4f %8.4f | %8.4f %8.4f %8.4f]", m[0], m[1], m[2], m[3], m[4], m[5])
}

// TransformRect maps the corners of r through m and returns the smallest
// integer rectangle holding them. Values within 1e-9 of an integer are
// snapped first, so exact scale factors don't grow the rect by a pixel.
func (m Aff3)TransformRect(r image.Rectangle) image.Rectangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)

	for _, p := range []image.Point{r.Min, {r.Max.X, r.Min.Y}, {r.Min.X, r.Max.Y}, r.Max} {
		x, y := m.Apply(float64(p.X), float64(p.Y))
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}

	return image.Rect(
		int(math.Floor(snap(minX))), int(math.Floor(snap(minY))),
		int(math.Ceil(snap(maxX))), int(math.Ceil(snap(maxY))),
	)
}

func snap(f float64) float64 {
	if r := math.Round(f); math.Abs(f-r) < 1e-9 {
		return r
	}
	return f
}

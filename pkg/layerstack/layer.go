package layerstack

import(
	"fmt"
	"image"
	"path/filepath"

	"github.com/abworrall/layerstack/pkg/lmath"
)

// Opacity is the uniform transparency given to every pixel of an input
// image, in [0.0, 1.0]. Out of range values are clamped when used.
type Opacity float64

// Byte is round(clamp(a, 0, 1) * 255).
func (a Opacity)Byte() uint8 { return lmath.UnitToByte(float64(a)) }

// Geometry is the fixed size every image is resampled to.
type Geometry struct {
	Width  int
	Height int
}

func (g Geometry)String() string    { return fmt.Sprintf("%dx%d", g.Width, g.Height) }
func (g Geometry)Size() image.Point { return image.Point{g.Width, g.Height} }

func (g Geometry)Validate() error {
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("target geometry %s must be positive", g)
	}
	return nil
}

// A Layer is one input file, at its position in the blend order.
type Layer struct {
	Index        int
	LoadFilename string
}

func (l Layer)String() string {
	return fmt.Sprintf("[%3d] %s", l.Index, l.Filename())
}

func (l Layer)Filename() string {
	return filepath.Base(l.LoadFilename)
}

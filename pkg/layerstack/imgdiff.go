package layerstack

import(
	"math"

	"github.com/abworrall/layerstack/pkg/lmath"
	"github.com/abworrall/layerstack/pkg/raster"
)

// ImgDiff compares two same-sized rasters, and returns the mean absolute
// channel difference in [0.0, 1.0] (0 means identical), along with a
// grid of the per-pixel differences. Used to see how much each blend
// step moved the composite.
func ImgDiff(r1, r2 *raster.Raster) (float64, lmath.FloatGrid) {
	diff := lmath.NewFloatGrid(r1.Width, r1.Height)
	if r1.Size() != r2.Size() {
		return 1.0, diff
	}

	for y:=0; y<r1.Height; y++ {
		row1, row2 := r1.Row(y), r2.Row(y)
		for x:=0; x<r1.Width; x++ {
			pixErr := 0.0
			for c:=0; c<raster.RGBAChannels; c++ {
				i := x*raster.RGBAChannels + c
				pixErr += math.Abs(float64(row1[i]) - float64(row2[i]))
			}
			diff.Set(x, y, pixErr / (255.0 * raster.RGBAChannels))
		}
	}

	return diff.Mean(), diff
}

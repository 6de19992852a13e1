package lcolor

import(
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/stat"

	"github.com/abworrall/layerstack/pkg/raster"
)

// A Summary describes the overall colour of a raster: the mean colour
// (straight, ignoring alpha), the per-channel spread, and the alpha range.
type Summary struct {
	Width, Height int

	Mean          colorful.Color
	StdDev        [3]float64   // per channel, in [0.0, 1.0] units
	MeanAlpha     float64      // [0.0, 1.0]
	MinAlpha      uint8
	MaxAlpha      uint8
}

func (s Summary)String() string {
	return fmt.Sprintf("%dx%d mean %s (σ %.3f,%.3f,%.3f), alpha %.3f [%d..%d]",
		s.Width, s.Height, s.Mean.Hex(), s.StdDev[0], s.StdDev[1], s.StdDev[2],
		s.MeanAlpha, s.MinAlpha, s.MaxAlpha)
}

// Summarize walks every pixel once.
func Summarize(r *raster.Raster) Summary {
	n := r.Width * r.Height
	chans := [4][]float64{}
	for i := range chans {
		chans[i] = make([]float64, 0, n)
	}

	s := Summary{Width: r.Width, Height: r.Height, MinAlpha: 0xFF}

	for y:=0; y<r.Height; y++ {
		row := r.Row(y)
		for x:=0; x<r.Width; x++ {
			p := row[x*raster.RGBAChannels:]
			for c:=0; c<4; c++ {
				chans[c] = append(chans[c], float64(p[c]) / 255.0)
			}
			if p[3] < s.MinAlpha { s.MinAlpha = p[3] }
			if p[3] > s.MaxAlpha { s.MaxAlpha = p[3] }
		}
	}

	var mean [3]float64
	for c:=0; c<3; c++ {
		mean[c], s.StdDev[c] = stat.MeanStdDev(chans[c], nil)
	}
	s.Mean = colorful.Color{R: mean[0], G: mean[1], B: mean[2]}.Clamped()
	s.MeanAlpha = stat.Mean(chans[3], nil)

	return s
}

// Distance is the perceptual (CIE76 Lab) distance between two summaries' mean colours.
func (s Summary)Distance(s2 Summary) float64 {
	return s.Mean.DistanceLab(s2.Mean)
}

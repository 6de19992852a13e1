package codec

import(
	"image"
	"image/color"
	"io"

	"github.com/mdouchement/hdr/codec/rgbe"
	"github.com/mdouchement/hdr/hdrcolor"
)

// hdrImage presents an 8-bit image as a Radiance HDR image, with each
// channel mapped onto [0.0, 1.0]. RGBE has no alpha channel, so colours
// are premultiplied, i.e. composited over black.
type hdrImage struct {
	image.Image
}

// Implement hdr.Image
func (hi hdrImage)ColorModel() color.Model       { return hdrcolor.RGBModel }
func (hi hdrImage)At(x, y int) color.Color       { return hi.HDRAt(x, y) }
func (hi hdrImage)Size() int                     { return hi.Bounds().Dx() * hi.Bounds().Dy() }

func (hi hdrImage)HDRAt(x, y int) hdrcolor.Color {
	r, g, b, _ := hi.Image.At(x, y).RGBA() // premultiplied, [0, 0xFFFF]
	return hdrcolor.RGB{
		R: float64(r) / float64(0xFFFF),
		G: float64(g) / float64(0xFFFF),
		B: float64(b) / float64(0xFFFF),
	}
}

func encodeHDR(w io.Writer, img image.Image) error {
	return rgbe.Encode(w, hdrImage{img})
}

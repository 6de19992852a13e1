package layerstack

import(
	"github.com/abworrall/layerstack/pkg/lmath"
	"github.com/abworrall/layerstack/pkg/raster"
)

// A BlendFunc combines one foreground pixel over one background pixel.
// Channel slices are [R, G, B, A], straight alpha.
type BlendFunc func(fg, bg, out []byte)

// BlendOver is alpha-over with straight alpha: each colour channel is
// fg*a + bg*(1-a) where a is the foreground alpha, and the alpha is
// fa + ba*(1-a). Rounds to nearest, so fa=255 gives fg and fa=0 gives bg,
// bit for bit.
func BlendOver(fg, bg, out []byte) {
	fa := uint32(fg[3])
	ia := 255 - fa
	out[0] = uint8(lmath.Div255(uint32(fg[0])*fa + uint32(bg[0])*ia))
	out[1] = uint8(lmath.Div255(uint32(fg[1])*fa + uint32(bg[1])*ia))
	out[2] = uint8(lmath.Div255(uint32(fg[2])*fa + uint32(bg[2])*ia))
	out[3] = uint8(fa + lmath.MulDiv255(uint32(bg[3]), ia))
}

// AlphaOver composites fg over bg into a new raster; neither input is
// touched. The two must be the same size.
func AlphaOver(fg, bg *raster.Raster) (*raster.Raster, error) {
	return Blend(fg, bg, BlendOver)
}

func Blend(fg, bg *raster.Raster, blend BlendFunc) (*raster.Raster, error) {
	if fg.Size() != bg.Size() {
		return nil, &GeometryMismatchError{Want: bg.Size(), Got: fg.Size()}
	}
	if err := fg.CheckRGBA8(); err != nil {
		return nil, err
	}
	if err := bg.CheckRGBA8(); err != nil {
		return nil, err
	}

	out, err := raster.New(bg.Width, bg.Height)
	if err != nil {
		return nil, err
	}

	for y:=0; y<out.Height; y++ {
		fgRow, bgRow, outRow := fg.Row(y), bg.Row(y), out.Row(y)
		for i:=0; i<len(outRow); i += raster.RGBAChannels {
			blend(fgRow[i:i+4], bgRow[i:i+4], outRow[i:i+4])
		}
	}

	return out, nil
}

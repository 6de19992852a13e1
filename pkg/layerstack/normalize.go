package layerstack

import(
	"github.com/abworrall/layerstack/pkg/codec"
	"github.com/abworrall/layerstack/pkg/raster"
)

// Normalize decodes one encoded image, converts it to straight RGBA 8-bit,
// and overwrites every pixel's alpha with the opacity. The name is only
// used in errors.
func Normalize(src []byte, name string, opacity Opacity) (*raster.Raster, error) {
	img, _, err := codec.DecodeBytes(src)
	if err != nil {
		return nil, &DecodeError{Filename: name, Err: err}
	}

	r, err := raster.FromImage(img)
	if err != nil {
		return nil, &DecodeError{Filename: name, Err: err}
	}

	SetAlpha(r, opacity)
	return r, nil
}

// SetAlpha sets the alpha channel of every pixel to the opacity.
func SetAlpha(r *raster.Raster, opacity Opacity) {
	a := opacity.Byte()
	for y:=0; y<r.Height; y++ {
		row := r.Row(y)
		for i:=3; i<len(row); i += raster.RGBAChannels {
			row[i] = a
		}
	}
}

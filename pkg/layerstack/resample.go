package layerstack

import(
	"fmt"
	"image"
	"image/color"
	"sort"

	"github.com/nfnt/resize"
	"golang.org/x/image/draw"

	"github.com/abworrall/layerstack/pkg/lmath"
	"github.com/abworrall/layerstack/pkg/raster"
)

// A Resampler rescales an RGBA raster to exactly w x h. It must not
// modify its input.
type Resampler interface {
	Resample(img *raster.Raster, w, h int) (*raster.Raster, error)
}

var resamplers = map[string]Resampler{
	"catmullrom": KernelResampler{Kernel: draw.CatmullRom},
	"bicubic":    NfntResampler{Interp: resize.Bicubic},
	"nearest":    NearestResampler{},
}

func ListKernels() []string {
	names := []string{}
	for name := range resamplers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func GetResampler(name string) (Resampler, error) {
	if rs, exists := resamplers[name]; exists {
		return rs, nil
	}
	return nil, fmt.Errorf("no resampling kernel named '%s', wanted one of %v", name, ListKernels())
}

// ResizeRect works out the destination rectangle of src, scaled by
// (fx,fy) and then shifted.
func ResizeRect(src image.Rectangle, fx, fy, shiftX, shiftY float64) image.Rectangle {
	m := lmath.Identity().Translate(shiftX, shiftY).Scale(fx, fy)
	return m.TransformRect(src)
}

// checkResample validates the sizes, and returns the rectangle the
// resampled image will fill. Failures are *ResampleError, with no filename.
func checkResample(img *raster.Raster, w, h int) (image.Rectangle, error) {
	if err := img.CheckRGBA8(); err != nil {
		return image.Rectangle{}, &ResampleError{Err: err}
	}
	if w <= 0 || h <= 0 {
		return image.Rectangle{}, &ResampleError{Err: fmt.Errorf("bad target size %dx%d", w, h)}
	}

	fx := float64(w) / float64(img.Width)
	fy := float64(h) / float64(img.Height)
	dr := ResizeRect(img.Bounds(), fx, fy, 0.0, 0.0)
	if dr != image.Rect(0, 0, w, h) {
		return dr, &ResampleError{Err: fmt.Errorf("resize rect %v for %s x(%.4f,%.4f) is not %dx%d", dr, img, fx, fy, w, h)}
	}
	return dr, nil
}

// KernelResampler uses one of the x/image/draw interpolation kernels.
// The kernels clamp to the source edges.
type KernelResampler struct {
	Kernel *draw.Kernel
}

func (kr KernelResampler)Resample(img *raster.Raster, w, h int) (*raster.Raster, error) {
	if _, err := checkResample(img, w, h); err != nil {
		return nil, err
	}
	return resampleStraight(img, w, h, kr.scale)
}

func (kr KernelResampler)scale(src image.Image, w, h int) image.Image {
	dst := image.NewRGBA64(image.Rect(0, 0, w, h))
	kr.Kernel.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// NfntResampler uses github.com/nfnt/resize.
type NfntResampler struct {
	Interp resize.InterpolationFunction
}

func (nr NfntResampler)Resample(img *raster.Raster, w, h int) (*raster.Raster, error) {
	if _, err := checkResample(img, w, h); err != nil {
		return nil, err
	}
	return resampleStraight(img, w, h, nr.scale)
}

func (nr NfntResampler)scale(src image.Image, w, h int) image.Image {
	return resize.Resize(uint(w), uint(h), src, nr.Interp)
}

type scaleFunc func(src image.Image, w, h int) image.Image

// resampleStraight scales the colour of img as an opaque 16-bit image, so
// it never goes through premultiplication: a pixel keeps its colour at
// any alpha, including zero, and kernel overshoot is clamped per channel.
// A uniform alpha is copied across exactly; otherwise the alpha plane is
// scaled on its own.
func resampleStraight(img *raster.Raster, w, h int, scale scaleFunc) (*raster.Raster, error) {
	colour, alphaPlane, alpha := splitAlpha(img)

	c := scale(colour, w, h)
	if b := c.Bounds(); b.Dx() != w || b.Dy() != h {
		return nil, &ResampleError{Err: fmt.Errorf("scaling gave %v, wanted %dx%d", b, w, h)}
	}

	var a image.Image
	if alphaPlane != nil {
		a = scale(alphaPlane, w, h)
		if b := a.Bounds(); b.Dx() != w || b.Dy() != h {
			return nil, &ResampleError{Err: fmt.Errorf("alpha scaling gave %v, wanted %dx%d", b, w, h)}
		}
	}

	out, err := raster.New(w, h)
	if err != nil {
		return nil, &ResampleError{Err: err}
	}

	cb := c.Bounds()
	for y:=0; y<h; y++ {
		for x:=0; x<w; x++ {
			r, g, b, _ := c.At(cb.Min.X+x, cb.Min.Y+y).RGBA()
			px := color.NRGBA{to8(r), to8(g), to8(b), alpha}
			if a != nil {
				ab := a.Bounds()
				ya, _, _, _ := a.At(ab.Min.X+x, ab.Min.Y+y).RGBA()
				px.A = to8(ya)
			}
			out.SetPixel(x, y, px)
		}
	}
	return out, nil
}

// splitAlpha returns an opaque 16-bit copy of the colour, and either the
// single alpha value every pixel shares or (if they differ) the alpha
// plane as a gray image.
func splitAlpha(img *raster.Raster) (*image.RGBA64, *image.Gray16, uint8) {
	colour := image.NewRGBA64(img.Bounds())
	alpha := img.PixelAt(0, 0).A
	uniform := true

	for y:=0; y<img.Height; y++ {
		for x:=0; x<img.Width; x++ {
			p := img.PixelAt(x, y)
			colour.SetRGBA64(x, y, color.RGBA64{uint16(p.R)*0x101, uint16(p.G)*0x101, uint16(p.B)*0x101, 0xffff})
			if p.A != alpha {
				uniform = false
			}
		}
	}
	if uniform {
		return colour, nil, alpha
	}

	plane := image.NewGray16(img.Bounds())
	for y:=0; y<img.Height; y++ {
		for x:=0; x<img.Width; x++ {
			plane.SetGray16(x, y, color.Gray16{uint16(img.PixelAt(x, y).A)*0x101})
		}
	}
	return colour, plane, alpha
}

// to8 maps [0, 0xffff] onto [0, 255], rounding to nearest.
func to8(v uint32) uint8 {
	if v > 0xffff {
		v = 0xffff
	}
	return uint8((v*255 + 0x7fff) / 0xffff)
}

// NearestResampler copies the nearest source pixel; no interpolation, so
// the output is exact and cheap to compute. Good for tests.
type NearestResampler struct{}

func (NearestResampler)Resample(img *raster.Raster, w, h int) (*raster.Raster, error) {
	if _, err := checkResample(img, w, h); err != nil {
		return nil, err
	}

	dst, err := raster.New(w, h)
	if err != nil {
		return nil, err
	}

	for y:=0; y<h; y++ {
		sy := (2*y + 1) * img.Height / (2 * h)
		for x:=0; x<w; x++ {
			sx := (2*x + 1) * img.Width / (2 * w)
			dst.SetPixel(x, y, img.PixelAt(sx, sy))
		}
	}
	return dst, nil
}

package raster

// A Raster is a row-major grid of 8-bit pixels. It is the one buffer
// type that moves between the pipeline stages.

import(
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

const(
	RGBAChannels = 4
	Depth8       = 8
)

// Raster holds straight (non-premultiplied) pixel data. Rows start every
// Pitch bytes, and Pitch may be larger than Width*Channels when rows are
// padded for alignment.
type Raster struct {
	Width    int
	Height   int
	Pitch    int
	Channels int
	Depth    int
	Pix    []byte
}

// New allocates a tightly packed RGBA 8-bit raster.
func New(w, h int) (*Raster, error) {
	return NewWithPitch(w, h, w*RGBAChannels)
}

// NewWithPitch allocates an RGBA 8-bit raster whose rows are pitch bytes apart.
func NewWithPitch(w, h, pitch int) (*Raster, error) {
	r := &Raster{Width: w, Height: h, Pitch: pitch, Channels: RGBAChannels, Depth: Depth8}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	r.Pix = make([]byte, pitch*h)
	return r, nil
}

func (r *Raster)String() string {
	return fmt.Sprintf("Raster[%dx%d, %dch/%dbit, pitch %d]", r.Width, r.Height, r.Channels, r.Depth, r.Pitch)
}

// Validate checks the shape invariants; it does not look at Pix unless
// it has been allocated.
func (r *Raster)Validate() error {
	switch {
	case r.Width <= 0 || r.Height <= 0:
		return fmt.Errorf("raster: bad dimensions %dx%d", r.Width, r.Height)
	case r.Channels <= 0:
		return fmt.Errorf("raster: bad channel count %d", r.Channels)
	case r.Depth != Depth8:
		return fmt.Errorf("raster: unsupported depth %d", r.Depth)
	case r.Pitch < r.Width*r.Channels:
		return fmt.Errorf("raster: pitch %d < width %d * channels %d", r.Pitch, r.Width, r.Channels)
	case r.Pix != nil && len(r.Pix) < r.Pitch*(r.Height-1)+r.Width*r.Channels:
		return fmt.Errorf("raster: pix buffer too short (%d bytes)", len(r.Pix))
	}
	return nil
}

// CheckRGBA8 fails unless the raster is valid, 4-channel and 8 bits deep.
func (r *Raster)CheckRGBA8() error {
	if err := r.Validate(); err != nil {
		return err
	}
	if r.Channels != RGBAChannels || r.Depth != Depth8 {
		return fmt.Errorf("raster: want RGBA/8bit, have %dch/%dbit", r.Channels, r.Depth)
	}
	return nil
}

func (r *Raster)Bounds() image.Rectangle    { return image.Rect(0, 0, r.Width, r.Height) }
func (r *Raster)Size() image.Point          { return image.Point{r.Width, r.Height} }
func (r *Raster)Offset(x, y int) int        { return y*r.Pitch + x*r.Channels }
func (r *Raster)Row(y int) []byte           { return r.Pix[y*r.Pitch : y*r.Pitch+r.Width*r.Channels] }

func (r *Raster)PixelAt(x, y int) color.NRGBA {
	i := r.Offset(x, y)
	return color.NRGBA{r.Pix[i], r.Pix[i+1], r.Pix[i+2], r.Pix[i+3]}
}

func (r *Raster)SetPixel(x, y int, c color.NRGBA) {
	i := r.Offset(x, y)
	r.Pix[i], r.Pix[i+1], r.Pix[i+2], r.Pix[i+3] = c.R, c.G, c.B, c.A
}

// NRGBA returns an *image.NRGBA that shares Pix with the raster, so the
// standard image libraries can read and write it without a copy.
func (r *Raster)NRGBA() *image.NRGBA {
	return &image.NRGBA{Pix: r.Pix, Stride: r.Pitch, Rect: r.Bounds()}
}

// Clone returns a deep copy with the same pitch.
func (r *Raster)Clone() *Raster {
	r2 := *r
	r2.Pix = make([]byte, len(r.Pix))
	copy(r2.Pix, r.Pix)
	return &r2
}

// FromImage converts any image into a fresh, tightly packed raster. The
// colour model is converted to straight RGBA 8-bit; images without an
// alpha channel come out opaque.
func FromImage(src image.Image) (*Raster, error) {
	b := src.Bounds()
	r, err := New(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}

	if nrgba, ok := src.(*image.NRGBA); ok {
		for y:=0; y<r.Height; y++ {
			i := nrgba.PixOffset(b.Min.X, b.Min.Y+y)
			copy(r.Row(y), nrgba.Pix[i:i+r.Width*RGBAChannels])
		}
		return r, nil
	}

	draw.Draw(r.NRGBA(), r.Bounds(), src, b.Min, draw.Src)
	return r, nil
}

// Equal reports whether two rasters have the same size and identical
// pixel bytes; row padding is ignored.
func Equal(a, b *Raster) bool {
	if a.Width != b.Width || a.Height != b.Height || a.Channels != b.Channels {
		return false
	}
	for y:=0; y<a.Height; y++ {
		ra, rb := a.Row(y), b.Row(y)
		for i := range ra {
			if ra[i] != rb[i] {
				return false
			}
		}
	}
	return true
}

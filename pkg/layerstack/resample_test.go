package layerstack

import(
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/abworrall/layerstack/pkg/raster"
)

func TestGetResampler(t *testing.T) {
	for _, name := range ListKernels() {
		if _, err := GetResampler(name); err != nil {
			t.Errorf("GetResampler(%q): %v", name, err)
		}
	}
	if _, err := GetResampler("lanczos7"); err == nil {
		t.Error("GetResampler(lanczos7) did not fail")
	}
}

func TestResampleDimensions(t *testing.T) {
	sizes := []struct {
		name       string
		srcW, srcH int
		w, h       int
	}{
		{"upscale", 3, 2, 100, 67},
		{"downscale", 120, 90, 10, 10},
		{"aspect change", 40, 10, 10, 40},
		{"one pixel", 1, 1, 7, 5},
		{"same size", 16, 16, 16, 16},
	}

	for _, kernel := range ListKernels() {
		rs, _ := GetResampler(kernel)
		for _, sz := range sizes {
			t.Run(kernel+"/"+sz.name, func(t *testing.T) {
				src := solidRaster(t, sz.srcW, sz.srcH, color.NRGBA{200, 100, 50, 128})
				before := src.Clone()

				out, err := rs.Resample(src, sz.w, sz.h)
				if err != nil {
					t.Fatalf("Resample: %v", err)
				}
				if out.Width != sz.w || out.Height != sz.h {
					t.Fatalf("got %dx%d, want %dx%d", out.Width, out.Height, sz.w, sz.h)
				}
				if err := out.CheckRGBA8(); err != nil {
					t.Fatal(err)
				}
				if !raster.Equal(src, before) {
					t.Error("Resample modified its input")
				}

				// A uniform image stays uniform, give or take rounding.
				for _, p := range []image.Point{{0, 0}, {sz.w - 1, sz.h - 1}, {sz.w / 2, sz.h / 2}} {
					c := out.PixelAt(p.X, p.Y)
					if !nearBy(c.R, 200, 2) || !nearBy(c.G, 100, 2) || !nearBy(c.B, 50, 2) || !nearBy(c.A, 128, 1) {
						t.Errorf("pixel %v = %v, want about {200 100 50 128}", p, c)
					}
				}
			})
		}
	}
}

func TestResampleLowOpacityKeepsColour(t *testing.T) {
	for _, alpha := range []uint8{0, 1, 26, 128} {
		for _, kernel := range ListKernels() {
			rs, _ := GetResampler(kernel)
			src := solidRaster(t, 30, 20, color.NRGBA{250, 5, 120, alpha})

			out, err := rs.Resample(src, 100, 67)
			if err != nil {
				t.Fatalf("%s: %v", kernel, err)
			}
			for _, p := range []image.Point{{0, 0}, {50, 33}, {99, 66}} {
				c := out.PixelAt(p.X, p.Y)
				if !nearBy(c.R, 250, 1) || !nearBy(c.G, 5, 1) || !nearBy(c.B, 120, 1) || c.A != alpha {
					t.Errorf("%s, alpha %d: pixel %v = %v, want {250 5 120 %d}", kernel, alpha, p, c, alpha)
				}
			}
		}
	}
}

// Sharp translucent edges make the bicubic kernels overshoot; the
// overshoot must clamp, never wrap.
func TestResampleStripes(t *testing.T) {
	white := color.NRGBA{255, 255, 255, 255}
	blue := color.NRGBA{0, 0, 255, 255}

	src, _ := raster.New(7, 5)
	for y:=0; y<5; y++ {
		for x:=0; x<7; x++ {
			if x%2 == 0 {
				src.SetPixel(x, y, white)
			} else {
				src.SetPixel(x, y, blue)
			}
		}
	}
	SetAlpha(src, 0.5)

	for _, kernel := range ListKernels() {
		t.Run(kernel, func(t *testing.T) {
			rs, _ := GetResampler(kernel)
			out, err := rs.Resample(src, 50, 33)
			if err != nil {
				t.Fatal(err)
			}

			for y:=0; y<out.Height; y++ {
				for x:=0; x<out.Width; x++ {
					c := out.PixelAt(x, y)
					if c.A != 128 || c.B < 253 || c.R != c.G {
						t.Fatalf("pixel (%d,%d) = %v; both stripes have blue 255 and alpha 128", x, y, c)
					}
				}
			}

			// x=3 samples source column 0 (white), x=10 samples column 1 (blue)
			if c := out.PixelAt(3, 16); c.R < 200 {
				t.Errorf("pixel (3,16) = %v, want near white", c)
			}
			if c := out.PixelAt(10, 16); c.R > 55 {
				t.Errorf("pixel (10,16) = %v, want near blue", c)
			}
		})
	}
}

func TestResampleMixedAlpha(t *testing.T) {
	src := solidRaster(t, 10, 4, color.NRGBA{200, 100, 50, 255})
	for y:=0; y<4; y++ {
		for x:=0; x<5; x++ {
			src.SetPixel(x, y, color.NRGBA{200, 100, 50, 0})
		}
	}

	for _, kernel := range ListKernels() {
		rs, _ := GetResampler(kernel)
		out, err := rs.Resample(src, 40, 8)
		if err != nil {
			t.Fatalf("%s: %v", kernel, err)
		}
		for y:=0; y<out.Height; y++ {
			for x:=0; x<out.Width; x++ {
				c := out.PixelAt(x, y)
				if !nearBy(c.R, 200, 1) || !nearBy(c.G, 100, 1) || !nearBy(c.B, 50, 1) {
					t.Fatalf("%s: pixel (%d,%d) = %v, want colour {200 100 50}", kernel, x, y, c)
				}
			}
		}
		if a := out.PixelAt(0, 4).A; a > 2 {
			t.Errorf("%s: left edge alpha = %d, want 0", kernel, a)
		}
		if a := out.PixelAt(39, 4).A; a < 253 {
			t.Errorf("%s: right edge alpha = %d, want 255", kernel, a)
		}
	}
}

func TestResampleBadTarget(t *testing.T) {
	src := solidRaster(t, 4, 4, color.NRGBA{1, 2, 3, 4})
	for _, kernel := range ListKernels() {
		rs, _ := GetResampler(kernel)
		for _, sz := range []image.Point{{0, 10}, {10, 0}, {-3, 4}} {
			_, err := rs.Resample(src, sz.X, sz.Y)
			var rsErr *ResampleError
			if !errors.As(err, &rsErr) {
				t.Errorf("%s: Resample to %v err = %v, want a ResampleError", kernel, sz, err)
			}
		}
	}
}

func TestNearestResamplerExact(t *testing.T) {
	src, _ := raster.New(2, 1)
	src.SetPixel(0, 0, color.NRGBA{255, 0, 0, 255})
	src.SetPixel(1, 0, color.NRGBA{0, 0, 255, 255})

	out, err := NearestResampler{}.Resample(src, 4, 2)
	if err != nil {
		t.Fatal(err)
	}
	for y:=0; y<2; y++ {
		for x:=0; x<4; x++ {
			want := src.PixelAt(x/2, 0)
			if got := out.PixelAt(x, y); got != want {
				t.Errorf("PixelAt(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestResizeRect(t *testing.T) {
	tests := []struct {
		src    image.Rectangle
		fx, fy float64
		want   image.Rectangle
	}{
		{image.Rect(0, 0, 3, 2), 100.0 / 3.0, 33.5, image.Rect(0, 0, 100, 67)},
		{image.Rect(0, 0, 1000, 600), 0.1, 0.1, image.Rect(0, 0, 100, 60)},
		{image.Rect(0, 0, 7, 9), 1, 1, image.Rect(0, 0, 7, 9)},
	}

	for _, tt := range tests {
		if got := ResizeRect(tt.src, tt.fx, tt.fy, 0, 0); got != tt.want {
			t.Errorf("ResizeRect(%v, %v, %v) = %v, want %v", tt.src, tt.fx, tt.fy, got, tt.want)
		}
	}
}

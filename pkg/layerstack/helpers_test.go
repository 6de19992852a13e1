package layerstack

import(
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"testing"

	"github.com/abworrall/layerstack/pkg/raster"
)

func solidRaster(t *testing.T, w, h int, c color.NRGBA) *raster.Raster {
	t.Helper()
	r, err := raster.New(w, h)
	if err != nil {
		t.Fatal(err)
	}
	for y:=0; y<h; y++ {
		for x:=0; x<w; x++ {
			r.SetPixel(x, y, c)
		}
	}
	return r
}

func solidImage(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y:=0; y<h; y++ {
		for x:=0; x<w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func writePNG(t *testing.T, filename string, img image.Image) {
	t.Helper()
	if err := os.WriteFile(filename, encodePNG(t, img), 0644); err != nil {
		t.Fatal(err)
	}
}

func nearBy(a, b uint8, tol int) bool {
	d := int(a) - int(b)
	return d >= -tol && d <= tol
}

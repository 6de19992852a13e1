package lcolor

import(
	"fmt"
	"sort"
	"strings"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/abworrall/layerstack/pkg/raster"
)

// A Swatch is one of the dominant colours of an image, with its weight.
type Swatch struct {
	Color  colorful.Color
	Weight float64
}

func (s Swatch)String() string { return fmt.Sprintf("%s (%.2f)", s.Color.Hex(), s.Weight) }

// Palette returns up to k dominant colours of r, heaviest first.
func Palette(r *raster.Raster, k int) []Swatch {
	if k <= 0 {
		return nil
	}

	swatches := []Swatch{}
	for _, c := range dominantcolor.FindWeight(r.NRGBA(), k) {
		col, _ := colorful.MakeColor(c.RGBA)
		swatches = append(swatches, Swatch{Color: col.Clamped(), Weight: c.Weight})
	}

	sort.SliceStable(swatches, func(i, j int) bool { return swatches[i].Weight > swatches[j].Weight })
	return swatches
}

func PaletteString(swatches []Swatch) string {
	if len(swatches) == 0 {
		return "none"
	}
	strs := []string{}
	for _, s := range swatches {
		strs = append(strs, s.String())
	}
	return strings.Join(strs, ", ")
}

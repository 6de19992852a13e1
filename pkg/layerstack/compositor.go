package layerstack

import(
	"fmt"

	"github.com/abworrall/layerstack/pkg/raster"
)

// A Compositor holds the running composite. It is a value: Feed returns
// the next Compositor and leaves the receiver alone, and the accumulator
// is always replaced by a freshly built raster rather than written to.
// So a raster returned by Composite() never changes afterwards.
type Compositor struct {
	geom   Geometry
	blend  BlendFunc
	acc   *raster.Raster
	blends int
}

// NewCompositor returns an Empty compositor for the geometry.
func NewCompositor(g Geometry) Compositor {
	return Compositor{geom: g, blend: BlendOver}
}

func (c Compositor)String() string {
	if !c.Seeded() {
		return fmt.Sprintf("Compositor[%s, empty]", c.geom)
	}
	return fmt.Sprintf("Compositor[%s, %d blends]", c.geom, c.blends)
}

func (c Compositor)Geometry() Geometry      { return c.geom }
func (c Compositor)Seeded() bool            { return c.acc != nil }
func (c Compositor)Blends() int             { return c.blends }

// Composite is the current accumulator, or nil if Empty. Don't modify it.
func (c Compositor)Composite() *raster.Raster { return c.acc }

// Feed adds img to the composite. The first image is stored as-is; every
// later one is blended over the accumulator (img is the foreground).
// img must already be at the compositor's geometry, and the compositor
// takes ownership of it.
func (c Compositor)Feed(img *raster.Raster) (Compositor, error) {
	if img == nil {
		return c, fmt.Errorf("compositor: nil image")
	}
	if img.Size() != c.geom.Size() {
		return c, &GeometryMismatchError{Want: c.geom.Size(), Got: img.Size()}
	}
	if err := img.CheckRGBA8(); err != nil {
		return c, err
	}

	if !c.Seeded() {
		c.acc = img
		return c, nil
	}

	blended, err := Blend(img, c.acc, c.blend)
	if err != nil {
		return c, err
	}

	c.acc = blended
	c.blends++
	return c, nil
}

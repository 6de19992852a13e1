package layerstack

import(
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/fogleman/gg"
	log "github.com/sirupsen/logrus"

	"github.com/abworrall/layerstack/pkg/codec"
	"github.com/abworrall/layerstack/pkg/raster"
)

// Artifact names; the format's extension is added when written.
func StepResizeName(i int) string   { return fmt.Sprintf("step1_resize_%d", i) }
func StepCombinedName(i int) string { return fmt.Sprintf("step2_combined_%d", i) }
func DebugDeltaName(i int) string   { return fmt.Sprintf("debug_delta_%d", i) }
const FinalName = "step3_final"

// An ArtifactWriter persists images into the output folder.
type ArtifactWriter struct {
	Dir      string
	Format   codec.Format
	Annotate bool   // draw the caption onto rasters, if one is given
}

func (aw ArtifactWriter)Path(name string) string {
	return filepath.Join(aw.Dir, name + aw.Format.Ext())
}

// Prepare creates the output folder if needed. WriteImage calls it, so
// the folder only appears once there is something to put in it.
func (aw ArtifactWriter)Prepare() error {
	if err := os.MkdirAll(aw.Dir, 0755); err != nil {
		return &ConfigError{What: "output folder", Err: err}
	}
	return nil
}

// WriteRaster writes r; when annotating, the caption is drawn onto a
// copy, never onto r.
func (aw ArtifactWriter)WriteRaster(name string, r *raster.Raster, caption string) (string, error) {
	var img image.Image = r.NRGBA()
	if aw.Annotate && caption != "" {
		dc := gg.NewContextForImage(img)
		dc.SetRGB(0, 0, 0)
		dc.DrawString(caption, 11, 21)
		dc.SetRGB(1, 1, 1)
		dc.DrawString(caption, 10, 20)
		img = dc.Image()
	}
	return aw.WriteImage(name, img)
}

func (aw ArtifactWriter)WriteImage(name string, img image.Image) (string, error) {
	filename := aw.Path(name)
	if err := aw.Prepare(); err != nil {
		return filename, err
	}
	n, err := codec.WriteFile(filename, img, aw.Format)
	if err != nil {
		return filename, &EncodeError{Filename: filename, Err: err}
	}
	log.Printf("  exporting: %s (%s)", filename, humanize.Bytes(uint64(n)))
	return filename, nil
}

package layerstack

import(
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/abworrall/layerstack/pkg/lcolor"
	"github.com/abworrall/layerstack/pkg/raster"
)

// A Pipeline runs each input file through Normalize, Resample and the
// Compositor, in order, and writes out the artifacts.
type Pipeline struct {
	Config
	Writer ArtifactWriter
}

// Result describes a finished run.
type Result struct {
	Final       *raster.Raster  // nil if nothing was composited
	FinalPath    string
	Processed    int
	Skipped      int
	Artifacts  []string         // every file written, in order
	Summary      lcolor.Summary
}

func (r Result)String() string {
	if r.Final == nil {
		return fmt.Sprintf("Result[%d processed, %d skipped, no output]", r.Processed, r.Skipped)
	}
	return fmt.Sprintf("Result[%d processed, %d skipped, %d artifacts, final %s: %s]",
		r.Processed, r.Skipped, len(r.Artifacts), r.FinalPath, r.Summary)
}

// NewPipeline finalizes the config and sets up the artifact writer.
func NewPipeline(cfg Config) (*Pipeline, error) {
	if err := cfg.Finalize(); err != nil {
		return nil, err
	}

	return &Pipeline{
		Config: cfg,
		Writer: ArtifactWriter{Dir: cfg.Output, Format: cfg.OutputFormat, Annotate: cfg.Annotate},
	}, nil
}

// RunFolder lists the input folder, and runs over what it finds.
func (p *Pipeline)RunFolder() (*Result, error) {
	paths, err := ListImages(p.Config.Input, p.Config.Extensions)
	if err != nil {
		return nil, err
	}
	return p.Run(paths)
}

// Run combines the files in the order given; callers wanting the standard
// order should pass a sorted list (see ListImages). The first decode,
// resample or final-encode failure stops the run, unless SkipBadFiles is
// set, in which case undecodable files are logged and left out.
//
// An empty list is not an error; nothing gets written. The output folder
// is created by the first write, so a run that fails early leaves none.
func (p *Pipeline)Run(paths []string) (*Result, error) {
	res := &Result{}

	log.Printf("number of images: %d", len(paths))
	if len(paths) == 0 {
		log.Warnf("no images to combine, nothing written")
		return res, nil
	}

	comp := NewCompositor(p.Config.Geometry)

	for i, path := range paths {
		layer := Layer{Index: i, LoadFilename: path}
		log.Printf("%s", layer)

		next, err := p.step(comp, layer, res)

		var decodeErr *DecodeError
		if errors.As(err, &decodeErr) && p.Config.SkipBadFiles {
			log.Warnf("skipping %s: %v", layer.Filename(), err)
			res.Skipped++
			continue
		} else if err != nil {
			return res, err
		}

		comp = next
		res.Processed++
	}

	if !comp.Seeded() {
		log.Warnf("no image could be loaded, nothing written")
		return res, nil
	}

	res.Final = comp.Composite()
	res.Summary = lcolor.Summarize(res.Final)

	path, err := p.Writer.WriteRaster(FinalName, res.Final, "")
	if err != nil {
		return res, err
	}
	res.FinalPath = path
	res.Artifacts = append(res.Artifacts, path)

	log.Printf("final composite: %s", res.Summary)
	return res, nil
}

// step runs one file through the pipeline, and returns the next
// compositor. Everything allocated here apart from what Feed keeps is
// garbage once it returns.
func (p *Pipeline)step(comp Compositor, l Layer, res *Result) (Compositor, error) {
	img, err := loadLayer(l, Opacity(p.Config.Alpha))
	if err != nil {
		return comp, err
	}

	g := comp.Geometry()
	resized, err := p.Config.Resampler.Resample(img, g.Width, g.Height)
	if err != nil {
		var rsErr *ResampleError
		if errors.As(err, &rsErr) {
			err = rsErr.Err
		}
		return comp, &ResampleError{Filename: l.LoadFilename, Err: err}
	}

	if p.Config.Steps {
		p.writeIntermediate(StepResizeName(l.Index), resized, fmt.Sprintf("resize %d: %s", l.Index, l.Filename()), res)
	}

	next, err := comp.Feed(resized)
	if err != nil {
		return comp, err
	}

	if next.Blends() == comp.Blends() {
		return next, nil // this was the seed; nothing blended
	}

	if p.Config.Steps {
		p.writeIntermediate(StepCombinedName(l.Index), next.Composite(), fmt.Sprintf("combined %d: +%s", l.Index, l.Filename()), res)
	}

	if log.IsLevelEnabled(log.DebugLevel) {
		delta, grid := ImgDiff(next.Composite(), comp.Composite())
		dE := lcolor.Summarize(next.Composite()).Distance(lcolor.Summarize(comp.Composite()))
		log.Debugf("  blend %d moved the composite by %.5f, mean colour by ΔE %.3f (%s)", l.Index, delta, dE, grid.Stats())
		if p.Config.Steps {
			title := fmt.Sprintf("delta %d: %.5f", l.Index, delta)
			if path, err := p.Writer.WriteImage(DebugDeltaName(l.Index), grid.Image(title)); err != nil {
				log.Warnf("debug artifact: %v", err)
			} else {
				res.Artifacts = append(res.Artifacts, path)
			}
		}
	}

	return next, nil
}

// Intermediate artifacts are nice to have; failing to write one is
// logged, and the run carries on.
func (p *Pipeline)writeIntermediate(name string, r *raster.Raster, caption string, res *Result) {
	path, err := p.Writer.WriteRaster(name, r, caption)
	if err != nil {
		log.Warnf("intermediate artifact: %v", err)
		return
	}
	res.Artifacts = append(res.Artifacts, path)
}

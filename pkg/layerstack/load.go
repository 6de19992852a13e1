package layerstack

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/abworrall/layerstack/pkg/codec"
	"github.com/abworrall/layerstack/pkg/raster"
)

// ListImages returns the regular files in dir whose extension is one of
// exts (case-insensitive, with or without the dot), sorted by path. This
// order is the blend order. An unreadable dir is a ConfigError.
func ListImages(dir string, exts []string) ([]string, error) {
	item, err := os.Stat(dir)
	if err != nil {
		return nil, &ConfigError{What: "input folder", Err: err}
	} else if !item.IsDir() {
		return nil, &ConfigError{What: "input folder", Err: fmt.Errorf("%s is not a directory", dir)}
	}

	contents, err := os.ReadDir(dir)
	if err != nil {
		return nil, &ConfigError{What: "input folder", Err: fmt.Errorf("readdir %s: %w", dir, err)}
	}

	wanted := map[string]bool{}
	for _, ext := range exts {
		wanted[strings.ToLower(strings.TrimPrefix(ext, "."))] = true
	}

	files := []string{}
	for _, content := range contents {
		if !content.Type().IsRegular() {
			continue
		}
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(content.Name()), "."))
		if wanted[ext] {
			files = append(files, filepath.Join(dir, content.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}

// loadLayer reads one file and turns it into a normalized raster.
func loadLayer(l Layer, opacity Opacity) (*raster.Raster, error) {
	b, err := codec.ReadFile(l.LoadFilename)
	if err != nil {
		return nil, &DecodeError{Filename: l.LoadFilename, Err: err}
	}
	return Normalize(b, l.LoadFilename, opacity)
}

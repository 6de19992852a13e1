package layerstack

import(
	"fmt"
	"image"
)

// Failures are typed, so the driver (and callers of Run) can decide with
// errors.As which ones end the run. Nothing in this package exits.

// A ConfigError means the run can't start: bad input folder, unknown
// kernel or format, bad geometry.
type ConfigError struct {
	What string
	Err  error
}

func (e *ConfigError)Error() string { return fmt.Sprintf("config: %s: %v", e.What, e.Err) }
func (e *ConfigError)Unwrap() error { return e.Err }

// A DecodeError names a file that couldn't be read or decoded.
type DecodeError struct {
	Filename string
	Err      error
}

func (e *DecodeError)Error() string { return fmt.Sprintf("decode '%s': %v", e.Filename, e.Err) }
func (e *DecodeError)Unwrap() error { return e.Err }

// A ResampleError means an image could not be resized to the target
// geometry. Resamplers leave Filename empty; the pipeline fills it in.
type ResampleError struct {
	Filename string
	Err      error
}

func (e *ResampleError)Error() string {
	if e.Filename == "" {
		return fmt.Sprintf("resample: %v", e.Err)
	}
	return fmt.Sprintf("resample '%s': %v", e.Filename, e.Err)
}
func (e *ResampleError)Unwrap() error { return e.Err }

// A GeometryMismatchError is a programming fault: something reached the
// compositor at a size other than the target geometry.
type GeometryMismatchError struct {
	Want image.Point
	Got  image.Point
}

func (e *GeometryMismatchError)Error() string {
	return fmt.Sprintf("geometry mismatch: want %dx%d, got %dx%d", e.Want.X, e.Want.Y, e.Got.X, e.Got.Y)
}

// An EncodeError is a failure to write an artifact.
type EncodeError struct {
	Filename string
	Err      error
}

func (e *EncodeError)Error() string { return fmt.Sprintf("encode '%s': %v", e.Filename, e.Err) }
func (e *EncodeError)Unwrap() error { return e.Err }

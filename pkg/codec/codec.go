// Package codec reads and writes the image files the pipeline consumes
// and produces. Decoding goes through the image package registry, so any
// format registered here (PNG, TIFF, BMP) can be read.
package codec

import(
	"bufio"
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

type Format int

const(
	PNG Format = iota
	TIFF
	BMP
	HDR
)

var formatNames = map[Format]string{PNG: "png", TIFF: "tiff", BMP: "bmp", HDR: "hdr"}

func (f Format)String() string { return formatNames[f] }

// Ext is the filename extension for the format, with the dot.
func (f Format)Ext() string {
	switch f {
	case TIFF: return ".tif"
	default:   return "." + f.String()
	}
}

func ListFormats() string {
	return "png, tiff, bmp, hdr"
}

func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "", "png":     return PNG, nil
	case "tif", "tiff": return TIFF, nil
	case "bmp":         return BMP, nil
	case "hdr":         return HDR, nil
	}
	return PNG, fmt.Errorf("no output format named '%s', wanted one of %s", name, ListFormats())
}

func ReadFile(filename string) ([]byte, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read '%s': %w", filename, err)
	}
	return b, nil
}

// Decode returns the image and the name of the format that decoded it.
func Decode(r io.Reader) (image.Image, string, error) {
	return image.Decode(r)
}

func DecodeBytes(b []byte) (image.Image, string, error) {
	return Decode(bytes.NewReader(b))
}

func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PNG:
		enc := png.Encoder{CompressionLevel: png.DefaultCompression}
		return enc.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	case BMP:
		return bmp.Encode(w, img)
	case HDR:
		return encodeHDR(w, img)
	}
	return fmt.Errorf("encode: unknown format %d", f)
}

// WriteFile encodes img into filename, and returns the number of bytes written.
func WriteFile(filename string, img image.Image, f Format) (int64, error) {
	writer, err := os.Create(filename)
	if err != nil {
		return 0, fmt.Errorf("open+w '%s': %w", filename, err)
	}
	defer writer.Close()

	cw := &countingWriter{w: bufio.NewWriter(writer)}
	if err := Encode(cw, img, f); err != nil {
		return cw.n, fmt.Errorf("encode %s '%s': %w", f, filename, err)
	}
	if err := cw.w.Flush(); err != nil {
		return cw.n, fmt.Errorf("flush '%s': %w", filename, err)
	}
	return cw.n, writer.Close()
}

type countingWriter struct {
	w *bufio.Writer
	n  int64
}

func (cw *countingWriter)Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

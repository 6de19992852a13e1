package main

import(
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/abworrall/layerstack/pkg/codec"
	"github.com/abworrall/layerstack/pkg/lcolor"
	"github.com/abworrall/layerstack/pkg/raster"
)

const paletteSize = 4

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Print the size, format and colour summary of an image",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := codec.ReadFile(path)
	if err != nil {
		return err
	}

	img, format, err := codec.DecodeBytes(data)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}

	r, err := raster.FromImage(img)
	if err != nil {
		return fmt.Errorf("converting %s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File:       %s\n", path)
	fmt.Fprintf(out, "Format:     %s\n", format)
	fmt.Fprintf(out, "Dimensions: %d x %d\n", r.Width, r.Height)
	fmt.Fprintf(out, "File size:  %s\n", humanize.Bytes(uint64(len(data))))
	fmt.Fprintf(out, "Colour:     %s\n", lcolor.Summarize(r))
	fmt.Fprintf(out, "Palette:    %s\n", lcolor.PaletteString(lcolor.Palette(r, paletteSize)))

	return nil
}

package main

import(
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abworrall/layerstack/pkg/codec"
	"github.com/abworrall/layerstack/pkg/layerstack"
)

var rootCmd = &cobra.Command{
	Use:           "layerstack",
	Short:         "Resize every image in a folder and alpha-blend them, in filename order, into one composite",
	Args:          cobra.NoArgs,
	RunE:          runStack,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	addStackFlags(rootCmd)

	log.SetOutput(os.Stdout)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true, TimestampFormat: "2006/01/02 15:04:05"})
}

func addStackFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("input", "i", layerstack.DefaultInput, "folder of images to combine")
	f.StringP("output", "o", layerstack.DefaultOutput, "folder to write results into")
	f.Int("width", layerstack.DefaultWidth, "width of every resized image, and the result")
	f.Int("height", 0, "height of every resized image (default round(width * 2/3))")
	f.Float64("alpha", layerstack.DefaultAlpha, "opacity given to each image, 0.0 -> 1.0")
	f.Bool("steps", false, "also export each resized image and each partial composite")

	f.String("config", "", "YAML file with default settings")
	f.String("kernel", layerstack.DefaultKernel, "resampling kernel, one of: catmullrom, bicubic, nearest")
	f.String("format", "png", "output format, one of: "+codec.ListFormats())
	f.StringSlice("ext", []string{"png"}, "input file extensions to pick up")
	f.Bool("skip-bad", false, "skip files that fail to decode, instead of stopping (changes the blend count)")
	f.Bool("annotate", false, "caption the --steps images with the step and file name")
	f.CountP("verbose", "v", "how verbose to get")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func runStack(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if cfg.Verbosity > 0 {
		log.SetLevel(log.DebugLevel)
	}

	p, err := layerstack.NewPipeline(cfg)
	if err != nil {
		return err
	}

	log.Printf("%s", p.Config.Banner())
	log.Debugf("Final configuration:-\n\n%s\n", p.Config.AsYaml())

	log.Printf("Start...")
	res, err := p.RunFolder()
	if err != nil {
		return err
	}
	log.Printf("End. %s", res)

	return nil
}

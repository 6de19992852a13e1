package layerstack

import(
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/abworrall/layerstack/pkg/codec"
)

/* Example config file ...

input: ./data/flags
output: ./results/
width: 1200
height: 800
alpha: 0.15
steps: true
kernel: catmullrom
format: png
extensions: [png]

*/

const(
	DefaultInput  = "./data/flags"
	DefaultOutput = "./results/"
	DefaultWidth  = 1000
	DefaultAlpha  = 0.1
	DefaultKernel = "catmullrom"

	// Most flags are 3:2; used when no height is given
	DefaultAspect = 2.0 / 3.0
)

type Config struct {
	Verbosity    int

	Input        string
	Output       string
	Width        int
	Height       int      // 0 means round(Width * DefaultAspect)
	Alpha        float64  // opacity given to every image; clamped to [0,1]
	Steps        bool     // export the intermediate artifacts
	SkipBadFiles bool     // log and skip files that fail to decode, rather than abort
	Annotate     bool     // caption the intermediate artifacts
	Kernel       string
	Format       string
	Extensions   []string

	// Values we figure out in Finalize, and put here for access by rest of app
	Geometry     Geometry     `yaml:"-"`
	Resampler    Resampler    `yaml:"-"`
	OutputFormat codec.Format `yaml:"-"`
}

func NewConfig() Config {
	return Config{
		Input:      DefaultInput,
		Output:     DefaultOutput,
		Width:      DefaultWidth,
		Alpha:      DefaultAlpha,
		Kernel:     DefaultKernel,
		Format:     codec.PNG.String(),
		Extensions: []string{"png"},
	}
}

func newConfigFromYaml(b []byte) (Config, error) {
	c := NewConfig()
	err := yaml.Unmarshal(b, &c)
	return c, err
}

// LoadConfig reads a YAML config file; anything it doesn't mention keeps
// its default value.
func LoadConfig(filename string) (Config, error) {
	contents, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, &ConfigError{What: "read " + filename, Err: err}
	}

	c, err := newConfigFromYaml(contents)
	if err != nil {
		return Config{}, &ConfigError{What: "parse " + filename, Err: err}
	}
	return c, nil
}

func (c Config)AsYaml() string {
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Sprintf("# can't marshal config yaml: %v\n", err)
	}
	return string(b)
}

// DefaultHeight is round(width * 2/3).
func DefaultHeight(width int) int {
	return int(math.Round(float64(width) * DefaultAspect))
}

// Finalize fills in derived values, and checks the names of things.
func (c *Config)Finalize() error {
	if c.Height == 0 {
		c.Height = DefaultHeight(c.Width)
	}
	c.Geometry = Geometry{Width: c.Width, Height: c.Height}
	if err := c.Geometry.Validate(); err != nil {
		return &ConfigError{What: "geometry", Err: err}
	}

	if len(c.Extensions) == 0 {
		c.Extensions = []string{"png"}
	}

	rs, err := GetResampler(c.Kernel)
	if err != nil {
		return &ConfigError{What: "kernel", Err: err}
	}
	c.Resampler = rs

	f, err := codec.ParseFormat(c.Format)
	if err != nil {
		return &ConfigError{What: "format", Err: err}
	}
	c.OutputFormat = f

	return nil
}

// Banner is the summary of the run logged at startup.
func (c Config)Banner() string {
	return fmt.Sprintf("input folder: %s, output folder: %s, size: %s, alpha: %.3f, kernel: %s, format: %s, steps: %v",
		c.Input, c.Output, c.Geometry, c.Alpha, c.Kernel, c.OutputFormat, c.Steps)
}

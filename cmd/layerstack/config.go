package main

import(
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abworrall/layerstack/pkg/layerstack"
)

const envPrefix = "LAYERSTACK_"

// buildConfig layers the settings: defaults, then the --config file, then
// LAYERSTACK_* environment variables (a .env file is loaded if present),
// then any flags given explicitly on the command line.
func buildConfig(cmd *cobra.Command) (layerstack.Config, error) {
	cfg := layerstack.NewConfig()

	if filename, _ := cmd.Flags().GetString("config"); filename != "" {
		c, err := layerstack.LoadConfig(filename)
		if err != nil {
			return cfg, err
		}
		cfg = c
		log.Printf("Loaded base configuration from %s", filename)
	}

	if err := godotenv.Load(); err == nil {
		log.Debugf(".env file loaded")
	}
	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}

	applyFlags(cmd, &cfg)
	return cfg, nil
}

type lookupFunc func(string) (string, bool)

func applyEnv(cfg *layerstack.Config, lookup lookupFunc) error {
	get := func(name string) (string, bool) {
		v, ok := lookup(envPrefix + name)
		return v, ok && v != ""
	}
	bad := func(name, v string, err error) error {
		return &layerstack.ConfigError{What: envPrefix + name, Err: fmt.Errorf("'%s': %v", v, err)}
	}

	if v, ok := get("INPUT"); ok  { cfg.Input = v }
	if v, ok := get("OUTPUT"); ok { cfg.Output = v }
	if v, ok := get("KERNEL"); ok { cfg.Kernel = v }
	if v, ok := get("FORMAT"); ok { cfg.Format = v }
	if v, ok := get("EXT"); ok    { cfg.Extensions = strings.Split(v, ",") }

	if v, ok := get("WIDTH"); ok {
		n, err := strconv.Atoi(v)
		if err != nil { return bad("WIDTH", v, err) }
		cfg.Width = n
	}
	if v, ok := get("HEIGHT"); ok {
		n, err := strconv.Atoi(v)
		if err != nil { return bad("HEIGHT", v, err) }
		cfg.Height = n
	}
	if v, ok := get("ALPHA"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil { return bad("ALPHA", v, err) }
		cfg.Alpha = f
	}
	if v, ok := get("STEPS"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil { return bad("STEPS", v, err) }
		cfg.Steps = b
	}

	return nil
}

// applyFlags only overrides the settings whose flags were actually given.
func applyFlags(cmd *cobra.Command, cfg *layerstack.Config) {
	f := cmd.Flags()

	if f.Changed("input")    { cfg.Input, _ = f.GetString("input") }
	if f.Changed("output")   { cfg.Output, _ = f.GetString("output") }
	if f.Changed("width")    { cfg.Width, _ = f.GetInt("width") }
	if f.Changed("height")   { cfg.Height, _ = f.GetInt("height") }
	if f.Changed("alpha")    { cfg.Alpha, _ = f.GetFloat64("alpha") }
	if f.Changed("steps")    { cfg.Steps, _ = f.GetBool("steps") }
	if f.Changed("kernel")   { cfg.Kernel, _ = f.GetString("kernel") }
	if f.Changed("format")   { cfg.Format, _ = f.GetString("format") }
	if f.Changed("ext")      { cfg.Extensions, _ = f.GetStringSlice("ext") }
	if f.Changed("skip-bad") { cfg.SkipBadFiles, _ = f.GetBool("skip-bad") }
	if f.Changed("annotate") { cfg.Annotate, _ = f.GetBool("annotate") }
	if f.Changed("verbose")  { cfg.Verbosity, _ = f.GetCount("verbose") }
}

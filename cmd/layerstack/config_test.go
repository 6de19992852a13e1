package main

import(
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/abworrall/layerstack/pkg/layerstack"
)

func fakeEnv(vars map[string]string) lookupFunc {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := layerstack.NewConfig()
	err := applyEnv(&cfg, fakeEnv(map[string]string{
		"LAYERSTACK_INPUT":  "/data/in",
		"LAYERSTACK_WIDTH":  "640",
		"LAYERSTACK_ALPHA":  "0.3",
		"LAYERSTACK_STEPS":  "true",
		"LAYERSTACK_EXT":    "png,tif",
		"LAYERSTACK_KERNEL": "",
		"WIDTH":             "9",
	}))
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Input != "/data/in" || cfg.Width != 640 || cfg.Alpha != 0.3 || !cfg.Steps {
		t.Errorf("applyEnv gave %+v", cfg)
	}
	if strings.Join(cfg.Extensions, ",") != "png,tif" {
		t.Errorf("Extensions = %v", cfg.Extensions)
	}
	if cfg.Kernel != layerstack.DefaultKernel || cfg.Output != layerstack.DefaultOutput {
		t.Errorf("unset or empty vars changed the config: kernel %q, output %q", cfg.Kernel, cfg.Output)
	}
}

func TestApplyEnvBadValues(t *testing.T) {
	for _, name := range []string{"WIDTH", "HEIGHT", "ALPHA", "STEPS"} {
		cfg := layerstack.NewConfig()
		err := applyEnv(&cfg, fakeEnv(map[string]string{envPrefix + name: "lots"}))

		var cfgErr *layerstack.ConfigError
		if !errors.As(err, &cfgErr) || cfgErr.What != envPrefix+name {
			t.Errorf("%s=lots: err = %v, want a ConfigError", name, err)
		}
	}
}

func TestApplyFlagsOnlyChanged(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	addStackFlags(cmd)
	if err := cmd.ParseFlags([]string{"--width", "300", "--skip-bad", "--ext", "png,bmp", "-vv"}); err != nil {
		t.Fatal(err)
	}

	cfg := layerstack.NewConfig()
	cfg.Input = "/from/yaml"
	cfg.Alpha = 0.7
	applyFlags(cmd, &cfg)

	if cfg.Width != 300 || !cfg.SkipBadFiles || cfg.Verbosity != 2 {
		t.Errorf("flags not applied: %+v", cfg)
	}
	if strings.Join(cfg.Extensions, ",") != "png,bmp" {
		t.Errorf("Extensions = %v", cfg.Extensions)
	}
	if cfg.Input != "/from/yaml" || cfg.Alpha != 0.7 {
		t.Errorf("flag defaults overrode earlier settings: input %q, alpha %v", cfg.Input, cfg.Alpha)
	}
}

func TestBuildConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "stack.yaml")
	if err := os.WriteFile(filename, []byte("width: 200\nalpha: 0.2\nkernel: nearest\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LAYERSTACK_ALPHA", "0.4")
	t.Setenv("LAYERSTACK_WIDTH", "")

	cmd := &cobra.Command{Use: "test"}
	addStackFlags(cmd)
	if err := cmd.ParseFlags([]string{"--config", filename, "--kernel", "bicubic"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := buildConfig(cmd)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 200 {
		t.Errorf("Width = %d, want 200 from the yaml", cfg.Width)
	}
	if cfg.Alpha != 0.4 {
		t.Errorf("Alpha = %v, want 0.4 from the environment", cfg.Alpha)
	}
	if cfg.Kernel != "bicubic" {
		t.Errorf("Kernel = %q, want bicubic from the flag", cfg.Kernel)
	}
}

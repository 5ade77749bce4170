package slider

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

const testConfig = `
style: pie
minimum: 10
maximum: 20
value: 15
continuous: false
thumb-tint: "#00ff00"
radius: 50
center-x: 60
center-y: 60
`

func readTestConfig(t *testing.T, yaml string) (Config, error) {
	t.Helper()
	v := viper.New()
	SetDefaults(v)
	v.SetConfigType("yaml")
	if err := v.ReadConfig(strings.NewReader(yaml)); err != nil {
		t.Fatal(err)
	}
	return ConfigFromViper(v)
}

func TestConfigFromViper(t *testing.T) {
	cfg, err := readTestConfig(t, testConfig)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Style != Pie || cfg.Minimum != 10 || cfg.Maximum != 20 || cfg.Value != 15 || cfg.Continuous {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Frame.Radius != 50 || cfg.Frame.TrackWidth != DefaultFrame.TrackWidth {
		t.Errorf("unexpected frame %+v", cfg.Frame)
	}
	if cfg.LogLevel != "INFO" {
		t.Errorf("log level default got %q", cfg.LogLevel)
	}
	s, err := cfg.NewSlider()
	if err != nil {
		t.Fatal(err)
	}
	if s.Style() != Pie || s.Minimum() != 10 || s.Maximum() != 20 || s.Value() != 15 || s.Continuous() {
		t.Errorf("slider does not match config: %v [%g, %g] %g", s.Style(), s.Minimum(), s.Maximum(), s.Value())
	}
	if c := s.Appearance().ThumbTint; c.R != 0 || c.G != 1 || c.B != 0 {
		t.Errorf("thumb tint got %+v. want green", c)
	}
}

func TestConfigErrors(t *testing.T) {
	if _, err := readTestConfig(t, "style: donut\n"); err == nil {
		t.Error("expected error for unknown style")
	}
	if _, err := readTestConfig(t, "minimum: 5\nmaximum: 1\n"); err == nil {
		t.Error("expected error for minimum above maximum")
	}
	cfg, err := readTestConfig(t, "min-track-tint: blue\n")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := cfg.NewSlider(); err == nil {
		t.Error("expected error for bad tint")
	}
	cfg, err = readTestConfig(t, "radius: -3\n")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := cfg.NewSlider(); err == nil {
		t.Error("expected error for negative radius")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slider.yaml")
	if err := os.WriteFile(path, []byte(testConfig), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Style != Pie || cfg.Value != 15 {
		t.Errorf("unexpected config %+v", cfg)
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

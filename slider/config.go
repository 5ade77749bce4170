package slider

import (
	"fmt"

	"github.com/fogleman/fauxgl"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/spatial/r2"
)

// Config holds slider settings read from a configuration file.
type Config struct {
	Value      float64
	Minimum    float64
	Maximum    float64
	Style      Style
	Continuous bool

	MinimumTrackTint string
	MaximumTrackTint string
	ThumbTint        string

	Frame    Frame
	LogLevel string
}

// SetDefaults registers the default value of every slider key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("value", 0.0)
	v.SetDefault("minimum", 0.0)
	v.SetDefault("maximum", 1.0)
	v.SetDefault("style", Circle.String())
	v.SetDefault("continuous", true)
	v.SetDefault("min-track-tint", "#007AFF")
	v.SetDefault("max-track-tint", "#B7B7B7")
	v.SetDefault("thumb-tint", "#FFFFFF")
	v.SetDefault("center-x", DefaultFrame.Center.X)
	v.SetDefault("center-y", DefaultFrame.Center.Y)
	v.SetDefault("radius", DefaultFrame.Radius)
	v.SetDefault("track-width", DefaultFrame.TrackWidth)
	v.SetDefault("thumb-radius", DefaultFrame.ThumbRadius)
	v.SetDefault("touch-slop", DefaultFrame.TouchSlop)
	v.SetDefault("log-level", "INFO")
}

// LoadConfig reads slider settings from the file at path. The format is
// picked from the file extension.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading slider config: %w", err)
	}
	return ConfigFromViper(v)
}

// ConfigFromViper extracts slider settings from v. Call SetDefaults on v
// first for missing keys to take their default values.
func ConfigFromViper(v *viper.Viper) (Config, error) {
	style, err := ParseStyle(v.GetString("style"))
	if err != nil {
		return Config{}, err
	}
	cfg := Config{
		Value:            v.GetFloat64("value"),
		Minimum:          v.GetFloat64("minimum"),
		Maximum:          v.GetFloat64("maximum"),
		Style:            style,
		Continuous:       v.GetBool("continuous"),
		MinimumTrackTint: v.GetString("min-track-tint"),
		MaximumTrackTint: v.GetString("max-track-tint"),
		ThumbTint:        v.GetString("thumb-tint"),
		Frame: Frame{
			Center:      r2.Vec{X: v.GetFloat64("center-x"), Y: v.GetFloat64("center-y")},
			Radius:      v.GetFloat64("radius"),
			TrackWidth:  v.GetFloat64("track-width"),
			ThumbRadius: v.GetFloat64("thumb-radius"),
			TouchSlop:   v.GetFloat64("touch-slop"),
		},
		LogLevel: v.GetString("log-level"),
	}
	if cfg.Minimum > cfg.Maximum {
		return Config{}, fmt.Errorf("minimum %g above maximum %g", cfg.Minimum, cfg.Maximum)
	}
	return cfg, nil
}

// NewSlider builds a slider from the configuration.
func (cfg Config) NewSlider() (*Slider, error) {
	s, err := New(cfg.Frame)
	if err != nil {
		return nil, err
	}
	tints := []struct {
		hex string
		dst *fauxgl.Color
	}{
		{cfg.MinimumTrackTint, &s.appearance.MinimumTrackTint},
		{cfg.MaximumTrackTint, &s.appearance.MaximumTrackTint},
		{cfg.ThumbTint, &s.appearance.ThumbTint},
	}
	for _, t := range tints {
		if t.hex == "" {
			continue
		}
		c, err := ParseTint(t.hex)
		if err != nil {
			return nil, err
		}
		*t.dst = c
	}
	s.SetMaximum(cfg.Maximum)
	s.SetMinimum(cfg.Minimum)
	s.SetValue(cfg.Value)
	s.SetStyle(cfg.Style)
	s.SetContinuous(cfg.Continuous)
	return s, nil
}

package inkui

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings is the user-editable configuration, persisted as YAML. It
// replaces ad-hoc key-value lookups with an explicit struct: every
// recognized key is a field here, with its default documented in
// [DefaultSettings]. Unknown keys in the file are ignored on load.
type Settings struct {
	// CornerRadius is the rounding radius applied to widget frames,
	// in pixels. 0 disables rounding.
	CornerRadius int `yaml:"corner_radius"`
	// BorderThickness is the stroked frame width in pixels; 0 disables
	// the border.
	BorderThickness int `yaml:"border_thickness"`
	// BorderColor and Background are "#RRGGBB" hex strings for the
	// normal (non-inverted) display.
	BorderColor string `yaml:"border_color"`
	Background  string `yaml:"background"`
	// NightMode selects inverted rendering.
	NightMode bool `yaml:"night_mode"`
	// WheelColor is the last color picked on the wheel, as "#RRGGBB".
	WheelColor string `yaml:"wheel_color"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is one of "debug", "info", "warn", "error". Default "info".
	Level string `yaml:"level"`
	// Format is "text" or "json". Default "text".
	Format string `yaml:"format"`
	// File, when set, enables rotated file logging at that path.
	File string `yaml:"file"`
}

// DefaultSettings returns the defaults: light frame on a white background,
// modest rounding, night mode off, info-level text logging to stderr only.
func DefaultSettings() Settings {
	return Settings{
		CornerRadius:    12,
		BorderThickness: 2,
		BorderColor:     "#000000",
		Background:      "#FFFFFF",
		NightMode:       false,
		WheelColor:      "#808080",
		Logging:         LoggingConfig{Level: "info", Format: "text"},
	}
}

// LoadSettings reads settings from a YAML file, filling unset fields from
// the defaults. A missing file is not an error: the defaults are returned
// so a fresh device works without any configuration.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), fmt.Errorf("parse settings %s: %w", path, err)
	}
	if err := s.validate(); err != nil {
		return DefaultSettings(), err
	}
	return s, nil
}

// Save writes the settings to a YAML file, creating it if needed.
func (s Settings) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

func (s Settings) validate() error {
	for _, hex := range []string{s.BorderColor, s.Background, s.WheelColor} {
		if _, err := ParseHex(hex); err != nil {
			return fmt.Errorf("settings: %w", err)
		}
	}
	if s.CornerRadius < 0 {
		return fmt.Errorf("settings: corner_radius %d is negative", s.CornerRadius)
	}
	if s.BorderThickness < 0 {
		return fmt.Errorf("settings: border_thickness %d is negative", s.BorderThickness)
	}
	return nil
}

// Decorator builds the frame decorator described by the settings around
// an inner painter.
func (s Settings) Decorator(inner Painter) RoundedDecorator {
	return RoundedDecorator{
		Inner:      inner,
		Radius:     s.CornerRadius,
		Thickness:  s.BorderThickness,
		Border:     Hex(s.BorderColor),
		Background: Hex(s.Background),
	}
}

// RenderState returns the paint-pass snapshot for the settings.
func (s Settings) RenderState() RenderState {
	return RenderState{Invert: s.NightMode}
}

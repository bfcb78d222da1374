package inkui

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettings_MissingFileUsesDefaults(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if s != DefaultSettings() {
		t.Errorf("got %+v, want defaults %+v", s, DefaultSettings())
	}
}

func TestSettings_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inkui.yaml")

	in := DefaultSettings()
	in.CornerRadius = 20
	in.BorderThickness = 3
	in.BorderColor = "#336699"
	in.NightMode = true
	in.WheelColor = "#00FF7F"
	in.Logging.Level = "debug"

	if err := in.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if out != in {
		t.Errorf("round trip: %+v -> %+v", in, out)
	}
}

func TestLoadSettings_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inkui.yaml")
	if err := os.WriteFile(path, []byte("corner_radius: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s.CornerRadius != 7 {
		t.Errorf("corner_radius = %d, want 7", s.CornerRadius)
	}
	if s.BorderColor != DefaultSettings().BorderColor {
		t.Errorf("border_color = %q, want default", s.BorderColor)
	}
}

func TestLoadSettings_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad yaml", "{ unclosed flow"},
		{"bad hex color", "border_color: '#GGHHII'\n"},
		{"negative radius", "corner_radius: -4\n"},
		{"negative thickness", "border_thickness: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "inkui.yaml")
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatal(err)
			}
			s, err := LoadSettings(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			// Callers still get a usable fallback.
			if s != DefaultSettings() {
				t.Errorf("fallback = %+v, want defaults", s)
			}
		})
	}
}

func TestSettings_Decorator(t *testing.T) {
	s := DefaultSettings()
	s.CornerRadius = 5
	s.BorderThickness = 1
	s.BorderColor = "#FF0000"
	s.Background = "#000000"

	d := s.Decorator(SolidPainter{Color: White})
	if d.Radius != 5 || d.Thickness != 1 {
		t.Errorf("decorator geometry = %+v", d)
	}
	if d.Border != Red || d.Background != Black {
		t.Errorf("decorator colors = border %+v background %+v", d.Border, d.Background)
	}
}

func TestSettings_RenderState(t *testing.T) {
	s := DefaultSettings()
	if s.RenderState().Invert {
		t.Error("default render state inverts")
	}
	s.NightMode = true
	if !s.RenderState().Invert {
		t.Error("night mode not reflected in render state")
	}
}

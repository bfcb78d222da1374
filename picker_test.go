package inkui

import "testing"

func newTestPicker() *Picker {
	return NewPicker(Pt(100, 100), 50, HSV{H: 180, S: 0.5, V: 1})
}

func TestPicker_PressInsideStartsDrag(t *testing.T) {
	p := newTestPicker()

	if got := p.Press(Pt(150, 100)); got != PressPicked {
		t.Fatalf("Press inside = %v, want PressPicked", got)
	}
	if p.State() != PickerDragging {
		t.Errorf("state = %v, want dragging", p.State())
	}

	c := p.Color()
	if absDiff(c.H, 0) > 1e-9 || absDiff(c.S, 1) > 1e-9 {
		t.Errorf("picked color = %+v, want h=0 s=1", c)
	}
	if absDiff(c.V, 1) > 1e-9 {
		t.Errorf("value changed to %v on press, want 1", c.V)
	}
}

func TestPicker_PressOutsideCancels(t *testing.T) {
	p := newTestPicker()
	before := p.Color()

	if got := p.Press(Pt(200, 200)); got != PressCanceled {
		t.Fatalf("Press outside = %v, want PressCanceled", got)
	}
	if p.State() != PickerIdle {
		t.Errorf("state = %v, want idle", p.State())
	}
	if p.Color() != before {
		t.Errorf("color changed on canceled press: %+v -> %+v", before, p.Color())
	}
}

func TestPicker_MoveTracksWhileDragging(t *testing.T) {
	p := newTestPicker()
	p.Press(Pt(150, 100))

	if !p.Move(Pt(100, 150)) {
		t.Fatal("Move on disk while dragging reported no change")
	}
	c := p.Color()
	if absDiff(c.H, 90) > 1e-9 || absDiff(c.S, 1) > 1e-9 {
		t.Errorf("after move color = %+v, want h=90 s=1", c)
	}

	// Moves off the disk are ignored, keeping the last valid pick.
	if p.Move(Pt(300, 300)) {
		t.Error("Move off disk reported a change")
	}
	if got := p.Color(); got != c {
		t.Errorf("off-disk move altered color: %+v -> %+v", c, got)
	}
}

func TestPicker_MoveIgnoredWhileIdle(t *testing.T) {
	p := newTestPicker()
	before := p.Color()

	if p.Move(Pt(120, 100)) {
		t.Error("Move while idle reported a change")
	}
	if p.Color() != before {
		t.Errorf("idle move altered color: %+v -> %+v", before, p.Color())
	}
}

func TestPicker_ReleaseEndsDrag(t *testing.T) {
	p := newTestPicker()
	p.Press(Pt(150, 100))
	p.Release()

	if p.State() != PickerIdle {
		t.Errorf("state after release = %v, want idle", p.State())
	}
	if p.Move(Pt(100, 150)) {
		t.Error("Move after release reported a change")
	}
}

func TestPicker_StepValue(t *testing.T) {
	tests := []struct {
		name  string
		start float64
		steps []int
		want  float64
	}{
		{"single step down", 1, []int{-1}, 0.9},
		{"clamped at one", 1, []int{1, 1}, 1},
		{"clamped at zero", 0.15, []int{-1, -1, -1}, 0},
		{"round trip", 0.5, []int{3, -3}, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPicker(Pt(0, 0), 10, HSV{H: 30, S: 0.7, V: tt.start})
			for _, s := range tt.steps {
				p.StepValue(s)
			}
			if got := p.Color().V; absDiff(got, tt.want) > 1e-9 {
				t.Errorf("value = %v, want %v", got, tt.want)
			}
			// Geometry is untouched by value changes.
			if w := p.Wheel(); w.Radius != 10 {
				t.Errorf("radius changed to %v", w.Radius)
			}
		})
	}
}

func TestPicker_WheelReflectsState(t *testing.T) {
	p := newTestPicker()
	p.SetInvert(true)
	p.StepValue(-2)

	w := p.Wheel()
	if !w.Invert {
		t.Error("wheel does not carry invert flag")
	}
	if absDiff(w.Value, 0.8) > 1e-9 {
		t.Errorf("wheel value = %v, want 0.8", w.Value)
	}
	if w.Center != Pt(100, 100) || w.Radius != 50 {
		t.Errorf("wheel geometry = %+v, want center (100,100) radius 50", w)
	}
}

func TestPicker_Hex(t *testing.T) {
	p := NewPicker(Pt(0, 0), 10, HSV{H: 0, S: 1, V: 1})
	if got := p.Hex(); got != "#FF0000" {
		t.Errorf("Hex() = %q, want #FF0000", got)
	}
}

func TestPickerState_String(t *testing.T) {
	if PickerIdle.String() != "idle" || PickerDragging.String() != "dragging" {
		t.Error("unexpected state names")
	}
	if PickerState(99).String() != "unknown" {
		t.Error("out-of-range state not reported as unknown")
	}
}

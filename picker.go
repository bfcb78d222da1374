package inkui

// PickerState is the interaction state of a color picker.
type PickerState int

const (
	// PickerIdle means no pointer is down; the picker displays the
	// current color and waits for input.
	PickerIdle PickerState = iota
	// PickerDragging means the pointer went down inside the wheel and
	// hue/saturation track it until release.
	PickerDragging
)

func (s PickerState) String() string {
	switch s {
	case PickerIdle:
		return "idle"
	case PickerDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// PressAction is the outcome of a pointer press reported to the caller.
type PressAction int

const (
	// PressPicked means the press landed on the wheel and the color
	// was updated.
	PressPicked PressAction = iota
	// PressCanceled means the press landed outside the wheel while
	// idle; the caller should dismiss the picker.
	PressCanceled
)

// valueStep is the increment of the discrete brightness control.
const valueStep = 0.1

// Picker drives an HSV color wheel from pointer input. The wheel geometry
// (center, radius) is fixed at construction; only the picked color and the
// drag state change.
type Picker struct {
	center Point
	radius float64
	invert bool

	color HSV
	state PickerState
}

// NewPicker creates a picker over a wheel with the given center and
// radius, starting at the given color.
func NewPicker(center Point, radius float64, initial HSV) *Picker {
	return &Picker{center: center, radius: radius, color: initial}
}

// SetInvert sets the night-mode snapshot used when rendering the wheel.
// It does not affect picking: coordinates map to the same hue/saturation
// either way.
func (p *Picker) SetInvert(invert bool) {
	p.invert = invert
}

// Wheel returns the wheel as currently displayed: the fixed geometry plus
// the picker's current value and night-mode flag.
func (p *Picker) Wheel() Wheel {
	return Wheel{Center: p.center, Radius: p.radius, Value: p.color.V, Invert: p.invert}
}

// State returns the current interaction state.
func (p *Picker) State() PickerState {
	return p.state
}

// Color returns the currently picked color.
func (p *Picker) Color() HSV {
	return p.color
}

// SetColor replaces the picked color, e.g. when restoring from settings.
func (p *Picker) SetColor(c HSV) {
	p.color = c
}

// Press handles a pointer-down event. A press on the wheel starts a drag
// and picks the color under the pointer; a press outside the wheel while
// idle returns PressCanceled so the caller can close the picker.
func (p *Picker) Press(pt Point) PressAction {
	hue, sat, ok := p.Wheel().Pick(pt)
	if !ok {
		Logger().Debug("picker press outside wheel", "state", p.state.String())
		return PressCanceled
	}
	p.color.H, p.color.S = hue, sat
	p.state = PickerDragging
	return PressPicked
}

// Move handles pointer motion. While dragging, a position on the wheel
// updates hue and saturation; positions off the wheel are ignored. Move
// reports whether the color changed.
func (p *Picker) Move(pt Point) bool {
	if p.state != PickerDragging {
		return false
	}
	hue, sat, ok := p.Wheel().Pick(pt)
	if !ok {
		return false
	}
	p.color.H, p.color.S = hue, sat
	return true
}

// Release handles pointer-up, ending any drag.
func (p *Picker) Release() {
	p.state = PickerIdle
}

// StepValue adjusts brightness by steps of 0.1, clamped to [0, 1].
// Negative steps darken. The wheel geometry is unaffected.
func (p *Picker) StepValue(steps int) {
	v := p.color.V + valueStep*float64(steps)
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	p.color.V = v
}

// Hex returns the picked color as a "#RRGGBB" string.
func (p *Picker) Hex() string {
	return p.color.Hex()
}

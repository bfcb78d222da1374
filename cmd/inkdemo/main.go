// Command inkdemo is an interactive preview of the inkui color wheel and
// rounded-frame rendering. Drag on the wheel to pick a hue/saturation,
// use +/- for brightness, N for night mode, S to save the picked color to
// the settings file. Clicking outside the wheel closes the demo, the same
// way a tap outside the picker dismisses it on a reader.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/euphoriyy/inkui"
)

const (
	screenW = 560
	screenH = 360

	wheelSize  = 280
	wheelX     = 30
	wheelY     = 40
	swatchSize = 160
)

var errDismissed = errors.New("picker dismissed")

type demo struct {
	settings     inkui.Settings
	settingsPath string

	picker *inkui.Picker

	wheelImg  *ebiten.Image
	swatchImg *ebiten.Image
	dirty     bool
}

func newDemo(settingsPath string) (*demo, error) {
	s, err := inkui.LoadSettings(settingsPath)
	if err != nil {
		return nil, err
	}
	inkui.InitLogging(s.Logging)

	start, err := inkui.HexToHSV(s.WheelColor)
	if err != nil {
		start = inkui.HSV{V: 1}
	}

	center := inkui.Pt(wheelX+wheelSize/2, wheelY+wheelSize/2)
	p := inkui.NewPicker(center, wheelSize/2, start)
	p.SetInvert(s.NightMode)

	return &demo{
		settings:     s,
		settingsPath: settingsPath,
		picker:       p,
		dirty:        true,
	}, nil
}

func (d *demo) Update() error {
	cx, cy := ebiten.CursorPosition()
	pt := inkui.Pt(float64(cx), float64(cy))

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if d.picker.Press(pt) == inkui.PressCanceled {
			return errDismissed
		}
		d.dirty = true
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if d.picker.Move(pt) {
			d.dirty = true
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		d.picker.Release()
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyKPAdd):
		d.picker.StepValue(1)
		d.dirty = true
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract):
		d.picker.StepValue(-1)
		d.dirty = true
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		d.settings.NightMode = !d.settings.NightMode
		d.picker.SetInvert(d.settings.NightMode)
		d.dirty = true
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		d.settings.WheelColor = d.picker.Hex()
		if err := d.settings.Save(d.settingsPath); err != nil {
			return err
		}
		inkui.Logger().Info("settings saved", "path", d.settingsPath, "color", d.settings.WheelColor)
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return errDismissed
	}

	if d.dirty {
		d.rebuild()
		d.dirty = false
	}
	return nil
}

// rebuild re-renders the wheel and the swatch after any parameter change.
func (d *demo) rebuild() {
	w := d.picker.Wheel()
	d.wheelImg = ebiten.NewImageFromImage(inkui.WheelImage(wheelSize, w.Value, w.Invert))

	pm := inkui.NewPixmap(swatchSize, swatchSize)
	frame := inkui.Rect{W: swatchSize, H: swatchSize}
	deco := d.settings.Decorator(inkui.SolidPainter{Color: d.picker.Color().RGB()})
	deco.Paint(pm, frame, d.settings.RenderState())
	d.swatchImg = ebiten.NewImageFromImage(pm.ToImage())
}

func (d *demo) Draw(screen *ebiten.Image) {
	bg := inkui.Hex(d.settings.Background)
	if d.settings.NightMode {
		bg = bg.Invert()
	}
	screen.Fill(bg.Color())

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(wheelX, wheelY)
	screen.DrawImage(d.wheelImg, &op)

	op.GeoM.Reset()
	op.GeoM.Translate(wheelX+wheelSize+40, wheelY+(wheelSize-swatchSize)/2)
	screen.DrawImage(d.swatchImg, &op)

	c := d.picker.Color()
	msg := fmt.Sprintf("%s  h=%.0f s=%.2f v=%.1f\n+/- value  N night  S save  Esc quit",
		d.picker.Hex(), c.H, c.S, c.V)
	ebitenutil.DebugPrint(screen, msg)
}

func (d *demo) Layout(_, _ int) (int, int) {
	return screenW, screenH
}

func main() {
	settingsPath := flag.String("settings", "inkui.yaml", "settings file")
	flag.Parse()

	d, err := newDemo(*settingsPath)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("inkui demo")
	if err := ebiten.RunGame(d); err != nil && !errors.Is(err, errDismissed) {
		log.Fatal(err)
	}
}

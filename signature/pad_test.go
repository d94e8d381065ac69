package signature

import (
	"strings"
	"testing"
)

func testRect() Rect {
	return Rect{Left: 100, Top: 50, Width: 600, Height: 200}
}

func TestStrokeCallbackFiresOnce(t *testing.T) {
	fired := 0
	pad := NewPad(testRect(), 1, OnStroke(func() { fired++ }))

	if pad.HasStrokes() {
		t.Error("New pad should be empty")
	}

	pad.Begin(Point{X: 150, Y: 100})
	pad.Move(Point{X: 160, Y: 110})
	pad.Move(Point{X: 170, Y: 120})
	pad.End()

	pad.Begin(Point{X: 200, Y: 100})
	pad.Move(Point{X: 210, Y: 105})
	pad.End()

	if !pad.HasStrokes() {
		t.Error("Expected pad to have strokes")
	}
	if fired != 1 {
		t.Errorf("Expected stroke callback to fire exactly once, fired %d times", fired)
	}
}

func TestMoveWithoutBeginDoesNothing(t *testing.T) {
	fired := 0
	pad := NewPad(testRect(), 1, OnStroke(func() { fired++ }))

	pad.Move(Point{X: 160, Y: 110})
	if pad.HasStrokes() || fired != 0 {
		t.Error("Move without Begin should not render a segment")
	}

	pad.Begin(Point{X: 150, Y: 100})
	pad.End()
	pad.Move(Point{X: 160, Y: 110})
	if pad.HasStrokes() {
		t.Error("Move after End should not render a segment")
	}
}

func TestClearFiresCallbackAndEmptiesSurface(t *testing.T) {
	cleared := 0
	pad := NewPad(testRect(), 1, OnClear(func() { cleared++ }))

	pad.Begin(Point{X: 150, Y: 100})
	pad.Move(Point{X: 160, Y: 110})
	pad.End()

	pad.Clear()
	if pad.HasStrokes() {
		t.Error("Expected empty surface after clear")
	}
	if cleared != 1 {
		t.Errorf("Expected clear callback once, got %d", cleared)
	}
}

func TestResetDoesNotFireCallbacks(t *testing.T) {
	cleared := 0
	pad := NewPad(testRect(), 1, OnClear(func() { cleared++ }))

	pad.Begin(Point{X: 150, Y: 100})
	pad.Move(Point{X: 160, Y: 110})
	pad.End()

	pad.Reset()
	if pad.HasStrokes() {
		t.Error("Expected empty surface after reset")
	}
	if cleared != 0 {
		t.Error("External reset must not fire the clear callback")
	}
}

func TestDisabledIgnoresAllInput(t *testing.T) {
	strokes, clears := 0, 0
	pad := NewPad(testRect(), 1, OnStroke(func() { strokes++ }), OnClear(func() { clears++ }))
	pad.SetDisabled(true)

	pad.Begin(Point{X: 150, Y: 100})
	pad.Move(Point{X: 160, Y: 110})
	pad.End()
	pad.Clear()

	if pad.HasStrokes() || strokes != 0 || clears != 0 {
		t.Error("Disabled pad must ignore input and fire no events")
	}

	// Drawing in progress when disabled is cut off
	pad.SetDisabled(false)
	pad.Begin(Point{X: 150, Y: 100})
	pad.SetDisabled(true)
	pad.Move(Point{X: 160, Y: 110})
	if pad.HasStrokes() {
		t.Error("Segment rendered after disable mid-stroke")
	}
}

func TestCoordinateTranslationWithPixelRatio(t *testing.T) {
	pad := NewPad(Rect{Left: 10, Top: 20, Width: 100, Height: 50}, 2)

	// Buffer dimensions scale with the device pixel ratio
	if w, h := pad.dc.Width(), pad.dc.Height(); w != 200 || h != 100 {
		t.Errorf("Expected 200x100 buffer, got %dx%d", w, h)
	}

	// A point at viewport (60, 45) lands at surface-local (50, 25), scaled
	// to buffer (100, 50)
	got := pad.translate(Point{X: 60, Y: 45})
	if got.X != 100 || got.Y != 50 {
		t.Errorf("Expected buffer point (100, 50), got (%v, %v)", got.X, got.Y)
	}
}

func TestResizeDropsStrokes(t *testing.T) {
	pad := NewPad(testRect(), 1)
	pad.Begin(Point{X: 150, Y: 100})
	pad.Move(Point{X: 160, Y: 110})
	pad.End()

	pad.Resize(Rect{Left: 100, Top: 50, Width: 300, Height: 100}, 1)
	if pad.HasStrokes() {
		t.Error("Resize recomputes the buffer; prior strokes are not preserved")
	}
	if w := pad.dc.Width(); w != 300 {
		t.Errorf("Expected buffer width 300 after resize, got %d", w)
	}
}

func TestExportPNGDataURL(t *testing.T) {
	pad := NewPad(testRect(), 1)
	pad.Begin(Point{X: 150, Y: 100})
	pad.Move(Point{X: 300, Y: 150})
	pad.End()

	url, err := pad.ExportPNG()
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if !strings.HasPrefix(url, "data:image/png;base64,") {
		t.Errorf("Expected PNG data URL, got %q", url[:min(len(url), 40)])
	}
	if len(url) < 100 {
		t.Error("Export suspiciously small")
	}
}

func TestReplayCapture(t *testing.T) {
	payload := `{
		"rect": {"left": 0, "top": 0, "width": 600, "height": 200},
		"ratio": 1,
		"events": [
			{"type": "down", "x": 10, "y": 10},
			{"type": "move", "x": 20, "y": 20},
			{"type": "move", "x": 30, "y": 25},
			{"type": "up"}
		]
	}`

	capture, err := DecodeCapture(payload)
	if err != nil {
		t.Fatalf("Failed to decode capture: %v", err)
	}

	pad := Replay(capture)
	if !pad.HasStrokes() {
		t.Error("Expected replayed pad to have strokes")
	}
}

func TestDecodeCaptureErrors(t *testing.T) {
	if _, err := DecodeCapture(""); err == nil {
		t.Error("Expected error for empty capture")
	}
	if _, err := DecodeCapture("{not json"); err == nil {
		t.Error("Expected error for malformed capture")
	}
}

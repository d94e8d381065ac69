// Package signature implements the consent signature capture surface: a
// bounded drawing buffer fed by normalized pointer events, with first-stroke
// and clear notifications and a PNG data-URL export for the rendered card.
package signature

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
	"math"

	"github.com/fogleman/gg"
)

// Point is a position in viewport coordinates
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is the surface's on-screen position and size in viewport coordinates
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Option configures a Pad
type Option func(*Pad)

// WithLineWidth overrides the default stroke width (in surface units)
func WithLineWidth(w float64) Option {
	return func(p *Pad) { p.lineWidth = w }
}

// OnStroke registers a callback fired exactly once when the surface leaves
// the empty state, on the first successfully rendered stroke segment
func OnStroke(fn func()) Option {
	return func(p *Pad) { p.onStroke = fn }
}

// OnClear registers a callback fired on explicit clear
func OnClear(fn func()) Option {
	return func(p *Pad) { p.onClear = fn }
}

// Pad is the signature drawing surface. The pixel buffer is owned exclusively
// by the Pad; callers only observe HasStrokes and the export.
type Pad struct {
	dc        *gg.Context
	rect      Rect
	ratio     float64
	lineWidth float64

	drawing    bool
	hasStrokes bool
	disabled   bool
	cur        Point

	onStroke func()
	onClear  func()
}

// NewPad creates a surface for the given on-screen rect. ratio is the device
// pixel ratio; the internal buffer is scaled uniformly on both axes so stroke
// geometry stays visually consistent across displays.
func NewPad(rect Rect, ratio float64, opts ...Option) *Pad {
	p := &Pad{lineWidth: 2}
	for _, opt := range opts {
		opt(p)
	}
	p.resize(rect, ratio)
	return p
}

// resize recomputes the buffer from the surface's current size. Existing
// strokes are not preserved.
func (p *Pad) resize(rect Rect, ratio float64) {
	if ratio <= 0 {
		ratio = 1
	}
	w := int(math.Round(rect.Width * ratio))
	h := int(math.Round(rect.Height * ratio))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dc := gg.NewContext(w, h)
	dc.SetLineCapRound()
	dc.SetLineJoinRound()
	dc.SetLineWidth(p.lineWidth * ratio)
	dc.SetRGB(0.2, 0.2, 0.2)

	p.dc = dc
	p.rect = rect
	p.ratio = ratio
	p.drawing = false
	p.hasStrokes = false
}

// Resize adjusts the buffer to the container's current size. Must be called
// before a drawing session begins; strokes drawn before the resize are lost.
func (p *Pad) Resize(rect Rect, ratio float64) {
	p.resize(rect, ratio)
}

// SetDisabled toggles input handling. While disabled all pointer input is
// ignored and no stroke or clear events fire.
func (p *Pad) SetDisabled(disabled bool) {
	p.disabled = disabled
	if disabled {
		p.drawing = false
	}
}

// Disabled reports whether input is currently ignored
func (p *Pad) Disabled() bool {
	return p.disabled
}

// HasStrokes reports whether at least one stroke segment has been rendered
func (p *Pad) HasStrokes() bool {
	return p.hasStrokes
}

// translate converts viewport coordinates to surface-local buffer coordinates
func (p *Pad) translate(pt Point) Point {
	return Point{
		X: (pt.X - p.rect.Left) * p.ratio,
		Y: (pt.Y - p.rect.Top) * p.ratio,
	}
}

// Begin starts a stroke at the given viewport position
func (p *Pad) Begin(pt Point) {
	if p.disabled {
		return
	}
	p.drawing = true
	p.cur = p.translate(pt)
}

// Move extends the current stroke to the given viewport position, rendering
// one segment. The first rendered segment moves the surface out of the empty
// state and fires the stroke callback exactly once.
func (p *Pad) Move(pt Point) {
	if !p.drawing || p.disabled {
		return
	}
	next := p.translate(pt)
	p.dc.DrawLine(p.cur.X, p.cur.Y, next.X, next.Y)
	p.dc.Stroke()
	p.cur = next

	if !p.hasStrokes {
		p.hasStrokes = true
		if p.onStroke != nil {
			p.onStroke()
		}
	}
}

// End finishes the current stroke
func (p *Pad) End() {
	p.drawing = false
}

// Clear wipes the pixel buffer and fires the clear callback. Ignored while
// disabled.
func (p *Pad) Clear() {
	if p.disabled {
		return
	}
	p.reset()
	if p.onClear != nil {
		p.onClear()
	}
}

// Reset wipes the surface without firing callbacks, for external resets such
// as a successful form submit.
func (p *Pad) Reset() {
	p.reset()
}

func (p *Pad) reset() {
	p.resize(p.rect, p.ratio)
}

// ExportPNG serializes the current pixel buffer as a PNG data URL. Export is
// only meant to be called at submit time, never during drawing.
func (p *Pad) ExportPNG() (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, p.dc.Image()); err != nil {
		return "", fmt.Errorf("failed to encode signature image: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

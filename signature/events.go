package signature

import (
	"encoding/json"
	"fmt"
)

// Event types for the input-event stream
const (
	EventDown = "down"
	EventMove = "move"
	EventUp   = "up"
)

// Event is one normalized pointer or touch event in viewport coordinates.
// Mouse and touch input share this representation.
type Event struct {
	Type string  `json:"type"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// Capture is the payload posted by the browser-side surface: its on-screen
// rect, device pixel ratio, and the ordered event stream of the session.
type Capture struct {
	Rect   Rect    `json:"rect"`
	Ratio  float64 `json:"ratio"`
	Events []Event `json:"events"`
}

// DecodeCapture parses a capture payload
func DecodeCapture(data string) (*Capture, error) {
	if data == "" {
		return nil, fmt.Errorf("empty signature capture")
	}
	var c Capture
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return nil, fmt.Errorf("failed to decode signature capture: %w", err)
	}
	return &c, nil
}

// Apply feeds one event into the pad
func (p *Pad) Apply(ev Event) {
	switch ev.Type {
	case EventDown:
		p.Begin(Point{X: ev.X, Y: ev.Y})
	case EventMove:
		p.Move(Point{X: ev.X, Y: ev.Y})
	case EventUp:
		p.End()
	}
}

// Replay builds a pad from a capture payload and feeds the whole event
// stream through it
func Replay(c *Capture, opts ...Option) *Pad {
	pad := NewPad(c.Rect, c.Ratio, opts...)
	for _, ev := range c.Events {
		pad.Apply(ev)
	}
	return pad
}

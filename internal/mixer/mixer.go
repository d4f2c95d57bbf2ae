// Package mixer tracks active touches and derives the three mixer values
// from them: scratch (one finger), crossfade (two fingers) and the FX toggle
// (three or more fingers).
package mixer

// TouchID distinguishes one finger contact from another for its lifetime.
// The value is opaque; ebiten touch ids and synthetic ids (the mouse) both
// fit.
type TouchID int64

// Phase classifies a touch event. Anything other than Down or Moved releases
// the touch, so cancelled and unrecognized phases all terminate it.
type Phase uint8

const (
	PhaseDown Phase = iota
	PhaseMoved
	PhaseEnded
	PhaseCancelled
)

// Point is a position in viewport coordinates.
type Point struct {
	X, Y float64
}

// State holds the derived mixer values. Scratch and Crossfade are normalized
// to [0,1] and keep their last computed value whenever the touch count does
// not match their gesture, so lifting all fingers never snaps them back.
type State struct {
	Scratch   float64
	Crossfade float64
	FXOn      bool
}

// fxLatch makes the three-finger FX toggle edge-triggered: FXOn flips once
// when the touch count crosses three, then the latch stays in cooldown until
// the count drops below three again.
type fxLatch uint8

const (
	fxArmed fxLatch = iota
	fxCooldown
)

// Mixer maps active touch ids to their positions and recomputes State after
// every event. It is not safe for concurrent use; ebiten delivers input on
// the update goroutine and that is the only caller.
type Mixer struct {
	width   float64
	touches map[TouchID]Point
	latch   fxLatch
	state   State
}

// New returns a mixer for the given viewport width. The width only scales
// the horizontal normalization; vertical position is ignored.
func New(viewportWidth float64) *Mixer {
	return &Mixer{
		width:   viewportWidth,
		touches: map[TouchID]Point{},
		latch:   fxArmed,
	}
}

// Handle applies one touch event and recomputes the derived state. Removing
// an id that was never seen is a no-op; out-of-range positions are clamped
// during normalization, never rejected.
func (m *Mixer) Handle(id TouchID, phase Phase, x, y float64) {
	switch phase {
	case PhaseDown, PhaseMoved:
		m.touches[id] = Point{X: x, Y: y}
	default:
		delete(m.touches, id)
	}
	m.recompute()
}

// ToggleFX flips the FX mode directly, bypassing the latch. Used by the
// desktop keyboard shortcut.
func (m *Mixer) ToggleFX() {
	m.state.FXOn = !m.state.FXOn
}

// ActiveTouches reports the number of currently held contacts.
func (m *Mixer) ActiveTouches() int {
	return len(m.touches)
}

// State returns the current derived values.
func (m *Mixer) State() State {
	return m.state
}

func (m *Mixer) recompute() {
	if m.width > 0 {
		switch len(m.touches) {
		case 1:
			for _, p := range m.touches {
				m.state.Scratch = clamp01(p.X / m.width)
			}
		case 2:
			var sum float64
			for _, p := range m.touches {
				sum += p.X
			}
			m.state.Crossfade = clamp01(sum / 2 / m.width)
		}
	}
	if len(m.touches) >= 3 {
		if m.latch == fxArmed {
			m.state.FXOn = !m.state.FXOn
			m.latch = fxCooldown
		}
	} else {
		m.latch = fxArmed
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

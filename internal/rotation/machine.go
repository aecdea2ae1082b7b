// Package rotation tracks the dial's angle across drag gestures and the
// countdown that follows each release. Touch input and countdown ticks never
// drive the displayed angle at the same time.
package rotation

import (
	"strconv"
	"sync"

	"github.com/akyairhashvil/countdial/internal/dial"
	"github.com/akyairhashvil/countdial/internal/models"
)

// Phase is the state of the machine.
type Phase int

const (
	Idle Phase = iota
	Dragging
	Countdown
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Countdown:
		return "countdown"
	default:
		return "unknown"
	}
}

// Snapshot is a read-only copy of the machine used for rendering.
type Snapshot struct {
	Phase       Phase
	Displayed   float64
	BaseAngle   float64
	OffsetAngle float64
	Tilt        dial.Tilt
	Remaining   int
	Generation  uint64
}

// Label is the remaining-time text shown above the dial.
func (s Snapshot) Label() string {
	if s.Phase == Countdown {
		return strconv.Itoa(s.Remaining)
	}
	return strconv.Itoa(dial.MinutesForAngle(s.Displayed))
}

// Machine is safe for concurrent use; every method holds one lock.
type Machine struct {
	mu sync.Mutex

	phase      Phase
	base       float64
	offset     float64
	live       float64
	displayed  float64
	tilt       dial.Tilt
	tiltOffset float64
	remaining  int
	generation uint64
}

// New returns an idle machine. tiltOffset <= 0 uses dial.DefaultTiltOffset.
func New(tiltOffset float64) *Machine {
	if tiltOffset <= 0 {
		tiltOffset = dial.DefaultTiltOffset
	}
	return &Machine{tiltOffset: tiltOffset}
}

// Start begins a gesture. It returns false, leaving all state untouched, while
// a countdown is running.
func (m *Machine) Start(touch, pivot dial.Point) (float64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.phase == Countdown {
		return m.displayed, false
	}
	angle, ok := dial.ComputeAngle(touch, pivot)
	if !ok {
		angle = 0
	}
	m.offset = angle
	m.live = angle
	m.phase = Dragging
	m.tilt = dial.ComputeTilt(angle, m.tiltOffset)
	return m.displayed, true
}

// Move updates the displayed angle from the current touch point.
func (m *Machine) Move(touch, pivot dial.Point) (float64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.phase != Dragging {
		return m.displayed, false
	}
	m.track(touch, pivot)
	return m.displayed, true
}

// track must be called with mu held.
func (m *Machine) track(touch, pivot dial.Point) {
	if angle, ok := dial.ComputeAngle(touch, pivot); ok {
		m.live = angle
	}
	m.tilt = dial.ComputeTilt(m.live, m.tiltOffset)
	raw := m.base + m.live - m.offset
	// Only negative sums are wrapped; inputs keep the rest inside one turn.
	if raw < 0 {
		raw += dial.FullTurn
	}
	m.displayed = raw
}

// End finishes the gesture at touch and enters the countdown. It returns the
// minutes to count down from and the generation that owns the countdown.
func (m *Machine) End(touch, pivot dial.Point) (minutes int, generation uint64, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.phase != Dragging {
		return 0, m.generation, false
	}
	m.track(touch, pivot)
	m.base += m.live - m.offset
	m.offset = 0
	m.tilt = dial.Tilt{}

	minutes = dial.MinutesForAngle(m.displayed)
	m.generation++
	m.phase = Countdown
	m.remaining = minutes
	return minutes, m.generation, true
}

// Cancel handles an interrupted gesture the same way as a release. It is a
// library entry point for input sources with a cancel event; terminal mouse
// input has none, so the TUI only calls End.
func (m *Machine) Cancel(touch, pivot dial.Point) (minutes int, generation uint64, ok bool) {
	return m.End(touch, pivot)
}

// Tick applies one countdown emission. Emissions from a superseded countdown
// are ignored. It reports whether the value was applied.
func (m *Machine) Tick(generation uint64, minutes int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.phase != Countdown || generation != m.generation {
		return false
	}
	m.remaining = minutes
	m.displayed = dial.AngleForMinutes(minutes)
	if minutes <= 0 {
		m.resetLocked()
	}
	return true
}

// Supersede abandons a running countdown; later ticks for it are dropped.
// It reports whether a countdown was running.
func (m *Machine) Supersede() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.phase != Countdown {
		return false
	}
	m.generation++
	m.resetLocked()
	return true
}

func (m *Machine) resetLocked() {
	m.phase = Idle
	m.base = 0
	m.offset = 0
	m.live = 0
	m.displayed = 0
	m.remaining = 0
	m.tilt = dial.Tilt{}
}

// Save captures the fields that survive a rebuild of the view.
func (m *Machine) Save() models.DialState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return models.DialState{BaseAngle: m.base, OffsetAngle: m.offset}
}

// Restore replaces the angles with a saved state and rebuilds derived values.
// A running countdown or gesture is dropped.
func (m *Machine) Restore(state models.DialState) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.phase == Countdown {
		m.generation++
	}
	m.phase = Idle
	m.base = dial.Normalize(state.BaseAngle)
	m.offset = dial.Normalize(state.OffsetAngle)
	m.live = m.offset
	m.displayed = m.base
	m.remaining = 0
	m.tilt = dial.Tilt{}
}

// Snapshot returns a copy of the current state.
func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{
		Phase:       m.phase,
		Displayed:   m.displayed,
		BaseAngle:   m.base,
		OffsetAngle: m.offset,
		Tilt:        m.tilt,
		Remaining:   m.remaining,
		Generation:  m.generation,
	}
}

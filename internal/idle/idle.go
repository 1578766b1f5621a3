// Package idle drives attract mode: it watches for visitor inactivity,
// switches the kiosk into the video screensaver, and wakes it on the next
// input without leaking that input into the UI underneath.
package idle

import (
	"math/rand"
	"time"
)

// State is the controller state.
type State int

const (
	// Active is normal kiosk operation.
	Active State = iota
	// Attract is the autoplaying video screensaver.
	Attract
)

// InputKind distinguishes the input channels the controller observes.
// All three reset the inactivity deadline the same way.
type InputKind int

const (
	InputPointer InputKind = iota
	InputKey
	InputTouch
)

const (
	// DefaultTimeout is the inactivity duration before attract mode engages.
	DefaultTimeout = 180 * time.Second

	// resumeBlock is the window after waking during which input is
	// swallowed so the waking tap does not land on the UI underneath.
	resumeBlock = 200 * time.Millisecond
)

// Picker selects a video index. It is an interface so tests can pin the
// selection; production uses a seeded math/rand source.
type Picker interface {
	Pick(n int) int
}

type randPicker struct {
	rng *rand.Rand
}

func (p randPicker) Pick(n int) int {
	return p.rng.Intn(n)
}

// NewPicker returns a uniform picker seeded with seed.
func NewPicker(seed int64) Picker {
	return randPicker{rng: rand.New(rand.NewSource(seed))}
}

// Controller is the ACTIVE/ATTRACT state machine. It holds no real timers:
// the owner feeds it the current time through Touch and Tick, so teardown
// is Close and tests drive the clock directly.
type Controller struct {
	timeout    time.Duration
	picker     Picker
	state      State
	deadline   time.Time
	blockUntil time.Time
	index      int
	closed     bool
}

// NewController returns a controller in the Active state. A non-positive
// timeout falls back to DefaultTimeout.
func NewController(timeout time.Duration, picker Picker) *Controller {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Controller{timeout: timeout, picker: picker}
}

// Start arms the inactivity deadline. Call once before the first Tick.
func (c *Controller) Start(now time.Time) {
	if c.closed {
		return
	}
	c.deadline = now.Add(c.timeout)
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// VideoIndex returns the catalog index of the video attract mode plays.
// Only meaningful while the catalog is non-empty.
func (c *Controller) VideoIndex() int {
	return c.index
}

// Touch records an input event. While Active it restarts the inactivity
// deadline. While Attract it wakes the kiosk, restarts the deadline, and
// opens the resume-block window. The return value reports whether the
// event must be suppressed instead of delivered to the UI: true for the
// waking input itself and for anything inside the resume-block window.
func (c *Controller) Touch(now time.Time, kind InputKind) bool {
	if c.closed {
		return false
	}
	if c.state == Attract {
		c.state = Active
		c.deadline = now.Add(c.timeout)
		c.blockUntil = now.Add(resumeBlock)
		return true
	}
	c.deadline = now.Add(c.timeout)
	return now.Before(c.blockUntil)
}

// Tick advances the clock. When the deadline has elapsed while Active it
// transitions to Attract, picking a uniform random index over [0, n). The
// transition happens even when n == 0; the index is then meaningless.
// Returns true when the transition occurred on this tick.
func (c *Controller) Tick(now time.Time, n int) bool {
	if c.closed || c.state != Active {
		return false
	}
	if now.Before(c.deadline) {
		return false
	}
	if n > 0 && c.picker != nil {
		c.index = c.picker.Pick(n)
	}
	c.state = Attract
	return true
}

// PlaybackEnded advances to the next video cyclically when the current one
// finishes. An empty catalog is a no-op; this is attract mode's internal
// loop, not a state transition.
func (c *Controller) PlaybackEnded(n int) {
	if c.closed || c.state != Attract || n <= 0 {
		return
	}
	c.index = (c.index + 1) % n
}

// ForceAttract switches straight to attract mode without waiting for the
// deadline, keeping whatever video index is current.
func (c *Controller) ForceAttract() {
	if c.closed {
		return
	}
	c.state = Attract
}

// Close releases the controller. Every later Touch, Tick, PlaybackEnded
// and ForceAttract is a no-op, so nothing the controller armed can fire
// after teardown.
func (c *Controller) Close() {
	c.closed = true
}

package idle

import (
	"testing"
	"time"
)

// fixedPicker always returns the same index.
type fixedPicker int

func (p fixedPicker) Pick(n int) int { return int(p) }

func newTestController(pick int) (*Controller, time.Time) {
	c := NewController(DefaultTimeout, fixedPicker(pick))
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c.Start(start)
	return c, start
}

func TestTick_TimeoutEntersAttract(t *testing.T) {
	c, start := newTestController(1)
	if c.Tick(start.Add(DefaultTimeout-time.Millisecond), 3) {
		t.Fatal("Tick transitioned before the deadline")
	}
	if !c.Tick(start.Add(DefaultTimeout), 3) {
		t.Fatal("Tick did not transition at the deadline")
	}
	if c.State() != Attract {
		t.Fatalf("State = %v, want Attract", c.State())
	}
	if c.VideoIndex() != 1 {
		t.Fatalf("VideoIndex = %d, want 1", c.VideoIndex())
	}
}

func TestTouch_ContinuousInputStaysActive(t *testing.T) {
	c, start := newTestController(0)
	now := start
	for i := 0; i < 100; i++ {
		now = now.Add(time.Minute)
		c.Touch(now, InputPointer)
		if c.Tick(now.Add(time.Second), 3) {
			t.Fatalf("Tick transitioned despite input %d", i)
		}
	}
	if c.State() != Active {
		t.Fatalf("State = %v, want Active", c.State())
	}
}

func TestTick_EmptyCatalogStillTransitions(t *testing.T) {
	c, start := newTestController(0)
	if !c.Tick(start.Add(DefaultTimeout), 0) {
		t.Fatal("Tick did not transition with an empty catalog")
	}
	if c.State() != Attract {
		t.Fatalf("State = %v, want Attract", c.State())
	}
}

func TestTouch_WakesAndSwallowsResumeWindow(t *testing.T) {
	c, start := newTestController(0)
	attractAt := start.Add(DefaultTimeout)
	c.Tick(attractAt, 3)

	wake := attractAt.Add(time.Minute)
	if !c.Touch(wake, InputTouch) {
		t.Fatal("waking touch was not suppressed")
	}
	if c.State() != Active {
		t.Fatalf("State = %v, want Active after wake", c.State())
	}
	if !c.Touch(wake.Add(150*time.Millisecond), InputTouch) {
		t.Fatal("touch inside the resume window was not suppressed")
	}
	if c.Touch(wake.Add(250*time.Millisecond), InputTouch) {
		t.Fatal("touch after the resume window was suppressed")
	}
}

func TestTouch_SteadyStateNotSuppressed(t *testing.T) {
	c, start := newTestController(0)
	if c.Touch(start.Add(time.Second), InputKey) {
		t.Fatal("steady-state input was suppressed")
	}
}

func TestPlaybackEnded_CyclesWithWraparound(t *testing.T) {
	c, start := newTestController(2)
	c.Tick(start.Add(DefaultTimeout), 3)
	if c.VideoIndex() != 2 {
		t.Fatalf("VideoIndex = %d, want 2", c.VideoIndex())
	}
	c.PlaybackEnded(3)
	if c.VideoIndex() != 0 {
		t.Fatalf("VideoIndex = %d after wrap, want 0", c.VideoIndex())
	}
}

func TestPlaybackEnded_EmptyCatalogNoOp(t *testing.T) {
	c, start := newTestController(0)
	c.Tick(start.Add(DefaultTimeout), 0)
	c.PlaybackEnded(0) // must not divide by zero
	if c.VideoIndex() != 0 {
		t.Fatalf("VideoIndex = %d, want 0", c.VideoIndex())
	}
}

func TestForceAttract_KeepsCurrentIndex(t *testing.T) {
	c, start := newTestController(1)
	c.Tick(start.Add(DefaultTimeout), 3)
	c.Touch(start.Add(DefaultTimeout+time.Minute), InputTouch)

	c.ForceAttract()
	if c.State() != Attract {
		t.Fatalf("State = %v, want Attract", c.State())
	}
	if c.VideoIndex() != 1 {
		t.Fatalf("VideoIndex = %d, want 1 (no re-pick on manual trigger)", c.VideoIndex())
	}
}

func TestClose_MakesControllerInert(t *testing.T) {
	c, start := newTestController(0)
	c.Close()
	if c.Tick(start.Add(2*DefaultTimeout), 3) {
		t.Fatal("Tick fired after Close")
	}
	if c.Touch(start, InputKey) {
		t.Fatal("Touch reported suppression after Close")
	}
	c.ForceAttract()
	if c.State() != Active {
		t.Fatalf("State = %v after Close, want Active", c.State())
	}
}

func TestNewPicker_DeterministicForSeed(t *testing.T) {
	a, b := NewPicker(7), NewPicker(7)
	for i := 0; i < 10; i++ {
		if x, y := a.Pick(5), b.Pick(5); x != y {
			t.Fatalf("picks diverged at %d: %d vs %d", i, x, y)
		}
	}
}

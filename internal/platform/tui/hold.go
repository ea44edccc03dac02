package tui

import "time"

// HoldTracker turns the key press stream of a terminal into press and
// release edges. Terminals only report presses; a held key shows up as a
// burst of auto-repeated presses. The key counts as released once no press
// arrived for the release delay.
type HoldTracker struct {
	delay time.Duration
	held  bool
	last  time.Time
}

// NewHoldTracker creates a tracker that releases after delay without presses.
func NewHoldTracker(delay time.Duration) *HoldTracker {
	return &HoldTracker{delay: delay}
}

// Press records a key press at now. Returns true on the press edge, false
// for auto-repeats of a key that is already held.
func (h *HoldTracker) Press(now time.Time) bool {
	h.last = now
	if h.held {
		return false
	}
	h.held = true
	return true
}

// Poll reports the release edge: true once, when the key is held and the
// last press is at least the release delay old.
func (h *HoldTracker) Poll(now time.Time) bool {
	if !h.held || now.Sub(h.last) < h.delay {
		return false
	}
	h.held = false
	return true
}

// Held reports whether the key is currently considered down.
func (h *HoldTracker) Held() bool {
	return h.held
}

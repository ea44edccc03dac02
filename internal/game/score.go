package game

import (
	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// PointsPerHalf is awarded for each pipe half passed, so a pair is worth one point.
const PointsPerHalf = 0.5

// ScoreTracker counts passed pipe halves.
type ScoreTracker struct {
	value float64
	sound assets.Sound
}

// NewScoreTracker creates a tracker that plays sound on every pass event.
func NewScoreTracker(sound assets.Sound) *ScoreTracker {
	return &ScoreTracker{sound: sound}
}

// Track marks every unpassed pipe half whose right edge is strictly left of
// the bird's left edge, adding half a point for each. Returns the number of
// halves passed on this call.
func (t *ScoreTracker) Track(bird core.Rect, pipes []*PipeHalf) int {
	passed := 0
	for _, p := range pipes {
		if p.Passed || p.Rect.Right() >= bird.Left() {
			continue
		}
		p.Passed = true
		t.value += PointsPerHalf
		t.sound.Play()
		passed++
	}
	return passed
}

// Value returns the accumulated score, including half points.
func (t *ScoreTracker) Value() float64 { return t.value }

// Display returns the score shown to the player (whole points only).
func (t *ScoreTracker) Display() int { return int(t.value) }

// Reset zeroes the score.
func (t *ScoreTracker) Reset() { t.value = 0 }

package game

import "github.com/vovakirdan/tui-flappy/internal/core"

// CrashCause tells what ended a round.
type CrashCause int

const (
	CrashNone CrashCause = iota
	CrashPipe
	CrashGround
)

// String returns a human-readable name for the cause.
func (c CrashCause) String() string {
	switch c {
	case CrashPipe:
		return "pipe"
	case CrashGround:
		return "ground"
	default:
		return "none"
	}
}

// HitsPipe tests the bird's full rectangle against every pipe's inset hitbox.
// Overlapping only the visual rectangle is not a hit.
func HitsPipe(bird core.Rect, pipes []*PipeHalf) bool {
	for _, p := range pipes {
		if p.Hitbox.Intersects(bird) {
			return true
		}
	}
	return false
}

// HitsGround reports whether the bird's bottom reached the ground line.
// There is no matching ceiling check: flying above the playfield is allowed.
func HitsGround(bird core.Rect, groundY float64) bool {
	return bird.Bottom() >= groundY
}

// DetectCrash runs both checks; pipe hits take precedence in the report.
func DetectCrash(bird core.Rect, pipes []*PipeHalf, groundY float64) CrashCause {
	if HitsPipe(bird, pipes) {
		return CrashPipe
	}
	if HitsGround(bird, groundY) {
		return CrashGround
	}
	return CrashNone
}

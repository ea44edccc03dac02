package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// KeyEdges reports key transitions since the previous tick.
type KeyEdges interface {
	JustPressed(k ebiten.Key) bool
	JustReleased(k ebiten.Key) bool
}

// inpututilEdges reads edges from Ebitengine's input state.
type inpututilEdges struct{}

func (inpututilEdges) JustPressed(k ebiten.Key) bool  { return inpututil.IsKeyJustPressed(k) }
func (inpututilEdges) JustReleased(k ebiten.Key) bool { return inpututil.IsKeyJustReleased(k) }

var (
	flapKeys    = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}
	restartKeys = []ebiten.Key{ebiten.KeyR}
	hitboxKeys  = []ebiten.Key{ebiten.KeyH}
	quitKeys    = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}
)

func anyPressed(e KeyEdges, keys []ebiten.Key) bool {
	for _, k := range keys {
		if e.JustPressed(k) {
			return true
		}
	}
	return false
}

func anyReleased(e KeyEdges, keys []ebiten.Key) bool {
	for _, k := range keys {
		if e.JustReleased(k) {
			return true
		}
	}
	return false
}

// ReadInput collects this tick's input events. A flap press comes before its
// release, so a tap shorter than one tick still flaps and re-arms.
func ReadInput(e KeyEdges) core.InputFrame {
	in := core.NewInputFrame()
	if anyPressed(e, flapKeys) {
		in.Push(core.ActionFlapDown)
	}
	if anyReleased(e, flapKeys) {
		in.Push(core.ActionFlapUp)
	}
	if anyPressed(e, restartKeys) {
		in.Push(core.ActionRestart)
	}
	if anyPressed(e, hitboxKeys) {
		in.Push(core.ActionToggleHitboxes)
	}
	if anyPressed(e, quitKeys) {
		in.Push(core.ActionQuit)
	}
	return in
}

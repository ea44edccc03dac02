package game

import (
	"errors"
	"image/color"
	"testing"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// crash runs the default game until the bird hits the ground.
func crash(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; i < 1000; i++ {
		if g.Step(idle()).Status.State == StateGameOver {
			return
		}
	}
	t.Fatal("bird never crashed")
}

func TestRestartFullyResets(t *testing.T) {
	g, sounds := newTestGame(t, nil)
	placePair(g, 300, 300)
	placePair(g, 28, 300)
	crash(t, g)

	s := g.session
	if len(s.Pipes) == 0 || s.Score.Value() == 0 {
		t.Fatalf("test setup: expected pipes and score before restart, got %d pipes, score %v",
			len(s.Pipes), s.Score.Value())
	}
	flaps := sounds.plays(g.cfg.Sounds.Flap)

	res := g.Step(frameWith(core.ActionFlapDown))

	if !res.Has(EventRestart) {
		t.Fatal("SPACE during game over should restart")
	}
	if res.Has(EventFlap) || sounds.plays(g.cfg.Sounds.Flap) != flaps {
		t.Error("the restart press must not also flap")
	}
	if res.Status.State != StatePlaying {
		t.Errorf("state = %v, expected playing", res.Status.State)
	}
	if res.Status.Score != 0 || len(s.Pipes) != 0 {
		t.Errorf("score = %v, pipes = %d after restart", res.Status.Score, len(s.Pipes))
	}
	if s.Bird.X != g.cfg.Bird.SpawnX || s.Bird.Y != g.cfg.Bird.SpawnY || s.Bird.Velocity != 0 {
		t.Errorf("bird at (%v, %v) v=%v, expected spawn at rest", s.Bird.X, s.Bird.Y, s.Bird.Velocity)
	}

	// The new round simulates from the next tick.
	g.Step(idle())
	if s.Bird.Y != g.cfg.Bird.SpawnY+g.cfg.Physics.Gravity {
		t.Errorf("bird y = %v one tick after restart", s.Bird.Y)
	}
}

func TestRestartTickIgnoresLaterFlaps(t *testing.T) {
	g, _ := newTestGame(t, nil)
	crash(t, g)

	res := g.Step(frameWith(core.ActionFlapDown, core.ActionFlapUp, core.ActionFlapDown))
	if !res.Has(EventRestart) || res.Has(EventFlap) {
		t.Fatalf("events = %v, expected a restart without a flap", res.Events)
	}

	s := g.session
	g.Step(idle())
	if s.Bird.Velocity != g.cfg.Physics.Gravity {
		t.Errorf("velocity = %v one idle tick after restart, expected %v",
			s.Bird.Velocity, g.cfg.Physics.Gravity)
	}
	if s.Bird.Y != g.cfg.Bird.SpawnY+g.cfg.Physics.Gravity {
		t.Errorf("bird y = %v one idle tick after restart", s.Bird.Y)
	}
}

func TestRestartKeyOnlyInGameOver(t *testing.T) {
	g, _ := newTestGame(t, nil)
	for i := 0; i < 10; i++ {
		g.Step(idle())
	}
	y := g.session.Bird.Y

	res := g.Step(frameWith(core.ActionRestart))
	if res.Has(EventRestart) {
		t.Fatal("restart accepted while playing")
	}
	if g.session.Bird.Y <= y {
		t.Error("restart input while playing should be a no-op, bird kept falling")
	}

	crash(t, g)
	res = g.Step(frameWith(core.ActionRestart))
	if !res.Has(EventRestart) || res.Status.State != StatePlaying {
		t.Errorf("restart during game over: events %v, state %v", res.Events, res.Status.State)
	}
}

func TestSpawnTimerAcrossRestart(t *testing.T) {
	tests := []struct {
		name       string
		reset      bool
		firstSpawn int
	}{
		{"phase carries over", false, 90},
		{"fresh interval", true, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGame(t, func(c *config.FlappyConfig) {
				hover(c)
				c.Timing.ResetSpawnTimerOnRestart = tt.reset
			})

			for i := 0; i < 60; i++ {
				g.Step(idle())
			}
			g.session.State = StateGameOver

			res := g.Step(frameWith(core.ActionFlapDown)) // tick 61
			if !res.Has(EventRestart) {
				t.Fatal("expected restart")
			}

			got := 0
			for tick := 62; tick <= 300 && got == 0; tick++ {
				if g.Step(idle()).Has(EventSpawn) {
					got = tick
				}
			}
			if got != tt.firstSpawn {
				t.Errorf("first spawn after restart at tick %d, expected %d", got, tt.firstSpawn)
			}
		})
	}
}

func TestSpawnDroppedDuringGameOver(t *testing.T) {
	g, _ := newTestGame(t, hover)
	g.Step(idle())
	g.session.State = StateGameOver

	for tick := 2; tick <= 100; tick++ {
		if res := g.Step(idle()); res.Has(EventSpawn) {
			t.Fatalf("spawned at tick %d during game over", tick)
		}
	}
	if len(g.session.Pipes) != 0 {
		t.Fatalf("pipes = %d during game over", len(g.session.Pipes))
	}

	g.Step(frameWith(core.ActionFlapDown)) // tick 101
	for tick := 102; tick <= 180; tick++ {
		res := g.Step(idle())
		if res.Has(EventSpawn) != (tick == 180) {
			t.Fatalf("spawn event at tick %d = %v", tick, res.Has(EventSpawn))
		}
	}
}

func TestToggleHitboxesAnyState(t *testing.T) {
	g, _ := newTestGame(t, nil)
	placePair(g, 300, 300)

	res := g.Step(frameWith(core.ActionToggleHitboxes))
	if !res.Status.ShowHitboxes || !res.Has(EventToggleHitboxes) {
		t.Fatal("toggle while playing did not enable hitboxes")
	}
	f := g.Frame()
	if len(f.Hitboxes) != 2 {
		t.Fatalf("frame hitboxes = %d, expected 2", len(f.Hitboxes))
	}
	if f.Hitboxes[0] != g.session.Pipes[0].Hitbox {
		t.Error("frame hitbox does not match the pipe hitbox")
	}

	crash(t, g)
	res = g.Step(frameWith(core.ActionToggleHitboxes))
	if res.Status.ShowHitboxes || res.Status.State != StateGameOver {
		t.Errorf("toggle during game over: hitboxes %v, state %v", res.Status.ShowHitboxes, res.Status.State)
	}
	res = g.Step(frameWith(core.ActionToggleHitboxes))
	if !res.Status.ShowHitboxes || res.Status.State != StateGameOver {
		t.Error("second toggle during game over should re-enable without changing state")
	}
}

func TestFramePlaying(t *testing.T) {
	g, _ := newTestGame(t, nil)
	placePair(g, 300, 300)
	g.Step(frameWith(core.ActionFlapDown))

	f := g.Frame()
	if f.Width != 400 || f.Height != 600 || f.State != StatePlaying {
		t.Fatalf("frame header = %vx%v %v", f.Width, f.Height, f.State)
	}
	if f.Background.Kind != KindBackground || f.Background.Rect != core.NewRect(0, 0, 400, 600) {
		t.Errorf("background draw = %+v", f.Background)
	}

	kinds := make([]EntityKind, len(f.Sprites))
	for i, d := range f.Sprites {
		kinds[i] = d.Kind
	}
	expected := []EntityKind{KindPipe, KindPipe, KindGround, KindGround, KindBird}
	if len(kinds) != len(expected) {
		t.Fatalf("sprite kinds = %v, expected %v", kinds, expected)
	}
	for i := range expected {
		if kinds[i] != expected[i] {
			t.Fatalf("sprite kinds = %v, expected %v", kinds, expected)
		}
	}

	if f.Sprites[0].FlipY || !f.Sprites[1].FlipY {
		t.Error("only the top pipe half should be flipped")
	}
	bird := f.Sprites[4]
	if bird.Rotation != 21 {
		t.Errorf("bird rotation = %v, expected 21 after a flap", bird.Rotation)
	}
	if bird.Sprite.Width() != 34 || bird.Sprite.Height() != 24 {
		t.Errorf("bird sprite %vx%v, expected 34x24", bird.Sprite.Width(), bird.Sprite.Height())
	}

	if len(f.Hitboxes) != 0 {
		t.Error("hitboxes drawn while disabled")
	}
	if len(f.Texts) != 1 || f.Texts[0] != (TextLine{Text: "Score: 0", X: 200, Y: 50}) {
		t.Errorf("texts = %+v", f.Texts)
	}
}

func TestFrameGameOver(t *testing.T) {
	g, _ := newTestGame(t, nil)
	g.Step(frameWith(core.ActionToggleHitboxes))
	crash(t, g)

	f := g.Frame()
	if f.State != StateGameOver {
		t.Fatalf("state = %v", f.State)
	}
	expected := []TextLine{
		{Text: GameOverText, X: 200, Y: 300},
		{Text: "Score: 0", X: 200, Y: 50},
		{Text: HitboxHintText, X: 200, Y: 340},
	}
	if len(f.Texts) != len(expected) {
		t.Fatalf("texts = %+v", f.Texts)
	}
	for i := range expected {
		if f.Texts[i] != expected[i] {
			t.Errorf("text %d = %+v, expected %+v", i, f.Texts[i], expected[i])
		}
	}
	if len(f.Hitboxes) != 0 {
		t.Error("hitbox outlines are only drawn while playing")
	}
	if f.Sprites[len(f.Sprites)-1].Kind != KindBird {
		t.Error("frozen bird should still be drawn")
	}
}

type recordingSink struct {
	frames []*Frame
}

func (r *recordingSink) Render(f *Frame) { r.frames = append(r.frames, f) }

func TestRenderHandsFrameToSink(t *testing.T) {
	g, _ := newTestGame(t, nil)
	sink := &recordingSink{}
	g.Render(sink)
	g.Step(idle())
	g.Render(sink)

	if len(sink.frames) != 2 {
		t.Fatalf("frames = %d", len(sink.frames))
	}
	if sink.frames[0].Sprites[2].Rect == sink.frames[1].Sprites[2].Rect {
		t.Error("frames should reflect the bird moving between renders")
	}
}

func TestDeterministicRuns(t *testing.T) {
	play := func() []Status {
		g, _ := newTestGame(t, func(c *config.FlappyConfig) {
			c.Pipes.SpawnInterval = 500 * time.Millisecond
		})
		var out []Status
		for tick := 0; tick < 2000; tick++ {
			var in core.InputFrame
			switch {
			case tick%23 == 0:
				in = frameWith(core.ActionFlapDown)
			case tick%23 == 1:
				in = frameWith(core.ActionFlapUp)
			default:
				in = idle()
			}
			out = append(out, g.Step(in).Status)
		}
		return out
	}

	a, b := play(), play()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("runs diverged at tick %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestQuitReported(t *testing.T) {
	g, _ := newTestGame(t, nil)
	if g.Step(idle()).Quit {
		t.Fatal("idle tick reported quit")
	}
	res := g.Step(frameWith(core.ActionQuit))
	if !res.Quit {
		t.Error("quit input not reported")
	}
	if res.Status.State != StatePlaying {
		t.Error("quit should not change the game state")
	}
}

func TestNewMissingAsset(t *testing.T) {
	images := assets.NewMemoryImages()
	images.AddSolid("bird.png", 68, 48, color.Black)

	_, err := New(config.DefaultFlappyConfig(), images, assets.SilentSounds{}, 1)
	if err == nil {
		t.Fatal("New() should fail without the pipe sprite")
	}
	if !errors.Is(err, assets.ErrAssetNotFound) {
		t.Errorf("error %v does not wrap ErrAssetNotFound", err)
	}
}

package game

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestSpawnTimer(t *testing.T) {
	timer := NewSpawnTimer(1500*time.Millisecond, time.Second/60)
	if timer.Every() != 90 {
		t.Fatalf("Every() = %d, expected 90 ticks", timer.Every())
	}

	fires := 0
	for i := 1; i <= 270; i++ {
		if timer.Advance() {
			fires++
			if i%90 != 0 {
				t.Errorf("timer fired at tick %d", i)
			}
		}
	}
	if fires != 3 {
		t.Errorf("fired %d times in 270 ticks, expected 3", fires)
	}

	for i := 0; i < 10; i++ {
		timer.Advance()
	}
	timer.Reset()
	if timer.Remaining() != 90 {
		t.Errorf("Remaining() after Reset = %d, expected 90", timer.Remaining())
	}

	// Intervals shorter than a tick still fire every tick
	fast := NewSpawnTimer(time.Millisecond, time.Second/60)
	if !fast.Advance() || !fast.Advance() {
		t.Error("sub-tick interval should fire on every tick")
	}
}

func TestSpawnPairGeometry(t *testing.T) {
	g, _ := newTestGame(t, nil)
	cfg := g.cfg.Pipes

	for i := 0; i < 200; i++ {
		bottom, top := g.session.Spawner.Spawn()

		if bottom.Inverted || !top.Inverted {
			t.Fatal("top half must be inverted, bottom half must not")
		}
		if bottom.Rect.X != top.Rect.X {
			t.Fatalf("halves have different x: %v vs %v", bottom.Rect.X, top.Rect.X)
		}
		if cx, _ := bottom.Rect.Center(); cx != g.cfg.Playfield.Width {
			t.Fatalf("pair should spawn centered on the right edge, got x=%v", cx)
		}

		visualGap := bottom.Rect.Top() - top.Rect.Bottom()
		if visualGap != cfg.Gap {
			t.Fatalf("visual gap = %v, expected %v", visualGap, cfg.Gap)
		}
		hitboxGap := bottom.Hitbox.Top() - top.Hitbox.Bottom()
		if hitboxGap != cfg.Gap+2*cfg.HitboxInset {
			t.Fatalf("hitbox gap = %v, expected %v", hitboxGap, cfg.Gap+2*cfg.HitboxInset)
		}

		center := (bottom.Rect.Top() + top.Rect.Bottom()) / 2
		if center < float64(cfg.MinCenter) || center > float64(cfg.MaxCenter) {
			t.Fatalf("gap center %v outside [%d, %d]", center, cfg.MinCenter, cfg.MaxCenter)
		}
		if center != float64(int(center)) {
			t.Fatalf("gap center %v should be a whole pixel", center)
		}

		for _, p := range []*PipeHalf{bottom, top} {
			if p.Hitbox.W != p.Rect.W-2*cfg.HitboxInset || p.Hitbox.H != p.Rect.H-2*cfg.HitboxInset {
				t.Fatalf("hitbox %+v is not rect %+v inset by %v", p.Hitbox, p.Rect, cfg.HitboxInset)
			}
		}
	}
}

func TestSpawnerDeterminism(t *testing.T) {
	g1, _ := newTestGame(t, nil)
	g2, _ := newTestGame(t, nil)

	for i := 0; i < 20; i++ {
		b1, _ := g1.session.Spawner.Spawn()
		b2, _ := g2.session.Spawner.Spawn()
		if b1.Rect != b2.Rect {
			t.Fatalf("spawn %d differs with the same seed: %+v vs %+v", i, b1.Rect, b2.Rect)
		}
	}
}

func TestPipesScrollAndExpire(t *testing.T) {
	g, _ := newTestGame(t, func(c *config.FlappyConfig) {
		c.Physics.Gravity = 0 // bird hovers at the gap height
		c.Pipes.MinCenter = 300
		c.Pipes.MaxCenter = 300
	})
	s := g.session

	maxActive := 0
	for i := 0; i < 3000; i++ {
		res := g.Step(idle())
		if res.Status.State != StatePlaying {
			t.Fatalf("bird in the middle of the gap crashed at tick %d", i)
		}
		if len(s.Pipes) > maxActive {
			maxActive = len(s.Pipes)
		}
		for _, p := range s.Pipes {
			if p.OffScreen() {
				t.Fatalf("off-screen pipe still active at tick %d", i)
			}
			if p.Hitbox.X != p.Rect.X+g.cfg.Pipes.HitboxInset {
				t.Fatalf("hitbox drifted from its rect: %+v vs %+v", p.Hitbox, p.Rect)
			}
		}
	}

	// A pair lives about (400+52)/3 ticks and pairs spawn every 90 ticks.
	if maxActive > 6 {
		t.Errorf("active pipe set grew to %d halves", maxActive)
	}
	if s.Score.Value() < 30 {
		t.Errorf("score = %v after 3000 ticks, expected at least 30 passed pairs", s.Score.Value())
	}
	if s.Score.Value() != float64(s.Score.Display()) {
		t.Errorf("score %v should be whole once all passed pairs are counted", s.Score.Value())
	}
}

func TestGroundScrollsSeamlessly(t *testing.T) {
	g, _ := newTestGame(t, func(c *config.FlappyConfig) {
		c.Physics.Gravity = 0
		c.Pipes.SpawnInterval = time.Hour
	})
	ground := g.session.Ground
	width := g.cfg.Playfield.Width

	for i := 0; i < 1000; i++ {
		g.Step(idle())

		a, b := ground.Tiles[0].Rect, ground.Tiles[1].Rect
		if b.X < a.X {
			a, b = b, a
		}
		if b.X != a.Right() {
			t.Fatalf("tick %d: seam between tiles (%v != %v)", i, b.X, a.Right())
		}
		if a.X > 0 || b.Right() < width {
			t.Fatalf("tick %d: ground does not cover the playfield: [%v, %v]", i, a.X, b.Right())
		}
		if a.Y != g.cfg.Playfield.GroundY() {
			t.Fatalf("ground tile top = %v, expected %v", a.Y, g.cfg.Playfield.GroundY())
		}
	}
}

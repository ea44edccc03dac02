package game

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

func hover(c *config.FlappyConfig) {
	c.Physics.Gravity = 0
}

func TestPipeCollisionUsesInsetHitbox(t *testing.T) {
	// The hovering bird occupies x 83..117, y 288..312.
	tests := []struct {
		name      string
		centerX   float64
		gapCenter float64
		crash     bool
	}{
		{"inside gap", 100, 300, false},
		{"bottom pipe visual overlap only", 100, 220, false},
		{"bottom pipe hitbox overlap", 100, 190, true},
		{"top pipe visual overlap only", 100, 380, false},
		{"top pipe hitbox overlap", 100, 410, true},
		{"side visual overlap only", 150, 100, false},
		{"side hitbox overlap", 130, 100, true},
		{"hitbox edge touching", 139, 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGame(t, hover)
			bottom, top := placePair(g, tt.centerX, tt.gapCenter)

			res := g.Step(idle())

			bird := g.session.Bird.Bounds()
			visual := bottom.Rect.Intersects(bird) || top.Rect.Intersects(bird)
			if !tt.crash && tt.name != "inside gap" && !visual {
				t.Fatalf("test setup: bird %+v should overlap a visual rect", bird)
			}

			crashed := res.Has(EventCrash)
			if crashed != tt.crash {
				t.Fatalf("crash = %v, expected %v (bird %+v, bottom hitbox %+v, top hitbox %+v)",
					crashed, tt.crash, bird, bottom.Hitbox, top.Hitbox)
			}
			if tt.crash && res.Events[len(res.Events)-1].Cause != CrashPipe {
				t.Errorf("crash cause = %v, expected pipe", res.Events[len(res.Events)-1].Cause)
			}
		})
	}
}

func TestGroundCollision(t *testing.T) {
	g, _ := newTestGame(t, nil)

	var res StepResult
	for i := 0; i < 100 && !res.Has(EventCrash); i++ {
		res = g.Step(idle())
	}

	if res.Status.State != StateGameOver {
		t.Fatal("falling bird never hit the ground")
	}
	var cause CrashCause
	for _, e := range res.Events {
		if e.Kind == EventCrash {
			cause = e.Cause
		}
	}
	if cause != CrashGround {
		t.Errorf("crash cause = %v, expected ground", cause)
	}
	if bottom := g.session.Bird.Bounds().Bottom(); bottom < g.cfg.Playfield.GroundY() {
		t.Errorf("bird bottom %v above the ground line at crash", bottom)
	}
}

func TestHitsGroundBoundary(t *testing.T) {
	tests := []struct {
		bottom float64
		hit    bool
	}{
		{549.9, false},
		{550, true},
		{560, true},
	}
	for _, tt := range tests {
		bird := core.NewRect(83, tt.bottom-24, 34, 24)
		if got := HitsGround(bird, 550); got != tt.hit {
			t.Errorf("HitsGround(bottom=%v) = %v, expected %v", tt.bottom, got, tt.hit)
		}
	}
}

func TestNothingMovesAfterCrash(t *testing.T) {
	g, _ := newTestGame(t, nil)
	placePair(g, 300, 300)

	for g.session.State == StatePlaying {
		g.Step(idle())
	}

	s := g.session
	birdY, birdV := s.Bird.Y, s.Bird.Velocity
	pipes := make([]core.Rect, len(s.Pipes))
	for i, p := range s.Pipes {
		pipes[i] = p.Rect
	}
	ground := s.Ground.Tiles[0].Rect
	score := s.Score.Value()

	for i := 0; i < 200; i++ {
		res := g.Step(frameWith(core.ActionFlapUp))
		if res.Has(EventSpawn) || res.Has(EventPoint) || res.Has(EventFlap) {
			t.Fatalf("tick %d after crash produced events %v", i, res.Events)
		}
	}

	if s.Bird.Y != birdY || s.Bird.Velocity != birdV {
		t.Errorf("bird moved after crash: y %v -> %v, v %v -> %v", birdY, s.Bird.Y, birdV, s.Bird.Velocity)
	}
	if len(s.Pipes) != len(pipes) {
		t.Fatalf("pipe count changed after crash: %d -> %d", len(pipes), len(s.Pipes))
	}
	for i, p := range s.Pipes {
		if p.Rect != pipes[i] {
			t.Errorf("pipe %d moved after crash", i)
		}
	}
	if s.Ground.Tiles[0].Rect != ground {
		t.Error("ground scrolled after crash")
	}
	if s.Score.Value() != score {
		t.Errorf("score changed after crash: %v -> %v", score, s.Score.Value())
	}
}

// Package game implements the Flappy Bird simulation: bird physics, pipe
// spawning, collisions, scoring and the Playing/GameOver state machine.
// It knows nothing about terminals or windows; frontends feed it input
// frames and draw the Frame it describes.
package game

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventFlap EventKind = iota
	EventPoint
	EventSpawn
	EventCrash
	EventRestart
	EventToggleHitboxes
)

// String returns a human-readable name for the event.
func (k EventKind) String() string {
	switch k {
	case EventFlap:
		return "flap"
	case EventPoint:
		return "point"
	case EventSpawn:
		return "spawn"
	case EventCrash:
		return "crash"
	case EventRestart:
		return "restart"
	case EventToggleHitboxes:
		return "toggle-hitboxes"
	default:
		return "unknown"
	}
}

// Event is a notable state change produced by Step.
type Event struct {
	Kind  EventKind
	Cause CrashCause // Set for EventCrash
}

// Status is a read-only summary of the session.
type Status struct {
	State        GameState
	Score        float64 // Accumulated score including half points
	Display      int     // Score as shown to the player
	Tick         int
	Pipes        int
	ShowHitboxes bool
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	Status Status
	Events []Event
	Quit   bool // A quit input was seen; frontends should exit
}

// Has reports whether an event of the given kind occurred.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// Game is the state machine driving a Session.
type Game struct {
	cfg        config.FlappyConfig
	session    *Session
	background assets.Sprite
}

// New loads every sprite and sound the game needs and creates a session in
// the Playing state. Any missing asset is returned as an error; the game
// cannot run without them.
func New(cfg config.FlappyConfig, images assets.ImageProvider, sounds assets.SoundProvider, seed int64) (*Game, error) {
	birdSprite, err := images.Load(cfg.Bird.Sprite, cfg.Bird.Scale)
	if err != nil {
		return nil, fmt.Errorf("game: load bird sprite: %w", err)
	}
	pipeSprite, err := images.Load(cfg.Pipes.Sprite, cfg.Pipes.Scale)
	if err != nil {
		return nil, fmt.Errorf("game: load pipe sprite: %w", err)
	}
	groundSprite, err := images.Load(cfg.Ground.Sprite, cfg.Ground.Scale)
	if err != nil {
		return nil, fmt.Errorf("game: load ground sprite: %w", err)
	}
	background, err := images.Load(cfg.Background.Sprite, 1)
	if err != nil {
		return nil, fmt.Errorf("game: load background: %w", err)
	}
	flapSound, err := sounds.Load(cfg.Sounds.Flap)
	if err != nil {
		return nil, fmt.Errorf("game: load flap sound: %w", err)
	}
	pointSound, err := sounds.Load(cfg.Sounds.Point)
	if err != nil {
		return nil, fmt.Errorf("game: load point sound: %w", err)
	}

	field := cfg.Playfield
	speed := cfg.Physics.ScrollSpeed

	s := &Session{
		State:   StatePlaying,
		Bird:    NewBird(birdSprite, flapSound, cfg.Physics, cfg.Bird.SpawnX, cfg.Bird.SpawnY, field.GroundY()),
		Pipes:   make([]*PipeHalf, 0, 8),
		Ground:  NewGround(groundSprite, cfg.Ground.Tiles, field.GroundY(), speed),
		Score:   NewScoreTracker(pointSound),
		Timer:   NewSpawnTimer(cfg.Pipes.SpawnInterval, cfg.Timing.TickDuration()),
		Spawner: NewSpawner(cfg.Pipes, pipeSprite, field.Width, speed, seed),
	}

	return &Game{cfg: cfg, session: s, background: background}, nil
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}

// Session exposes the live session for inspection. Callers must not mutate it.
func (g *Game) Session() *Session {
	return g.session
}

// Status returns a summary of the current session.
func (g *Game) Status() Status {
	s := g.session
	return Status{
		State:        s.State,
		Score:        s.Score.Value(),
		Display:      s.Score.Display(),
		Tick:         s.Ticks,
		Pipes:        len(s.Pipes),
		ShowHitboxes: s.ShowHitboxes,
	}
}

// Step advances the game by one tick: input events in arrival order, then
// the spawn timer, then (while Playing) movement, collisions and scoring.
// Nothing moves while the game is over.
func (g *Game) Step(in core.InputFrame) StepResult {
	s := g.session
	var res StepResult

	s.Ticks++

	for _, a := range in.Events {
		g.handleAction(a, &res)
	}

	// The restart tick only resets: the new round starts simulating on the
	// next tick.
	restarted := res.Has(EventRestart)

	// The timer keeps running after a crash; fires during GameOver are dropped.
	if s.Timer.Advance() && s.State == StatePlaying && !restarted {
		bottom, top := s.Spawner.Spawn()
		s.Pipes = append(s.Pipes, bottom, top)
		res.Events = append(res.Events, Event{Kind: EventSpawn})
	}

	if s.State == StatePlaying && !restarted {
		g.update(&res)
	}

	res.Status = g.Status()
	return res
}

// handleAction applies one input event.
func (g *Game) handleAction(a core.Action, res *StepResult) {
	s := g.session

	switch a {
	case core.ActionFlapDown:
		// Presses after a restart in the same tick are ignored; the new
		// round starts on the next tick.
		if res.Has(EventRestart) {
			return
		}
		if s.State == StatePlaying {
			if s.Bird.Flap() {
				res.Events = append(res.Events, Event{Kind: EventFlap})
			}
		} else {
			g.restart(res)
		}
	case core.ActionFlapUp:
		s.Bird.ResetFlap()
	case core.ActionRestart:
		if s.State == StateGameOver {
			g.restart(res)
		}
	case core.ActionToggleHitboxes:
		s.ShowHitboxes = !s.ShowHitboxes
		res.Events = append(res.Events, Event{Kind: EventToggleHitboxes})
	case core.ActionQuit:
		res.Quit = true
	}
}

// update runs one Playing tick.
func (g *Game) update(res *StepResult) {
	s := g.session

	for _, e := range s.Entities() {
		e.Update()
	}
	s.Ground.Wrap()
	s.prunePipes()

	bird := s.Bird.Bounds()

	if cause := DetectCrash(bird, s.Pipes, g.cfg.Playfield.GroundY()); cause != CrashNone {
		s.State = StateGameOver
		res.Events = append(res.Events, Event{Kind: EventCrash, Cause: cause})
	}

	// Scoring still runs on the crash tick.
	for i := s.Score.Track(bird, s.Pipes); i > 0; i-- {
		res.Events = append(res.Events, Event{Kind: EventPoint})
	}
}

// restart starts a new round from GameOver.
func (g *Game) restart(res *StepResult) {
	s := g.session

	s.clearPipes()
	s.Bird.Reset(g.cfg.Bird.SpawnX, g.cfg.Bird.SpawnY)
	s.Score.Reset()
	s.State = StatePlaying
	if g.cfg.Timing.ResetSpawnTimerOnRestart {
		s.Timer.Reset()
	}

	res.Events = append(res.Events, Event{Kind: EventRestart})
}

// Package window runs the game in a desktop window through Ebitengine.
// Unlike terminals, a window reports real key releases, so flap locking
// follows the physical key.
package window

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-flappy/internal/game"
)

// Options configures the window.
type Options struct {
	Title  string
	Scale  float64 // Window size relative to the playfield
	Logger *log.Logger
}

// Runner adapts a game.Game to ebiten.Game: one Update is one tick.
type Runner struct {
	game   *game.Game
	sink   *Sink
	edges  KeyEdges
	logger *log.Logger
}

// NewRunner creates an ebiten.Game driving g.
func NewRunner(g *game.Game, logger *log.Logger) (*Runner, error) {
	sink, err := NewSink()
	if err != nil {
		return nil, fmt.Errorf("window: load font: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{game: g, sink: sink, edges: inpututilEdges{}, logger: logger}, nil
}

// Update implements ebiten.Game.
func (r *Runner) Update() error {
	res := r.game.Step(ReadInput(r.edges))
	for _, e := range res.Events {
		switch e.Kind {
		case game.EventCrash:
			r.logger.Info("crashed", "cause", e.Cause, "score", res.Status.Display)
		case game.EventRestart:
			r.logger.Info("restarted", "tick", res.Status.Tick)
		default:
			r.logger.Debug(e.Kind.String(), "score", res.Status.Score, "tick", res.Status.Tick)
		}
	}
	if res.Quit {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (r *Runner) Draw(screen *ebiten.Image) {
	r.sink.SetTarget(screen)
	r.game.Render(r.sink)
}

// Layout implements ebiten.Game. The logical screen is the playfield.
func (r *Runner) Layout(_, _ int) (int, int) {
	field := r.game.Config().Playfield
	return int(field.Width), int(field.Height)
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(g *game.Game, opts Options) error {
	runner, err := NewRunner(g, opts.Logger)
	if err != nil {
		return err
	}

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	cfg := g.Config()
	title := opts.Title
	if title == "" {
		title = "Flappy Bird"
	}

	ebiten.SetWindowSize(int(cfg.Playfield.Width*scale), int(cfg.Playfield.Height*scale))
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(cfg.Timing.TickRate)

	if err := ebiten.RunGame(runner); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

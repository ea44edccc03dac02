package game

// GameState is the top-level state of a round.
type GameState int

const (
	StatePlaying GameState = iota
	StateGameOver
)

// String returns a human-readable name for the state.
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Session holds all mutable state of one play session. It is owned by Game
// and only changed through Game.Step.
type Session struct {
	State        GameState
	Bird         *Bird
	Pipes        []*PipeHalf
	Ground       *Ground
	Score        *ScoreTracker
	Timer        SpawnTimer
	Spawner      *Spawner
	ShowHitboxes bool
	Ticks        int
}

// Entities returns every entity in draw order: pipes, ground tiles, bird.
func (s *Session) Entities() []Entity {
	out := make([]Entity, 0, len(s.Pipes)+len(s.Ground.Tiles)+1)
	for _, p := range s.Pipes {
		out = append(out, p)
	}
	for _, t := range s.Ground.Tiles {
		out = append(out, t)
	}
	return append(out, s.Bird)
}

// clearPipes empties the active pipe set.
func (s *Session) clearPipes() {
	clear(s.Pipes)
	s.Pipes = s.Pipes[:0]
}

// prunePipes drops pipes that have fully left the playfield.
func (s *Session) prunePipes() {
	kept := s.Pipes[:0]
	for _, p := range s.Pipes {
		if !p.OffScreen() {
			kept = append(kept, p)
		}
	}
	clear(s.Pipes[len(kept):])
	s.Pipes = kept
}

package cubestate

import (
	"log/slog"
	"math/rand/v2"
)

// Option configures Engine behavior.
type Option func(*config)

type config struct {
	faces    []Face
	rng      *rand.Rand
	logger   *slog.Logger
	onCommit func(Event)
}

func defaultConfig() *config {
	return &config{
		faces:  Faces[:],
		logger: slog.New(slog.DiscardHandler),
	}
}

// WithSupportedFaces restricts which faces Turn accepts.
// The Right face is always supported since TurnRight and Shuffle use it.
func WithSupportedFaces(faces ...Face) Option {
	return func(c *config) {
		c.faces = append([]Face{FaceR}, faces...)
	}
}

// WithRand sets the random source used by Shuffle.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed makes Shuffle deterministic for the given seed.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithLogger sets the logger for commit and rejection events.
// By default nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithCommitHook registers a callback fired after every committed turn
// and every successful undo.
func WithCommitHook(fn func(Event)) Option {
	return func(c *config) {
		c.onCommit = fn
	}
}

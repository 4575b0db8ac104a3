package config

import (
	"fmt"

	"github.com/lgbarn/chess-ai-go/internal/errors"
)

// Search depth limits. Cost grows roughly 90-fold per ply from the opening
// position, so anything past MaxDepth is impractical.
const (
	MinDepth     = 1
	MaxDepth     = 8
	DefaultDepth = 3
)

// SearchConfig holds settings for the engine's move search.
type SearchConfig struct {
	// Depth is the number of plies searched, including the move being chosen.
	Depth int

	// Workers is the number of goroutines searching root moves. 1 searches
	// sequentially with full pruning.
	Workers int
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Depth:   DefaultDepth,
		Workers: 1,
	}
}

// Validate checks that the search configuration is usable.
func (s *SearchConfig) Validate() error {
	if s.Depth < MinDepth || s.Depth > MaxDepth {
		return fmt.Errorf("search depth %d outside %d..%d: %w",
			s.Depth, MinDepth, MaxDepth, errors.ErrInvalidConfig)
	}
	if s.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", s.Workers, errors.ErrInvalidConfig)
	}
	return nil
}

package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-ai-go/internal/chess"
	"github.com/lgbarn/chess-ai-go/internal/errors"
)

// HumanSide selects which colours are played from the input stream.
type HumanSide int

const (
	HumanWhite HumanSide = iota // Human plays White, engine plays Black
	HumanBlack                  // Human plays Black, engine plays White
	HumanNone                   // Engine plays both sides
	HumanBoth                   // Two humans share the input
)

// String returns the flag spelling of the side.
func (h HumanSide) String() string {
	switch h {
	case HumanBlack:
		return "black"
	case HumanNone:
		return "none"
	case HumanBoth:
		return "both"
	}
	return "white"
}

// ParseHumanSide converts a flag value such as "white" into a HumanSide.
func ParseHumanSide(s string) (HumanSide, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return HumanWhite, nil
	case "black", "b":
		return HumanBlack, nil
	case "none", "":
		return HumanNone, nil
	case "both":
		return HumanBoth, nil
	}
	return HumanWhite, fmt.Errorf("unknown side %q: %w", s, errors.ErrInvalidConfig)
}

// IsHuman reports whether moves for colour come from the input stream.
func (h HumanSide) IsHuman(colour chess.Colour) bool {
	switch h {
	case HumanBoth:
		return true
	case HumanNone:
		return false
	case HumanBlack:
		return colour == chess.Black
	}
	return colour == chess.White
}

// PlayConfig holds settings for the turn loop.
type PlayConfig struct {
	Human HumanSide

	// MaxPlies stops the game after this many half-moves (0 = no limit).
	MaxPlies int
}

// NewPlayConfig creates a PlayConfig with default values.
func NewPlayConfig() *PlayConfig {
	return &PlayConfig{
		Human: HumanWhite,
	}
}

// Validate checks that the play configuration is valid.
func (p *PlayConfig) Validate() error {
	if p.MaxPlies < 0 {
		return fmt.Errorf("max plies (%d) must not be negative: %w", p.MaxPlies, errors.ErrInvalidConfig)
	}
	if p.Human < HumanWhite || p.Human > HumanBoth {
		return fmt.Errorf("unknown human side %d: %w", p.Human, errors.ErrInvalidConfig)
	}
	return nil
}

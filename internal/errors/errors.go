// Package errors provides sentinel errors and error types for the chess engine.
// It defines the move rejection reasons and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrEmptySquare indicates a move was requested from an unoccupied square.
	ErrEmptySquare = errors.New("no piece at the starting square")

	// ErrWrongColour indicates the piece on the source square belongs to the other side.
	ErrWrongColour = errors.New("piece belongs to the other colour")

	// ErrIllegalGeometry indicates the piece cannot move that way.
	ErrIllegalGeometry = errors.New("illegal move for that piece")

	// ErrOutOfBounds indicates a coordinate outside the 8x8 grid.
	ErrOutOfBounds = errors.New("square out of bounds")

	// ErrInvalidCoordinate indicates malformed coordinate text such as "z9".
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrGameOver indicates a move was attempted after the game finished.
	ErrGameOver = errors.New("game is over")
)

// MoveError wraps a move rejection with game context: the ply it was
// attempted on, the side attempting it and the move text.
type MoveError struct {
	Err      error  // The underlying error
	Ply      int    // 1-based ply the move was attempted on (0 if not applicable)
	Colour   string // Side attempting the move
	MoveText string // The move in coordinate notation (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Colour != "" {
		parts = append(parts, e.Colour)
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")
	switch {
	case e.Err == nil:
		return context
	case context == "":
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", context, e.Err)
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// CoordinateError reports which piece of input text failed to convert.
type CoordinateError struct {
	Err   error  // The underlying error
	Input string // The offending text
}

// Error returns the message with the offending input quoted.
func (e *CoordinateError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("bad input %q", e.Input)
	}
	return fmt.Sprintf("%q: %v", e.Input, e.Err)
}

// Unwrap returns the underlying error.
func (e *CoordinateError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Package notation converts between board squares and the coordinate text
// typed by players, e.g. "e2" or "e2e4".
package notation

import (
	"strings"

	nchess "github.com/notnil/chess"

	"github.com/lgbarn/chess-ai-go/internal/chess"
	"github.com/lgbarn/chess-ai-go/internal/errors"
)

// ParseSquare converts a file letter and rank digit ("a1".."h8") into a
// square. Row is the rank digit minus one and column is the letter minus 'a',
// so row 0 is rank 1 (White's back rank) and "a2a4" is (1,0) to (3,0).
// Case and surrounding space are ignored.
func ParseSquare(s string) (chess.Square, error) {
	text := strings.ToLower(strings.TrimSpace(s))
	if len(text) != 2 {
		return chess.Square{}, &errors.CoordinateError{Err: errors.ErrInvalidCoordinate, Input: s}
	}

	sq := chess.Sq(int(text[1])-'1', int(text[0])-'a')
	if !sq.OnBoard() {
		return chess.Square{}, &errors.CoordinateError{Err: errors.ErrInvalidCoordinate, Input: s}
	}
	return sq, nil
}

// FormatSquare returns the coordinate name of a square, or "??" if it is off the board.
func FormatSquare(sq chess.Square) string {
	if !sq.OnBoard() {
		return "??"
	}
	return nchess.NewSquare(nchess.File(sq.Col), nchess.Rank(sq.Row)).String()
}

// FormatMove returns a move in long coordinate form, e.g. "a2a4".
func FormatMove(m chess.Move) string {
	return FormatSquare(m.From) + FormatSquare(m.To)
}

// ParseMove accepts "a2a4", "a2 a4" or "a2-a4".
func ParseMove(s string) (chess.Move, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '-'
	})

	var fromText, toText string
	switch {
	case len(fields) == 1 && len(fields[0]) == 4:
		fromText, toText = fields[0][:2], fields[0][2:]
	case len(fields) == 2:
		fromText, toText = fields[0], fields[1]
	default:
		return chess.Move{}, &errors.CoordinateError{Err: errors.ErrInvalidCoordinate, Input: s}
	}

	from, err := ParseSquare(fromText)
	if err != nil {
		return chess.Move{}, err
	}
	to, err := ParseSquare(toText)
	if err != nil {
		return chess.Move{}, err
	}
	return chess.Move{From: from, To: to}, nil
}

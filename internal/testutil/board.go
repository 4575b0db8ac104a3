package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/lgbarn/chess-ai-go/internal/chess"
)

// ParseDiagram builds a board from eight rows in the format produced by
// Board.Render: the first row is row 7, cells are "--" or a colour letter
// followed by a piece letter ("WK", "BN"), separated by whitespace.
func ParseDiagram(rows []string) (*chess.Board, error) {
	if len(rows) != chess.BoardSize {
		return nil, fmt.Errorf("diagram has %d rows, want %d", len(rows), chess.BoardSize)
	}

	b := chess.NewBoard()
	for i, line := range rows {
		row := chess.BoardSize - 1 - i
		cells := strings.Fields(line)
		if len(cells) != chess.BoardSize {
			return nil, fmt.Errorf("diagram row %d has %d cells, want %d", i, len(cells), chess.BoardSize)
		}
		for col, cell := range cells {
			piece, err := parseCell(cell)
			if err != nil {
				return nil, fmt.Errorf("diagram row %d col %d: %w", i, col, err)
			}
			b.Squares[row][col] = piece
		}
	}
	return b, nil
}

// MustBoard is ParseDiagram that aborts the test on error.
func MustBoard(t testing.TB, rows ...string) *chess.Board {
	t.Helper()
	b, err := ParseDiagram(rows)
	if err != nil {
		t.Fatalf("bad diagram: %v", err)
	}
	return b
}

// BoardWith returns an empty board holding only the given pieces.
func BoardWith(pieces map[chess.Square]chess.Piece) *chess.Board {
	b := chess.NewBoard()
	for sq, p := range pieces {
		b.Squares[sq.Row][sq.Col] = p
	}
	return b
}

func parseCell(cell string) (chess.Piece, error) {
	if cell == "--" {
		return chess.NoPiece, nil
	}
	if len(cell) != 2 {
		return chess.NoPiece, fmt.Errorf("bad cell %q", cell)
	}

	var colour chess.Colour
	switch cell[0] {
	case 'W':
		colour = chess.White
	case 'B':
		colour = chess.Black
	default:
		return chess.NoPiece, fmt.Errorf("bad colour in %q", cell)
	}

	for kind := chess.Pawn; kind < chess.NumKinds; kind++ {
		if kind.Letter() == cell[1] {
			return chess.MakePiece(colour, kind), nil
		}
	}
	return chess.NoPiece, fmt.Errorf("bad piece in %q", cell)
}

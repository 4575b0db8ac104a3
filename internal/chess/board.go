package chess

import (
	"fmt"
	"iter"
	"strings"

	"github.com/lgbarn/chess-ai-go/internal/errors"
)

// BoardSize is the number of rows and columns.
const BoardSize = 8

// Board is an 8x8 grid of optional pieces, indexed Squares[row][col].
// It holds no pointers, so a plain struct copy is a full deep copy.
type Board struct {
	Squares [BoardSize][BoardSize]Piece
}

// backRank is the piece order on both back ranks, column a to h.
var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// InitialBoard returns a board set up in the standard starting position.
func InitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition clears the board and places both armies.
func (b *Board) SetupInitialPosition() {
	b.Squares = [BoardSize][BoardSize]Piece{}
	for col := 0; col < BoardSize; col++ {
		b.Squares[0][col] = W(backRank[col])
		b.Squares[1][col] = W(Pawn)
		b.Squares[6][col] = B(Pawn)
		b.Squares[7][col] = B(backRank[col])
	}
}

// Clone creates a deep copy of the board.
func (b *Board) Clone() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// PieceAt returns the content of a square. The piece is NoPiece when the
// square is empty.
func (b *Board) PieceAt(sq Square) (Piece, error) {
	if !sq.OnBoard() {
		return NoPiece, errors.Wrapf(errors.ErrOutOfBounds, "square (%d,%d)", sq.Row, sq.Col)
	}
	return b.Squares[sq.Row][sq.Col], nil
}

// At returns the content of a square, or NoPiece if it is off the board.
func (b *Board) At(sq Square) Piece {
	if !sq.OnBoard() {
		return NoPiece
	}
	return b.Squares[sq.Row][sq.Col]
}

// Set places a piece on a square. Setting NoPiece clears it.
func (b *Board) Set(sq Square, p Piece) error {
	if !sq.OnBoard() {
		return errors.Wrapf(errors.ErrOutOfBounds, "square (%d,%d)", sq.Row, sq.Col)
	}
	b.Squares[sq.Row][sq.Col] = p
	return nil
}

// ApplyMove relocates whatever stands on m.From to m.To, overwriting any
// occupant, and clears m.From. Only bounds are checked; legality, turn order
// and king safety belong to the caller.
func (b *Board) ApplyMove(m Move) error {
	if !m.From.OnBoard() || !m.To.OnBoard() {
		return errors.Wrapf(errors.ErrOutOfBounds, "move (%d,%d)->(%d,%d)",
			m.From.Row, m.From.Col, m.To.Row, m.To.Col)
	}
	piece := b.Squares[m.From.Row][m.From.Col]
	b.Squares[m.From.Row][m.From.Col] = NoPiece
	b.Squares[m.To.Row][m.To.Col] = piece
	return nil
}

// MaterialScore sums piece values, White positive and Black negative.
func (b *Board) MaterialScore() int {
	score := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			score += b.Squares[row][col].SignedValue()
		}
	}
	return score
}

// FindKing returns the square of the colour's king, scanning row-major.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	king := MakePiece(colour, King)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col] == king {
				return Sq(row, col), true
			}
		}
	}
	return Square{}, false
}

// Render yields one string per row, Black's back rank (row 7) first, with
// cells separated by single spaces. Each range over the sequence starts again
// from the top.
func (b *Board) Render() iter.Seq[string] {
	return func(yield func(string) bool) {
		cells := make([]string, BoardSize)
		for row := BoardSize - 1; row >= 0; row-- {
			for col := 0; col < BoardSize; col++ {
				cells[col] = b.Squares[row][col].String()
			}
			if !yield(strings.Join(cells, " ")) {
				return
			}
		}
	}
}

// String returns the rendered rows joined by newlines.
func (b *Board) String() string {
	var sb strings.Builder
	for line := range b.Render() {
		fmt.Fprintln(&sb, line)
	}
	return sb.String()
}

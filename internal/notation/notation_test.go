package notation

import (
	"errors"
	"testing"

	nchess "github.com/notnil/chess"

	"github.com/lgbarn/chess-ai-go/internal/chess"
	chesserrors "github.com/lgbarn/chess-ai-go/internal/errors"
	"github.com/lgbarn/chess-ai-go/internal/testutil"
)

func TestParseSquare(t *testing.T) {
	tests := []struct {
		input string
		want  chess.Square
	}{
		{"a1", chess.Sq(0, 0)},
		{"a2", chess.Sq(1, 0)},
		{"a4", chess.Sq(3, 0)},
		{"e1", chess.Sq(0, 4)},
		{"h8", chess.Sq(7, 7)},
		{"E7", chess.Sq(6, 4)},
		{"  c3 ", chess.Sq(2, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSquare(tt.input)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestParseSquareInvalid(t *testing.T) {
	for _, input := range []string{"", "a", "a9", "a0", "i1", "z9", "11", "aa", "a10", "e2e4"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseSquare(input)
			if !errors.Is(err, chesserrors.ErrInvalidCoordinate) {
				t.Errorf("ParseSquare(%q) error = %v; want ErrInvalidCoordinate", input, err)
			}
		})
	}
}

func TestFormatSquare(t *testing.T) {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.Sq(row, col)
			name := FormatSquare(sq)
			back, err := ParseSquare(name)
			if err != nil {
				t.Fatalf("ParseSquare(FormatSquare(%v)) error = %v", sq, err)
			}
			if back != sq {
				t.Errorf("ParseSquare(%q) = %v; want %v", name, back, sq)
			}
		}
	}

	if got := FormatSquare(chess.Sq(8, 0)); got != "??" {
		t.Errorf("FormatSquare(off board) = %q; want ??", got)
	}
}

func TestParseMove(t *testing.T) {
	want := chess.Move{From: chess.Sq(1, 0), To: chess.Sq(3, 0)}
	for _, input := range []string{"a2a4", "a2 a4", "a2-a4", " A2   A4 "} {
		t.Run(input, func(t *testing.T) {
			got, err := ParseMove(input)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, want)
		})
	}

	for _, input := range []string{"", "a2", "a2a", "a2 a4 a5", "a2 z9", "x1 a4"} {
		t.Run("invalid "+input, func(t *testing.T) {
			if _, err := ParseMove(input); !errors.Is(err, chesserrors.ErrInvalidCoordinate) {
				t.Errorf("ParseMove(%q) error = %v; want ErrInvalidCoordinate", input, err)
			}
		})
	}
}

func TestFormatMove(t *testing.T) {
	m := chess.Move{From: chess.Sq(0, 6), To: chess.Sq(2, 5)}
	if got := FormatMove(m); got != "g1f3" {
		t.Errorf("FormatMove() = %q; want g1f3", got)
	}
}

// TestInitialBoardAgreesWithReference compares the starting layout, square by
// square, against an independent chess library using the same square names.
func TestInitialBoardAgreesWithReference(t *testing.T) {
	kinds := map[nchess.PieceType]chess.Kind{
		nchess.Pawn:   chess.Pawn,
		nchess.Knight: chess.Knight,
		nchess.Bishop: chess.Bishop,
		nchess.Rook:   chess.Rook,
		nchess.Queen:  chess.Queen,
		nchess.King:   chess.King,
	}
	ref := nchess.NewGame().Position().Board()
	board := chess.InitialBoard()

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.Sq(row, col)
			refPiece := ref.Piece(nchess.NewSquare(nchess.File(col), nchess.Rank(row)))

			want := chess.NoPiece
			if refPiece.Type() != nchess.NoPieceType {
				colour := chess.White
				if refPiece.Color() == nchess.Black {
					colour = chess.Black
				}
				want = chess.MakePiece(colour, kinds[refPiece.Type()])
			}

			if got := board.At(sq); got != want {
				t.Errorf("%s: got %v; want %v", FormatSquare(sq), got, want)
			}
		}
	}
}

package engine

import (
	"testing"

	"github.com/lgbarn/chess-ai-go/internal/chess"
	"github.com/lgbarn/chess-ai-go/internal/testutil"
)

func TestGenerateMovesInitial(t *testing.T) {
	b := chess.InitialBoard()

	// 16 pawn moves, 6 knight, 28 rook, 14 bishop, 21 queen, 5 king. Sliders
	// and knights may land on their own pieces because only shape counts.
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		t.Run(colour.String(), func(t *testing.T) {
			moves := GenerateMoves(b, colour)
			if len(moves) != 90 {
				t.Errorf("len(GenerateMoves) = %d; want 90", len(moves))
			}
			for _, m := range moves {
				p := b.At(m.From)
				if p.Colour != colour || p.IsEmpty() {
					t.Errorf("move %v starts from %v", m, p)
				}
				if m.From == m.To {
					t.Errorf("null move %v generated", m)
				}
			}
		})
	}
}

func TestGenerateMovesOrder(t *testing.T) {
	moves := GenerateMoves(chess.InitialBoard(), chess.White)
	testutil.AssertEqual(t, moves[0], chess.Move{From: chess.Sq(0, 0), To: chess.Sq(0, 1)})

	for i := 1; i < len(moves); i++ {
		prev, cur := moves[i-1], moves[i]
		prevKey := (prev.From.Row*8+prev.From.Col)*64 + prev.To.Row*8 + prev.To.Col
		curKey := (cur.From.Row*8+cur.From.Col)*64 + cur.To.Row*8 + cur.To.Col
		if curKey <= prevKey {
			t.Fatalf("moves[%d] = %v not after moves[%d] = %v", i, cur, i-1, prev)
		}
	}
}

func TestGenerateMovesLoneKnight(t *testing.T) {
	b := testutil.BoardWith(map[chess.Square]chess.Piece{
		chess.Sq(0, 0): chess.W(chess.Knight),
		chess.Sq(7, 7): chess.B(chess.King),
	})
	want := []chess.Move{
		{From: chess.Sq(0, 0), To: chess.Sq(1, 2)},
		{From: chess.Sq(0, 0), To: chess.Sq(2, 1)},
	}
	testutil.AssertEqual(t, GenerateMoves(b, chess.White), want)
}

func TestGenerateMovesIncludesSelfCheck(t *testing.T) {
	// Every king step lands on the enemy queen's file or diagonal.
	b := testutil.BoardWith(map[chess.Square]chess.Piece{
		chess.Sq(0, 0): chess.W(chess.King),
		chess.Sq(2, 1): chess.B(chess.Queen),
	})
	moves := GenerateMoves(b, chess.White)
	testutil.AssertEqual(t, len(moves), 3)
	for _, m := range moves {
		after := b.Clone()
		testutil.AssertNoError(t, after.ApplyMove(m))
		testutil.AssertTrue(t, IsInCheck(after, chess.White), "move %v", m)
	}
}

func TestGenerateMovesNone(t *testing.T) {
	t.Run("empty board", func(t *testing.T) {
		b := chess.NewBoard()
		testutil.AssertEqual(t, len(GenerateMoves(b, chess.White)), 0)
		testutil.AssertFalse(t, HasMoves(b, chess.White))
	})

	t.Run("pawn on last rank", func(t *testing.T) {
		b := testutil.BoardWith(map[chess.Square]chess.Piece{
			chess.Sq(7, 0): chess.W(chess.Pawn),
			chess.Sq(0, 7): chess.B(chess.Rook),
		})
		testutil.AssertEqual(t, len(GenerateMoves(b, chess.White)), 0)
		testutil.AssertFalse(t, HasMoves(b, chess.White))
		testutil.AssertTrue(t, HasMoves(b, chess.Black))
	})
}

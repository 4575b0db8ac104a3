package engine

import "github.com/lgbarn/chess-ai-go/internal/chess"

// pawnGeometry handles advances and diagonal captures. The square jumped
// over by a double advance is not checked. No en passant, no promotion.
func pawnGeometry(board *chess.Board, piece chess.Piece, from, to chess.Square) bool {
	dir := chess.Forward(piece.Colour)
	rowDiff := to.Row - from.Row
	colDiff := abs(to.Col - from.Col)
	target := board.At(to)

	switch {
	case colDiff == 0:
		if !target.IsEmpty() {
			return false
		}
		if rowDiff == dir {
			return true
		}
		return rowDiff == 2*dir && from.Row == chess.HomeRank(piece.Colour)

	case colDiff == 1 && rowDiff == dir:
		return !target.IsEmpty() && target.Colour != piece.Colour
	}
	return false
}

package engine

import "github.com/lgbarn/chess-ai-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked, meaning some
// opposing piece has a geometrically legal move onto it. A board without
// that king is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king, ok := board.FindKing(colour)
	if !ok {
		return false
	}
	return isSquareAttacked(board, king, colour.Opposite())
}

// isSquareAttacked returns true if any piece of byColour can move to sq.
func isSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece.IsEmpty() || piece.Colour != byColour {
				continue
			}
			if IsLegalGeometry(board, piece, chess.Sq(row, col), sq) {
				return true
			}
		}
	}
	return false
}

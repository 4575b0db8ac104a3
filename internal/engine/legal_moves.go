package engine

import "github.com/lgbarn/chess-ai-go/internal/chess"

// GenerateMoves returns every geometrically legal move for colour, in
// row-major order of origin and then of destination. Moves that leave the
// mover's own king attacked are included. The result is empty when nothing
// can move; callers must handle that themselves.
func GenerateMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece.IsEmpty() || piece.Colour != colour {
				continue
			}
			moves = appendPieceMoves(moves, board, piece, chess.Sq(row, col))
		}
	}
	return moves
}

// appendPieceMoves probes all 63 other squares for one piece.
func appendPieceMoves(moves []chess.Move, board *chess.Board, piece chess.Piece, from chess.Square) []chess.Move {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			to := chess.Sq(row, col)
			if to == from {
				continue
			}
			if IsLegalGeometry(board, piece, from, to) {
				moves = append(moves, chess.Move{From: from, To: to})
			}
		}
	}
	return moves
}

// HasMoves returns true if the given colour has at least one move.
func HasMoves(board *chess.Board, colour chess.Colour) bool {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece.IsEmpty() || piece.Colour != colour {
				continue
			}
			if len(appendPieceMoves(nil, board, piece, chess.Sq(row, col))) > 0 {
				return true
			}
		}
	}
	return false
}

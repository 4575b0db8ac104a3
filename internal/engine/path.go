package engine

import "github.com/lgbarn/chess-ai-go/internal/chess"

// geometryFunc decides whether a piece may travel from one square to another.
type geometryFunc func(board *chess.Board, piece chess.Piece, from, to chess.Square) bool

// geometryTable dispatches on piece kind. Empty has no entry.
var geometryTable = [chess.NumKinds]geometryFunc{
	chess.Pawn:   pawnGeometry,
	chess.Knight: knightGeometry,
	chess.Bishop: bishopGeometry,
	chess.Rook:   rookGeometry,
	chess.Queen:  queenGeometry,
	chess.King:   kingGeometry,
}

// IsLegalGeometry reports whether piece may move from one square to another
// by shape alone. Sliders are not blocked by intervening pieces and nothing
// here looks at king safety; only pawns consult occupancy.
func IsLegalGeometry(board *chess.Board, piece chess.Piece, from, to chess.Square) bool {
	if !from.OnBoard() || !to.OnBoard() {
		return false
	}
	if piece.Kind <= chess.Empty || piece.Kind >= chess.NumKinds {
		return false
	}
	return geometryTable[piece.Kind](board, piece, from, to)
}

func knightGeometry(_ *chess.Board, _ chess.Piece, from, to chess.Square) bool {
	colDiff := abs(to.Col - from.Col)
	rowDiff := abs(to.Row - from.Row)
	return (colDiff == 1 && rowDiff == 2) || (colDiff == 2 && rowDiff == 1)
}

func bishopGeometry(_ *chess.Board, _ chess.Piece, from, to chess.Square) bool {
	return abs(to.Col-from.Col) == abs(to.Row-from.Row)
}

func rookGeometry(_ *chess.Board, _ chess.Piece, from, to chess.Square) bool {
	return from.Row == to.Row || from.Col == to.Col
}

func queenGeometry(board *chess.Board, piece chess.Piece, from, to chess.Square) bool {
	return rookGeometry(board, piece, from, to) || bishopGeometry(board, piece, from, to)
}

// kingGeometry allows one step in any direction; no castling.
func kingGeometry(_ *chess.Board, _ chess.Piece, from, to chess.Square) bool {
	return abs(to.Col-from.Col) <= 1 && abs(to.Row-from.Row) <= 1
}

package engine

import (
	"math"

	"github.com/lgbarn/chess-ai-go/internal/chess"
)

// Score bounds used as the initial alpha-beta window.
const (
	MaxScore = math.MaxInt32
	MinScore = -MaxScore
)

// Stats counts the work done by a search.
type Stats struct {
	Nodes   uint64 // Calls to Search, leaves included
	Cutoffs uint64 // Move loops abandoned because beta <= alpha
}

// Searcher runs minimax with alpha-beta pruning and keeps counters.
// A Searcher is not safe for concurrent use; give each goroutine its own.
type Searcher struct {
	stats Stats
}

// NewSearcher creates a Searcher with zeroed counters.
func NewSearcher() *Searcher {
	return &Searcher{}
}

// Stats returns the counters accumulated so far.
func (s *Searcher) Stats() Stats {
	return s.stats
}

// Search returns the minimax value of board with colour to move, looking
// depth plies ahead. White maximises material, Black minimises it. Moves are
// tried in generation order on a fresh clone each, and a branch stops as soon
// as beta <= alpha. A side with no moves is scored as the board stands.
func (s *Searcher) Search(board *chess.Board, depth int, maximizing bool, alpha, beta int, colour chess.Colour) int {
	s.stats.Nodes++
	if depth <= 0 {
		return board.MaterialScore()
	}

	moves := GenerateMoves(board, colour)
	if len(moves) == 0 {
		return board.MaterialScore()
	}

	if maximizing {
		maxEval := MinScore
		for _, move := range moves {
			child := board.Clone()
			_ = child.ApplyMove(move) // generated moves are always on the board
			eval := s.Search(child, depth-1, false, alpha, beta, colour.Opposite())
			maxEval = max(maxEval, eval)
			alpha = max(alpha, eval)
			if beta <= alpha {
				s.stats.Cutoffs++
				break
			}
		}
		return maxEval
	}

	minEval := MaxScore
	for _, move := range moves {
		child := board.Clone()
		_ = child.ApplyMove(move)
		eval := s.Search(child, depth-1, true, alpha, beta, colour.Opposite())
		minEval = min(minEval, eval)
		beta = min(beta, eval)
		if beta <= alpha {
			s.stats.Cutoffs++
			break
		}
	}
	return minEval
}

// Search is a convenience wrapper around a throwaway Searcher.
func Search(board *chess.Board, depth int, maximizing bool, alpha, beta int, colour chess.Colour) int {
	return NewSearcher().Search(board, depth, maximizing, alpha, beta, colour)
}

// Result is the move chosen by a driver together with its score.
type Result struct {
	Move  chess.Move
	Score int
	Stats Stats
}

// BestMove searches every move for colour to the given total depth and
// returns the one with the best score: highest for White, lowest for Black.
// Ties go to the earliest move in generation order. Depths below 1 are
// treated as 1. The bool is false when colour has no moves.
func BestMove(board *chess.Board, colour chess.Colour, depth int) (Result, bool) {
	depth = max(depth, 1)
	moves := GenerateMoves(board, colour)
	if len(moves) == 0 {
		return Result{}, false
	}

	s := NewSearcher()
	maximizing := colour == chess.White
	alpha, beta := MinScore, MaxScore
	var best Result

	for i, move := range moves {
		child := board.Clone()
		_ = child.ApplyMove(move)
		score := s.Search(child, depth-1, !maximizing, alpha, beta, colour.Opposite())

		if i == 0 || isBetter(score, best.Score, maximizing) {
			best.Move = move
			best.Score = score
		}
		if maximizing {
			alpha = max(alpha, score)
		} else {
			beta = min(beta, score)
		}
	}

	best.Stats = s.Stats()
	return best, true
}

// isBetter reports whether score strictly improves on current for the side.
func isBetter(score, current int, maximizing bool) bool {
	if maximizing {
		return score > current
	}
	return score < current
}

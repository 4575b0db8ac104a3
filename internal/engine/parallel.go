package engine

import (
	"github.com/lgbarn/chess-ai-go/internal/chess"
	"github.com/lgbarn/chess-ai-go/internal/worker"
)

// BestMoveParallel is BestMove with the root moves spread over a worker
// pool. Each root move is searched with the full window because siblings no
// longer share bounds, so the root gets no pruning and total work is usually
// higher than the sequential driver. Scores and the chosen move are identical
// to BestMove. workers <= 1 falls back to BestMove.
func BestMoveParallel(board *chess.Board, colour chess.Colour, depth, workers int) (Result, bool) {
	if workers <= 1 {
		return BestMove(board, colour, depth)
	}
	depth = max(depth, 1)
	moves := GenerateMoves(board, colour)
	if len(moves) == 0 {
		return Result{}, false
	}

	items := make([]worker.WorkItem, len(moves))
	for i, move := range moves {
		child := board.Clone()
		_ = child.ApplyMove(move)
		items[i] = worker.WorkItem{Index: i, Move: move, Board: child}
	}

	maximizing := colour == chess.White
	results := worker.Run(workers, items, func(item worker.WorkItem) worker.ProcessResult {
		s := NewSearcher()
		score := s.Search(item.Board, depth-1, !maximizing, MinScore, MaxScore, colour.Opposite())
		stats := s.Stats()
		return worker.ProcessResult{
			Index:   item.Index,
			Move:    item.Move,
			Score:   score,
			Nodes:   stats.Nodes,
			Cutoffs: stats.Cutoffs,
		}
	})

	// Scan in generation order so ties resolve exactly as in BestMove.
	var best Result
	for i, r := range results {
		best.Stats.Nodes += r.Nodes
		best.Stats.Cutoffs += r.Cutoffs
		if i == 0 || isBetter(r.Score, best.Score, maximizing) {
			best.Move = r.Move
			best.Score = r.Score
		}
	}
	return best, true
}

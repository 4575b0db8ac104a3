package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lgbarn/chess-ai-go/internal/chess"
	"github.com/lgbarn/chess-ai-go/internal/errors"
	"github.com/lgbarn/chess-ai-go/internal/notation"
)

// Outcome describes whether and how a game has ended.
type Outcome int

const (
	Ongoing   Outcome = iota
	WhiteWins         // Black's king has been captured
	BlackWins         // White's king has been captured
	NoMoves           // The side to move has an empty move list
)

// String returns a short description of the outcome.
func (o Outcome) String() string {
	switch o {
	case WhiteWins:
		return "White wins"
	case BlackWins:
		return "Black wins"
	case NoMoves:
		return "No moves"
	}
	return "Ongoing"
}

// Over reports whether the game has finished.
func (o Outcome) Over() bool {
	return o != Ongoing
}

// GameState is the live game: the board that confirmed moves mutate, whose
// turn it is and what has been played so far.
type GameState struct {
	ID      uuid.UUID
	Board   *chess.Board
	Turn    chess.Colour
	Ply     int
	History []chess.Move
}

// NewGame starts a game from the standard position with White to move.
func NewGame() *GameState {
	return NewGameFromBoard(chess.InitialBoard(), chess.White)
}

// NewGameFromBoard starts a game from an arbitrary position. The board is
// used as is, not copied.
func NewGameFromBoard(board *chess.Board, turn chess.Colour) *GameState {
	return &GameState{
		ID:    uuid.New(),
		Board: board,
		Turn:  turn,
	}
}

// TryMove validates a move for the side to move and plays it. Rejections
// are *errors.MoveError values wrapping ErrGameOver, ErrOutOfBounds,
// ErrEmptySquare, ErrWrongColour or ErrIllegalGeometry; a rejected move
// leaves the state untouched.
func (g *GameState) TryMove(m chess.Move) error {
	if err := g.validate(m); err != nil {
		return &errors.MoveError{
			Err:      err,
			Ply:      g.Ply + 1,
			Colour:   g.Turn.String(),
			MoveText: notation.FormatMove(m),
		}
	}

	_ = g.Board.ApplyMove(m) // bounds already checked
	g.History = append(g.History, m)
	g.Ply++
	g.Turn = g.Turn.Opposite()
	return nil
}

func (g *GameState) validate(m chess.Move) error {
	if g.Outcome().Over() {
		return errors.ErrGameOver
	}

	piece, err := g.Board.PieceAt(m.From)
	if err != nil {
		return err
	}
	if _, err := g.Board.PieceAt(m.To); err != nil {
		return err
	}

	switch {
	case piece.IsEmpty():
		return errors.ErrEmptySquare
	case piece.Colour != g.Turn:
		return errors.ErrWrongColour
	case m.From == m.To:
		return errors.ErrIllegalGeometry
	case !IsLegalGeometry(g.Board, piece, m.From, m.To):
		return errors.ErrIllegalGeometry
	}
	return nil
}

// EngineMove picks a move for the side to move and plays it. With
// workers > 1 the root moves are searched in parallel. The bool is false
// when there was nothing to play.
func (g *GameState) EngineMove(depth, workers int) (Result, bool, error) {
	if g.Outcome().Over() {
		return Result{}, false, errors.ErrGameOver
	}
	result, ok := BestMoveParallel(g.Board, g.Turn, depth, workers)
	if !ok {
		return Result{}, false, nil
	}
	if err := g.TryMove(result.Move); err != nil {
		return result, false, err
	}
	return result, true, nil
}

// Outcome reports whether the game is over. King capture ends the game
// because moving into check is not prevented.
func (g *GameState) Outcome() Outcome {
	if _, ok := g.Board.FindKing(chess.White); !ok {
		return BlackWins
	}
	if _, ok := g.Board.FindKing(chess.Black); !ok {
		return WhiteWins
	}
	if !HasMoves(g.Board, g.Turn) {
		return NoMoves
	}
	return Ongoing
}

// InCheck reports whether the side to move has its king attacked.
func (g *GameState) InCheck() bool {
	return IsInCheck(g.Board, g.Turn)
}

// Status returns a one-line description for display.
func (g *GameState) Status() string {
	switch g.Outcome() {
	case WhiteWins:
		return "White wins: Black king captured"
	case BlackWins:
		return "Black wins: White king captured"
	case NoMoves:
		return fmt.Sprintf("%s has no moves", g.Turn)
	}

	if g.InCheck() {
		return fmt.Sprintf("%s to move, %s is in check", g.Turn, g.Turn)
	}
	return fmt.Sprintf("%s to move", g.Turn)
}

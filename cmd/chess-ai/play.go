package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/lgbarn/chess-ai-go/internal/config"
	"github.com/lgbarn/chess-ai-go/internal/engine"
	"github.com/lgbarn/chess-ai-go/internal/notation"
	"github.com/lgbarn/chess-ai-go/internal/output"
)

// errQuit ends the turn loop early at the player's request or on EOF.
var errQuit = errors.New("quit")

// Session drives one game between the input stream and the engine.
type Session struct {
	cfg   *config.Config
	game  *engine.GameState
	input *bufio.Scanner
}

// NewSession creates a session over cfg's streams.
func NewSession(cfg *config.Config, game *engine.GameState) *Session {
	return &Session{
		cfg:   cfg,
		game:  game,
		input: bufio.NewScanner(cfg.InputFile),
	}
}

// Run plays until the game ends, the ply limit is reached or the player
// quits, then writes the transcript. Only write failures are returned.
func (s *Session) Run() error {
	s.logf(1, "game %s: human %s, depth %d, workers %d\n",
		s.game.ID, s.cfg.Play.Human, s.cfg.Search.Depth, s.cfg.Search.Workers)

	for {
		if err := s.showPosition(); err != nil {
			return err
		}
		if s.game.Outcome().Over() {
			break
		}
		if s.cfg.Play.MaxPlies > 0 && s.game.Ply >= s.cfg.Play.MaxPlies {
			s.logf(1, "ply limit %d reached\n", s.cfg.Play.MaxPlies)
			break
		}

		var err error
		if s.cfg.Play.Human.IsHuman(s.game.Turn) {
			err = s.humanTurn()
		} else {
			err = s.engineTurn()
		}
		if errors.Is(err, errQuit) {
			break
		}
		if err != nil {
			return err
		}
	}

	s.logf(1, "game %s finished after %d plies: %s\n", s.game.ID, s.game.Ply, s.game.Outcome())
	return s.writeTranscript()
}

func (s *Session) showPosition() error {
	if err := output.WriteBoard(s.cfg.OutputFile, s.game.Board, s.cfg.Output.ShowCoordinates); err != nil {
		return err
	}
	_, err := fmt.Fprintln(s.cfg.OutputFile, s.game.Status())
	return err
}

// humanTurn reads lines until one is a playable move. Rejections are
// reported and the player is asked again.
func (s *Session) humanTurn() error {
	for {
		fmt.Fprintf(s.cfg.OutputFile, "%s move: ", s.game.Turn)
		if !s.input.Scan() {
			fmt.Fprintln(s.cfg.OutputFile)
			if err := s.input.Err(); err != nil {
				return err
			}
			return errQuit
		}

		line := strings.TrimSpace(s.input.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "quit", "exit", "q":
			return errQuit
		}

		m, err := notation.ParseMove(line)
		if err != nil {
			fmt.Fprintf(s.cfg.OutputFile, "Invalid input: %v\n", err)
			continue
		}
		if err := s.game.TryMove(m); err != nil {
			fmt.Fprintf(s.cfg.OutputFile, "Illegal move: %v\n", err)
			continue
		}
		return nil
	}
}

func (s *Session) engineTurn() error {
	mover := s.game.Turn
	result, ok, err := s.game.EngineMove(s.cfg.Search.Depth, s.cfg.Search.Workers)
	if err != nil {
		return err
	}
	if !ok {
		return errQuit
	}

	fmt.Fprintf(s.cfg.OutputFile, "%s plays %s\n", mover, notation.FormatMove(result.Move))
	s.logf(2, "search: %s depth %d move %s score %d nodes %d cutoffs %d\n",
		mover, s.cfg.Search.Depth, notation.FormatMove(result.Move),
		result.Score, result.Stats.Nodes, result.Stats.Cutoffs)
	return nil
}

func (s *Session) writeTranscript() error {
	if s.cfg.Output.TranscriptFile == nil {
		return nil
	}
	w := output.NewGameWriter(s.cfg.Output.TranscriptFile, s.cfg.Output.TranscriptFormat)
	if err := w.WriteGame(s.game); err != nil {
		return err
	}
	return w.Flush()
}

func (s *Session) logf(level int, format string, args ...interface{}) {
	if s.cfg.Verbosity >= level && s.cfg.LogFile != nil {
		fmt.Fprintf(s.cfg.LogFile, format, args...)
	}
}

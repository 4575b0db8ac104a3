package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-ai-go/internal/config"
	"github.com/lgbarn/chess-ai-go/internal/engine"
	"github.com/lgbarn/chess-ai-go/internal/notation"
)

// GameWriter is the interface for writing finished games.
type GameWriter interface {
	// WriteGame writes a single game record.
	WriteGame(game *engine.GameState) error

	// Flush writes any buffered records to the underlying writer.
	Flush() error
}

// NewGameWriter returns the writer matching the configured transcript format.
func NewGameWriter(w io.Writer, format config.TranscriptFormat) GameWriter {
	if format == config.JSONTranscript {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w)
}

// TextWriter writes games as numbered move lists.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteGame writes a game as a header, numbered move pairs and a result line.
func (tw *TextWriter) WriteGame(game *engine.GameState) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Game %s\n", game.ID)
	for i, m := range game.History {
		if i%2 == 0 {
			if i > 0 {
				sb.WriteByte('\n')
			}
			fmt.Fprintf(&sb, "%d. %s", i/2+1, notation.FormatMove(m))
		} else {
			fmt.Fprintf(&sb, " %s", notation.FormatMove(m))
		}
	}
	if len(game.History) > 0 {
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "Result: %s\n", game.Outcome())
	fmt.Fprintf(&sb, "Plies: %d\n", game.Ply)
	_, err := io.WriteString(tw.w, sb.String())
	return err
}

// Flush is a no-op; text records are written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// JSONGame represents a game in JSON format.
type JSONGame struct {
	ID       string     `json:"id"`
	Moves    []JSONMove `json:"moves"`
	Outcome  string     `json:"outcome"`
	PlyCount int        `json:"plyCount"`
	Material int        `json:"material"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	Ply    int    `json:"ply"`
	Colour string `json:"colour"`
	From   string `json:"from"`
	To     string `json:"to"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts a game state to its JSON form.
func GameToJSON(game *engine.GameState) *JSONGame {
	jg := &JSONGame{
		ID:       game.ID.String(),
		Moves:    make([]JSONMove, 0, len(game.History)),
		Outcome:  game.Outcome().String(),
		PlyCount: game.Ply,
		Material: game.Board.MaterialScore(),
	}
	// The side that made the first recorded move is the one not on move
	// after an even number of plies.
	colour := game.Turn
	if len(game.History)%2 == 1 {
		colour = colour.Opposite()
	}
	for i, m := range game.History {
		jg.Moves = append(jg.Moves, JSONMove{
			Ply:    i + 1,
			Colour: strings.ToLower(colour.String()),
			From:   notation.FormatSquare(m.From),
			To:     notation.FormatSquare(m.To),
		})
		colour = colour.Opposite()
	}
	return jg
}

// JSONWriter buffers games and writes them as a JSON array on Flush.
type JSONWriter struct {
	w     io.Writer
	games []*JSONGame
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteGame converts the game now so later moves do not leak into the record.
func (jw *JSONWriter) WriteGame(game *engine.GameState) error {
	jw.games = append(jw.games, GameToJSON(game))
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if len(jw.games) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Games: jw.games})

	jw.games = jw.games[:0]
	return err
}

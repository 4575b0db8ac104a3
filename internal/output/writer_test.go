package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/chess-ai-go/internal/chess"
	"github.com/lgbarn/chess-ai-go/internal/config"
	"github.com/lgbarn/chess-ai-go/internal/engine"
	"github.com/lgbarn/chess-ai-go/internal/notation"
	"github.com/lgbarn/chess-ai-go/internal/testutil"
)

func playedGame(t *testing.T, moves ...string) *engine.GameState {
	t.Helper()
	g := engine.NewGame()
	for _, s := range moves {
		m, err := notation.ParseMove(s)
		testutil.AssertNoError(t, err)
		testutil.AssertNoError(t, g.TryMove(m), "move %s", s)
	}
	return g
}

// TestWriteBoard_Coordinates verifies rank labels and the file footer
func TestWriteBoard_Coordinates(t *testing.T) {
	var buf bytes.Buffer
	testutil.AssertNoError(t, WriteBoard(&buf, chess.InitialBoard(), true))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	testutil.AssertEqual(t, len(lines), 9)
	testutil.AssertEqual(t, lines[0], "8 BR BN BB BQ BK BB BN BR")
	testutil.AssertEqual(t, lines[1], "7 BP BP BP BP BP BP BP BP")
	testutil.AssertEqual(t, lines[4], "4 -- -- -- -- -- -- -- --")
	testutil.AssertEqual(t, lines[7], "1 WR WN WB WQ WK WB WN WR")
	testutil.AssertEqual(t, lines[8], "  a  b  c  d  e  f  g  h")
}

// TestWriteBoard_Plain verifies output without labels matches Render
func TestWriteBoard_Plain(t *testing.T) {
	board := chess.InitialBoard()
	var buf bytes.Buffer
	testutil.AssertNoError(t, WriteBoard(&buf, board, false))
	testutil.AssertEqual(t, buf.String(), board.String())
}

func TestFileFooterAlignment(t *testing.T) {
	var buf bytes.Buffer
	testutil.AssertNoError(t, WriteBoard(&buf, chess.InitialBoard(), true))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	row, footer := lines[0], lines[8]
	for col := range chess.BoardSize {
		pos := 2 + col*3
		if row[pos] != 'B' {
			t.Errorf("cell %d does not start at offset %d in %q", col, pos, row)
		}
		if footer[pos] != byte('a'+col) {
			t.Errorf("footer letter for file %d at offset %d = %q", col, pos, footer[pos])
		}
	}
}

// TestTextWriter_WriteGame verifies the numbered move list and result
func TestTextWriter_WriteGame(t *testing.T) {
	g := playedGame(t, "e2e4", "e7e5", "g1f3")

	var buf bytes.Buffer
	w := NewTextWriter(&buf)
	testutil.AssertNoError(t, w.WriteGame(g))
	testutil.AssertNoError(t, w.Flush())

	want := "Game " + g.ID.String() + "\n" +
		"1. e2e4 e7e5\n" +
		"2. g1f3\n" +
		"Result: Ongoing\n" +
		"Plies: 3\n"
	testutil.AssertEqual(t, buf.String(), want)
}

func TestTextWriter_EmptyGame(t *testing.T) {
	g := engine.NewGame()
	var buf bytes.Buffer
	testutil.AssertNoError(t, NewTextWriter(&buf).WriteGame(g))

	want := "Game " + g.ID.String() + "\nResult: Ongoing\nPlies: 0\n"
	testutil.AssertEqual(t, buf.String(), want)
}

// TestJSONWriter_Flush verifies JSON output is buffered and valid
func TestJSONWriter_Flush(t *testing.T) {
	g := playedGame(t, "e2e4", "e7e5")

	var buf bytes.Buffer
	w := NewJSONWriter(&buf)
	testutil.AssertNoError(t, w.WriteGame(g))
	if buf.Len() != 0 {
		t.Fatal("JSONWriter should not write before Flush")
	}
	testutil.AssertNoError(t, w.Flush())

	var out JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	testutil.AssertEqual(t, len(out.Games), 1)

	jg := out.Games[0]
	testutil.AssertEqual(t, jg.ID, g.ID.String())
	testutil.AssertEqual(t, jg.Outcome, "Ongoing")
	testutil.AssertEqual(t, jg.PlyCount, 2)
	testutil.AssertEqual(t, jg.Material, 0)
	testutil.AssertEqual(t, jg.Moves, []JSONMove{
		{Ply: 1, Colour: "white", From: "e2", To: "e4"},
		{Ply: 2, Colour: "black", From: "e7", To: "e5"},
	})

	// A second flush with nothing buffered writes nothing.
	buf.Reset()
	testutil.AssertNoError(t, w.Flush())
	testutil.AssertEqual(t, buf.Len(), 0)
}

func TestGameToJSON_SnapshotsAtWrite(t *testing.T) {
	g := playedGame(t, "d2d4")

	var buf bytes.Buffer
	w := NewJSONWriter(&buf)
	testutil.AssertNoError(t, w.WriteGame(g))

	m, err := notation.ParseMove("d7d5")
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, g.TryMove(m))
	testutil.AssertNoError(t, w.Flush())

	var out JSONOutput
	testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &out))
	testutil.AssertEqual(t, out.Games[0].PlyCount, 1)
	testutil.AssertEqual(t, len(out.Games[0].Moves), 1)
}

func TestGameToJSON_BlackStarts(t *testing.T) {
	g := engine.NewGameFromBoard(chess.InitialBoard(), chess.Black)
	m, err := notation.ParseMove("b8c6")
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, g.TryMove(m))

	jg := GameToJSON(g)
	testutil.AssertEqual(t, jg.Moves[0].Colour, "black")
}

func TestNewGameWriter(t *testing.T) {
	var buf bytes.Buffer
	if _, ok := NewGameWriter(&buf, config.TextTranscript).(*TextWriter); !ok {
		t.Error("text format should give a TextWriter")
	}
	if _, ok := NewGameWriter(&buf, config.JSONTranscript).(*JSONWriter); !ok {
		t.Error("JSON format should give a JSONWriter")
	}
}

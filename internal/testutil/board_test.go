package testutil

import (
	"slices"
	"testing"

	"github.com/lgbarn/chess-ai-go/internal/chess"
)

func TestParseDiagramRoundTrip(t *testing.T) {
	want := chess.InitialBoard()
	rows := slices.Collect(want.Render())

	got, err := ParseDiagram(rows)
	if err != nil {
		t.Fatalf("ParseDiagram() error = %v", err)
	}
	AssertEqual(t, *got, *want)
}

func TestParseDiagramErrors(t *testing.T) {
	empty := "-- -- -- -- -- -- -- --"
	tests := []struct {
		name string
		rows []string
	}{
		{"too few rows", []string{empty}},
		{"short row", []string{empty, empty, empty, empty, empty, empty, empty, "-- --"}},
		{"bad colour", []string{empty, empty, empty, empty, empty, empty, empty, "XK -- -- -- -- -- -- --"}},
		{"bad piece", []string{empty, empty, empty, empty, empty, empty, empty, "WZ -- -- -- -- -- -- --"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseDiagram(tt.rows); err == nil {
				t.Error("ParseDiagram() error = nil; want error")
			}
		})
	}
}

func TestBoardWith(t *testing.T) {
	b := BoardWith(map[chess.Square]chess.Piece{
		chess.Sq(0, 4): chess.W(chess.King),
		chess.Sq(7, 4): chess.B(chess.King),
	})
	if b.At(chess.Sq(0, 4)) != chess.W(chess.King) || b.At(chess.Sq(7, 4)) != chess.B(chess.King) {
		t.Error("BoardWith() did not place kings")
	}
	if got := b.MaterialScore(); got != 0 {
		t.Errorf("MaterialScore() = %d; want 0", got)
	}
}

// Package output writes boards and finished games for a chess-ai session.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-ai-go/internal/chess"
)

// WriteBoard writes the board as eight text rows, rank 8 first.
// With coords set, each row is prefixed by its rank number and a
// file-letter footer follows.
func WriteBoard(w io.Writer, board *chess.Board, coords bool) error {
	rank := chess.BoardSize
	for line := range board.Render() {
		var err error
		if coords {
			_, err = fmt.Fprintf(w, "%d %s\n", rank, line)
		} else {
			_, err = fmt.Fprintln(w, line)
		}
		if err != nil {
			return err
		}
		rank--
	}
	if !coords {
		return nil
	}
	_, err := fmt.Fprintln(w, fileFooter())
	return err
}

// fileFooter lines each file letter up with the first character of its cell.
func fileFooter() string {
	var sb strings.Builder
	sb.WriteString("  ")
	for col := range chess.BoardSize {
		if col > 0 {
			sb.WriteString("  ")
		}
		sb.WriteByte(byte('a' + col))
	}
	return sb.String()
}

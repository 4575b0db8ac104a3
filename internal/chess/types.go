// Package chess provides core chess types and the board model.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Letter returns 'W' or 'B'.
func (c Colour) Letter() byte {
	if c == White {
		return 'W'
	}
	return 'B'
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Kind represents a chess piece type.
type Kind int

const (
	Empty Kind = iota // No piece
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{'-', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// pieceValues is the material table. The king is worth nothing because
// losing it ends the game rather than shifting the balance.
var pieceValues = [NumKinds]int{
	Pawn:   1,
	Knight: 3,
	Bishop: 3,
	Rook:   5,
	Queen:  9,
	King:   0,
}

// Value returns the material value of a piece kind.
func (k Kind) Value() int {
	if k < 0 || k >= NumKinds {
		return 0
	}
	return pieceValues[k]
}

// Piece is a coloured piece. The zero value is an empty square.
type Piece struct {
	Colour Colour
	Kind   Kind
}

// NoPiece is the content of an empty square.
var NoPiece = Piece{}

// MakePiece creates a coloured piece value.
func MakePiece(colour Colour, kind Kind) Piece {
	return Piece{Colour: colour, Kind: kind}
}

// W creates a white piece.
func W(kind Kind) Piece {
	return MakePiece(White, kind)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return MakePiece(Black, kind)
}

// IsEmpty reports whether p is the empty-square value.
func (p Piece) IsEmpty() bool {
	return p.Kind == Empty
}

// String returns a two character form such as "WP" or "BN", "--" when empty.
func (p Piece) String() string {
	if p.IsEmpty() {
		return "--"
	}
	return string([]byte{p.Colour.Letter(), p.Kind.Letter()})
}

// SignedValue returns the piece value, positive for White and negative for Black.
func (p Piece) SignedValue() int {
	if p.Colour == White {
		return p.Kind.Value()
	}
	return -p.Kind.Value()
}

// Square addresses a cell by row and column, both 0-7.
// Row 0 is White's back rank.
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for Square{Row: row, Col: col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// OnBoard reports whether both coordinates are within 0..7.
func (s Square) OnBoard() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Rotate returns the square seen from the other side of the board.
func (s Square) Rotate() Square {
	return Square{Row: BoardSize - 1 - s.Row, Col: BoardSize - 1 - s.Col}
}

// Move is a from/to pair with no further metadata.
type Move struct {
	From Square
	To   Square
}

// HomeRank returns the pawn starting row for the colour.
func HomeRank(colour Colour) int {
	if colour == White {
		return 1
	}
	return BoardSize - 2
}

// Forward returns +1 for White, -1 for Black (for pawn direction).
func Forward(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

package board

// Kind is a piece kind. The zero value None marks an empty square and a
// move without promotion.
type Kind uint8

const (
	None Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

func (k Kind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	return "empty"
}

// Color is a chess side.
type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opposing side.
func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Piece is an occupied square's content. The zero value is an empty square.
type Piece struct {
	Kind  Kind
	Color Color
}

// IsEmpty reports whether p marks an empty square.
func (p Piece) IsEmpty() bool { return p.Kind == None }

var fenPieceChars = map[Piece]byte{
	{Pawn, White}: 'P', {Knight, White}: 'N', {Bishop, White}: 'B',
	{Rook, White}: 'R', {Queen, White}: 'Q', {King, White}: 'K',
	{Pawn, Black}: 'p', {Knight, Black}: 'n', {Bishop, Black}: 'b',
	{Rook, Black}: 'r', {Queen, Black}: 'q', {King, Black}: 'k',
}

package board

import "fmt"

// Move is a half-move: origin, destination, and an optional promotion kind
// (None for non-promoting moves). Castling is written as the king moving onto
// its own rook's square (e1h1 for white kingside); this keeps castling
// unambiguous for every Chess960 starting position.
type Move struct {
	From  Square
	To    Square
	Promo Kind
}

// String renders the move as UCI-style coordinates, e.g. "e2e4" or "b7b8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	switch m.Promo {
	case Queen:
		s += "q"
	case Rook:
		s += "r"
	case Bishop:
		s += "b"
	case Knight:
		s += "n"
	}
	return s
}

// ParseMove parses UCI-style coordinates: 4 characters for a plain move,
// a 5th of "qrbn" for a promotion.
func ParseMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("%w: move %q", ErrIllegalMove, s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, err
	}
	mv := Move{From: from, To: to}
	if len(s) == 5 {
		switch s[4] {
		case 'q', 'Q':
			mv.Promo = Queen
		case 'r', 'R':
			mv.Promo = Rook
		case 'b', 'B':
			mv.Promo = Bishop
		case 'n', 'N':
			mv.Promo = Knight
		default:
			return Move{}, fmt.Errorf("%w: promotion piece %q", ErrIllegalMove, s[4])
		}
	}
	return mv, nil
}

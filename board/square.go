package board

import "fmt"

// Square is a board coordinate, 0-63, rank*8+file (a1=0, b1=1, ..., h8=63).
type Square int8

// NoSquare is the zero-ish sentinel for "no square" (en passant target, etc).
const NoSquare Square = -1

// Sq builds a Square from file and rank, both 0-7.
func Sq(file, rank int) Square {
	return Square(rank*8 + file)
}

// File returns the file index 0-7 (a=0).
func (s Square) File() int { return int(s) % 8 }

// Rank returns the rank index 0-7 (rank 1 = 0).
func (s Square) Rank() int { return int(s) / 8 }

// Valid reports whether s names one of the 64 board squares.
func (s Square) Valid() bool { return s >= 0 && s < 64 }

func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + s.File()), byte('1' + s.Rank())})
}

// ParseSquare parses algebraic coordinates like "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%w: square %q", ErrIllegalMove, s)
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, fmt.Errorf("%w: square %q", ErrIllegalMove, s)
	}
	return Sq(file, rank), nil
}

// step moves one king step in the given file/rank deltas.
// Returns NoSquare when the step leaves the board.
func (s Square) step(df, dr int) Square {
	f := s.File() + df
	r := s.Rank() + dr
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return NoSquare
	}
	return Sq(f, r)
}

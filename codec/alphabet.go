package codec

import (
	"fmt"

	"github.com/chesspack/chesspack/board"
)

// Squares map onto the RFC 4648 URL-safe base64 table without padding: a
// square's index (rank*8 + file) selects its character, so a1='A', h1='H',
// a2='I', ..., h8='_'. The bijection is part of the wire format and must
// never change; strings encoded by other implementations of the format rely
// on it.
const squareChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

// Promotion suffix letters. Note knight is 'K': 'N' already names square f6
// and the format predates any urge to match SAN.
const (
	promoQueen  = 'Q'
	promoRook   = 'R'
	promoBishop = 'B'
	promoKnight = 'K'
)

func squareChar(sq board.Square) byte {
	return squareChars[sq]
}

func charSquare(c byte) (board.Square, error) {
	switch {
	case c >= 'A' && c <= 'Z':
		return board.Square(c - 'A'), nil
	case c >= 'a' && c <= 'z':
		return board.Square(c-'a') + 26, nil
	case c >= '0' && c <= '9':
		return board.Square(c-'0') + 52, nil
	case c == '-':
		return 62, nil
	case c == '_':
		return 63, nil
	}
	return 0, fmt.Errorf("%w: %q is not a url-safe base64 character", ErrFormat, c)
}

func promoChar(k board.Kind) byte {
	switch k {
	case board.Queen:
		return promoQueen
	case board.Rook:
		return promoRook
	case board.Bishop:
		return promoBishop
	case board.Knight:
		return promoKnight
	}
	return 0
}

func charPromo(c byte) (board.Kind, bool) {
	switch c {
	case promoQueen:
		return board.Queen, true
	case promoRook:
		return board.Rook, true
	case promoBishop:
		return board.Bishop, true
	case promoKnight:
		return board.Knight, true
	}
	return board.None, false
}

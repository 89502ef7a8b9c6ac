// Package codec transcodes chess games between a move list and a compact
// URL-safe string.
//
// Each move becomes one character (the destination, when no other piece of
// the moving side could reach it) or two (origin then destination), plus one
// promotion letter when a pawn promotes. Moves are concatenated without
// separators; disambiguation falls out of replaying the game, so decoding
// needs no markers. Castling is written as the full king-from rook-from pair.
package codec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chesspack/chesspack/board"
)

// ErrFormat reports an encoded stream that cannot be tokenized consistently:
// a byte outside the alphabet, a truncated token, or a destination-only token
// that does not resolve to exactly one origin. Inspect with errors.Is.
var ErrFormat = errors.New("invalid game encoding")

// Encode compresses an ordered move sequence, played from the standard
// starting position, into a URL-safe string. Moves must be geometrically
// legal at the point they are played; board.ErrIllegalMove is returned
// otherwise. The empty sequence encodes to the empty string.
func Encode(moves []board.Move) (string, error) {
	b := board.New()
	var sb strings.Builder
	sb.Grow(len(moves) * 2)

	for ply, mv := range moves {
		castling, err := b.IsCastling(mv)
		if err != nil {
			return "", moveErr(ply, mv, err)
		}

		full := castling
		if !castling {
			candidates, err := b.CandidatesTo(mv.To)
			if err != nil {
				return "", moveErr(ply, mv, err)
			}
			if !containsSquare(candidates, mv.From) {
				return "", moveErr(ply, mv, fmt.Errorf(
					"%w: %s is only reachable from %s",
					board.ErrIllegalMove, mv.To, squareList(candidates)))
			}
			full = len(candidates) > 1
		}

		if full {
			sb.WriteByte(squareChar(mv.From))
		}
		sb.WriteByte(squareChar(mv.To))
		if mv.Promo != board.None {
			sb.WriteByte(promoChar(mv.Promo))
		}

		if err := b.Apply(mv); err != nil {
			return "", moveErr(ply, mv, err)
		}
	}
	return sb.String(), nil
}

func moveErr(ply int, mv board.Move, err error) error {
	return fmt.Errorf("move %d (%s): %w", ply/2+1, mv, err)
}

func containsSquare(squares []board.Square, sq board.Square) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}

func squareList(squares []board.Square) string {
	if len(squares) == 0 {
		return "nowhere"
	}
	parts := make([]string, len(squares))
	for i, s := range squares {
		parts[i] = s.String()
	}
	return strings.Join(parts, ", ")
}

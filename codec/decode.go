package codec

import (
	"fmt"

	"github.com/chesspack/chesspack/board"
)

// Decode reconstructs the move sequence from a string produced by Encode.
// The game is replayed from the standard starting position while parsing, so
// a destination-only token resolves against the same board state that let
// the encoder drop the origin. Errors wrap ErrFormat for streams that cannot
// be tokenized and board.ErrIllegalMove for streams that tokenize into
// impossible moves.
func Decode(s string) ([]board.Move, error) {
	b := board.New()
	var moves []board.Move

	for i := 0; i < len(s); {
		ply := len(moves)
		first, err := charSquare(s[i])
		if err != nil {
			return nil, decodeErr(ply, err)
		}
		i++

		var mv board.Move
		if b.PieceAt(first).Kind != board.None && b.PieceAt(first).Color == b.SideToMove() {
			// Origin of a full token; the destination must follow.
			if i >= len(s) {
				return nil, decodeErr(ply, fmt.Errorf(
					"%w: origin %s has no destination", ErrFormat, first))
			}
			to, err := charSquare(s[i])
			if err != nil {
				return nil, decodeErr(ply, err)
			}
			i++
			mv = board.Move{From: first, To: to}
		} else {
			// Destination-only token: the origin must be unique.
			candidates, err := b.CandidatesTo(first)
			if err != nil {
				return nil, decodeErr(ply, err)
			}
			switch len(candidates) {
			case 1:
				mv = board.Move{From: candidates[0], To: first}
			case 0:
				return nil, decodeErr(ply, fmt.Errorf(
					"%w: no %s piece reaches %s", ErrFormat, b.SideToMove(), first))
			default:
				return nil, decodeErr(ply, fmt.Errorf(
					"%w: %s is reachable from %s, origin required",
					ErrFormat, first, squareList(candidates)))
			}
		}

		if b.NeedsPromotion(mv) {
			if i >= len(s) {
				return nil, decodeErr(ply, fmt.Errorf(
					"%w: %s promotes but the promotion letter is missing", ErrFormat, mv))
			}
			promo, ok := charPromo(s[i])
			if !ok {
				return nil, decodeErr(ply, fmt.Errorf(
					"%w: %q is not a promotion letter (QRBK)", ErrFormat, s[i]))
			}
			i++
			mv.Promo = promo
		}

		if err := b.Apply(mv); err != nil {
			return nil, decodeErr(ply, err)
		}
		moves = append(moves, mv)
	}
	return moves, nil
}

func decodeErr(ply int, err error) error {
	return fmt.Errorf("move %d: %w", ply/2+1, err)
}

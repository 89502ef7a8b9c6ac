package board

import "fmt"

// NeedsPromotion reports whether mv moves a pawn on From to the first or
// last rank, i.e. whether a promotion kind is required. It does not check
// that the move itself is reachable.
func (b *Board) NeedsPromotion(mv Move) bool {
	if b.squares[mv.From].Kind != Pawn {
		return false
	}
	return mv.To.Rank() == 0 || mv.To.Rank() == 7
}

// Apply validates mv against the relaxed movement rules and mutates the
// board: capture, relocation, promotion replacement, en passant capture and
// castling are all handled here, then the side to move toggles. On error the
// board is unchanged.
func (b *Board) Apply(mv Move) error {
	p := b.squares[mv.From]
	if p.IsEmpty() {
		return fmt.Errorf("%w: no piece on %s", ErrIllegalMove, mv.From)
	}
	if p.Color != b.turn {
		return fmt.Errorf("%w: %s is not %s's piece", ErrIllegalMove, mv.From, b.turn)
	}
	if mv.From == mv.To {
		return fmt.Errorf("%w: %s does not leave its square", ErrIllegalMove, mv)
	}

	castling, err := b.IsCastling(mv)
	if err != nil {
		return err
	}
	if !castling {
		reachable := false
		for _, t := range b.reachable(mv.From, p) {
			if t == mv.To {
				reachable = true
				break
			}
		}
		if !reachable {
			return fmt.Errorf("%w: %s cannot reach %s from %s",
				ErrIllegalMove, p.Kind, mv.To, mv.From)
		}
	}

	needPromo := !castling && b.NeedsPromotion(mv)
	switch {
	case needPromo && mv.Promo == None:
		return fmt.Errorf("%w: %s promotes and needs a promotion kind", ErrIllegalMove, mv)
	case !needPromo && mv.Promo != None:
		return fmt.Errorf("%w: %s does not promote", ErrIllegalMove, mv)
	case needPromo && (mv.Promo == Pawn || mv.Promo == King):
		return fmt.Errorf("%w: cannot promote to %s", ErrIllegalMove, mv.Promo)
	}

	// Castling lands on the own rook's square; that is not a capture.
	captured := !castling && !b.squares[mv.To].IsEmpty()
	epCapture := p.Kind == Pawn && mv.To == b.epTarget && mv.From.File() != mv.To.File()

	b.updateCastlingRights(mv, p)

	switch {
	case castling:
		b.castle(mv)
	case epCapture:
		b.squares[mv.To] = p
		b.squares[mv.From] = Piece{}
		// The captured pawn sits beside the destination, on the origin's rank.
		b.squares[Sq(mv.To.File(), mv.From.Rank())] = Piece{}
		captured = true
	default:
		b.squares[mv.To] = p
		b.squares[mv.From] = Piece{}
		if mv.Promo != None {
			b.squares[mv.To] = Piece{mv.Promo, p.Color}
		}
	}

	b.epTarget = NoSquare
	if p.Kind == Pawn && abs(mv.From.Rank()-mv.To.Rank()) == 2 {
		b.epTarget = Sq(mv.From.File(), (mv.From.Rank()+mv.To.Rank())/2)
	}

	if p.Kind == Pawn || captured {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}
	if b.turn == Black {
		b.fullmove++
	}
	b.turn = b.turn.Other()
	return nil
}

// castle relocates king and rook for a move given as king-from -> rook-from.
// The king lands on the g file (kingside) or c file (queenside), the rook
// beside it on f or d, regardless of where the pair started.
func (b *Board) castle(mv Move) {
	color := b.squares[mv.From].Color
	rank := mv.To.Rank()
	b.squares[mv.From] = Piece{}
	b.squares[mv.To] = Piece{}
	if mv.To.File() > mv.From.File() {
		b.squares[Sq(6, rank)] = Piece{King, color}
		b.squares[Sq(5, rank)] = Piece{Rook, color}
	} else {
		b.squares[Sq(2, rank)] = Piece{King, color}
		b.squares[Sq(3, rank)] = Piece{Rook, color}
	}
}

// Rook starting squares, for castling-rights bookkeeping only.
var (
	wqRookStart = Sq(0, 0)
	wkRookStart = Sq(7, 0)
	bqRookStart = Sq(0, 7)
	bkRookStart = Sq(7, 7)
)

func (b *Board) updateCastlingRights(mv Move, p Piece) {
	if p.Kind == King {
		if p.Color == White {
			b.wkCastle, b.wqCastle = false, false
		} else {
			b.bkCastle, b.bqCastle = false, false
		}
	}
	for _, sq := range [2]Square{mv.From, mv.To} {
		switch sq {
		case wqRookStart:
			b.wqCastle = false
		case wkRookStart:
			b.wkCastle = false
		case bqRookStart:
			b.bqCastle = false
		case bkRookStart:
			b.bkCastle = false
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

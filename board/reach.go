package board

import "fmt"

var (
	straightDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonalDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	knightJumps  = [8][2]int{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
)

// ReachableFrom returns every square the piece on sq could move to under the
// relaxed movement rules for its kind. The result ignores checks and pins; it
// does include en passant interception and excludes castling (castling is
// detected separately, see IsCastling). Errors when sq is empty or holds a
// piece of the side not to move.
func (b *Board) ReachableFrom(sq Square) ([]Square, error) {
	p := b.squares[sq]
	if p.IsEmpty() {
		return nil, fmt.Errorf("%w: no piece on %s", ErrIllegalMove, sq)
	}
	if p.Color != b.turn {
		return nil, fmt.Errorf("%w: %s on %s but it is %s's turn",
			ErrIllegalMove, p.Color, sq, b.turn)
	}
	return b.reachable(sq, p), nil
}

// reachable is ReachableFrom without the ownership checks, for internal
// scans that already know the piece.
func (b *Board) reachable(sq Square, p Piece) []Square {
	switch p.Kind {
	case Pawn:
		return b.pawnReachable(sq, p.Color)
	case Knight:
		return b.jumperReachable(sq, p.Color, knightJumps[:])
	case Bishop:
		return b.sliderReachable(sq, p.Color, diagonalDirs[:])
	case Rook:
		return b.sliderReachable(sq, p.Color, straightDirs[:])
	case Queen:
		out := b.sliderReachable(sq, p.Color, straightDirs[:])
		return append(out, b.sliderReachable(sq, p.Color, diagonalDirs[:])...)
	case King:
		out := b.jumperReachable(sq, p.Color, straightDirs[:])
		return append(out, b.jumperReachable(sq, p.Color, diagonalDirs[:])...)
	}
	return nil
}

func (b *Board) pawnReachable(sq Square, c Color) []Square {
	dir := 1
	startRank := 1
	if c == Black {
		dir = -1
		startRank = 6
	}
	out := make([]Square, 0, 4)

	if fwd := sq.step(0, dir); fwd.Valid() && b.squares[fwd].IsEmpty() {
		out = append(out, fwd)
		if sq.Rank() == startRank {
			if dbl := sq.step(0, 2*dir); b.squares[dbl].IsEmpty() {
				out = append(out, dbl)
			}
		}
	}
	for _, df := range [2]int{-1, 1} {
		diag := sq.step(df, dir)
		if !diag.Valid() {
			continue
		}
		if b.hasColor(diag, c.Other()) || diag == b.epTarget {
			out = append(out, diag)
		}
	}
	return out
}

// jumperReachable covers the fixed-offset movers (knight, king).
func (b *Board) jumperReachable(sq Square, c Color, offsets [][2]int) []Square {
	out := make([]Square, 0, len(offsets))
	for _, o := range offsets {
		t := sq.step(o[0], o[1])
		if t.Valid() && !b.hasColor(t, c) {
			out = append(out, t)
		}
	}
	return out
}

func (b *Board) sliderReachable(sq Square, c Color, dirs [][2]int) []Square {
	out := make([]Square, 0, 8)
	for _, d := range dirs {
		for t := sq.step(d[0], d[1]); t.Valid(); t = t.step(d[0], d[1]) {
			p := b.squares[t]
			if p.IsEmpty() {
				out = append(out, t)
				continue
			}
			if p.Color != c {
				out = append(out, t)
			}
			break
		}
	}
	return out
}

// CandidatesTo returns every square holding a piece of the side to move whose
// ReachableFrom set contains target. Its cardinality decides whether a move
// to target can be written as a destination-only token. Errors when target
// holds a piece of the side to move (no move can capture an own piece;
// castling, which points at the own rook, never goes through here).
func (b *Board) CandidatesTo(target Square) ([]Square, error) {
	if b.hasColor(target, b.turn) {
		return nil, fmt.Errorf("%w: %s holds a %s piece",
			ErrIllegalMove, target, b.turn)
	}
	var out []Square
	for sq := Square(0); sq < 64; sq++ {
		p := b.squares[sq]
		if p.IsEmpty() || p.Color != b.turn {
			continue
		}
		for _, t := range b.reachable(sq, p) {
			if t == target {
				out = append(out, sq)
				break
			}
		}
	}
	return out, nil
}

// IsCastling reports whether mv looks like a castling move: the side to
// move's king on From and its own rook on To. A king move of two or more
// files along the back rank to a non-rook square is rejected instead, since
// pointing at the king's destination is ambiguous for Chess960 starting
// positions.
func (b *Board) IsCastling(mv Move) (bool, error) {
	if b.squares[mv.From].Kind != King {
		return false, nil
	}
	if dst := b.squares[mv.To]; dst.Kind == Rook && dst.Color == b.turn {
		return true, nil
	}
	ground := 0
	if b.turn == Black {
		ground = 7
	}
	fileDist := mv.From.File() - mv.To.File()
	if fileDist < 0 {
		fileDist = -fileDist
	}
	if fileDist > 1 && mv.From.Rank() == ground && mv.To.Rank() == ground {
		return false, fmt.Errorf(
			"%w: castle by moving the king onto its rook, not onto %s",
			ErrIllegalMove, mv.To)
	}
	return false, nil
}

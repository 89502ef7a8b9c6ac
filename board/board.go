// Package board models chess piece placement and geometric move
// reachability for a single game replayed move by move.
//
// Reachability is deliberately relaxed: it answers "which squares can this
// piece's movement pattern reach", ignoring checks and pins entirely. The
// compact codec in package codec only needs that answer to be computed the
// same way while encoding and while decoding, and a check-aware model would
// change which moves compress to a single character. Treat the relaxation as
// a frozen wire-format invariant, not as something to fix.
package board

import (
	"errors"
	"strconv"
	"strings"
)

// ErrIllegalMove reports a move or query inconsistent with the current board
// state: wrong side, empty origin, unreachable destination, bad promotion.
// Inspect with errors.Is.
var ErrIllegalMove = errors.New("illegal move")

// Board holds piece placement and side to move for one game. A Board is
// owned by a single encode or decode run; it is not safe for concurrent use.
type Board struct {
	squares [64]Piece
	turn    Color

	// epTarget is the square a double-stepped pawn skipped over on the
	// previous move, or NoSquare. An enemy pawn reaching it captures en
	// passant.
	epTarget Square

	// Castling rights in FEN order. Cleared when the king or the relevant
	// rook leaves its starting square, or the rook square is captured.
	// Rights only feed FEN output; reachability never consults them.
	wkCastle, wqCastle bool
	bkCastle, bqCastle bool

	halfmoveClock uint
	fullmove      uint
}

var backRank = [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// New returns a board set up with the standard starting position,
// white to move.
func New() *Board {
	b := &Board{
		epTarget: NoSquare,
		wkCastle: true, wqCastle: true,
		bkCastle: true, bqCastle: true,
		fullmove: 1,
	}
	for file := 0; file < 8; file++ {
		b.squares[Sq(file, 0)] = Piece{backRank[file], White}
		b.squares[Sq(file, 1)] = Piece{Pawn, White}
		b.squares[Sq(file, 6)] = Piece{Pawn, Black}
		b.squares[Sq(file, 7)] = Piece{backRank[file], Black}
	}
	return b
}

// Reset restores the standard starting position, white to move. Equivalent
// to replacing the board with New().
func (b *Board) Reset() {
	*b = *New()
}

// PieceAt returns the piece on sq (zero Piece for an empty square).
func (b *Board) PieceAt(sq Square) Piece {
	return b.squares[sq]
}

// SideToMove returns the color whose turn it is.
func (b *Board) SideToMove() Color {
	return b.turn
}

// EnPassantTarget returns the current en passant intercept square,
// or NoSquare.
func (b *Board) EnPassantTarget() Square {
	return b.epTarget
}

// hasColor reports whether sq holds a piece of color c.
func (b *Board) hasColor(sq Square, c Color) bool {
	p := b.squares[sq]
	return !p.IsEmpty() && p.Color == c
}

// FEN renders the position as a six-field FEN string.
func (b *Board) FEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.squares[Sq(file, rank)]
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(fenPieceChars[p])
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.turn == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	if !b.wkCastle && !b.wqCastle && !b.bkCastle && !b.bqCastle {
		sb.WriteByte('-')
	} else {
		if b.wkCastle {
			sb.WriteByte('K')
		}
		if b.wqCastle {
			sb.WriteByte('Q')
		}
		if b.bkCastle {
			sb.WriteByte('k')
		}
		if b.bqCastle {
			sb.WriteByte('q')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(b.epTarget.String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatUint(uint64(b.halfmoveClock), 10))
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatUint(uint64(b.fullmove), 10))
	return sb.String()
}

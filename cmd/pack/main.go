// Command pack compresses chess games into compact URL-safe strings, one
// game per output line. Input is a PGN file (plain or .pgn.zst) or a single
// game given as UCI movetext.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/freeeve/pgn/v3"
	"github.com/klauspost/compress/zstd"

	"github.com/chesspack/chesspack/board"
	"github.com/chesspack/chesspack/codec"
	"github.com/chesspack/chesspack/internal/logx"
)

func main() {
	var (
		pgnPath  = flag.String("pgn", "", "Path to PGN file (supports .pgn.zst)")
		moves    = flag.String("moves", "", "Single game as UCI movetext (e.g. \"e2e4 e7e5\")")
		outPath  = flag.String("out", "-", "Output path (- = stdout, .zst compresses)")
		maxGames = flag.Int("max-games", 0, "Maximum games to encode (0 = unlimited)")
	)
	flag.Parse()

	if (*pgnPath == "") == (*moves == "") {
		fmt.Fprintln(os.Stderr, "Usage: pack --pgn <file.pgn[.zst]> | --moves \"e2e4 ...\" [options]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	logger := logx.NewLogger()

	out, closeOut, err := openOutput(*outPath)
	if err != nil {
		logger.Fatal().Err(err).Str("out", *outPath).Msg("open output")
	}
	defer closeOut()

	if *moves != "" {
		encoded, err := encodeMovetext(*moves)
		if err != nil {
			logger.Fatal().Err(err).Msg("encode movetext")
		}
		fmt.Fprintln(out, encoded)
		return
	}

	logger.Info().Str("pgn", *pgnPath).Str("out", *outPath).Msg("starting pack")
	start := time.Now()
	var encoded, failed int

	parser := pgn.Games(*pgnPath)
	for game := range parser.Games {
		s, err := codec.Encode(movesFromPGN(game))
		if err == nil {
			fmt.Fprintln(out, s)
			encoded++
		} else {
			failed++
			logger.Warn().Err(err).
				Str("white", game.Tags["White"]).
				Str("black", game.Tags["Black"]).
				Msg("skipping game")
		}
		if *maxGames > 0 && encoded >= *maxGames {
			parser.Stop()
			break
		}
	}
	if err := parser.Err(); err != nil {
		logger.Fatal().Err(err).Msg("parse pgn")
	}

	logger.Info().
		Int("games", encoded).
		Int("failed", failed).
		Dur("elapsed", time.Since(start)).
		Msg("pack complete")
}

func encodeMovetext(movetext string) (string, error) {
	var gameMoves []board.Move
	for _, tok := range strings.Fields(movetext) {
		mv, err := board.ParseMove(tok)
		if err != nil {
			return "", err
		}
		gameMoves = append(gameMoves, mv)
	}
	return codec.Encode(gameMoves)
}

// movesFromPGN converts a parsed game's moves to the codec's representation:
// castling becomes king-from -> rook-from, promotion pieces map across.
func movesFromPGN(game *pgn.Game) []board.Move {
	out := make([]board.Move, 0, len(game.Moves))
	for _, mv := range game.Moves {
		from := board.Square(int(mv.From))
		to := board.Square(int(mv.To))
		if mv.Flags == 4 {
			// Castling: the parser gives the king's destination, the codec
			// wants the rook's starting square.
			rookFile := 0
			if mv.To > mv.From {
				rookFile = 7
			}
			to = board.Sq(rookFile, from.Rank())
		}
		bm := board.Move{From: from, To: to}
		switch mv.Promo {
		case pgn.PromoQueen:
			bm.Promo = board.Queen
		case pgn.PromoRook:
			bm.Promo = board.Rook
		case pgn.PromoBishop:
			bm.Promo = board.Bishop
		case pgn.PromoKnight:
			bm.Promo = board.Knight
		}
		out = append(out, bm)
	}
	return out
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	if strings.HasSuffix(path, ".zst") {
		zw, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			f.Close()
			return nil, nil, err
		}
		return zw, func() {
			zw.Close()
			f.Close()
		}, nil
	}
	return f, func() { f.Close() }, nil
}

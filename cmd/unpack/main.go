// Command unpack expands compact game strings (one per line, plain or .zst)
// back into UCI movetext, optionally with the final position's FEN.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/chesspack/chesspack/board"
	"github.com/chesspack/chesspack/codec"
	"github.com/chesspack/chesspack/internal/logx"
)

func main() {
	var (
		inPath  = flag.String("in", "-", "Input path (- = stdin, .zst decompresses)")
		withFEN = flag.Bool("fen", false, "Append the final position's FEN to each line")
	)
	flag.Parse()

	logger := logx.NewLogger()

	in, closeIn, err := openInput(*inPath)
	if err != nil {
		logger.Fatal().Err(err).Str("in", *inPath).Msg("open input")
	}
	defer closeIn()

	start := time.Now()
	var decoded, failed, lineNum int

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		moves, err := codec.Decode(line)
		if err != nil {
			failed++
			logger.Warn().Err(err).Int("line", lineNum).Msg("skipping game")
			continue
		}
		fmt.Print(movetext(moves))
		if *withFEN {
			fmt.Printf("\t%s", finalFEN(moves))
		}
		fmt.Println()
		decoded++
	}
	if err := scanner.Err(); err != nil {
		logger.Fatal().Err(err).Msg("read input")
	}

	logger.Info().
		Int("games", decoded).
		Int("failed", failed).
		Dur("elapsed", time.Since(start)).
		Msg("unpack complete")
}

func movetext(moves []board.Move) string {
	parts := make([]string, len(moves))
	for i, mv := range moves {
		parts[i] = mv.String()
	}
	return strings.Join(parts, " ")
}

// finalFEN replays an already-decoded (hence valid) game for its end position.
func finalFEN(moves []board.Move) string {
	b := board.New()
	for _, mv := range moves {
		if err := b.Apply(mv); err != nil {
			return "?"
		}
	}
	return b.FEN()
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	if strings.HasSuffix(path, ".zst") {
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, nil, err
		}
		return zr, func() {
			zr.Close()
			f.Close()
		}, nil
	}
	return f, func() { f.Close() }, nil
}

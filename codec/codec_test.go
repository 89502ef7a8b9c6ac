package codec_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/chesspack/chesspack/board"
	"github.com/chesspack/chesspack/codec"
)

func parseMoves(t *testing.T, movetext string) []board.Move {
	t.Helper()
	var moves []board.Move
	for _, tok := range strings.Fields(movetext) {
		mv, err := board.ParseMove(tok)
		if err != nil {
			t.Fatalf("parse %q: %v", tok, err)
		}
		moves = append(moves, mv)
	}
	return moves
}

// Golden encode/decode pairs. The encoded column writes one token per move,
// space separated for readability; the wire form has no separators.
var goldenGames = []struct {
	name    string
	moves   string
	encoded string
}{
	{"empty game", "", ""},
	{"ambiguous destination needs two chars", "c2c3", "KS"},
	{"unique destination needs one char", "c2c4", "a"},
	{"king's pawn opening", "e2e4", "c"},
	{
		// Single step, double step, diagonal capture, en passant, promotion.
		"every pawn move kind",
		"a2a4 h7h6 a4a5 b7b5 a5b6 h6h5 b6c7 h5h4 g2g3 h4g3 c7d8q",
		"Y 3v g h p n y f W W 7Q",
	},
	{
		// Castling is written king-from rook-from, always in full form.
		"kingside and queenside castling",
		"d2d3 g7g6 c1e3 f8g7 b1c3 g8f6 d1d2 e8h8 e1a1",
		"T u CU 2 BS -t DL 8_ EA",
	},
}

func TestEncodeGolden(t *testing.T) {
	for _, tt := range goldenGames {
		t.Run(tt.name, func(t *testing.T) {
			got, err := codec.Encode(parseMoves(t, tt.moves))
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			want := strings.ReplaceAll(tt.encoded, " ", "")
			if got != want {
				t.Errorf("Encode = %q, want %q", got, want)
			}
		})
	}
}

func TestDecodeGolden(t *testing.T) {
	for _, tt := range goldenGames {
		t.Run(tt.name, func(t *testing.T) {
			got, err := codec.Decode(strings.ReplaceAll(tt.encoded, " ", ""))
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if diff := cmp.Diff(parseMoves(t, tt.moves), got); diff != "" {
				t.Errorf("moves mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	games := []string{
		"e2e4",
		"e2e4 e7e5 g1f3 b8c6 f1b5 a7a6 b5a4 g8f6 e1h1",
		"d2d4 d7d5 b1c3 b8c6 c1f4 c8f5 d1d2 d8d7 e1a1 e8a8",
		"e2e4 a7a6 e4e5 d7d5 e5d6 e7d6", // en passant
		"a2a4 b7b5 a4b5 h7h6 b5b6 h6h5 b6b7 h5h4 b7a8r",
	}

	for _, game := range games {
		t.Run(game, func(t *testing.T) {
			moves := parseMoves(t, game)
			encoded, err := codec.Encode(moves)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			decoded, err := codec.Decode(encoded)
			if err != nil {
				t.Fatalf("Decode(%q): %v", encoded, err)
			}
			if diff := cmp.Diff(moves, decoded); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncodeDeterministic(t *testing.T) {
	moves := parseMoves(t, "e2e4 e7e5 g1f3 b8c6 f1b5 a7a6")
	first, err := codec.Encode(moves)
	if err != nil {
		t.Fatal(err)
	}
	second, err := codec.Encode(moves)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("Encode not deterministic: %q vs %q", first, second)
	}
}

func TestAlphabetClosure(t *testing.T) {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
	encoded, err := codec.Encode(parseMoves(t,
		"a2a4 h7h6 a4a5 b7b5 a5b6 h6h5 b6c7 h5h4 g2g3 h4g3 c7d8q"))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < len(encoded); i++ {
		if !strings.ContainsRune(alphabet, rune(encoded[i])) {
			t.Errorf("encoded byte %q outside the url-safe alphabet", encoded[i])
		}
	}
}

func TestPromotionKinds(t *testing.T) {
	prefix := "a2a4 b7b5 a4b5 h7h6 b5b6 h6h5 b6b7 h5h4"
	base, err := codec.Encode(parseMoves(t, prefix))
	if err != nil {
		t.Fatal(err)
	}

	kinds := []struct {
		uci    string
		letter string
	}{
		{"b7a8q", "Q"},
		{"b7a8r", "R"},
		{"b7a8b", "B"},
		{"b7a8n", "K"}, // knight promotes with 'K' on the wire
	}
	for _, tt := range kinds {
		t.Run(tt.uci, func(t *testing.T) {
			moves := parseMoves(t, prefix+" "+tt.uci)
			encoded, err := codec.Encode(moves)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			// b7 is the only piece reaching a8, so the final token is the
			// destination plus exactly one promotion letter.
			want := base + "4" + tt.letter
			if encoded != want {
				t.Errorf("Encode = %q, want %q", encoded, want)
			}
			decoded, err := codec.Decode(encoded)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if diff := cmp.Diff(moves, decoded); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncodeRejectsIllegalMoves(t *testing.T) {
	tests := []struct {
		name  string
		moves string
	}{
		{"origin cannot reach destination", "e2e5"},
		{"empty origin", "e4e5"},
		{"opponent's piece", "e7e5"},
		{"castle aimed at the king destination", "e2e4 e7e5 g1f3 b8c6 f1c4 f8c5 e1g1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Encode(parseMoves(t, tt.moves))
			if !errors.Is(err, board.ErrIllegalMove) {
				t.Errorf("Encode error = %v, want ErrIllegalMove", err)
			}
		})
	}
}

func TestDecodeFormatErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"byte outside the alphabet", "="},
		{"space is not url-safe", "c "},
		{"destination reachable by nothing", "g"},       // a5 from the start
		{"destination reachable by two pieces", "S"},    // c3: b1 and c2
		{"origin without destination", "K"},             // c2 holds a white pawn
		{"missing promotion letter", "Y3vghpnyfWW7"},    // c7d8 without a kind
		{"invalid promotion letter", "Y3vghpnyfWW7X"},   // X names h3, not a kind
		{"trailing garbage after a game", "KS="},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Decode(tt.input)
			if !errors.Is(err, codec.ErrFormat) {
				t.Errorf("Decode(%q) error = %v, want ErrFormat", tt.input, err)
			}
		})
	}
}

func TestDecodeEmpty(t *testing.T) {
	moves, err := codec.Decode("")
	if err != nil {
		t.Fatalf("Decode(\"\"): %v", err)
	}
	if len(moves) != 0 {
		t.Errorf("Decode(\"\") = %v, want no moves", moves)
	}
}

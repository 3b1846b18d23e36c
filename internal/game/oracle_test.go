package game

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/corentings/chess/v2"
)

// TestRandomGamesMatchReference plays seeded random games and compares every
// position's legal moves and result with an independent rules implementation.
func TestRandomGamesMatchReference(t *testing.T) {
	games := 20
	if testing.Short() {
		games = 4
	}
	for seed := int64(1); seed <= int64(games); seed++ {
		r := rand.New(rand.NewSource(seed))
		g := New()
		for ply := 0; ply < 300; ply++ {
			fen := g.Position.ToFEN()
			opt, err := chess.FEN(fen)
			if err != nil {
				t.Fatalf("seed %d: reference rejects %s: %v", seed, fen, err)
			}
			ref := chess.NewGame(opt)

			want := make([]string, 0, 40)
			for _, m := range ref.ValidMoves() {
				want = append(want, chess.UCINotation{}.Encode(ref.Position(), &m))
			}
			sort.Strings(want)

			moves := g.Position.GenerateLegalMoves()
			got := make([]string, len(moves))
			for i, m := range moves {
				got[i] = m.String()
			}
			sort.Strings(got)

			if strings.Join(got, " ") != strings.Join(want, " ") {
				t.Fatalf("seed %d ply %d %s:\n got %v\nwant %v", seed, ply, fen, got, want)
			}

			switch ref.Method() {
			case chess.Checkmate:
				wantStatus := WhiteWins
				if ref.Outcome() == chess.BlackWon {
					wantStatus = BlackWins
				}
				if g.Status != wantStatus {
					t.Fatalf("seed %d %s: status %v, want %v", seed, fen, g.Status, wantStatus)
				}
			case chess.Stalemate:
				if g.Status != Draw {
					t.Fatalf("seed %d %s: status %v, want draw", seed, fen, g.Status)
				}
			default:
				if len(moves) > 0 && g.Status != InProgress {
					t.Fatalf("seed %d %s: status %v, want in_progress", seed, fen, g.Status)
				}
			}

			if g.Status.IsOver() {
				break
			}
			if err := g.ApplyMove(moves[r.Intn(len(moves))]); err != nil {
				t.Fatalf("seed %d: %v", seed, err)
			}
		}
	}
}

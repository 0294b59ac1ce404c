// Copyright © 2022 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package board_test

import (
	"testing"

	"nemo.dev/x/nemo/board"
	"nemo.dev/x/nemo/move"
)

// containsMove reports whether a move list contains a move matching the
// given UCI long-algebraic string.
func containsMove(moves board.List, uci string) bool {
	for _, m := range moves {
		if m.String() == uci {
			return true
		}
	}
	return false
}

func TestUnmakeMoveRestoresPosition(t *testing.T) {
	fens := []string{
		board.StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbqkbnr/ppp2ppp/8/2Ppp3/8/8/PP1PPPPP/RNBQKBNR w KQkq d6 0 3",
	}

	for _, fen := range fens {
		p, err := board.NewFromFEN(fen)
		if err != nil {
			t.Fatalf("%s: %v", fen, err)
		}

		startHash := p.Hash
		for _, m := range p.GenerateMoves() {
			before := p.FEN()
			beforeHash := p.Hash

			p.MakeMove(m)
			p.UnmakeMove()

			if got := p.FEN(); got != before {
				t.Errorf("%s: move %s: unmake left %s, want %s", fen, m, got, before)
			}
			if p.Hash != beforeHash {
				t.Errorf("%s: move %s: unmake left hash %016X, want %016X", fen, m, p.Hash, beforeHash)
			}
		}

		if p.Hash != startHash {
			t.Errorf("%s: hash drifted across generation", fen)
		}
	}
}

func TestEnPassantLegality(t *testing.T) {
	// Black's f-pawn just double-pushed to f5; white's e5 pawn may
	// capture it en passant, landing on f6.
	p, err := board.NewFromFEN("rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3")
	if err != nil {
		t.Fatal(err)
	}

	moves := p.GenerateMoves()
	if !containsMove(moves, "e5f6") {
		t.Errorf("expected legal en-passant capture e5f6, moves: %v", moves)
	}
}

func TestEnPassantPinnedDiscoveredCheck(t *testing.T) {
	// The classic horizontal-discovered-check en-passant trap: capturing
	// en passant removes both pawns from the fifth rank, exposing white's
	// own king to the black rook on that same rank.
	p, err := board.NewFromFEN("4k3/8/8/r2Pp1K1/8/8/8/8 w - e6 0 1")
	if err != nil {
		t.Fatal(err)
	}

	if containsMove(p.GenerateMoves(), "d5e6") {
		t.Errorf("en-passant capture d5e6 should be illegal (discovered check), moves: %v", p.GenerateMoves())
	}
}

func TestPinnedPieceRestrictedToRay(t *testing.T) {
	// The white bishop on e3 is pinned to the king on e1 by the black
	// rook on e8, so none of its moves may leave the e-file; a bishop
	// has no move along a file, so it has no legal move at all.
	p, err := board.NewFromFEN("4r1k1/8/8/8/8/4B3/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	moves := p.GenerateMoves()
	for _, m := range moves {
		if m.Origin().String() != "e3" {
			continue
		}
		if m.Dest().File() != m.Origin().File() {
			t.Errorf("pinned bishop escaped its pin with move %s", m)
		}
	}
}

func TestPinnedKnightHasNoMoves(t *testing.T) {
	// A pinned knight can never move: any knight jump leaves the ray.
	p, err := board.NewFromFEN("4k3/4r3/8/8/8/8/4N3/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	for _, m := range p.GenerateMoves() {
		if m.Origin().String() == "e2" {
			t.Errorf("pinned knight escaped its pin with move %s", m)
		}
	}
}

func TestCastlingThroughCheckIsIllegal(t *testing.T) {
	// The f1 square the white king must cross to castle kingside is
	// attacked by the black rook on f7, so O-O must not be generated.
	p, err := board.NewFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	blocked, err := board.NewFromFEN("4k3/5r2/8/8/8/8/8/R3K2R w KQ - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	if !containsMove(p.GenerateMoves(), "e1g1") {
		t.Errorf("expected castling e1g1 to be legal when nothing attacks f1/g1")
	}
	if containsMove(blocked.GenerateMoves(), "e1g1") {
		t.Errorf("castling e1g1 should be illegal while f1 is attacked")
	}
}

func TestMateInOneHasNoLegalMoves(t *testing.T) {
	// Back-rank mate: black to move, mated.
	p, err := board.NewFromFEN("6k1/5ppp/8/8/8/8/8/R3K2R w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	p.MakeMove(mustFindMove(t, p, "a1a8"))

	if !p.InCheck() {
		t.Fatal("expected black king to be in check after Ra8#")
	}
	if len(p.GenerateMoves()) != 0 {
		t.Errorf("expected no legal moves after mate, got %v", p.GenerateMoves())
	}
}

func mustFindMove(t *testing.T, p *board.Position, uci string) move.Move {
	t.Helper()
	for _, m := range p.GenerateMoves() {
		if m.String() == uci {
			return m
		}
	}
	t.Fatalf("move %s not found among legal moves", uci)
	return move.Null
}

// TestHashMatchesRecomputation plays scripted lines covering captures,
// castling, en passant and promotion, checking after every move that
// the incrementally maintained hash equals the hash computed from
// scratch off the serialized position.
func TestHashMatchesRecomputation(t *testing.T) {
	tests := []struct {
		fen   string
		moves []string
	}{
		{
			fen: board.StartFEN,
			moves: []string{
				"e2e4", "d7d5", "e4d5", "g8f6", "g1f3", "f6d5",
				"f1c4", "e7e6", "e1g1", "f8e7", "d2d4", "e8g8",
			},
		},
		{
			// en-passant capture
			fen:   "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
			moves: []string{"e5f6", "g7f6"},
		},
		{
			// promotion with and without capture
			fen:   "1n2k3/P7/8/8/8/8/7p/4K1N1 w - - 0 1",
			moves: []string{"a7a8q", "h2g1r"},
		},
	}

	for _, test := range tests {
		p, err := board.NewFromFEN(test.fen)
		if err != nil {
			t.Fatalf("%s: %v", test.fen, err)
		}

		for _, uci := range test.moves {
			p.MakeMove(mustFindMove(t, p, uci))

			fresh, err := board.NewFromFEN(p.FEN())
			if err != nil {
				t.Fatalf("after %s: %v", uci, err)
			}

			if fresh.Hash != p.Hash {
				t.Errorf("after %s: incremental hash %016X, from scratch %016X", uci, p.Hash, fresh.Hash)
			}
		}
	}
}

// TestLegalMovesLeaveKingSafe makes every generated move and verifies
// the moving side's king is never left attackable.
func TestLegalMovesLeaveKingSafe(t *testing.T) {
	fens := []string{
		board.StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}

	for _, fen := range fens {
		p, err := board.NewFromFEN(fen)
		if err != nil {
			t.Fatalf("%s: %v", fen, err)
		}

		mover := p.SideToMove
		for _, m := range p.GenerateMoves() {
			p.MakeMove(m)
			if p.InCheckOf(mover) {
				t.Errorf("%s: move %s leaves own king in check", fen, m)
			}
			p.UnmakeMove()
		}
	}
}

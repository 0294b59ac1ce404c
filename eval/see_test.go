// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
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

package eval_test

import (
	"testing"

	"nemo.dev/x/nemo/board"
	"nemo.dev/x/nemo/eval"
	"nemo.dev/x/nemo/internal/piece"
	"nemo.dev/x/nemo/move"
)

func mustMove(t *testing.T, p *board.Position, uci string) move.Move {
	t.Helper()
	m, err := p.MoveFromUCI(uci)
	if err != nil {
		t.Fatalf("move %s: %v", uci, err)
	}
	return m
}

func TestSEE(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		move      string
		threshold eval.Eval
		want      bool
	}{
		{
			name:      "free pawn",
			fen:       "4k3/8/8/4p3/3P4/8/8/4K3 w - - 0 1",
			move:      "d4e5",
			threshold: 0,
			want:      true,
		},
		{
			name:      "queen takes defended pawn",
			fen:       "4k3/5p2/4p3/8/8/8/4Q3/4K3 w - - 0 1",
			move:      "e2e6",
			threshold: 0,
			want:      false,
		},
		{
			name:      "even rook exchange",
			fen:       "4k3/4r3/8/8/8/8/4R3/4K3 w - - 0 1",
			move:      "e2e7",
			threshold: 0,
			want:      true,
		},
		{
			name:      "pawn takes knight defended by pawn",
			fen:       "4k3/5p2/4n3/3P4/8/8/8/4K3 w - - 0 1",
			move:      "d5e6",
			threshold: 0,
			want:      true, // knight for a pawn is winning even with the recapture
		},
		{
			name:      "xray recapture wins the exchange",
			fen:       "4k3/4q3/4r3/8/8/8/4R3/4RK2 w - - 0 1",
			move:      "e2e6",
			threshold: 0,
			want:      true, // RxR QxR RxQ nets rook and queen for a rook
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p, err := board.NewFromFEN(test.fen)
			if err != nil {
				t.Fatal(err)
			}

			m := mustMove(t, p, test.move)
			if got := eval.SEE(p, m, test.threshold); got != test.want {
				t.Errorf("SEE(%s, %d) = %v, want %v", test.move, test.threshold, got, test.want)
			}
		})
	}
}

// seeCeiling mirrors the exchange values SEE trades at, used to state
// the upper-bound property below without exporting them.
var seeCeiling = map[piece.Type]eval.Eval{
	piece.Pawn:   100,
	piece.Knight: 400,
	piece.Bishop: 400,
	piece.Rook:   600,
	piece.Queen:  1000,
}

// TestSEEBoundedByVictim checks that no capture can ever be judged
// better than winning its victim outright.
func TestSEEBoundedByVictim(t *testing.T) {
	p, err := board.NewFromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	for _, m := range p.GenerateCaptures() {
		victim := p.PieceAt(m.Dest()).Type()
		if m.IsEnPassant() {
			victim = piece.Pawn
		}

		if eval.SEE(p, m, seeCeiling[victim]+1) {
			t.Errorf("SEE(%s) exceeds the victim's own value", m)
		}
	}
}

func BenchmarkSEE(b *testing.B) {
	p, err := board.NewFromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		b.Fatal(err)
	}
	captures := p.GenerateCaptures()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, m := range captures {
			eval.SEE(p, m, 0)
		}
	}
}

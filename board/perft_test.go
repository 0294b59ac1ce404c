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
)

// perftCase is one of the standard perft reference positions used to
// validate a legal move generator: https://www.chessprogramming.org/Perft_Results
type perftCase struct {
	name  string
	fen   string
	nodes []uint64 // indexed by depth - 1
}

var perftCases = []perftCase{
	{
		name:  "startpos",
		fen:   board.StartFEN,
		nodes: []uint64{20, 400, 8902, 197281, 4865609},
	},
	{
		name:  "kiwipete",
		fen:   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		nodes: []uint64{48, 2039, 97862, 4085603},
	},
	{
		name:  "position3",
		fen:   "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		nodes: []uint64{14, 191, 2812, 43238},
	},
	{
		name:  "position4",
		fen:   "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		nodes: []uint64{6, 264, 9467},
	},
	{
		name:  "position5",
		fen:   "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		nodes: []uint64{44, 1486, 62379},
	},
	{
		name:  "position6",
		fen:   "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
		nodes: []uint64{46, 2079, 89890},
	},
}

func TestPerft(t *testing.T) {
	for _, c := range perftCases {
		t.Run(c.name, func(t *testing.T) {
			for depth, want := range c.nodes {
				depth++ // nodes is indexed by depth-1

				if testing.Short() && want > 1_000_000 {
					continue
				}

				p, err := board.NewFromFEN(c.fen)
				if err != nil {
					t.Fatalf("%s: %v", c.fen, err)
				}

				if got := p.Perft(depth); got != want {
					t.Errorf("%s: perft(%d) = %d, want %d", c.name, depth, got, want)
				}
			}
		})
	}
}

func BenchmarkPerft(b *testing.B) {
	p, err := board.NewFromFEN(board.StartFEN)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Perft(4)
	}
}

func BenchmarkMakeUnmake(b *testing.B) {
	p, err := board.NewFromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		b.Fatal(err)
	}
	moves := p.GenerateMoves()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := moves[i%len(moves)]
		p.MakeMove(m)
		p.UnmakeMove()
	}
}

func BenchmarkGenerateMoves(b *testing.B) {
	p, err := board.NewFromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.GenerateMoves()
	}
}

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

func TestFEN(t *testing.T) {
	tests := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2",
		"r1bqk1nr/pppp1ppp/2n5/2b1p3/2B1P3/5N2/PPPP1PPP/RNBQ1RK1 b kq - 5 4",
		"rnbq1rk1/ppp1bppp/4pn2/3p2B1/2PP4/2N2N2/PP2PPPP/R2QKB1R w KQ - 6 6",
		"rnbqkbnr/ppp2ppp/8/2Ppp3/8/8/PP1PPPPP/RNBQKBNR w KQkq d6 0 3",
		"rnbqkbnr/pp1ppppp/8/8/2pPP3/5N2/PPP2PPP/RNBQKB1R b KQkq d3 0 3",
		"rn3rk1/pbp1qpp1/1p5p/3p4/3P4/3BPN2/PP3PPP/R2Q1RK1 b - - 3 12",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	}

	for n, test := range tests {
		t.Run(test, func(t *testing.T) {
			b, err := board.NewFromFEN(test)
			if err != nil {
				t.Fatalf("test %d: %v", n, err)
			}

			if got := b.FEN(); got != test {
				t.Errorf("test %d: wrong fen\nwant %s\ngot  %s\n", n, test, got)
			}
		})
	}
}

func TestNewDefaultsToStartingPosition(t *testing.T) {
	b := board.New()
	if got := b.FEN(); got != board.StartFEN {
		t.Errorf("board.New(): got fen %s, want %s", got, board.StartFEN)
	}
}

func TestInvalidFEN(t *testing.T) {
	tests := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
	}

	for _, test := range tests {
		if _, err := board.NewFromFEN(test); err == nil {
			t.Errorf("NewFromFEN(%q): want error, got nil", test)
		}
	}
}

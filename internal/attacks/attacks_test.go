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

package attacks_test

import (
	"testing"

	"nemo.dev/x/nemo/internal/attacks"
	"nemo.dev/x/nemo/internal/bitboard"
	"nemo.dev/x/nemo/internal/piece"
	"nemo.dev/x/nemo/internal/square"
	"nemo.dev/x/nemo/internal/util"
)

// walk is the brute-force slider oracle the magic tables are checked
// against: step in each direction until the edge or the first blocker,
// inclusive.
func walk(s square.Square, occ bitboard.Board, directions [4][2]int) bitboard.Board {
	var b bitboard.Board

	for _, d := range directions {
		f, r := int(s.File())+d[0], int(s.Rank())+d[1]

		for f >= 0 && f <= 7 && r >= 0 && r <= 7 {
			cur := square.New(square.File(f), square.Rank(r))
			b.Set(cur)

			if occ.IsSet(cur) {
				break
			}

			f += d[0]
			r += d[1]
		}
	}

	return b
}

var rookDirections = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var bishopDirections = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

func TestSliderAttacksMatchBruteForce(t *testing.T) {
	var rand util.PRNG
	rand.Seed(0xBEEF)

	for i := 0; i < 1000; i++ {
		occ := bitboard.Board(rand.SparseUint64())

		for s := square.A1; s <= square.H8; s++ {
			if got, want := attacks.Rook(s, occ), walk(s, occ, rookDirections); got != want {
				t.Fatalf("rook attacks from %s with occ %d:\ngot\n%s\nwant\n%s", s, occ, got, want)
			}
			if got, want := attacks.Bishop(s, occ), walk(s, occ, bishopDirections); got != want {
				t.Fatalf("bishop attacks from %s with occ %d:\ngot\n%s\nwant\n%s", s, occ, got, want)
			}
			if got, want := attacks.Queen(s, occ), attacks.Rook(s, occ)|attacks.Bishop(s, occ); got != want {
				t.Fatalf("queen attacks from %s are not the rook-bishop union", s)
			}
		}
	}
}

func TestJumpAttacks(t *testing.T) {
	// a knight in the middle of the board reaches 8 squares, a cornered
	// one only 2; kings reach 8 and 3 respectively
	if got := attacks.Knight[square.E4].Count(); got != 8 {
		t.Errorf("knight on e4 attacks %d squares, want 8", got)
	}
	if got := attacks.Knight[square.A1].Count(); got != 2 {
		t.Errorf("knight on a1 attacks %d squares, want 2", got)
	}
	if got := attacks.King[square.E4].Count(); got != 8 {
		t.Errorf("king on e4 attacks %d squares, want 8", got)
	}
	if got := attacks.King[square.A1].Count(); got != 3 {
		t.Errorf("king on a1 attacks %d squares, want 3", got)
	}
}

func TestPawnAttacks(t *testing.T) {
	white := attacks.Pawn[piece.White][square.E4]
	if !white.IsSet(square.D5) || !white.IsSet(square.F5) || white.Count() != 2 {
		t.Errorf("white pawn on e4 attacks:\n%s", white)
	}

	// file-edge clipping
	edge := attacks.Pawn[piece.White][square.A4]
	if !edge.IsSet(square.B5) || edge.Count() != 1 {
		t.Errorf("white pawn on a4 attacks:\n%s", edge)
	}
}

func TestLineAndBetween(t *testing.T) {
	// aligned pair: Line holds the full shared line, Between only the
	// open segment
	line := attacks.Line[square.A1][square.H8]
	if !line.IsSet(square.A1) || !line.IsSet(square.H8) || !line.IsSet(square.D4) || line.Count() != 8 {
		t.Errorf("Line[a1][h8]:\n%s", line)
	}

	between := attacks.Between[square.A1][square.H8]
	if between.IsSet(square.A1) || between.IsSet(square.H8) || !between.IsSet(square.D4) || between.Count() != 6 {
		t.Errorf("Between[a1][h8]:\n%s", between)
	}

	if attacks.Between[square.E4][square.E5] != bitboard.Empty {
		t.Error("Between of adjacent squares should be empty")
	}

	// unaligned pair: both masks are empty
	if attacks.Line[square.A1][square.B3] != bitboard.Empty ||
		attacks.Between[square.A1][square.B3] != bitboard.Empty {
		t.Error("unaligned pair should have empty line and between masks")
	}
}

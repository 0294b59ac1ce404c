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

package search

import (
	"nemo.dev/x/nemo/internal/zobrist"
	"nemo.dev/x/nemo/move"
)

// PV reconstructs the principal variation of the position search.Board
// currently holds by walking the transposition table's best-move links
// from the root, rather than trusting the Variation negamax threaded
// back up through its own recursion (search.pv). The two normally
// agree; PV exists as an independent cross-check, and for callers (the
// UCI "d" debug command) that want the PV for whatever position is
// loaded right now rather than the one last searched.
//
// The walk stops at a missing TT entry, a missing best move, a move
// that turns out illegal in the position reached so far (a stale entry
// from a different game), or the third repetition of the same key,
// since a cyclic TT would otherwise walk forever.
func (search *Context) PV() move.Variation {
	seen := map[zobrist.Key]int{}

	var moves []move.Move
	for len(moves) < MaxPly {
		hash := search.Board.Hash

		entry, hit := search.tt.Probe(hash)
		if !hit || entry.Move == move.Null {
			break
		}

		seen[hash]++
		if seen[hash] >= 3 {
			break
		}

		legal := false
		for _, m := range search.Board.GenerateMoves() {
			if m == entry.Move {
				legal = true
				break
			}
		}
		if !legal {
			break
		}

		search.Board.MakeMove(entry.Move)
		moves = append(moves, entry.Move)
	}

	for range moves {
		search.Board.UnmakeMove()
	}

	// Variation only exposes a prepend-one-move Update, so fold the
	// collected moves back into it from the tail forward.
	var pv move.Variation
	for i := len(moves) - 1; i >= 0; i-- {
		var next move.Variation
		next.Update(moves[i], pv)
		pv = next
	}

	return pv
}

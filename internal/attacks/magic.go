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

// Package attacks provides precomputed attack tables for every piece,
// including magic-bitboard tables for the sliding pieces.
//
// Blocker masks are uint64 bitboards and therefore there are too many
// permutations to exhaustively calculate. However, the relevant blockers
// for a given square are much fewer in number and can be calculated
// exhaustively. So a magic number is searched for such that
// (blockers & relevantMask) * magic >> shift is a perfect, contiguous
// hash function over the attack sets reachable from that square.
package attacks

import (
	"nemo.dev/x/nemo/internal/bitboard"
	"nemo.dev/x/nemo/internal/square"
	"nemo.dev/x/nemo/internal/util"
)

// magicSeeds are optimized prng seeds which generate valid magics fastest.
// These values are taken from the Stockfish chess engine.
var magicSeeds = [8]uint64{255, 16645, 15100, 12281, 32803, 55013, 10316, 728}

// moveFunc is a sliding piece's move generation function. It takes the
// piece square, blocker occupancy, and a bool which reports whether the
// function should return the relevant blocker mask (true) instead of the
// attack set for the given occupancy (false).
type moveFunc func(s square.Square, occ bitboard.Board, maskOnly bool) bitboard.Board

// magic represents a single magic entry, used to index the attack table
// for one particular square.
type magic struct {
	number      uint64
	blockerMask bitboard.Board
	shift       byte
}

// index calculates the index of the given occupancy in this magic's table.
func (m magic) index(occ bitboard.Board) uint64 {
	occ &= m.blockerMask
	return (uint64(occ) * m.number) >> m.shift
}

// table is a magic hash table for one sliding piece kind.
type table struct {
	magics [square.N]magic
	moves  [square.N][]bitboard.Board
}

// newTable generates a new magic hash table for the given move function.
// maxN bounds the number of distinct blocker permutations any square in
// this table can have, and sizes each square's move slice.
func newTable(maxN int, fn moveFunc) *table {
	var t table
	var rand util.PRNG

	for s := square.A1; s <= square.H8; s++ {
		m := &t.magics[s]

		m.blockerMask = fn(s, bitboard.Empty, true)
		bitCount := m.blockerMask.Count()
		m.shift = uint8(64 - bitCount)

		permutationsN := 1 << bitCount
		permutations := make([]bitboard.Board, permutationsN)

		blockers := bitboard.Empty
		// Carry-Rippler trick: enumerate every subset of blockerMask.
		for index := 0; blockers != bitboard.Empty || index == 0; index++ {
			permutations[index] = blockers
			blockers = (blockers - m.blockerMask) & m.blockerMask
		}

		rand.Seed(magicSeeds[s.Rank()])

	searchingMagic:
		for {
			t.moves[s] = make([]bitboard.Board, maxN)
			m.number = rand.SparseUint64()

			for i := 0; i < permutationsN; i++ {
				blockers := permutations[i]
				index := m.index(blockers)
				attacks := fn(s, blockers, false)

				if t.moves[s][index] != bitboard.Empty && t.moves[s][index] != attacks {
					continue searchingMagic
				}

				t.moves[s][index] = attacks
			}

			break
		}
	}

	return &t
}

// probe looks up the attack set for the given square and occupancy.
func (t *table) probe(s square.Square, occ bitboard.Board) bitboard.Board {
	return t.moves[s][t.magics[s].index(occ)]
}

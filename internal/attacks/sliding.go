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

package attacks

import (
	"nemo.dev/x/nemo/internal/bitboard"
	"nemo.dev/x/nemo/internal/square"
)

const maxRookBlockerSets = 4096
const maxBishopBlockerSets = 512

var rookTable *table
var bishopTable *table

// edges is the set of every square on the board's outer ring; occupants
// there never gate any further attack square, so they're excluded from
// every slider's relevant blocker mask.
const edges = bitboard.FileA | bitboard.FileH | bitboard.Rank1 | bitboard.Rank8

func rookMoves(s square.Square, occ bitboard.Board, maskOnly bool) bitboard.Board {
	fileMask := bitboard.Files[s.File()]
	rankMask := bitboard.Ranks[s.Rank()]

	if maskOnly {
		mask := (fileMask &^ (bitboard.Rank1 | bitboard.Rank8)) |
			(rankMask &^ (bitboard.FileA | bitboard.FileH))
		return mask &^ bitboard.Squares[s]
	}

	return bitboard.Hyperbola(s, occ, fileMask) | bitboard.Hyperbola(s, occ, rankMask)
}

func bishopMoves(s square.Square, occ bitboard.Board, maskOnly bool) bitboard.Board {
	diagMask := bitboard.Diagonals[s.Diagonal()]
	antiMask := bitboard.AntiDiagonals[s.AntiDiagonal()]

	if maskOnly {
		return (diagMask | antiMask) &^ edges &^ bitboard.Squares[s]
	}

	return bitboard.Hyperbola(s, occ, diagMask) | bitboard.Hyperbola(s, occ, antiMask)
}

func init() {
	rookTable = newTable(maxRookBlockerSets, rookMoves)
	bishopTable = newTable(maxBishopBlockerSets, bishopMoves)
}

// Rook returns the attack set for a rook on the given square with the
// given board occupancy.
func Rook(s square.Square, occ bitboard.Board) bitboard.Board {
	return rookTable.probe(s, occ)
}

// Bishop returns the attack set for a bishop on the given square with
// the given board occupancy.
func Bishop(s square.Square, occ bitboard.Board) bitboard.Board {
	return bishopTable.probe(s, occ)
}

// Queen returns the attack set for a queen on the given square with the
// given board occupancy: the union of a rook's and a bishop's.
func Queen(s square.Square, occ bitboard.Board) bitboard.Board {
	return Rook(s, occ) | Bishop(s, occ)
}

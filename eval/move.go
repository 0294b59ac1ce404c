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

package eval

import (
	"math"

	"nemo.dev/x/nemo/board"
	"nemo.dev/x/nemo/internal/piece"
	"nemo.dev/x/nemo/move"
)

// MoveScore is the ordering score assigned to a move by MVV-LVA, used
// as the coarse first pass before search-time heuristics (killers,
// history) break further ties.
type MoveScore int32

// constants representing move ordering scores
const (
	PVMove MoveScore = math.MaxInt32

	// MvvLvaOffset sits above the largest possible history score, so
	// captures and killers always sort ahead of even the hottest quiet
	// move.
	MvvLvaOffset MoveScore = 20000

	DefaultMove MoveScore = 0
)

// MvvLva scores a capture by (victim, attacker): a valuable victim
// taken by a cheap attacker sorts first. Values taken from the common
// "Blunder" MVV-LVA table.
//
//	               Attacker
//	Victim   -   P   N   B   R   Q   K
var MvvLva = [piece.TypeN][piece.TypeN]MoveScore{
	piece.Pawn:   {16, 15, 14, 13, 12, 11, 10},
	piece.Knight: {26, 25, 24, 23, 22, 21, 20},
	piece.Bishop: {36, 35, 34, 33, 32, 31, 30},
	piece.Rook:   {46, 45, 44, 43, 42, 41, 40},
	piece.Queen:  {56, 55, 54, 53, 52, 51, 50},
}

// ScoreMove returns m's MVV-LVA ordering score in position p: PVMove if
// it matches the stored principal-variation move, an MVV-LVA score for
// captures and promotions, or DefaultMove for a quiet move (left to
// search-time heuristics to rank).
func ScoreMove(p *board.Position, m, pv move.Move) MoveScore {
	switch {
	case m == pv:
		return PVMove

	case m.IsCapture(), m.IsPromotion():
		attacker := p.PieceAt(m.Origin()).Type()

		victim := piece.Pawn
		if !m.IsEnPassant() {
			victim = p.PieceAt(m.Dest()).Type()
		}

		return MvvLvaOffset + MvvLva[victim][attacker]

	default:
		return DefaultMove
	}
}

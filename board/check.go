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

package board

import (
	"nemo.dev/x/nemo/internal/attacks"
	"nemo.dev/x/nemo/internal/bitboard"
	"nemo.dev/x/nemo/internal/piece"
	"nemo.dev/x/nemo/internal/square"
)

// checkInfo bundles the per-move-generation-call information needed to
// restrict a side's moves to legal ones: the set of enemy checkers, the
// squares that block or capture a single checker, and the two pin masks
// (horizontal/vertical and diagonal), each holding, for every pinned
// piece's square, the ray it is confined to move along.
//
// It is recomputed fresh on every call rather than maintained
// incrementally across make/unmake: a magic-bitboard attack query is
// already O(1), so incremental maintenance would buy negligible
// performance for real added bookkeeping.
type checkInfo struct {
	checkers  bitboard.Board
	checkMask bitboard.Board // squares that block or capture every checker
	pinnedHV  bitboard.Board
	pinnedD   bitboard.Board
	seen      bitboard.Board // squares attacked by the opponent, for king safety
}

// doubleCheck reports whether more than one piece gives check, in which
// case only king moves are legal.
func (ci *checkInfo) doubleCheck() bool {
	return ci.checkers.Count() > 1
}

// InCheck reports whether the side to move's king is in check.
func (p *Position) InCheck() bool {
	return p.InCheckOf(p.SideToMove)
}

// InCheckOf reports whether c's king is in check. Checking the side not
// to move detects the illegal "king capturable this move" positions
// that can arise after a null move or a malformed "position" command.
func (p *Position) InCheckOf(c piece.Color) bool {
	return p.isAttacked(p.kings[c], c.Other())
}

// isAttacked reports whether s is attacked by any piece of color by.
func (p *Position) isAttacked(s square.Square, by piece.Color) bool {
	occ := p.Occupied()

	if attacks.Pawn[by.Other()][s]&p.Pawns(by) != 0 {
		return true
	}
	if attacks.Knight[s]&p.Knights(by) != 0 {
		return true
	}
	if attacks.King[s]&p.King(by) != 0 {
		return true
	}

	bishops := p.Bishops(by) | p.Queens(by)
	if attacks.Bishop(s, occ)&bishops != 0 {
		return true
	}

	rooks := p.Rooks(by) | p.Queens(by)
	if attacks.Rook(s, occ)&rooks != 0 {
		return true
	}

	return false
}

// checkData computes a checkInfo for the side to move, with the board
// occupancy treated as if the king itself were removed, so that sliding
// "seen" squares correctly extend through the king (a king may never
// step backwards along a checking ray).
func (p *Position) checkData() checkInfo {
	us, them := p.SideToMove, p.SideToMove.Other()
	kingSq := p.kings[us]
	occWithoutKing := p.Occupied() &^ bitboard.Squares[kingSq]

	var ci checkInfo

	// Checkers: enemy pieces directly attacking our king.
	ci.checkers |= attacks.Pawn[us][kingSq] & p.Pawns(them)
	ci.checkers |= attacks.Knight[kingSq] & p.Knights(them)

	enemyBishops := p.Bishops(them) | p.Queens(them)
	enemyRooks := p.Rooks(them) | p.Queens(them)
	ci.checkers |= attacks.Bishop(kingSq, p.Occupied()) & enemyBishops
	ci.checkers |= attacks.Rook(kingSq, p.Occupied()) & enemyRooks

	switch ci.checkers.Count() {
	case 0:
		ci.checkMask = bitboard.Universe
	case 1:
		checker := ci.checkers.FirstOne()
		ci.checkMask = bitboard.Squares[checker] | attacks.Between[kingSq][checker]
	default:
		ci.checkMask = bitboard.Empty
	}

	// Pins: enemy sliders whose ray to the king crosses exactly one of
	// our own pieces.
	pinners := (attacks.Bishop(kingSq, p.occupancy[them]) & enemyBishops) |
		(attacks.Rook(kingSq, p.occupancy[them]) & enemyRooks)

	for pinners != 0 {
		pinnerSq := pinners.Pop()
		between := attacks.Between[kingSq][pinnerSq] & p.occupancy[us]

		if between.Count() != 1 {
			continue // no pin, or more than one blocker
		}

		// The ray runs from the king to the pinner only, not the full
		// line: a friendly piece standing on the same line but behind
		// the king, or beyond the pinner, is not pinned at all.
		ray := attacks.Between[kingSq][pinnerSq] | bitboard.Squares[pinnerSq]
		if bitboard.Diagonals[pinnerSq.Diagonal()]&bitboard.Squares[kingSq] != 0 ||
			bitboard.AntiDiagonals[pinnerSq.AntiDiagonal()]&bitboard.Squares[kingSq] != 0 {
			ci.pinnedD |= ray
		} else {
			ci.pinnedHV |= ray
		}
	}

	// Seen: every square the opponent attacks, king included, used to
	// forbid the king from stepping into or along a check.
	pawns := p.Pawns(them)
	ci.seen |= attacks.PawnsLeft(pawns, them) | attacks.PawnsRight(pawns, them)

	knights := p.Knights(them)
	for knights != 0 {
		ci.seen |= attacks.Knight[knights.Pop()]
	}

	bishops := enemyBishops
	for bishops != 0 {
		ci.seen |= attacks.Bishop(bishops.Pop(), occWithoutKing)
	}

	rooks := enemyRooks
	for rooks != 0 {
		ci.seen |= attacks.Rook(rooks.Pop(), occWithoutKing)
	}

	ci.seen |= attacks.King[p.kings[them]]

	return ci
}

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

package eval

import (
	"nemo.dev/x/nemo/board"
	"nemo.dev/x/nemo/internal/attacks"
	"nemo.dev/x/nemo/internal/bitboard"
	"nemo.dev/x/nemo/internal/piece"
	"nemo.dev/x/nemo/internal/square"
	"nemo.dev/x/nemo/move"
)

// seeValue holds the simplified piece values SEE trades pieces at,
// distinct from PeSTO's tapered values since the exchange evaluation
// only needs a rough ordering, not a precise positional score.
var seeValue = [piece.TypeN]Eval{
	piece.Pawn:   100,
	piece.Knight: 400,
	piece.Bishop: 400,
	piece.Rook:   600,
	piece.Queen:  1000,
	piece.King:   30000,
}

// SEE performs a static exchange evaluation of the capture sequence
// starting with m, returning whether the side to move comes out ahead
// of threshold once every piece that can recapture on the target square
// has done so in least-valuable-attacker order.
func SEE(p *board.Position, m move.Move, threshold Eval) bool {
	source, target := m.Origin(), m.Dest()

	attacker := p.PieceAt(source).Type()

	victim := piece.Pawn
	if !m.IsEnPassant() {
		victim = p.PieceAt(target).Type()
	}

	balance := seeValue[victim]
	if balance < threshold {
		// even winning the victim for free doesn't reach threshold
		return false
	}

	balance -= seeValue[attacker]
	if balance >= threshold {
		// even losing the attacker for nothing still beats threshold
		return true
	}

	occupied := p.Occupied()
	occupied.Unset(source)
	if m.IsEnPassant() {
		captured := pushOriginFor(target, p.SideToMove)
		occupied.Unset(captured)
	}

	sideToMove := p.SideToMove.Other()

	attackers := attackersTo(p, target, occupied) & occupied

	diagonal := p.Board(piece.White, piece.Bishop) | p.Board(piece.Black, piece.Bishop) |
		p.Board(piece.White, piece.Queen) | p.Board(piece.Black, piece.Queen)
	straight := p.Board(piece.White, piece.Rook) | p.Board(piece.Black, piece.Rook) |
		p.Board(piece.White, piece.Queen) | p.Board(piece.Black, piece.Queen)

	for {
		friends := attackers & occupancyOf(p, sideToMove, occupied)
		if friends == bitboard.Empty {
			break
		}

		for attacker = piece.Pawn; attacker < piece.King; attacker++ {
			if friends&p.Board(sideToMove, attacker) != bitboard.Empty {
				break
			}
		}

		if attacker == piece.King && (attackers&^friends) != bitboard.Empty {
			// capturing with the king is illegal while the opponent
			// still has an attacker that would then check it
			break
		}

		source = (friends & p.Board(sideToMove, attacker)).FirstOne()

		occupied.Unset(source)
		sideToMove = sideToMove.Other()

		balance = -balance - seeValue[attacker]
		if balance >= threshold {
			break
		}

		switch attacker {
		case piece.Pawn, piece.Bishop:
			attackers |= attacks.Bishop(target, occupied) & diagonal
		case piece.Rook:
			attackers |= attacks.Rook(target, occupied) & straight
		case piece.Queen:
			attackers |= (attacks.Bishop(target, occupied) & diagonal) | (attacks.Rook(target, occupied) & straight)
		}

		attackers &= occupied
	}

	return sideToMove != p.SideToMove
}

// occupancyOf returns the subset of occ occupied by c's pieces, derived
// from the position's own occupancy bitboards since occ here may have
// had squares cleared mid-exchange.
func occupancyOf(p *board.Position, c piece.Color, occ bitboard.Board) bitboard.Board {
	var all bitboard.Board
	for t := piece.Pawn; t <= piece.King; t++ {
		all |= p.Board(c, t)
	}
	return all & occ
}

// attackersTo returns every piece (of either color) that attacks s
// given the occupancy blockers, used to seed and refresh the SEE swap
// list as pieces are removed from the board.
func attackersTo(p *board.Position, s square.Square, blockers bitboard.Board) bitboard.Board {
	diagonal := p.Board(piece.White, piece.Bishop) | p.Board(piece.Black, piece.Bishop) |
		p.Board(piece.White, piece.Queen) | p.Board(piece.Black, piece.Queen)
	straight := p.Board(piece.White, piece.Rook) | p.Board(piece.Black, piece.Rook) |
		p.Board(piece.White, piece.Queen) | p.Board(piece.Black, piece.Queen)

	kings := p.Board(piece.White, piece.King) | p.Board(piece.Black, piece.King)
	knights := p.Board(piece.White, piece.Knight) | p.Board(piece.Black, piece.Knight)

	return attacks.King[s]&kings |
		attacks.Knight[s]&knights |
		attacks.Pawn[piece.White][s]&p.Board(piece.Black, piece.Pawn) |
		attacks.Pawn[piece.Black][s]&p.Board(piece.White, piece.Pawn) |
		attacks.Bishop(s, blockers)&diagonal |
		attacks.Rook(s, blockers)&straight
}

// pushOriginFor returns the square behind `to` relative to the given
// color's forward direction, used to locate the pawn captured by an
// en-passant move (which sits behind the destination square, not on
// it).
func pushOriginFor(to square.Square, us piece.Color) square.Square {
	if us == piece.White {
		return to - 8
	}
	return to + 8
}

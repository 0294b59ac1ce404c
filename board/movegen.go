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
	"nemo.dev/x/nemo/internal/castling"
	"nemo.dev/x/nemo/internal/piece"
	"nemo.dev/x/nemo/internal/square"
	"nemo.dev/x/nemo/move"
)

// List is a dynamically sized list of pseudo/legal moves, generated in
// no particular order; callers needing move ordering sort or score it
// themselves (see move.OrderedMoveList).
type List []move.Move

// GenerateMoves generates every legal move available to the side to
// move: every returned move is immediately playable without further
// legality filtering.
func (p *Position) GenerateMoves() List {
	moves := make(List, 0, 48)
	p.generate(&moves, false)
	return moves
}

// GenerateCaptures generates every legal capture, including en-passant
// and capture-promotions: the move subset quiescence search continues
// on.
func (p *Position) GenerateCaptures() List {
	moves := make(List, 0, 16)
	p.generate(&moves, true)
	return moves
}

func (moves *List) add(m move.Move) {
	*moves = append(*moves, m)
}

func (p *Position) generate(moves *List, capturesOnly bool) {
	ci := p.checkData()
	us := p.SideToMove

	p.generateKingMoves(moves, &ci, capturesOnly)

	if ci.doubleCheck() {
		return // only the king may move out of a double check
	}

	p.generatePawnMoves(moves, &ci, capturesOnly)
	p.generateKnightMoves(moves, &ci, capturesOnly)
	p.generateSliderMoves(moves, &ci, piece.Bishop, capturesOnly)
	p.generateSliderMoves(moves, &ci, piece.Rook, capturesOnly)
	p.generateSliderMoves(moves, &ci, piece.Queen, capturesOnly)

	if !capturesOnly && ci.checkers == 0 {
		p.generateCastles(moves, &ci, us)
	}
}

func (p *Position) generateKingMoves(moves *List, ci *checkInfo, capturesOnly bool) {
	us := p.SideToMove
	from := p.kings[us]

	targets := attacks.King[from] &^ p.occupancy[us] &^ ci.seen
	if capturesOnly {
		targets &= p.occupancy[us.Other()]
	}

	for targets != 0 {
		to := targets.Pop()
		flag := move.Quiet
		if p.occupancy[us.Other()].IsSet(to) {
			flag = move.Capture
		}
		moves.add(move.New(from, to, flag))
	}
}

func (p *Position) generateCastles(moves *List, ci *checkInfo, us piece.Color) {
	occ := p.Occupied()

	tryCastle := func(side castling.Rights, kingTo square.Square, between, safe bitboard.Board) {
		if p.CastlingRights&side == 0 {
			return
		}
		if occ&between != 0 {
			return
		}
		if ci.seen&safe != 0 {
			return
		}

		from := p.kings[us]
		flag := move.CastleKingside
		if side == castling.WhiteQueenside || side == castling.BlackQueenside {
			flag = move.CastleQueenside
		}
		moves.add(move.New(from, kingTo, flag))
	}

	if us == piece.White {
		tryCastle(castling.WhiteKingside, square.G1,
			bitboard.Squares[square.F1]|bitboard.Squares[square.G1],
			bitboard.Squares[square.E1]|bitboard.Squares[square.F1]|bitboard.Squares[square.G1])
		tryCastle(castling.WhiteQueenside, square.C1,
			bitboard.Squares[square.B1]|bitboard.Squares[square.C1]|bitboard.Squares[square.D1],
			bitboard.Squares[square.E1]|bitboard.Squares[square.D1]|bitboard.Squares[square.C1])
	} else {
		tryCastle(castling.BlackKingside, square.G8,
			bitboard.Squares[square.F8]|bitboard.Squares[square.G8],
			bitboard.Squares[square.E8]|bitboard.Squares[square.F8]|bitboard.Squares[square.G8])
		tryCastle(castling.BlackQueenside, square.C8,
			bitboard.Squares[square.B8]|bitboard.Squares[square.C8]|bitboard.Squares[square.D8],
			bitboard.Squares[square.E8]|bitboard.Squares[square.D8]|bitboard.Squares[square.C8])
	}
}

// pinRestriction returns the set of squares a piece standing on from may
// move to given the pin masks: the full board if it isn't pinned, or
// else the pin rays of its axis that lie on from's own rank and file
// (or its own two diagonals), so a piece pinned on one ray can never
// step onto another pin ray of the same axis. Callers intersect the
// result with the check mask themselves.
func pinRestriction(from square.Square, ci *checkInfo) bitboard.Board {
	switch {
	case ci.pinnedHV.IsSet(from):
		return ci.pinnedHV & (bitboard.Files[from.File()] | bitboard.Ranks[from.Rank()])
	case ci.pinnedD.IsSet(from):
		return ci.pinnedD & (bitboard.Diagonals[from.Diagonal()] | bitboard.AntiDiagonals[from.AntiDiagonal()])
	default:
		return bitboard.Universe
	}
}

func (p *Position) generateKnightMoves(moves *List, ci *checkInfo, capturesOnly bool) {
	us := p.SideToMove
	knights := p.Knights(us) &^ ci.pinnedHV &^ ci.pinnedD // a pinned knight can never move

	for knights != 0 {
		from := knights.Pop()
		targets := attacks.Knight[from] &^ p.occupancy[us] & ci.checkMask
		if capturesOnly {
			targets &= p.occupancy[us.Other()]
		}
		p.emit(moves, from, targets)
	}
}

func (p *Position) generateSliderMoves(moves *List, ci *checkInfo, t piece.Type, capturesOnly bool) {
	us := p.SideToMove
	occ := p.Occupied()

	var pieces bitboard.Board
	switch t {
	case piece.Bishop:
		pieces = p.Bishops(us)
	case piece.Rook:
		pieces = p.Rooks(us)
	case piece.Queen:
		pieces = p.Queens(us)
	}

	for pieces != 0 {
		from := pieces.Pop()

		var attackSet bitboard.Board
		switch t {
		case piece.Bishop:
			attackSet = attacks.Bishop(from, occ)
		case piece.Rook:
			attackSet = attacks.Rook(from, occ)
		case piece.Queen:
			attackSet = attacks.Queen(from, occ)
		}

		targets := attackSet &^ p.occupancy[us] & ci.checkMask & pinRestriction(from, ci)
		if capturesOnly {
			targets &= p.occupancy[us.Other()]
		}
		p.emit(moves, from, targets)
	}
}

// emit appends a quiet or capture move from `from` to every set bit of
// targets, inferring the flag from occupancy. It is used by every piece
// kind except pawns and the king, whose flags need special handling.
func (p *Position) emit(moves *List, from square.Square, targets bitboard.Board) {
	us := p.SideToMove
	for targets != 0 {
		to := targets.Pop()
		flag := move.Quiet
		if p.occupancy[us.Other()].IsSet(to) {
			flag = move.Capture
		}
		moves.add(move.New(from, to, flag))
	}
}

var promoFlags = [4]move.Flag{move.PromoKnight, move.PromoBishop, move.PromoRook, move.PromoQueen}
var promoCaptureFlags = [4]move.Flag{move.PromoCaptureKnight, move.PromoCaptureBishop, move.PromoCaptureRook, move.PromoCaptureQueen}

func (p *Position) generatePawnMoves(moves *List, ci *checkInfo, capturesOnly bool) {
	us := p.SideToMove
	them := us.Other()
	occ := p.Occupied()
	pawns := p.Pawns(us)

	promoRank := bitboard.Ranks[square.Rank8.Relative(us == piece.White)]

	// single and double pushes
	if !capturesOnly {
		single := attacks.PawnPush(pawns, us) &^ occ
		for b := single; b != 0; {
			to := b.Pop()
			from := pushOrigin(to, us)
			if ci.checkMask&bitboard.Squares[to] == 0 || pinRestriction(from, ci)&bitboard.Squares[to] == 0 {
				continue
			}
			p.addPawnMove(moves, from, to, move.Quiet, promoFlags, promoRank)
		}

		doubleStartRank := bitboard.Ranks[square.Rank2.Relative(us == piece.White)]
		doubleSrc := pawns & doubleStartRank
		firstStep := attacks.PawnPush(doubleSrc, us) &^ occ
		double := attacks.PawnPush(firstStep, us) &^ occ
		for b := double; b != 0; {
			to := b.Pop()
			from := doublePushOrigin(to, us)
			if ci.checkMask&bitboard.Squares[to] == 0 || pinRestriction(from, ci)&bitboard.Squares[to] == 0 {
				continue
			}
			moves.add(move.New(from, to, move.DoublePawnPush))
		}
	}

	// diagonal captures, including capture-promotions
	left := attacks.PawnsLeft(pawns, us) & p.occupancy[them] & ci.checkMask
	right := attacks.PawnsRight(pawns, us) & p.occupancy[them] & ci.checkMask
	p.addPawnCaptures(moves, left, us, leftCaptureOrigin, promoCaptureFlags, promoRank, ci)
	p.addPawnCaptures(moves, right, us, rightCaptureOrigin, promoCaptureFlags, promoRank, ci)

	epBoard := p.EnPassantBoard(us)
	if epBoard != 0 {
		p.addEnPassant(moves, attacks.PawnsLeft(pawns, us)&epBoard, us, leftCaptureOrigin, ci)
		p.addEnPassant(moves, attacks.PawnsRight(pawns, us)&epBoard, us, rightCaptureOrigin, ci)
	}
}

// pushOrigin, doublePushOrigin, leftCaptureOrigin and rightCaptureOrigin
// invert the shifts attacks.PawnPush/PawnsLeft/PawnsRight apply, turning
// a destination square back into the square the pawn started on.
func pushOrigin(to square.Square, us piece.Color) square.Square {
	if us == piece.White {
		return to - 8
	}
	return to + 8
}

func doublePushOrigin(to square.Square, us piece.Color) square.Square {
	if us == piece.White {
		return to - 16
	}
	return to + 16
}

func leftCaptureOrigin(to square.Square, us piece.Color) square.Square {
	if us == piece.White {
		return to - 7
	}
	return to + 9
}

func rightCaptureOrigin(to square.Square, us piece.Color) square.Square {
	if us == piece.White {
		return to - 9
	}
	return to + 7
}

// addPawnMove appends a quiet pawn move, splitting it into the four
// promotion moves if to lands on the back rank.
func (p *Position) addPawnMove(moves *List, from, to square.Square, flag move.Flag, promos [4]move.Flag, promoRank bitboard.Board) {
	if promoRank.IsSet(to) {
		for _, pf := range promos {
			moves.add(move.New(from, to, pf))
		}
		return
	}
	moves.add(move.New(from, to, flag))
}

// addPawnCaptures appends diagonal pawn captures, deriving each move's
// origin square from its destination via origin.
func (p *Position) addPawnCaptures(moves *List, targets bitboard.Board, us piece.Color, origin func(square.Square, piece.Color) square.Square, promos [4]move.Flag, promoRank bitboard.Board, ci *checkInfo) {
	for targets != 0 {
		to := targets.Pop()
		from := origin(to, us)
		if pinRestriction(from, ci)&bitboard.Squares[to] == 0 {
			continue
		}
		p.addPawnMove(moves, from, to, move.Capture, promos, promoRank)
	}
}

// addEnPassant appends an en-passant capture, additionally verifying
// that removing both the capturing and captured pawn does not expose
// the king to a rank check along the fifth/fourth rank: a case the
// ordinary pin masks (computed with both pawns present) cannot catch.
func (p *Position) addEnPassant(moves *List, targets bitboard.Board, us piece.Color, origin func(square.Square, piece.Color) square.Square, ci *checkInfo) {
	for targets != 0 {
		to := targets.Pop()
		from := origin(to, us)
		captured := pushOrigin(to, us)

		capturesChecker := ci.checkers == bitboard.Squares[captured]
		if ci.checkMask&bitboard.Squares[to] == 0 && !capturesChecker {
			continue
		}
		if pinRestriction(from, ci)&bitboard.Squares[to] == 0 {
			continue
		}
		if !p.enPassantLegal(from, captured) {
			continue
		}

		moves.add(move.New(from, to, move.EnPassantCapture))
	}
}

// enPassantLegal simulates removing the capturing pawn and the captured
// pawn and re-checks whether the king would then be attacked, catching
// the rare horizontal-discovered-check edge case.
func (p *Position) enPassantLegal(from, captured square.Square) bool {
	us := p.SideToMove
	them := us.Other()
	kingSq := p.kings[us]

	occ := p.Occupied() &^ bitboard.Squares[from] &^ bitboard.Squares[captured]

	enemyRooksQueens := p.Rooks(them) | p.Queens(them)
	if attacks.Rook(kingSq, occ)&enemyRooksQueens != 0 {
		return false
	}

	enemyBishopsQueens := p.Bishops(them) | p.Queens(them)
	if attacks.Bishop(kingSq, occ)&enemyBishopsQueens != 0 {
		return false
	}

	return true
}

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
	"nemo.dev/x/nemo/internal/castling"
	"nemo.dev/x/nemo/internal/piece"
	"nemo.dev/x/nemo/internal/square"
	"nemo.dev/x/nemo/internal/zobrist"
	"nemo.dev/x/nemo/move"
)

// MakeMove plays m, which must be legal in the current position, and
// pushes a State frame onto the history stack so that UnmakeMove can
// later undo it. The Zobrist hash is maintained incrementally.
func (p *Position) MakeMove(m move.Move) {
	us, them := p.SideToMove, p.SideToMove.Other()
	from, to, flag := m.Origin(), m.Dest(), m.Flag()
	moved := p.PieceAt(from)

	st := State{
		Move:            m,
		CastlingRights:  p.CastlingRights,
		EnPassantTarget: p.EnPassantTarget,
		DrawClock:       p.DrawClock,
		Hash:            p.Hash,
	}

	if p.EnPassantTarget != square.None {
		p.Hash ^= zobrist.EnPassant[p.EnPassantTarget.File()]
	}
	p.EnPassantTarget = square.None

	p.DrawClock++
	if moved.Type() == piece.Pawn || flag.IsCapture() {
		p.DrawClock = 0
	}

	switch {
	case flag.IsEnPassant():
		captureSq := pushOrigin(to, us)
		st.CapturedPiece = p.PieceAt(captureSq)
		p.remove(captureSq, st.CapturedPiece)
		p.relocate(from, to, moved)

	case flag.IsCapture():
		st.CapturedPiece = p.PieceAt(to)
		p.remove(to, st.CapturedPiece)
		p.relocate(from, to, moved)

	case flag.IsCastle():
		p.relocate(from, to, moved)
		rook := castling.Rooks[to]
		p.relocate(rook.From, rook.To, rook.RookType)

	default:
		p.relocate(from, to, moved)
	}

	if flag.IsPromotion() {
		promoted := piece.New(m.PromotedType(), us)
		p.remove(to, moved)
		p.place(to, promoted)
	}

	if flag.IsDoublePawnPush() {
		p.EnPassantTarget = pushOrigin(to, us)
		p.Hash ^= zobrist.EnPassant[p.EnPassantTarget.File()]
	}

	p.Hash ^= zobrist.Castling[p.CastlingRights]
	p.CastlingRights &^= castling.Lost[from]
	p.CastlingRights &^= castling.Lost[to]
	p.Hash ^= zobrist.Castling[p.CastlingRights]

	p.SideToMove = them
	p.Hash ^= zobrist.SideToMove

	p.Ply++
	if us == piece.Black {
		p.FullMoves++
	}

	p.history[p.Ply-1] = st
}

// UnmakeMove reverts the most recent MakeMove call, restoring the
// Position to exactly the state it had before that move was made.
func (p *Position) UnmakeMove() {
	p.Ply--
	st := p.history[p.Ply]

	them := p.SideToMove // the side that made the move being undone
	us := them.Other()
	p.SideToMove = us

	if them == piece.White {
		p.FullMoves--
	}

	m := st.Move
	from, to, flag := m.Origin(), m.Dest(), m.Flag()

	if flag.IsPromotion() {
		promoted := p.PieceAt(to)
		p.remove(to, promoted)
		p.place(to, piece.New(piece.Pawn, us))
	}

	switch {
	case flag.IsEnPassant():
		p.relocate(to, from, p.PieceAt(to))
		captureSq := pushOrigin(to, us)
		p.place(captureSq, st.CapturedPiece)

	case flag.IsCapture():
		p.relocate(to, from, p.PieceAt(to))
		p.place(to, st.CapturedPiece)

	case flag.IsCastle():
		rook := castling.Rooks[to]
		p.relocate(rook.To, rook.From, rook.RookType)
		p.relocate(to, from, p.PieceAt(to))

	default:
		p.relocate(to, from, p.PieceAt(to))
	}

	p.Hash = st.Hash
	p.CastlingRights = st.CastlingRights
	p.EnPassantTarget = st.EnPassantTarget
	p.DrawClock = st.DrawClock
}

// MakeNullMove passes the turn without moving a piece, used by the
// search's null-move pruning heuristic. It clears the en-passant
// target, since a skipped turn can never capture it, and is undone with
// UnmakeNullMove rather than UnmakeMove.
func (p *Position) MakeNullMove() State {
	st := State{
		EnPassantTarget: p.EnPassantTarget,
		CastlingRights:  p.CastlingRights,
		DrawClock:       p.DrawClock,
		Hash:            p.Hash,
	}

	if p.EnPassantTarget != square.None {
		p.Hash ^= zobrist.EnPassant[p.EnPassantTarget.File()]
		p.EnPassantTarget = square.None
	}

	p.SideToMove = p.SideToMove.Other()
	p.Hash ^= zobrist.SideToMove
	p.Ply++

	return st
}

// UnmakeNullMove reverts a MakeNullMove call using the State it
// returned.
func (p *Position) UnmakeNullMove(st State) {
	p.Ply--
	p.SideToMove = p.SideToMove.Other()
	p.Hash = st.Hash
	p.EnPassantTarget = st.EnPassantTarget
	p.CastlingRights = st.CastlingRights
	p.DrawClock = st.DrawClock
}

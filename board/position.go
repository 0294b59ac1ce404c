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

// Package board implements the StackedBitboard occupancy model and the
// Position built on top of it: FEN I/O, legal move generation, and
// incremental make/unmake with a Zobrist hash.
package board

import (
	"fmt"

	"nemo.dev/x/nemo/internal/bitboard"
	"nemo.dev/x/nemo/internal/castling"
	"nemo.dev/x/nemo/internal/piece"
	"nemo.dev/x/nemo/internal/square"
	"nemo.dev/x/nemo/internal/zobrist"
	"nemo.dev/x/nemo/move"
)

// Position represents the full state of a chess game at a given point:
// the StackedBitboard occupancy model plus the auxiliary state (side to
// move, castling rights, en-passant square, move counters) and the
// reversible history stack needed to unmake a move.
type Position struct {
	// boards holds, per color and piece kind, the bitboard of every
	// square occupied by that (color, kind) pair. boards[c][EnPassant]
	// is never set directly; EnPassantBoard derives it from epSquare.
	boards [piece.ColorN][piece.TypeN]bitboard.Board

	// occupancy is the union of a color's non-EnPassant piece boards.
	occupancy [piece.ColorN]bitboard.Board

	// mailbox is the redundant O(1) square -> piece lookup.
	mailbox [square.N]piece.Piece

	kings [piece.ColorN]square.Square

	Hash zobrist.Key

	SideToMove      piece.Color
	CastlingRights  castling.Rights
	EnPassantTarget square.Square // square.None if unset

	Ply       int // half-moves played since game start
	FullMoves int
	DrawClock int // half-moves since last pawn push or capture

	history [move.MaxN]State
}

// State is a reversible state frame, pushed on make and popped on
// unmake: everything MakeMove destroys that cannot be recomputed from
// the move alone.
type State struct {
	Move            move.Move
	CastlingRights  castling.Rights
	CapturedPiece   piece.Piece
	EnPassantTarget square.Square
	DrawClock       int
	Hash            zobrist.Key
}

// New creates the standard starting Position.
func New() *Position {
	p, err := NewFromFEN(StartFEN)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns a human-readable board diagram followed by the FEN
// and Zobrist hash, for the "d" command and debug logs.
func (p *Position) String() string {
	var board string
	for r := int(square.Rank8); r >= int(square.Rank1); r-- {
		for f := square.FileA; f <= square.FileH; f++ {
			sq := square.New(f, square.Rank(r))
			board += p.mailbox[sq].String() + " "
		}
		board += "\n"
	}

	return fmt.Sprintf("%sFen: %s\nKey: %016X\n", board, p.FEN(), uint64(p.Hash))
}

// PieceAt returns the piece standing on the given square, or
// piece.NoPiece if it is empty.
func (p *Position) PieceAt(s square.Square) piece.Piece {
	return p.mailbox[s]
}

// MoveHistory returns the sequence of moves played to reach the current
// position, oldest first. It is read directly off the reversible State
// stack, so callers (the pgn package's SAN encoder) need no separate
// move log.
func (p *Position) MoveHistory() []move.Move {
	moves := make([]move.Move, p.Ply)
	for i := 0; i < p.Ply; i++ {
		moves[i] = p.history[i].Move
	}
	return moves
}

// Occupied returns the union of both colors' occupancy.
func (p *Position) Occupied() bitboard.Board {
	return p.occupancy[piece.White] | p.occupancy[piece.Black]
}

// KingSquare returns the square of the given color's king.
func (p *Position) KingSquare(c piece.Color) square.Square {
	return p.kings[c]
}

// EnPassantBoard returns the per-color en-passant pseudo-board: a single
// bit on EnPassantTarget when it is c's turn to capture it, else empty.
// It is derived from the scalar EnPassantTarget/SideToMove rather than
// stored directly, since the two representations are bit-identical (the
// pseudo-board never has more than one bit set) and the scalar form is
// what FEN and move generation both need directly.
func (p *Position) EnPassantBoard(c piece.Color) bitboard.Board {
	if p.EnPassantTarget == square.None || p.SideToMove != c {
		return bitboard.Empty
	}
	return bitboard.Squares[p.EnPassantTarget]
}

// board-by-kind accessors

// Board returns the bitboard of every square occupied by the given
// (color, type) pair, for callers (eval, search) that want to iterate
// generically over piece kinds rather than call a named accessor.
func (p *Position) Board(c piece.Color, t piece.Type) bitboard.Board { return p.boards[c][t] }

func (p *Position) Pawns(c piece.Color) bitboard.Board   { return p.boards[c][piece.Pawn] }
func (p *Position) Knights(c piece.Color) bitboard.Board { return p.boards[c][piece.Knight] }
func (p *Position) Bishops(c piece.Color) bitboard.Board { return p.boards[c][piece.Bishop] }
func (p *Position) Rooks(c piece.Color) bitboard.Board   { return p.boards[c][piece.Rook] }
func (p *Position) Queens(c piece.Color) bitboard.Board  { return p.boards[c][piece.Queen] }
func (p *Position) King(c piece.Color) bitboard.Board    { return p.boards[c][piece.King] }

// place puts piece pc on square s, updating every StackedBitboard field
// and the Zobrist hash. s must currently be empty.
func (p *Position) place(s square.Square, pc piece.Piece) {
	c, t := pc.Color(), pc.Type()

	p.boards[c][t].Set(s)
	p.occupancy[c].Set(s)
	p.mailbox[s] = pc
	p.Hash ^= zobrist.Key(zobrist.OfPiece(pc, s))

	if t == piece.King {
		p.kings[c] = s
	}
}

// remove clears square s, which must currently hold piece pc.
func (p *Position) remove(s square.Square, pc piece.Piece) {
	c, t := pc.Color(), pc.Type()

	p.boards[c][t].Unset(s)
	p.occupancy[c].Unset(s)
	p.mailbox[s] = piece.NoPiece
	p.Hash ^= zobrist.Key(zobrist.OfPiece(pc, s))
}

// relocate atomically moves the piece on `from` to `to`, which must be
// empty.
func (p *Position) relocate(from, to square.Square, pc piece.Piece) {
	p.remove(from, pc)
	p.place(to, pc)
}

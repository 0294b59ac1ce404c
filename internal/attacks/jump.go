// Copyright © 2022 Rak Laptudirm <raklaptudirm@gmail.com>
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
	"nemo.dev/x/nemo/internal/piece"
	"nemo.dev/x/nemo/internal/square"
)

// King and Knight hold the precalculated attack bitboards for a king and
// a knight jumping from every square on the board.
var King [square.N]bitboard.Board
var Knight [square.N]bitboard.Board

// Pawn holds the precalculated diagonal-capture attack bitboards for a
// lone pawn of the given color on every square.
var Pawn [piece.ColorN][square.N]bitboard.Board

func init() {
	for s := square.A1; s <= square.H8; s++ {
		King[s] = jumpsFrom(s, kingOffsets)
		Knight[s] = jumpsFrom(s, knightOffsets)

		single := bitboard.Squares[s]
		Pawn[piece.White][s] = single.Up(piece.White).East() | single.Up(piece.White).West()
		Pawn[piece.Black][s] = single.Up(piece.Black).East() | single.Up(piece.Black).West()
	}
}

type offset struct {
	file square.File
	rank square.Rank
}

var kingOffsets = []offset{
	{1, 0}, {1, 1}, {0, 1}, {-1, 0},
	{0, -1}, {1, -1}, {-1, 1}, {-1, -1},
}

var knightOffsets = []offset{
	{2, 1}, {1, 2}, {1, -2}, {2, -1},
	{-1, 2}, {-2, 1}, {-2, -1}, {-1, -2},
}

// jumpsFrom computes the attack bitboard reachable from s by applying
// each of the given (file, rank) offsets, discarding offsets that would
// leave the board.
func jumpsFrom(s square.Square, offsets []offset) bitboard.Board {
	var b bitboard.Board

	for _, o := range offsets {
		f := s.File() + o.file
		r := s.Rank() + o.rank

		if f < square.FileA || f > square.FileH || r < square.Rank1 || r > square.Rank8 {
			continue
		}

		b.Set(square.New(f, r))
	}

	return b
}

// PawnPush gives the result of pushing every pawn in the given set one
// square forward.
func PawnPush(pawns bitboard.Board, c piece.Color) bitboard.Board {
	return pawns.Up(c)
}

// PawnsLeft gives the result of every pawn in the given set capturing to
// its left.
func PawnsLeft(pawns bitboard.Board, c piece.Color) bitboard.Board {
	return pawns.Up(c).West()
}

// PawnsRight gives the result of every pawn in the given set capturing to
// its right.
func PawnsRight(pawns bitboard.Board, c piece.Color) bitboard.Board {
	return pawns.Up(c).East()
}

// Of returns the attack set of the given piece on the given square given
// the board occupancy. occ is unused for non-sliding pieces.
func Of(p piece.Piece, s square.Square, occ bitboard.Board) bitboard.Board {
	switch p.Type() {
	case piece.Pawn:
		return Pawn[p.Color()][s]
	case piece.Knight:
		return Knight[s]
	case piece.Bishop:
		return Bishop(s, occ)
	case piece.Rook:
		return Rook(s, occ)
	case piece.Queen:
		return Queen(s, occ)
	case piece.King:
		return King[s]
	default:
		panic("attacks.Of: unknown piece type")
	}
}

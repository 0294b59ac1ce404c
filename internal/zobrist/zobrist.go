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

// Package zobrist provides the deterministic random constants used to
// incrementally maintain a position's Zobrist hash.
package zobrist

import (
	"nemo.dev/x/nemo/internal/castling"
	"nemo.dev/x/nemo/internal/piece"
	"nemo.dev/x/nemo/internal/square"
	"nemo.dev/x/nemo/internal/util"
)

// Key is a single 64-bit Zobrist constant, or the XOR-accumulated hash
// built from them.
type Key uint64

// PieceSquare holds one key per (piece, square) pair; piece.N includes
// the unused half of the color bit so some entries are never read.
var PieceSquare [piece.N][square.N]Key

// EnPassant holds one key per en-passant file.
var EnPassant [square.FileN]Key

// Castling holds one key per possible 4-bit castling-rights mask.
var Castling [castling.N]Key

// SideToMove is XORed into the hash whenever the side to move changes.
var SideToMove Key

// init deterministically fills every table above from a fixed seed, the
// same one Stockfish uses for its own Zobrist keys, so that persisted
// hashes and test fixtures stay stable across builds.
func init() {
	var rng util.PRNG
	rng.Seed(1070372)

	for p := 0; p < piece.N; p++ {
		for s := square.A1; s <= square.H8; s++ {
			PieceSquare[p][s] = Key(rng.Uint64())
		}
	}

	for f := square.FileA; f <= square.FileH; f++ {
		EnPassant[f] = Key(rng.Uint64())
	}

	for r := 0; r < castling.N; r++ {
		Castling[r] = Key(rng.Uint64())
	}

	SideToMove = Key(rng.Uint64())
}

// OfPiece returns the piece-square key for p standing on s.
func OfPiece(p piece.Piece, s square.Square) Key {
	return PieceSquare[p][s]
}

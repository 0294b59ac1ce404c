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
	"nemo.dev/x/nemo/board"
	"nemo.dev/x/nemo/internal/piece"
	"nemo.dev/x/nemo/internal/square"
	"nemo.dev/x/nemo/internal/util"
)

// piece values, in centipawns
var mgPieceValues = [piece.TypeN]Eval{0, 82, 337, 365, 477, 1025, 0, 0}
var egPieceValues = [piece.TypeN]Eval{0, 94, 281, 297, 512, 936, 0, 0}

// piece-square tables, https://www.chessprogramming.org/PeSTO%27s_Evaluation_Function
//
// Every table below is written in the conventional top-down reading
// order (index 0 is a8, index 63 is h1). That is the opposite of this
// engine's own bottom-up square numbering, so the tables are re-indexed
// by XORing with 56 in init() below rather than rewritten by hand.

var mgPawn = [square.N]Eval{
	0, 0, 0, 0, 0, 0, 0, 0,
	98, 134, 61, 95, 68, 126, 34, -11,
	-6, 7, 26, 31, 65, 56, 25, -20,
	-14, 13, 6, 21, 23, 12, 17, -23,
	-27, -2, -5, 12, 17, 6, 10, -25,
	-26, -4, -4, -10, 3, 3, 33, -12,
	-35, -1, -20, -23, -15, 24, 38, -22,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var egPawn = [square.N]Eval{
	0, 0, 0, 0, 0, 0, 0, 0,
	178, 173, 158, 134, 147, 132, 165, 187,
	94, 100, 85, 67, 56, 53, 82, 84,
	32, 24, 13, 5, -2, 4, 17, 17,
	13, 9, -3, -7, -7, -8, 3, -1,
	4, 7, -6, 1, 0, -5, -1, -8,
	13, 8, 8, 10, 13, 0, 2, -7,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var mgKnight = [square.N]Eval{
	-167, -89, -34, -49, 61, -97, -15, -107,
	-73, -41, 72, 36, 23, 62, 7, -17,
	-47, 60, 37, 65, 84, 129, 73, 44,
	-9, 17, 19, 53, 37, 69, 18, 22,
	-13, 4, 16, 13, 28, 19, 21, -8,
	-23, -9, 12, 10, 19, 17, 25, -16,
	-29, -53, -12, -3, -1, 18, -14, -19,
	-105, -21, -58, -33, -17, -28, -19, -23,
}

var egKnight = [square.N]Eval{
	-58, -38, -13, -28, -31, -27, -63, -99,
	-25, -8, -25, -2, -9, -25, -24, -52,
	-24, -20, 10, 9, -1, -9, -19, -41,
	-17, 3, 22, 22, 22, 11, 8, -18,
	-18, -6, 16, 25, 16, 17, 4, -18,
	-23, -3, -1, 15, 10, -3, -20, -22,
	-42, -20, -10, -5, -2, -20, -23, -44,
	-29, -51, -23, -15, -22, -18, -50, -64,
}

var mgBishop = [square.N]Eval{
	-29, 4, -82, -37, -25, -42, 7, -8,
	-26, 16, -18, -13, 30, 59, 18, -47,
	-16, 37, 43, 40, 35, 50, 37, -2,
	-4, 5, 19, 50, 37, 37, 7, -2,
	-6, 13, 13, 26, 34, 12, 10, 4,
	0, 15, 15, 15, 14, 27, 18, 10,
	4, 15, 16, 0, 7, 21, 33, 1,
	-33, -3, -14, -21, -13, -12, -39, -21,
}

var egBishop = [square.N]Eval{
	-14, -21, -11, -8, -7, -9, -17, -24,
	-8, -4, 7, -12, -3, -13, -4, -14,
	2, -8, 0, -1, -2, 6, 0, 4,
	-3, 9, 12, 9, 14, 10, 3, 2,
	-6, 3, 13, 19, 7, 10, -3, -9,
	-12, -3, 8, 10, 13, 3, -7, -15,
	-14, -18, -7, -1, 4, -9, -15, -27,
	-23, -9, -23, -5, -9, -16, -5, -17,
}

var mgRook = [square.N]Eval{
	32, 42, 32, 51, 63, 9, 31, 43,
	27, 32, 58, 62, 80, 67, 26, 44,
	-5, 19, 26, 36, 17, 45, 61, 16,
	-24, -11, 7, 26, 24, 35, -8, -20,
	-36, -26, -12, -1, 9, -7, 6, -23,
	-45, -25, -16, -17, 3, 0, -5, -33,
	-44, -16, -20, -9, -1, 11, -6, -71,
	-19, -13, 1, 17, 16, 7, -37, -26,
}

var egRook = [square.N]Eval{
	13, 10, 18, 15, 12, 12, 8, 5,
	11, 13, 13, 11, -3, 3, 8, 3,
	7, 7, 7, 5, 4, -3, -5, -3,
	4, 3, 13, 1, 2, 1, -1, 2,
	3, 5, 8, 4, -5, -6, -8, -11,
	-4, 0, -5, -1, -7, -12, -8, -16,
	-6, -6, 0, 2, -9, -9, -11, -3,
	-9, 2, 3, -1, -5, -13, 4, -20,
}

var mgQueen = [square.N]Eval{
	-28, 0, 29, 12, 59, 44, 43, 45,
	-24, -39, -5, 1, -16, 57, 28, 54,
	-13, -17, 7, 8, 29, 56, 47, 57,
	-27, -27, -16, -16, -1, 17, -2, 1,
	-9, -26, -9, -10, -2, -4, 3, -3,
	-14, 2, -11, -2, -5, 2, 14, 5,
	-35, -8, 11, 2, 8, 15, -3, 1,
	-1, -18, -9, 10, -15, -25, -31, -50,
}

var egQueen = [square.N]Eval{
	-9, 22, 22, 27, 27, 19, 10, 20,
	-17, 20, 32, 41, 58, 25, 30, 0,
	-20, 6, 9, 49, 47, 35, 19, 9,
	3, 22, 24, 45, 57, 40, 57, 36,
	-18, 28, 19, 47, 31, 34, 39, 23,
	-16, -27, 15, 6, 9, 17, 10, 5,
	-22, -23, -30, -16, -16, -23, -36, -32,
	-33, -28, -22, -43, -5, -32, -20, -41,
}

var mgKing = [square.N]Eval{
	-65, 23, 16, -15, -56, -34, 2, 13,
	29, -1, -20, -7, -8, -4, -38, -29,
	-9, 24, 2, -16, -20, 6, 22, -22,
	-17, -20, -12, -27, -30, -25, -14, -36,
	-49, -1, -27, -39, -46, -44, -33, -51,
	-14, -14, -22, -46, -44, -30, -15, -27,
	1, 7, -8, -64, -43, -16, 9, 8,
	-15, 36, 12, -54, 8, -28, 24, 14,
}

var egKing = [square.N]Eval{
	-74, -35, -18, -18, -11, 15, 4, -17,
	-12, 17, 14, 17, 17, 38, 23, 11,
	10, 17, 23, 15, 20, 45, 44, 13,
	-8, 22, 24, 27, 26, 33, 26, 3,
	-18, -4, 21, 24, 27, 23, 9, -11,
	-19, -3, 11, 21, 23, 16, 7, -9,
	-27, -11, 4, 13, 14, 4, -5, -17,
	-53, -34, -21, -11, -28, -14, -24, -43,
}

var mgPieceTable = [piece.TypeN][square.N]Eval{
	piece.Pawn:   mgPawn,
	piece.Knight: mgKnight,
	piece.Bishop: mgBishop,
	piece.Rook:   mgRook,
	piece.Queen:  mgQueen,
	piece.King:   mgKing,
}

var egPieceTable = [piece.TypeN][square.N]Eval{
	piece.Pawn:   egPawn,
	piece.Knight: egKnight,
	piece.Bishop: egBishop,
	piece.Rook:   egRook,
	piece.Queen:  egQueen,
	piece.King:   egKing,
}

// phaseInc weighs each piece kind's contribution to the tapering game
// phase, used to blend the middlegame and endgame scores.
var phaseInc = [piece.TypeN]int{0, 0, 1, 1, 2, 4, 0, 0}

// mgTable/egTable are the fully resolved (piece, square) tables,
// combining material value and piece-square bonus for quick lookup.
var mgTable [piece.N][square.N]Eval
var egTable [piece.N][square.N]Eval

func init() {
	Recompute()
}

// Recompute rebuilds the resolved mgTable/egTable lookup tables from
// the tunable mgPieceValues/egPieceValues/mgPieceTable/egPieceTable
// arrays. It is called once at package init, and again by scripts/tune
// after every step that mutates a Term's value in place, since PeSTO
// itself only ever reads the resolved tables.
func Recompute() {
	for s := square.A1; s <= square.H8; s++ {
		for t := piece.Pawn; t <= piece.King; t++ {
			white := piece.New(t, piece.White)
			black := piece.New(t, piece.Black)

			// Our numbering is bottom-up (a1=0); the literal tables
			// above are indexed top-down (a8=0). s^56 flips the rank
			// bits to translate between the two for the same square,
			// so White (whose pieces read naturally in the top-down
			// convention) takes the flipped index and Black the direct
			// one.
			mgTable[white][s] = mgPieceValues[t] + mgPieceTable[t][s^56]
			mgTable[black][s] = mgPieceValues[t] + mgPieceTable[t][s]
			egTable[white][s] = egPieceValues[t] + egPieceTable[t][s^56]
			egTable[black][s] = egPieceValues[t] + egPieceTable[t][s]
		}
	}
}

// Term is one tunable (middlegame, endgame) coefficient pair: a pointer
// into either a material value or a piece-square table entry, named
// for a scripts/tune run to iterate over and perturb. The pointers
// reach directly into PeSTO's own arrays, so there is no separate
// tuner-facing representation to keep in sync.
type Term struct {
	Name   string
	MG, EG *Eval
}

var terms []Term

// Terms returns every tunable material and piece-square coefficient in
// a fixed order, lazily built on first call.
func Terms() []Term {
	if terms == nil {
		terms = buildTerms()
	}
	return terms
}

func buildTerms() []Term {
	var t []Term
	for kind := piece.Pawn; kind <= piece.Queen; kind++ { // king value is never tuned
		t = append(t, Term{
			Name: "material:" + kind.String(),
			MG:   &mgPieceValues[kind],
			EG:   &egPieceValues[kind],
		})
	}
	for kind := piece.Pawn; kind <= piece.King; kind++ {
		for s := square.A1; s <= square.H8; s++ {
			t = append(t, Term{
				Name: "pst:" + kind.String() + ":" + s.String(),
				MG:   &mgPieceTable[kind][s],
				EG:   &egPieceTable[kind][s],
			})
		}
	}
	return t
}

// Phase returns p's tapering phase in [0, 24]: 24 with all minor and
// major pieces still on the board, 0 in a pawn-and-king endgame. The
// middlegame score is weighted by Phase/24 and the endgame score by the
// complement. Exposed for scripts/tune, whose linearized evaluation
// needs the same blend weights PeSTO applies internally.
func Phase(p *board.Position) int {
	var gamePhase int
	for s := square.A1; s <= square.H8; s++ {
		gamePhase += phaseInc[p.PieceAt(s).Type()]
	}
	return util.Min(gamePhase, 24)
}

// PeSTO evaluates a position using a tapered material-plus-piece-square
// score: https://www.chessprogramming.org/PeSTO%27s_Evaluation_Function
func PeSTO(p *board.Position) Eval {
	var mg [piece.ColorN]Eval
	var eg [piece.ColorN]Eval

	var gamePhase int

	for s := square.A1; s <= square.H8; s++ {
		pc := p.PieceAt(s)
		if pc == piece.NoPiece {
			continue
		}

		mg[pc.Color()] += mgTable[pc][s]
		eg[pc.Color()] += egTable[pc][s]
		gamePhase += phaseInc[pc.Type()]
	}

	us, them := p.SideToMove, p.SideToMove.Other()

	mgScore := mg[us] - mg[them]
	egScore := eg[us] - eg[them]

	mgPhase := util.Min(gamePhase, 24)
	egPhase := 24 - mgPhase

	return (mgScore*Eval(mgPhase) + egScore*Eval(egPhase)) / 24
}

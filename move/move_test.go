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

package move_test

import (
	"testing"

	"nemo.dev/x/nemo/internal/piece"
	"nemo.dev/x/nemo/internal/square"
	"nemo.dev/x/nemo/move"
)

func TestMovePacking(t *testing.T) {
	for _, flag := range []move.Flag{
		move.Quiet, move.DoublePawnPush, move.CastleKingside,
		move.CastleQueenside, move.Capture, move.EnPassantCapture,
		move.PromoKnight, move.PromoBishop, move.PromoRook, move.PromoQueen,
		move.PromoCaptureKnight, move.PromoCaptureBishop,
		move.PromoCaptureRook, move.PromoCaptureQueen,
	} {
		m := move.New(square.G7, square.H8, flag)

		if m.Origin() != square.G7 || m.Dest() != square.H8 || m.Flag() != flag {
			t.Errorf("flag %d: packed move %d does not round-trip", flag, m)
		}
	}
}

func TestMovePredicates(t *testing.T) {
	tests := []struct {
		flag              move.Flag
		capture, promo    bool
		enPassant, castle bool
	}{
		{move.Quiet, false, false, false, false},
		{move.DoublePawnPush, false, false, false, false},
		{move.CastleKingside, false, false, false, true},
		{move.CastleQueenside, false, false, false, true},
		{move.Capture, true, false, false, false},
		{move.EnPassantCapture, true, false, true, false},
		{move.PromoQueen, false, true, false, false},
		{move.PromoCaptureKnight, true, true, false, false},
	}

	for _, test := range tests {
		m := move.New(square.E2, square.E4, test.flag)

		if m.IsCapture() != test.capture || m.IsPromotion() != test.promo ||
			m.IsEnPassant() != test.enPassant || m.IsCastle() != test.castle {
			t.Errorf("flag %d: wrong predicate results for %s", test.flag, m)
		}
	}
}

func TestPromotedType(t *testing.T) {
	tests := []struct {
		flag move.Flag
		want piece.Type
	}{
		{move.PromoKnight, piece.Knight},
		{move.PromoBishop, piece.Bishop},
		{move.PromoRook, piece.Rook},
		{move.PromoQueen, piece.Queen},
		{move.PromoCaptureQueen, piece.Queen},
	}

	for _, test := range tests {
		if got := move.New(square.E7, square.E8, test.flag).PromotedType(); got != test.want {
			t.Errorf("flag %d: promoted type %v, want %v", test.flag, got, test.want)
		}
	}
}

func TestMoveString(t *testing.T) {
	tests := []struct {
		move move.Move
		want string
	}{
		{move.New(square.E2, square.E4, move.DoublePawnPush), "e2e4"},
		{move.New(square.E1, square.G1, move.CastleKingside), "e1g1"},
		{move.New(square.E7, square.E8, move.PromoQueen), "e7e8q"},
		{move.New(square.B7, square.A8, move.PromoCaptureKnight), "b7a8n"},
		{move.Null, "0000"},
	}

	for _, test := range tests {
		if got := test.move.String(); got != test.want {
			t.Errorf("String() = %q, want %q", got, test.want)
		}
	}
}

func TestPickMoveSelectsBestFirst(t *testing.T) {
	moves := []move.Move{
		move.New(square.A2, square.A3, move.Quiet),
		move.New(square.E2, square.E4, move.DoublePawnPush),
		move.New(square.D2, square.D4, move.Quiet),
	}

	scores := map[move.Move]int32{
		moves[0]: 10,
		moves[1]: 30,
		moves[2]: 20,
	}

	list := move.ScoreMoves(moves, func(m move.Move) int32 { return scores[m] })

	want := []move.Move{moves[1], moves[2], moves[0]}
	for i := 0; i < list.Length; i++ {
		if got := list.PickMove(i); got != want[i] {
			t.Errorf("pick %d: got %s, want %s", i, got, want[i])
		}
	}
}

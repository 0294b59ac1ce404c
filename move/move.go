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

// Package move declares the packed Move representation and the move
// lists/ordering built on top of it.
package move

import (
	"nemo.dev/x/nemo/internal/piece"
	"nemo.dev/x/nemo/internal/square"
)

// Move represents a chess move, packed into 16 bits.
//
// Format: MSB -> LSB
// [15..12 flag][11..6 origin][5..0 destination]
type Move uint16

// MaxN is the maximum number of plys considered in one search, bounding
// the size of per-ply tables such as killers and the PV array.
const MaxN = 1024

// Null is the "no move" value, used for search results with nothing to
// report and for the zero-value of a move slot.
const Null Move = 0

const (
	destWidth = 6
	origWidth = 6

	destOffset = 0
	origOffset = destOffset + destWidth
	flagOffset = origOffset + origWidth

	destMask = (1 << destWidth) - 1
	origMask = (1 << origWidth) - 1
	flagMask = 0xf
)

// Flag identifies the kind of a move: quiet, a capture, a castle, an
// en-passant capture, a double pawn push, or a promotion (optionally
// combined with a capture).
type Flag uint8

// Flag constants, matching the packed representation's top nibble.
const (
	Quiet            Flag = 0
	DoublePawnPush   Flag = 1
	CastleKingside   Flag = 2
	CastleQueenside  Flag = 3
	Capture          Flag = 4
	EnPassantCapture Flag = 5

	PromoKnight Flag = 8
	PromoBishop Flag = 9
	PromoRook   Flag = 10
	PromoQueen  Flag = 11

	PromoCaptureKnight Flag = 12
	PromoCaptureBishop Flag = 13
	PromoCaptureRook   Flag = 14
	PromoCaptureQueen  Flag = 15
)

// IsCapture reports whether the flag marks a capture, including
// en-passant and capture-promotions.
func (f Flag) IsCapture() bool {
	return f&Capture != 0
}

// IsPromotion reports whether the flag marks a promotion.
func (f Flag) IsPromotion() bool {
	return f&8 != 0
}

// IsEnPassant reports whether the flag marks an en-passant capture.
func (f Flag) IsEnPassant() bool {
	return f == EnPassantCapture
}

// IsCastle reports whether the flag marks a castling move.
func (f Flag) IsCastle() bool {
	return f == CastleKingside || f == CastleQueenside
}

// IsDoublePawnPush reports whether the flag marks a double pawn push.
func (f Flag) IsDoublePawnPush() bool {
	return f == DoublePawnPush
}

// PromotedType returns the piece kind a promotion flag promotes to. It
// must only be called when IsPromotion() is true.
func (f Flag) PromotedType() piece.Type {
	switch f & 3 {
	case 0:
		return piece.Knight
	case 1:
		return piece.Bishop
	case 2:
		return piece.Rook
	default:
		return piece.Queen
	}
}

// New creates a Move from its origin square, destination square and
// flag.
func New(origin, dest square.Square, flag Flag) Move {
	return Move(dest)<<destOffset | Move(origin)<<origOffset | Move(flag)<<flagOffset
}

// Origin returns the move's origin square.
func (m Move) Origin() square.Square {
	return square.Square((m >> origOffset) & origMask)
}

// Dest returns the move's destination square.
func (m Move) Dest() square.Square {
	return square.Square((m >> destOffset) & destMask)
}

// Flag returns the move's flag.
func (m Move) Flag() Flag {
	return Flag((m >> flagOffset) & flagMask)
}

// IsCapture reports whether the move is any kind of capture.
func (m Move) IsCapture() bool {
	return m.Flag().IsCapture()
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Flag().IsPromotion()
}

// IsEnPassant reports whether the move is an en-passant capture.
func (m Move) IsEnPassant() bool {
	return m.Flag() == EnPassantCapture
}

// IsDoublePawnPush reports whether the move is a two-square pawn push.
func (m Move) IsDoublePawnPush() bool {
	return m.Flag() == DoublePawnPush
}

// IsCastle reports whether the move is a castle, of either side.
func (m Move) IsCastle() bool {
	return m.Flag() == CastleKingside || m.Flag() == CastleQueenside
}

// IsQuiet reports whether the move is neither a capture nor a promotion.
func (m Move) IsQuiet() bool {
	return !m.IsCapture() && !m.IsPromotion()
}

// PromotedType returns the piece kind this move promotes to. It must
// only be called when IsPromotion() is true.
func (m Move) PromotedType() piece.Type {
	return m.Flag().PromotedType()
}

// String converts a move to its long algebraic notation form, e.g.
// "e2e4", "e1g1" (castling), "d7d8q" (promotion), "0000" (null move).
func (m Move) String() string {
	if m == Null {
		return "0000"
	}

	s := m.Origin().String() + m.Dest().String()
	if m.IsPromotion() {
		s += m.PromotedType().String()
	}

	return s
}

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

package bitboard

import (
	"math/bits"

	"nemo.dev/x/nemo/internal/square"
)

// Hyperbola computes a sliding attack set along one line using the
// hyperbola quintessence o^(o-2r) trick, run once forward and once on
// the bit-reversed board to cover both directions of the line.
// https://www.chessprogramming.org/Hyperbola_Quintessence
//
// It is used only while building the magic tables at startup; runtime
// slider attacks go through the magic lookup instead.
func Hyperbola(s square.Square, occ, mask Board) Board {
	r := Squares[s]
	o := occ & mask
	return ((o - 2*r) ^ reverse(reverse(o)-2*reverse(r))) & mask
}

func reverse(b Board) Board {
	return Board(bits.Reverse64(uint64(b)))
}

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

package attacks

import (
	"nemo.dev/x/nemo/internal/bitboard"
	"nemo.dev/x/nemo/internal/square"
)

// Line holds, for every aligned pair of squares (sharing a rank, file or
// diagonal), the full line bitboard through both of them.
//
// Between holds, for the same pairs, the open segment strictly between
// the two squares, used as the "block or capture" mask when the king is
// in single check.
//
// Unaligned pairs and a square paired with itself are the zero value.
var Line [square.N][square.N]bitboard.Board
var Between [square.N][square.N]bitboard.Board

func init() {
	for s1 := square.A1; s1 <= square.H8; s1++ {
		for s2 := square.A1; s2 <= square.H8; s2++ {
			if s1 == s2 {
				continue
			}

			df := int(s2.File()) - int(s1.File())
			dr := int(s2.Rank()) - int(s1.Rank())

			switch {
			case dr == 0:
				Line[s1][s2] = bitboard.Ranks[s1.Rank()]
			case df == 0:
				Line[s1][s2] = bitboard.Files[s1.File()]
			case df == dr:
				Line[s1][s2] = bitboard.Diagonals[s1.Diagonal()]
			case df == -dr:
				Line[s1][s2] = bitboard.AntiDiagonals[s1.AntiDiagonal()]
			default:
				continue // s1 and s2 do not share a rank, file or diagonal
			}

			fileStep, rankStep := sign(df), sign(dr)
			f := int(s1.File()) + fileStep
			r := int(s1.Rank()) + rankStep

			for {
				cur := square.New(square.File(f), square.Rank(r))
				if cur == s2 {
					break
				}

				Between[s1][s2].Set(cur)
				f += fileStep
				r += rankStep
			}
		}
	}
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

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

package search

import (
	"math/bits"

	"nemo.dev/x/nemo/move"
)

// lmrTable holds precomputed Late Move Reduction amounts indexed by
// [depth][moveNumber]: later moves at higher depths are searched with a
// shallower depth first, on the theory that move ordering has already
// put the moves worth fully searching near the front of the list.
// https://www.chessprogramming.org/Late_Move_Reductions
var lmrTable [MaxPly + 1][218]int

func init() {
	log2 := func(n int) int {
		if n <= 0 {
			return 0
		}
		return 63 - bits.LeadingZeros64(uint64(n))
	}

	for depth := 1; depth <= MaxPly; depth++ {
		for moveNumber := 1; moveNumber < 218; moveNumber++ {
			lmrTable[depth][moveNumber] = 1 + log2(depth)*log2(moveNumber)/2
		}
	}
}

// reduction returns how many plys to shave off depth when searching the
// moveNumber'th move (0-indexed) of the current node's move list. The
// first few moves, captures/promotions, and checking moves are never
// reduced, since those are exactly the moves LMR risks mis-pruning.
func (search *Context) reduction(depth, moveNumber int, m move.Move, isPVNode bool) int {
	// m has already been made, so InCheck reports whether it gives check
	if depth < 3 || moveNumber < 2 || !m.IsQuiet() || search.Board.InCheck() {
		return 0
	}

	r := lmrTable[clampDepth(depth)][clampMoveNumber(moveNumber)]
	if isPVNode {
		r--
	}

	if r < 0 {
		return 0
	}
	if r > depth-1 {
		return depth - 1
	}
	return r
}

func clampDepth(depth int) int {
	if depth > MaxPly {
		return MaxPly
	}
	return depth
}

func clampMoveNumber(n int) int {
	if n > 217 {
		return 217
	}
	return n
}

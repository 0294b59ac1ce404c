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
	"nemo.dev/x/nemo/eval"
	"nemo.dev/x/nemo/internal/util"
	"nemo.dev/x/nemo/move"
)

// storeKiller records m as a killer move at plys: a quiet move that
// caused a beta cutoff, and so is worth trying early in sibling nodes at
// the same ply even though it isn't a capture.
// https://www.chessprogramming.org/Killer_Move
func (search *Context) storeKiller(plys int, killer move.Move) {
	if killer != search.killers[plys][0] {
		search.killers[plys][1] = search.killers[plys][0]
		search.killers[plys][0] = killer
	}
}

// isKiller reports whether m is one of the two killer moves stored for
// plys.
func (search *Context) isKiller(plys int, m move.Move) bool {
	return m == search.killers[plys][0] || m == search.killers[plys][1]
}

// KillersAt returns the two killer moves stored for ply, for the "d"
// debug command's info hook. Either or both may be move.Null.
func (search *Context) KillersAt(ply int) [2]move.Move {
	if ply < 0 || ply >= MaxPly {
		return [2]move.Move{}
	}
	return search.killers[ply]
}

// updateHistory adjusts the history score of a quiet move that caused a
// beta cutoff, using a decaying update so the score tracks recent
// performance rather than accumulating without bound.
// https://www.chessprogramming.org/History_Heuristic
func (search *Context) updateHistory(m move.Move, bonus eval.Eval) {
	entry := &search.history[search.Board.SideToMove][m.Origin()][m.Dest()]
	*entry += bonus - *entry*util.Abs(bonus)/16384
}

// historyOf returns the current history score of a quiet move.
func (search *Context) historyOf(m move.Move) eval.Eval {
	return search.history[search.Board.SideToMove][m.Origin()][m.Dest()]
}

// depthBonus scales a history/killer update to the depth the cutoff
// occurred at: cutoffs found deeper in the tree are more reliable
// signal and earn a larger bonus.
func depthBonus(depth int) eval.Eval {
	return eval.Eval(util.Min(2000, depth*155))
}

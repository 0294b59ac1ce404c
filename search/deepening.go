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
	"time"

	"nemo.dev/x/nemo/eval"
	"nemo.dev/x/nemo/move"
)

// iterativeDeepening is the search's main loop: it calls negamax for
// successively greater depths until a limit is reached, keeping the
// result of the last fully-completed iteration. Searching shallow
// depths first looks wasteful, but each iteration densely populates the
// transposition table and move-ordering tables the next iteration reads
// from, which in practice makes the whole sequence faster than jumping
// straight to the target depth. https://www.chessprogramming.org/Iterative_Deepening
func (search *Context) iterativeDeepening() (move.Variation, eval.Eval) {
	start := time.Now()

	var pv move.Variation
	var score eval.Eval

	for search.depth = 1; search.depth <= search.limits.Depth; search.depth++ {
		childScore, childPV := search.aspirationWindow(search.depth, score)

		if search.stopped.Load() != 0 {
			// iteration didn't complete; the previous depth's result
			// (if any) is still the best fully-verified one
			break
		}

		score, pv = childScore, childPV
		search.pv, search.pvScore = pv, score

		if search.Report != nil {
			search.Report(search.GenerateReport(start).String())
		}

		if score.IsMateScore() {
			// a proven mate can't be improved on; no need to search deeper
			break
		}
	}

	return pv, score
}

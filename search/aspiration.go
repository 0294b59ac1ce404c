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

// aspirationWindow searches depth using a narrow window centered on the
// previous iteration's score instead of the full (-Inf, +Inf) range.
// A narrower window produces more beta cutoffs and so a faster search,
// at the cost of a re-search with a wider window on the rare occasion
// the true score falls outside it.
// https://www.chessprogramming.org/Aspiration_Windows
func (search *Context) aspirationWindow(depth int, prevScore eval.Eval) (eval.Eval, move.Variation) {
	alpha := -eval.Inf
	beta := eval.Inf

	var windowSize eval.Eval = 25

	if depth >= 5 {
		alpha = prevScore - windowSize
		beta = prevScore + windowSize
	}

	searchDepth := depth

	for {
		if search.shouldStop() {
			return 0, move.Variation{}
		}

		var pv move.Variation
		result := search.negamax(0, searchDepth, alpha, beta, &pv)

		switch {
		case result <= alpha:
			// failed low: widen downward and retry at the same depth
			beta = (alpha + beta) / 2
			alpha = util.Max(alpha-windowSize, -eval.Inf)
			searchDepth = depth

		case result >= beta:
			// failed high: widen upward, and unless this is a mate
			// score, shave a ply off the re-search since a fail-high
			// at depth is informative even at depth-1
			beta = util.Min(beta+windowSize, eval.Inf)
			if !result.IsMateScore() {
				searchDepth = util.Max(1, searchDepth-1)
			}

		default:
			return result, pv
		}

		windowSize += windowSize / 2
	}
}

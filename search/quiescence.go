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

// quiescence extends the search past the nominal depth limit over
// "noisy" moves only (captures and promotions), so that negamax never
// has to evaluate a position in the middle of a capture sequence. Doing
// so avoids the horizon effect, where a losing combination looks good
// simply because the search stopped one move too early to see the
// recapture. https://www.chessprogramming.org/Quiescence_Search
func (search *Context) quiescence(plys int, alpha, beta eval.Eval) eval.Eval {
	search.nodes++
	if plys > search.selDepth {
		search.selDepth = plys
	}

	if search.shouldStop() {
		return 0
	}

	if plys > 0 && search.Board.IsDraw() {
		return search.draw()
	}

	inCheck := search.Board.InCheck()

	var standPat eval.Eval
	if !inCheck {
		// standing pat: the side to move always has the option to play
		// no further captures, so the static eval is a lower bound
		standPat = search.score()
		if standPat >= beta {
			return standPat
		}
		alpha = util.Max(alpha, standPat)
	}

	if plys >= MaxPly {
		return standPat
	}

	moves := search.Board.GenerateMoves()
	if len(moves) == 0 {
		if inCheck {
			return eval.MatedIn(plys)
		}
		return eval.Draw
	}

	best := standPat
	if inCheck {
		// in check, every legal reply must be tried since there may be
		// no capture that escapes check
		best = -eval.Inf
	}

	list := move.ScoreMoves(moves, func(m move.Move) eval.MoveScore {
		return eval.ScoreMove(search.Board, m, move.Null)
	})

	for i := 0; i < list.Length; i++ {
		m := list.PickMove(i)

		if !inCheck && !m.IsCapture() && !m.IsPromotion() {
			// list is ordered captures-first by MVV-LVA, so once a
			// quiet move surfaces every remaining move is quiet too
			break
		}

		if !inCheck && !eval.SEE(search.Board, m, 0) {
			// losing capture: not worth exploring when not in check
			continue
		}

		search.Board.MakeMove(m)
		score := -search.quiescence(plys+1, -beta, -alpha)
		search.Board.UnmakeMove()

		if search.stopped.Load() != 0 {
			return 0
		}

		if score > best {
			best = score
			if score > alpha {
				alpha = score
				if alpha >= beta {
					break
				}
			}
		}
	}

	return best
}

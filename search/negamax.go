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
	"nemo.dev/x/nemo/search/tt"
)

// negamax is a simplified formulation of minimax that exploits the fact
// that chess is a zero-sum game: instead of alternating between a
// maximizing and a minimizing player, every node maximizes from its own
// side's perspective and negates the child's score on return.
// https://www.chessprogramming.org/Negamax
//
// Alpha-beta pruning discards any branch that is already known to be
// worse than a sibling for whichever player is about to move, since a
// rational opponent would never allow it to be reached.
// https://www.chessprogramming.org/Alpha-Beta
func (search *Context) negamax(plys, depth int, alpha, beta eval.Eval, pv *move.Variation) eval.Eval {
	search.nodes++
	if plys > search.selDepth {
		search.selDepth = plys
	}

	switch {
	case search.shouldStop():
		// the return value is discarded by the caller once a search is
		// cancelled, so its exact value doesn't matter
		return 0

	case plys > 0 && search.Board.IsDraw():
		return search.draw()

	case depth <= 0, plys >= MaxPly:
		return search.quiescence(plys, alpha, beta)
	}

	isPVNode := beta-alpha > 1 // a null window search has beta == alpha+1

	moves := search.Board.GenerateMoves()
	if len(moves) == 0 {
		if search.Board.InCheck() {
			return eval.MatedIn(plys)
		}
		return eval.Draw
	}

	originalAlpha := alpha

	bestMove := move.Null
	bestEval := -eval.Inf

	if entry, hit := search.tt.Probe(search.Board.Hash); hit {
		bestMove = entry.Move

		if !isPVNode && int(entry.Depth) >= depth {
			search.ttHits++
			value := entry.Value.Eval(plys)

			switch entry.Type {
			case tt.ExactEntry:
				return value
			case tt.LowerBound:
				alpha = util.Max(alpha, value)
			case tt.UpperBound:
				beta = util.Min(beta, value)
			}

			if alpha >= beta {
				return value
			}
		}
	}

	list := move.ScoreMoves(moves, func(m move.Move) eval.MoveScore {
		score := eval.ScoreMove(search.Board, m, bestMove)
		if score != eval.DefaultMove {
			return score
		}

		// quiet move: break the tie between killers and plain history
		// using the killer heuristic as the coarser, cheaper signal
		switch {
		case search.isKiller(plys, m):
			return eval.MvvLvaOffset - 1
		default:
			return eval.MoveScore(search.historyOf(m))
		}
	})

	for i := 0; i < list.Length; i++ {
		var childPV move.Variation

		m := list.PickMove(i)

		search.Board.MakeMove(m)

		var score eval.Eval

		switch {
		case i == 0:
			// first move of the list gets a full-window search; it is
			// either the TT/PV move or, lacking one, simply the first
			// candidate by move-ordering score
			score = -search.negamax(plys+1, depth-1, -beta, -alpha, &childPV)

		default:
			reduction := search.reduction(depth, i, m, isPVNode)
			score = -search.negamax(plys+1, depth-1-reduction, -alpha-1, -alpha, &childPV)

			if score > alpha && (reduction > 0 || (isPVNode && score < beta)) {
				// either the reduced search beat alpha and needs a
				// full-depth re-search, or it's a pv node whose null
				// window search beat alpha and needs a full window
				score = -search.negamax(plys+1, depth-1, -beta, -alpha, &childPV)
			}
		}

		search.Board.UnmakeMove()

		if search.stopped.Load() != 0 {
			// partial result from a cancelled child; don't let it
			// pollute move ordering or the transposition table
			return 0
		}

		if score > bestEval {
			bestMove = m
			bestEval = score

			if score > alpha {
				alpha = score
				pv.Update(m, childPV)

				if alpha >= beta {
					if m.IsQuiet() {
						search.storeKiller(plys, m)
						search.updateHistory(m, depthBonus(depth))
					}
					break
				}
			}
		}
	}

	search.tt.Store(tt.Entry{
		Hash:  search.Board.Hash,
		Value: tt.EvalFrom(bestEval, plys),
		Move:  bestMove,
		Depth: uint8(depth),
		Type:  entryType(bestEval, originalAlpha, beta),
	})

	return bestEval
}

// entryType classifies a completed node's score against the window it
// was searched with, for storage in the transposition table.
func entryType(score, alpha, beta eval.Eval) tt.EntryType {
	switch {
	case score <= alpha:
		return tt.UpperBound
	case score >= beta:
		return tt.LowerBound
	default:
		return tt.ExactEntry
	}
}

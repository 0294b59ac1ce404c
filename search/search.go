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

// Package search implements the engine's move search: iterative
// deepening over a negamax alpha-beta core with quiescence search,
// transposition table caching, and killer/history move ordering.
package search

import (
	"errors"
	"sync/atomic"
	"time"

	"nemo.dev/x/nemo/board"
	"nemo.dev/x/nemo/eval"
	"nemo.dev/x/nemo/internal/piece"
	"nemo.dev/x/nemo/internal/util"
	"nemo.dev/x/nemo/move"
	searchtime "nemo.dev/x/nemo/search/time"
	"nemo.dev/x/nemo/search/tt"
)

// MaxPly bounds the depth a single search tree may reach, sizing every
// per-ply table (killers, the PV, move.MaxN's search-local cousin).
const MaxPly = 128

// MaxDepth is the default depth limit handed to Limits.Depth by callers
// that want the engine to search as deep as MaxPly allows rather than
// picking an explicit depth themselves.
const MaxDepth = MaxPly

// NewContext creates a search Context over the given board, with a
// default-sized transposition table. Board should be switched out
// between searches of the same game; start a new Context for a new
// game so the TT and history tables don't leak state across games.
func NewContext(b *board.Position) *Context {
	ctx := &Context{
		Board: b,
		tt:    tt.NewTable(16),
	}
	ctx.stopped.Store(1)
	return ctx
}

// Context holds everything one line of search needs: the position being
// searched, the shared transposition table, move-ordering heuristic
// tables, and the limits/stats of the search currently in progress.
//
// The stopped flag is the cancellation contract described in the
// package's concurrency model: it is read at the entry of every
// recursive call and is the only thing a sibling goroutine (a UCI "stop"
// handler or a timer) may touch concurrently with the search.
type Context struct {
	Board *board.Position

	tt *tt.Table

	depth    int
	selDepth int
	nodes    int
	ttHits   int

	stopped atomic.Int32

	limits Limits
	time   searchtime.Manager

	killers [MaxPly][2]move.Move
	history [piece.ColorN][64][64]eval.Eval

	pv      move.Variation
	pvScore eval.Eval

	// Report, if set, is called once per completed iterative deepening
	// iteration with a UCI "info" line describing its result. main.go
	// wires this to stdout; tests may leave it nil.
	Report func(string)
}

// Search starts a new search of Context.Board bounded by limits, and
// returns the best line found along with its evaluation. It blocks until
// either a limit is reached or Stop is called from another goroutine.
func (search *Context) Search(limits Limits) (move.Variation, eval.Eval, error) {
	search.start(limits)
	defer search.Stop()

	if search.Board.InCheckOf(search.Board.SideToMove.Other()) {
		return move.Variation{}, eval.Inf, errors.New("search: position is illegal, side not to move is in check")
	}

	pv, score := search.iterativeDeepening()
	return pv, score, nil
}

// InProgress reports whether a search is currently running on search.
func (search *Context) InProgress() bool {
	return search.stopped.Load() == 0
}

// Stop requests cancellation of any search in progress on search. It is
// safe to call from a goroutine other than the one running Search; it
// is the only method safe to do so.
func (search *Context) Stop() {
	search.stopped.Store(1)
}

// UpdateLimits swaps in new limits for the search currently in
// progress, used by the "ponderhit" handler to switch a ponder search
// over to the real time control without restarting it.
func (search *Context) UpdateLimits(limits Limits) {
	search.limits = limits
}

// ResizeTT resizes the transposition table to mbs megabytes, used by
// the "Hash" UCI option's handler.
func (search *Context) ResizeTT(mbs int) {
	search.tt.Resize(mbs)
}

// String renders the board currently loaded into search, along with
// its FEN and Zobrist hash, for the "d" debug command.
func (search *Context) String() string {
	return search.Board.String()
}

// start resets per-search state and computes the search deadline.
func (search *Context) start(limits Limits) {
	if limits.Depth == 0 || limits.Depth > MaxPly {
		limits.Depth = MaxPly
	}

	search.limits = limits
	search.nodes = 0
	search.ttHits = 0
	search.selDepth = 0

	switch {
	case limits.Infinite:
		search.time = searchtime.InfiniteManager{}

	case limits.MoveTime != 0:
		search.time = &searchtime.MoveManager{Duration: limits.MoveTime}

	case limits.Time[piece.White] != 0 || limits.Time[piece.Black] != 0:
		search.time = &searchtime.NormalManager{
			Time:      limits.Time,
			Increment: limits.Increment,
			MovesToGo: limits.MovesToGo,
			Us:        search.Board.SideToMove,
		}

	default:
		// depth or node limited search with no clock: never expire
		search.time = searchtime.InfiniteManager{}
	}

	search.tt.NextEpoch()
	search.stopped.Store(0)
	search.time.GetDeadline()
}

// shouldStop reports whether the search should unwind now, checking
// node/time limits only once every 2048 nodes to keep the check cheap.
func (search *Context) shouldStop() bool {
	switch {
	case search.stopped.Load() != 0:
		return true

	case search.nodes&2047 != 0:
		return false

	case search.limits.Nodes != 0 && search.nodes > search.limits.Nodes, search.time.Expired():
		search.Stop()
		return true

	default:
		return false
	}
}

// score returns the static evaluation of Context.Board.
func (search *Context) score() eval.Eval {
	return eval.PeSTO(search.Board)
}

// draw returns a small randomized draw score so the search doesn't
// treat every drawn line as exactly equal, which would leave it
// indifferent between repeating and making progress.
func (search *Context) draw() eval.Eval {
	return eval.RandDraw(search.nodes)
}

// Limits bounds how long and how deep a search may run.
type Limits struct {
	Nodes int // 0 means unbounded
	Depth int // 0 means MaxPly

	Infinite        bool
	MoveTime        int // milliseconds; "go movetime N"
	Time, Increment [piece.ColorN]int
	MovesToGo       int
}

// elapsed is a small helper kept local to this package rather than
// reaching for a global clock; stats.go reuses it when turning a search
// start-time into a duration for the UCI info line.
func elapsed(since time.Time) time.Duration {
	return util.Max(time.Since(since), 0)
}

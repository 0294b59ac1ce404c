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

package search_test

import (
	"testing"
	"time"

	"nemo.dev/x/nemo/board"
	"nemo.dev/x/nemo/eval"
	"nemo.dev/x/nemo/internal/util"
	"nemo.dev/x/nemo/move"
	"nemo.dev/x/nemo/search"
)

func TestStartposDepth4(t *testing.T) {
	ctx := search.NewContext(board.New())

	pv, score, err := ctx.Search(search.Limits{Depth: 4})
	if err != nil {
		t.Fatal(err)
	}

	if score.IsMateScore() {
		t.Fatalf("startpos depth 4: got mate score %v", score)
	}
	if util.Abs(score) > 150 {
		t.Errorf("startpos depth 4: score %d not near equality", score)
	}

	best := pv.Move(0)
	openers := map[string]bool{"e2e4": true, "d2d4": true, "g1f3": true, "c2c4": true}
	if !openers[best.String()] {
		t.Errorf("startpos depth 4: best move %s not in the expected opening set", best)
	}
}

// TestSearchDeterminism re-runs the same fixed-depth search from a
// fresh context and requires bit-identical results: everything the
// search does, including its draw-score dithering, is seeded
// deterministically.
func TestSearchDeterminism(t *testing.T) {
	run := func() (string, eval.Eval) {
		ctx := search.NewContext(board.New())
		pv, score, err := ctx.Search(search.Limits{Depth: 4})
		if err != nil {
			t.Fatal(err)
		}
		return pv.String(), score
	}

	pv1, score1 := run()
	pv2, score2 := run()

	if pv1 != pv2 || score1 != score2 {
		t.Errorf("identical searches disagree: (%s, %d) vs (%s, %d)", pv1, score1, pv2, score2)
	}
}

func TestMateInOne(t *testing.T) {
	p, err := board.NewFromFEN("6k1/5ppp/8/8/8/8/8/R6K w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	ctx := search.NewContext(p)
	pv, score, err := ctx.Search(search.Limits{Depth: 2})
	if err != nil {
		t.Fatal(err)
	}

	if got := pv.Move(0).String(); got != "a1a8" {
		t.Errorf("mate in one: best move %s, want a1a8", got)
	}
	if !score.IsMateScore() || score < 0 {
		t.Errorf("mate in one: score %v is not a winning mate score", score)
	}

	p.MakeMove(pv.Move(0))
	if !p.InCheck() || len(p.GenerateMoves()) != 0 {
		t.Error("position after a1a8 should be checkmate")
	}
}

func TestStalemateScoresDraw(t *testing.T) {
	// black to move, king trapped in the corner: stalemate
	p, err := board.NewFromFEN("7k/5Q2/8/8/8/8/8/6K1 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	ctx := search.NewContext(p)
	_, score, err := ctx.Search(search.Limits{Depth: 3})
	if err != nil {
		t.Fatal(err)
	}

	if score != eval.Draw {
		t.Errorf("stalemate: score %d, want %d", score, eval.Draw)
	}
}

// TestStopCancelsInfiniteSearch starts a "go infinite" search and
// cancels it from another goroutine; the search must terminate
// promptly and still report the best move its completed iterations
// found.
func TestStopCancelsInfiniteSearch(t *testing.T) {
	ctx := search.NewContext(board.New())

	type result struct {
		pv    move.Variation
		score eval.Eval
		err   error
	}

	done := make(chan result, 1)
	go func() {
		pv, score, err := ctx.Search(search.Limits{Infinite: true})
		done <- result{pv, score, err}
	}()

	time.Sleep(50 * time.Millisecond)
	ctx.Stop()

	select {
	case res := <-done:
		if res.err != nil {
			t.Fatal(res.err)
		}
		if res.pv.Move(0) == move.Null {
			t.Error("cancelled search reported no best move despite completing at least depth 1")
		}

	case <-time.After(5 * time.Second):
		t.Fatal("search did not terminate after Stop")
	}
}

func TestSearchRejectsIllegalPosition(t *testing.T) {
	// white to move while black's king is already capturable
	p, err := board.NewFromFEN("4k3/4Q3/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	ctx := search.NewContext(p)
	if _, _, err := ctx.Search(search.Limits{Depth: 1}); err == nil {
		t.Error("expected an error searching a position with the side not to move in check")
	}
}

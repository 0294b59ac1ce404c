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

package eval_test

import (
	"testing"

	"nemo.dev/x/nemo/board"
	"nemo.dev/x/nemo/eval"
)

func TestPeSTOStartposIsBalanced(t *testing.T) {
	if got := eval.PeSTO(board.New()); got != 0 {
		t.Errorf("PeSTO(startpos) = %d, want 0", got)
	}
}

// TestPeSTOIsSideRelative flips only the side to move of the same
// (asymmetric, quiet) position and expects the evaluation to negate.
func TestPeSTOIsSideRelative(t *testing.T) {
	const placement = "4k3/8/8/3n4/8/8/4P3/4K3"

	white, err := board.NewFromFEN(placement + " w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	black, err := board.NewFromFEN(placement + " b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	w, b := eval.PeSTO(white), eval.PeSTO(black)
	if w != -b {
		t.Errorf("PeSTO not antisymmetric in side to move: w %d, b %d", w, b)
	}
}

func TestPeSTOMaterialSign(t *testing.T) {
	// white is a clean queen up
	p, err := board.NewFromFEN("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	if got := eval.PeSTO(p); got <= 0 {
		t.Errorf("PeSTO with an extra queen = %d, want > 0", got)
	}
}

func TestMateScores(t *testing.T) {
	if !eval.MatingIn(3).IsMateScore() || !eval.MatedIn(3).IsMateScore() {
		t.Error("mate scores not classified as mate scores")
	}
	if eval.Eval(250).IsMateScore() {
		t.Error("a regular centipawn score classified as mate")
	}

	if eval.MatedIn(3) != -eval.MatingIn(3) {
		t.Error("MatedIn and MatingIn are not symmetric")
	}

	// deeper mates score closer to zero, so shorter ones are preferred
	if eval.MatingIn(1) <= eval.MatingIn(5) {
		t.Error("a faster mate should outscore a slower one")
	}
}

func TestEvalString(t *testing.T) {
	tests := []struct {
		eval eval.Eval
		want string
	}{
		{0, "cp 0"},
		{-81, "cp -81"},
		{eval.MatingIn(1), "mate 1"},
		{eval.MatingIn(4), "mate 2"},
		{eval.MatedIn(3), "mate -2"},
	}

	for _, test := range tests {
		if got := test.eval.String(); got != test.want {
			t.Errorf("(%d).String() = %q, want %q", test.eval, got, test.want)
		}
	}
}

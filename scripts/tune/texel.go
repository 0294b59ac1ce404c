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

package main

import (
	"math"

	"nemo.dev/x/nemo/board"
	"nemo.dev/x/nemo/eval"
	"nemo.dev/x/nemo/internal/piece"
	"nemo.dev/x/nemo/internal/square"
	"nemo.dev/x/nemo/internal/util"
)

// indices into a Vector element's phase pair
const (
	MG = 0
	EG = 1
)

// Vector holds one (middlegame, endgame) float per tunable term.
type Vector [][2]float64

// coeff is one term's contribution to a single position's linearized
// evaluation: the evaluation is Σ mg*(term.MG+delta) + eg*(term.EG+delta)
// over the position's coefficients, which makes both re-evaluation
// during tuning and the error gradient cheap to compute.
type coeff struct {
	index  int
	mg, eg float64
}

// Tuner fits eval.Terms against a Dataset by gradient descent on the
// texel-tuning sigmoid error, accumulating its adjustments in Delta
// rather than writing through the term pointers until the run is over.
type Tuner struct {
	Config Config

	Dataset Dataset
	Terms   []eval.Term
	Coeffs  [][]coeff

	K     float64
	Delta Vector

	Gradient Vector

	Batch int
}

type Config struct {
	KPrecision int

	ReportRate int

	LearningRate     float64
	LearningDropRate float64
	LearningStepRate int

	MaxEpochs int
	BatchSize int
}

// NewTuner linearizes every dataset entry against the current term set.
func NewTuner(config Config, dataset Dataset) *Tuner {
	tuner := &Tuner{
		Config:  config,
		Dataset: dataset,
		Terms:   eval.Terms(),
	}

	tuner.Coeffs = make([][]coeff, len(dataset))
	for i := range dataset {
		tuner.Coeffs[i] = coefficients(dataset[i].Position)
	}

	tuner.Delta = make(Vector, len(tuner.Terms))
	return tuner
}

// coefficients linearizes p's evaluation over the term vector, from
// White's perspective to match the dataset's White-relative results.
// Every piece contributes its material term (kings excepted; a king's
// material value is not tunable) and its piece-square term, both
// weighted by the position's phase blend.
func coefficients(p *board.Position) []coeff {
	mgPhase := float64(eval.Phase(p)) / 24
	egPhase := 1 - mgPhase

	coeffs := make([]coeff, 0, 64)
	add := func(index int, sign float64) {
		coeffs = append(coeffs, coeff{index: index, mg: sign * mgPhase, eg: sign * egPhase})
	}

	for s := square.A1; s <= square.H8; s++ {
		pc := p.PieceAt(s)
		if pc == piece.NoPiece {
			continue
		}

		// the PST tables are stored in top-down reading order, so a
		// white piece's square is rank-flipped, mirroring how
		// eval.Recompute resolves the same tables
		sign, tableSq := 1.0, int(s)^56
		if pc.Color() == piece.Black {
			sign, tableSq = -1.0, int(s)
		}

		t := pc.Type()
		if t != piece.King {
			add(materialIndex(t), sign)
		}
		add(pstIndex(t, tableSq), sign)
	}

	return coeffs
}

// materialIndex and pstIndex mirror the order eval.Terms lays the
// tunable terms out in: the five material terms first, then one block
// of 64 piece-square terms per kind.
func materialIndex(t piece.Type) int {
	return int(t - piece.Pawn)
}

func pstIndex(t piece.Type, tableSq int) int {
	return 5 + int(t-piece.Pawn)*64 + tableSq
}

// Evaluate computes entry i's linearized evaluation with the current
// deltas applied, in centipawns from White's perspective.
func (tuner *Tuner) Evaluate(i int) float64 {
	var e float64
	for _, c := range tuner.Coeffs[i] {
		term := tuner.Terms[c.index]
		e += c.mg * (float64(*term.MG) + tuner.Delta[c.index][MG])
		e += c.eg * (float64(*term.EG) + tuner.Delta[c.index][EG])
	}
	return e
}

// ComputeE is the mean squared error of the tuned evaluation's win
// prediction over the whole dataset.
func (tuner *Tuner) ComputeE() float64 {
	var total float64
	for i := range tuner.Dataset {
		err := tuner.Dataset[i].Result - Sigmoid(tuner.K, tuner.Evaluate(i))
		total += err * err
	}
	return total / float64(len(tuner.Dataset))
}

// ComputeK finds the sigmoid scaling constant that best fits the
// dataset's results to the untuned evaluation, scanning one decimal
// digit at a time down to the configured precision.
func (tuner *Tuner) ComputeK() float64 {
	k, best := 1.0, math.MaxFloat64

	for p := 0; p <= tuner.Config.KPrecision; p++ {
		step := math.Pow(10, -float64(p))

		for improved := true; improved; {
			improved = false
			for _, candidate := range [2]float64{k + step, k - step} {
				tuner.K = candidate
				if e := tuner.ComputeE(); e < best {
					best, k = e, candidate
					improved = true
				}
			}
		}
	}

	tuner.K = k
	return k
}

// ComputeGradient accumulates the error gradient of the current batch
// into tuner.Gradient.
func (tuner *Tuner) ComputeGradient() {
	batchEnd := util.Min((tuner.Batch+1)*tuner.Config.BatchSize, len(tuner.Dataset))
	for i := tuner.Batch * tuner.Config.BatchSize; i < batchEnd; i++ {
		tuner.updateSingleGradient(i)
	}
}

func (tuner *Tuner) updateSingleGradient(i int) {
	S := Sigmoid(tuner.K, tuner.Evaluate(i))
	X := (tuner.Dataset[i].Result - S) * S * (1 - S)

	for _, c := range tuner.Coeffs[i] {
		tuner.Gradient[c.index][MG] += X * c.mg
		tuner.Gradient[c.index][EG] += X * c.eg
	}
}

// Apply writes the accumulated deltas through the term pointers,
// rounding to whole centipawns, and rebuilds eval's resolved tables.
func (tuner *Tuner) Apply() {
	for i, term := range tuner.Terms {
		*term.MG += eval.Eval(math.Round(tuner.Delta[i][MG]))
		*term.EG += eval.Eval(math.Round(tuner.Delta[i][EG]))
	}
	eval.Recompute()
}

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
	"bufio"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"

	"nemo.dev/x/nemo/board"
)

// Entry is one scripts/datagen row, parsed and ready for repeated
// static re-evaluation as the tuner perturbs eval.Terms. Result is the
// game's outcome from White's perspective: 1 for a white win, 0 for a
// black win, 0.5 for a draw.
type Entry struct {
	Position *board.Position
	Result   float64
}

// Dataset is the training set a Tuner run fits PeSTO's terms against.
type Dataset []Entry

// NewDataset reads scripts/datagen's JSON-lines row format. The
// recorded search score itself isn't used (ComputeE always
// re-evaluates from the live PeSTO tables, which is the entire point
// of tuning them), only the FEN and the eventual game result.
func NewDataset(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var dataset Dataset

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var row struct {
			FEN    string `json:"fen"`
			Score  int    `json:"score"`
			Result string `json:"result"`
		}
		if err := json.Unmarshal([]byte(line), &row); err != nil {
			return nil, fmt.Errorf("tune: dataset: malformed row %q: %w", line, err)
		}

		result, err := resultValue(row.Result)
		if err != nil {
			return nil, fmt.Errorf("tune: dataset: %w", err)
		}

		p, err := board.NewFromFEN(row.FEN)
		if err != nil {
			return nil, fmt.Errorf("tune: dataset: %w", err)
		}

		dataset = append(dataset, Entry{Position: p, Result: result})
	}

	return dataset, scanner.Err()
}

// resultValue maps a PGN result string to the sigmoid target the tuner
// fits against.
func resultValue(result string) (float64, error) {
	switch result {
	case "1-0":
		return 1.0, nil
	case "0-1":
		return 0.0, nil
	case "1/2-1/2":
		return 0.5, nil
	default:
		return 0, fmt.Errorf("unknown result %q", result)
	}
}

// Sigmoid maps a centipawn evaluation to a predicted win probability,
// scaled by K, the standard texel-tuning conversion.
func Sigmoid(k, centipawns float64) float64 {
	return 1.0 / (1.0 + math.Exp(-k*centipawns/400.0))
}

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

// Command datagen produces scripts/tune training rows: JSON lines
// pairing a quiet position's FEN with the search score it was reached
// at and the result of the game that followed it. It has two
// independent sources, sharing the same output pipeline: self-play
// from an opening book, and historical games sampled from PGN
// archives.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"nemo.dev/x/nemo/eval"
	"nemo.dev/x/nemo/internal/util"
)

func main() {
	if err := Main(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func Main() error {
	openings := flag.String("openings", "", "shuffled opening book containing a list of FENs, one per line")
	pgnDir := flag.String("pgn", "", "directory of .pgn archives to sample positions from instead of self-play")
	offset := flag.Int("opening-offset", 0, "offset from which the opening book should be read")
	output := flag.String("output", "data.jsonl", "output file for the generated rows")
	games := flag.Int("games", 100_000, "number of games to generate data for (self-play mode only)")
	threads := flag.Int("threads", 1, "number of self-play worker threads")
	winAdjudicateEval := flag.Int("win-adjudicate-eval", int(eval.Mate), "search score magnitude past which a game is adjudicated as a win")
	nodes := flag.Int("nodes", 10_000, "node limit for each self-play search")
	depth := flag.Int("depth", 9, "depth limit for each self-play / PGN-sample search")

	flag.Parse()

	o, err := os.OpenFile(*output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer o.Close()
	out := bufio.NewWriterSize(o, 2000*100)
	defer out.Flush()

	if *pgnDir != "" {
		return generateFromPGN(*pgnDir, out, *depth, *nodes)
	}

	i, err := os.Open(*openings)
	if err != nil {
		return err
	}
	defer i.Close()

	hashSize := util.Clamp((*nodes*15)/(1024*1024), 1, 256)
	log.Printf("hash size used is %d mb\n", hashSize)

	g := &Generator{
		Input:  bufio.NewScanner(i),
		Output: out,

		Offset: *offset,

		Openings: make(chan string),
		Data:     make(chan DataPoint),
		Finished: make(chan struct{}),
		Deaths:   make(chan int),

		Games:   *games,
		Threads: *threads,

		Nodes: *nodes,
		Depth: *depth,

		WinThreshold: eval.Eval(*winAdjudicateEval),
	}
	g.GenerateData()
	return nil
}

// DataPoint is one training row: a quiet position, the side-to-move
// relative search score that produced it, and the eventual result of
// the game it came from ("1-0", "0-1" or "1/2-1/2").
type DataPoint struct {
	FEN    string    `json:"fen"`
	Score  eval.Eval `json:"score"`
	Result string    `json:"result"`
}

func (d *DataPoint) String() string {
	row, err := json.Marshal(d)
	if err != nil {
		return ""
	}
	return string(row) + "\n"
}

// elapsed is a small local helper so callers don't divide by a
// zero-second duration on the very first report.
func elapsed(since time.Time) int {
	return int(time.Since(since).Seconds()) + 1
}

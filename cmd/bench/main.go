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

// Command bench runs a fixed-depth search over a small, stable set of
// positions and reports total nodes and nodes-per-second, the way
// scripts/build's "bench" task checks a build hasn't regressed search
// speed or changed node counts (a deterministic search/move-ordering
// bug often first shows up as a node-count diff at a fixed depth).
package main

import (
	"flag"
	"fmt"
	"time"

	"nemo.dev/x/nemo/board"
	"nemo.dev/x/nemo/search"
)

// benchPositions is a small fixed FEN set spanning the opening,
// middlegame tactics, and an endgame, enough to catch a gross search
// regression without taking long to run.
var benchPositions = []string{
	board.StartFEN,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"6k1/5ppp/8/8/8/8/8/R6K w - - 0 1",
}

func main() {
	depth := flag.Int("depth", 10, "search depth per position")
	flag.Parse()

	var totalNodes int
	start := time.Now()

	for _, fen := range benchPositions {
		p, err := board.NewFromFEN(fen)
		if err != nil {
			fmt.Println(err)
			continue
		}

		posStart := time.Now()
		ctx := search.NewContext(p)
		_, score, err := ctx.Search(search.Limits{Depth: *depth})
		if err != nil {
			fmt.Println(err)
			continue
		}

		report := ctx.GenerateReport(posStart)
		totalNodes += report.Nodes
		fmt.Printf("%-70s depth %2d  nodes %10d  score %6s  pv %s\n", fen, *depth, report.Nodes, score, report.PV.String())
	}

	elapsed := time.Since(start)
	nps := int64(float64(totalNodes) / elapsed.Seconds())
	fmt.Printf("\n%d nodes %d nps\n", totalNodes, nps)
}

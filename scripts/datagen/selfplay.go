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
	"log"
	"time"

	"github.com/schollz/progressbar/v3"

	"nemo.dev/x/nemo/board"
	"nemo.dev/x/nemo/eval"
	"nemo.dev/x/nemo/internal/piece"
	"nemo.dev/x/nemo/internal/util"
	"nemo.dev/x/nemo/move"
	"nemo.dev/x/nemo/search"
)

// Generator runs Threads self-play workers over an opening book,
// collecting quiet positions from each game into Output: one goroutine
// streams openings in, Threads goroutines search and play games out,
// and the main goroutine drains the resulting DataPoints and reports
// throughput as it goes.
type Generator struct {
	Input  *bufio.Scanner
	Output *bufio.Writer

	Offset int

	Openings chan string
	Data     chan DataPoint
	Finished chan struct{}
	Deaths   chan int

	// Done is the number of games completed so far. It is owned by the
	// GenerateData drain loop; workers report completions over Finished
	// instead of touching it.
	Done int

	Games   int
	Threads int

	WinThreshold eval.Eval

	Nodes int
	Depth int
}

func (g *Generator) GenerateData() {
	log.Printf("starting %d workers\n", g.Threads)
	for i := 1; i <= g.Threads; i++ {
		go g.startWorker(i)
	}

	log.Printf("playing %d games\n", g.Games)
	go g.scheduleWork()

	bar := progressbar.NewOptions(
		g.Games,
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionSetItsString("game"),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
	)

	start := time.Now()
	datapoints := 0
	deaths := 0

	for {
		select {
		case data := <-g.Data:
			_, _ = g.Output.WriteString(data.String())
			datapoints++

			if datapoints&4095 == 0 {
				delta := elapsed(start)
				log.Printf(
					"%10d fens [%4d fens/second] %8d games [%2d games/second] [%3d fens/game]\n",
					datapoints, datapoints/delta, g.Done, g.Done/delta, datapoints/util.Max(1, g.Done),
				)
			}

		case <-g.Finished:
			g.Done++
			_ = bar.Add(1)

		case <-g.Deaths:
			if deaths++; deaths == g.Threads {
				close(g.Deaths)
				close(g.Data)
				_ = bar.Close()
				_ = g.Output.Flush()
				log.Println("all workers are done")
				return
			}
		}
	}
}

func (g *Generator) scheduleWork() {
	for i, openings := 0, 0; openings < g.Games && g.Input.Scan(); i++ {
		if i >= g.Offset {
			openings++
			g.Openings <- g.Input.Text()
		}
	}
	close(g.Openings)
}

func (g *Generator) startWorker(id int) {
	data := make([]DataPoint, 0)

	limits := search.Limits{
		Depth:    g.Depth,
		Nodes:    g.Nodes,
		Infinite: true,
	}

	worker := search.NewContext(board.New())

	for opening := range g.Openings {
		p, err := board.NewFromFEN(opening)
		if err != nil {
			continue
		}
		worker.Board = p

		data = data[:0]
		result := "1/2-1/2"

		for {
			if worker.Board.DrawClock >= 100 || worker.Board.IsRepetition() {
				break
			}

			pv, score, _ := worker.Search(limits)

			whiteScore := util.Ternary(worker.Board.SideToMove == piece.White, score, -score)
			bestMove := pv.Move(0)

			if bestMove == move.Null || util.Abs(whiteScore) >= g.WinThreshold {
				result = util.Ternary(whiteScore > eval.Draw, "1-0", "0-1")
				if bestMove == move.Null && !worker.Board.InCheck() {
					result = "1/2-1/2" // stalemate, not a decisive result
				}
				break
			}

			// tactical positions make poor static-eval training targets
			if !bestMove.IsQuiet() && !worker.Board.InCheck() {
				goto nextMove
			}

			data = append(data, DataPoint{
				FEN:   worker.Board.FEN(),
				Score: score,
			})

		nextMove:
			worker.Board.MakeMove(bestMove)
		}

		for i := range data {
			data[i].Result = result
			g.Data <- data[i]
		}

		g.Finished <- struct{}{}
	}

	g.Deaths <- id
}

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
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/notnil/chess"

	"nemo.dev/x/nemo/board"
	"nemo.dev/x/nemo/move"
	"nemo.dev/x/nemo/search"
)

// generateFromPGN walks dir for .pgn archives and samples quiet,
// shallow-searched positions out of each recorded game, the historical
// counterpart to selfplay.go's self-play generator. It uses
// github.com/notnil/chess only to split each archive into games and
// decode each game's move list -- the library's own board/rules engine
// is never consulted past that, matching the "small library for
// foreign input, our own board for everything we do with it" split
// datagen shares with the pgn package.
func generateFromPGN(dir string, out *bufio.Writer, depth, nodes int) error {
	worker := search.NewContext(board.New())
	limits := search.Limits{Infinite: true, Depth: depth, Nodes: nodes}

	fenCount := 0
	start := time.Now()

	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".pgn") {
			return nil
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		scanner := chess.NewScanner(f)
		for scanner.Scan() {
			game := scanner.Next()

			result, known := resultOf(game)
			if !known {
				continue // unterminated/unknown result, not useful training data
			}

			fenCount += sampleGame(worker, limits, game, result, out)
		}

		fmt.Fprintf(os.Stderr, "datagen: %d fens from pgn (%d fens/s)\n", fenCount, fenCount/elapsed(start))
		return nil
	})
}

// resultOf reads the PGN "Result" tag, reporting whether it holds one
// of the three terminal results a training row can be labeled with.
func resultOf(game *chess.Game) (string, bool) {
	tag := game.GetTagPair("Result")
	if tag == nil {
		return "", false
	}

	switch tag.Value {
	case "1-0", "0-1", "1/2-1/2":
		return tag.Value, true
	default:
		return "", false
	}
}

// sampleGame replays game's recorded moves on a scratch Position,
// resolving each notnil/chess move through its algebraic square text
// rather than its internal square numbering (which this engine's own
// board.Position.MoveFromUCI parses directly), and lets worker search
// each position to harvest a quiet, shallow-searched training FEN.
// It returns the number of rows written.
func sampleGame(worker *search.Context, limits search.Limits, game *chess.Game, result string, out *bufio.Writer) int {
	p := board.New()
	written := 0

	moves := game.Moves()
	for i, gameMove := range moves {
		uci := moveToUCI(gameMove)

		m, err := p.MoveFromUCI(uci)
		if err != nil {
			return written // desynced from the library's move list, stop here
		}
		p.MakeMove(m)

		if i == len(moves)-1 {
			break // don't train on the final (often mating/resigning) position
		}
		if p.InCheck() {
			continue
		}

		worker.Board = p
		pv, score, _ := worker.Search(limits)
		if bestMove := pv.Move(0); bestMove == move.Null || !bestMove.IsQuiet() {
			continue
		}

		dp := DataPoint{FEN: p.FEN(), Score: score, Result: result}
		_, _ = out.WriteString(dp.String())
		written++
	}

	return written
}

// moveToUCI renders a notnil/chess move as UCI long algebraic text
// ("e2e4", "e7e8q"), going through the library's own algebraic square
// formatting so no assumption about its internal square numbering is
// needed.
func moveToUCI(m *chess.Move) string {
	text := strings.ToLower(m.S1().String()) + strings.ToLower(m.S2().String())

	switch m.Promo() {
	case chess.Knight:
		text += "n"
	case chess.Bishop:
		text += "b"
	case chess.Rook:
		text += "r"
	case chess.Queen:
		text += "q"
	}

	return text
}

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

// Command perft drives board.Position.PerftDivide from the command
// line, for diffing the move generator against a reference engine one
// root move at a time.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"nemo.dev/x/nemo/board"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	fen := flag.String("fen", board.StartFEN, "FEN of the position to search")
	depth := flag.Int("depth", 5, "perft depth")
	flag.Parse()

	p, err := board.NewFromFEN(*fen)
	if err != nil {
		return err
	}

	divide := p.PerftDivide(*depth)

	moves := make([]string, 0, len(divide))
	for m := range divide {
		moves = append(moves, m)
	}
	sort.Strings(moves)

	var total uint64
	for _, m := range moves {
		fmt.Printf("%s: %d\n", m, divide[m])
		total += divide[m]
	}
	fmt.Printf("\nnodes searched: %d\n", total)

	return nil
}

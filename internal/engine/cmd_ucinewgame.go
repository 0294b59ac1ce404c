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

package engine

import (
	"nemo.dev/x/nemo/board"
	"nemo.dev/x/nemo/search"
	"nemo.dev/x/nemo/uci/cmd"
)

// newCmdUciNewGame builds the "ucinewgame" command: stop any search in
// progress and start a fresh search Context (a fresh transposition
// table and killer/history tables) over the starting position, so no
// cached result or heuristic leaks from one game into the next.
func newCmdUciNewGame(engine *Engine) cmd.Command {
	return cmd.Command{
		Name: "ucinewgame",
		Run: func(interaction cmd.Interaction) error {
			engine.Search.Stop()

			startBoard, err := board.NewFromFEN(startFEN)
			if err != nil {
				return err
			}

			report := engine.Search.Report
			engine.Search = search.NewContext(startBoard)
			engine.Search.Report = report
			engine.Search.ResizeTT(engine.Options.Hash)

			engine.Pondering = false
			return nil
		},
	}
}

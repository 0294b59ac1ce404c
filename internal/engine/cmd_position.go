// Copyright © 2022 Rak Laptudirm <rak@laptudirm.com>
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
	"errors"
	"strings"

	"nemo.dev/x/nemo/board"
	"nemo.dev/x/nemo/uci/cmd"
	"nemo.dev/x/nemo/uci/flag"
)

// fenFieldN is the number of whitespace-separated fields in a FEN
// record, used to size the "fen" flag's fixed-arity Array.
var fenFieldN = len(strings.Fields(startFEN))

// newCmdPosition builds the "position" command: set up a base position
// from either "startpos" or a "fen" record, then play any "moves" given
// in UCI long algebraic notation on top of it.
func newCmdPosition(engine *Engine) cmd.Command {
	schema := flag.NewSchema()

	schema.Array("fen", fenFieldN)
	schema.Button("startpos")
	schema.Variadic("moves")

	return cmd.Command{
		Name: "position",
		Run: func(interaction cmd.Interaction) error {
			pos, err := parsePositionFlags(interaction.Values)
			if err != nil {
				return err
			}

			engine.Search.Board = pos
			return nil
		},
		Flags: schema,
	}
}

// parsePositionFlags builds the base Position requested by a "position"
// command's flags and plays any trailing "moves" onto it.
func parsePositionFlags(values flag.Values) (*board.Position, error) {
	var (
		pos *board.Position
		err error
	)

	switch {
	case values["startpos"].Set && values["fen"].Set:
		return nil, errors.New("position: both startpos and fen given")

	case values["startpos"].Set:
		pos, err = board.NewFromFEN(startFEN)

	case values["fen"].Set:
		fields := values["fen"].Value.([]string)
		pos, err = board.NewFromFEN(strings.Join(fields, " "))

	default:
		return nil, errors.New("position: neither startpos nor fen given")
	}

	if err != nil {
		return nil, err
	}

	if values["moves"].Set {
		for _, uciMove := range values["moves"].Value.([]string) {
			m, err := pos.MoveFromUCI(uciMove)
			if err != nil {
				return nil, err
			}
			pos.MakeMove(m)
		}
	}

	return pos, nil
}

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

// Package engine wires the search and board packages into a uci.Client,
// registering the command handlers that implement the UCI protocol on
// top of them.
package engine

import (
	"nemo.dev/x/nemo/board"
	"nemo.dev/x/nemo/search"
	"nemo.dev/x/nemo/uci"
)

// startFEN is the standard chess starting position.
const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewClient builds a uci.Client with every command this engine supports
// registered and its options defaulted.
func NewClient() (uci.Client, error) {
	client := uci.NewClient()

	startBoard, err := board.NewFromFEN(startFEN)
	if err != nil {
		return client, err
	}

	engine := &Engine{
		Search: search.NewContext(startBoard),
	}
	engine.Search.Report = func(line string) {
		client.Println(line)
	}

	client.AddCommand(newCmdUci(engine, &client))
	client.AddCommand(newCmdUciNewGame(engine))
	client.AddCommand(newCmdPosition(engine))
	client.AddCommand(newCmdGo(engine))
	client.AddCommand(newCmdStop(engine))
	client.AddCommand(newCmdPonderhit(engine))
	client.AddCommand(newCmdDebug(engine, &client))
	client.AddCommand(newCmdSetOption(&client))
	client.AddCommand(newCmdD(engine))

	client.AddOption("Hash", newOptionHash(engine))
	client.AddOption("Ponder", newOptionPonder(engine))
	client.AddOption("Threads", newOptionThreads(engine))

	if err := client.SetDefaults(); err != nil {
		return client, err
	}

	return client, nil
}

// Engine holds the state shared across every UCI command handler: the
// board/search being operated on and the current UCI option values.
type Engine struct {
	Search *search.Context

	Pondering    bool
	PonderLimits search.Limits

	Options struct {
		Hash    int
		Ponder  bool
		Threads int
	}
}

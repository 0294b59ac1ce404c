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

package uci

import (
	"errors"

	"nemo.dev/x/nemo/uci/cmd"
)

var cmdIsReady cmd.Command
var cmdQuit cmd.Command

// errQuit signals Start to exit its REPL; it isn't reported as a real
// error.
var errQuit = errors.New("uci: quit")

func init() {
	// isready synchronizes the engine with the GUI: the GUI waits for
	// "readyok" before assuming the engine has finished whatever it was
	// last asked to do. Since this client never does blocking setup
	// work outside of a search, it answers immediately even mid-search.
	cmdIsReady = cmd.Command{
		Name: "isready",
		Run: func(i cmd.Interaction) error {
			i.Reply("readyok")
			return nil
		},
	}

	cmdQuit = cmd.Command{
		Name: "quit",
		Run: func(cmd.Interaction) error {
			return errQuit
		},
	}
}

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
	"nemo.dev/x/nemo/move"
	"nemo.dev/x/nemo/uci/cmd"
)

// newCmdD builds the "d" debug command: print the position as ASCII
// art with its FEN and Zobrist key, followed by the principal
// variation the transposition table currently remembers for this
// position and the ply-0 killer moves, so a developer watching the
// engine over stdin/out doesn't need a separate debugger.
func newCmdD(engine *Engine) cmd.Command {
	return cmd.Command{
		Name: "d",
		Run: func(interaction cmd.Interaction) error {
			interaction.Reply(engine.Search.String())

			if pv := engine.Search.PV(); pv.Len() > 0 {
				interaction.Replyf("PV: %s", pv.String())
			}

			if killers := engine.Search.KillersAt(0); killers[0] != move.Null || killers[1] != move.Null {
				interaction.Replyf("Killers[0]: %s %s", killers[0], killers[1])
			}

			return nil
		},
	}
}

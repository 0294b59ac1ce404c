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
	"strings"

	"nemo.dev/x/nemo/internal/build"
	"nemo.dev/x/nemo/uci"
	"nemo.dev/x/nemo/uci/cmd"
)

// newCmdUci builds the "uci" command: identify the engine, advertise
// its options, and acknowledge uci mode with "uciok".
func newCmdUci(engine *Engine, client *uci.Client) cmd.Command {
	_ = engine // identification doesn't depend on engine state
	return cmd.Command{
		Name: "uci",
		Run: func(interaction cmd.Interaction) error {
			interaction.Replyf("id name Nemo %s", build.Version)
			interaction.Reply("id author Nemo contributors")
			if opts := strings.TrimRight(client.OptionsString(), "\n"); opts != "" {
				interaction.Reply(opts)
			}
			interaction.Reply("uciok")
			return nil
		},
	}
}

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
	"errors"

	"nemo.dev/x/nemo/uci"
	"nemo.dev/x/nemo/uci/cmd"
	"nemo.dev/x/nemo/uci/flag"
)

// newCmdDebug builds the "debug [on|off]" command. It only stores the
// flag on the client; it exists for GUI compatibility and to let other
// commands decide whether to emit extra diagnostic detail.
func newCmdDebug(engine *Engine, client *uci.Client) cmd.Command {
	_ = engine
	schema := flag.NewSchema()
	schema.Button("on")
	schema.Button("off")

	return cmd.Command{
		Name: "debug",
		Run: func(interaction cmd.Interaction) error {
			switch {
			case interaction.Values["on"].Set:
				client.SetDebug(true)
			case interaction.Values["off"].Set:
				client.SetDebug(false)
			default:
				return errors.New("debug: expected \"on\" or \"off\"")
			}
			return nil
		},
		Flags: schema,
	}
}

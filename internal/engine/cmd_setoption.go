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

// newCmdSetOption builds the "setoption name <id> value <x>" command,
// forwarding to the option registered under that name on client.
func newCmdSetOption(client *uci.Client) cmd.Command {
	schema := flag.NewSchema()
	schema.Single("name")
	schema.Variadic("value")

	return cmd.Command{
		Name: "setoption",
		Run: func(interaction cmd.Interaction) error {
			if !interaction.Values["name"].Set {
				return errors.New("setoption: missing \"name\"")
			}

			name := interaction.Values["name"].Value.(string)

			var value []string
			if interaction.Values["value"].Set {
				value = interaction.Values["value"].Value.([]string)
			}

			return client.SetOption(name, value)
		},
		Flags: schema,
	}
}

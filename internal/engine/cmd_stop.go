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

import "nemo.dev/x/nemo/uci/cmd"

// newCmdStop builds the "stop" command: request cancellation of the
// search currently in progress, if any. The "go" handler, unblocked by
// this, emits the "bestmove" reply.
func newCmdStop(engine *Engine) cmd.Command {
	return cmd.Command{
		Name: "stop",
		Run: func(interaction cmd.Interaction) error {
			engine.Search.Stop()
			return nil
		},
	}
}

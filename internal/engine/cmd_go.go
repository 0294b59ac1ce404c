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
	"math"
	"strconv"

	"nemo.dev/x/nemo/internal/piece"
	"nemo.dev/x/nemo/move"
	"nemo.dev/x/nemo/search"
	"nemo.dev/x/nemo/uci/cmd"
	"nemo.dev/x/nemo/uci/flag"
)

// newCmdGo builds the "go" command: start a search bounded by whichever
// combination of depth/nodes/movetime/wtime-btime/infinite the GUI
// provided, and reply "bestmove ..." exactly once when it finishes.
//
// "go" is Parallel so a "stop" arriving on the same input stream isn't
// blocked behind the running search.
func newCmdGo(engine *Engine) cmd.Command {
	schema := flag.NewSchema()

	schema.Button("ponder")
	schema.Single("wtime")
	schema.Single("btime")
	schema.Single("winc")
	schema.Single("binc")
	schema.Single("movestogo")
	schema.Single("depth")
	schema.Single("nodes")
	schema.Single("movetime")
	schema.Button("infinite")

	return cmd.Command{
		Name: "go",
		Run: func(interaction cmd.Interaction) error {
			if engine.Search.InProgress() {
				return errors.New("go: search already in progress")
			}

			limits, err := parseSearchLimits(engine, interaction.Values)
			if err != nil {
				return err
			}

			if interaction.Values["ponder"].Set {
				if !engine.Options.Ponder {
					return errors.New("go ponder: pondering is disabled")
				}
				engine.Pondering = true
				engine.PonderLimits = limits
				limits = search.Limits{Depth: search.MaxDepth, Infinite: true}
			}

			pv, _, err := engine.Search.Search(limits)
			engine.Pondering = false
			if err != nil {
				return err
			}

			if best := pv.Move(0); best == move.Null {
				// cancelled before any move was established; there is
				// no bestmove to emit
				return nil
			} else if ponder := pv.Move(1); ponder == move.Null {
				interaction.Replyf("bestmove %s", best)
			} else {
				interaction.Replyf("bestmove %s ponder %s", best, ponder)
			}

			return nil
		},
		Parallel: true,
		Flags:    schema,
	}
}

// parseSearchLimits translates a "go" command's flags into search.Limits.
func parseSearchLimits(engine *Engine, values flag.Values) (search.Limits, error) {
	var limits search.Limits

	limits.Depth = search.MaxDepth
	if v := values["depth"]; v.Set {
		d, err := strconv.Atoi(v.Value.(string))
		if err != nil {
			return limits, err
		}
		limits.Depth = d
	}

	if v := values["nodes"]; v.Set {
		n, err := strconv.Atoi(v.Value.(string))
		if err != nil {
			return limits, err
		}
		limits.Nodes = n
	}

	timeSet := values["wtime"].Set || values["btime"].Set
	if timeSet && (!values["wtime"].Set || !values["btime"].Set) {
		return limits, errors.New("go: both wtime and btime must be set")
	}

	switch {
	case values["movetime"].Set && (values["infinite"].Set || timeSet),
		values["infinite"].Set && timeSet:
		return limits, errors.New("go: multiple time controls given")

	case values["movetime"].Set:
		t, err := strconv.Atoi(values["movetime"].Value.(string))
		if err != nil {
			return limits, err
		}
		limits.MoveTime = t

	case timeSet:
		var err error
		if limits.Time[piece.White], err = strconv.Atoi(values["wtime"].Value.(string)); err != nil {
			return limits, err
		}
		if limits.Time[piece.Black], err = strconv.Atoi(values["btime"].Value.(string)); err != nil {
			return limits, err
		}

		incSet := values["winc"].Set || values["binc"].Set
		if incSet && (!values["winc"].Set || !values["binc"].Set) {
			return limits, errors.New("go: both winc and binc must be set")
		}
		if incSet {
			if limits.Increment[piece.White], err = strconv.Atoi(values["winc"].Value.(string)); err != nil {
				return limits, err
			}
			if limits.Increment[piece.Black], err = strconv.Atoi(values["binc"].Value.(string)); err != nil {
				return limits, err
			}
		}

		if v := values["movestogo"]; v.Set {
			if limits.MovesToGo, err = strconv.Atoi(v.Value.(string)); err != nil {
				return limits, err
			}
		}

	case values["infinite"].Set:
		limits.Infinite = true

	default:
		limits.MoveTime = math.MaxInt32
	}

	return limits, nil
}

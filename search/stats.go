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

package search

import (
	"fmt"
	"time"

	"nemo.dev/x/nemo/eval"
	"nemo.dev/x/nemo/internal/util"
	"nemo.dev/x/nemo/move"
)

// GenerateReport summarizes the state of the search relative to start
// into a Report, ready to be formatted as a UCI "info" line.
func (search *Context) GenerateReport(start time.Time) Report {
	searchTime := elapsed(start)

	return Report{
		Depth:    search.depth,
		SelDepth: search.selDepth,

		Nodes: search.nodes,
		Nps:   float64(search.nodes) / util.Max(0.001, searchTime.Seconds()),

		Hashfull: search.tt.Hashfull(),

		Time: searchTime,

		Score: search.pvScore,
		PV:    search.pv,
	}
}

// Report is a point-in-time snapshot of a search's statistics, in a form
// ready to print as a UCI "info" line.
type Report struct {
	Depth    int
	SelDepth int

	Nodes int
	Nps   float64

	Hashfull float64 // fraction of the TT occupied, in [0, 1]

	Time time.Duration

	Score eval.Eval
	PV    move.Variation
}

// String converts a Report into a UCI-compliant "info" line.
func (report Report) String() string {
	return fmt.Sprintf(
		"info depth %d seldepth %d score %s nodes %d nps %.f hashfull %.f time %d pv %s",
		report.Depth, report.SelDepth, report.Score, report.Nodes, report.Nps,
		report.Hashfull*1000, report.Time.Milliseconds(), report.PV,
	)
}
